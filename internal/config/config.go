package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/adrg/xdg"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Config represents the mdtight configuration
type Config struct {
	// Extensions lists the file extensions treated as markdown.
	Extensions []string `yaml:"extensions"`
	// LogFile, when set, receives structured logs in addition to stderr.
	LogFile string `yaml:"log_file,omitempty"`
	// WordWrap is the column used when rendering diffs and previews.
	WordWrap int `yaml:"word_wrap,omitempty"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Extensions: []string{".md", ".markdown"},
		LogFile:    "",
		WordWrap:   120,
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "mdtight", "config.yaml")
	}
	return filepath.Join(home, ".config", "mdtight", "config.yaml")
}

// Load reads configuration from the config directory. A missing file
// yields the defaults; a malformed or invalid file is an error.
func Load() (*Config, error) {
	configPath := ConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultConfig().Extensions
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

var extensionPattern = regexp.MustCompile(`^\.[A-Za-z0-9]+$`)

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Extensions,
			validation.Required,
			validation.Each(validation.Match(extensionPattern))),
		validation.Field(&c.WordWrap, validation.Min(0)),
	)
}

// MatchesExtension reports whether path carries one of the configured
// markdown extensions.
func (c *Config) MatchesExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range c.Extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
