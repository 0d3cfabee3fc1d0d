package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Extensions) == 0 {
		t.Error("Expected Extensions to be set")
	}
	if cfg.WordWrap != 120 {
		t.Errorf("Expected WordWrap to be 120, got %d", cfg.WordWrap)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name: "no extensions",
			config: &Config{
				Extensions: nil,
				WordWrap:   120,
			},
			wantErr: true,
		},
		{
			name: "extension without leading dot",
			config: &Config{
				Extensions: []string{"md"},
				WordWrap:   120,
			},
			wantErr: true,
		},
		{
			name: "negative word wrap",
			config: &Config{
				Extensions: []string{".md"},
				WordWrap:   -1,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	original := ConfigPath
	ConfigPath = func() string { return path }
	defer func() { ConfigPath = original }()

	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if !cfg.MatchesExtension("notes.md") {
			t.Error("Expected default config to match .md files")
		}
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		content := "extensions:\n  - .txt\nword_wrap: 80\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.WordWrap != 80 {
			t.Errorf("Expected WordWrap 80, got %d", cfg.WordWrap)
		}
		if cfg.MatchesExtension("notes.md") {
			t.Error("Expected .md to be excluded by override")
		}
		if !cfg.MatchesExtension("notes.txt") {
			t.Error("Expected .txt to match")
		}
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		if err := os.WriteFile(path, []byte("extensions: [unclosed"), 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}
		if _, err := Load(); err == nil {
			t.Error("Expected error for malformed config")
		}
	})

	t.Run("invalid values are an error", func(t *testing.T) {
		if err := os.WriteFile(path, []byte("word_wrap: -5\n"), 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}
		if _, err := Load(); err == nil {
			t.Error("Expected error for invalid config")
		}
	})
}

func TestMatchesExtension(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		path string
		want bool
	}{
		{"notes.md", true},
		{"notes.markdown", true},
		{"NOTES.MD", true},
		{"notes.org", false},
		{"notes", false},
		{"dir/notes.md", true},
	}

	for _, tt := range tests {
		if got := cfg.MatchesExtension(tt.path); got != tt.want {
			t.Errorf("MatchesExtension(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
