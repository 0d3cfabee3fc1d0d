// Package process runs the reformatter over streams and files. Files are
// replaced atomically: the full transformed output is written to a
// temporary file first and renamed over the original only on success.
package process

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"

	"github.com/gerunddev/mdtight/internal/config"
	"github.com/gerunddev/mdtight/internal/diff"
	"github.com/gerunddev/mdtight/internal/logger"
	"github.com/gerunddev/mdtight/internal/reformat"
)

// Mode selects what happens with the transformed output.
type Mode int

const (
	// ModeWrite rewrites files in place.
	ModeWrite Mode = iota
	// ModeDiff prints a unified diff and leaves files untouched.
	ModeDiff
	// ModePreview renders the transformed document to the terminal.
	ModePreview
)

// Processor feeds documents through the reformatter, one at a time.
type Processor struct {
	cfg  *config.Config
	log  *logger.Logger
	mode Mode
	out  io.Writer
}

// New creates a processor. out receives diffs and previews; in-place
// rewrites never touch it.
func New(cfg *config.Config, log *logger.Logger, mode Mode, out io.Writer) *Processor {
	return &Processor{
		cfg:  cfg,
		log:  log,
		mode: mode,
		out:  out,
	}
}

// Result represents the outcome of a batch run
type Result struct {
	Rewritten int // files rewritten (or, in diff/preview mode, changed)
	Unchanged int
	Skipped   int
	Errors    []error
	StartTime time.Time
	EndTime   time.Time
}

// String returns a human-readable summary of the run
func (r *Result) String() string {
	duration := r.EndTime.Sub(r.StartTime)
	return fmt.Sprintf(
		"Done: %d rewritten, %d unchanged, %d skipped, %d errors (took %v)",
		r.Rewritten,
		r.Unchanged,
		r.Skipped,
		len(r.Errors),
		duration.Round(time.Millisecond),
	)
}

type fileStatus int

const (
	statusRewritten fileStatus = iota
	statusUnchanged
	statusSkipped
)

// Stream reads one whole document from r, transforms it and writes the
// result to w.
func (p *Processor) Stream(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	content := string(data)
	formatted := reformat.TransformText(content)

	var out string
	switch p.mode {
	case ModeDiff:
		if content != formatted {
			out = diff.Render(diff.Unified("stdin", content, formatted), p.cfg.WordWrap)
		}
	case ModePreview:
		out = p.preview(formatted)
	default:
		out = formatted
	}

	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Files processes the named files strictly sequentially. A failing or
// skipped file never stops the run; errors are collected in the result.
func (p *Processor) Files(paths []string) *Result {
	result := &Result{
		StartTime: time.Now(),
	}

	for _, path := range paths {
		status, err := p.processFile(path)
		if err != nil {
			p.log.FileError(path, err)
			result.Errors = append(result.Errors, fmt.Errorf("%s: %w", path, err))
			continue
		}
		switch status {
		case statusRewritten:
			result.Rewritten++
		case statusUnchanged:
			result.Unchanged++
		case statusSkipped:
			result.Skipped++
		}
	}

	result.EndTime = time.Now()
	return result
}

// File processes a single file, logging the outcome. Used by watch mode.
func (p *Processor) File(path string) {
	if _, err := p.processFile(path); err != nil {
		p.log.FileError(path, err)
	}
}

func (p *Processor) processFile(path string) (fileStatus, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			p.log.FileSkipped(path, "does not exist")
			return statusSkipped, nil
		}
		return statusSkipped, err
	}
	if !p.cfg.MatchesExtension(path) {
		p.log.FileSkipped(path, "not a markdown file")
		return statusSkipped, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return statusSkipped, fmt.Errorf("failed to read file: %w", err)
	}

	content := string(data)
	formatted := reformat.TransformText(content)

	if formatted == content {
		p.log.FileUnchanged(path)
		return statusUnchanged, nil
	}

	switch p.mode {
	case ModeDiff:
		fmt.Fprint(p.out, diff.Render(diff.Unified(path, content, formatted), p.cfg.WordWrap))
		return statusRewritten, nil
	case ModePreview:
		fmt.Fprint(p.out, p.preview(formatted))
		return statusRewritten, nil
	}

	if err := writeAtomic(path, formatted, info.Mode().Perm()); err != nil {
		return statusSkipped, err
	}
	p.log.FileRewritten(path)
	return statusRewritten, nil
}

// preview renders a markdown document for the terminal with Glamour,
// falling back to the raw text if rendering fails.
func (p *Processor) preview(formatted string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(p.cfg.WordWrap),
	)
	if err != nil {
		return formatted
	}

	rendered, err := renderer.Render(formatted)
	if err != nil {
		return formatted
	}
	return rendered
}

// writeAtomic replaces path with content via a temp file in the same
// directory. On rename failure the temp file is discarded and the
// original is left exactly as it was.
func writeAtomic(path, content string, perm os.FileMode) error {
	tmp := fmt.Sprintf("%s.tmp-%s", path, uuid.New().String()[:8])
	if err := os.WriteFile(tmp, []byte(content), perm); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace file: %w", err)
	}
	return nil
}

// IsTempPath reports whether path names one of our own in-flight temp
// files, so watch mode can ignore the events they generate.
func IsTempPath(path string) bool {
	return strings.Contains(filepath.Base(path), ".tmp-")
}
