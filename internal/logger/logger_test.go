package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewMultiLogger(t *testing.T) {
	var a, b bytes.Buffer
	l := NewMultiLogger(&a, &b)

	l.FileRewritten("notes.md")

	for name, buf := range map[string]*bytes.Buffer{"first": &a, "second": &b} {
		if !strings.Contains(buf.String(), "file rewritten") {
			t.Errorf("Expected %s writer to receive the log line, got %q", name, buf.String())
		}
		if !strings.Contains(buf.String(), "notes.md") {
			t.Errorf("Expected %s writer to receive the path, got %q", name, buf.String())
		}
	}
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdtight.log")

	l, cleanup, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	l.FileSkipped("notes.org", "not a markdown file")
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "file skipped") {
		t.Errorf("Expected log file to contain the event, got %q", string(data))
	}
}

func TestNewFileLoggerBadPath(t *testing.T) {
	if _, _, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "mdtight.log")); err == nil {
		t.Error("Expected error for unwritable log path")
	}
}
