package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/gerunddev/mdtight/internal/config"
	"github.com/gerunddev/mdtight/internal/logger"
	"github.com/gerunddev/mdtight/internal/process"
	"github.com/gerunddev/mdtight/internal/styles"
	"github.com/gerunddev/mdtight/internal/watch"
)

const version = "0.1.0"

func main() {
	mode := process.ModeWrite
	watchMode := false
	verbose := false
	var paths []string

	for _, arg := range os.Args[1:] {
		switch arg {
		case "-h", "--help":
			printUsage()
			return
		case "-v", "--version":
			fmt.Printf("mdtight v%s\n", version)
			return
		case "-d", "--diff":
			mode = process.ModeDiff
		case "-p", "--preview":
			mode = process.ModePreview
		case "-w", "--watch":
			watchMode = true
		case "--verbose":
			verbose = true
		default:
			if strings.HasPrefix(arg, "-") {
				fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("Unknown flag: "+arg))
				fmt.Fprintln(os.Stderr, styles.DimStyle.Render("  Run 'mdtight --help' for usage"))
				os.Exit(1)
			}
			paths = append(paths, arg)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}

	lg, cleanup := buildLogger(cfg, verbose)
	if cleanup != nil {
		defer cleanup()
	}
	lg.ConfigLoaded(config.ConfigPath(), cfg.Extensions)

	proc := process.New(cfg, lg, mode, os.Stdout)

	if watchMode {
		if len(paths) == 0 {
			paths = []string{"."}
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := watch.Run(ctx, cfg, lg, proc, paths); err != nil {
			fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+err.Error()))
			os.Exit(1)
		}
		return
	}

	if len(paths) == 0 {
		if err := proc.Stream(os.Stdin, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+err.Error()))
			os.Exit(1)
		}
		return
	}

	result := proc.Files(paths)
	lg.RunCompleted(result.Rewritten, result.Unchanged, result.Skipped,
		len(result.Errors), result.EndTime.Sub(result.StartTime))

	// Per-file failures were already reported; the run itself still
	// succeeds with exit status 0.
	if len(result.Errors) > 0 {
		fmt.Fprintln(os.Stderr, styles.WarningStyle.Render("⚠ "+result.String()))
	} else {
		fmt.Fprintln(os.Stderr, styles.SuccessStyle.Render("✓ "+result.String()))
	}
}

// buildLogger sets up stderr logging, teed into the configured log file
// when one is set.
func buildLogger(cfg *config.Config, verbose bool) (*logger.Logger, func()) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	if cfg.LogFile == "" {
		return logger.NewWithLevel(os.Stderr, level), nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.WarningStyle.Render("⚠ Cannot open log file: "+err.Error()))
		return logger.NewWithLevel(os.Stderr, level), nil
	}

	lg := logger.NewMultiLogger(os.Stderr, f)
	lg.SetLevel(level)
	return lg, func() { f.Close() }
}

func printUsage() {
	usage := fmt.Sprintf(`mdtight - Tighten loose markdown lists

Usage:
  mdtight [flags] [file ...]

Reads stdin and writes the reformatted document to stdout when no files
are given; otherwise rewrites each named file in place. Blank lines
between list items are removed, unordered markers are normalized, and a
YAML frontmatter block is passed through untouched.

Flags:
  -d, --diff      Show a unified diff instead of rewriting
  -p, --preview   Render the reformatted document to the terminal
  -w, --watch     Watch files or directories and reformat on change
      --verbose   Enable debug logging
  -v, --version   Show version information
  -h, --help      Show this help message

Examples:
  cat notes.md | mdtight
  mdtight notes/todo.md notes/ideas.md
  mdtight --diff notes/todo.md
  mdtight --watch notes/

Configuration:
  Config file: %s

For more information, visit: https://github.com/gerunddev/mdtight
`, config.ConfigPath())
	fmt.Print(usage)
}
