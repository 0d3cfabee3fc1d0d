// Package watch reformats markdown files as they change on disk.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gerunddev/mdtight/internal/config"
	"github.com/gerunddev/mdtight/internal/logger"
	"github.com/gerunddev/mdtight/internal/process"
)

// Run starts an fsnotify watcher over the given files and directories and
// reformats matching files on every write until ctx is cancelled.
// Directories are watched recursively, and directories created at runtime
// are added to the watch list.
//
// Rewrites performed by the processor trigger events of their own, but an
// already-tight file is never rewritten again, so the loop settles after
// one pass.
func Run(ctx context.Context, cfg *config.Config, log *logger.Logger, proc *process.Processor, paths []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	for _, path := range paths {
		info, statErr := os.Stat(path)
		if statErr != nil {
			log.FileSkipped(path, "does not exist")
			continue
		}
		if info.IsDir() {
			if addErr := addDirsRecursive(w, path); addErr != nil {
				return addErr
			}
		} else {
			if addErr := w.Add(path); addErr != nil {
				return addErr
			}
		}
	}

	log.WatchStarted(paths)

	for {
		select {
		case <-ctx.Done():
			log.Info("watch stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, ev.Name); addErr != nil {
						log.Warn("failed to watch new dir",
							"path", ev.Name,
							"error", addErr)
					}
					continue
				}
			}

			if process.IsTempPath(ev.Name) || !cfg.MatchesExtension(ev.Name) {
				continue
			}

			if ev.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				proc.File(ev.Name)
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error("watch error", "error", watchErr)
		}
	}
}

// addDirsRecursive adds root and every directory below it to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
