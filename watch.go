package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// gallery_watch reloads g whenever the configuration file at path is
// written or replaced. Watching the directory also catches saves that
// rename a new file over the old one. A file that is empty or does not
// parse leaves the current gallery in place.
func gallery_watch(ctx context.Context, path string, g *gallery, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create configuration watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return err
	}

	reload := func() {
		// Saving in place truncates first, so an empty file is most
		// likely still being written.
		if fi, err := os.Stat(abs); err == nil && fi.Size() == 0 {
			logger.Debug("configuration is empty, not reloading")
			return
		}
		common, sconfig, charts, err := gallery_load(abs)
		if err != nil {
			logger.Error("error reloading configuration", slog.Any("error", err))
			return
		}
		g.replace(common, sconfig, charts)
		logger.Info("configuration reloaded", "charts", len(charts))
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch configuration: %w", err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					reload()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Debug("error watching configuration", slog.Any("error", err))
			}
		}
	}()
	return nil
}
