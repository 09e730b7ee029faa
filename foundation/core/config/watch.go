// File: watch.go
// Title: Configuration File Watching
// Description: Reloads the configuration when its file changes on disk.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Polling based watcher
// - 2026-10-19 v0.2.0: fsnotify based watcher

package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/cmdsys/foundation/core/error"
)

// ChangeHandler receives the freshly loaded configuration
type ChangeHandler func(cfg *Config)

// Watch reloads filePath whenever it is written, created or renamed into
// place and passes the result to onChange. Reload failures go to onError
// (which may be nil). The parent directory is watched because editors
// usually replace files instead of writing them in place. Watch returns once
// the watcher is running; it stops when ctx is done.
func Watch(ctx context.Context, filePath string, onChange ChangeHandler, onError func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create config watcher").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Watch")
	}

	target := filepath.Clean(filePath)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return mdwerror.Wrap(err, "failed to watch config directory").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Watch").
			WithDetail("filePath", filePath)
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
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				cfg, err := Load(target)
				if err != nil {
					if onError != nil {
						onError(err)
					}
					continue
				}
				onChange(cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				if onError != nil {
					onError(err)
				}
			}
		}
	}()

	return nil
}
