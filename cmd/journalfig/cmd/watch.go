// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"cogentcore.org/journalfig/base/errors"
	"cogentcore.org/journalfig/cmd/journalfig/config"
	"cogentcore.org/journalfig/style"
	"github.com/fsnotify/fsnotify"
)

// watchDirs returns the existing element directories of the user
// style sheet paths.
func watchDirs() []string {
	var dirs []string
	for _, p := range style.Paths {
		for _, el := range style.Elements() {
			dir := filepath.Join(p, el.String())
			if st, err := os.Stat(dir); err == nil && st.IsDir() {
				dirs = append(dirs, dir)
			}
		}
	}
	return dirs
}

// isSheet returns whether the file name is a style sheet.
func isSheet(name string) bool {
	return slices.Contains([]string{".toml", ".yaml", ".yml"}, filepath.Ext(name))
}

// Watch builds the example figure, then rebuilds it whenever a user
// style sheet changes, until ctx is done. Build errors are logged.
func Watch(ctx context.Context, c *config.Config) error {
	dirs := watchDirs()
	if len(dirs) == 0 {
		return fmt.Errorf("no style sheet directories to watch in %v", style.Paths)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	errors.Log(Example(c))
	slog.Info("watching style sheets", "dirs", dirs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isSheet(event.Name) || event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			slog.Info("style sheet changed", "file", event.Name)
			style.Reset()
			errors.Log(Example(c))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watching style sheets", "err", err)
		}
	}
}
