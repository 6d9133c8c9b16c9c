package config

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 250 * time.Millisecond

// Watch delivers a debounced signal whenever the config file is written,
// created, removed or renamed. The parent directory is watched so editors
// that replace the file atomically are still seen. Returns a stop
// function.
func Watch(path string, onChange func()) (func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}
	go debounceEvents(watcher, path, onChange)
	return watcher.Close, nil
}

func debounceEvents(watcher *fsnotify.Watcher, path string, onChange func()) {
	var timer *time.Timer
	fire := make(chan struct{}, 1)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.AfterFunc(watchDebounce, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(watchDebounce)
			}
		case <-fire:
			timer = nil
			onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("config: watch error", slog.Any("error", err))
		}
	}
}
