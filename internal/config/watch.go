package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"pocket-calc/internal/logger"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the configuration file whenever it is written or replaced
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	logger   logger.Logger
	onChange func(Config)
	once     sync.Once
}

// NewWatcher watches the directory holding path, so editors that replace the
// file on save are still picked up.
func NewWatcher(path string, log logger.Logger, onChange func(Config)) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("watch: empty path: %w", ErrInvalid)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize watcher: %w", err)
	}

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		watcher:  fw,
		logger:   log,
		onChange: onChange,
	}, nil
}

// Run blocks until ctx is cancelled or the watcher is shut down
func (w *Watcher) Run(ctx context.Context) {
	w.logger.Info("ConfigWatcher", "watching configuration", map[string]interface{}{
		"path": w.path,
	})

	for {
		select {
		case <-ctx.Done():
			w.Shutdown()
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("ConfigWatcher", err, nil)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.Error("ConfigWatcher", err, map[string]interface{}{
			"path": w.path,
		})
		return
	}

	w.logger.Debug("ConfigWatcher", "configuration reloaded", map[string]interface{}{
		"time_layout": cfg.Clock.TimeLayout,
		"max_digits":  cfg.Calculator.MaxDigits,
	})

	if w.onChange != nil {
		w.onChange(cfg)
	}
}

func (w *Watcher) Shutdown() {
	w.once.Do(func() {
		w.watcher.Close()
	})
}
