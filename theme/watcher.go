package theme

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events produced by a theme
// package install into one change notification.
const DefaultDebounce = 250 * time.Millisecond

// ErrWatcherClosed is returned by Add after Close.
var ErrWatcherClosed = errors.New("theme: watcher closed")

// Watcher reports changes to cursor theme directories so the host can
// re-theme its pointer.
//
// Each search directory is watched together with every theme in it and
// that theme's cursors directory, so installing or removing a theme,
// editing index.theme and replacing a cursor file are all reported.
// Themes created later are picked up as they appear.
//
// Changes delivers at most one pending notification; a slow consumer
// sees one signal for any number of changes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	changes  chan struct{}
	debounce time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	bases  map[string]bool
	closed bool
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewWatcher watches every existing directory in paths. Missing
// directories are skipped.
func NewWatcher(paths []string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	w := &Watcher{
		fsw:      fsw,
		changes:  make(chan struct{}, 1),
		debounce: debounce,
		logger:   logger,
		bases:    make(map[string]bool),
		done:     make(chan struct{}),
	}
	for _, p := range paths {
		if err := w.Add(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			_ = fsw.Close()
			return nil, err
		}
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Add starts watching dir, its themes and their cursors directories.
func (w *Watcher) Add(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWatcherClosed
	}
	if _, err := os.Stat(dir); err != nil {
		return err
	}
	if err := w.fsw.Add(dir); err != nil {
		return err
	}
	w.bases[filepath.Clean(dir)] = true

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || e.Type()&fs.ModeSymlink != 0 {
			w.addTheme(filepath.Join(dir, e.Name()))
		}
	}
	return nil
}

// addTheme watches a theme directory and its cursors directory.
// Caller must hold w.mu.
func (w *Watcher) addTheme(dir string) {
	for _, p := range []string{dir, filepath.Join(dir, "cursors")} {
		if fi, err := os.Stat(p); err != nil || !fi.IsDir() {
			continue
		}
		if err := w.fsw.Add(p); err != nil {
			w.logger.Debug("cannot watch cursor theme directory", "path", p, "err", err)
		}
	}
}

// created extends the watch to a theme or cursors directory that appeared
// after Add.
func (w *Watcher) created(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	parent := filepath.Dir(name)
	switch {
	case w.bases[parent]:
		w.addTheme(name)
	case filepath.Base(name) == "cursors" && w.bases[filepath.Dir(parent)]:
		w.addTheme(parent)
	}
}

// Changes returns the notification channel.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops the watcher. Close is idempotent.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.done)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-w.done:
			timer.Stop()
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.logger.Debug("cursor theme directory changed", "path", ev.Name, "op", ev.Op.String())
			if ev.Has(fsnotify.Create) {
				w.created(ev.Name)
			}
			timer.Reset(w.debounce)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("cursor theme watcher error", "err", err)
		case <-timer.C:
			select {
			case w.changes <- struct{}{}:
			default:
			}
		}
	}
}
