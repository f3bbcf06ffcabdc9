// Package watch re-runs a callback when watched files change on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hammamikhairi/recipeparse/internal/logger"
)

// DefaultDebounce is how long a file must stay quiet before run is called.
const DefaultDebounce = 100 * time.Millisecond

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before run is called.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// Watcher calls run for each watched file that changed. Editors often
// replace a file instead of writing it in place, so the parent
// directories are watched and events are filtered by name.
type Watcher struct {
	files    map[string]bool
	dirs     []string
	run      func(path string) error
	log      *logger.Logger
	debounce time.Duration
}

// New creates a watcher for paths. run receives the path as it was given.
func New(paths []string, run func(path string) error, log *logger.Logger, opts ...Option) (*Watcher, error) {
	if log == nil {
		log = logger.Nop()
	}
	w := &Watcher{
		files:    make(map[string]bool, len(paths)),
		run:      run,
		log:      log,
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}

	byAbs := make(map[string]string, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", p, err)
		}
		w.files[abs] = true
		byAbs[abs] = p
		if dir := filepath.Dir(abs); !slices.Contains(w.dirs, dir) {
			w.dirs = append(w.dirs, dir)
		}
	}
	inner := run
	w.run = func(abs string) error { return inner(byAbs[abs]) }
	return w, nil
}

// Watch watches paths until ctx is cancelled.
func Watch(ctx context.Context, paths []string, log *logger.Logger, run func(path string) error) error {
	w, err := New(paths, run, log)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}

// Run blocks until ctx is cancelled. Errors from run are logged and do
// not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	for _, dir := range w.dirs {
		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	w.log.Info("watching %d file(s) in %d dir(s)", len(w.files), len(w.dirs))

	pending := make(map[string]bool)
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("watcher stopped")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Clean(event.Name)
			if !w.files[name] {
				continue
			}
			w.log.Debug("watch: %s %s", event.Op, name)
			pending[name] = true
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.flush(pending)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watcher error: %v", err)
		}
	}
}

// flush runs the callback for every pending file in name order.
func (w *Watcher) flush(pending map[string]bool) {
	names := make([]string, 0, len(pending))
	for name := range pending {
		names = append(names, name)
		delete(pending, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := w.run(name); err != nil {
			w.log.Error("watch: %s: %v", name, err)
		}
	}
}
