package reload

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce batches rapid saves into one invalidation.
const DefaultDebounce = 200 * time.Millisecond

// Invalidator drops cached templates. *gotemplate.Engine satisfies it.
type Invalidator interface {
	Invalidate(names ...string)
}

// Option customises a Watcher.
type Option func(*Watcher)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithExtension limits events to files with ext (".html" by default).
func WithExtension(ext string) Option {
	return func(w *Watcher) {
		ext = strings.TrimSpace(ext)
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		w.extension = ext
	}
}

// Watcher clears the template cache whenever a view under dir changes, so
// edited views are recompiled on the next request.
type Watcher struct {
	mu        sync.Mutex
	dir       string
	target    Invalidator
	logger    *zap.Logger
	debounce  time.Duration
	extension string

	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// New prepares a watcher for dir. Call Start to begin watching.
func New(dir string, target Invalidator, opts ...Option) (*Watcher, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("reload: directory is required")
	}
	if target == nil {
		return nil, fmt.Errorf("reload: invalidation target is required")
	}
	w := &Watcher{
		dir:       dir,
		target:    target,
		logger:    zap.NewNop(),
		debounce:  DefaultDebounce,
		extension: ".html",
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w, nil
}

// Start adds dir and its subdirectories and runs the event loop in a
// goroutine. Starting a running watcher is a no-op.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("reload: new watcher: %w", err)
	}
	if err := addTree(watcher, w.dir); err != nil {
		_ = watcher.Close()
		return err
	}

	w.watcher = watcher
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.running = true
	go w.run()

	w.logger.Info("watching views", zap.String("dir", w.dir))
	return nil
}

// Stop ends the event loop and waits for it to exit.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	close(w.stopCh)
	doneCh, watcher := w.doneCh, w.watcher
	w.mu.Unlock()

	<-doneCh
	if err := watcher.Close(); err != nil {
		return fmt.Errorf("reload: close watcher: %w", err)
	}
	return nil
}

// Run starts the watcher and stops it when ctx ends.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	return w.Stop()
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()
	pending := false

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("view changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if !pending {
				pending = true
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("view watcher error", zap.Error(err))

		case <-timer.C:
			pending = false
			w.target.Invalidate()
			w.logger.Info("view cache cleared")
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	if event.Op&fsnotify.Create != 0 {
		if isDir(event.Name) {
			if err := addTree(w.watcher, event.Name); err != nil {
				w.logger.Warn("watch new directory", zap.String("path", event.Name), zap.Error(err))
			}
			return false
		}
	}
	if w.extension == "" {
		return true
	}
	return strings.EqualFold(filepath.Ext(event.Name), w.extension)
}

func addTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("reload: walk %s: %w", p, err)
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(p); err != nil {
			return fmt.Errorf("reload: watch %s: %w", p, err)
		}
		return nil
	})
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
