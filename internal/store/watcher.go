package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/nauticalab/coder-workspace/internal/logger"
)

// configMapDataDir is the symlink kubelet repoints when a mounted ConfigMap
// or Secret changes.
const configMapDataDir = "..data"

// Watcher invokes callbacks when watched config files change. It watches
// the parent directory so files replaced by rename are still picked up.
type Watcher struct {
	watcher   *fsnotify.Watcher
	callbacks []func()
	mu        sync.RWMutex
	// watched maps absolute file paths to the context that scopes them.
	watched   map[string]context.Context
	dirs      map[string]int
	log       logger.Logger
	stopCh    chan struct{}
	startOnce sync.Once
	closeOnce sync.Once
}

// NewWatcher creates a new configuration file watcher.
func NewWatcher(log logger.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Watcher{
		watcher: fsWatcher,
		watched: make(map[string]context.Context),
		dirs:    make(map[string]int),
		log:     log,
		stopCh:  make(chan struct{}),
	}, nil
}

// Watch starts watching path until ctx is canceled or the watcher is closed.
func (w *Watcher) Watch(ctx context.Context, path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	dir := filepath.Dir(absPath)

	w.mu.Lock()
	if w.dirs[dir] == 0 {
		if err := w.watcher.Add(dir); err != nil {
			w.mu.Unlock()
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	w.dirs[dir]++
	w.watched[absPath] = ctx
	w.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
		case <-w.stopCh:
		}
		w.unwatch(absPath, dir)
	}()

	w.startOnce.Do(func() {
		go w.handleEvents()
	})
	return nil
}

func (w *Watcher) unwatch(absPath, dir string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.watched[absPath]; !ok {
		return
	}
	delete(w.watched, absPath)
	w.dirs[dir]--
	if w.dirs[dir] == 0 {
		delete(w.dirs, dir)
		// Remove fails once the watcher is closed; nothing left to release then.
		_ = w.watcher.Remove(dir)
	}
}

// OnChange registers a callback to be invoked when a watched file changes.
func (w *Watcher) OnChange(callback func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// handleEvents processes file system events until the watcher is closed.
func (w *Watcher) handleEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.affectsWatched(event.Name) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.log.Debug("config file changed", "path", event.Name, "op", event.Op.String())
				w.notifyCallbacks()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("file watcher error", "error", err)
		}
	}
}

// affectsWatched reports whether an event on name can change a watched file.
// Kubernetes updates mounted ConfigMaps by swapping the ..data symlink, so
// that name counts for every watched file in its directory.
func (w *Watcher) affectsWatched(name string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if filepath.Base(name) == configMapDataDir {
		return w.dirs[filepath.Dir(name)] > 0
	}
	pathCtx, ok := w.watched[name]
	return ok && pathCtx.Err() == nil
}

// notifyCallbacks invokes all registered callbacks.
func (w *Watcher) notifyCallbacks() {
	w.mu.RLock()
	callbacks := make([]func(), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()
	for _, callback := range callbacks {
		if callback != nil {
			callback()
		}
	}
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	var closeErr error
	w.closeOnce.Do(func() {
		close(w.stopCh)
		if err := w.watcher.Close(); err != nil {
			closeErr = fmt.Errorf("failed to close watcher: %w", err)
		}
	})
	return closeErr
}
