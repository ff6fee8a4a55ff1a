package store

import (
	"fmt"
	"sync/atomic"

	"github.com/nauticalab/coder-workspace/internal/logger"
)

// Loader builds a fresh Source from its backing files or APIs.
type Loader func() (Source, error)

// Reloadable holds the latest successfully loaded Source. Readers take a
// Snapshot so a single resolution never mixes two generations of settings.
type Reloadable struct {
	load    Loader
	current atomic.Pointer[snapshot]
	log     logger.Logger
}

type snapshot struct {
	src Source
}

// NewReloadable performs the initial load. It fails if that load fails.
func NewReloadable(load Loader, log logger.Logger) (*Reloadable, error) {
	if log == nil {
		log = logger.NewNop()
	}
	r := &Reloadable{load: load, log: log}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload replaces the current Source. On failure the previous one is kept.
func (r *Reloadable) Reload() error {
	src, err := r.load()
	if err != nil {
		r.log.Warn("config reload failed, keeping previous settings", "error", err)
		return fmt.Errorf("failed to reload config: %w", err)
	}
	r.current.Store(&snapshot{src: src})
	r.log.Info("config loaded", "keys", len(src.Keys()))
	return nil
}

// Snapshot returns the current Source.
func (r *Reloadable) Snapshot() Source {
	return r.current.Load().src
}

// Lookup implements Source against the current snapshot.
func (r *Reloadable) Lookup(key string) (string, bool) {
	return r.Snapshot().Lookup(key)
}

// Keys implements Source against the current snapshot.
func (r *Reloadable) Keys() []string {
	return r.Snapshot().Keys()
}
