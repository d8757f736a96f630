// Package registry is the process-wide map from an open pattern's key to its
// project state and undo/redo history, guarded by a single RWMutex. It is
// the Go equivalent of the original's tauri-managed AppState, generalized to
// also own the parallel PatternKey -> History map the original kept inside
// the command layer.
package registry

import (
	"sync"

	"github.com/grailbio/base/log"
	"github.com/pkg/errors"

	"github.com/niusia-ua/embroidery-studio/history"
	"github.com/niusia-ua/embroidery-studio/project"
)

// ErrNotFound is returned when an operation references a PatternKey that has
// no open project.
var ErrNotFound = errors.New("registry: pattern not found")

// Registry holds every currently open pattern project and its history.
// Reads (Project, History, Keys) take the read lock; structural changes (Open, Close) take the
// write lock. A single mutex covers both maps since they are always
// consistent with each other: a key is present in one if and only if it is
// present in the other.
type Registry struct {
	mu        sync.RWMutex
	projects  map[PatternKey]*project.Project
	histories map[PatternKey]*history.History
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		projects:  make(map[PatternKey]*project.Project),
		histories: make(map[PatternKey]*history.History),
	}
}

// Open registers proj under key with a fresh, empty history, replacing
// anything previously registered under the same key.
func (r *Registry) Open(key PatternKey, proj *project.Project) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects[key] = proj
	r.histories[key] = history.New()
	log.Debug.Printf("registry: opened %v", key.Fingerprint())
}

// Close removes key and everything associated with it.
func (r *Registry) Close(key PatternKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.projects, key)
	delete(r.histories, key)
	log.Debug.Printf("registry: closed %v", key.Fingerprint())
}

// Project returns the project registered under key.
func (r *Registry) Project(key PatternKey) (*project.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	proj, ok := r.projects[key]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "key %q", key)
	}
	return proj, nil
}

// History returns the history registered under key.
func (r *Registry) History(key PatternKey) (*history.History, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.histories[key]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "key %q", key)
	}
	return h, nil
}

// Keys returns every currently open pattern key.
func (r *Registry) Keys() []PatternKey {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]PatternKey, 0, len(r.projects))
	for k := range r.projects {
		keys = append(keys, k)
	}
	return keys
}
