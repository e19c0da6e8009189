// Package registry provides the one storage primitive every feature module
// shares: an append-only, insertion-ordered, process-lifetime record list
// looked up by linear scan on a designated key field. Records are never
// updated or deleted; state lives and dies with the process.
package registry

import (
	"strings"
	"sync"
)

type Registry[T any] struct {
	mu   sync.RWMutex
	recs []T
	key  func(T) string
}

// New builds a registry whose Find matches on the given key field,
// case-insensitively.
func New[T any](key func(T) string) *Registry[T] {
	return &Registry[T]{key: key}
}

func (r *Registry[T]) Add(rec T) T {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.recs = append(r.recs, rec)
	return rec
}

// Find returns the first record whose key matches, in insertion order.
func (r *Registry[T]) Find(key string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.recs {
		if strings.EqualFold(r.key(rec), key) {
			return rec, true
		}
	}

	var zero T
	return zero, false
}

func (r *Registry[T]) List() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, len(r.recs))
	copy(out, r.recs)
	return out
}

func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.recs)
}
