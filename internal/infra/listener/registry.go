// Package listener keeps the callbacks registered with an event source.
package listener

import (
	"slices"
	"sync"

	"devicestore/internal/domain/service"
)

// Registry holds callbacks of type F and hands out detach handles.
type Registry[F any] struct {
	mu        sync.Mutex
	nextID    uint64
	listeners map[uint64]F
}

// NewRegistry returns an empty registry.
func NewRegistry[F any]() *Registry[F] {
	return &Registry[F]{listeners: make(map[uint64]F)}
}

// Add registers fn until the returned handle is detached.
func (r *Registry[F]) Add(fn F) service.ListenerHandle {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := r.nextID
	r.listeners[id] = fn

	return &handle{detach: func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		delete(r.listeners, id)
	}}
}

// Snapshot returns the registered callbacks in registration order.
func (r *Registry[F]) Snapshot() []F {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]uint64, 0, len(r.listeners))
	for id := range r.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]F, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.listeners[id])
	}

	return out
}

// Len returns the number of registered callbacks.
func (r *Registry[F]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.listeners)
}

type handle struct {
	once   sync.Once
	detach func()
}

func (h *handle) Detach() {
	h.once.Do(h.detach)
}
