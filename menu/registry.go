// Copyright (c) 2024, The Tao Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package menu

import "sync"

// Registry records every custom item ID ever added to any menu, so
// dispatch can tell a custom command apart from host-generated command
// IDs it does not own. It is append-only for the life of the process and
// safe for use from multiple windows; menus across unrelated windows
// share one registry because Windows command IDs share one numeric
// space.
//
// Construct one per application context with NewRegistry and inject it
// into both menu construction and dispatch, or rely on the shared
// DefaultRegistry.
type Registry struct {
	mu   sync.Mutex
	ids  []ID
	seen map[ID]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{seen: make(map[ID]struct{})}
}

// Add records id. Adding an ID that is already present is a no-op;
// the registry keeps first-insertion order and never removes entries.
func (r *Registry) Add(id ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.seen[id]; ok {
		return
	}
	r.seen[id] = struct{}{}
	r.ids = append(r.ids, id)
}

// Contains reports whether id was ever added.
func (r *Registry) Contains(id ID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.seen[id]
	return ok
}

// Len returns the number of distinct IDs recorded.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ids)
}

// IDs returns the recorded IDs in first-insertion order.
func (r *Registry) IDs() []ID {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ID, len(r.ids))
	copy(out, r.ids)
	return out
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used when no
// explicit one is supplied.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
