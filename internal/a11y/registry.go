// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

package a11y

import (
	"sort"
	"sync"
)

// Registry holds the immutable, lexicographically sorted sequence of
// installed back-ends (component C3). Back-ends are registered explicitly
// at program start by passing them to NewRegistry; the registry is built
// once and is read-only afterwards.
//
// The original daemon discovers back-ends by scanning a plug-in
// directory and importing whatever it finds there, silently dropping any
// module that fails to load. We make discovery explicit instead: callers
// build up a list of constructed back-ends and hand them to NewRegistry, which
// performs the same de-duplication-by-name (first-seen wins) and sorts
// the result.
type Registry struct {
	backends []Backend
	locks    []*sync.Mutex
}

// NewRegistry freezes the given back-ends into a Registry, de-duplicating
// by BackendName (first-seen wins) and sorting lexicographically. A
// back-end whose BackendName is empty is dropped, mirroring "loading must
// never abort the daemon" for a malformed back-end.
func NewRegistry(backends ...Backend) *Registry {
	seen := make(map[string]bool, len(backends))
	kept := make([]Backend, 0, len(backends))
	for _, b := range backends {
		if b == nil || b.BackendName() == "" {
			continue
		}
		if seen[b.BackendName()] {
			continue
		}
		seen[b.BackendName()] = true
		kept = append(kept, b)
	}
	sort.Slice(kept, func(i, j int) bool {
		return kept[i].BackendName() < kept[j].BackendName()
	})
	locks := make([]*sync.Mutex, len(kept))
	for i := range locks {
		locks[i] = &sync.Mutex{}
	}
	return &Registry{backends: kept, locks: locks}
}

// Count returns the number of installed back-ends (a11yCount).
func (r *Registry) Count() int {
	return len(r.backends)
}

// At returns the back-end at index i, or (nil, false) if out of range.
func (r *Registry) At(i int) (Backend, bool) {
	if i < 0 || i >= len(r.backends) {
		return nil, false
	}
	return r.backends[i], true
}

// Lock serialises access to the back-end at index i for the duration of a
// single call; back-ends are assumed not to be thread-safe. Lock is a
// no-op for an out-of-range index.
func (r *Registry) Lock(i int) {
	if i >= 0 && i < len(r.locks) {
		r.locks[i].Lock()
	}
}

// Unlock releases the lock acquired by Lock.
func (r *Registry) Unlock(i int) {
	if i >= 0 && i < len(r.locks) {
		r.locks[i].Unlock()
	}
}

// Resolve walks path and returns the addressed (backend, object) pair.
// The empty path resolves to (nil, nil) - the registry root. An
// out-of-range backend index, or any out-of-range child index along the
// way, resolves to (nil, nil).
func (r *Registry) Resolve(path Path) (Backend, Object) {
	if len(path) == 0 {
		return nil, nil
	}
	b, ok := r.At(path[0])
	if !ok {
		return nil, nil
	}
	var obj Object
	for _, idx := range path[1:] {
		child, ok := b.GetChild(obj, idx)
		if !ok {
			return nil, nil
		}
		obj = child
	}
	return b, obj
}

// IndexOf returns the index of backend b in the registry, or -1.
func (r *Registry) IndexOf(b Backend) int {
	for i, be := range r.backends {
		if be == b {
			return i
		}
	}
	return -1
}
