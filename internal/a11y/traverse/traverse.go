// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

// Package traverse implements the three tree-traversal providers
// (component C5): forward siblings, reverse siblings, and breadth-first
// descendants. Each is a stateful iterator mirroring the Python
// generator-based providers of the original daemon, so a search can stop
// after the first matching candidate without walking the rest of the
// tree.
package traverse

import "github.com/tadek-project/tadek-daemon/internal/a11y"

// Triple is one (backend, object, path) step yielded by a provider. When
// Object is nil and Backend is non-nil, the triple addresses a back-end's
// virtual root. When Backend is also nil, the triple addresses the
// registry root itself (only ever the starting point, never yielded).
type Triple struct {
	Backend a11y.Backend
	Object  a11y.Object
	Path    a11y.Path
}

// Provider yields one Triple per call to Next until exhausted.
type Provider interface {
	Next() (Triple, bool)
}

func countAt(reg *a11y.Registry, backend a11y.Backend, obj a11y.Object) int {
	if backend == nil {
		return reg.Count()
	}
	return backend.CountChildren(obj)
}

func childAt(reg *a11y.Registry, backend a11y.Backend, obj a11y.Object, i int) (a11y.Backend, a11y.Object, bool) {
	if backend == nil {
		b, ok := reg.At(i)
		return b, nil, ok
	}
	child, ok := backend.GetChild(obj, i)
	return backend, child, ok
}

// Forward yields indices 0, 1, ..., count-1.
type Forward struct {
	reg     *a11y.Registry
	backend a11y.Backend
	obj     a11y.Object
	path    a11y.Path
	index   int
	count   int
}

func NewForward(reg *a11y.Registry, backend a11y.Backend, obj a11y.Object, path a11y.Path) *Forward {
	return &Forward{
		reg:     reg,
		backend: backend,
		obj:     obj,
		path:    path,
		count:   countAt(reg, backend, obj),
	}
}

func (f *Forward) Next() (Triple, bool) {
	if f.index >= f.count {
		return Triple{}, false
	}
	b, o, ok := childAt(f.reg, f.backend, f.obj, f.index)
	p := f.path.Child(f.index)
	f.index++
	if !ok {
		return Triple{}, false
	}
	return Triple{Backend: b, Object: o, Path: p}, true
}

// Backward yields indices count-1, ..., 0.
type Backward struct {
	reg     *a11y.Registry
	backend a11y.Backend
	obj     a11y.Object
	path    a11y.Path
	index   int
}

func NewBackward(reg *a11y.Registry, backend a11y.Backend, obj a11y.Object, path a11y.Path) *Backward {
	return &Backward{
		reg:     reg,
		backend: backend,
		obj:     obj,
		path:    path,
		index:   countAt(reg, backend, obj),
	}
}

func (b *Backward) Next() (Triple, bool) {
	b.index--
	if b.index < 0 {
		return Triple{}, false
	}
	backend, o, ok := childAt(b.reg, b.backend, b.obj, b.index)
	p := b.path.Child(b.index)
	if !ok {
		return Triple{}, false
	}
	return Triple{Backend: backend, Object: o, Path: p}, true
}

// Descendants yields nodes breadth-first across the full subtree rooted
// at the input triple: parent, then its siblings at the same level, then
// the next level. A FIFO queue avoids recursion. There is no cycle
// detection - the accessible graph is a tree by contract.
type Descendants struct {
	reg     *a11y.Registry
	backend a11y.Backend
	obj     a11y.Object
	path    a11y.Path
	index   int
	count   int
	queue   []Triple
}

func NewDescendants(reg *a11y.Registry, backend a11y.Backend, obj a11y.Object, path a11y.Path) *Descendants {
	return &Descendants{
		reg:     reg,
		backend: backend,
		obj:     obj,
		path:    path,
		count:   countAt(reg, backend, obj),
	}
}

func (d *Descendants) Next() (Triple, bool) {
	for {
		if d.index >= d.count {
			if len(d.queue) == 0 {
				return Triple{}, false
			}
			next := d.queue[0]
			d.queue = d.queue[1:]
			d.backend = next.Backend
			d.obj = next.Object
			d.path = next.Path
			d.index = 0
			d.count = countAt(d.reg, d.backend, d.obj)
			continue
		}
		backend, o, ok := childAt(d.reg, d.backend, d.obj, d.index)
		p := d.path.Child(d.index)
		d.index++
		if !ok {
			continue
		}
		if countAt(d.reg, backend, o) > 0 {
			d.queue = append(d.queue, Triple{Backend: backend, Object: o, Path: p})
		}
		return Triple{Backend: backend, Object: o, Path: p}, true
	}
}
