// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

// Package dump implements the serialiser (component C6): rendering a
// resolved node, and bounded subtree, into the wire Accessible record.
package dump

import (
	"log"

	"github.com/tadek-project/tadek-daemon/internal/a11y"
	"github.com/tadek-project/tadek-daemon/internal/a11y/traverse"
	"github.com/tadek-project/tadek-daemon/internal/wire"
)

// ActionFocus is the synthetic action name prepended to a focusable
// node's actions.
const ActionFocus = "FOCUS"

// Fields selects which properties of a node a caller requested; depth
// and children are controlled separately by Dump's depth parameter.
type Fields struct {
	Name        bool
	Description bool
	Role        bool
	Count       bool
	Position    bool
	Size        bool
	Text        bool
	Value       bool
	Actions     bool
	States      bool
	Attributes  bool
	Relations   bool
}

// All selects every field, used by the search engine to fully serialise
// a match.
func All() Fields {
	return Fields{
		Name: true, Description: true, Role: true, Count: true,
		Position: true, Size: true, Text: true, Value: true,
		Actions: true, States: true, Attributes: true, Relations: true,
	}
}

// Dump renders obj (and, if depth > 0, its bounded subtree) into an
// Accessible record, populating only the fields requested. elog receives
// a message if a back-end panics mid-dump for a single node; that node
// degrades to a bare record but the rest of the tree is unaffected.
func Dump(reg *a11y.Registry, backend a11y.Backend, obj a11y.Object, path a11y.Path, depth int, fields Fields, elog *log.Logger) wire.Accessible {
	if obj == nil && len(path) >= 2 {
		return wire.Bare(path)
	}

	acc := wire.Accessible{Path: wire.FromA11y(path)}

	if depth > 0 {
		provider := traverse.NewForward(reg, backend, obj, path)
		for {
			t, ok := provider.Next()
			if !ok {
				break
			}
			child := Dump(reg, t.Backend, t.Object, t.Path, depth-1, fields, elog)
			acc.Children = append(acc.Children, child)
		}
	}

	switch {
	case len(path) == 0:
		if fields.Count {
			n := reg.Count()
			acc.Count = &n
		}
	case len(path) == 1:
		if fields.Name {
			n := backend.BackendName()
			acc.Name = &n
		}
		if fields.Count {
			n := backend.CountChildren(nil)
			acc.Count = &n
		}
	default:
		populateNode(reg, backend, obj, path, fields, &acc, elog)
	}

	return acc
}

// populateNode fills in the real-node fields of acc. Any panic raised by
// the back-end while doing so is recovered and degrades acc to a bare
// record for this node only; children already collected by Dump are
// discarded in that case since the node itself could not be trusted.
func populateNode(reg *a11y.Registry, backend a11y.Backend, obj a11y.Object, path a11y.Path, fields Fields, acc *wire.Accessible, elog *log.Logger) {
	defer func() {
		if r := recover(); r != nil {
			if elog != nil {
				elog.Printf("dumping accessible object error: %s: %v", path, r)
			}
			*acc = wire.Bare(path)
		}
	}()

	if fields.Name {
		n := backend.Name(obj)
		acc.Name = &n
	}
	if fields.Description {
		d := backend.Description(obj)
		acc.Description = &d
	}
	if fields.Role {
		r := a11y.RoleName(backend, obj)
		acc.Role = &r
	}
	if fields.Count {
		n := backend.CountChildren(obj)
		acc.Count = &n
	}
	if fields.Position {
		x, y := backend.Position(obj)
		acc.Position = &wire.Point{X: x, Y: y}
	}
	if fields.Size {
		w, h := backend.Size(obj)
		acc.Size = &wire.Point{X: w, Y: h}
	}
	if fields.Text {
		if text, ok := backend.Text(obj); ok {
			acc.Text = &text
			editable := backend.InState(obj, stateValue(backend, "EDITABLE"))
			acc.Editable = &editable
		}
	}
	if fields.Value {
		if v, ok := backend.Value(obj); ok {
			acc.Value = &v
		}
	}
	if fields.Actions {
		names := backend.ActionNames(obj)
		actions := make([]string, 0, len(names)+1)
		if backend.InState(obj, stateValue(backend, "FOCUSABLE")) {
			actions = append(actions, ActionFocus)
		}
		actions = append(actions, names...)
		acc.Actions = actions
	}
	if fields.States {
		acc.States = nil
		for _, s := range backend.States(obj) {
			if name, ok := backend.StateSet().Reverse(s); ok {
				acc.States = append(acc.States, name)
			}
		}
	}
	if fields.Attributes {
		acc.Attributes = backend.Attributes(obj)
	}
	if fields.Relations {
		for _, rel := range backend.Relations(obj) {
			name, ok := backend.RelationSet().Reverse(rel)
			if !ok {
				continue
			}
			targets := backend.RelationTargets(obj, rel)
			paths := make([]wire.Path, 0, len(targets))
			for _, t := range targets {
				paths = append(paths, wire.FromA11y(targetPath(reg, backend, path, t)))
			}
			acc.Relations = append(acc.Relations, wire.Relation{Name: name, Targets: paths})
		}
	}
}

// targetPath walks the parent chain of a relation target until absent,
// then prepends the back-end index and application index taken from the
// current node's own path, yielding an absolute Path for the target.
func targetPath(reg *a11y.Registry, backend a11y.Backend, path a11y.Path, target a11y.Object) a11y.Path {
	indices := make([]int, 0, 4)
	obj := target
	for obj != nil {
		idx, ok := backend.IndexInParent(obj)
		if !ok {
			break
		}
		indices = append([]int{idx}, indices...)
		parent, ok := backend.Parent(obj)
		if !ok {
			break
		}
		obj = parent
	}
	out := make(a11y.Path, 0, 2+len(indices))
	if len(path) >= 2 {
		out = append(out, path[0], path[1])
	}
	out = append(out, indices...)
	return out
}

// stateValue resolves a symbolic state name into its back-end value,
// returning nil for a name the back-end has not assigned (inState(obj,
// nil) is then simply false).
func stateValue(backend a11y.Backend, name string) a11y.Value {
	v, _ := backend.StateSet().Get(name)
	return v
}
