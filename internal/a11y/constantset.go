// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

package a11y

import "github.com/tadek-project/tadek-daemon/internal/a11yerr"

// Value is an opaque back-end-assigned constant value (a role, state,
// action, button or key code).
type Value interface{}

// ConstantSetBuilder accumulates name->value assignments for a fixed,
// enumerated list of legal names. A back-end populates one per capability
// set (actions, buttons, keys, relations, roles, states) during its own
// initialization, then seals it.
type ConstantSetBuilder struct {
	name   string
	legal  map[string]bool
	values map[string]Value
	order  []string
}

// NewConstantSetBuilder creates a builder for a named set with the given
// enumerated legal names. The set starts empty; each name is assigned
// exactly once via Set.
func NewConstantSetBuilder(name string, names ...string) *ConstantSetBuilder {
	b := &ConstantSetBuilder{
		name:   name,
		legal:  make(map[string]bool, len(names)),
		values: make(map[string]Value),
		order:  append([]string(nil), names...),
	}
	for _, n := range names {
		b.legal[n] = true
	}
	return b
}

// Set assigns value to name. It fails with AlreadyInitialized if the slot
// is already assigned, or with UnknownName if name is not in the legal
// list.
func (b *ConstantSetBuilder) Set(name string, value Value) error {
	if !b.legal[name] {
		return &a11yerr.UnknownName{Set: b.name, Name: name}
	}
	if _, ok := b.values[name]; ok {
		return &a11yerr.AlreadyInitialized{Set: b.name, Name: name}
	}
	b.values[name] = value
	return nil
}

// Seal returns an immutable ConstantSet over the builder's current
// assignments. Unassigned legal names are simply absent.
func (b *ConstantSetBuilder) Seal() *ConstantSet {
	values := make(map[string]Value, len(b.values))
	for n, v := range b.values {
		values[n] = v
	}
	return &ConstantSet{
		name:   b.name,
		legal:  b.legal,
		values: values,
		order:  append([]string(nil), b.order...),
	}
}

// ConstantSet is an immutable, write-once named symbol table. Iteration
// order follows the legal-name declaration order and skips unassigned
// slots.
type ConstantSet struct {
	name   string
	legal  map[string]bool
	values map[string]Value
	order  []string
}

// Name returns the set's own name (e.g. "Role"), used in error messages.
func (s *ConstantSet) Name() string {
	return s.name
}

// Get returns the value assigned to name. It fails with UnknownName if
// name is not in the legal list; an unassigned legal name returns
// (nil, nil) which callers treat as "unknown".
func (s *ConstantSet) Get(name string) (Value, error) {
	if !s.legal[name] {
		return nil, &a11yerr.UnknownName{Set: s.name, Name: name}
	}
	return s.values[name], nil
}

// Reverse performs a linear scan translating an opaque value back into its
// symbolic name. It returns ("", false) if no assigned name matches.
func (s *ConstantSet) Reverse(value Value) (string, bool) {
	if value == nil {
		return "", false
	}
	for _, name := range s.order {
		if v, ok := s.values[name]; ok && v == value {
			return name, true
		}
	}
	return "", false
}

// Values returns all assigned values, in legal-name declaration order.
func (s *ConstantSet) Values() []Value {
	out := make([]Value, 0, len(s.values))
	for _, name := range s.order {
		if v, ok := s.values[name]; ok {
			out = append(out, v)
		}
	}
	return out
}
