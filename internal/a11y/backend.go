// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

package a11y

import "github.com/tadek-project/tadek-daemon/internal/a11yerr"

// Object is an opaque handle to a node in a back-end's accessibility
// tree. A nil Object addresses either "no such node" or, when used as a
// parent argument, the back-end's list of top-level applications.
type Object interface{}

// Backend is the capability contract every platform adapter implements:
// tree navigation, property reads, text/value mutation and input
// injection (component C2). Back-ends are not assumed thread-safe; the
// registry and dispatcher serialise access with a back-end-scoped mutex.
type Backend interface {
	// BackendName is this back-end's stable, non-empty declared name.
	// Back-ends are ordered lexicographically by BackendName.
	BackendName() string

	ActionSet() *ConstantSet
	ButtonSet() *ConstantSet
	KeySet() *ConstantSet
	RelationSet() *ConstantSet
	RoleSet() *ConstantSet
	StateSet() *ConstantSet

	// Desktop returns the root accessible object.
	Desktop() Object

	// CountChildren returns the number of direct children of parent. A
	// nil parent means "registered applications".
	CountChildren(parent Object) int

	// GetChild returns the i-th direct child of parent. Negative indices
	// count from the end. ok is false if i is out of range.
	GetChild(parent Object, i int) (child Object, ok bool)

	// Parent returns the parent of obj, or (nil, false) for a root.
	Parent(obj Object) (parent Object, ok bool)

	// IndexInParent returns i such that GetChild(Parent(obj), i) == obj.
	IndexInParent(obj Object) (index int, ok bool)

	Name(obj Object) string
	Description(obj Object) string
	Role(obj Object) Value
	Position(obj Object) (x, y int)
	Size(obj Object) (w, h int)
	// Text returns an object's text and whether it has any (a distinct
	// notion from an empty string).
	Text(obj Object) (text string, ok bool)
	Value(obj Object) (value float64, ok bool)
	Attributes(obj Object) map[string]string

	States(obj Object) []Value
	InState(obj Object, state Value) bool

	Actions(obj Object) []Value
	// ActionNames reverse-resolves Actions(obj) through ActionSet,
	// dropping any action with no symbolic name.
	ActionNames(obj Object) []string
	// DoAction performs the named or opaque action and reports success.
	DoAction(obj Object, action Value) bool

	Relations(obj Object) []Value
	RelationNames(obj Object) []string
	RelationTargets(obj Object, relation Value) []Object

	SetText(obj Object, text string) bool
	SetValue(obj Object, value float64) bool
	GrabFocus(obj Object) bool

	MouseClick(x, y int, button Value)
	MouseDoubleClick(x, y int, button Value)
	MousePress(x, y int, button Value)
	MouseRelease(x, y int, button Value)
	MouseAbsoluteMotion(x, y int)
	MouseRelativeMotion(x, y int)

	// KeyboardEvent generates a keyboard event for an already-resolved
	// integer key code and modifier codes. Symbolic-name and
	// single-character resolution is performed by ResolveKey before this
	// is called; see ResolveKey.
	KeyboardEvent(keycode int, modifiers []int)
}

// RoleName returns the symbolic name of obj's role, defaulting to
// "UNKNOWN" when the role value has no entry in the role set.
func RoleName(b Backend, obj Object) string {
	if name, ok := b.RoleSet().Reverse(b.Role(obj)); ok {
		return name
	}
	return "UNKNOWN"
}

// ResolveKey implements the shared keyboardEvent key-resolution rule: a
// symbolic name is looked up in keyset, a single character falls back to
// its code point, and an integer is used as-is. Anything else, including
// a multi-character string absent from keyset, fails with BadKeyType.
func ResolveKey(keyset *ConstantSet, key interface{}) (int, error) {
	switch k := key.(type) {
	case string:
		if v, err := keyset.Get(k); err == nil && v != nil {
			if code, ok := v.(int); ok {
				return code, nil
			}
		}
		runes := []rune(k)
		if len(runes) == 1 {
			return int(runes[0]), nil
		}
		return 0, &a11yerr.BadKeyType{Value: key}
	case int:
		return k, nil
	default:
		return 0, &a11yerr.BadKeyType{Value: key}
	}
}

// ResolveModifiers validates that every modifier is an integer key code.
func ResolveModifiers(modifiers []interface{}) ([]int, error) {
	out := make([]int, len(modifiers))
	for i, m := range modifiers {
		code, ok := m.(int)
		if !ok {
			return nil, &a11yerr.BadKeyType{Value: m}
		}
		out[i] = code
	}
	return out, nil
}
