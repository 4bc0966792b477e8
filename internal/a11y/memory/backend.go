// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

// Package memory provides a reference, in-process accessibility back-end
// (component C2) used as the default back-end when no platform adapter
// is linked in, and exercised directly by the core's tests. It has no
// real GUI toolkit behind it: its tree is built up in memory by the
// caller via NewBackend/AddApplication/AddChild.
package memory

import (
	"github.com/tadek-project/tadek-daemon/internal/a11y"
)

// Fixed capability name lists. The concrete values are a fixture of this
// reference back-end, not part of the core contract - a real platform
// adapter declares its own.
var (
	roleNames = []string{
		"application", "frame", "dialog", "panel", "push-button",
		"menu-item", "check-box", "label", "text", "window",
	}
	stateNames = []string{
		"ENABLED", "VISIBLE", "SENSITIVE", "FOCUSABLE", "FOCUSED",
		"EDITABLE", "CHECKED", "SELECTED",
	}
	actionNames = []string{
		"Activate", "Toggle", "Expand", "Collapse", "Press",
	}
	relationNames = []string{
		"LabelFor", "LabeledBy", "ControllerFor", "ControlledBy",
	}
	buttonNames = []string{"LEFT", "MIDDLE", "RIGHT"}
	keyNames    = []string{
		"Return", "Escape", "Tab", "BackSpace", "Space",
		"Up", "Down", "Left", "Right",
	}
)

// Backend is the reference in-memory accessibility back-end.
type Backend struct {
	name string

	roles     *a11y.ConstantSet
	states    *a11y.ConstantSet
	actions   *a11y.ConstantSet
	relations *a11y.ConstantSet
	buttons   *a11y.ConstantSet
	keys      *a11y.ConstantSet

	apps []*Node

	// Input injection is recorded rather than actually performed, since
	// this back-end has no real display to drive. Tests assert against
	// these logs.
	MouseEvents    []MouseEvent
	KeyboardEvents []KeyboardEvent
}

type MouseEvent struct {
	Kind   string
	X, Y   int
	Button a11y.Value
}

type KeyboardEvent struct {
	Keycode   int
	Modifiers []int
}

// NewBackend constructs an empty in-memory back-end named name, sealing
// its six constant sets with sequential integer values assigned in
// declaration order - mirroring a real back-end's one-time assignment at
// load time.
func NewBackend(name string) *Backend {
	b := &Backend{name: name}
	b.roles = sealSequential("Role", roleNames)
	b.states = sealSequential("State", stateNames)
	b.actions = sealSequential("Action", actionNames)
	b.relations = sealSequential("Relation", relationNames)
	b.buttons = sealSequential("Button", buttonNames)
	b.keys = sealSequentialKeys(keyNames)
	return b
}

func sealSequential(name string, names []string) *a11y.ConstantSet {
	builder := a11y.NewConstantSetBuilder(name, names...)
	for i, n := range names {
		builder.Set(n, i)
	}
	return builder.Seal()
}

// sealSequentialKeys assigns each symbolic key name a synthetic keycode
// distinct from ASCII code points, so single-character fallback
// resolution (see a11y.ResolveKey) never collides with a named key.
func sealSequentialKeys(names []string) *a11y.ConstantSet {
	builder := a11y.NewConstantSetBuilder("Key", names...)
	for i, n := range names {
		builder.Set(n, 0x1000+i)
	}
	return builder.Seal()
}

func (b *Backend) BackendName() string { return b.name }

func (b *Backend) ActionSet() *a11y.ConstantSet   { return b.actions }
func (b *Backend) ButtonSet() *a11y.ConstantSet   { return b.buttons }
func (b *Backend) KeySet() *a11y.ConstantSet      { return b.keys }
func (b *Backend) RelationSet() *a11y.ConstantSet { return b.relations }
func (b *Backend) RoleSet() *a11y.ConstantSet     { return b.roles }
func (b *Backend) StateSet() *a11y.ConstantSet    { return b.states }

func (b *Backend) Desktop() a11y.Object { return nil }

// AddApplication appends a new top-level application node and returns it.
func (b *Backend) AddApplication(name string) *Node {
	n := &Node{name: name, role: "application", backend: b, index: len(b.apps)}
	b.apps = append(b.apps, n)
	return n
}

func asNode(obj a11y.Object) *Node {
	if obj == nil {
		return nil
	}
	return obj.(*Node)
}

func (b *Backend) CountChildren(parent a11y.Object) int {
	if parent == nil {
		return len(b.apps)
	}
	return len(asNode(parent).children)
}

func (b *Backend) GetChild(parent a11y.Object, i int) (a11y.Object, bool) {
	children := b.apps
	if parent != nil {
		children = asNode(parent).children
	}
	if i < 0 {
		i += len(children)
	}
	if i < 0 || i >= len(children) {
		return nil, false
	}
	return children[i], true
}

func (b *Backend) Parent(obj a11y.Object) (a11y.Object, bool) {
	n := asNode(obj)
	if n.parent == nil {
		return nil, false
	}
	return n.parent, true
}

func (b *Backend) IndexInParent(obj a11y.Object) (int, bool) {
	return asNode(obj).index, true
}

func (b *Backend) Name(obj a11y.Object) string        { return asNode(obj).name }
func (b *Backend) Description(obj a11y.Object) string { return asNode(obj).description }

func (b *Backend) Role(obj a11y.Object) a11y.Value {
	v, _ := b.roles.Get(asNode(obj).role)
	return v
}

func (b *Backend) Position(obj a11y.Object) (int, int) {
	n := asNode(obj)
	return n.x, n.y
}

func (b *Backend) Size(obj a11y.Object) (int, int) {
	n := asNode(obj)
	return n.w, n.h
}

func (b *Backend) Text(obj a11y.Object) (string, bool) {
	n := asNode(obj)
	if n.text == nil {
		return "", false
	}
	return *n.text, true
}

func (b *Backend) Value(obj a11y.Object) (float64, bool) {
	n := asNode(obj)
	if n.value == nil {
		return 0, false
	}
	return *n.value, true
}

func (b *Backend) Attributes(obj a11y.Object) map[string]string {
	return asNode(obj).attributes
}

func (b *Backend) States(obj a11y.Object) []a11y.Value {
	n := asNode(obj)
	out := make([]a11y.Value, 0, len(n.states))
	for _, s := range n.states {
		if v, err := b.states.Get(s); err == nil && v != nil {
			out = append(out, v)
		}
	}
	return out
}

func (b *Backend) InState(obj a11y.Object, state a11y.Value) bool {
	if state == nil {
		return false
	}
	for _, v := range b.States(obj) {
		if v == state {
			return true
		}
	}
	return false
}

func (b *Backend) Actions(obj a11y.Object) []a11y.Value {
	n := asNode(obj)
	out := make([]a11y.Value, 0, len(n.actions))
	for _, a := range n.actions {
		if v, err := b.actions.Get(a); err == nil && v != nil {
			out = append(out, v)
		}
	}
	return out
}

func (b *Backend) ActionNames(obj a11y.Object) []string {
	out := make([]string, 0, len(asNode(obj).actions))
	for _, a := range asNode(obj).actions {
		if name, ok := b.actions.Reverse(mustGet(b.actions, a)); ok {
			out = append(out, name)
		}
	}
	return out
}

func mustGet(set *a11y.ConstantSet, name string) a11y.Value {
	v, _ := set.Get(name)
	return v
}

func (b *Backend) DoAction(obj a11y.Object, action a11y.Value) bool {
	n := asNode(obj)
	name, ok := b.actions.Reverse(action)
	if !ok {
		if s, ok := action.(string); ok {
			name = s
		} else {
			return false
		}
	}
	for _, a := range n.actions {
		if a == name {
			return true
		}
	}
	return false
}

func (b *Backend) Relations(obj a11y.Object) []a11y.Value {
	n := asNode(obj)
	out := make([]a11y.Value, 0, len(n.relations))
	for name := range n.relations {
		if v, err := b.relations.Get(name); err == nil && v != nil {
			out = append(out, v)
		}
	}
	return out
}

func (b *Backend) RelationNames(obj a11y.Object) []string {
	n := asNode(obj)
	out := make([]string, 0, len(n.relations))
	for name := range n.relations {
		out = append(out, name)
	}
	return out
}

func (b *Backend) RelationTargets(obj a11y.Object, relation a11y.Value) []a11y.Object {
	n := asNode(obj)
	name, ok := b.relations.Reverse(relation)
	if !ok {
		return nil
	}
	targets := n.relations[name]
	out := make([]a11y.Object, len(targets))
	for i, t := range targets {
		out[i] = t
	}
	return out
}

func (b *Backend) SetText(obj a11y.Object, text string) bool {
	n := asNode(obj)
	if n.text == nil {
		return false
	}
	n.text = &text
	return true
}

func (b *Backend) SetValue(obj a11y.Object, value float64) bool {
	n := asNode(obj)
	if n.value == nil {
		return false
	}
	n.value = &value
	return true
}

func (b *Backend) GrabFocus(obj a11y.Object) bool {
	return b.InState(obj, mustGet(b.states, "FOCUSABLE"))
}

func (b *Backend) MouseClick(x, y int, button a11y.Value) {
	b.MouseEvents = append(b.MouseEvents, MouseEvent{Kind: "CLICK", X: x, Y: y, Button: button})
}
func (b *Backend) MouseDoubleClick(x, y int, button a11y.Value) {
	b.MouseEvents = append(b.MouseEvents, MouseEvent{Kind: "DOUBLE_CLICK", X: x, Y: y, Button: button})
}
func (b *Backend) MousePress(x, y int, button a11y.Value) {
	b.MouseEvents = append(b.MouseEvents, MouseEvent{Kind: "PRESS", X: x, Y: y, Button: button})
}
func (b *Backend) MouseRelease(x, y int, button a11y.Value) {
	b.MouseEvents = append(b.MouseEvents, MouseEvent{Kind: "RELEASE", X: x, Y: y, Button: button})
}
func (b *Backend) MouseAbsoluteMotion(x, y int) {
	b.MouseEvents = append(b.MouseEvents, MouseEvent{Kind: "ABSOLUTE_MOTION", X: x, Y: y})
}
func (b *Backend) MouseRelativeMotion(x, y int) {
	b.MouseEvents = append(b.MouseEvents, MouseEvent{Kind: "RELATIVE_MOTION", X: x, Y: y})
}

func (b *Backend) KeyboardEvent(keycode int, modifiers []int) {
	b.KeyboardEvents = append(b.KeyboardEvents, KeyboardEvent{Keycode: keycode, Modifiers: modifiers})
}

// Node is one node in the in-memory accessibility tree.
type Node struct {
	backend     *Backend
	name        string
	description string
	role        string
	x, y        int
	w, h        int
	text        *string
	value       *float64
	states      []string
	actions     []string
	attributes  map[string]string
	relations   map[string][]*Node

	parent   *Node
	index    int
	children []*Node
}

// AddChild appends a new child node with the given role and returns it.
func (n *Node) AddChild(name, role string) *Node {
	child := &Node{
		backend: n.backend,
		name:    name,
		role:    role,
		parent:  n,
		index:   len(n.children),
	}
	n.children = append(n.children, child)
	return child
}

func (n *Node) SetDescription(d string) *Node { n.description = d; return n }
func (n *Node) SetPosition(x, y int) *Node    { n.x, n.y = x, y; return n }
func (n *Node) SetSize(w, h int) *Node        { n.w, n.h = w, h; return n }
func (n *Node) SetText(t string) *Node        { n.text = &t; return n }
func (n *Node) SetValue(v float64) *Node      { n.value = &v; return n }
func (n *Node) SetStates(states ...string) *Node {
	n.states = states
	return n
}
func (n *Node) SetActions(actions ...string) *Node {
	n.actions = actions
	return n
}
func (n *Node) SetAttributes(attrs map[string]string) *Node {
	n.attributes = attrs
	return n
}
func (n *Node) AddRelation(name string, targets ...*Node) *Node {
	if n.relations == nil {
		n.relations = make(map[string][]*Node)
	}
	n.relations[name] = append(n.relations[name], targets...)
	return n
}
