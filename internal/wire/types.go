// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

// Package wire defines the protocol-facing data model: the Accessible
// record and the search/mutation requests and responses exchanged, as
// newline-delimited JSON, between tadekd and its clients. The encoding
// itself is done by the server package.
package wire

import "github.com/tadek-project/tadek-daemon/internal/a11y"

// Accessible is the wire record for a node in the accessibility tree.
// Scalar and struct fields are pointers so that field absence ("the
// requester did not ask") survives JSON round-tripping distinctly from a
// zero value. Slice and map fields are omitted when empty, so an empty
// list or map is indistinguishable on the wire from one not requested.
type Accessible struct {
	Path Path `json:"path"`

	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Role        *string `json:"role,omitempty"`
	Count       *int    `json:"count,omitempty"`

	Position *Point `json:"position,omitempty"`
	Size     *Point `json:"size,omitempty"`

	Text     *string `json:"text,omitempty"`
	Editable *bool   `json:"editable,omitempty"`
	Value    *float64 `json:"value,omitempty"`

	Actions    []string          `json:"actions,omitempty"`
	States     []string          `json:"states,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Relations  []Relation        `json:"relations,omitempty"`

	Children []Accessible `json:"children,omitempty"`
}

// Point is a generic (x, y) / (w, h) pair.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Relation is a named link from a node to zero or more target paths,
// possibly outside the current subtree.
type Relation struct {
	Name    string `json:"name"`
	Targets []Path `json:"targets"`
}

// Path is the wire representation of a11y.Path.
type Path []int

// FromA11y converts a core a11y.Path into its wire form.
func FromA11y(p a11y.Path) Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// ToA11y converts a wire Path back into a core a11y.Path.
func (p Path) ToA11y() a11y.Path {
	out := make(a11y.Path, len(p))
	copy(out, p)
	return out
}

// Bare returns an Accessible with only its path set - the bounded
// degraded record used when a back-end reference is broken or a node
// raises mid-dump.
func Bare(path a11y.Path) Accessible {
	return Accessible{Path: FromA11y(path)}
}
