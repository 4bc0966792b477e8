// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

// Package a11y implements the core accessibility data model: paths,
// constant sets, the back-end capability contract and the back-end
// registry (components C1-C4 of the request-dispatch engine).
package a11y

import (
	"fmt"
	"strings"
)

// Path is an ordered sequence of non-negative integers addressing a node
// from the registry root. The empty path denotes the registry root;
// length 1 addresses a back-end's virtual root; length >= 2 addresses a
// specific accessible node.
type Path []int

// Child returns a new path extending p by one trailing index. p is never
// mutated.
func (p Path) Child(i int) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = i
	return child
}

// Index returns the last component of the path, or -1 for the empty path.
func (p Path) Index() int {
	if len(p) == 0 {
		return -1
	}
	return p[len(p)-1]
}

// Equal reports whether p and o address the same node.
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	c := make(Path, len(p))
	copy(c, p)
	return c
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = fmt.Sprint(v)
	}
	return "(" + strings.Join(parts, ",") + ")"
}
