// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

// Package search implements the structural search engine (component C7):
// walking one of the traversal providers, applying mixed literal/regex
// predicates, and returning the n-th passing candidate fully serialised.
package search

import (
	"log"
	"regexp"

	"github.com/tadek-project/tadek-daemon/internal/a11y"
	"github.com/tadek-project/tadek-daemon/internal/a11y/dump"
	"github.com/tadek-project/tadek-daemon/internal/a11y/traverse"
	"github.com/tadek-project/tadek-daemon/internal/a11yerr"
	"github.com/tadek-project/tadek-daemon/internal/wire"
)

// Method names the traversal strategy a search uses.
type Method string

const (
	Simple    Method = "SIMPLE"
	Backwards Method = "BACKWARDS"
	Deep      Method = "DEEP"
)

// Predicates selects which properties a candidate must match. A nil
// pointer/absent value means "no constraint on this property". A Name,
// Description or Text predicate beginning with '&' is a regular
// expression, matched over the property's full span; otherwise it
// requires exact equality. Role, Action, Relation and State are always
// compared literally: a leading '&' is not treated as a regex there.
type Predicates struct {
	Name        *string
	Description *string
	Role        *string
	Index       *int
	Count       *int
	Action      *string
	Relation    *string
	State       *string
	Text        *string
}

// stringMatcher compares a candidate string against a literal or compiled
// regex predicate.
type stringMatcher struct {
	literal *string
	pattern *regexp.Regexp
}

func newStringMatcher(pred *string) (*stringMatcher, error) {
	if pred == nil {
		return nil, nil
	}
	if len(*pred) > 0 && (*pred)[0] == '&' {
		re, err := regexp.Compile("(?s)" + (*pred)[1:])
		if err != nil {
			return nil, err
		}
		return &stringMatcher{pattern: re}, nil
	}
	lit := *pred
	return &stringMatcher{literal: &lit}, nil
}

func (m *stringMatcher) match(value string) bool {
	if m == nil {
		return true
	}
	if m.pattern != nil {
		loc := m.pattern.FindStringIndex(value)
		return loc != nil && loc[0] == 0 && loc[1] == len(value)
	}
	return *m.literal == value
}

// Result is the outcome of a Search call.
type Result struct {
	Status     bool
	Accessible wire.Accessible
	// Resolved carries the matched (backend, object, path) triple on a
	// successful search, for the caller to write into a resolution
	// cache.
	Resolved *traverse.Triple
}

// Search walks the provider selected by method starting at (backend,
// obj, path), filtering candidates by predicates, and returns the
// (nth+1)-th passing candidate fully serialised. nth is zero-based;
// following the original daemon's loop condition ("nth < i" with i
// starting at 1), a negative nth is satisfied by the first passing
// candidate.
func Search(reg *a11y.Registry, backend a11y.Backend, obj a11y.Object, path a11y.Path, method Method, pred Predicates, nth int, elog *log.Logger) (Result, error) {
	var provider traverse.Provider
	switch method {
	case Simple:
		provider = traverse.NewForward(reg, backend, obj, path)
	case Backwards:
		provider = traverse.NewBackward(reg, backend, obj, path)
	case Deep:
		provider = traverse.NewDescendants(reg, backend, obj, path)
	default:
		return Result{}, &a11yerr.UnknownMethod{Method: string(method)}
	}

	nameM, err := newStringMatcher(pred.Name)
	if err != nil {
		return Result{}, err
	}
	descM, err := newStringMatcher(pred.Description)
	if err != nil {
		return Result{}, err
	}
	textM, err := newStringMatcher(pred.Text)
	if err != nil {
		return Result{}, err
	}

	i := 0
	for {
		t, ok := provider.Next()
		if !ok {
			break
		}
		if !matches(t, pred, nameM, descM, textM) {
			continue
		}
		i++
		if nth < i {
			acc := dump.Dump(reg, t.Backend, t.Object, t.Path, 0, dump.All(), elog)
			triple := t
			return Result{Status: true, Accessible: acc, Resolved: &triple}, nil
		}
	}
	return Result{Status: false, Accessible: wire.Bare(path)}, nil
}

func matches(t traverse.Triple, pred Predicates, nameM, descM, textM *stringMatcher) bool {
	if pred.Index != nil && *pred.Index != t.Path.Index() {
		return false
	}
	if t.Object == nil {
		// Back-end virtual root candidate: only name/count apply; any
		// other predicate disqualifies it.
		if pred.Index != nil || pred.Description != nil || pred.Role != nil || pred.Action != nil ||
			pred.Relation != nil || pred.State != nil || pred.Text != nil {
			return false
		}
		if nameM != nil && !nameM.match(t.Backend.BackendName()) {
			return false
		}
		if pred.Count != nil && t.Backend.CountChildren(nil) != *pred.Count {
			return false
		}
		return true
	}
	b := t.Backend
	if nameM != nil && !nameM.match(b.Name(t.Object)) {
		return false
	}
	if descM != nil && !descM.match(b.Description(t.Object)) {
		return false
	}
	if pred.Role != nil && a11y.RoleName(b, t.Object) != *pred.Role {
		return false
	}
	if pred.Count != nil && b.CountChildren(t.Object) != *pred.Count {
		return false
	}
	if pred.Action != nil {
		found := false
		for _, name := range b.ActionNames(t.Object) {
			if name == *pred.Action {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if pred.Relation != nil {
		found := false
		for _, name := range b.RelationNames(t.Object) {
			if name == *pred.Relation {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if pred.State != nil {
		v, err := b.StateSet().Get(*pred.State)
		if err != nil || v == nil || !b.InState(t.Object, v) {
			return false
		}
	}
	if textM != nil {
		text, ok := b.Text(t.Object)
		if !ok || !textM.match(text) {
			return false
		}
	}
	return true
}
