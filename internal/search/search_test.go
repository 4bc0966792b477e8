// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

package search_test

import (
	"testing"

	"github.com/tadek-project/tadek-daemon/internal/a11y"
	"github.com/tadek-project/tadek-daemon/internal/a11y/memory"
	"github.com/tadek-project/tadek-daemon/internal/a11yerr"
	"github.com/tadek-project/tadek-daemon/internal/search"
)

func buildButtons() (*a11y.Registry, *memory.Backend, *memory.Node) {
	b := memory.NewBackend("at-spi")
	app := b.AddApplication("Editor")
	app.AddChild("OK", "push-button")
	app.AddChild("Cancel", "push-button")
	app.AddChild("OK Apply", "push-button")
	app.AddChild("OK cancel", "push-button")
	reg := a11y.NewRegistry(b)
	return reg, b, app
}

func strPtr(s string) *string { return &s }

func TestSearchSimpleRegexNameAndRoleNth(t *testing.T) {
	reg, b, app := buildButtons()
	role := "push-button"
	pred := search.Predicates{Role: &role, Name: strPtr("&OK.*")}

	result, err := search.Search(reg, b, app, a11y.Path{0, 0}, search.Simple, pred, 1, nil)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if !result.Status {
		t.Fatalf("expected a match")
	}
	want := a11y.Path{0, 0, 2}
	if !result.Accessible.Path.ToA11y().Equal(want) {
		t.Fatalf("matched path = %v, want %v", result.Accessible.Path, want)
	}
}

func TestSearchLiteralRequiresExactMatch(t *testing.T) {
	reg, b, app := buildButtons()
	result, err := search.Search(reg, b, app, a11y.Path{0, 0}, search.Simple,
		search.Predicates{Name: strPtr("OK")}, 0, nil)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if !result.Status {
		t.Fatalf("expected literal match for exact name OK")
	}
	want := a11y.Path{0, 0, 0}
	if !result.Accessible.Path.ToA11y().Equal(want) {
		t.Fatalf("matched path = %v, want %v", result.Accessible.Path, want)
	}
}

func TestSearchLiteralDoesNotSubstringMatch(t *testing.T) {
	reg, b, app := buildButtons()
	result, err := search.Search(reg, b, app, a11y.Path{0, 0}, search.Simple,
		search.Predicates{Name: strPtr("OK Apply")}, 0, nil)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	want := a11y.Path{0, 0, 2}
	if !result.Status || !result.Accessible.Path.ToA11y().Equal(want) {
		t.Fatalf("exact literal match failed: status=%v path=%v", result.Status, result.Accessible.Path)
	}

	result, err = search.Search(reg, b, app, a11y.Path{0, 0}, search.Simple,
		search.Predicates{Name: strPtr("Apply")}, 0, nil)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if result.Status {
		t.Fatalf("literal Apply must not match OK Apply as a substring: path=%v", result.Accessible.Path)
	}
}

func TestSearchIndexPredicateMatchesLastPathComponent(t *testing.T) {
	reg, b, app := buildButtons()
	idx := 3
	result, err := search.Search(reg, b, app, a11y.Path{0, 0}, search.Simple,
		search.Predicates{Index: &idx}, 0, nil)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	want := a11y.Path{0, 0, 3}
	if !result.Status || !result.Accessible.Path.ToA11y().Equal(want) {
		t.Fatalf("index predicate failed: status=%v path=%v", result.Status, result.Accessible.Path)
	}
}

func TestSearchNegativeNthReturnsFirstMatch(t *testing.T) {
	reg, b, app := buildButtons()
	role := "push-button"
	result, err := search.Search(reg, b, app, a11y.Path{0, 0}, search.Simple,
		search.Predicates{Role: &role}, -1, nil)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	want := a11y.Path{0, 0, 0}
	if !result.Status || !result.Accessible.Path.ToA11y().Equal(want) {
		t.Fatalf("negative nth should return the first match: status=%v path=%v", result.Status, result.Accessible.Path)
	}
}

func TestSearchExhaustedReturnsBareFailure(t *testing.T) {
	reg, b, app := buildButtons()
	result, err := search.Search(reg, b, app, a11y.Path{0, 0}, search.Simple,
		search.Predicates{Name: strPtr("Nonexistent")}, 0, nil)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if result.Status {
		t.Fatalf("expected no match")
	}
	if result.Accessible.Name != nil {
		t.Fatalf("exhausted search result must be a bare record")
	}
}

func TestSearchBackwardsOverZeroChildren(t *testing.T) {
	b := memory.NewBackend("at-spi")
	app := b.AddApplication("Empty")
	reg := a11y.NewRegistry(b)

	result, err := search.Search(reg, b, app, a11y.Path{0, 0}, search.Backwards, search.Predicates{}, 0, nil)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if result.Status {
		t.Fatalf("BACKWARDS over a childless node must find nothing")
	}
}

func TestSearchUnknownMethod(t *testing.T) {
	reg, b, app := buildButtons()
	_, err := search.Search(reg, b, app, a11y.Path{0, 0}, search.Method("BOGUS"), search.Predicates{}, 0, nil)
	if _, ok := err.(*a11yerr.UnknownMethod); !ok {
		t.Fatalf("Search with a bogus method returned %v, want *a11yerr.UnknownMethod", err)
	}
}

func TestSearchDeepFindsGrandchild(t *testing.T) {
	b := memory.NewBackend("at-spi")
	app := b.AddApplication("Editor")
	panel := app.AddChild("Panel", "panel")
	panel.AddChild("Nested", "label")
	reg := a11y.NewRegistry(b)

	result, err := search.Search(reg, b, app, a11y.Path{0, 0}, search.Deep,
		search.Predicates{Name: strPtr("Nested")}, 0, nil)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	want := a11y.Path{0, 0, 0, 0}
	if !result.Status || !result.Accessible.Path.ToA11y().Equal(want) {
		t.Fatalf("DEEP search failed: status=%v path=%v", result.Status, result.Accessible.Path)
	}
}
