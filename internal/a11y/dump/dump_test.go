// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

package dump_test

import (
	"testing"

	"github.com/tadek-project/tadek-daemon/internal/a11y"
	"github.com/tadek-project/tadek-daemon/internal/a11y/dump"
	"github.com/tadek-project/tadek-daemon/internal/a11y/memory"
)

func buildFixture() (*a11y.Registry, *memory.Backend, *memory.Node) {
	b := memory.NewBackend("at-spi")
	app := b.AddApplication("Editor")
	ok := app.AddChild("OK", "push-button")
	ok.SetStates("FOCUSABLE")
	ok.SetActions("Activate")
	app.AddChild("Cancel", "push-button")
	reg := a11y.NewRegistry(b)
	return reg, b, app
}

func TestDumpRootCountsBackends(t *testing.T) {
	reg, _, _ := buildFixture()
	acc := dump.Dump(reg, nil, nil, a11y.Path{}, 0, dump.Fields{Count: true}, nil)
	if acc.Count == nil || *acc.Count != 1 {
		t.Fatalf("root dump Count = %v, want 1", acc.Count)
	}
}

func TestDumpPathMatchesRequestedPath(t *testing.T) {
	reg, b, app := buildFixture()
	path := a11y.Path{0, 0, 0}
	backend, obj := reg.Resolve(path)
	if backend != b {
		t.Fatalf("resolve precondition failed")
	}
	acc := dump.Dump(reg, backend, obj, path, 0, dump.All(), nil)
	if !acc.Path.ToA11y().Equal(path) {
		t.Fatalf("dump.Path = %v, want %v", acc.Path, path)
	}
	_ = app
}

func TestDumpChildrenLengthMatchesCount(t *testing.T) {
	reg, b, app := buildFixture()
	path := a11y.Path{0, 0}

	acc := dump.Dump(reg, b, app, path, 0, dump.All(), nil)
	if len(acc.Children) != 0 {
		t.Fatalf("depth=0 dump should have no children, got %d", len(acc.Children))
	}

	acc = dump.Dump(reg, b, app, path, 1, dump.All(), nil)
	if len(acc.Children) != b.CountChildren(app) {
		t.Fatalf("children length = %d, want %d", len(acc.Children), b.CountChildren(app))
	}
}

func TestDumpChildPathsExtendParentByIndex(t *testing.T) {
	reg, b, app := buildFixture()
	acc := dump.Dump(reg, b, app, a11y.Path{0, 0}, 1, dump.All(), nil)
	for i, child := range acc.Children {
		want := a11y.Path{0, 0, i}
		if !child.Path.ToA11y().Equal(want) {
			t.Fatalf("children[%d].Path = %v, want %v", i, child.Path, want)
		}
	}
}

func TestDumpFocusActionIsFirstAndConditional(t *testing.T) {
	reg, b, app := buildFixture()

	okAcc := dump.Dump(reg, b, mustChild(b, app, 0), a11y.Path{0, 0, 0}, 0, dump.All(), nil)
	if len(okAcc.Actions) == 0 || okAcc.Actions[0] != dump.ActionFocus {
		t.Fatalf("FOCUSABLE node actions = %v, want FOCUS first", okAcc.Actions)
	}

	cancelAcc := dump.Dump(reg, b, mustChild(b, app, 1), a11y.Path{0, 0, 1}, 0, dump.All(), nil)
	for _, a := range cancelAcc.Actions {
		if a == dump.ActionFocus {
			t.Fatalf("non-FOCUSABLE node must not advertise FOCUS: %v", cancelAcc.Actions)
		}
	}
}

func mustChild(b *memory.Backend, parent a11y.Object, i int) a11y.Object {
	c, _ := b.GetChild(parent, i)
	return c
}

func TestDumpBareRecordForNilObject(t *testing.T) {
	path := a11y.Path{0, 5}
	acc := dump.Dump(nil, nil, nil, path, 0, dump.All(), nil)
	if !acc.Path.ToA11y().Equal(path) {
		t.Fatalf("bare dump Path = %v, want %v", acc.Path, path)
	}
	if acc.Name != nil {
		t.Fatalf("bare dump must not populate other fields")
	}
}
