// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

package a11y_test

import (
	"testing"

	"github.com/tadek-project/tadek-daemon/internal/a11y"
	"github.com/tadek-project/tadek-daemon/internal/a11y/memory"
)

func TestRegistryOrdersByName(t *testing.T) {
	reg := a11y.NewRegistry(memory.NewBackend("win32"), memory.NewBackend("at-spi"))

	if reg.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", reg.Count())
	}
	first, _ := reg.At(0)
	second, _ := reg.At(1)
	if first.BackendName() != "at-spi" || second.BackendName() != "win32" {
		t.Fatalf("registry not sorted: %s, %s", first.BackendName(), second.BackendName())
	}
}

func TestRegistryDedupesByNameFirstSeenWins(t *testing.T) {
	first := memory.NewBackend("dup")
	first.AddApplication("first-app")
	second := memory.NewBackend("dup")
	second.AddApplication("second-app")

	reg := a11y.NewRegistry(first, second)
	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
	b, _ := reg.At(0)
	if b != first {
		t.Fatalf("registry kept the second-seen back-end instead of the first")
	}
}

func TestRegistryDropsEmptyName(t *testing.T) {
	reg := a11y.NewRegistry(memory.NewBackend(""), memory.NewBackend("real"))
	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
}

func TestRegistryResolve(t *testing.T) {
	b := memory.NewBackend("at-spi")
	app := b.AddApplication("Editor")
	child := app.AddChild("OK", "push-button")

	reg := a11y.NewRegistry(b)

	rb, robj := reg.Resolve(a11y.Path{0, 0, 0})
	if rb != b || robj != child {
		t.Fatalf("Resolve((0,0,0)) = %v, %v; want backend, OK node", rb, robj)
	}

	rb, robj = reg.Resolve(a11y.Path{})
	if rb != nil || robj != nil {
		t.Fatalf("Resolve(()) = %v, %v; want nil, nil", rb, robj)
	}

	rb, robj = reg.Resolve(a11y.Path{5})
	if rb != nil || robj != nil {
		t.Fatalf("Resolve out of range backend index = %v, %v; want nil, nil", rb, robj)
	}
}

func TestRegistryResolveIsIdempotent(t *testing.T) {
	b := memory.NewBackend("at-spi")
	app := b.AddApplication("Editor")
	app.AddChild("OK", "push-button")
	reg := a11y.NewRegistry(b)

	path := a11y.Path{0, 0, 0}
	b1, o1 := reg.Resolve(path)
	b2, o2 := reg.Resolve(path)
	if b1 != b2 || o1 != o2 {
		t.Fatalf("Resolve is not idempotent on an unchanged tree")
	}
}

func TestRegistryLockUnlockRoundTrips(t *testing.T) {
	reg := a11y.NewRegistry(memory.NewBackend("at-spi"))
	reg.Lock(0)
	reg.Unlock(0)

	// Out-of-range indices must be safe no-ops.
	reg.Lock(99)
	reg.Unlock(99)
}
