// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

package dispatch

import "github.com/tadek-project/tadek-daemon/internal/a11y"

// resolutionCache is the per-Processor single-entry ResolutionCache
// (component of §3): the most recently resolved (backend, object, path)
// from a successful GET or SEARCH, usable by an immediately-following
// PUT/EXEC on the same path without re-walking the tree.
type resolutionCache struct {
	valid   bool
	backend a11y.Backend
	object  a11y.Object
	path    a11y.Path
}

func (c *resolutionCache) clear() {
	*c = resolutionCache{}
}

func (c *resolutionCache) set(backend a11y.Backend, object a11y.Object, path a11y.Path) {
	c.valid = true
	c.backend = backend
	c.object = object
	c.path = path
}

// lookup returns the cached triple if it is valid and addresses exactly
// path; otherwise it reports ok=false without modifying the cache.
func (c *resolutionCache) lookup(path a11y.Path) (a11y.Backend, a11y.Object, bool) {
	if c.valid && c.path.Equal(path) {
		return c.backend, c.object, true
	}
	return nil, nil, false
}
