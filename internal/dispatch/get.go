// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

package dispatch

import (
	"github.com/tadek-project/tadek-daemon/internal/a11y"
	"github.com/tadek-project/tadek-daemon/internal/a11y/dump"
	"github.com/tadek-project/tadek-daemon/internal/search"
	"github.com/tadek-project/tadek-daemon/internal/wire"
)

// handleGet implements ACCESSIBILITY GET: it always re-resolves path from
// the registry, never consulting the cache, and writes a fresh cache
// entry on a successful resolution. This matches the original daemon's
// accessibilityGet, which treats the cache purely as an optimisation for
// a PUT/EXEC that immediately follows.
func (p *Processor) handleGet(req *wire.Request, resp *wire.Response) {
	path := req.Path.ToA11y()
	backend, obj := p.reg.Resolve(path)

	if backend == nil && len(path) >= 2 {
		resp.Status = wire.BoolPtr(false)
		acc := wire.Bare(path)
		resp.Accessible = &acc
		return
	}

	idx := -1
	if backend != nil {
		idx = p.reg.IndexOf(backend)
		p.reg.Lock(idx)
		defer p.reg.Unlock(idx)
	}

	p.cache.set(backend, obj, path)

	depth := 0
	if req.Depth != nil {
		depth = *req.Depth
	}
	acc := dump.Dump(p.reg, backend, obj, path, depth, fieldsFrom(req.Include), p.elog)
	resp.Status = wire.BoolPtr(true)
	resp.Accessible = &acc
}

// handleSearch implements ACCESSIBILITY SEARCH: the cache is consulted
// once, to resolve the starting path, and is then always cleared before
// iteration begins; a successful match writes a fresh entry for the
// matched node.
func (p *Processor) handleSearch(req *wire.Request, resp *wire.Response) {
	path := req.Path.ToA11y()

	backend, obj, ok := p.cache.lookup(path)
	if !ok {
		backend, obj = p.reg.Resolve(path)
	}
	p.cache.clear()

	if backend == nil && len(path) >= 2 {
		resp.Status = wire.BoolPtr(false)
		acc := wire.Bare(path)
		resp.Accessible = &acc
		return
	}

	idx := -1
	if backend != nil {
		idx = p.reg.IndexOf(backend)
		p.reg.Lock(idx)
		defer p.reg.Unlock(idx)
	}

	method := search.Simple
	if req.Method != nil {
		method = search.Method(*req.Method)
	}
	nth := 0
	if req.Nth != nil {
		nth = *req.Nth
	}

	result, err := search.Search(p.reg, backend, obj, path, method, predicatesFrom(req.Predicates), nth, p.elog)
	if err != nil {
		p.logException("search", path, err)
		resp.Status = wire.BoolPtr(false)
		acc := wire.Bare(path)
		resp.Accessible = &acc
		return
	}

	resp.Status = wire.BoolPtr(result.Status)
	resp.Accessible = &result.Accessible
	if result.Status && result.Resolved != nil {
		p.cache.set(result.Resolved.Backend, result.Resolved.Object, result.Resolved.Path)
	}
}

// resolveForMutation looks up path via the cache, falling back to a fresh
// registry resolution, for use by PUT/EXEC handlers. The caller always
// clears the cache right after this returns, before the mutation runs,
// regardless of outcome.
func (p *Processor) resolveForMutation(path a11y.Path) (a11y.Backend, a11y.Object) {
	backend, obj, ok := p.cache.lookup(path)
	if ok {
		return backend, obj
	}
	return p.reg.Resolve(path)
}
