// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

// This file implements component C8, mutation and input dispatch: text
// and value edits, action invocation, and keyboard/mouse injection.
package dispatch

import (
	"github.com/tadek-project/tadek-daemon/internal/a11y"
	"github.com/tadek-project/tadek-daemon/internal/a11yerr"
	"github.com/tadek-project/tadek-daemon/internal/wire"
)

// withBackend resolves path (consulting, then clearing, the cache),
// locks the resolved back-end for the duration of fn, and reports whether
// a back-end object was found at all. The cache is always cleared,
// regardless of what fn returns.
func (p *Processor) withBackend(path a11y.Path, fn func(b a11y.Backend, obj a11y.Object) bool) bool {
	backend, obj := p.resolveForMutation(path)
	p.cache.clear()
	if backend == nil || (obj == nil && len(path) >= 2) {
		return false
	}
	idx := p.reg.IndexOf(backend)
	p.reg.Lock(idx)
	defer p.reg.Unlock(idx)
	return fn(backend, obj)
}

func (p *Processor) handlePutText(req *wire.Request, resp *wire.Response) {
	path := req.Path.ToA11y()
	status := p.withBackend(path, func(b a11y.Backend, obj a11y.Object) bool {
		return b.SetText(obj, *req.Text)
	})
	resp.Status = wire.BoolPtr(status)
}

func (p *Processor) handlePutValue(req *wire.Request, resp *wire.Response) {
	path := req.Path.ToA11y()
	status := p.withBackend(path, func(b a11y.Backend, obj a11y.Object) bool {
		return b.SetValue(obj, *req.Value)
	})
	resp.Status = wire.BoolPtr(status)
}

func (p *Processor) handleExecAction(req *wire.Request, resp *wire.Response) {
	path := req.Path.ToA11y()
	status := p.withBackend(path, func(b a11y.Backend, obj a11y.Object) bool {
		if *req.Action == "FOCUS" {
			return b.GrabFocus(obj)
		}
		v, err := b.ActionSet().Get(*req.Action)
		if err != nil {
			return b.DoAction(obj, *req.Action)
		}
		return b.DoAction(obj, v)
	})
	resp.Status = wire.BoolPtr(status)
}

func (p *Processor) handleExecKeyboard(req *wire.Request, resp *wire.Response) {
	path := req.Path.ToA11y()
	status := p.withBackend(path, func(b a11y.Backend, obj a11y.Object) bool {
		keycode, err := a11y.ResolveKey(b.KeySet(), req.Keycode)
		if err != nil {
			p.logException("keyboard event", path, err)
			return false
		}
		modifiers, err := a11y.ResolveModifiers(req.Modifiers)
		if err != nil {
			p.logException("keyboard event", path, err)
			return false
		}
		b.KeyboardEvent(keycode, modifiers)
		return true
	})
	resp.Status = wire.BoolPtr(status)
}

func (p *Processor) handleExecMouse(req *wire.Request, resp *wire.Response) {
	path := req.Path.ToA11y()
	status := p.withBackend(path, func(b a11y.Backend, obj a11y.Object) bool {
		if len(req.Coordinates) != 2 {
			return false
		}
		x, y := req.Coordinates[0], req.Coordinates[1]

		var button a11y.Value
		if req.Button != nil {
			v, err := b.ButtonSet().Get(*req.Button)
			if err != nil {
				button = *req.Button
			} else {
				button = v
			}
		}

		switch *req.Event {
		case "CLICK":
			b.MouseClick(x, y, button)
		case "DOUBLE_CLICK":
			b.MouseDoubleClick(x, y, button)
		case "PRESS":
			b.MousePress(x, y, button)
		case "RELEASE":
			b.MouseRelease(x, y, button)
		case "ABSOLUTE_MOTION":
			b.MouseAbsoluteMotion(x, y)
		case "RELATIVE_MOTION":
			b.MouseRelativeMotion(x, y)
		default:
			p.logException("mouse event", path, &a11yerr.UnknownMouseEvent{Event: *req.Event})
			return false
		}
		return true
	})
	resp.Status = wire.BoolPtr(status)
}
