// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

// Package dispatch implements the request dispatcher (component C10): it
// parses the target/name of an incoming message, calls the accessibility
// (C6-C8), system (C9) or extension handler, builds the response extras,
// and owns the per-connection resolution cache.
package dispatch

import (
	"log"

	"github.com/tadek-project/tadek-daemon/internal/a11y"
	"github.com/tadek-project/tadek-daemon/internal/a11yerr"
	"github.com/tadek-project/tadek-daemon/internal/wire"
)

// Extension is the ABI a registered EXTENSION-target handler implements:
// it receives the request's extension-defined named params and returns a
// status plus a map of extras forwarded verbatim into the response.
type Extension interface {
	Response(params map[string]interface{}) (bool, map[string]interface{})
}

// Processor handles every request on a single client connection. Request
// handling within one Processor is serialised by its owning connection's
// goroutine; the Processor itself holds no lock and must not be shared
// across connections.
type Processor struct {
	reg        *a11y.Registry
	extensions map[string]Extension
	elog       *log.Logger
	dlog       *log.Logger
	wlog       *log.Logger
	cache      resolutionCache
}

// NewProcessor constructs a Processor for one connection.
func NewProcessor(reg *a11y.Registry, extensions map[string]Extension, elog, dlog, wlog *log.Logger) *Processor {
	return &Processor{reg: reg, extensions: extensions, elog: elog, dlog: dlog, wlog: wlog}
}

// Handle processes req and returns the matching response. Any error
// raised by a component is caught here and converted to status=false
// with empty placeholders; UnsupportedMessage is the sole error
// re-surfaced to the caller, as a non-nil error return alongside a nil
// response.
func (p *Processor) Handle(req *wire.Request) (*wire.Response, error) {
	resp := &wire.Response{Type: wire.TypeResponse, Target: req.Target, Name: req.Name, Id: req.Id}

	switch req.Target {
	case wire.TargetAccessibility:
		switch req.Name {
		case wire.NameGet:
			p.handleGet(req, resp)
			return resp, nil
		case wire.NameSearch:
			p.handleSearch(req, resp)
			return resp, nil
		case wire.NamePut:
			if req.Text != nil {
				p.handlePutText(req, resp)
				return resp, nil
			}
			if req.Value != nil {
				p.handlePutValue(req, resp)
				return resp, nil
			}
		case wire.NameExec:
			if req.Action != nil {
				p.handleExecAction(req, resp)
				return resp, nil
			}
			if req.Keycode != nil && req.Modifiers != nil {
				p.handleExecKeyboard(req, resp)
				return resp, nil
			}
			if req.Event != nil && req.Button != nil && req.Coordinates != nil {
				p.handleExecMouse(req, resp)
				return resp, nil
			}
		}
	case wire.TargetSystem:
		switch req.Name {
		case wire.NameGet:
			p.handleSystemGet(req, resp)
			return resp, nil
		case wire.NamePut:
			p.handleSystemPut(req, resp)
			return resp, nil
		case wire.NameExec:
			p.handleSystemExec(req, resp)
			return resp, nil
		}
	case wire.TargetExtension:
		return p.handleExtension(req, resp)
	}

	err := &a11yerr.UnsupportedMessage{Type: string(req.Type), Target: string(req.Target), Name: string(req.Name)}
	if p.elog != nil {
		p.elog.Print(err)
	}
	return nil, err
}

func (p *Processor) logException(context string, path a11y.Path, err error) {
	if p.elog != nil {
		p.elog.Printf("%s: %s: %v", context, path, err)
	}
}

func (p *Processor) handleExtension(req *wire.Request, resp *wire.Response) (*wire.Response, error) {
	ext, ok := p.extensions[string(req.Name)]
	if !ok {
		err := &a11yerr.UnsupportedMessage{Type: string(req.Type), Target: string(req.Target), Name: string(req.Name)}
		if p.elog != nil {
			p.elog.Print(err)
		}
		return nil, err
	}
	status, extras := ext.Response(req.Extra)
	resp.Status = wire.BoolPtr(status)
	resp.Extra = extras
	return resp, nil
}
