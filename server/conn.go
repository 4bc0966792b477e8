// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2015,2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

package server

import (
	"encoding/json"
	"io"
	"net"
	"sync"

	"github.com/google/uuid"

	"github.com/tadek-project/tadek-daemon/internal/dispatch"
	"github.com/tadek-project/tadek-daemon/internal/wire"
)

// SrvConn is one client connection: a newline-delimited JSON codec over
// conn, serialised against concurrent writers by sending, and its own
// dispatch.Processor (which owns the per-connection resolution cache).
type SrvConn struct {
	net.Conn
	id      string
	srv     *Srv
	enc     *json.Encoder
	dec     *json.Decoder
	sending *sync.Mutex
}

// NewConn wraps conn in a SrvConn, ready to Handle.
func (s *Srv) NewConn(conn net.Conn) *SrvConn {
	return &SrvConn{
		Conn:    conn,
		id:      uuid.New().String(),
		srv:     s,
		enc:     json.NewEncoder(conn),
		dec:     json.NewDecoder(conn),
		sending: new(sync.Mutex),
	}
}

func (c *SrvConn) sendResponse(resp *wire.Response) error {
	c.sending.Lock()
	defer c.sending.Unlock()
	return c.enc.Encode(resp)
}

func (c *SrvConn) readRequest() (*wire.Request, error) {
	req := new(wire.Request)
	if err := c.dec.Decode(req); err != nil {
		return nil, err
	}
	return req, nil
}

// infoBanner builds the unsolicited RESPONSE/SYSTEM/INFO message pushed
// immediately after accept, before the connection's request loop starts.
func (c *SrvConn) infoBanner() *wire.Response {
	version, locale := c.srv.Version, c.srv.Locale
	return &wire.Response{
		Type:       wire.TypeResponse,
		Target:     wire.TargetSystem,
		Name:       wire.NameInfo,
		Status:     wire.BoolPtr(true),
		Version:    &version,
		Locale:     &locale,
		Extensions: c.srv.extensionNames(),
	}
}

// Handle is the main loop for one connection: it pushes the INFO banner,
// then repeatedly reads a request, dispatches it, and writes back the
// response, until the client disconnects or a codec error occurs.
func (c *SrvConn) Handle() {
	defer c.Close()

	if err := c.sendResponse(c.infoBanner()); err != nil {
		c.srv.LogError(err)
		return
	}

	proc := dispatch.NewProcessor(c.srv.reg, c.srv.extensions, c.srv.Elog, c.srv.Dlog, c.srv.Wlog)

	for {
		req, err := c.readRequest()
		if err != nil {
			if err != io.EOF {
				c.srv.LogError(err)
			}
			return
		}

		resp, err := proc.Handle(req)
		if err != nil {
			resp = &wire.Response{
				Type:   wire.TypeResponse,
				Target: req.Target,
				Name:   req.Name,
				Id:     req.Id,
				Status: wire.BoolPtr(false),
				Error:  err.Error(),
			}
		}

		if err := c.sendResponse(resp); err != nil {
			c.srv.LogError(err)
			return
		}
	}
}
