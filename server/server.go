// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

// Package server implements the daemon's network front-end: accepting
// client connections, emitting the unsolicited INFO banner, and driving
// each connection's request/response loop through a dispatch.Processor.
package server

import (
	"log"
	"net"
	"sort"
	"time"

	"github.com/tadek-project/tadek-daemon/internal/a11y"
	"github.com/tadek-project/tadek-daemon/internal/dispatch"
)

// Srv owns the listening socket and the state shared by every
// connection: the back-end registry, the registered extensions, and the
// daemon's three loggers.
type Srv struct {
	net.Listener

	reg        *a11y.Registry
	extensions map[string]dispatch.Extension

	Version string
	Locale  string

	Dlog *log.Logger
	Elog *log.Logger
	Wlog *log.Logger
}

// NewSrv constructs a Srv around an already-bound listener (either a TCP
// listener or one obtained via systemd socket activation).
func NewSrv(l net.Listener, reg *a11y.Registry, extensions map[string]dispatch.Extension, version, locale string, dlog, elog, wlog *log.Logger) *Srv {
	return &Srv{
		Listener:   l,
		reg:        reg,
		extensions: extensions,
		Version:    version,
		Locale:     locale,
		Dlog:       dlog,
		Elog:       elog,
		Wlog:       wlog,
	}
}

// extensionNames returns the registered extension names, sorted, for the
// INFO banner.
func (s *Srv) extensionNames() []string {
	names := make([]string, 0, len(s.extensions))
	for name := range s.extensions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Serve is the server main loop: it accepts connections and spawns one
// goroutine per connection. A temporary accept error is retried after a
// short backoff; any other error stops the loop.
func (s *Srv) Serve() error {
	for {
		conn, err := s.Accept()
		if err != nil {
			if nerr, ok := err.(net.Error); ok && nerr.Temporary() {
				time.Sleep(10 * time.Millisecond)
				continue
			}
			s.LogError(err)
			return err
		}

		sconn := s.NewConn(conn)
		go sconn.Handle()
	}
}

// Log is a common place to do debug logging so the implementation may
// change in the future.
func (s *Srv) Log(format string, v ...interface{}) {
	s.Dlog.Printf(format, v...)
}

// LogError logs err if it is non-nil.
func (s *Srv) LogError(err error) {
	if err != nil {
		s.Elog.Printf("%s", err)
	}
}
