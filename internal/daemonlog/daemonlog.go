// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

// Package daemonlog provides the daemon's three standard loggers (debug,
// error, warning), each a *log.Logger writing to syslog under the
// program's own name, and a configurable verbosity threshold for the
// debug logger.
package daemonlog

import (
	"io"
	"log"
	"log/syslog"
	"os"
	"path/filepath"
	"strings"
)

// Level is the daemon's debug verbosity threshold.
type Level int

const (
	LevelNone Level = iota
	LevelError
	LevelDebug
)

// ParseLevel maps a --log-level flag value onto a Level.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return LevelDebug, nil
	case "error":
		return LevelError, nil
	case "none", "":
		return LevelNone, nil
	}
	return LevelNone, &unknownLevelError{name}
}

type unknownLevelError struct{ name string }

func (e *unknownLevelError) Error() string {
	return "log level " + e.name + " not recognised, use <none|error|debug>"
}

// NewLogger opens a syslog writer at priority p tagged with the running
// program's base name, matching configd.NewLogger.
func NewLogger(p syslog.Priority, logFlag int) (*log.Logger, error) {
	tag := filepath.Base(os.Args[0])
	s, err := syslog.New(p, tag)
	if err != nil {
		return nil, err
	}
	return log.New(s, "", logFlag), nil
}

// Loggers bundles the daemon's three standard log destinations.
type Loggers struct {
	Dlog *log.Logger
	Elog *log.Logger
	Wlog *log.Logger
}

// New opens the daemon/error/warning syslog loggers, discarding Dlog's
// output entirely when level is below LevelDebug. A syslog.New failure
// for any individual logger degrades that logger to io.Discard rather
// than failing daemon start-up.
func New(level Level) *Loggers {
	l := &Loggers{}

	if elog, err := NewLogger(syslog.LOG_ERR|syslog.LOG_DAEMON, 0); err == nil {
		l.Elog = elog
	} else {
		l.Elog = log.New(os.Stderr, "", 0)
	}

	if wlog, err := NewLogger(syslog.LOG_WARNING|syslog.LOG_DAEMON, 0); err == nil {
		l.Wlog = wlog
	} else {
		l.Wlog = log.New(io.Discard, "", 0)
	}

	if level >= LevelDebug {
		if dlog, err := NewLogger(syslog.LOG_DEBUG|syslog.LOG_DAEMON, 0); err == nil {
			l.Dlog = dlog
		} else {
			l.Dlog = log.New(io.Discard, "", 0)
		}
	} else {
		l.Dlog = log.New(io.Discard, "", 0)
	}

	return l
}
