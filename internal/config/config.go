// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

// Package config loads the daemon's connection configuration from an INI
// file, grounded on the go-ini usage in the teacher's yangc command.
package config

import (
	"log"

	"github.com/go-ini/ini"
)

const (
	// DefaultAddress is used when a config file is absent or omits the
	// address key.
	DefaultAddress = "0.0.0.0"
	// DefaultPort is used when a config file is absent or omits the port
	// key.
	DefaultPort = 8089

	section        = "daemon"
	addressKey     = "connection.address"
	portKey        = "connection.port"
	startupDirKey  = "startup.directory"
	defaultStartup = "/etc/tadek/startup"
)

// Connection holds the daemon's network configuration.
type Connection struct {
	Address string
	Port    int
	// StartupDir is the directory of start-up scripts run before the
	// listening socket opens.
	StartupDir string
}

// Load reads path, if non-empty, and returns the daemon connection
// config, falling back to documented defaults for any missing key. A
// missing or unreadable file is not fatal: it is logged as a warning and
// defaults are used throughout, matching daemon.py's Daemon.__init__.
func Load(path string, wlog *log.Logger) Connection {
	conn := Connection{
		Address:    DefaultAddress,
		Port:       DefaultPort,
		StartupDir: defaultStartup,
	}
	if path == "" {
		return conn
	}

	f, err := ini.Load(path)
	if err != nil {
		if wlog != nil {
			wlog.Printf("configuration file %s does not exist or is unreadable, using defaults: %v", path, err)
		}
		return conn
	}

	sec := f.Section(section)
	if key, err := sec.GetKey(addressKey); err == nil && key.String() != "" {
		conn.Address = key.String()
	} else if wlog != nil {
		wlog.Printf("no %s.%s in daemon configuration file, using default %s", section, addressKey, DefaultAddress)
	}

	if key, err := sec.GetKey(portKey); err == nil {
		if port, err := key.Int(); err == nil {
			conn.Port = port
		}
	} else if wlog != nil {
		wlog.Printf("no %s.%s in daemon configuration file, using default %d", section, portKey, DefaultPort)
	}

	if key, err := sec.GetKey(startupDirKey); err == nil && key.String() != "" {
		conn.StartupDir = key.String()
	}

	return conn
}
