// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

/*
tadekd is the accessibility-introspection daemon: it accepts TCP
connections from test controllers and services remote-introspection
requests against the local accessibility tree, filesystem and process
space.

Usage:

	--config <path>
		INI configuration file (see internal/config). Omit to use
		built-in defaults.

	--no-startup
		Skip running the start-up scripts directory entirely.

	--pidfile <path>
		Write the daemon's pid to the supplied file (default
		/run/tadekd/tadekd.pid).

	--log-level <none|error|debug>
		Debug logging verbosity (default error).

	SIGUSR1
		Toggle CPU profiling, written to /run/tadekd/tadekd.pprof.

	SIGUSR2
		Write a heap profile to /run/tadekd/tadekd_mem.pprof.
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"runtime/pprof"
	"strconv"
	"syscall"

	"github.com/coreos/go-systemd/activation"

	"github.com/tadek-project/tadek-daemon/internal/a11y"
	"github.com/tadek-project/tadek-daemon/internal/a11y/memory"
	"github.com/tadek-project/tadek-daemon/internal/config"
	"github.com/tadek-project/tadek-daemon/internal/daemonlog"
	"github.com/tadek-project/tadek-daemon/internal/dispatch"
	"github.com/tadek-project/tadek-daemon/internal/extension/sshkeys"
	"github.com/tadek-project/tadek-daemon/internal/startup"
	"github.com/tadek-project/tadek-daemon/server"
)

const (
	version  = "1.0.0"
	basePath = "/run/tadekd"
)

var (
	configPath = flag.String("config", "", "Daemon INI configuration file.")
	noStartup  = flag.Bool("no-startup", false, "Skip the start-up scripts directory.")
	pidfile    = flag.String("pidfile", basePath+"/tadekd.pid", "Write pid to supplied file.")
	logLevel   = flag.String("log-level", "error", "Debug logging verbosity: none, error, or debug.")
	cpuprofile = flag.String("cpuprofile", basePath+"/tadekd.pprof", "Write CPU profile to supplied file on SIGUSR1.")
	memprofile = flag.String("memprofile", basePath+"/tadekd_mem.pprof", "Write memory profile to supplied file on SIGUSR2.")
	locale     = flag.String("locale", "", "IETF locale tag advertised in the INFO banner.")
)

var runningProf bool

func sigProfile(elog *log.Logger) {
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, syscall.SIGUSR1, syscall.SIGUSR2)
	var cpuFile *os.File
	for sig := range sigch {
		switch sig {
		case syscall.SIGUSR1:
			if !runningProf {
				f, err := os.Create(*cpuprofile)
				if err != nil {
					elog.Print(err)
					continue
				}
				cpuFile = f
				pprof.StartCPUProfile(cpuFile)
				runningProf = true
			} else {
				pprof.StopCPUProfile()
				cpuFile.Close()
				runningProf = false
			}
		case syscall.SIGUSR2:
			f, err := os.Create(*memprofile)
			if err != nil {
				elog.Print(err)
				continue
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}
	}
}

func writePid(elog *log.Logger) {
	f, err := os.OpenFile(*pidfile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		elog.Printf("could not write pidfile %s: %v", *pidfile, err)
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "%d\n", os.Getpid())
}

// getListener acquires a systemd-activated listener when present,
// falling back to binding addr:port directly.
func getListener(addr string, port int) (net.Listener, error) {
	listeners, err := activation.Listeners(true)
	if err != nil {
		return nil, err
	}
	if len(listeners) > 0 {
		return listeners[0], nil
	}
	return net.Listen("tcp", net.JoinHostPort(addr, strconv.Itoa(port)))
}

func main() {
	debug.SetGCPercent(25)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level, err := daemonlog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	loggers := daemonlog.New(level)

	conn := config.Load(*configPath, loggers.Wlog)

	if !*noStartup {
		if err := startup.RunAll(conn.StartupDir); err != nil {
			loggers.Elog.Print(err)
			os.Exit(1)
		}
	}

	os.MkdirAll(basePath, 0755)
	go sigProfile(loggers.Elog)

	reg := a11y.NewRegistry(memory.NewBackend("desktop"))

	extensions := map[string]dispatch.Extension{
		sshkeys.Name: sshkeys.New(),
	}

	l, err := getListener(conn.Address, conn.Port)
	if err != nil {
		loggers.Elog.Print(err)
		os.Exit(1)
	}

	srv := server.NewSrv(l, reg, extensions, version, *locale, loggers.Dlog, loggers.Elog, loggers.Wlog)

	writePid(loggers.Elog)

	runtime.GC()
	debug.FreeOSMemory()

	if err := srv.Serve(); err != nil {
		loggers.Elog.Print(err)
		os.Exit(1)
	}
}
