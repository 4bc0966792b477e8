// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

// This file implements component C9, filesystem and subprocess
// operations, grounded on the teacher's own liberal use of os/exec and
// plain file I/O in its command-line tools.
package dispatch

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/tadek-project/tadek-daemon/internal/wire"
)

// handleSystemGet reads the whole file at req.FilePath. Any error -
// missing file, permission denied, a directory - degrades to
// status=false, data="".
func (p *Processor) handleSystemGet(req *wire.Request, resp *wire.Response) {
	var path string
	if req.FilePath != nil {
		path = *req.FilePath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		p.logException("get system file failure", nil, err)
		resp.Status = wire.BoolPtr(false)
		empty := ""
		resp.Data = &empty
		return
	}

	resp.Status = wire.BoolPtr(true)
	s := string(data)
	resp.Data = &s
}

// handleSystemPut overwrites the whole file at req.FilePath with
// req.Data, creating any missing parent directories first. Any error
// degrades to status=false.
func (p *Processor) handleSystemPut(req *wire.Request, resp *wire.Response) {
	var path, data string
	if req.FilePath != nil {
		path = *req.FilePath
	}
	if req.Data != nil {
		data = *req.Data
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		p.logException("put system file failure", nil, err)
		resp.Status = wire.BoolPtr(false)
		return
	}

	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		p.logException("put system file failure", nil, err)
		resp.Status = wire.BoolPtr(false)
		return
	}
	resp.Status = wire.BoolPtr(true)
}

// handleSystemExec runs req.Command through the system shell. With
// wait=true it blocks for completion, capturing stdout/stderr and using
// the exit status to determine status; with wait=false it starts the
// command and returns immediately with status=true and empty streams.
func (p *Processor) handleSystemExec(req *wire.Request, resp *wire.Response) {
	var command string
	if req.Command != nil {
		command = *req.Command
	}
	wait := true
	if req.Wait != nil {
		wait = *req.Wait
	}

	cmd := exec.Command("/bin/sh", "-c", command)

	if !wait {
		if err := cmd.Start(); err != nil {
			p.logException("exec command failure", nil, err)
			resp.Status = wire.BoolPtr(false)
			empty := ""
			resp.Stdout, resp.Stderr = &empty, &empty
			return
		}
		go cmd.Wait()
		resp.Status = wire.BoolPtr(true)
		empty := ""
		resp.Stdout, resp.Stderr = &empty, &empty
		return
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	out, errout := stdout.String(), stderr.String()
	resp.Stdout, resp.Stderr = &out, &errout
	resp.Status = wire.BoolPtr(err == nil)
}
