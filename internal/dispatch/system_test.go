// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

package dispatch_test

import (
	"path/filepath"
	"testing"

	"github.com/tadek-project/tadek-daemon/internal/dispatch"
	"github.com/tadek-project/tadek-daemon/internal/wire"
)

func TestHandleSystemGetMissingFile(t *testing.T) {
	proc := dispatch.NewProcessor(fixtureRegistry(), nil, nil, nil, nil)
	req := &wire.Request{
		Type: wire.TypeRequest, Target: wire.TargetSystem, Name: wire.NameGet,
		Id: 1, FilePath: strPtr("/nonexistent/file"),
	}
	resp, err := proc.Handle(req)
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if resp.Status == nil || *resp.Status {
		t.Fatalf("expected status=false for a missing file")
	}
	if resp.Data == nil || *resp.Data != "" {
		t.Fatalf("Data = %v, want empty string", resp.Data)
	}
}

func TestHandleSystemPutThenGetRoundTrips(t *testing.T) {
	proc := dispatch.NewProcessor(fixtureRegistry(), nil, nil, nil, nil)
	path := filepath.Join(t.TempDir(), "file.txt")

	put := &wire.Request{
		Type: wire.TypeRequest, Target: wire.TargetSystem, Name: wire.NamePut,
		Id: 1, FilePath: &path, Data: strPtr("contents"),
	}
	putResp, err := proc.Handle(put)
	if err != nil || putResp.Status == nil || !*putResp.Status {
		t.Fatalf("PUT failed: %v, %v", putResp, err)
	}

	get := &wire.Request{
		Type: wire.TypeRequest, Target: wire.TargetSystem, Name: wire.NameGet,
		Id: 2, FilePath: &path,
	}
	getResp, err := proc.Handle(get)
	if err != nil || getResp.Status == nil || !*getResp.Status {
		t.Fatalf("GET failed: %v, %v", getResp, err)
	}
	if *getResp.Data != "contents" {
		t.Fatalf("Data = %q, want contents", *getResp.Data)
	}
}

func TestHandleSystemPutCreatesMissingParentDirs(t *testing.T) {
	proc := dispatch.NewProcessor(fixtureRegistry(), nil, nil, nil, nil)
	path := filepath.Join(t.TempDir(), "nested", "dir", "file.txt")

	put := &wire.Request{
		Type: wire.TypeRequest, Target: wire.TargetSystem, Name: wire.NamePut,
		Id: 1, FilePath: &path, Data: strPtr("contents"),
	}
	resp, err := proc.Handle(put)
	if err != nil || resp.Status == nil || !*resp.Status {
		t.Fatalf("PUT into a missing directory tree failed: %v, %v", resp, err)
	}
}

func TestHandleSystemExecFailure(t *testing.T) {
	proc := dispatch.NewProcessor(fixtureRegistry(), nil, nil, nil, nil)
	req := &wire.Request{
		Type: wire.TypeRequest, Target: wire.TargetSystem, Name: wire.NameExec,
		Id: 1, Command: strPtr("false"), Wait: wire.BoolPtr(true),
	}
	resp, err := proc.Handle(req)
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if resp.Status == nil || *resp.Status {
		t.Fatalf("expected status=false for a failing command")
	}
	if resp.Stdout == nil || *resp.Stdout != "" || resp.Stderr == nil || *resp.Stderr != "" {
		t.Fatalf("expected empty stdout/stderr, got %v/%v", resp.Stdout, resp.Stderr)
	}
}

func TestHandleSystemExecSuccessCapturesStdout(t *testing.T) {
	proc := dispatch.NewProcessor(fixtureRegistry(), nil, nil, nil, nil)
	req := &wire.Request{
		Type: wire.TypeRequest, Target: wire.TargetSystem, Name: wire.NameExec,
		Id: 1, Command: strPtr("echo hello"), Wait: wire.BoolPtr(true),
	}
	resp, err := proc.Handle(req)
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if resp.Status == nil || !*resp.Status {
		t.Fatalf("expected status=true")
	}
	if resp.Stdout == nil || *resp.Stdout != "hello\n" {
		t.Fatalf("Stdout = %v, want %q", resp.Stdout, "hello\n")
	}
}

func TestHandleSystemExecNoWaitReturnsImmediately(t *testing.T) {
	proc := dispatch.NewProcessor(fixtureRegistry(), nil, nil, nil, nil)
	req := &wire.Request{
		Type: wire.TypeRequest, Target: wire.TargetSystem, Name: wire.NameExec,
		Id: 1, Command: strPtr("sleep 0.1"), Wait: wire.BoolPtr(false),
	}
	resp, err := proc.Handle(req)
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if resp.Status == nil || !*resp.Status {
		t.Fatalf("expected status=true for wait=false")
	}
}
