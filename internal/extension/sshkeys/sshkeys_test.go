// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

package sshkeys_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tadek-project/tadek-daemon/internal/extension/sshkeys"
)

const testKey = "ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIFDHUYz1d1s6yvNHUx5OXcl26Q5/SlBWlL8kJXJRbLmD test@host\n" +
	"# a comment line, skipped\n\n"

func TestResponseParsesAuthorizedKeysFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "authorized_keys")
	if err := os.WriteFile(path, []byte(testKey), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ext := sshkeys.New()
	status, extras := ext.Response(map[string]interface{}{"path": path})
	if !status {
		t.Fatalf("Response status = false, extras = %v", extras)
	}
	keys, ok := extras["keys"].([]map[string]interface{})
	if !ok || len(keys) != 1 {
		t.Fatalf("extras[keys] = %v, want one parsed key", extras["keys"])
	}
	if keys[0]["comment"] != "test@host" {
		t.Fatalf("comment = %v, want test@host", keys[0]["comment"])
	}
}

func TestResponseMissingPathParam(t *testing.T) {
	ext := sshkeys.New()
	status, extras := ext.Response(map[string]interface{}{})
	if status {
		t.Fatalf("expected status=false without a path parameter")
	}
	if extras["error"] == nil {
		t.Fatalf("expected an error extra")
	}
}

func TestResponseMissingFile(t *testing.T) {
	ext := sshkeys.New()
	status, _ := ext.Response(map[string]interface{}{"path": "/nonexistent/authorized_keys"})
	if status {
		t.Fatalf("expected status=false for a missing file")
	}
}
