// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

// Package sshkeys is the reference EXTENSION/sshkeys handler: it parses
// an OpenSSH authorized_keys file and reports each key's type, comment
// and fingerprint. It is grounded on the teacher's own
// ssh.ParseAuthorizedKey/ssh.FingerprintSHA256 usage for loading
// authorized keys, repurposed here from a configuration-commit RPC into
// a read-only accessibility-daemon extension.
package sshkeys

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"golang.org/x/crypto/ssh"
)

// Name is the extension name registered in the daemon's extension map
// and advertised in the INFO banner's extensions list.
const Name = "sshkeys"

// Key describes one parsed authorized_keys entry.
type Key struct {
	Type        string
	Comment     string
	Fingerprint string
}

// Extension implements dispatch.Extension for the "sshkeys" name: given
// a "path" param naming an authorized_keys file, it returns the parsed
// keys as a list of maps under the "keys" extra.
type Extension struct{}

// New constructs the sshkeys extension.
func New() *Extension { return &Extension{} }

// Response implements dispatch.Extension. params must contain a string
// "path" entry; any read or parse failure yields status=false and an
// "error" extra describing the failure.
func (e *Extension) Response(params map[string]interface{}) (bool, map[string]interface{}) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return false, map[string]interface{}{"error": "missing path parameter"}
	}

	f, err := os.Open(path)
	if err != nil {
		return false, map[string]interface{}{"error": err.Error()}
	}
	defer f.Close()

	keys, err := parseAuthorizedKeys(f)
	if err != nil {
		return false, map[string]interface{}{"error": err.Error()}
	}

	out := make([]map[string]interface{}, 0, len(keys))
	for _, k := range keys {
		out = append(out, map[string]interface{}{
			"type":        k.Type,
			"comment":     k.Comment,
			"fingerprint": k.Fingerprint,
		})
	}
	return true, map[string]interface{}{"keys": out}
}

// parseAuthorizedKeys reads authorized_keys-formatted lines, skipping
// blank and commented lines (ssh.ParseAuthorizedKey errors on those),
// and reports a line-numbered error for the first malformed entry.
func parseAuthorizedKeys(r *os.File) ([]Key, error) {
	var keys []Key
	lineNum := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		lineNum++
		if len(line) == 0 || bytes.HasPrefix(line, []byte("#")) {
			continue
		}
		pub, comment, _, _, err := ssh.ParseAuthorizedKey(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		keys = append(keys, Key{
			Type:        pub.Type(),
			Comment:     comment,
			Fingerprint: ssh.FingerprintSHA256(pub),
		})
	}
	if err := scanner.Err(); err != nil {
		return keys, err
	}
	return keys, nil
}
