// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

package wire

// MsgType distinguishes a request from its response.
type MsgType string

const (
	TypeRequest  MsgType = "REQUEST"
	TypeResponse MsgType = "RESPONSE"
)

// Target names the subsystem a message addresses.
type Target string

const (
	TargetAccessibility Target = "ACCESSIBILITY"
	TargetSystem        Target = "SYSTEM"
	TargetExtension     Target = "EXTENSION"
)

// Name names the operation a message requests.
type Name string

const (
	NameGet    Name = "GET"
	NamePut    Name = "PUT"
	NameExec   Name = "EXEC"
	NameSearch Name = "SEARCH"
	NameInfo   Name = "INFO"
)

// SearchPredicates mirrors search.Predicates at the wire layer so the
// dispatcher package does not need to import internal/search's JSON
// shape directly; it is translated field-for-field.
type SearchPredicates struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Role        *string `json:"role,omitempty"`
	Index       *int    `json:"index,omitempty"`
	Count       *int    `json:"count,omitempty"`
	Action      *string `json:"action,omitempty"`
	Relation    *string `json:"relation,omitempty"`
	State       *string `json:"state,omitempty"`
	Text        *string `json:"text,omitempty"`
}

// Request is a single wire request. Only the fields relevant to
// Target/Name are expected to be set; see the dispatch table in
// SPEC_FULL.md section 4.10.
type Request struct {
	Type   MsgType `json:"type"`
	Target Target  `json:"target"`
	Name   Name    `json:"name"`
	Id     int     `json:"id"`

	Path    Path     `json:"path,omitempty"`
	Depth   *int     `json:"depth,omitempty"`
	Include []string `json:"include,omitempty"`

	// FilePath is the absolute filesystem path addressed by a SYSTEM
	// GET/PUT request; unrelated to Path, which addresses a node in the
	// accessibility tree.
	FilePath *string `json:"file_path,omitempty"`

	Method     *string           `json:"method,omitempty"`
	Predicates *SearchPredicates `json:"predicates,omitempty"`
	Nth        *int              `json:"nth,omitempty"`

	Text  *string  `json:"text,omitempty"`
	Value *float64 `json:"value,omitempty"`

	Action    *string       `json:"action,omitempty"`
	Keycode   interface{}   `json:"keycode,omitempty"`
	Modifiers []interface{} `json:"modifiers,omitempty"`

	Event       *string `json:"event,omitempty"`
	Button      *string `json:"button,omitempty"`
	Coordinates []int   `json:"coordinates,omitempty"`

	Data *string `json:"data,omitempty"`

	Command *string `json:"command,omitempty"`
	Wait    *bool   `json:"wait,omitempty"`

	// Extra carries EXTENSION-target request fields, which are
	// extension-defined and opaque to the core dispatcher.
	Extra map[string]interface{} `json:"extra,omitempty"`
}

// Response is a single wire response. Its optional fields are populated
// by internal/dispatch per the dispatch table; extension-defined fields
// travel nested under the "extra" key rather than at the top level.
type Response struct {
	Type   MsgType `json:"type"`
	Target Target  `json:"target"`
	Name   Name    `json:"name"`
	Id     int     `json:"id"`

	Status *bool `json:"status,omitempty"`

	Accessible *Accessible `json:"accessible,omitempty"`
	Data       *string     `json:"data,omitempty"`
	Stdout     *string     `json:"stdout,omitempty"`
	Stderr     *string     `json:"stderr,omitempty"`

	Version    *string  `json:"version,omitempty"`
	Locale     *string  `json:"locale,omitempty"`
	Extensions []string `json:"extensions,omitempty"`

	// Extra carries EXTENSION-target response fields forwarded verbatim
	// from the extension's own response map.
	Extra map[string]interface{} `json:"extra,omitempty"`

	Error string `json:"error,omitempty"`
}

func BoolPtr(b bool) *bool { return &b }
