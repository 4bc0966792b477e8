// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

// Package a11yerr defines the typed error kinds raised by the core
// dispatch and accessibility-traversal engine.
package a11yerr

import "fmt"

// AlreadyInitialized is raised when a ConstantSet slot is assigned twice.
type AlreadyInitialized struct {
	Set  string
	Name string
}

func (e *AlreadyInitialized) Error() string {
	return fmt.Sprintf("%q item of %q set already initialized", e.Name, e.Set)
}

// UnknownName is raised when a ConstantSet is asked about a name outside
// its legal list.
type UnknownName struct {
	Set  string
	Name string
}

func (e *UnknownName) Error() string {
	return fmt.Sprintf("%q set has no item %q", e.Set, e.Name)
}

// UnknownMethod is raised by the search engine for a search method outside
// {SIMPLE, BACKWARDS, DEEP}.
type UnknownMethod struct {
	Method string
}

func (e *UnknownMethod) Error() string {
	return fmt.Sprintf("unknown search method: %s", e.Method)
}

// BadKeyType is raised when a keyboard event receives a non-integer
// modifier, or a key that is neither a known symbolic name, a single
// character, nor an integer.
type BadKeyType struct {
	Value interface{}
}

func (e *BadKeyType) Error() string {
	return fmt.Sprintf("invalid key type: %T", e.Value)
}

// UnknownMouseEvent is raised for a mouse event string outside the fixed
// set of event names.
type UnknownMouseEvent struct {
	Event string
}

func (e *UnknownMouseEvent) Error() string {
	return fmt.Sprintf("unknown mouse event: %s", e.Event)
}

// UnsupportedMessage is raised when a request does not match any of the
// shapes the dispatcher knows how to handle. It is the sole error kind
// re-surfaced through the protocol layer.
type UnsupportedMessage struct {
	Type   string
	Target string
	Name   string
}

func (e *UnsupportedMessage) Error() string {
	return fmt.Sprintf("unsupported message: type=%s target=%s name=%s",
		e.Type, e.Target, e.Name)
}

// ScriptError is raised when a start-up script returns a non-zero exit
// status.
type ScriptError struct {
	Script string
	Status int
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("start-up script %q returned non-zero exit status: %d",
		e.Script, e.Status)
}
