// Copyright (c) 2018-2020, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: LGPL-2.1-only

package dispatch

import (
	"github.com/tadek-project/tadek-daemon/internal/a11y/dump"
	"github.com/tadek-project/tadek-daemon/internal/search"
	"github.com/tadek-project/tadek-daemon/internal/wire"
)

// fieldsFrom builds a dump.Fields selecting only the names present in
// include; an empty include means "nothing but the path", matching a GET
// request that asks for no properties.
func fieldsFrom(include []string) dump.Fields {
	var f dump.Fields
	for _, name := range include {
		switch name {
		case "name":
			f.Name = true
		case "description":
			f.Description = true
		case "role":
			f.Role = true
		case "count":
			f.Count = true
		case "position":
			f.Position = true
		case "size":
			f.Size = true
		case "text":
			f.Text = true
		case "value":
			f.Value = true
		case "actions":
			f.Actions = true
		case "states":
			f.States = true
		case "attributes":
			f.Attributes = true
		case "relations":
			f.Relations = true
		}
	}
	return f
}

func predicatesFrom(p *wire.SearchPredicates) search.Predicates {
	if p == nil {
		return search.Predicates{}
	}
	return search.Predicates{
		Name:        p.Name,
		Description: p.Description,
		Role:        p.Role,
		Index:       p.Index,
		Count:       p.Count,
		Action:      p.Action,
		Relation:    p.Relation,
		State:       p.State,
		Text:        p.Text,
	}
}
