// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package item

import (
	"github.com/bitmark-inc/dxfcodec/groupcode"
)

// ExtensionGroup - a "{NAME" … "}" block of 102 delimited pairs
//
// nested groups are kept as their delimiting 102 pairs inside Items
// so the original order survives a round trip
type ExtensionGroup struct {
	Name  string
	Items []groupcode.Pair
}

// Pairs - the group as it is written, delimiters included
func (g ExtensionGroup) Pairs() []groupcode.Pair {
	pairs := make([]groupcode.Pair, 0, len(g.Items)+2)
	pairs = append(pairs, groupcode.NewString(groupcode.ExtensionGroupCode, groupcode.ExtensionGroupStart+g.Name))
	pairs = append(pairs, g.Items...)
	pairs = append(pairs, groupcode.NewString(groupcode.ExtensionGroupCode, groupcode.ExtensionGroupEnd))
	return pairs
}

// XDataApplication - pairs registered under one application name
type XDataApplication struct {
	Name  string
	Items []groupcode.Pair
}

// XData - application keyed extension data in insertion order
type XData struct {
	applications []XDataApplication
}

// Len - number of applications
func (x *XData) Len() int {
	return len(x.applications)
}

// Names - application names in order
func (x *XData) Names() []string {
	names := make([]string, len(x.applications))
	for i, a := range x.applications {
		names[i] = a.Name
	}
	return names
}

// Get - pairs for an application
func (x *XData) Get(name string) ([]groupcode.Pair, bool) {
	for _, a := range x.applications {
		if a.Name == name {
			return a.Items, true
		}
	}
	return nil, false
}

// Set - replace or add an application's pairs
func (x *XData) Set(name string, items []groupcode.Pair) {
	for i, a := range x.applications {
		if a.Name == name {
			x.applications[i].Items = items
			return
		}
	}
	x.applications = append(x.applications, XDataApplication{Name: name, Items: items})
}

// Append - add one pair to an application, creating it if needed
func (x *XData) Append(name string, p groupcode.Pair) {
	for i, a := range x.applications {
		if a.Name == name {
			x.applications[i].Items = append(x.applications[i].Items, p)
			return
		}
	}
	x.applications = append(x.applications, XDataApplication{Name: name, Items: []groupcode.Pair{p}})
}

// Delete - remove an application
func (x *XData) Delete(name string) {
	for i, a := range x.applications {
		if a.Name == name {
			x.applications = append(x.applications[:i], x.applications[i+1:]...)
			return
		}
	}
}

// Clone - independent copy
func (x XData) Clone() XData {
	c := XData{
		applications: make([]XDataApplication, len(x.applications)),
	}
	for i, a := range x.applications {
		c.applications[i] = XDataApplication{
			Name:  a.Name,
			Items: append([]groupcode.Pair(nil), a.Items...),
		}
	}
	return c
}

// Pairs - the block as it is written: each application as a 1001
// pair followed by its items
func (x *XData) Pairs() []groupcode.Pair {
	pairs := make([]groupcode.Pair, 0)
	for _, a := range x.applications {
		pairs = append(pairs, groupcode.NewString(groupcode.XDataApplication, a.Name))
		pairs = append(pairs, a.Items...)
	}
	return pairs
}
