// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package document

import (
	"github.com/bitmark-inc/dxfcodec/codec"
	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/groupcode"
	"github.com/bitmark-inc/dxfcodec/handle"
	"github.com/bitmark-inc/dxfcodec/schema"
	"github.com/bitmark-inc/dxfcodec/table"

	// every item type a drawing may hold
	_ "github.com/bitmark-inc/dxfcodec/entity"
	_ "github.com/bitmark-inc/dxfcodec/object"
)

// section names
const (
	HeaderSection   = "HEADER"
	TablesSection   = "TABLES"
	BlocksSection   = "BLOCKS"
	EntitiesSection = "ENTITIES"
	ObjectsSection  = "OBJECTS"
)

// framing tags
const (
	sectionStart = "SECTION"
	sectionEnd   = "ENDSEC"
	tableEnd     = "ENDTAB"
	endOfFile    = "EOF"
)

// header variable codes
const (
	variableCode    = 9
	versionName     = "$ACADVER"
	sectionNameCode = 2
)

// Table - a TABLE header and its records
type Table struct {
	Header  *table.Header
	Entries []schema.Object
}

// Drawing - every item of a drawing in document order
type Drawing struct {
	Version  dxfversion.Version
	Header   []groupcode.Pair // raw variable pairs
	Tables   []*Table
	Blocks   []schema.Object
	Entities []schema.Object
	Objects  []schema.Object

	handles *handle.Table
	stats   Stats
}

// Stats - what happened to a drawing
type Stats struct {
	Sections   int           `json:"sections"`
	Skipped    []string      `json:"skippedSections"`
	Reader     codec.Summary `json:"reader"`
	Handles    int           `json:"handles"`
	Duplicates int           `json:"duplicateHandles"`
	Resolved   uint64        `json:"resolved"`
	Unresolved uint64        `json:"unresolved"`
	Unwritten  int           `json:"unwritten"`
}

// New - an empty drawing for a version
func New(version dxfversion.Version) *Drawing {
	return &Drawing{
		Version:  version,
		Header:   make([]groupcode.Pair, 0),
		Tables:   make([]*Table, 0),
		Blocks:   make([]schema.Object, 0),
		Entities: make([]schema.Object, 0),
		Objects:  make([]schema.Object, 0),
		stats: Stats{
			Skipped: make([]string, 0),
		},
	}
}

// Stats - a copy of the statistics
func (d *Drawing) Stats() Stats {
	s := d.stats
	s.Skipped = append(make([]string, 0, len(d.stats.Skipped)), d.stats.Skipped...)
	return s
}

// Items - every item, in the order the sections are written
func (d *Drawing) Items() []schema.Object {
	n := len(d.Blocks) + len(d.Entities) + len(d.Objects)
	for _, t := range d.Tables {
		n += 1 + len(t.Entries)
	}
	items := make([]schema.Object, 0, n)
	for _, t := range d.Tables {
		if nil != t.Header {
			items = append(items, t.Header)
		}
		items = append(items, t.Entries...)
	}
	items = append(items, d.Blocks...)
	items = append(items, d.Entities...)
	items = append(items, d.Objects...)
	return items
}

// Table - the records of a named table, nil if absent
func (d *Drawing) Table(name string) *Table {
	for _, t := range d.Tables {
		if nil != t.Header && name == t.Header.Name {
			return t
		}
	}
	return nil
}

// Lookup - an item by handle; only after Resolve
func (d *Drawing) Lookup(h handle.Handle) (schema.Object, bool) {
	if nil == d.handles {
		return nil, false
	}
	t, ok := d.handles.Lookup(h)
	if !ok {
		return nil, false
	}
	o, ok := t.(schema.Object)
	return o, ok
}

// header variable value, the first pair after the name
func (d *Drawing) variable(name string) (groupcode.Pair, bool) {
	for i, p := range d.Header {
		if variableCode == p.Code && name == p.Text() && i+1 < len(d.Header) {
			return d.Header[i+1], true
		}
	}
	return groupcode.Pair{}, false
}
