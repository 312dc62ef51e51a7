// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package table

import (
	"github.com/bitmark-inc/dxfcodec/item"
	"github.com/bitmark-inc/dxfcodec/schema"
)

// Header - the TABLE item opening a group of records
type Header struct {
	item.Base
	Name       string
	MaxEntries int16
}

// Descriptor - the type of the item
func (*Header) Descriptor() *schema.Type { return HeaderType }

func header(o schema.Object) *Header { return o.(*Header) }

// HeaderType - TABLE
var HeaderType = &schema.Type{
	Name:           "TABLE",
	Tags:           []string{"TABLE"},
	SubclassMarker: "AcDbSymbolTable",
	Fields: []*schema.Field{
		schema.String("Name", 2, "", func(o schema.Object) *string { return &header(o).Name }),
		schema.Short("MaxEntries", 70, 0, func(o schema.Object) *int16 { return &header(o).MaxEntries }),
	},
	Allocate: func() schema.Object { return &Header{} },
}

// NewHeader - an initialised TABLE header for records of the named kind
func NewHeader(name string, entries int) *Header {
	h := HeaderType.New().(*Header)
	h.Name = name
	h.MaxEntries = int16(entries)
	return h
}

// Record - the layer shared by every table record
type Record struct {
	item.Base
	Name string
}

type recordHolder interface {
	RecordBase() *Record
}

// RecordBase - the symbol table record layer
func (r *Record) RecordBase() *Record { return r }

func record(o schema.Object) *Record { return o.(recordHolder).RecordBase() }

// RecordType - the abstract symbol table record layer
//
// every record carries its name in code 2, but the name sits in the
// derived layer on the wire so the field belongs there
var RecordType = &schema.Type{
	Name:           "AcDbSymbolTableRecord",
	SubclassMarker: "AcDbSymbolTableRecord",
}
