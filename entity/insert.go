// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entity

import (
	"github.com/bitmark-inc/dxfcodec/geometry"
	"github.com/bitmark-inc/dxfcodec/schema"
)

// Insert - a placed reference to a block, optionally as an array
type Insert struct {
	Entity
	HasAttributes bool
	BlockName     string
	Location      geometry.Point
	XScale        float64
	YScale        float64
	ZScale        float64
	Rotation      float64
	Columns       int16
	Rows          int16
	ColumnSpacing float64
	RowSpacing    float64
	Extrusion     geometry.Vector
}

// Descriptor - the type of the item
func (*Insert) Descriptor() *schema.Type { return InsertType }

func insert(o schema.Object) *Insert { return o.(*Insert) }

// InsertType - INSERT
var InsertType = &schema.Type{
	Name:           "INSERT",
	Tags:           []string{"INSERT"},
	SubclassMarker: "AcDbBlockReference",
	Base:           EntityType,
	Fields: []*schema.Field{
		schema.Bool("HasAttributes", 66, false, func(o schema.Object) *bool { return &insert(o).HasAttributes }).Suppress(),
		schema.String("BlockName", 2, "", func(o schema.Object) *string { return &insert(o).BlockName }),
		schema.Point("Location", 10, geometry.Origin, func(o schema.Object) *geometry.Point { return &insert(o).Location }),
		schema.Double("XScale", 41, 1, func(o schema.Object) *float64 { return &insert(o).XScale }).Suppress(),
		schema.Double("YScale", 42, 1, func(o schema.Object) *float64 { return &insert(o).YScale }).Suppress(),
		schema.Double("ZScale", 43, 1, func(o schema.Object) *float64 { return &insert(o).ZScale }).Suppress(),
		schema.Double("Rotation", 50, 0, func(o schema.Object) *float64 { return &insert(o).Rotation }).Suppress(),
		schema.Short("Columns", 70, 1, func(o schema.Object) *int16 { return &insert(o).Columns }).Suppress(),
		schema.Short("Rows", 71, 1, func(o schema.Object) *int16 { return &insert(o).Rows }).Suppress(),
		schema.Double("ColumnSpacing", 44, 0, func(o schema.Object) *float64 { return &insert(o).ColumnSpacing }).Suppress(),
		schema.Double("RowSpacing", 45, 0, func(o schema.Object) *float64 { return &insert(o).RowSpacing }).Suppress(),
		schema.Vector("Extrusion", 210, geometry.ZAxis, func(o schema.Object) *geometry.Vector { return &insert(o).Extrusion }).Suppress(),
	},
	Allocate: func() schema.Object { return &Insert{} },
}

// NewInsert - an initialised INSERT of a named block
func NewInsert(block string, location geometry.Point) *Insert {
	i := InsertType.New().(*Insert)
	i.BlockName = block
	i.Location = location
	return i
}

// IsArray - true if placed more than once
func (i *Insert) IsArray() bool {
	return i.Columns > 1 || i.Rows > 1
}
