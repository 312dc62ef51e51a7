// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package table

import (
	"github.com/bitmark-inc/dxfcodec/bitflag"
	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/handle"
	"github.com/bitmark-inc/dxfcodec/schema"
)

// Layer - a named layer
type Layer struct {
	Record
	Flags      int16
	Color      int16
	LineType   string
	Plot       bool
	LineWeight int16
	PlotStyle  handle.Pointer
	Material   handle.Pointer
}

// Descriptor - the type of the item
func (*Layer) Descriptor() *schema.Type { return LayerType }

func layer(o schema.Object) *Layer { return o.(*Layer) }

// LayerType - LAYER
var LayerType = &schema.Type{
	Name:           "LAYER",
	Tags:           []string{"LAYER"},
	SubclassMarker: "AcDbLayerTableRecord",
	Base:           RecordType,
	Fields: []*schema.Field{
		schema.String("Name", 2, "", func(o schema.Object) *string { return &record(o).Name }),
		schema.Short("Flags", 70, 0, func(o schema.Object) *int16 { return &layer(o).Flags }),
		schema.Short("Color", 62, 7, func(o schema.Object) *int16 { return &layer(o).Color }),
		schema.String("LineType", 6, "CONTINUOUS", func(o schema.Object) *string { return &layer(o).LineType }),
		schema.Bool("Plot", 290, true, func(o schema.Object) *bool { return &layer(o).Plot }).Since(dxfversion.R2000).Suppress(),
		schema.Short("LineWeight", 370, -3, func(o schema.Object) *int16 { return &layer(o).LineWeight }).Since(dxfversion.R2000),
		schema.Pointer("PlotStyle", 390, func(o schema.Object) *handle.Pointer { return &layer(o).PlotStyle }).Since(dxfversion.R2000),
		schema.Pointer("Material", 347, func(o schema.Object) *handle.Pointer { return &layer(o).Material }).Since(dxfversion.R2007),
	},
	Flags: []schema.Flag{
		{Name: "Frozen", Field: "Flags", Mask: 1},
		{Name: "FrozenInNewViewports", Field: "Flags", Mask: 2},
		{Name: "Locked", Field: "Flags", Mask: 4},
		{Name: "XrefDependent", Field: "Flags", Mask: 16},
		{Name: "XrefResolved", Field: "Flags", Mask: 32},
	},
	Allocate: func() schema.Object { return &Layer{} },
}

// NewLayer - an initialised LAYER
func NewLayer(name string) *Layer {
	l := LayerType.New().(*Layer)
	l.Name = name
	return l
}

// IsFrozen - layer is frozen in every viewport
func (l *Layer) IsFrozen() bool { return bitflag.MustGet(l, "Frozen") }

// SetFrozen - freeze or thaw the layer
func (l *Layer) SetFrozen(b bool) { bitflag.MustSet(l, "Frozen", b) }

// IsLocked - layer cannot be edited
func (l *Layer) IsLocked() bool { return bitflag.MustGet(l, "Locked") }

// SetLocked - lock or unlock the layer
func (l *Layer) SetLocked(b bool) { bitflag.MustSet(l, "Locked", b) }

// IsOff - a negative colour hides the layer
func (l *Layer) IsOff() bool { return l.Color < 0 }
