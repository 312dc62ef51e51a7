// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entity

import (
	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/handle"
	"github.com/bitmark-inc/dxfcodec/item"
	"github.com/bitmark-inc/dxfcodec/schema"
)

// colour and line weight sentinels
const (
	ColorByBlock      = 0
	ColorByLayer      = 256
	LineWeightByLayer = -1
)

// Entity - state shared by every graphical entity
type Entity struct {
	item.Base
	PaperSpace    bool
	Layout        string
	Layer         string
	LineType      string
	Material      handle.Pointer
	Color         int16
	LineWeight    int16
	LineTypeScale float64
	Hidden        bool
	TrueColor     int32
	Transparency  int32
	PlotStyle     handle.Pointer
	ShadowMode    int16
}

// Holder - implemented by every entity through embedding
type Holder interface {
	schema.Object
	EntityBase() *Entity
}

// EntityBase - the common layer of any entity
func (e *Entity) EntityBase() *Entity {
	return e
}

func common(o schema.Object) *Entity {
	return o.(Holder).EntityBase()
}

// EntityType - the common layer, base of every entity
var EntityType = &schema.Type{
	Name:           "AcDbEntity",
	SubclassMarker: "AcDbEntity",
	Fields: []*schema.Field{
		schema.Bool("PaperSpace", 67, false, func(o schema.Object) *bool { return &common(o).PaperSpace }).Suppress(),
		schema.String("Layout", 410, "", func(o schema.Object) *string { return &common(o).Layout }).Since(dxfversion.R2000).Suppress(),
		schema.String("Layer", 8, "0", func(o schema.Object) *string { return &common(o).Layer }),
		schema.String("LineType", 6, "BYLAYER", func(o schema.Object) *string { return &common(o).LineType }).Suppress(),
		schema.Pointer("Material", 347, func(o schema.Object) *handle.Pointer { return &common(o).Material }).Since(dxfversion.R2007),
		schema.Short("Color", 62, ColorByLayer, func(o schema.Object) *int16 { return &common(o).Color }).Suppress(),
		schema.Short("LineWeight", 370, LineWeightByLayer, func(o schema.Object) *int16 { return &common(o).LineWeight }).Since(dxfversion.R2000),
		schema.Double("LineTypeScale", 48, 1, func(o schema.Object) *float64 { return &common(o).LineTypeScale }).Since(dxfversion.R13).Suppress(),
		schema.Bool("Hidden", 60, false, func(o schema.Object) *bool { return &common(o).Hidden }).Since(dxfversion.R13).Suppress(),
		schema.Integer("TrueColor", 420, 0, func(o schema.Object) *int32 { return &common(o).TrueColor }).Since(dxfversion.R2004).Suppress(),
		schema.Integer("Transparency", 440, 0, func(o schema.Object) *int32 { return &common(o).Transparency }).Since(dxfversion.R2004).Suppress(),
		schema.Pointer("PlotStyle", 390, func(o schema.Object) *handle.Pointer { return &common(o).PlotStyle }).Since(dxfversion.R2000),
		schema.Short("ShadowMode", 284, 0, func(o schema.Object) *int16 { return &common(o).ShadowMode }).Since(dxfversion.R2007).Suppress(),
	},
}

// SequenceEnd - terminates the vertices or attributes of a complex entity
type SequenceEnd struct {
	Entity
}

// Descriptor - the type of the item
func (*SequenceEnd) Descriptor() *schema.Type { return SequenceEndType }

// SequenceEndType - SEQEND
var SequenceEndType = &schema.Type{
	Name:     "SEQEND",
	Tags:     []string{"SEQEND"},
	Base:     EntityType,
	Allocate: func() schema.Object { return &SequenceEnd{} },
}

// NewSequenceEnd - an initialised SEQEND
func NewSequenceEnd() *SequenceEnd {
	return SequenceEndType.New().(*SequenceEnd)
}
