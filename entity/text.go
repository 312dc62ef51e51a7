// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entity

import (
	"github.com/bitmark-inc/dxfcodec/bitflag"
	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/geometry"
	"github.com/bitmark-inc/dxfcodec/schema"
)

// horizontal text justification
const (
	JustifyLeft    = 0
	JustifyCenter  = 1
	JustifyRight   = 2
	JustifyAligned = 3
	JustifyMiddle  = 4
	JustifyFit     = 5
)

// Text - a single line of text
type Text struct {
	Entity
	Thickness         float64
	Location          geometry.Point
	Height            float64
	Value             string
	Rotation          float64
	RelativeXScale    float64
	Oblique           float64
	Style             string
	GenerationFlags   int16
	HorizontalJustify int16
	SecondAlignment   geometry.Point
	Extrusion         geometry.Vector
	VerticalJustify   int16
}

// Descriptor - the type of the item
func (*Text) Descriptor() *schema.Type { return TextType }

func text(o schema.Object) *Text { return o.(*Text) }

// the second alignment point only means something once justified
func justified(o schema.Object) bool {
	t := text(o)
	return 0 != t.HorizontalJustify || 0 != t.VerticalJustify
}

// TextType - TEXT
//
// the vertical justification follows a repeated AcDbText marker
var TextType = &schema.Type{
	Name:           "TEXT",
	Tags:           []string{"TEXT"},
	SubclassMarker: "AcDbText",
	Base:           EntityType,
	Fields: []*schema.Field{
		schema.Double("Thickness", 39, 0, func(o schema.Object) *float64 { return &text(o).Thickness }).Suppress(),
		schema.Point("Location", 10, geometry.Origin, func(o schema.Object) *geometry.Point { return &text(o).Location }),
		schema.Double("Height", 40, 1, func(o schema.Object) *float64 { return &text(o).Height }),
		schema.String("Value", 1, "", func(o schema.Object) *string { return &text(o).Value }),
		schema.Double("Rotation", 50, 0, func(o schema.Object) *float64 { return &text(o).Rotation }).Suppress(),
		schema.Double("RelativeXScale", 41, 1, func(o schema.Object) *float64 { return &text(o).RelativeXScale }).Suppress(),
		schema.Double("Oblique", 51, 0, func(o schema.Object) *float64 { return &text(o).Oblique }).Suppress(),
		schema.String("Style", 7, "STANDARD", func(o schema.Object) *string { return &text(o).Style }).Suppress(),
		schema.Short("GenerationFlags", 71, 0, func(o schema.Object) *int16 { return &text(o).GenerationFlags }).Suppress(),
		schema.Short("HorizontalJustify", 72, JustifyLeft, func(o schema.Object) *int16 { return &text(o).HorizontalJustify }).Suppress(),
		schema.Point("SecondAlignment", 11, geometry.Origin, func(o schema.Object) *geometry.Point { return &text(o).SecondAlignment }).When(justified),
		schema.Vector("Extrusion", 210, geometry.ZAxis, func(o schema.Object) *geometry.Vector { return &text(o).Extrusion }).Suppress(),
		schema.Short("VerticalJustify", 73, 0, func(o schema.Object) *int16 { return &text(o).VerticalJustify }).Since(dxfversion.R13).Suppress(),
	},
	Flags: []schema.Flag{
		{Name: "MirroredX", Field: "GenerationFlags", Mask: 2},
		{Name: "MirroredY", Field: "GenerationFlags", Mask: 4},
	},
	WriteOrder: []schema.Op{
		schema.EmitField("Thickness"),
		schema.EmitField("Location"),
		schema.EmitField("Height"),
		schema.EmitField("Value"),
		schema.EmitField("Rotation"),
		schema.EmitField("RelativeXScale"),
		schema.EmitField("Oblique"),
		schema.EmitField("Style"),
		schema.EmitField("GenerationFlags"),
		schema.EmitField("HorizontalJustify"),
		schema.EmitField("SecondAlignment"),
		schema.EmitField("Extrusion"),
		schema.EmitMarker("AcDbText"),
		schema.EmitField("VerticalJustify"),
	},
	Allocate: func() schema.Object { return &Text{} },
}

// NewText - an initialised TEXT
func NewText(value string, location geometry.Point, height float64) *Text {
	t := TextType.New().(*Text)
	t.Value = value
	t.Location = location
	t.Height = height
	return t
}

// IsMirroredX - drawn backwards
func (t *Text) IsMirroredX() bool { return bitflag.MustGet(t, "MirroredX") }

// SetMirroredX - draw backwards or not
func (t *Text) SetMirroredX(b bool) { bitflag.MustSet(t, "MirroredX", b) }

// IsMirroredY - drawn upside down
func (t *Text) IsMirroredY() bool { return bitflag.MustGet(t, "MirroredY") }

// SetMirroredY - draw upside down or not
func (t *Text) SetMirroredY(b bool) { bitflag.MustSet(t, "MirroredY", b) }
