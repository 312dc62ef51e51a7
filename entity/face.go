// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entity

import (
	"github.com/bitmark-inc/dxfcodec/bitflag"
	"github.com/bitmark-inc/dxfcodec/geometry"
	"github.com/bitmark-inc/dxfcodec/schema"
)

// Face - a three or four sided surface; a triangle repeats its third corner
type Face struct {
	Entity
	First     geometry.Point
	Second    geometry.Point
	Third     geometry.Point
	Fourth    geometry.Point
	EdgeFlags int16
}

// Descriptor - the type of the item
func (*Face) Descriptor() *schema.Type { return FaceType }

func face(o schema.Object) *Face { return o.(*Face) }

// FaceType - 3DFACE
var FaceType = &schema.Type{
	Name:           "3DFACE",
	Tags:           []string{"3DFACE"},
	SubclassMarker: "AcDbFace",
	Base:           EntityType,
	Fields: []*schema.Field{
		schema.Point("First", 10, geometry.Origin, func(o schema.Object) *geometry.Point { return &face(o).First }),
		schema.Point("Second", 11, geometry.Origin, func(o schema.Object) *geometry.Point { return &face(o).Second }),
		schema.Point("Third", 12, geometry.Origin, func(o schema.Object) *geometry.Point { return &face(o).Third }),
		schema.Point("Fourth", 13, geometry.Origin, func(o schema.Object) *geometry.Point { return &face(o).Fourth }),
		schema.Short("EdgeFlags", 70, 0, func(o schema.Object) *int16 { return &face(o).EdgeFlags }).Suppress(),
	},
	Flags: []schema.Flag{
		{Name: "FirstEdgeInvisible", Field: "EdgeFlags", Mask: 1},
		{Name: "SecondEdgeInvisible", Field: "EdgeFlags", Mask: 2},
		{Name: "ThirdEdgeInvisible", Field: "EdgeFlags", Mask: 4},
		{Name: "FourthEdgeInvisible", Field: "EdgeFlags", Mask: 8},
	},
	Allocate: func() schema.Object { return &Face{} },
}

// NewFace - an initialised 3DFACE; a triangle when fourth equals third
func NewFace(first geometry.Point, second geometry.Point, third geometry.Point, fourth geometry.Point) *Face {
	f := FaceType.New().(*Face)
	f.First = first
	f.Second = second
	f.Third = third
	f.Fourth = fourth
	return f
}

// IsTriangle - true if the last two corners coincide
func (f *Face) IsTriangle() bool {
	return f.Third == f.Fourth
}

// IsEdgeInvisible - state of edge 1 … 4
func (f *Face) IsEdgeInvisible(edge int) bool {
	return bitflag.MustGet(f, edgeFlag(edge))
}

// SetEdgeInvisible - hide or show edge 1 … 4
func (f *Face) SetEdgeInvisible(edge int, invisible bool) {
	bitflag.MustSet(f, edgeFlag(edge), invisible)
}

func edgeFlag(edge int) string {
	switch edge {
	case 1:
		return "FirstEdgeInvisible"
	case 2:
		return "SecondEdgeInvisible"
	case 3:
		return "ThirdEdgeInvisible"
	case 4:
		return "FourthEdgeInvisible"
	}
	return ""
}
