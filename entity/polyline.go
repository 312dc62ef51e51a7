// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entity

import (
	"github.com/bitmark-inc/dxfcodec/bitflag"
	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/geometry"
	"github.com/bitmark-inc/dxfcodec/groupcode"
	"github.com/bitmark-inc/dxfcodec/schema"
)

// Vertex - one vertex of a lightweight polyline
type Vertex struct {
	Location   geometry.Point
	StartWidth float64
	EndWidth   float64
	Bulge      float64
	ID         int32
}

// LightWeightPolyline - a planar polyline held in a single item
type LightWeightPolyline struct {
	Entity
	Flags         int16
	ConstantWidth float64
	Elevation     float64
	Thickness     float64
	Vertices      []Vertex
	Extrusion     geometry.Vector
}

// Descriptor - the type of the item
func (*LightWeightPolyline) Descriptor() *schema.Type { return LightWeightPolylineType }

func polyline(o schema.Object) *LightWeightPolyline { return o.(*LightWeightPolyline) }

func vertexLocation(v *Vertex) *geometry.Point { return &v.Location }

// LightWeightPolylineType - LWPOLYLINE
//
// the vertex count is derived when written and ignored when read
var LightWeightPolylineType = &schema.Type{
	Name:           "LWPOLYLINE",
	Tags:           []string{"LWPOLYLINE"},
	SubclassMarker: "AcDbPolyline",
	Base:           EntityType,
	MinVersion:     dxfversion.R14,
	Fields: []*schema.Field{
		schema.Short("Flags", 70, 0, func(o schema.Object) *int16 { return &polyline(o).Flags }),
		schema.Double("ConstantWidth", 43, 0, func(o schema.Object) *float64 { return &polyline(o).ConstantWidth }),
		schema.Double("Elevation", 38, 0, func(o schema.Object) *float64 { return &polyline(o).Elevation }).Suppress(),
		schema.Double("Thickness", 39, 0, func(o schema.Object) *float64 { return &polyline(o).Thickness }).Suppress(),
		schema.Records("Vertices", func(o schema.Object) *[]Vertex { return &polyline(o).Vertices },
			schema.PointMember(10, 0, vertexLocation),
			schema.PointMember(20, 1, vertexLocation),
			schema.ScalarMember(40, func(v *Vertex) *float64 { return &v.StartWidth }),
			schema.ScalarMember(41, func(v *Vertex) *float64 { return &v.EndWidth }),
			schema.ScalarMember(42, func(v *Vertex) *float64 { return &v.Bulge }),
			schema.ScalarMember(91, func(v *Vertex) *int32 { return &v.ID }),
		),
		schema.Vector("Extrusion", 210, geometry.ZAxis, func(o schema.Object) *geometry.Vector { return &polyline(o).Extrusion }).Suppress(),
	},
	Flags: []schema.Flag{
		{Name: "IsClosed", Field: "Flags", Mask: 1},
		{Name: "IsPlinegen", Field: "Flags", Mask: 128},
	},
	WriteOrder: []schema.Op{
		schema.EmitComputed(func(o schema.Object) groupcode.Pair {
			return groupcode.NewInteger(90, int32(len(polyline(o).Vertices)))
		}),
		schema.EmitField("Flags"),
		schema.EmitField("ConstantWidth"),
		schema.EmitField("Elevation"),
		schema.EmitField("Thickness"),
		schema.Each("Vertices",
			schema.EmitElement("Vertices", 10),
			schema.EmitElement("Vertices", 20),
			schema.EmitElement("Vertices", 40),
			schema.EmitElement("Vertices", 41),
			schema.EmitElement("Vertices", 42),
			schema.EmitElement("Vertices", 91).Since(dxfversion.R2013),
		),
		schema.EmitField("Extrusion"),
	},
	Allocate: func() schema.Object { return &LightWeightPolyline{} },
}

// NewLightWeightPolyline - an initialised LWPOLYLINE through the given points
func NewLightWeightPolyline(points ...geometry.Point) *LightWeightPolyline {
	p := LightWeightPolylineType.New().(*LightWeightPolyline)
	for _, location := range points {
		p.Vertices = append(p.Vertices, Vertex{Location: location})
	}
	return p
}

// IsClosed - last vertex joins the first
func (p *LightWeightPolyline) IsClosed() bool { return bitflag.MustGet(p, "IsClosed") }

// SetClosed - join or open the ends
func (p *LightWeightPolyline) SetClosed(b bool) { bitflag.MustSet(p, "IsClosed", b) }

// IsPlinegen - linetype generated continuously around vertices
func (p *LightWeightPolyline) IsPlinegen() bool { return bitflag.MustGet(p, "IsPlinegen") }

// SetPlinegen - continuous linetype generation
func (p *LightWeightPolyline) SetPlinegen(b bool) { bitflag.MustSet(p, "IsPlinegen", b) }
