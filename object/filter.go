// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package object

import (
	"github.com/bitmark-inc/dxfcodec/geometry"
	"github.com/bitmark-inc/dxfcodec/groupcode"
	"github.com/bitmark-inc/dxfcodec/item"
	"github.com/bitmark-inc/dxfcodec/schema"
)

// FilterType - the abstract filter layer
var FilterType = &schema.Type{
	Name:           "AcDbFilter",
	SubclassMarker: "AcDbFilter",
}

// SpatialFilter - clips a block reference to a boundary
type SpatialFilter struct {
	item.Base
	Boundary      []geometry.Point
	Normal        geometry.Vector
	Origin        geometry.Point
	ClipEnabled   bool
	FrontClipping bool
	FrontDistance float64
	BackClipping  bool
	BackDistance  float64
}

// Descriptor - the type of the item
func (*SpatialFilter) Descriptor() *schema.Type { return SpatialFilterType }

func spatial(o schema.Object) *SpatialFilter { return o.(*SpatialFilter) }

// SpatialFilterType - SPATIAL_FILTER
//
// both clipping distances use code 40, told apart by position
var SpatialFilterType = &schema.Type{
	Name:           "SPATIAL_FILTER",
	Tags:           []string{"SPATIAL_FILTER"},
	SubclassMarker: "AcDbSpatialFilter",
	Base:           FilterType,
	Fields: []*schema.Field{
		schema.PointList("Boundary", 10, 2, func(o schema.Object) *[]geometry.Point { return &spatial(o).Boundary }),
		schema.Vector("Normal", 210, geometry.ZAxis, func(o schema.Object) *geometry.Vector { return &spatial(o).Normal }),
		schema.Point("Origin", 11, geometry.Origin, func(o schema.Object) *geometry.Point { return &spatial(o).Origin }),
		schema.Bool("ClipEnabled", 71, true, func(o schema.Object) *bool { return &spatial(o).ClipEnabled }),
		schema.Bool("FrontClipping", 72, false, func(o schema.Object) *bool { return &spatial(o).FrontClipping }),
		schema.Double("FrontDistance", 40, 0, func(o schema.Object) *float64 { return &spatial(o).FrontDistance }),
		schema.Bool("BackClipping", 73, false, func(o schema.Object) *bool { return &spatial(o).BackClipping }),
		schema.Double("BackDistance", 40, 0, func(o schema.Object) *float64 { return &spatial(o).BackDistance }),
	},
	WriteOrder: []schema.Op{
		schema.EmitComputed(func(o schema.Object) groupcode.Pair {
			return groupcode.NewShort(70, int16(len(spatial(o).Boundary)))
		}),
		schema.EmitField("Boundary"),
		schema.EmitField("Normal"),
		schema.EmitField("Origin"),
		schema.EmitField("ClipEnabled"),
		schema.EmitField("FrontClipping"),
		schema.EmitField("FrontDistance"),
		schema.EmitField("BackClipping"),
		schema.EmitField("BackDistance"),
	},
	Allocate: func() schema.Object { return &SpatialFilter{} },
}

// NewSpatialFilter - an initialised SPATIAL_FILTER with a boundary
func NewSpatialFilter(boundary ...geometry.Point) *SpatialFilter {
	f := SpatialFilterType.New().(*SpatialFilter)
	f.Boundary = append(f.Boundary, boundary...)
	return f
}
