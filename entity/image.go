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
	"github.com/bitmark-inc/dxfcodec/handle"
	"github.com/bitmark-inc/dxfcodec/schema"
)

// clipping boundary types
const (
	BoundaryRectangular = 1
	BoundaryPolygonal   = 2
)

// Image - a raster image placed in the drawing
type Image struct {
	Entity
	ClassVersion     int32
	Location         geometry.Point
	U                geometry.Vector
	V                geometry.Vector
	Size             geometry.Point
	Definition       handle.Pointer
	DisplayFlags     int16
	Clipping         bool
	Brightness       int16
	Contrast         int16
	Fade             int16
	Reactor          handle.Pointer
	BoundaryType     int16
	Boundary         []geometry.Point
	ClippingInverted bool
}

// Descriptor - the type of the item
func (*Image) Descriptor() *schema.Type { return ImageType }

func image(o schema.Object) *Image { return o.(*Image) }

// ImageType - IMAGE
//
// the boundary vertex count is derived when written
var ImageType = &schema.Type{
	Name:           "IMAGE",
	Tags:           []string{"IMAGE"},
	SubclassMarker: "AcDbRasterImage",
	Base:           EntityType,
	MinVersion:     dxfversion.R14,
	Fields: []*schema.Field{
		schema.Integer("ClassVersion", 90, 0, func(o schema.Object) *int32 { return &image(o).ClassVersion }),
		schema.Point("Location", 10, geometry.Origin, func(o schema.Object) *geometry.Point { return &image(o).Location }),
		schema.Vector("U", 11, geometry.XAxis, func(o schema.Object) *geometry.Vector { return &image(o).U }),
		schema.Vector("V", 12, geometry.YAxis, func(o schema.Object) *geometry.Vector { return &image(o).V }),
		schema.Point2("Size", 13, geometry.Origin, func(o schema.Object) *geometry.Point { return &image(o).Size }),
		schema.Pointer("Definition", 340, func(o schema.Object) *handle.Pointer { return &image(o).Definition }),
		schema.Short("DisplayFlags", 70, 7, func(o schema.Object) *int16 { return &image(o).DisplayFlags }),
		schema.Bool("Clipping", 280, false, func(o schema.Object) *bool { return &image(o).Clipping }),
		schema.Short("Brightness", 281, 50, func(o schema.Object) *int16 { return &image(o).Brightness }),
		schema.Short("Contrast", 282, 50, func(o schema.Object) *int16 { return &image(o).Contrast }),
		schema.Short("Fade", 283, 0, func(o schema.Object) *int16 { return &image(o).Fade }),
		schema.Pointer("Reactor", 360, func(o schema.Object) *handle.Pointer { return &image(o).Reactor }),
		schema.Short("BoundaryType", 71, BoundaryRectangular, func(o schema.Object) *int16 { return &image(o).BoundaryType }),
		schema.PointList("Boundary", 14, 2, func(o schema.Object) *[]geometry.Point { return &image(o).Boundary }),
		schema.Bool("ClippingInverted", 290, false, func(o schema.Object) *bool { return &image(o).ClippingInverted }).Since(dxfversion.R2010),
	},
	Flags: []schema.Flag{
		{Name: "ShowImage", Field: "DisplayFlags", Mask: 1},
		{Name: "ShowWhenNotAligned", Field: "DisplayFlags", Mask: 2},
		{Name: "UseClippingBoundary", Field: "DisplayFlags", Mask: 4},
		{Name: "Transparency", Field: "DisplayFlags", Mask: 8},
	},
	WriteOrder: []schema.Op{
		schema.EmitField("ClassVersion"),
		schema.EmitField("Location"),
		schema.EmitField("U"),
		schema.EmitField("V"),
		schema.EmitField("Size"),
		schema.EmitField("Definition"),
		schema.EmitField("DisplayFlags"),
		schema.EmitField("Clipping"),
		schema.EmitField("Brightness"),
		schema.EmitField("Contrast"),
		schema.EmitField("Fade"),
		schema.EmitField("Reactor"),
		schema.EmitField("BoundaryType"),
		schema.EmitComputed(func(o schema.Object) groupcode.Pair {
			return groupcode.NewInteger(91, int32(len(image(o).Boundary)))
		}),
		schema.EmitField("Boundary"),
		schema.EmitField("ClippingInverted"),
	},
	Allocate: func() schema.Object { return &Image{} },
}

// NewImage - an initialised IMAGE referring to its definition
func NewImage(location geometry.Point, definition handle.Target) *Image {
	i := ImageType.New().(*Image)
	i.Location = location
	i.Definition.Point(definition)
	return i
}

// IsShown - the image is displayed
func (i *Image) IsShown() bool { return bitflag.MustGet(i, "ShowImage") }

// SetShown - display the image or not
func (i *Image) SetShown(b bool) { bitflag.MustSet(i, "ShowImage", b) }

// UsesClippingBoundary - the boundary clips the image
func (i *Image) UsesClippingBoundary() bool { return bitflag.MustGet(i, "UseClippingBoundary") }

// SetUseClippingBoundary - clip to the boundary or not
func (i *Image) SetUseClippingBoundary(b bool) { bitflag.MustSet(i, "UseClippingBoundary", b) }
