// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package object

import (
	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/geometry"
	"github.com/bitmark-inc/dxfcodec/handle"
	"github.com/bitmark-inc/dxfcodec/item"
	"github.com/bitmark-inc/dxfcodec/schema"
)

// resolution units
const (
	ResolutionNone        = 0
	ResolutionCentimeters = 2
	ResolutionInches      = 5
)

// ImageDefinition - the external file behind one or more images
type ImageDefinition struct {
	item.Base
	ClassVersion    int32
	FileName        string
	ImageSize       geometry.Point
	PixelSize       geometry.Point
	Loaded          bool
	ResolutionUnits int16
}

// Descriptor - the type of the item
func (*ImageDefinition) Descriptor() *schema.Type { return ImageDefinitionType }

func imageDefinition(o schema.Object) *ImageDefinition { return o.(*ImageDefinition) }

// ImageDefinitionType - IMAGEDEF
var ImageDefinitionType = &schema.Type{
	Name:           "IMAGEDEF",
	Tags:           []string{"IMAGEDEF"},
	SubclassMarker: "AcDbRasterImageDef",
	MinVersion:     dxfversion.R14,
	Fields: []*schema.Field{
		schema.Integer("ClassVersion", 90, 0, func(o schema.Object) *int32 { return &imageDefinition(o).ClassVersion }),
		schema.String("FileName", 1, "", func(o schema.Object) *string { return &imageDefinition(o).FileName }),
		schema.Point2("ImageSize", 10, geometry.Origin, func(o schema.Object) *geometry.Point { return &imageDefinition(o).ImageSize }),
		schema.Point2("PixelSize", 11, geometry.NewPoint(1, 1, 0), func(o schema.Object) *geometry.Point { return &imageDefinition(o).PixelSize }),
		schema.Bool("Loaded", 280, true, func(o schema.Object) *bool { return &imageDefinition(o).Loaded }),
		schema.Short("ResolutionUnits", 281, ResolutionNone, func(o schema.Object) *int16 { return &imageDefinition(o).ResolutionUnits }),
	},
	Allocate: func() schema.Object { return &ImageDefinition{} },
}

// NewImageDefinition - an initialised IMAGEDEF for a file
func NewImageDefinition(fileName string, width float64, height float64) *ImageDefinition {
	d := ImageDefinitionType.New().(*ImageDefinition)
	d.FileName = fileName
	d.ImageSize = geometry.NewPoint(width, height, 0)
	return d
}

// ImageDefinitionReactor - links an image back to its definition
type ImageDefinitionReactor struct {
	item.Base
	ClassVersion int32
	Image        handle.Pointer
}

// Descriptor - the type of the item
func (*ImageDefinitionReactor) Descriptor() *schema.Type { return ImageDefinitionReactorType }

func reactor(o schema.Object) *ImageDefinitionReactor { return o.(*ImageDefinitionReactor) }

// ImageDefinitionReactorType - IMAGEDEF_REACTOR
var ImageDefinitionReactorType = &schema.Type{
	Name:           "IMAGEDEF_REACTOR",
	Tags:           []string{"IMAGEDEF_REACTOR"},
	SubclassMarker: "AcDbRasterImageDefReactor",
	MinVersion:     dxfversion.R14,
	Fields: []*schema.Field{
		schema.Integer("ClassVersion", 90, 2, func(o schema.Object) *int32 { return &reactor(o).ClassVersion }),
		schema.Pointer("Image", 330, func(o schema.Object) *handle.Pointer { return &reactor(o).Image }),
	},
	Allocate: func() schema.Object { return &ImageDefinitionReactor{} },
}

// NewImageDefinitionReactor - an initialised IMAGEDEF_REACTOR for an image
func NewImageDefinitionReactor(image handle.Target) *ImageDefinitionReactor {
	r := ImageDefinitionReactorType.New().(*ImageDefinitionReactor)
	r.Image.Point(image)
	r.SetOwner(image)
	return r
}
