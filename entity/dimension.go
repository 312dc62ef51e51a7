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

// dimension kinds, the low bits of the dimension type
const (
	DimensionRotated       = 0
	DimensionAligned       = 1
	DimensionAngular       = 2
	DimensionDiameter      = 3
	DimensionRadius        = 4
	DimensionAngular3Point = 5
	DimensionOrdinate      = 6

	DimensionKindMask = 0x0f
)

// Dimension - the layer common to every dimension
//
// read generically, then replaced by the subtype its kind names
type Dimension struct {
	Entity
	Version             int16
	BlockName           string
	DefinitionPoint     geometry.Point
	TextMidPoint        geometry.Point
	DimensionType       int16
	AttachmentPoint     int16
	LineSpacingStyle    int16
	LineSpacingFactor   float64
	ActualMeasurement   float64
	Text                string
	TextRotation        float64
	HorizontalDirection float64
	Normal              geometry.Vector
	StyleName           string
}

type dimensionHolder interface {
	DimensionBase() *Dimension
}

// DimensionBase - the common dimension layer of any dimension
func (d *Dimension) DimensionBase() *Dimension { return d }

// Descriptor - the type of the item
func (*Dimension) Descriptor() *schema.Type { return DimensionType }

// Kind - which subtype the dimension type names
func (d *Dimension) Kind() int {
	return int(d.DimensionType) & DimensionKindMask
}

// IsBlockReferenceUnique - the block is referenced by this dimension only
func (d *Dimension) IsBlockReferenceUnique() bool {
	return bitflag.MustGet(d, "BlockReferenceIsUnique")
}

// IsOrdinateXType - an ordinate dimension measures X rather than Y
func (d *Dimension) IsOrdinateXType() bool {
	return bitflag.MustGet(d, "IsOrdinateXType")
}

// IsTextUserPositioned - the text has been moved from its default place
func (d *Dimension) IsTextUserPositioned() bool {
	return bitflag.MustGet(d, "IsTextUserPositioned")
}

func dimension(o schema.Object) *Dimension { return o.(dimensionHolder).DimensionBase() }

// DimensionType - DIMENSION, parsed generically and redispatched
var DimensionType = &schema.Type{
	Name:           "DIMENSION",
	Tags:           []string{"DIMENSION"},
	SubclassMarker: "AcDbDimension",
	Base:           EntityType,
	Fields: []*schema.Field{
		schema.Short("Version", 280, 0, func(o schema.Object) *int16 { return &dimension(o).Version }).Since(dxfversion.R2010),
		schema.String("BlockName", 2, "", func(o schema.Object) *string { return &dimension(o).BlockName }),
		schema.Point("DefinitionPoint", 10, geometry.Origin, func(o schema.Object) *geometry.Point { return &dimension(o).DefinitionPoint }),
		schema.Point("TextMidPoint", 11, geometry.Origin, func(o schema.Object) *geometry.Point { return &dimension(o).TextMidPoint }),
		schema.Short("DimensionType", 70, 0, func(o schema.Object) *int16 { return &dimension(o).DimensionType }),
		schema.Short("AttachmentPoint", 71, 5, func(o schema.Object) *int16 { return &dimension(o).AttachmentPoint }).Since(dxfversion.R2000),
		schema.Short("LineSpacingStyle", 72, 1, func(o schema.Object) *int16 { return &dimension(o).LineSpacingStyle }).Since(dxfversion.R2000).Suppress(),
		schema.Double("LineSpacingFactor", 41, 1, func(o schema.Object) *float64 { return &dimension(o).LineSpacingFactor }).Since(dxfversion.R2000).Suppress(),
		schema.Double("ActualMeasurement", 42, 0, func(o schema.Object) *float64 { return &dimension(o).ActualMeasurement }).Since(dxfversion.R2000),
		schema.String("Text", 1, "", func(o schema.Object) *string { return &dimension(o).Text }).Suppress(),
		schema.Double("TextRotation", 53, 0, func(o schema.Object) *float64 { return &dimension(o).TextRotation }).Suppress(),
		schema.Double("HorizontalDirection", 51, 0, func(o schema.Object) *float64 { return &dimension(o).HorizontalDirection }).Suppress(),
		schema.Vector("Normal", 210, geometry.ZAxis, func(o schema.Object) *geometry.Vector { return &dimension(o).Normal }).Suppress(),
		schema.String("StyleName", 3, "STANDARD", func(o schema.Object) *string { return &dimension(o).StyleName }),
	},
	Flags: []schema.Flag{
		{Name: "BlockReferenceIsUnique", Field: "DimensionType", Mask: 32},
		{Name: "IsOrdinateXType", Field: "DimensionType", Mask: 64},
		{Name: "IsTextUserPositioned", Field: "DimensionType", Mask: 128},
	},
	Allocate: func() schema.Object { return &Dimension{} },
}

// AlignedDimension - measured parallel to the extension line origins
type AlignedDimension struct {
	Dimension
	InsertionPoint        geometry.Point
	FirstDefinitionPoint  geometry.Point
	SecondDefinitionPoint geometry.Point
	Rotation              float64
	ObliqueAngle          float64
}

type alignedHolder interface {
	AlignedBase() *AlignedDimension
}

// AlignedBase - the aligned layer of an aligned or rotated dimension
func (d *AlignedDimension) AlignedBase() *AlignedDimension { return d }

// Descriptor - the type of the item
func (*AlignedDimension) Descriptor() *schema.Type { return AlignedDimensionType }

func aligned(o schema.Object) *AlignedDimension { return o.(alignedHolder).AlignedBase() }

// AlignedDimensionType - DIMENSION of kind 1
var AlignedDimensionType = &schema.Type{
	Name:           "DIMENSION_ALIGNED",
	SubclassMarker: "AcDbAlignedDimension",
	Base:           DimensionType,
	Fields: []*schema.Field{
		schema.Point("InsertionPoint", 12, geometry.Origin, func(o schema.Object) *geometry.Point { return &aligned(o).InsertionPoint }),
		schema.Point("FirstDefinitionPoint", 13, geometry.Origin, func(o schema.Object) *geometry.Point { return &aligned(o).FirstDefinitionPoint }),
		schema.Point("SecondDefinitionPoint", 14, geometry.Origin, func(o schema.Object) *geometry.Point { return &aligned(o).SecondDefinitionPoint }),
		schema.Double("Rotation", 50, 0, func(o schema.Object) *float64 { return &aligned(o).Rotation }).Suppress(),
		schema.Double("ObliqueAngle", 52, 0, func(o schema.Object) *float64 { return &aligned(o).ObliqueAngle }).Suppress(),
	},
	Allocate: func() schema.Object { return &AlignedDimension{} },
}

// RotatedDimension - a linear dimension at a given angle
type RotatedDimension struct {
	AlignedDimension
}

// Descriptor - the type of the item
func (*RotatedDimension) Descriptor() *schema.Type { return RotatedDimensionType }

// RotatedDimensionType - DIMENSION of kind 0
var RotatedDimensionType = &schema.Type{
	Name:           "DIMENSION_ROTATED",
	SubclassMarker: "AcDbRotatedDimension",
	Base:           AlignedDimensionType,
	Allocate:       func() schema.Object { return &RotatedDimension{} },
}

// AngularDimension - the angle between two lines
type AngularDimension struct {
	Dimension
	FirstLineStart  geometry.Point
	FirstLineEnd    geometry.Point
	SecondLineStart geometry.Point
	ArcLocation     geometry.Point
}

// Descriptor - the type of the item
func (*AngularDimension) Descriptor() *schema.Type { return AngularDimensionType }

func angular(o schema.Object) *AngularDimension { return o.(*AngularDimension) }

// AngularDimensionType - DIMENSION of kind 2
var AngularDimensionType = &schema.Type{
	Name:           "DIMENSION_ANGULAR",
	SubclassMarker: "AcDb2LineAngularDimension",
	Base:           DimensionType,
	Fields: []*schema.Field{
		schema.Point("FirstLineStart", 13, geometry.Origin, func(o schema.Object) *geometry.Point { return &angular(o).FirstLineStart }),
		schema.Point("FirstLineEnd", 14, geometry.Origin, func(o schema.Object) *geometry.Point { return &angular(o).FirstLineEnd }),
		schema.Point("SecondLineStart", 15, geometry.Origin, func(o schema.Object) *geometry.Point { return &angular(o).SecondLineStart }),
		schema.Point("ArcLocation", 16, geometry.Origin, func(o schema.Object) *geometry.Point { return &angular(o).ArcLocation }),
	},
	Allocate: func() schema.Object { return &AngularDimension{} },
}

// DiameterDimension - across a circle through its center
type DiameterDimension struct {
	Dimension
	FarChordPoint geometry.Point
	LeaderLength  float64
}

// Descriptor - the type of the item
func (*DiameterDimension) Descriptor() *schema.Type { return DiameterDimensionType }

func diameter(o schema.Object) *DiameterDimension { return o.(*DiameterDimension) }

// DiameterDimensionType - DIMENSION of kind 3
var DiameterDimensionType = &schema.Type{
	Name:           "DIMENSION_DIAMETER",
	SubclassMarker: "AcDbDiametricDimension",
	Base:           DimensionType,
	Fields: []*schema.Field{
		schema.Point("FarChordPoint", 15, geometry.Origin, func(o schema.Object) *geometry.Point { return &diameter(o).FarChordPoint }),
		schema.Double("LeaderLength", 40, 0, func(o schema.Object) *float64 { return &diameter(o).LeaderLength }),
	},
	Allocate: func() schema.Object { return &DiameterDimension{} },
}

// RadialDimension - from a center to a circle
type RadialDimension struct {
	Dimension
	ChordPoint   geometry.Point
	LeaderLength float64
}

// Descriptor - the type of the item
func (*RadialDimension) Descriptor() *schema.Type { return RadialDimensionType }

func radial(o schema.Object) *RadialDimension { return o.(*RadialDimension) }

// RadialDimensionType - DIMENSION of kind 4
var RadialDimensionType = &schema.Type{
	Name:           "DIMENSION_RADIUS",
	SubclassMarker: "AcDbRadialDimension",
	Base:           DimensionType,
	Fields: []*schema.Field{
		schema.Point("ChordPoint", 15, geometry.Origin, func(o schema.Object) *geometry.Point { return &radial(o).ChordPoint }),
		schema.Double("LeaderLength", 40, 0, func(o schema.Object) *float64 { return &radial(o).LeaderLength }),
	},
	Allocate: func() schema.Object { return &RadialDimension{} },
}

// Angular3PointDimension - an angle given by a vertex and two points
type Angular3PointDimension struct {
	Dimension
	FirstPoint  geometry.Point
	SecondPoint geometry.Point
	Vertex      geometry.Point
}

// Descriptor - the type of the item
func (*Angular3PointDimension) Descriptor() *schema.Type { return Angular3PointDimensionType }

func angular3(o schema.Object) *Angular3PointDimension { return o.(*Angular3PointDimension) }

// Angular3PointDimensionType - DIMENSION of kind 5
var Angular3PointDimensionType = &schema.Type{
	Name:           "DIMENSION_ANGULAR3POINT",
	SubclassMarker: "AcDb3PointAngularDimension",
	Base:           DimensionType,
	Fields: []*schema.Field{
		schema.Point("FirstPoint", 13, geometry.Origin, func(o schema.Object) *geometry.Point { return &angular3(o).FirstPoint }),
		schema.Point("SecondPoint", 14, geometry.Origin, func(o schema.Object) *geometry.Point { return &angular3(o).SecondPoint }),
		schema.Point("Vertex", 15, geometry.Origin, func(o schema.Object) *geometry.Point { return &angular3(o).Vertex }),
	},
	Allocate: func() schema.Object { return &Angular3PointDimension{} },
}

// OrdinateDimension - an X or Y offset from a datum
type OrdinateDimension struct {
	Dimension
	FeatureLocation geometry.Point
	LeaderEndPoint  geometry.Point
}

// Descriptor - the type of the item
func (*OrdinateDimension) Descriptor() *schema.Type { return OrdinateDimensionType }

func ordinate(o schema.Object) *OrdinateDimension { return o.(*OrdinateDimension) }

// OrdinateDimensionType - DIMENSION of kind 6
var OrdinateDimensionType = &schema.Type{
	Name:           "DIMENSION_ORDINATE",
	SubclassMarker: "AcDbOrdinateDimension",
	Base:           DimensionType,
	Fields: []*schema.Field{
		schema.Point("FeatureLocation", 13, geometry.Origin, func(o schema.Object) *geometry.Point { return &ordinate(o).FeatureLocation }),
		schema.Point("LeaderEndPoint", 14, geometry.Origin, func(o schema.Object) *geometry.Point { return &ordinate(o).LeaderEndPoint }),
	},
	Allocate: func() schema.Object { return &OrdinateDimension{} },
}

// subtype by kind, filled in init to break the reference cycle with
// the base descriptor
var dimensionKinds map[int]*schema.Type

func redispatchDimension(o schema.Object) *schema.Type {
	return dimensionKinds[dimension(o).Kind()]
}

func promoteDimension(dst schema.Object, src schema.Object) {
	*dimension(dst) = *dimension(src)
}

// NewDimension - an initialised dimension of the given kind
func NewDimension(kind int) (schema.Object, bool) {
	t, ok := dimensionKinds[kind]
	if !ok {
		return nil, false
	}
	o := t.New()
	dimension(o).DimensionType = int16(kind)
	return o, true
}
