// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entity

import (
	"github.com/bitmark-inc/dxfcodec/geometry"
	"github.com/bitmark-inc/dxfcodec/schema"
)

// Line - a straight segment
type Line struct {
	Entity
	Thickness float64
	Start     geometry.Point
	End       geometry.Point
	Extrusion geometry.Vector
}

// Descriptor - the type of the item
func (*Line) Descriptor() *schema.Type { return LineType }

func line(o schema.Object) *Line { return o.(*Line) }

// LineType - LINE
var LineType = &schema.Type{
	Name:           "LINE",
	Tags:           []string{"LINE"},
	SubclassMarker: "AcDbLine",
	Base:           EntityType,
	Fields: []*schema.Field{
		schema.Double("Thickness", 39, 0, func(o schema.Object) *float64 { return &line(o).Thickness }).Suppress(),
		schema.Point("Start", 10, geometry.Origin, func(o schema.Object) *geometry.Point { return &line(o).Start }),
		schema.Point("End", 11, geometry.Origin, func(o schema.Object) *geometry.Point { return &line(o).End }),
		schema.Vector("Extrusion", 210, geometry.ZAxis, func(o schema.Object) *geometry.Vector { return &line(o).Extrusion }).Suppress(),
	},
	Allocate: func() schema.Object { return &Line{} },
}

// NewLine - an initialised LINE
func NewLine(start geometry.Point, end geometry.Point) *Line {
	l := LineType.New().(*Line)
	l.Start = start
	l.End = end
	return l
}

// Length - distance between the end points
func (l *Line) Length() float64 {
	return l.End.Sub(l.Start).Length()
}

// Point - a single location
type Point struct {
	Entity
	Location  geometry.Point
	Thickness float64
	Extrusion geometry.Vector
	Angle     float64
}

// Descriptor - the type of the item
func (*Point) Descriptor() *schema.Type { return PointType }

func point(o schema.Object) *Point { return o.(*Point) }

// PointType - POINT
var PointType = &schema.Type{
	Name:           "POINT",
	Tags:           []string{"POINT"},
	SubclassMarker: "AcDbPoint",
	Base:           EntityType,
	Fields: []*schema.Field{
		schema.Point("Location", 10, geometry.Origin, func(o schema.Object) *geometry.Point { return &point(o).Location }),
		schema.Double("Thickness", 39, 0, func(o schema.Object) *float64 { return &point(o).Thickness }).Suppress(),
		schema.Vector("Extrusion", 210, geometry.ZAxis, func(o schema.Object) *geometry.Vector { return &point(o).Extrusion }).Suppress(),
		schema.Double("Angle", 50, 0, func(o schema.Object) *float64 { return &point(o).Angle }).Suppress(),
	},
	Allocate: func() schema.Object { return &Point{} },
}

// NewPoint - an initialised POINT
func NewPoint(location geometry.Point) *Point {
	p := PointType.New().(*Point)
	p.Location = location
	return p
}

// Circle - a full circle, also the base layer of an arc
type Circle struct {
	Entity
	Thickness float64
	Center    geometry.Point
	Radius    float64
	Extrusion geometry.Vector
}

type circleHolder interface {
	CircleBase() *Circle
}

// CircleBase - the circle layer of a circle or arc
func (c *Circle) CircleBase() *Circle { return c }

// Descriptor - the type of the item
func (*Circle) Descriptor() *schema.Type { return CircleType }

func circle(o schema.Object) *Circle { return o.(circleHolder).CircleBase() }

// CircleType - CIRCLE
var CircleType = &schema.Type{
	Name:           "CIRCLE",
	Tags:           []string{"CIRCLE"},
	SubclassMarker: "AcDbCircle",
	Base:           EntityType,
	Fields: []*schema.Field{
		schema.Double("Thickness", 39, 0, func(o schema.Object) *float64 { return &circle(o).Thickness }).Suppress(),
		schema.Point("Center", 10, geometry.Origin, func(o schema.Object) *geometry.Point { return &circle(o).Center }),
		schema.Double("Radius", 40, 1, func(o schema.Object) *float64 { return &circle(o).Radius }),
		schema.Vector("Extrusion", 210, geometry.ZAxis, func(o schema.Object) *geometry.Vector { return &circle(o).Extrusion }).Suppress(),
	},
	Allocate: func() schema.Object { return &Circle{} },
}

// NewCircle - an initialised CIRCLE
func NewCircle(center geometry.Point, radius float64) *Circle {
	c := CircleType.New().(*Circle)
	c.Center = center
	c.Radius = radius
	return c
}

// Arc - part of a circle between two angles in degrees
type Arc struct {
	Circle
	StartAngle float64
	EndAngle   float64
}

// Descriptor - the type of the item
func (*Arc) Descriptor() *schema.Type { return ArcType }

func arc(o schema.Object) *Arc { return o.(*Arc) }

// ArcType - ARC
var ArcType = &schema.Type{
	Name:           "ARC",
	Tags:           []string{"ARC"},
	SubclassMarker: "AcDbArc",
	Base:           CircleType,
	Fields: []*schema.Field{
		schema.Double("StartAngle", 50, 0, func(o schema.Object) *float64 { return &arc(o).StartAngle }),
		schema.Double("EndAngle", 51, 360, func(o schema.Object) *float64 { return &arc(o).EndAngle }),
	},
	Allocate: func() schema.Object { return &Arc{} },
}

// NewArc - an initialised ARC
func NewArc(center geometry.Point, radius float64, start float64, end float64) *Arc {
	a := ArcType.New().(*Arc)
	a.Center = center
	a.Radius = radius
	a.StartAngle = start
	a.EndAngle = end
	return a
}
