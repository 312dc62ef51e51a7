// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package geometry - immutable multi-component values that span
// several group codes (e.g. 10/20/30)
package geometry

import (
	"fmt"
	"math"
)

// Point - a location
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vector - a direction or displacement
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// commonly used values
var (
	Origin = Point{}
	XAxis  = Vector{X: 1}
	YAxis  = Vector{Y: 1}
	ZAxis  = Vector{Z: 1}
)

// NewPoint - create a point
func NewPoint(x float64, y float64, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// NewVector - create a vector
func NewVector(x float64, y float64, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Component - read a component by index: 0 → X, 1 → Y, 2 → Z
func (p Point) Component(i int) float64 {
	return component(p.X, p.Y, p.Z, i)
}

// WithComponent - copy of the point with one component replaced
func (p Point) WithComponent(i int, v float64) Point {
	p.X, p.Y, p.Z = withComponent(p.X, p.Y, p.Z, i, v)
	return p
}

// String - conversion for fmt package
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Add - displace a point
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Sub - vector from q to p
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Component - read a component by index: 0 → X, 1 → Y, 2 → Z
func (v Vector) Component(i int) float64 {
	return component(v.X, v.Y, v.Z, i)
}

// WithComponent - copy of the vector with one component replaced
func (v Vector) WithComponent(i int, c float64) Vector {
	v.X, v.Y, v.Z = withComponent(v.X, v.Y, v.Z, i, c)
	return v
}

// String - conversion for fmt package
func (v Vector) String() string {
	return fmt.Sprintf("<%g, %g, %g>", v.X, v.Y, v.Z)
}

// Length - euclidean length
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// IsZero - true for the zero vector
func (v Vector) IsZero() bool {
	return 0 == v.X && 0 == v.Y && 0 == v.Z
}

func component(x float64, y float64, z float64, i int) float64 {
	switch i {
	case 0:
		return x
	case 1:
		return y
	case 2:
		return z
	}
	panic(fmt.Sprintf("geometry: component index %d out of range", i))
}

func withComponent(x float64, y float64, z float64, i int, v float64) (float64, float64, float64) {
	switch i {
	case 0:
		return v, y, z
	case 1:
		return x, v, z
	case 2:
		return x, y, v
	}
	panic(fmt.Sprintf("geometry: component index %d out of range", i))
}
