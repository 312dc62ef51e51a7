// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"github.com/bitmark-inc/dxfcodec/fault"
	"github.com/bitmark-inc/dxfcodec/geometry"
	"github.com/bitmark-inc/dxfcodec/groupcode"
)

// Composite - values made of independently coded real components
type Composite interface {
	geometry.Point | geometry.Vector
	Component(i int) float64
}

type composite[T Composite] struct {
	ref          func(Object) *T
	defaultValue T
	with         func(T, int, float64) T
}

// CompositeCodes - the conventional codes of a composite: code, code+10, code+20
//
// two components drop the Z code
func CompositeCodes(code int, components int) []int {
	codes := make([]int, components)
	for i := range codes {
		codes[i] = code + 10*i
	}
	return codes
}

// Point - a location spanning X/Y/Z codes
func Point(name string, code int, defaultValue geometry.Point, ref func(Object) *geometry.Point) *Field {
	return PointCodes(name, defaultValue, ref, CompositeCodes(code, 3)...)
}

// Point2 - a location stored with only X/Y codes
func Point2(name string, code int, defaultValue geometry.Point, ref func(Object) *geometry.Point) *Field {
	return PointCodes(name, defaultValue, ref, CompositeCodes(code, 2)...)
}

// PointCodes - a location with explicit component codes
func PointCodes(name string, defaultValue geometry.Point, ref func(Object) *geometry.Point, codes ...int) *Field {
	return newComposite(name, defaultValue, ref, geometry.Point.WithComponent, codes)
}

// Vector - a direction spanning X/Y/Z codes
func Vector(name string, code int, defaultValue geometry.Vector, ref func(Object) *geometry.Vector) *Field {
	return VectorCodes(name, defaultValue, ref, CompositeCodes(code, 3)...)
}

// VectorCodes - a direction with explicit component codes
func VectorCodes(name string, defaultValue geometry.Vector, ref func(Object) *geometry.Vector, codes ...int) *Field {
	return newComposite(name, defaultValue, ref, geometry.Vector.WithComponent, codes)
}

func newComposite[T Composite](name string, defaultValue T, ref func(Object) *T, with func(T, int, float64) T, codes []int) *Field {
	if len(codes) < 1 || len(codes) > 3 {
		fault.Panicf("field: %s: %s", name, fault.ErrWrongComponentCount)
	}
	for _, code := range codes {
		if groupcode.Double != groupcode.MustKindOf(code) {
			fault.Panicf("field: %s: component code: %d is not real", name, code)
		}
	}
	return newField(name, &composite[T]{
		ref:          ref,
		defaultValue: defaultValue,
		with:         with,
	}, codes...)
}

func (c *composite[T]) Reset(o Object) {
	*c.ref(o) = c.defaultValue
}

// Assign - replace one component, carrying the others
func (c *composite[T]) Assign(o Object, f *Field, component int, p groupcode.Pair) error {
	v, err := p.AsDouble()
	if nil != err {
		return err
	}
	r := c.ref(o)
	*r = c.with(*r, component, v)
	return nil
}

func (c *composite[T]) Pairs(o Object, f *Field) []groupcode.Pair {
	v := *c.ref(o)
	pairs := make([]groupcode.Pair, len(f.Codes))
	for i, code := range f.Codes {
		pairs[i] = groupcode.NewDouble(code, v.Component(i))
	}
	return pairs
}

func (c *composite[T]) IsDefault(o Object) bool {
	return *c.ref(o) == c.defaultValue
}
