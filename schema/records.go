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

// Member - one coded value inside a record element
type Member[E any] struct {
	Code   int
	Assign func(e *E, p groupcode.Pair) error
	Pair   func(e *E) groupcode.Pair
}

// ScalarMember - a member held in a plain Go value of the element
func ScalarMember[E any, T Value](code int, ref func(e *E) *T) Member[E] {
	kind := groupcode.MustKindOf(code)
	return Member[E]{
		Code: code,
		Assign: func(e *E, p groupcode.Pair) error {
			v, err := decode[T](p, kind)
			if nil != err {
				return err
			}
			*ref(e) = v
			return nil
		},
		Pair: func(e *E) groupcode.Pair {
			return encode(code, kind, *ref(e))
		},
	}
}

// ComponentMember - one component of a composite element
func ComponentMember[E Composite](code int, component int, with func(E, int, float64) E) Member[E] {
	return Member[E]{
		Code: code,
		Assign: func(e *E, p groupcode.Pair) error {
			v, err := p.AsDouble()
			if nil != err {
				return err
			}
			*e = with(*e, component, v)
			return nil
		},
		Pair: func(e *E) groupcode.Pair {
			return groupcode.NewDouble(code, (*e).Component(component))
		},
	}
}

// PointMember - one component of a location held inside the element
func PointMember[E any](code int, component int, ref func(e *E) *geometry.Point) Member[E] {
	return Member[E]{
		Code: code,
		Assign: func(e *E, p groupcode.Pair) error {
			v, err := p.AsDouble()
			if nil != err {
				return err
			}
			r := ref(e)
			*r = r.WithComponent(component, v)
			return nil
		},
		Pair: func(e *E) groupcode.Pair {
			return groupcode.NewDouble(code, ref(e).Component(component))
		},
	}
}

type records[E any] struct {
	ref     func(Object) *[]E
	members []Member[E]
}

// Records - a sequence of multi-code elements
//
// the first member's code starts a new element, every other member
// code updates the most recent one
func Records[E any](name string, ref func(Object) *[]E, members ...Member[E]) *Field {
	if 0 == len(members) {
		fault.Panicf("field: %s: %s", name, fault.ErrWrongComponentCount)
	}
	codes := make([]int, len(members))
	for i, m := range members {
		codes[i] = m.Code
	}
	f := newField(name, &records[E]{ref: ref, members: members}, codes...)
	f.AllowMultiples = true
	return f
}

// PointList - a sequence of locations, one element per X code
func PointList(name string, code int, components int, ref func(Object) *[]geometry.Point) *Field {
	codes := CompositeCodes(code, components)
	members := make([]Member[geometry.Point], len(codes))
	for i, c := range codes {
		members[i] = ComponentMember(c, i, geometry.Point.WithComponent)
	}
	return Records(name, ref, members...)
}

func (r *records[E]) Reset(o Object) {
	*r.ref(o) = make([]E, 0)
}

func (r *records[E]) Assign(o Object, f *Field, component int, p groupcode.Pair) error {
	elements := r.ref(o)
	if 0 == component || 0 == len(*elements) {
		var e E
		if err := r.members[component].Assign(&e, p); nil != err {
			return err
		}
		*elements = append(*elements, e)
		return nil
	}
	return r.members[component].Assign(&(*elements)[len(*elements)-1], p)
}

func (r *records[E]) Pairs(o Object, f *Field) []groupcode.Pair {
	elements := *r.ref(o)
	pairs := make([]groupcode.Pair, 0, len(elements)*len(r.members))
	for i := range elements {
		for _, m := range r.members {
			pairs = append(pairs, m.Pair(&elements[i]))
		}
	}
	return pairs
}

func (r *records[E]) IsDefault(o Object) bool {
	return 0 == len(*r.ref(o))
}

func (r *records[E]) Len(o Object) int {
	return len(*r.ref(o))
}

func (r *records[E]) ElementPairs(o Object, f *Field, i int) []groupcode.Pair {
	elements := *r.ref(o)
	if i < 0 || i >= len(elements) {
		return nil
	}
	pairs := make([]groupcode.Pair, len(r.members))
	for j, m := range r.members {
		pairs[j] = m.Pair(&elements[i])
	}
	return pairs
}
