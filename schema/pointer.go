// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"github.com/bitmark-inc/dxfcodec/groupcode"
	"github.com/bitmark-inc/dxfcodec/handle"
)

type pointer struct {
	ref func(Object) *handle.Pointer
}

// Pointer - a single reference; a repeated code overwrites it
//
// a null or unresolved reference is omitted when written unless the
// field is marked Always, in which case the null handle is written
func Pointer(name string, code int, ref func(Object) *handle.Pointer) *Field {
	return newField(name, &pointer{ref: ref}, code)
}

func (p *pointer) Reset(o Object) {
	p.ref(o).Clear()
}

func (p *pointer) Assign(o Object, f *Field, component int, pair groupcode.Pair) error {
	h, err := pair.AsHandle()
	if nil != err {
		return err
	}
	p.ref(o).SetHandle(handle.Handle(h))
	return nil
}

func (p *pointer) Pairs(o Object, f *Field) []groupcode.Pair {
	h := p.ref(o).WriteHandle()
	if handle.Null == h && !f.WriteNullPointer {
		return nil
	}
	return []groupcode.Pair{groupcode.NewHandle(f.Code, uint64(h))}
}

func (p *pointer) IsDefault(o Object) bool {
	return !p.ref(o).IsSet()
}

func (p *pointer) VisitPointers(o Object, fn func(*handle.Pointer)) {
	fn(p.ref(o))
}

type pointers struct {
	ref     func(Object) *handle.Collection
	minimum int
}

// Pointers - an ordered collection of references, one per pair
//
// unresolved entries are omitted when written
func Pointers(name string, code int, minimumCount int, ref func(Object) *handle.Collection) *Field {
	f := newField(name, &pointers{ref: ref, minimum: minimumCount}, code)
	f.AllowMultiples = true
	return f
}

func (p *pointers) Reset(o Object) {
	*p.ref(o) = handle.NewCollection(p.minimum)
}

func (p *pointers) Assign(o Object, f *Field, component int, pair groupcode.Pair) error {
	h, err := pair.AsHandle()
	if nil != err {
		return err
	}
	p.ref(o).AppendHandle(handle.Handle(h))
	return nil
}

func (p *pointers) Pairs(o Object, f *Field) []groupcode.Pair {
	handles := p.ref(o).WriteHandles()
	pairs := make([]groupcode.Pair, len(handles))
	for i, h := range handles {
		pairs[i] = groupcode.NewHandle(f.Code, uint64(h))
	}
	return pairs
}

func (p *pointers) IsDefault(o Object) bool {
	return 0 == p.ref(o).Len()
}

func (p *pointers) Len(o Object) int {
	return p.ref(o).Len()
}

func (p *pointers) ElementPairs(o Object, f *Field, i int) []groupcode.Pair {
	c := p.ref(o)
	if i < 0 || i >= c.Len() {
		return nil
	}
	h := c.At(i).WriteHandle()
	if handle.Null == h {
		return nil
	}
	return []groupcode.Pair{groupcode.NewHandle(f.Code, uint64(h))}
}

func (p *pointers) VisitPointers(o Object, fn func(*handle.Pointer)) {
	for _, ptr := range p.ref(o).All() {
		fn(ptr)
	}
}
