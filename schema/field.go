// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/groupcode"
	"github.com/bitmark-inc/dxfcodec/handle"
)

// Accessor - typed access to the storage behind a field
//
// component is the index of the pair's code in Field.Codes
type Accessor interface {
	Reset(o Object)
	Assign(o Object, f *Field, component int, p groupcode.Pair) error
	Pairs(o Object, f *Field) []groupcode.Pair
	IsDefault(o Object) bool
}

// ListAccessor - fields holding an ordered sequence
type ListAccessor interface {
	Accessor
	Len(o Object) int
	ElementPairs(o Object, f *Field, i int) []groupcode.Pair
}

// PointerAccessor - fields holding references to other items
type PointerAccessor interface {
	Accessor
	VisitPointers(o Object, fn func(*handle.Pointer))
}

// IntegerAccessor - integer scalars, the storage behind flags
type IntegerAccessor interface {
	Accessor
	Int(o Object) int64
	SetInt(o Object, v int64)
}

// BinaryAccessor - a single binary value
type BinaryAccessor interface {
	Accessor
	Bytes(o Object) []byte
	SetBytes(o Object, b []byte)
}

// Field - descriptor of one member of a layer
type Field struct {
	Name              string
	Code              int   // primary code
	Codes             []int // every code the field reads, in component order
	Kind              groupcode.Kind
	AllowMultiples    bool
	MinVersion        dxfversion.Version
	MaxVersion        dxfversion.Version
	WriteCondition    func(o Object) bool
	SuppressIfDefault bool
	ReadOnly          bool
	WriteNullPointer  bool
	Chunk             *Chunking
	Access            Accessor

	layer *Type
}

// Chunking - a binary value written as a length pair followed by
// fixed size chunk pairs
type Chunking struct {
	LengthCode int
	ChunkCode  int
	ChunkSize  int
}

// DefaultChunkSize - bytes per binary chunk pair
const DefaultChunkSize = 127

func newField(name string, access Accessor, codes ...int) *Field {
	return &Field{
		Name:   name,
		Code:   codes[0],
		Codes:  codes,
		Kind:   groupcode.MustKindOf(codes[0]),
		Access: access,
	}
}

// Since - present from a revision onwards
func (f *Field) Since(v dxfversion.Version) *Field {
	f.MinVersion = v
	return f
}

// Until - present up to and including a revision
func (f *Field) Until(v dxfversion.Version) *Field {
	f.MaxVersion = v
	return f
}

// Suppress - not written while holding its default value
func (f *Field) Suppress() *Field {
	f.SuppressIfDefault = true
	return f
}

// When - written only while the condition holds
func (f *Field) When(condition func(o Object) bool) *Field {
	f.WriteCondition = condition
	return f
}

// Computed - not settable by name from outside the engine
func (f *Field) Computed() *Field {
	f.ReadOnly = true
	return f
}

// Always - write a single pointer even when it is null
func (f *Field) Always() *Field {
	f.WriteNullPointer = true
	return f
}

// Layer - the type layer that declares the field
func (f *Field) Layer() *Type {
	return f.layer
}

// ShouldWrite - the complete write predicate except the pointer
// null test which the pointer accessor applies itself
func (f *Field) ShouldWrite(o Object, v dxfversion.Version) bool {
	if !v.InRange(f.MinVersion, f.MaxVersion) {
		return false
	}
	if nil != f.WriteCondition && !f.WriteCondition(o) {
		return false
	}
	if f.SuppressIfDefault && f.Access.IsDefault(o) {
		return false
	}
	return true
}

// ComponentOf - index of a code in Codes, -1 if absent
func (f *Field) ComponentOf(code int) int {
	for i, c := range f.Codes {
		if c == code {
			return i
		}
	}
	return -1
}

// Flag - a named bit of an integer field
type Flag struct {
	Name  string
	Field string
	Mask  int64
}
