// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/groupcode"
)

// Op - one step of a write-order script
//
// the set of operations is closed; the writer interprets them
type Op interface {
	op()
}

// Guard - version range and condition shared by script operations
type Guard struct {
	MinVersion dxfversion.Version
	MaxVersion dxfversion.Version
	Condition  func(o Object) bool
}

// Allows - true if the operation applies to the object at the version
func (g *Guard) Allows(o Object, v dxfversion.Version) bool {
	if !v.InRange(g.MinVersion, g.MaxVersion) {
		return false
	}
	return nil == g.Condition || g.Condition(o)
}

// Literal - emit a fixed or computed pair
type Literal struct {
	Guard
	Value   groupcode.Pair
	Compute func(o Object) groupcode.Pair
}

// FieldRef - emit a field under its usual write predicate
type FieldRef struct {
	Name string
}

// XDataOp - the point where the XData block is written
type XDataOp struct{}

// ForEach - repeat a body once per element of a list field
//
// the innermost loop's index selects elements for ElementRef; an
// element rejected by Element writes no pairs at all
type ForEach struct {
	Guard
	Field   string
	Element func(o Object, i int) bool
	Body    []Op
}

// ElementRef - emit the pairs of the current element of a list field
// having the given code, or all of them if Code is zero
type ElementRef struct {
	Guard
	Field string
	Code  int
}

// BinaryChunks - emit a binary field as a length pair followed by
// fixed size chunk pairs
type BinaryChunks struct {
	Guard
	Field    string
	Chunking Chunking
}

// MarkerRef - emit a subclass marker
type MarkerRef struct {
	Guard
	Marker string
}

func (*Literal) op()      {}
func (*FieldRef) op()     {}
func (*XDataOp) op()      {}
func (*ForEach) op()      {}
func (*ElementRef) op()   {}
func (*BinaryChunks) op() {}
func (*MarkerRef) op()    {}

// EmitPair - a literal pair
func EmitPair(p groupcode.Pair) *Literal {
	return &Literal{Value: p}
}

// EmitComputed - a pair derived from the object, e.g. a count
func EmitComputed(compute func(o Object) groupcode.Pair) *Literal {
	return &Literal{Compute: compute}
}

// EmitField - a named field
func EmitField(name string) *FieldRef {
	return &FieldRef{Name: name}
}

// EmitXData - splice the XData block here instead of at the end
func EmitXData() *XDataOp {
	return &XDataOp{}
}

// Each - iterate over the elements of a list field
func Each(field string, body ...Op) *ForEach {
	return &ForEach{Field: field, Body: body}
}

// EmitElement - pairs of the current element of a list field
func EmitElement(field string, code int) *ElementRef {
	return &ElementRef{Field: field, Code: code}
}

// EmitChunks - a binary field split into chunk pairs
func EmitChunks(field string, lengthCode int, chunkCode int) *BinaryChunks {
	return &BinaryChunks{
		Field: field,
		Chunking: Chunking{
			LengthCode: lengthCode,
			ChunkCode:  chunkCode,
			ChunkSize:  DefaultChunkSize,
		},
	}
}

// EmitMarker - an additional subclass marker inside a layer
func EmitMarker(marker string) *MarkerRef {
	return &MarkerRef{Marker: marker}
}

// Since - restrict an operation to a revision onwards
func (l *Literal) Since(v dxfversion.Version) *Literal {
	l.MinVersion = v
	return l
}

// If - restrict an operation to objects satisfying a condition
func (l *Literal) If(condition func(o Object) bool) *Literal {
	l.Condition = condition
	return l
}

// Since - restrict an operation to a revision onwards
func (f *ForEach) Since(v dxfversion.Version) *ForEach {
	f.MinVersion = v
	return f
}

// If - restrict an operation to objects satisfying a condition
func (f *ForEach) If(condition func(o Object) bool) *ForEach {
	f.Condition = condition
	return f
}

// Where - write only the elements satisfying a condition
func (f *ForEach) Where(element func(o Object, i int) bool) *ForEach {
	f.Element = element
	return f
}

// Since - restrict an operation to a revision onwards
func (e *ElementRef) Since(v dxfversion.Version) *ElementRef {
	e.MinVersion = v
	return e
}

// Since - restrict an operation to a revision onwards
func (b *BinaryChunks) Since(v dxfversion.Version) *BinaryChunks {
	b.MinVersion = v
	return b
}

// Since - restrict an operation to a revision onwards
func (m *MarkerRef) Since(v dxfversion.Version) *MarkerRef {
	m.MinVersion = v
	return m
}

// visit every operation of a script depth first
func walk(ops []Op, fn func(Op)) {
	for _, op := range ops {
		fn(op)
		if each, ok := op.(*ForEach); ok {
			walk(each.Body, fn)
		}
	}
}
