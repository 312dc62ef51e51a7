// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"github.com/bitmark-inc/dxfcodec/fault"
	"github.com/bitmark-inc/dxfcodec/groupcode"
)

type list[T Value] struct {
	ref func(Object) *[]T
}

// List - every occurrence of the code appends one element
func List[T Value](name string, code int, ref func(Object) *[]T) *Field {
	mustMatchKind[T](name, code)
	f := newField(name, &list[T]{ref: ref}, code)
	f.AllowMultiples = true
	return f
}

// StringList - repeated text values
func StringList(name string, code int, ref func(Object) *[]string) *Field {
	return List[string](name, code, ref)
}

// DoubleList - repeated real values
func DoubleList(name string, code int, ref func(Object) *[]float64) *Field {
	return List[float64](name, code, ref)
}

// IntegerList - repeated 32 bit values
func IntegerList(name string, code int, ref func(Object) *[]int32) *Field {
	return List[int32](name, code, ref)
}

func (l *list[T]) Reset(o Object) {
	*l.ref(o) = make([]T, 0)
}

func (l *list[T]) Assign(o Object, f *Field, component int, p groupcode.Pair) error {
	v, err := decode[T](p, f.Kind)
	if nil != err {
		return err
	}
	r := l.ref(o)
	*r = append(*r, v)
	return nil
}

func (l *list[T]) Pairs(o Object, f *Field) []groupcode.Pair {
	values := *l.ref(o)
	pairs := make([]groupcode.Pair, len(values))
	for i, v := range values {
		pairs[i] = encode(f.Code, f.Kind, v)
	}
	return pairs
}

func (l *list[T]) IsDefault(o Object) bool {
	return 0 == len(*l.ref(o))
}

func (l *list[T]) Len(o Object) int {
	return len(*l.ref(o))
}

func (l *list[T]) ElementPairs(o Object, f *Field, i int) []groupcode.Pair {
	values := *l.ref(o)
	if i < 0 || i >= len(values) {
		return nil
	}
	return []groupcode.Pair{encode(f.Code, f.Kind, values[i])}
}

type binary struct {
	ref func(Object) *[]byte
}

// Binary - a single binary value; a repeated code replaces it
func Binary(name string, code int, ref func(Object) *[]byte) *Field {
	mustBeBinary(name, code)
	return newField(name, &binary{ref: ref}, code)
}

func (b *binary) Reset(o Object) {
	*b.ref(o) = nil
}

func (b *binary) Assign(o Object, f *Field, component int, p groupcode.Pair) error {
	data, err := p.AsBinary()
	if nil != err {
		return err
	}
	*b.ref(o) = data
	return nil
}

func (b *binary) Pairs(o Object, f *Field) []groupcode.Pair {
	return []groupcode.Pair{groupcode.NewBinary(f.Code, *b.ref(o))}
}

func (b *binary) IsDefault(o Object) bool {
	return 0 == len(*b.ref(o))
}

func (b *binary) Bytes(o Object) []byte {
	return *b.ref(o)
}

func (b *binary) SetBytes(o Object, data []byte) {
	*b.ref(o) = data
}

type binaryList struct {
	ref func(Object) *[][]byte
}

// BinaryList - one element per binary pair, kept as read
func BinaryList(name string, code int, ref func(Object) *[][]byte) *Field {
	mustBeBinary(name, code)
	f := newField(name, &binaryList{ref: ref}, code)
	f.AllowMultiples = true
	return f
}

func (b *binaryList) Reset(o Object) {
	*b.ref(o) = make([][]byte, 0)
}

func (b *binaryList) Assign(o Object, f *Field, component int, p groupcode.Pair) error {
	data, err := p.AsBinary()
	if nil != err {
		return err
	}
	r := b.ref(o)
	*r = append(*r, data)
	return nil
}

func (b *binaryList) Pairs(o Object, f *Field) []groupcode.Pair {
	chunks := *b.ref(o)
	pairs := make([]groupcode.Pair, len(chunks))
	for i, data := range chunks {
		pairs[i] = groupcode.NewBinary(f.Code, data)
	}
	return pairs
}

func (b *binaryList) IsDefault(o Object) bool {
	return 0 == len(*b.ref(o))
}

func (b *binaryList) Len(o Object) int {
	return len(*b.ref(o))
}

func (b *binaryList) ElementPairs(o Object, f *Field, i int) []groupcode.Pair {
	chunks := *b.ref(o)
	if i < 0 || i >= len(chunks) {
		return nil
	}
	return []groupcode.Pair{groupcode.NewBinary(f.Code, chunks[i])}
}

func mustBeBinary(name string, code int) {
	if groupcode.Binary != groupcode.MustKindOf(code) {
		fault.Panicf("field: %s: code: %d is not binary", name, code)
	}
}
