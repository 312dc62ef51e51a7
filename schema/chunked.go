// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"github.com/bitmark-inc/dxfcodec/fault"
	"github.com/bitmark-inc/dxfcodec/groupcode"
)

type chunked struct {
	ref func(Object) *[]byte
}

// Chunked - a binary value introduced by a byte count pair and
// carried by any number of chunk pairs
//
// while reading, the count pair opens a sink that takes chunk pairs
// until the declared length is reached
func Chunked(name string, lengthCode int, chunkCode int, ref func(Object) *[]byte) *Field {
	switch groupcode.MustKindOf(lengthCode) {
	case groupcode.Short, groupcode.Integer, groupcode.Long:
	default:
		fault.Panicf("field: %s: length code: %d is not integer", name, lengthCode)
	}
	mustBeBinary(name, chunkCode)
	f := newField(name, &chunked{ref: ref}, lengthCode, chunkCode)
	f.Chunk = &Chunking{
		LengthCode: lengthCode,
		ChunkCode:  chunkCode,
		ChunkSize:  DefaultChunkSize,
	}
	return f
}

func (c *chunked) Reset(o Object) {
	*c.ref(o) = make([]byte, 0)
}

// Assign - the count pair restarts the value, chunk pairs extend it
func (c *chunked) Assign(o Object, f *Field, component int, p groupcode.Pair) error {
	r := c.ref(o)
	if 0 == component {
		if _, err := f.Chunk.Declared(p); nil != err {
			return err
		}
		*r = make([]byte, 0)
		return nil
	}
	data, err := p.AsBinary()
	if nil != err {
		return err
	}
	*r = append(*r, data...)
	return nil
}

func (c *chunked) Pairs(o Object, f *Field) []groupcode.Pair {
	return f.Chunk.Split(*c.ref(o))
}

func (c *chunked) IsDefault(o Object) bool {
	return 0 == len(*c.ref(o))
}

func (c *chunked) Bytes(o Object) []byte {
	return *c.ref(o)
}

func (c *chunked) SetBytes(o Object, data []byte) {
	*c.ref(o) = data
}

// Declared - the byte count carried by a length pair
func (c *Chunking) Declared(p groupcode.Pair) (int, error) {
	switch groupcode.MustKindOf(c.LengthCode) {
	case groupcode.Short:
		n, err := p.AsShort()
		return int(n), err
	case groupcode.Integer:
		n, err := p.AsInteger()
		return int(n), err
	default:
		n, err := p.AsLong()
		return int(n), err
	}
}

// Split - the length pair followed by one pair per chunk
func (c *Chunking) Split(data []byte) []groupcode.Pair {
	size := c.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}
	pairs := make([]groupcode.Pair, 0, 1+(len(data)+size-1)/size)

	switch groupcode.MustKindOf(c.LengthCode) {
	case groupcode.Short:
		pairs = append(pairs, groupcode.NewShort(c.LengthCode, int16(len(data))))
	case groupcode.Integer:
		pairs = append(pairs, groupcode.NewInteger(c.LengthCode, int32(len(data))))
	default:
		pairs = append(pairs, groupcode.NewLong(c.LengthCode, int64(len(data))))
	}

	for start := 0; start < len(data); start += size {
		end := start + size
		if end > len(data) {
			end = len(data)
		}
		pairs = append(pairs, groupcode.NewBinary(c.ChunkCode, data[start:end]))
	}
	return pairs
}
