// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pairio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/bitmark-inc/dxfcodec/groupcode"
)

// EndOfFile - value of the tag pair that ends a drawing
const EndOfFile = "EOF"

// Emitter - writes pairs, codes right aligned in three columns
type Emitter struct {
	w     *bufio.Writer
	count int
}

// NewEmitter - emit pairs to a writer
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{
		w: bufio.NewWriter(w),
	}
}

// Emit - write pairs in order
func (e *Emitter) Emit(pairs ...groupcode.Pair) error {
	for _, p := range pairs {
		code := strconv.Itoa(p.Code)
		for i := len(code); i < 3; i += 1 {
			if err := e.w.WriteByte(' '); nil != err {
				return err
			}
		}
		if _, err := e.w.WriteString(code); nil != err {
			return err
		}
		if err := e.w.WriteByte('\n'); nil != err {
			return err
		}
		if _, err := e.w.WriteString(p.Value); nil != err {
			return err
		}
		if err := e.w.WriteByte('\n'); nil != err {
			return err
		}
		e.count += 1
	}
	return nil
}

// Count - number of pairs emitted
func (e *Emitter) Count() int {
	return e.count
}

// Flush - push buffered output to the writer
func (e *Emitter) Flush() error {
	return e.w.Flush()
}

// WriteAll - emit pairs and flush
func WriteAll(w io.Writer, pairs []groupcode.Pair) error {
	e := NewEmitter(w)
	if err := e.Emit(pairs...); nil != err {
		return err
	}
	return e.Flush()
}
