// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/fault"
	"github.com/bitmark-inc/dxfcodec/groupcode"
	"github.com/bitmark-inc/dxfcodec/schema"
)

// evaluation of one layer's write-order script
type script struct {
	writer  *Writer
	t       *schema.Type
	o       schema.Object
	out     []groupcode.Pair
	indices []int // loop indices, innermost last
}

func (s *script) run(ops []schema.Op) {
	v := s.writer.version
	for _, op := range ops {
		switch op := op.(type) {

		case *schema.Literal:
			if !op.Allows(s.o, v) {
				continue
			}
			if nil != op.Compute {
				s.out = append(s.out, op.Compute(s.o))
			} else {
				s.out = append(s.out, op.Value)
			}

		case *schema.FieldRef:
			s.out = s.writer.field(s.out, s.o, s.mustField(op.Name))

		case *schema.XDataOp:
			s.out = append(s.out, s.o.ItemBase().XData.Pairs()...)

		case *schema.ForEach:
			f := s.mustField(op.Field)
			if !op.Allows(s.o, v) || !v.InRange(f.MinVersion, f.MaxVersion) {
				continue
			}
			n := f.Access.(schema.ListAccessor).Len(s.o)
			for i := 0; i < n; i += 1 {
				if nil != op.Element && !op.Element(s.o, i) {
					continue
				}
				s.indices = append(s.indices, i)
				s.run(op.Body)
				s.indices = s.indices[:len(s.indices)-1]
			}

		case *schema.ElementRef:
			f := s.mustField(op.Field)
			if 0 == len(s.indices) || !op.Allows(s.o, v) || !v.InRange(f.MinVersion, f.MaxVersion) {
				continue
			}
			i := s.indices[len(s.indices)-1]
			for _, p := range f.Access.(schema.ListAccessor).ElementPairs(s.o, f, i) {
				if 0 == op.Code || op.Code == p.Code {
					s.out = append(s.out, p)
				}
			}

		case *schema.BinaryChunks:
			f := s.mustField(op.Field)
			if !op.Allows(s.o, v) || !v.InRange(f.MinVersion, f.MaxVersion) {
				continue
			}
			data := f.Access.(schema.BinaryAccessor).Bytes(s.o)
			s.out = append(s.out, op.Chunking.Split(data)...)

		case *schema.MarkerRef:
			if op.Allows(s.o, v) && v >= dxfversion.R13 {
				s.out = append(s.out, groupcode.NewString(groupcode.SubclassMarkerCode, op.Marker))
			}

		default:
			fault.Panicf("%s: unknown script operation: %T", s.t.Name, op)
		}
	}
}

// names were checked when the type was prepared
func (s *script) mustField(name string) *schema.Field {
	f, err := s.t.Field(name)
	fault.PanicIfError(s.t.Name+": script field: "+name, err)
	return f
}
