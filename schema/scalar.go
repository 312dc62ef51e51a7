// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"fmt"

	"github.com/bitmark-inc/dxfcodec/fault"
	"github.com/bitmark-inc/dxfcodec/groupcode"
)

// Value - the Go types a scalar field may hold
type Value interface {
	string | float64 | int16 | int32 | int64 | bool
}

// Converter - applied to a value after reading or before writing
type Converter[T Value] func(T) T

type scalar[T Value] struct {
	ref          func(Object) *T
	defaultValue T
	read         Converter[T]
	write        Converter[T]
}

// Scalar - a single valued field with optional converters
func Scalar[T Value](name string, code int, defaultValue T, ref func(Object) *T, read Converter[T], write Converter[T]) *Field {
	mustMatchKind[T](name, code)
	return newField(name, &scalar[T]{
		ref:          ref,
		defaultValue: defaultValue,
		read:         read,
		write:        write,
	}, code)
}

// String - a text field
func String(name string, code int, defaultValue string, ref func(Object) *string) *Field {
	return Scalar[string](name, code, defaultValue, ref, nil, nil)
}

// Double - a real field
func Double(name string, code int, defaultValue float64, ref func(Object) *float64) *Field {
	return Scalar[float64](name, code, defaultValue, ref, nil, nil)
}

// Short - a 16 bit integer field
func Short(name string, code int, defaultValue int16, ref func(Object) *int16) *Field {
	return Scalar[int16](name, code, defaultValue, ref, nil, nil)
}

// Integer - a 32 bit integer field
func Integer(name string, code int, defaultValue int32, ref func(Object) *int32) *Field {
	return Scalar[int32](name, code, defaultValue, ref, nil, nil)
}

// Long - a 64 bit integer field
func Long(name string, code int, defaultValue int64, ref func(Object) *int64) *Field {
	return Scalar[int64](name, code, defaultValue, ref, nil, nil)
}

// Bool - a boolean field; stored on either a boolean or a short code
func Bool(name string, code int, defaultValue bool, ref func(Object) *bool) *Field {
	return Scalar[bool](name, code, defaultValue, ref, nil, nil)
}

func (s *scalar[T]) Reset(o Object) {
	*s.ref(o) = s.defaultValue
}

func (s *scalar[T]) Assign(o Object, f *Field, component int, p groupcode.Pair) error {
	v, err := decode[T](p, f.Kind)
	if nil != err {
		return err
	}
	if nil != s.read {
		v = s.read(v)
	}
	*s.ref(o) = v
	return nil
}

func (s *scalar[T]) Pairs(o Object, f *Field) []groupcode.Pair {
	v := *s.ref(o)
	if nil != s.write {
		v = s.write(v)
	}
	return []groupcode.Pair{encode(f.Code, f.Kind, v)}
}

func (s *scalar[T]) IsDefault(o Object) bool {
	return *s.ref(o) == s.defaultValue
}

func (s *scalar[T]) Int(o Object) int64 {
	switch v := any(*s.ref(o)).(type) {
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	}
	return 0
}

func (s *scalar[T]) SetInt(o Object, i int64) {
	var v any
	switch any(s.defaultValue).(type) {
	case int16:
		v = int16(i)
	case int32:
		v = int32(i)
	case int64:
		v = i
	default:
		return
	}
	*s.ref(o) = v.(T)
}

// true for scalar fields with integer storage
func isInteger[T Value]() bool {
	var zero T
	switch any(zero).(type) {
	case int16, int32, int64:
		return true
	}
	return false
}

// descriptor consistency: the Go type must be able to hold the code's kind
func mustMatchKind[T Value](name string, code int) {
	kind := groupcode.MustKindOf(code)
	var zero T
	ok := false
	switch any(zero).(type) {
	case string:
		ok = groupcode.String == kind
	case float64:
		ok = groupcode.Double == kind
	case int16:
		ok = groupcode.Short == kind
	case int32:
		ok = groupcode.Integer == kind || groupcode.Short == kind
	case int64:
		ok = groupcode.Long == kind || groupcode.Integer == kind
	case bool:
		ok = groupcode.Bool == kind || groupcode.Short == kind
	}
	if !ok {
		fault.Panicf("field: %s: code: %d of kind: %s cannot hold %T", name, code, kind, zero)
	}
}

func decode[T Value](p groupcode.Pair, kind groupcode.Kind) (T, error) {
	var zero T
	var v any
	var err error
	switch any(zero).(type) {
	case string:
		v = p.AsString()
	case float64:
		v, err = p.AsDouble()
	case int16:
		v, err = p.AsShort()
	case int32:
		if groupcode.Short == kind {
			var s int16
			s, err = p.AsShort()
			v = int32(s)
		} else {
			v, err = p.AsInteger()
		}
	case int64:
		if groupcode.Integer == kind {
			var i int32
			i, err = p.AsInteger()
			v = int64(i)
		} else {
			v, err = p.AsLong()
		}
	case bool:
		v, err = p.AsBool()
	default:
		return zero, fault.ErrInvalidPairValue
	}
	if nil != err {
		return zero, err
	}
	return v.(T), nil
}

func encode[T Value](code int, kind groupcode.Kind, value T) groupcode.Pair {
	switch v := any(value).(type) {
	case string:
		return groupcode.NewString(code, v)
	case float64:
		return groupcode.NewDouble(code, v)
	case int16:
		return groupcode.NewShort(code, v)
	case int32:
		if groupcode.Short == kind {
			return groupcode.NewShort(code, int16(v))
		}
		return groupcode.NewInteger(code, v)
	case int64:
		if groupcode.Integer == kind {
			return groupcode.NewInteger(code, int32(v))
		}
		return groupcode.NewLong(code, v)
	case bool:
		if groupcode.Short == kind {
			if v {
				return groupcode.NewShort(code, 1)
			}
			return groupcode.NewShort(code, 0)
		}
		return groupcode.NewBool(code, v)
	}
	panic(fmt.Sprintf("schema: cannot encode %T", value))
}
