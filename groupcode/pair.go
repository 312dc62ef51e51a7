// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package groupcode

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bitmark-inc/dxfcodec/fault"
)

// Pair - a single (code, value) record
//
// values travel as text exactly as the tokenizer produced them; the
// typed accessors coerce to the kind required by the code
type Pair struct {
	Code  int
	Value string
}

// Pairs - an ordered pair stream
type Pairs []Pair

// New - create a pair from raw text
func New(code int, value string) Pair {
	return Pair{Code: code, Value: value}
}

// NewString - create a string valued pair
func NewString(code int, s string) Pair {
	return Pair{Code: code, Value: s}
}

// NewDouble - create a real valued pair
func NewDouble(code int, f float64) Pair {
	return Pair{Code: code, Value: FormatDouble(f)}
}

// NewShort - create a 16 bit integer pair
func NewShort(code int, i int16) Pair {
	return Pair{Code: code, Value: strconv.FormatInt(int64(i), 10)}
}

// NewInteger - create a 32 bit integer pair
func NewInteger(code int, i int32) Pair {
	return Pair{Code: code, Value: strconv.FormatInt(int64(i), 10)}
}

// NewLong - create a 64 bit integer pair
func NewLong(code int, i int64) Pair {
	return Pair{Code: code, Value: strconv.FormatInt(i, 10)}
}

// NewBool - create a boolean pair, written as 0 or 1
func NewBool(code int, b bool) Pair {
	if b {
		return Pair{Code: code, Value: "1"}
	}
	return Pair{Code: code, Value: "0"}
}

// NewBinary - create a binary chunk pair, written as upper case hex
func NewBinary(code int, b []byte) Pair {
	return Pair{Code: code, Value: strings.ToUpper(hex.EncodeToString(b))}
}

// NewHandle - create a handle pair, written as upper case hex
func NewHandle(code int, h uint64) Pair {
	return Pair{Code: code, Value: strconv.FormatUint(h, 16)}.upper()
}

func (p Pair) upper() Pair {
	p.Value = strings.ToUpper(p.Value)
	return p
}

// String - conversion for fmt package
func (p Pair) String() string {
	return fmt.Sprintf("(%d, %q)", p.Code, p.Value)
}

// Kind - the kind required by the code
func (p Pair) Kind() Kind {
	k, _ := KindOf(p.Code)
	return k
}

// IsTag - true for the (0, type) pair that starts every item
func (p Pair) IsTag() bool {
	return TagCode == p.Code
}

// Text - the trimmed raw value
func (p Pair) Text() string {
	return strings.TrimSpace(p.Value)
}

// AsString - the value as a string, untrimmed
func (p Pair) AsString() string {
	return p.Value
}

// AsDouble - coerce to a real number
func (p Pair) AsDouble() (float64, error) {
	f, err := strconv.ParseFloat(p.Text(), 64)
	if nil != err {
		return 0, fault.ErrInvalidDouble
	}
	return f, nil
}

// AsShort - coerce to a 16 bit integer
func (p Pair) AsShort() (int16, error) {
	i, err := parseInteger(p.Text(), 16)
	return int16(i), err
}

// AsInteger - coerce to a 32 bit integer
func (p Pair) AsInteger() (int32, error) {
	i, err := parseInteger(p.Text(), 32)
	return int32(i), err
}

// AsLong - coerce to a 64 bit integer
func (p Pair) AsLong() (int64, error) {
	return parseInteger(p.Text(), 64)
}

// AsBool - coerce to a boolean; any non-zero short is true
func (p Pair) AsBool() (bool, error) {
	i, err := parseInteger(p.Text(), 16)
	if nil != err {
		return false, fault.ErrInvalidBoolean
	}
	return 0 != i, nil
}

// AsBinary - coerce a hex chunk to bytes
func (p Pair) AsBinary() ([]byte, error) {
	b, err := hex.DecodeString(p.Text())
	if nil != err {
		return nil, fault.ErrInvalidBinary
	}
	return b, nil
}

// AsHandle - coerce a hex handle
func (p Pair) AsHandle() (uint64, error) {
	s := p.Text()
	if "" == s {
		return 0, nil
	}
	h, err := strconv.ParseUint(s, 16, 64)
	if nil != err {
		return 0, fault.ErrInvalidHandle
	}
	return h, nil
}

// Validate - check the value can be coerced to the code's kind
func (p Pair) Validate() error {
	k, err := KindOf(p.Code)
	if nil != err {
		return err
	}
	switch k {
	case Double:
		_, err = p.AsDouble()
	case Short:
		_, err = p.AsShort()
	case Integer:
		_, err = p.AsInteger()
	case Long:
		_, err = p.AsLong()
	case Bool:
		_, err = p.AsBool()
	case Binary:
		_, err = p.AsBinary()
	case String:
		if IsHandleCode(p.Code) {
			_, err = p.AsHandle()
		}
	}
	return err
}

// some writers emit integral codes with a fractional part, e.g. "1.0"
func parseInteger(s string, bits int) (int64, error) {
	i, err := strconv.ParseInt(s, 10, bits)
	if nil == err {
		return i, nil
	}
	f, ferr := strconv.ParseFloat(s, 64)
	if nil != ferr || f != math.Trunc(f) {
		return 0, fault.ErrInvalidInteger
	}
	limit := math.Ldexp(1, bits-1)
	if f < -limit || f >= limit {
		return 0, fault.ErrInvalidInteger
	}
	return int64(f), nil
}

// FormatDouble - shortest text that parses back to the same value,
// always carrying a decimal point
func FormatDouble(f float64) string {
	abs := math.Abs(f)
	if 0 != abs && (abs < 1e-10 || abs >= 1e15) {
		return strings.ToUpper(strconv.FormatFloat(f, 'e', -1, 64))
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
