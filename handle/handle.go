// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handle

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/dxfcodec/fault"
)

// Handle - unsigned identity of an item; zero is unset
type Handle uint64

// Null - the unset handle
const Null = Handle(0)

// Parse - convert hex text to a handle
func Parse(s string) (Handle, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return Null, nil
	}
	h, err := strconv.ParseUint(s, 16, 64)
	if nil != err {
		return Null, fault.ErrInvalidHandle
	}
	return Handle(h), nil
}

// IsNull - true for the unset handle
func (h Handle) IsNull() bool {
	return Null == h
}

// String - upper case hex as written to a drawing
func (h Handle) String() string {
	return strings.ToUpper(strconv.FormatUint(uint64(h), 16))
}

// MarshalText - hex text for JSON
func (h Handle) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText - hex text to handle
func (h *Handle) UnmarshalText(s []byte) error {
	v, err := Parse(string(s))
	if nil != err {
		return err
	}
	*h = v
	return nil
}

// Target - anything a pointer can refer to
type Target interface {
	Handle() Handle
}

// Linker - an item whose pointers take part in resolution
//
// VisitPointers must present every pointer the item holds, including
// its owner pointer; Target is the value pointers resolve to, which
// lets an adapter stand in for the item itself
type Linker interface {
	Target
	Target() Target
	VisitPointers(func(*Pointer))
}
