// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package groupcode

import (
	"github.com/bitmark-inc/dxfcodec/fault"
)

// Kind - the primitive type a group code's value must be coerced to
type Kind int

// all value kinds
const (
	Invalid Kind = iota
	String
	Double
	Short
	Integer
	Long
	Bool
	Binary
)

var kindNames = [...]string{
	Invalid: "invalid",
	String:  "string",
	Double:  "double",
	Short:   "short",
	Integer: "integer",
	Long:    "long",
	Bool:    "boolean",
	Binary:  "binary",
}

// String - conversion for fmt package
func (k Kind) String() string {
	if k < Invalid || int(k) >= len(kindNames) {
		return kindNames[Invalid]
	}
	return kindNames[k]
}

// reserved codes intercepted by the engine before type dispatch
const (
	TagCode             = 0
	HandleCode          = 5
	CommentCode         = 999
	SubclassMarkerCode  = 100
	ExtensionGroupCode  = 102
	DimStyleHandleCode  = 105
	OwnerHandleCode     = 330
	XDataApplication    = 1001
	XDataFirstCode      = 1000
	XDataLastCode       = 1071
	ExtensionGroupStart = "{"
	ExtensionGroupEnd   = "}"
)

// KindOf - total mapping of every supported group code to its kind
//
// codes outside the table are a schema error, not a data error
func KindOf(code int) (Kind, error) {
	switch {
	case code >= 0 && code <= 9:
		return String, nil
	case code >= 10 && code <= 59:
		return Double, nil
	case code >= 60 && code <= 79:
		return Short, nil
	case code >= 90 && code <= 99:
		return Integer, nil
	case code == 100 || code == 101 || code == 102 || code == 105:
		return String, nil
	case code >= 110 && code <= 149:
		return Double, nil
	case code >= 160 && code <= 169:
		return Long, nil
	case code >= 170 && code <= 179:
		return Short, nil
	case code >= 210 && code <= 239:
		return Double, nil
	case code >= 270 && code <= 289:
		return Short, nil
	case code >= 290 && code <= 299:
		return Bool, nil
	case code >= 300 && code <= 309:
		return String, nil
	case code >= 310 && code <= 319:
		return Binary, nil
	case code >= 320 && code <= 369:
		return String, nil
	case code >= 370 && code <= 389:
		return Short, nil
	case code >= 390 && code <= 399:
		return String, nil
	case code >= 400 && code <= 409:
		return Short, nil
	case code >= 410 && code <= 419:
		return String, nil
	case code >= 420 && code <= 429:
		return Integer, nil
	case code >= 430 && code <= 439:
		return String, nil
	case code >= 440 && code <= 459:
		return Integer, nil
	case code >= 460 && code <= 469:
		return Double, nil
	case code >= 470 && code <= 481:
		return String, nil
	case code == CommentCode:
		return String, nil
	case code >= 1000 && code <= 1009:
		return String, nil
	case code >= 1010 && code <= 1059:
		return Double, nil
	case code >= 1060 && code <= 1070:
		return Short, nil
	case code == 1071:
		return Integer, nil
	}
	return Invalid, fault.ErrUnsupportedCode
}

// MustKindOf - KindOf for descriptor construction
//
// panics on an unsupported code since that is a programming error
func MustKindOf(code int) Kind {
	k, err := KindOf(code)
	if nil != err {
		fault.Panicf("group code: %d: %s", code, err)
	}
	return k
}

// IsHandleCode - true for codes whose string value is a hex handle
func IsHandleCode(code int) bool {
	switch {
	case code == HandleCode || code == DimStyleHandleCode:
		return true
	case code >= 320 && code <= 369:
		return true
	case code >= 390 && code <= 399:
		return true
	case code >= 480 && code <= 481:
		return true
	case code == 1005:
		return true
	}
	return false
}

// IsXData - true for codes that may only appear inside an XData block
func IsXData(code int) bool {
	return code >= XDataFirstCode && code <= XDataLastCode
}
