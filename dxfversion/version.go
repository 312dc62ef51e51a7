// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dxfversion - the linearly ordered set of drawing format
// revisions that field and type descriptors are gated on
package dxfversion

import (
	"strings"

	"github.com/bitmark-inc/dxfcodec/fault"
)

// Version - a drawing format revision
//
// the zero value is Unspecified and is used by descriptors to denote
// an absent bound
type Version int

// all supported revisions, oldest first
const (
	Unspecified Version = iota
	R10
	R11
	R12
	R13
	R14
	R2000
	R2004
	R2007
	R2010
	R2013
	R2018
	maximum
)

// bounds of the enumeration
const (
	Minimum = R10
	Maximum = maximum - 1
)

var names = [...]string{
	Unspecified: "unspecified",
	R10:         "R10",
	R11:         "R11",
	R12:         "R12",
	R13:         "R13",
	R14:         "R14",
	R2000:       "R2000",
	R2004:       "R2004",
	R2007:       "R2007",
	R2010:       "R2010",
	R2013:       "R2013",
	R2018:       "R2018",
}

// header variable $ACADVER values
var acadVersions = [...]string{
	R10:   "AC1006",
	R11:   "AC1009",
	R12:   "AC1009",
	R13:   "AC1012",
	R14:   "AC1014",
	R2000: "AC1015",
	R2004: "AC1018",
	R2007: "AC1021",
	R2010: "AC1024",
	R2013: "AC1027",
	R2018: "AC1032",
}

// IsValid - true for a concrete revision
func (v Version) IsValid() bool {
	return v >= Minimum && v <= Maximum
}

// String - conversion for fmt package
func (v Version) String() string {
	if v < Unspecified || v > Maximum {
		return "*unknown*"
	}
	return names[v]
}

// AcadVersion - the $ACADVER header value for a revision
func (v Version) AcadVersion() string {
	if !v.IsValid() {
		return ""
	}
	return acadVersions[v]
}

// InRange - check a revision against optional bounds
//
// an Unspecified bound is unconstrained
func (v Version) InRange(min Version, max Version) bool {
	if Unspecified != min && v < min {
		return false
	}
	if Unspecified != max && v > max {
		return false
	}
	return true
}

// Parse - convert a revision name ("R2000") or an $ACADVER value
// ("AC1015") to a Version
//
// AC1009 is shared by R11 and R12 and maps to R12
func Parse(s string) (Version, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for v := Minimum; v <= Maximum; v += 1 {
		if names[v] == s {
			return v, nil
		}
	}
	for v := Maximum; v >= Minimum; v -= 1 {
		if acadVersions[v] == s {
			return v, nil
		}
	}
	return Unspecified, fault.ErrInvalidVersion
}

// UnmarshalText - allow use in configuration and JSON
func (v *Version) UnmarshalText(s []byte) error {
	version, err := Parse(string(s))
	if nil != err {
		return err
	}
	*v = version
	return nil
}

// MarshalText - convert to the revision name
func (v Version) MarshalText() ([]byte, error) {
	if !v.IsValid() {
		return nil, fault.ErrInvalidVersion
	}
	return []byte(v.String()), nil
}
