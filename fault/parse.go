// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// ParseError - a value that could not be coerced to the kind its
// group code requires
//
// Position is the index of the offending pair in the input stream,
// Type is the tag of the item being parsed (empty outside an item)
type ParseError struct {
	Code     int
	Value    string
	Kind     string
	Position int
	Type     string
	Err      error
}

// Error - the error interface
func (e *ParseError) Error() string {
	where := ""
	if "" != e.Type {
		where = " in " + e.Type
	}
	return fmt.Sprintf("pair %d%s: code %d value %q is not %s: %s", e.Position, where, e.Code, e.Value, e.Kind, e.Err)
}

// Unwrap - allow errors.Is on the underlying instance
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsErrParse - true if the error chain holds a ParseError
func IsErrParse(e error) bool {
	var p *ParseError
	return errors.As(e, &p)
}

// AsParseError - extract the ParseError from an error chain
func AsParseError(e error) (*ParseError, bool) {
	var p *ParseError
	if errors.As(e, &p) {
		return p, true
	}
	return nil, false
}
