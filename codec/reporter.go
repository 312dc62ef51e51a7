// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"fmt"

	"github.com/bitmark-inc/dxfcodec/counter"
)

// DiagnosticKind - class of a tolerated condition
type DiagnosticKind int

// tolerated conditions
const (
	Swallowed          DiagnosticKind = iota // unknown type, item dropped
	SharedCodeOverflow                       // more values than fields for a code, value dropped
	UnknownSubtype                           // redispatch found no subtype, generic item kept
	Redispatched                             // generic item replaced by its subtype
)

var diagnosticNames = map[DiagnosticKind]string{
	Swallowed:          "swallowed",
	SharedCodeOverflow: "shared-code-overflow",
	UnknownSubtype:     "unknown-subtype",
	Redispatched:       "redispatched",
}

// String - printable name
func (k DiagnosticKind) String() string {
	if s, ok := diagnosticNames[k]; ok {
		return s
	}
	return fmt.Sprintf("diagnostic(%d)", int(k))
}

// Diagnostic - a tolerated condition observed while reading
type Diagnostic struct {
	Kind     DiagnosticKind
	Tag      string
	Code     int
	Position int
}

// String - for logging
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s code: %d at pair: %d", d.Kind, d.Tag, d.Code, d.Position)
}

// Reporter - receives diagnostics in document order
type Reporter interface {
	Report(d Diagnostic)
}

// Statistics - totals kept by a Reader
type Statistics struct {
	Items        counter.Counter
	Swallowed    counter.Counter
	Overflows    counter.Counter
	Ignored      counter.Counter
	Redispatched counter.Counter
}

// Summary - plain copy of the counters
type Summary struct {
	Items        uint64 `json:"items"`
	Swallowed    uint64 `json:"swallowed"`
	Overflows    uint64 `json:"overflows"`
	Ignored      uint64 `json:"ignored"`
	Redispatched uint64 `json:"redispatched"`
}

// Summary - snapshot of the counters
func (s *Statistics) Summary() Summary {
	return Summary{
		Items:        s.Items.Uint64(),
		Swallowed:    s.Swallowed.Uint64(),
		Overflows:    s.Overflows.Uint64(),
		Ignored:      s.Ignored.Uint64(),
		Redispatched: s.Redispatched.Uint64(),
	}
}

// Collector - a Reporter that keeps every diagnostic
type Collector struct {
	Diagnostics []Diagnostic
}

// Report - append to the list
func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// Count - number of diagnostics of a kind
func (c *Collector) Count(kind DiagnosticKind) int {
	n := 0
	for _, d := range c.Diagnostics {
		if kind == d.Kind {
			n += 1
		}
	}
	return n
}
