// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pairio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/dxfcodec/fault"
	"github.com/bitmark-inc/dxfcodec/groupcode"
)

// longest accepted line, binary chunks are far shorter
const maximumLineLength = 1 << 20

// Scanner - reads pairs one at a time
type Scanner struct {
	scanner *bufio.Scanner
	line    int
	pair    groupcode.Pair
	err     error
}

// LineError - a code line that is not an integer, or a code line
// with no value line after it
type LineError struct {
	Line int
	Text string
	Err  error
}

// Error - the error interface
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %q: %s", e.Line, e.Text, e.Err)
}

// Unwrap - allow errors.Is on the underlying instance
func (e *LineError) Unwrap() error {
	return e.Err
}

// NewScanner - scan pairs from a reader
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maximumLineLength)
	return &Scanner{
		scanner: s,
	}
}

// Scan - advance to the next pair; false at end of input or on error
func (s *Scanner) Scan() bool {
	if nil != s.err {
		return false
	}

	codeLine, ok := s.next()
	if !ok {
		return false
	}
	text := strings.TrimSpace(codeLine)
	code, err := strconv.Atoi(text)
	if nil != err {
		s.err = &LineError{Line: s.line, Text: text, Err: fault.ErrUnsupportedCode}
		return false
	}

	value, ok := s.next()
	if !ok {
		if nil == s.err {
			s.err = &LineError{Line: s.line, Text: text, Err: fault.ErrMissingValueLine}
		}
		return false
	}

	s.pair = groupcode.New(code, value)
	return true
}

// Pair - the pair read by the last successful Scan
func (s *Scanner) Pair() groupcode.Pair {
	return s.pair
}

// Line - number of lines consumed so far
func (s *Scanner) Line() int {
	return s.line
}

// Err - the first error encountered, nil at a clean end of input
func (s *Scanner) Err() error {
	return s.err
}

// a line without its terminator, tolerating CRLF
func (s *Scanner) next() (string, bool) {
	if !s.scanner.Scan() {
		s.err = s.scanner.Err()
		return "", false
	}
	s.line += 1
	return strings.TrimSuffix(s.scanner.Text(), "\r"), true
}

// ReadAll - every pair of a reader, stopping after an EOF tag pair
func ReadAll(r io.Reader) ([]groupcode.Pair, error) {
	s := NewScanner(r)
	pairs := make([]groupcode.Pair, 0, 1024)
	for s.Scan() {
		p := s.Pair()
		pairs = append(pairs, p)
		if p.IsTag() && EndOfFile == p.Text() {
			break
		}
	}
	return pairs, s.Err()
}
