// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/dxfcodec/fault"
)

// Length - number of bytes in a digest
const Length = 32

// Digest - SHA3-256 of a canonical pair stream
//
// printed and marshalled as lower case hex in byte order
type Digest [Length]byte

// New - digest of a byte slice
func New(record []byte) Digest {
	return sha3.Sum256(record)
}

// String - hex for the fmt package (%s)
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// GoString - tagged hex for the fmt package (%#v)
func (d Digest) GoString() string {
	return "<SHA3-256:" + hex.EncodeToString(d[:]) + ">"
}

// Scan - hex to digest for the fmt package scan routines
func (d *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
	})
	if nil != err {
		return err
	}
	return d.UnmarshalText(token)
}

// MarshalText - digest to hex text
func (d Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(Length))
	hex.Encode(buffer, d[:])
	return buffer, nil
}

// UnmarshalText - hex text to digest
func (d *Digest) UnmarshalText(s []byte) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.ErrInvalidDigest
	}
	buffer := make([]byte, Length)
	if _, err := hex.Decode(buffer, s); nil != err {
		return fault.ErrInvalidDigest
	}
	copy(d[:], buffer)
	return nil
}

// FromBytes - validate and copy a binary digest
func FromBytes(d *Digest, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrInvalidDigest
	}
	copy(d[:], buffer)
	return nil
}
