// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package codec - the schema driven read and write engines
//
// a Reader turns a pair stream into items using the descriptors of
// a schema.Registry; a Writer turns an item back into pairs for one
// drawing version. Pointers are left unresolved by the Reader, the
// caller runs a handle.Table over the finished item list.
//
// tolerated conditions (unknown types, unknown codes, shared code
// overflow) are reported as Diagnostics and never stop a read; a
// value that cannot be coerced to its code's kind aborts the read
// with a *fault.ParseError
package codec
