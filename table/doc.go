// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package table - symbol table headers and their records
//
// a TABLE item introduces the records of one kind, e.g. every LAYER,
// and the document closes the group with ENDTAB
package table
