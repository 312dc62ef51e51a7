// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package itemstore - persistent store of written drawing items
//
// a single leveldb database is divided into pools by a one byte key
// prefix:
//
//   Drawings  W <name>                 → count(8) ++ root(32) ++ version
//   Items     I <name> 0x00 handle(8)  → item pairs as text
//   Digests   D <name> 0x00 handle(8)  → digest(32)
//
// reads are served through an expiring cache that is updated on
// every put and delete
package itemstore
