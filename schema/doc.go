// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package schema - static descriptive data for every concrete item
// type and the registry that dispatches type tags to it
//
// A Type is one layer of an inheritance chain (e.g. AcDbEntity →
// AcDbCircle → AcDbArc).  Each layer lists its own fields; the chain
// is walked base first to construct defaults and to write, and
// derived first to route a group code while reading.
//
// Fields reach into concrete Go structs through accessor closures
// rather than reflection, e.g.
//
//   schema.Double("Radius", 40, 1.0, func(o schema.Object) *float64 {
//           return &o.(*Circle).Radius
//   })
//
// Types are registered from init() in the packages that define them
// and the registry is sealed before the first read or write.
package schema
