// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package entity - descriptors and Go types of the graphical entities
//
// every type is registered in schema.Default when the package is
// initialised; importing the package is enough to make its tags
// readable
package entity
