// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package object - descriptors and Go types of the non-graphical
// container objects of the OBJECTS section
package object
