// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pairio - the ASCII form of a drawing: a group code line
// followed by a value line, repeated until end of file
package pairio
