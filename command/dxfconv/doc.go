// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// dxfconv - batch convert DXF drawings to another version
//
// every input listed in the Lua configuration file is read, linked
// and written to the output directory at the configured version. The
// written items can also be kept in an item database.
//
// with --watch the inputs are converted again whenever they change
// until the program receives SIGINT or SIGTERM.
package main
