// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package document - a whole drawing: sections of items framed by
// SECTION/ENDSEC pairs, read into a Drawing, linked by handle and
// written back for any supported version
package document
