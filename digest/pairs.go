// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"strconv"

	"github.com/bitmark-inc/dxfcodec/groupcode"
)

// Pairs - digest of a pair stream
//
// each pair contributes its decimal code, a newline, its trimmed
// value and a newline, so the text layout of the source file does
// not matter
func Pairs(pairs []groupcode.Pair) Digest {
	buffer := make([]byte, 0, 16*len(pairs))
	for _, p := range pairs {
		buffer = strconv.AppendInt(buffer, int64(p.Code), 10)
		buffer = append(buffer, '\n')
		buffer = append(buffer, p.Text()...)
		buffer = append(buffer, '\n')
	}
	return New(buffer)
}
