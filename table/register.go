// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package table

import (
	"github.com/bitmark-inc/dxfcodec/schema"
)

func init() {
	schema.Register(HeaderType)
	schema.Register(LayerType)
	schema.Register(BlockRecordType)
}
