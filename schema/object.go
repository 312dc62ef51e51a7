// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"github.com/bitmark-inc/dxfcodec/item"
)

// Object - an item whose layout is described by a Type
type Object interface {
	item.Object
	Descriptor() *Type
}
