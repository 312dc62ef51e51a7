// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package object

import (
	"github.com/bitmark-inc/dxfcodec/schema"
)

func init() {
	for _, t := range []*schema.Type{
		DictionaryType,
		DictionaryWithDefaultType,
		IDBufferType,
		PlaceholderType,
		SpatialFilterType,
		ImageDefinitionType,
		ImageDefinitionReactorType,
		VisualStyleType,
	} {
		schema.Register(t)
	}
}
