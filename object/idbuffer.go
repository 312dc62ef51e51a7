// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package object

import (
	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/handle"
	"github.com/bitmark-inc/dxfcodec/item"
	"github.com/bitmark-inc/dxfcodec/schema"
)

// IDBuffer - a list of entity references that must never be emptied
type IDBuffer struct {
	item.Base
	Entities handle.Collection
}

// Descriptor - the type of the item
func (*IDBuffer) Descriptor() *schema.Type { return IDBufferType }

// IDBufferType - IDBUFFER
//
// entity references share code 330 with the owner; the owner is the
// one before the subclass marker, so no revision without markers
// can carry it
var IDBufferType = &schema.Type{
	Name:           "IDBUFFER",
	Tags:           []string{"IDBUFFER"},
	SubclassMarker: "AcDbIdBuffer",
	MinVersion:     dxfversion.R13,
	Fields: []*schema.Field{
		schema.Pointers("Entities", 330, 1, func(o schema.Object) *handle.Collection { return &o.(*IDBuffer).Entities }),
	},
	Allocate: func() schema.Object { return &IDBuffer{} },
}

// NewIDBuffer - an initialised IDBUFFER holding the given entities
func NewIDBuffer(entities ...handle.Target) *IDBuffer {
	b := IDBufferType.New().(*IDBuffer)
	for _, e := range entities {
		b.Entities.Append(e)
	}
	return b
}

// Placeholder - an object with no data, referenced by plot style dictionaries
type Placeholder struct {
	item.Base
}

// Descriptor - the type of the item
func (*Placeholder) Descriptor() *schema.Type { return PlaceholderType }

// PlaceholderType - ACDBPLACEHOLDER
var PlaceholderType = &schema.Type{
	Name:     "ACDBPLACEHOLDER",
	Tags:     []string{"ACDBPLACEHOLDER"},
	Allocate: func() schema.Object { return &Placeholder{} },
}

// NewPlaceholder - an initialised ACDBPLACEHOLDER
func NewPlaceholder() *Placeholder {
	return PlaceholderType.New().(*Placeholder)
}
