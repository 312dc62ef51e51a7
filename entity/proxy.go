// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entity

import (
	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/groupcode"
	"github.com/bitmark-inc/dxfcodec/handle"
	"github.com/bitmark-inc/dxfcodec/schema"
)

// ProxyClassID - the fixed class id written for proxy entities
const ProxyClassID = 498

// ProxyEntity - an entity of an application that is not present,
// carried as opaque graphics and data
type ProxyEntity struct {
	Entity
	ClassID             int32
	GraphicsData        []byte
	EntityData          []byte
	ObjectIDs           handle.Collection
	DrawingFormat       int32
	OriginalFormatIsDXF bool
}

// Descriptor - the type of the item
func (*ProxyEntity) Descriptor() *schema.Type { return ProxyEntityType }

func proxy(o schema.Object) *ProxyEntity { return o.(*ProxyEntity) }

// ProxyEntityType - ACAD_PROXY_ENTITY
//
// both binary blocks use chunk code 310; each count pair opens its
// own block so the chunks never need the shared code counter
var ProxyEntityType = &schema.Type{
	Name:           "ACAD_PROXY_ENTITY",
	Tags:           []string{"ACAD_PROXY_ENTITY"},
	SubclassMarker: "AcDbProxyEntity",
	Base:           EntityType,
	MinVersion:     dxfversion.R13,
	Fields: []*schema.Field{
		schema.Integer("ClassID", 91, 0, func(o schema.Object) *int32 { return &proxy(o).ClassID }),
		schema.Chunked("GraphicsData", 92, 310, func(o schema.Object) *[]byte { return &proxy(o).GraphicsData }),
		schema.Chunked("EntityData", 93, 310, func(o schema.Object) *[]byte { return &proxy(o).EntityData }),
		schema.Pointers("ObjectIDs", 330, 0, func(o schema.Object) *handle.Collection { return &proxy(o).ObjectIDs }),
		schema.Integer("DrawingFormat", 95, 0, func(o schema.Object) *int32 { return &proxy(o).DrawingFormat }).Since(dxfversion.R2000),
		schema.Bool("OriginalFormatIsDXF", 70, false, func(o schema.Object) *bool { return &proxy(o).OriginalFormatIsDXF }).Since(dxfversion.R2000),
	},
	WriteOrder: []schema.Op{
		schema.EmitPair(groupcode.NewInteger(90, ProxyClassID)),
		schema.EmitField("ClassID"),
		schema.EmitChunks("GraphicsData", 92, 310),
		schema.EmitChunks("EntityData", 93, 310),
		schema.EmitField("ObjectIDs"),
		schema.EmitPair(groupcode.NewInteger(94, 0)),
		schema.EmitField("DrawingFormat"),
		schema.EmitField("OriginalFormatIsDXF"),
		schema.EmitXData(),
	},
	Allocate: func() schema.Object { return &ProxyEntity{} },
}

// NewProxyEntity - an initialised ACAD_PROXY_ENTITY
func NewProxyEntity(classID int32) *ProxyEntity {
	p := ProxyEntityType.New().(*ProxyEntity)
	p.ClassID = classID
	return p
}
