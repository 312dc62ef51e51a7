// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package table

import (
	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/handle"
	"github.com/bitmark-inc/dxfcodec/schema"
)

// drawing units
const (
	UnitsUnitless   = 0
	UnitsInches     = 1
	UnitsFeet       = 2
	UnitsMillimeter = 4
	UnitsMeters     = 6
)

// BlockRecord - the table entry behind a block definition
type BlockRecord struct {
	Record
	Layout         handle.Pointer
	InsertionUnits int16
	Explodable     bool
	Scalable       bool
	Preview        [][]byte
}

// Descriptor - the type of the item
func (*BlockRecord) Descriptor() *schema.Type { return BlockRecordType }

func blockRecord(o schema.Object) *BlockRecord { return o.(*BlockRecord) }

// BlockRecordType - BLOCK_RECORD
var BlockRecordType = &schema.Type{
	Name:           "BLOCK_RECORD",
	Tags:           []string{"BLOCK_RECORD"},
	SubclassMarker: "AcDbBlockTableRecord",
	Base:           RecordType,
	MinVersion:     dxfversion.R13,
	Fields: []*schema.Field{
		schema.String("Name", 2, "", func(o schema.Object) *string { return &record(o).Name }),
		schema.Pointer("Layout", 340, func(o schema.Object) *handle.Pointer { return &blockRecord(o).Layout }).Since(dxfversion.R2000),
		schema.Short("InsertionUnits", 70, UnitsUnitless, func(o schema.Object) *int16 { return &blockRecord(o).InsertionUnits }).Since(dxfversion.R2007),
		schema.Bool("Explodable", 280, true, func(o schema.Object) *bool { return &blockRecord(o).Explodable }).Since(dxfversion.R2007),
		schema.Bool("Scalable", 281, false, func(o schema.Object) *bool { return &blockRecord(o).Scalable }).Since(dxfversion.R2007),
		schema.BinaryList("Preview", 310, func(o schema.Object) *[][]byte { return &blockRecord(o).Preview }).Since(dxfversion.R2000),
	},
	Allocate: func() schema.Object { return &BlockRecord{} },
}

// NewBlockRecord - an initialised BLOCK_RECORD
func NewBlockRecord(name string) *BlockRecord {
	b := BlockRecordType.New().(*BlockRecord)
	b.Name = name
	return b
}

// IsModelSpace - the record of the model space block
func (b *BlockRecord) IsModelSpace() bool {
	return b.Name == "*Model_Space" || b.Name == "*MODEL_SPACE"
}
