// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package object

import (
	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/item"
	"github.com/bitmark-inc/dxfcodec/schema"
)

// VisualStyle - shading settings of a viewport
type VisualStyle struct {
	item.Base
	Description         string
	Type                int16
	FaceColor           int16
	EdgeColor           int16
	FaceLightingModel   int16
	FaceLightingQuality int16
	InternalOnly        bool
}

// Descriptor - the type of the item
func (*VisualStyle) Descriptor() *schema.Type { return VisualStyleType }

func visualStyle(o schema.Object) *VisualStyle { return o.(*VisualStyle) }

// VisualStyleType - VISUALSTYLE
//
// the face and edge colours both use code 62, in that order
var VisualStyleType = &schema.Type{
	Name:           "VISUALSTYLE",
	Tags:           []string{"VISUALSTYLE"},
	SubclassMarker: "AcDbVisualStyle",
	MinVersion:     dxfversion.R2007,
	Fields: []*schema.Field{
		schema.String("Description", 2, "", func(o schema.Object) *string { return &visualStyle(o).Description }),
		schema.Short("Type", 70, 0, func(o schema.Object) *int16 { return &visualStyle(o).Type }),
		schema.Short("FaceColor", 62, 7, func(o schema.Object) *int16 { return &visualStyle(o).FaceColor }),
		schema.Short("EdgeColor", 62, 7, func(o schema.Object) *int16 { return &visualStyle(o).EdgeColor }),
		schema.Short("FaceLightingModel", 71, 1, func(o schema.Object) *int16 { return &visualStyle(o).FaceLightingModel }),
		schema.Short("FaceLightingQuality", 72, 1, func(o schema.Object) *int16 { return &visualStyle(o).FaceLightingQuality }),
		schema.Bool("InternalOnly", 290, false, func(o schema.Object) *bool { return &visualStyle(o).InternalOnly }),
	},
	Allocate: func() schema.Object { return &VisualStyle{} },
}

// NewVisualStyle - an initialised VISUALSTYLE
func NewVisualStyle(description string) *VisualStyle {
	v := VisualStyleType.New().(*VisualStyle)
	v.Description = description
	return v
}
