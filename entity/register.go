// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entity

import (
	"github.com/bitmark-inc/dxfcodec/schema"
)

func init() {
	dimensionKinds = map[int]*schema.Type{
		DimensionRotated:       RotatedDimensionType,
		DimensionAligned:       AlignedDimensionType,
		DimensionAngular:       AngularDimensionType,
		DimensionDiameter:      DiameterDimensionType,
		DimensionRadius:        RadialDimensionType,
		DimensionAngular3Point: Angular3PointDimensionType,
		DimensionOrdinate:      OrdinateDimensionType,
	}
	DimensionType.Redispatch = redispatchDimension
	DimensionType.Promote = promoteDimension

	for _, t := range []*schema.Type{
		LineType,
		PointType,
		CircleType,
		ArcType,
		TextType,
		FaceType,
		LightWeightPolylineType,
		InsertType,
		DimensionType,
		AlignedDimensionType,
		RotatedDimensionType,
		AngularDimensionType,
		DiameterDimensionType,
		RadialDimensionType,
		Angular3PointDimensionType,
		OrdinateDimensionType,
		ImageType,
		ProxyEntityType,
		SequenceEndType,
	} {
		schema.Register(t)
	}
}
