// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/dxfcodec/bitflag"
	"github.com/bitmark-inc/dxfcodec/codec"
	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/entity"
	"github.com/bitmark-inc/dxfcodec/geometry"
	"github.com/bitmark-inc/dxfcodec/groupcode"
	"github.com/bitmark-inc/dxfcodec/schema"
)

func TestRegisteredTags(t *testing.T) {
	for _, tag := range []string{"LINE", "POINT", "CIRCLE", "ARC", "TEXT", "3DFACE", "LWPOLYLINE", "INSERT", "DIMENSION", "IMAGE", "ACAD_PROXY_ENTITY", "SEQEND"} {
		d, ok := schema.Default.ForTag(tag)
		if assert.True(t, ok, "missing tag: %s", tag) {
			assert.True(t, d.IsConcrete(), "not concrete: %s", tag)
			assert.True(t, d.IsA(entity.EntityType), "not an entity: %s", tag)

			o := d.New()
			o.ItemBase().SetHandle(0x10)
			assert.Equal(t, "10", o.Handle().String(), "item base: %s", tag)
		}
	}
}

func TestDefaults(t *testing.T) {
	l := entity.NewLine(geometry.Origin, geometry.NewPoint(3, 4, 0))
	assert.Equal(t, "0", l.Layer, "layer")
	assert.Equal(t, "BYLAYER", l.LineType, "line type")
	assert.Equal(t, int16(entity.ColorByLayer), l.Color, "color")
	assert.Equal(t, 1.0, l.LineTypeScale, "line type scale")
	assert.Equal(t, geometry.ZAxis, l.Extrusion, "extrusion")
	assert.Equal(t, 5.0, l.Length(), "length")

	c := entity.NewCircle(geometry.NewPoint(1, 1, 0), 2)
	assert.Equal(t, 2.0, c.Radius, "radius")

	tx := entity.NewText("a", geometry.Origin, 0.5)
	assert.Equal(t, "STANDARD", tx.Style, "style")
	assert.Equal(t, 1.0, tx.RelativeXScale, "relative scale")
}

func TestArcCarriesCircleLayer(t *testing.T) {
	a := entity.NewArc(geometry.NewPoint(1, 2, 0), 3, 0, 90)

	out, ok := codec.NewWriter(dxfversion.R2018, false, nil).Write(a)
	require.True(t, ok, "not written")

	markers := make([]string, 0, 3)
	for _, p := range out {
		if groupcode.SubclassMarkerCode == p.Code {
			markers = append(markers, p.Value)
		}
	}
	assert.Equal(t, []string{"AcDbEntity", "AcDbCircle", "AcDbArc"}, markers, "wrong layers")

	items, err := codec.NewReader(nil, nil, nil).ReadAll(out)
	require.Nil(t, err, "read error")
	b := items[0].(*entity.Arc)
	assert.Equal(t, 3.0, b.Radius, "radius")
	assert.Equal(t, 90.0, b.EndAngle, "end angle")
}

func TestTextFlagsAreIndependent(t *testing.T) {
	tx := entity.NewText("a", geometry.Origin, 1)

	tx.SetMirroredX(true)
	assert.True(t, tx.IsMirroredX(), "x")
	assert.False(t, tx.IsMirroredY(), "y set by x")

	tx.SetMirroredY(true)
	tx.SetMirroredX(false)
	assert.False(t, tx.IsMirroredX(), "x")
	assert.True(t, tx.IsMirroredY(), "y cleared by x")
	assert.Equal(t, int16(4), tx.GenerationFlags, "wrong bits")
}

func TestTextSecondAlignmentOnlyWhenJustified(t *testing.T) {
	tx := entity.NewText("a", geometry.Origin, 1)
	tx.SecondAlignment = geometry.NewPoint(5, 5, 0)

	w := codec.NewWriter(dxfversion.R2018, false, nil)
	out, _ := w.Write(tx)
	for _, p := range out {
		assert.NotEqual(t, 11, p.Code, "second alignment written unjustified")
	}

	tx.HorizontalJustify = entity.JustifyRight
	out, _ = w.Write(tx)
	found := false
	for _, p := range out {
		if 11 == p.Code {
			found = true
		}
	}
	assert.True(t, found, "second alignment missing")
}

func TestFaceEdges(t *testing.T) {
	f := entity.NewFace(geometry.Origin, geometry.NewPoint(1, 0, 0), geometry.NewPoint(1, 1, 0), geometry.NewPoint(1, 1, 0))
	assert.True(t, f.IsTriangle(), "triangle")

	f.SetEdgeInvisible(2, true)
	f.SetEdgeInvisible(4, true)
	assert.False(t, f.IsEdgeInvisible(1), "first")
	assert.True(t, f.IsEdgeInvisible(2), "second")
	assert.False(t, f.IsEdgeInvisible(3), "third")
	assert.True(t, f.IsEdgeInvisible(4), "fourth")
	assert.Equal(t, int16(10), f.EdgeFlags, "bits")

	all := bitflag.All(f)
	assert.Equal(t, 4, len(all), "flag count")
	assert.True(t, all["SecondEdgeInvisible"], "second")
}

func TestInsertArray(t *testing.T) {
	i := entity.NewInsert("DOOR", geometry.Origin)
	assert.False(t, i.IsArray(), "single")
	i.Rows = 3
	assert.True(t, i.IsArray(), "array")
}

func TestNewDimension(t *testing.T) {
	o, ok := entity.NewDimension(entity.DimensionRadius)
	require.True(t, ok, "radius")
	r, ok := o.(*entity.RadialDimension)
	require.True(t, ok, "wrong type: %T", o)
	assert.Equal(t, entity.DimensionRadius, r.Kind(), "kind")
	assert.Equal(t, "STANDARD", r.StyleName, "style default")

	_, ok = entity.NewDimension(12)
	assert.False(t, ok, "unknown kind")
}

func TestDimensionSubtypesWriteTheirMarkers(t *testing.T) {
	o, _ := entity.NewDimension(entity.DimensionRotated)
	out, ok := codec.NewWriter(dxfversion.R2018, false, nil).Write(o)
	require.True(t, ok, "not written")

	assert.Equal(t, "DIMENSION", out[0].Value, "tag")
	markers := make([]string, 0, 4)
	for _, p := range out {
		if groupcode.SubclassMarkerCode == p.Code {
			markers = append(markers, p.Value)
		}
	}
	assert.Equal(t, []string{"AcDbEntity", "AcDbDimension", "AcDbAlignedDimension", "AcDbRotatedDimension"}, markers, "layers")
}

func TestImageBoundary(t *testing.T) {
	i := entity.NewImage(geometry.Origin, nil)
	assert.True(t, i.IsShown(), "shown by default")
	i.SetUseClippingBoundary(true)
	assert.True(t, i.UsesClippingBoundary(), "clip")
	i.Boundary = []geometry.Point{geometry.NewPoint(-0.5, -0.5, 0), geometry.NewPoint(99.5, 49.5, 0)}

	w := codec.NewWriter(dxfversion.R2018, false, nil)
	out, ok := w.Write(i)
	require.True(t, ok, "not written")

	items, err := codec.NewReader(nil, nil, nil).ReadAll(out)
	require.Nil(t, err, "read error")
	j := items[0].(*entity.Image)
	assert.Equal(t, i.Boundary, j.Boundary, "boundary")
	assert.Equal(t, i.DisplayFlags, j.DisplayFlags, "flags")

	_, ok = codec.NewWriter(dxfversion.R13, false, nil).Write(i)
	assert.False(t, ok, "image before R14")
}

func TestSequenceEnd(t *testing.T) {
	s := entity.NewSequenceEnd()
	out, ok := codec.NewWriter(dxfversion.R12, false, nil).Write(s)
	require.True(t, ok, "not written")
	assert.Equal(t, []groupcode.Pair{groupcode.NewString(0, "SEQEND"), groupcode.NewString(8, "0")}, out, "pairs")
}
