// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec_test

import (
	"errors"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/dxfcodec/codec"
	"github.com/bitmark-inc/dxfcodec/codec/mocks"
	"github.com/bitmark-inc/dxfcodec/entity"
	"github.com/bitmark-inc/dxfcodec/fault"
	"github.com/bitmark-inc/dxfcodec/geometry"
	"github.com/bitmark-inc/dxfcodec/object"
)

func TestReadLine(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r := codec.NewReader(nil, nil, logger.New("reader"))
	items, err := r.ReadAll(pairs(
		0, "LINE",
		5, "2A",
		330, "1F",
		100, "AcDbEntity",
		8, "WALLS",
		62, "3",
		100, "AcDbLine",
		10, "1.0", 20, "2.0", 30, "3.0",
		11, "4.0", 21, "5.0", 31, "6.0",
	))
	require.Nil(t, err, "read error")
	require.Equal(t, 1, len(items), "wrong item count")

	l, ok := items[0].(*entity.Line)
	require.True(t, ok, "not a line")
	assert.Equal(t, "2A", l.Handle().String(), "wrong handle")
	assert.Equal(t, "1F", l.OwnerHandle().String(), "wrong owner")
	assert.Equal(t, "WALLS", l.Layer, "wrong layer")
	assert.Equal(t, int16(3), l.Color, "wrong color")
	assert.Equal(t, geometry.NewPoint(1, 2, 3), l.Start, "wrong start")
	assert.Equal(t, geometry.NewPoint(4, 5, 6), l.End, "wrong end")
	assert.Equal(t, geometry.ZAxis, l.Extrusion, "default extrusion not kept")
	assert.Equal(t, uint64(1), r.Statistics().Summary().Items, "wrong item count")
}

func TestReadCompositeComponentsInAnyOrder(t *testing.T) {
	r := codec.NewReader(nil, nil, nil)
	items, err := r.ReadAll(pairs(
		0, "LINE",
		21, "2.0",
		11, "1.0",
		31, "3.0",
		20, "5.0",
		10, "4.0",
	))
	require.Nil(t, err, "read error")

	l := items[0].(*entity.Line)
	assert.Equal(t, geometry.NewPoint(4, 5, 0), l.Start, "missing component not carried")
	assert.Equal(t, geometry.NewPoint(1, 2, 3), l.End, "wrong end")
}

func TestReadUnknownTypeIsSwallowed(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	reporter := mocks.NewMockReporter(ctl)
	reporter.EXPECT().Report(codec.Diagnostic{Kind: codec.Swallowed, Tag: "WIDGET", Position: 0}).Times(1)

	r := codec.NewReader(nil, reporter, nil)
	items, err := r.ReadAll(pairs(
		0, "WIDGET",
		1, "anything",
		10, "not a number",
		0, "LINE",
		8, "KEPT",
	))
	require.Nil(t, err, "read error")
	require.Equal(t, 1, len(items), "wrong item count")
	assert.Equal(t, "KEPT", items[0].(*entity.Line).Layer, "following item damaged")
	assert.Equal(t, uint64(1), r.Statistics().Swallowed.Uint64(), "wrong swallowed count")
}

func TestReadUnknownCodeIsIgnored(t *testing.T) {
	r := codec.NewReader(nil, nil, nil)
	items, err := r.ReadAll(pairs(
		0, "LINE",
		1, "stray",
		999, "a comment",
		8, "L",
	))
	require.Nil(t, err, "read error")
	assert.Equal(t, "L", items[0].(*entity.Line).Layer, "wrong layer")
	assert.Equal(t, uint64(1), r.Statistics().Ignored.Uint64(), "wrong ignored count")
}

func TestReadSharedCodeByOccurrence(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	reporter := mocks.NewMockReporter(ctl)
	reporter.EXPECT().Report(codec.Diagnostic{Kind: codec.SharedCodeOverflow, Tag: "VISUALSTYLE", Code: 62, Position: 4}).Times(1)

	r := codec.NewReader(nil, reporter, nil)
	items, err := r.ReadAll(pairs(
		0, "VISUALSTYLE",
		2, "Shaded",
		62, "1",
		62, "2",
		62, "3",
	))
	require.Nil(t, err, "read error")

	v := items[0].(*object.VisualStyle)
	assert.Equal(t, int16(1), v.FaceColor, "first occurrence")
	assert.Equal(t, int16(2), v.EdgeColor, "second occurrence")
	assert.Equal(t, uint64(1), r.Statistics().Overflows.Uint64(), "wrong overflow count")
}

func TestReadSharedCodeCountersArePerItem(t *testing.T) {
	r := codec.NewReader(nil, nil, nil)
	items, err := r.ReadAll(pairs(
		0, "SPATIAL_FILTER",
		72, "1",
		40, "1.5",
		73, "1",
		40, "2.5",
		0, "SPATIAL_FILTER",
		40, "7.0",
	))
	require.Nil(t, err, "read error")
	require.Equal(t, 2, len(items), "wrong item count")

	first := items[0].(*object.SpatialFilter)
	assert.Equal(t, 1.5, first.FrontDistance, "front")
	assert.Equal(t, 2.5, first.BackDistance, "back")

	second := items[1].(*object.SpatialFilter)
	assert.Equal(t, 7.0, second.FrontDistance, "counter not reset")
	assert.Equal(t, 0.0, second.BackDistance, "back")
}

func TestReadMalformedValue(t *testing.T) {
	r := codec.NewReader(nil, nil, nil)
	_, err := r.ReadAll(pairs(
		0, "LINE",
		8, "0",
		10, "abc",
	))
	require.NotNil(t, err, "no error")

	p, ok := fault.AsParseError(err)
	require.True(t, ok, "not a parse error")
	assert.Equal(t, 10, p.Code, "wrong code")
	assert.Equal(t, "abc", p.Value, "wrong value")
	assert.Equal(t, "double", p.Kind, "wrong kind")
	assert.Equal(t, 2, p.Position, "wrong position")
	assert.Equal(t, "LINE", p.Type, "wrong type")
}

func TestReadNotAtTag(t *testing.T) {
	r := codec.NewReader(nil, nil, nil)
	_, _, err := r.Next(pairs(8, "0"), 0)
	assert.True(t, errors.Is(err, fault.ErrNotATagPair), "wrong error")

	_, _, err = r.Next(pairs(0, "LINE"), 1)
	assert.Equal(t, fault.ErrUnexpectedEndOfFile, err, "wrong error")
}

func TestReadOwnerBeforeMarker(t *testing.T) {
	r := codec.NewReader(nil, nil, nil)
	items, err := r.ReadAll(pairs(
		0, "IDBUFFER",
		5, "A0",
		330, "1",
		100, "AcDbIdBuffer",
		330, "B",
		330, "C",
	))
	require.Nil(t, err, "read error")

	b := items[0].(*object.IDBuffer)
	assert.Equal(t, "1", b.OwnerHandle().String(), "wrong owner")
	require.Equal(t, 2, b.Entities.Len(), "wrong entity count")
	assert.Equal(t, "B", b.Entities.At(0).Handle().String(), "first entity")
	assert.Equal(t, "C", b.Entities.At(1).Handle().String(), "second entity")
}

func TestReadExtensionDataAndXData(t *testing.T) {
	r := codec.NewReader(nil, nil, nil)
	items, err := r.ReadAll(pairs(
		0, "LINE",
		5, "10",
		102, "{ACAD_REACTORS",
		330, "1F",
		102, "{NESTED",
		1, "inner",
		102, "}",
		102, "}",
		330, "1E",
		100, "AcDbEntity",
		8, "0",
		100, "AcDbLine",
		10, "1.0",
		1001, "APP",
		1000, "hello",
		1040, "2.5",
		1001, "OTHER",
		1070, "3",
	))
	require.Nil(t, err, "read error")

	l := items[0].(*entity.Line)
	assert.Equal(t, "1E", l.OwnerHandle().String(), "group pair taken as owner")
	require.Equal(t, 1, len(l.ExtensionData), "wrong group count")
	assert.Equal(t, "ACAD_REACTORS", l.ExtensionData[0].Name, "wrong group name")
	assert.Equal(t, 4, len(l.ExtensionData[0].Items), "nested group not kept")

	assert.Equal(t, []string{"APP", "OTHER"}, l.XData.Names(), "wrong applications")
	app, ok := l.XData.Get("APP")
	require.True(t, ok, "missing application")
	assert.Equal(t, pairs(1000, "hello", 1040, "2.5"), app, "wrong application data")
}

func TestReadDimensionRedispatch(t *testing.T) {
	collector := &codec.Collector{}
	r := codec.NewReader(nil, collector, nil)
	items, err := r.ReadAll(pairs(
		0, "DIMENSION",
		5, "2B",
		330, "1F",
		100, "AcDbEntity",
		8, "DIMS",
		100, "AcDbDimension",
		2, "*D1",
		10, "1.0", 20, "2.0", 30, "0.0",
		70, "33",
		100, "AcDbAlignedDimension",
		13, "5.0", 23, "6.0", 33, "0.0",
		14, "7.0", 24, "8.0", 34, "0.0",
		50, "30.0",
	))
	require.Nil(t, err, "read error")

	d, ok := items[0].(*entity.AlignedDimension)
	require.True(t, ok, "not redispatched: %T", items[0])
	assert.Equal(t, "2B", d.Handle().String(), "handle not promoted")
	assert.Equal(t, "1F", d.OwnerHandle().String(), "owner not promoted")
	assert.Equal(t, "DIMS", d.Layer, "entity layer not promoted")
	assert.Equal(t, "*D1", d.BlockName, "dimension layer not promoted")
	assert.Equal(t, geometry.NewPoint(1, 2, 0), d.DefinitionPoint, "wrong definition point")
	assert.Equal(t, geometry.NewPoint(5, 6, 0), d.FirstDefinitionPoint, "first point not replayed")
	assert.Equal(t, geometry.NewPoint(7, 8, 0), d.SecondDefinitionPoint, "second point not replayed")
	assert.Equal(t, 30.0, d.Rotation, "rotation not replayed")
	assert.Equal(t, entity.DimensionAligned, d.Kind(), "wrong kind")
	assert.True(t, d.IsBlockReferenceUnique(), "flag lost")
	assert.Equal(t, 1, collector.Count(codec.Redispatched), "wrong diagnostic")
}

func TestReadDimensionRotatedUsesAlignedLayer(t *testing.T) {
	r := codec.NewReader(nil, nil, nil)
	items, err := r.ReadAll(pairs(
		0, "DIMENSION",
		70, "0",
		50, "45.0",
		12, "1.0",
	))
	require.Nil(t, err, "read error")

	d, ok := items[0].(*entity.RotatedDimension)
	require.True(t, ok, "not redispatched: %T", items[0])
	assert.Equal(t, 45.0, d.Rotation, "rotation")
	assert.Equal(t, 1.0, d.InsertionPoint.X, "insertion point")
}

func TestReadDimensionUnknownKind(t *testing.T) {
	collector := &codec.Collector{}
	r := codec.NewReader(nil, collector, nil)
	items, err := r.ReadAll(pairs(
		0, "DIMENSION",
		70, "9",
		13, "1.0",
	))
	require.Nil(t, err, "read error")

	_, ok := items[0].(*entity.Dimension)
	assert.True(t, ok, "generic dimension not kept: %T", items[0])
	assert.Equal(t, 1, collector.Count(codec.UnknownSubtype), "wrong diagnostic")
}

func TestReadChunkedBinary(t *testing.T) {
	r := codec.NewReader(nil, nil, nil)
	items, err := r.ReadAll(pairs(
		0, "ACAD_PROXY_ENTITY",
		330, "1F",
		100, "AcDbEntity",
		8, "0",
		100, "AcDbProxyEntity",
		90, "498",
		91, "500",
		92, "5",
		310, "0102",
		310, "030405",
		93, "2",
		310, "FFEE",
		330, "2C",
		94, "0",
	))
	require.Nil(t, err, "read error")

	p := items[0].(*entity.ProxyEntity)
	assert.Equal(t, int32(500), p.ClassID, "class id")
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, p.GraphicsData, "graphics data")
	assert.Equal(t, []byte{0xff, 0xee}, p.EntityData, "entity data")
	require.Equal(t, 1, p.ObjectIDs.Len(), "object ids")
	assert.Equal(t, "2C", p.ObjectIDs.At(0).Handle().String(), "object id")
	assert.Equal(t, "1F", p.OwnerHandle().String(), "owner")
}

func TestReadChunkOverrun(t *testing.T) {
	r := codec.NewReader(nil, nil, nil)
	_, err := r.ReadAll(pairs(
		0, "ACAD_PROXY_ENTITY",
		92, "2",
		310, "AABBCC",
	))
	require.NotNil(t, err, "no error")
	assert.True(t, errors.Is(err, fault.ErrBinaryChunkOutOfRange), "wrong error: %s", err)
	assert.True(t, fault.IsErrParse(err), "not a parse error")
}

func TestReadLightWeightPolyline(t *testing.T) {
	r := codec.NewReader(nil, nil, nil)
	items, err := r.ReadAll(pairs(
		0, "LWPOLYLINE",
		100, "AcDbEntity",
		8, "0",
		100, "AcDbPolyline",
		90, "2",
		70, "1",
		10, "0.0", 20, "0.0",
		42, "0.5",
		10, "3.0", 20, "4.0",
		40, "1.0", 41, "2.0",
	))
	require.Nil(t, err, "read error")

	p := items[0].(*entity.LightWeightPolyline)
	require.Equal(t, 2, len(p.Vertices), "wrong vertex count")
	assert.Equal(t, 0.5, p.Vertices[0].Bulge, "bulge belongs to the first vertex")
	assert.Equal(t, geometry.NewPoint(3, 4, 0), p.Vertices[1].Location, "second location")
	assert.Equal(t, 1.0, p.Vertices[1].StartWidth, "start width")
	assert.Equal(t, 2.0, p.Vertices[1].EndWidth, "end width")
	assert.True(t, p.IsClosed(), "closed flag")
	assert.False(t, p.IsPlinegen(), "plinegen flag")
}
