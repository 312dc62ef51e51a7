// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package document_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/dxfcodec/codec"
	"github.com/bitmark-inc/dxfcodec/document"
	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/entity"
	"github.com/bitmark-inc/dxfcodec/fault"
	"github.com/bitmark-inc/dxfcodec/geometry"
	"github.com/bitmark-inc/dxfcodec/groupcode"
	"github.com/bitmark-inc/dxfcodec/object"
	"github.com/bitmark-inc/dxfcodec/pairio"
	"github.com/bitmark-inc/dxfcodec/table"
)

const (
	testingDirName = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

const drawing = `  0
SECTION
  2
HEADER
  9
$ACADVER
  1
AC1015
  9
$INSUNITS
 70
4
  0
ENDSEC
  0
SECTION
  2
CLASSES
  0
CLASS
  1
ACDBDICTIONARYWDFLT
  0
ENDSEC
  0
SECTION
  2
TABLES
  0
TABLE
  2
LAYER
  5
2
330
0
100
AcDbSymbolTable
 70
1
  0
LAYER
  5
10
330
2
100
AcDbSymbolTableRecord
100
AcDbLayerTableRecord
  2
WALLS
 70
0
 62
1
  6
CONTINUOUS
370
-3
  0
ENDTAB
  0
ENDSEC
  0
SECTION
  2
ENTITIES
  0
LINE
  5
20
330
1F
100
AcDbEntity
  8
WALLS
370
-1
100
AcDbLine
 10
0.0
 20
0.0
 30
0.0
 11
10.0
 21
0.0
 31
0.0
  0
WIDGET
  1
unknown
  0
ENDSEC
  0
SECTION
  2
OBJECTS
  0
DICTIONARY
  5
C
330
0
100
AcDbDictionary
281
1
  3
WALLS
350
10
  0
ENDSEC
  0
EOF
`

func readDrawing(t *testing.T, text string, reporter codec.Reporter) *document.Drawing {
	pairs, err := pairio.ReadAll(strings.NewReader(text))
	require.Nil(t, err, "scan error")
	d, err := document.Read(context.Background(), pairs, reporter, logger.New("document"))
	require.Nil(t, err, "read error")
	return d
}

func TestRead(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	collector := &codec.Collector{}
	d := readDrawing(t, drawing, collector)

	assert.Equal(t, dxfversion.R2000, d.Version, "version")
	assert.Equal(t, 4, len(d.Header), "header pairs")

	layers := d.Table("LAYER")
	require.NotNil(t, layers, "layer table")
	require.Equal(t, 1, len(layers.Entries), "layer count")
	assert.Equal(t, "WALLS", layers.Entries[0].(*table.Layer).Name, "layer name")

	require.Equal(t, 1, len(d.Entities), "entity count")
	require.Equal(t, 1, len(d.Objects), "object count")
	assert.Equal(t, 1, collector.Count(codec.Swallowed), "unknown entity")

	stats := d.Stats()
	assert.Equal(t, []string{"CLASSES"}, stats.Skipped, "skipped sections")
	assert.Equal(t, 5, stats.Sections, "sections")
	assert.Equal(t, uint64(4), stats.Reader.Items, "items")
}

func TestResolve(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	d := readDrawing(t, drawing, nil)
	result := d.Resolve(4, logger.New("resolve"))

	// the line's owner 1F is not in the drawing
	assert.Equal(t, uint64(1), result.Unresolved, "unresolved")
	assert.Equal(t, uint64(2), result.Resolved, "resolved")

	dictionary := d.Objects[0].(*object.Dictionary)
	p, ok := dictionary.Lookup("WALLS")
	require.True(t, ok, "entry")
	assert.Same(t, d.Table("LAYER").Entries[0], p.Item(), "entry target")

	o, ok := d.Lookup(0x20)
	require.True(t, ok, "lookup")
	assert.Same(t, d.Entities[0], o, "lookup target")

	line := d.Entities[0].(*entity.Line)
	assert.False(t, line.OwnerPointer().IsResolved(), "owner")
}

func TestWriteRoundTrip(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	d := readDrawing(t, drawing, nil)
	d.Resolve(1, nil)
	first := d.Write(d.Version, true, nil)

	again, err := document.Read(context.Background(), first, nil, nil)
	require.Nil(t, err, "read back")
	again.Resolve(2, nil)
	second := again.Write(again.Version, true, nil)

	assert.Equal(t, first, second, "round trip")
	assert.Equal(t, groupcode.NewString(0, "EOF"), second[len(second)-1], "end of file")
}

func TestWriteOlderVersion(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	d := readDrawing(t, drawing, nil)
	d.Resolve(1, nil)
	out := d.Write(dxfversion.R12, false, nil)

	for i, p := range out {
		if 9 == p.Code && "$ACADVER" == p.Value {
			assert.Equal(t, "AC1009", out[i+1].Value, "version variable")
		}
		assert.NotEqual(t, "OBJECTS", p.Value, "objects section at R12")
		assert.NotEqual(t, groupcode.SubclassMarkerCode, p.Code, "subclass marker at R12")
	}
	assert.Equal(t, 1, d.Stats().Unwritten, "unwritten items")
}

func TestReadCancelled(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	pairs, err := pairio.ReadAll(strings.NewReader(drawing))
	require.Nil(t, err, "scan error")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = document.Read(ctx, pairs, nil, nil)
	assert.Equal(t, context.Canceled, err, "wrong error")
}

func TestReadUnterminatedSection(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	pairs := []groupcode.Pair{
		groupcode.NewString(0, "SECTION"),
		groupcode.NewString(2, "ENTITIES"),
		groupcode.NewString(0, "LINE"),
		groupcode.NewString(8, "0"),
	}
	_, err := document.Read(context.Background(), pairs, nil, nil)
	assert.Equal(t, fault.ErrSectionNotTerminated, err, "wrong error")
}

func TestWriteNewDrawing(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	d := document.New(dxfversion.R2018)
	d.Entities = append(d.Entities, entity.NewLine(geometry.Origin, geometry.NewPoint(1, 1, 0)))

	out := d.Write(dxfversion.R2018, false, nil)
	assert.Equal(t, "SECTION", out[0].Value, "section")
	assert.Equal(t, "AC1032", out[3].Value, "version")
	assert.Equal(t, 0, d.Stats().Unwritten, "unwritten")
}

func TestDigests(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	d := readDrawing(t, drawing, nil)
	d.Resolve(1, nil)
	root, items := d.Digests(d.Version, nil)
	assert.Equal(t, len(d.Items()), len(items), "item digests")
	assert.Equal(t, "LINE", items[2].Type, "line type")
	assert.Equal(t, uint64(0x20), uint64(items[2].Handle), "line handle")

	again, err := document.Read(context.Background(), d.Write(d.Version, true, nil), nil, nil)
	require.Nil(t, err, "read back")
	again.Resolve(1, nil)
	rootAgain, _ := again.Digests(again.Version, nil)
	assert.Equal(t, root, rootAgain, "root changed on round trip")

	line := again.Entities[0].(*entity.Line)
	line.Thickness = 2.5
	rootChanged, _ := again.Digests(again.Version, nil)
	assert.NotEqual(t, root, rootChanged, "edit not detected")
}
