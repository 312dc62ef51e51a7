// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package itemstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/dxfcodec/digest"
	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/entity"
	"github.com/bitmark-inc/dxfcodec/fault"
	"github.com/bitmark-inc/dxfcodec/geometry"
	"github.com/bitmark-inc/dxfcodec/handle"
	"github.com/bitmark-inc/dxfcodec/itemstore"
	"github.com/bitmark-inc/dxfcodec/schema"
)

const (
	testingDirName = "testing"
)

var databaseFileName = filepath.Join(testingDirName, "items.leveldb")

func setup(t *testing.T) *itemstore.Store {
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
	_ = logger.Initialise(logging)

	s, err := itemstore.Open(databaseFileName, itemstore.ReadWrite, logger.New("itemstore"))
	if nil != err {
		t.Fatalf("store open error: %s", err)
	}
	return s
}

func teardown(s *itemstore.Store) {
	_ = s.Close()
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func items() []schema.Object {
	first := entity.NewLine(geometry.NewPoint(0, 0, 0), geometry.NewPoint(3, 4, 0))
	first.SetHandle(0x2A)
	second := entity.NewCircle(geometry.NewPoint(1, 1, 0), 5)
	second.SetHandle(0x10)
	unnamed := entity.NewPoint(geometry.NewPoint(7, 7, 0))
	return []schema.Object{first, second, unnamed}
}

func TestPutDrawing(t *testing.T) {
	s := setup(t)
	defer teardown(s)

	r, skipped, err := s.PutDrawing("plan", dxfversion.R2000, items())
	require.Nil(t, err, "put")
	assert.Equal(t, 1, skipped, "item without handle")
	assert.Equal(t, uint64(2), r.Count, "count")
	assert.Equal(t, dxfversion.R2000, r.Version, "version")

	stored, found, err := s.Drawing("plan")
	require.Nil(t, err, "drawing")
	require.True(t, found, "drawing found")
	assert.Equal(t, r, stored, "stored record")

	handles, err := s.Handles("plan")
	require.Nil(t, err, "handles")
	assert.Equal(t, []handle.Handle{0x10, 0x2A}, handles, "handles in key order")

	pairs, err := s.Pairs("plan", 0x2A)
	require.Nil(t, err, "pairs")
	assert.Equal(t, "LINE", pairs[0].Text(), "tag")
	d, err := s.Digest("plan", 0x2A)
	require.Nil(t, err, "digest")
	assert.Equal(t, digest.Pairs(pairs), d, "stored digest")

	leaf, err := s.Digest("plan", 0x10)
	require.Nil(t, err, "second digest")
	assert.Equal(t, digest.Root([]digest.Digest{d, leaf}), r.Root, "root in item order")
}

func TestLoad(t *testing.T) {
	s := setup(t)
	defer teardown(s)

	_, _, err := s.PutDrawing("plan", dxfversion.R2000, items())
	require.Nil(t, err, "put")

	o, err := s.Load("plan", 0x2A, nil, nil)
	require.Nil(t, err, "load")
	line, ok := o.(*entity.Line)
	require.True(t, ok, "type")
	assert.Equal(t, geometry.NewPoint(3, 4, 0), line.End, "end point")
	assert.Equal(t, handle.Handle(0x2A), line.Handle(), "handle")

	_, err = s.Load("plan", 0x99, nil, nil)
	assert.Equal(t, fault.ErrItemNotFound, err, "missing item")
}

func TestReplaceDrawing(t *testing.T) {
	s := setup(t)
	defer teardown(s)

	_, _, err := s.PutDrawing("plan", dxfversion.R2000, items())
	require.Nil(t, err, "first put")

	again := entity.NewLine(geometry.NewPoint(1, 1, 0), geometry.NewPoint(2, 2, 0))
	again.SetHandle(0x2A)
	r, _, err := s.PutDrawing("plan", dxfversion.R2000, []schema.Object{again})
	require.Nil(t, err, "second put")
	assert.Equal(t, uint64(1), r.Count, "count")

	handles, err := s.Handles("plan")
	require.Nil(t, err, "handles")
	assert.Equal(t, []handle.Handle{0x2A}, handles, "old items removed")

	_, err = s.Pairs("plan", 0x10)
	assert.Equal(t, fault.ErrItemNotFound, err, "old circle")
}

func TestDrawingsAndDelete(t *testing.T) {
	s := setup(t)
	defer teardown(s)

	for _, name := range []string{"section", "elevation", "plan"} {
		_, _, err := s.PutDrawing(name, dxfversion.R12, items())
		require.Nil(t, err, "put")
	}
	// a name that is a prefix of another must not share items
	_, _, err := s.PutDrawing("plan-b", dxfversion.R12, items()[:1])
	require.Nil(t, err, "put prefix")

	records, err := s.Drawings()
	require.Nil(t, err, "drawings")
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"elevation", "plan", "plan-b", "section"}, names, "name order")

	require.Nil(t, s.DeleteDrawing("plan"), "delete")
	_, found, err := s.Drawing("plan")
	assert.Nil(t, err, "deleted drawing")
	assert.False(t, found, "deleted drawing found")

	handles, err := s.Handles("plan-b")
	require.Nil(t, err, "handles")
	assert.Equal(t, []handle.Handle{0x2A}, handles, "prefix drawing intact")

	assert.Equal(t, fault.ErrDrawingNotFound, s.DeleteDrawing("plan"), "second delete")
}

func TestInvalidName(t *testing.T) {
	s := setup(t)
	defer teardown(s)

	_, _, err := s.PutDrawing("", dxfversion.R2000, items())
	assert.Equal(t, fault.ErrInvalidDrawingName, err, "empty name")
	_, _, err = s.PutDrawing("a\x00b", dxfversion.R2000, items())
	assert.Equal(t, fault.ErrInvalidDrawingName, err, "separator in name")
}

func TestReopen(t *testing.T) {
	s := setup(t)
	defer func() { teardown(s) }()

	r, _, err := s.PutDrawing("plan", dxfversion.R2000, items())
	require.Nil(t, err, "put")
	require.Nil(t, s.Close(), "close")

	s, err = itemstore.Open(databaseFileName, itemstore.ReadOnly, nil)
	require.Nil(t, err, "reopen")

	stored, found, err := s.Drawing("plan")
	require.Nil(t, err, "drawing")
	require.True(t, found, "found after reopen")
	assert.Equal(t, r, stored, "record after reopen")
}

func TestOpenMissingReadOnly(t *testing.T) {
	removeFiles()
	defer removeFiles()

	_, err := itemstore.Open(databaseFileName, itemstore.ReadOnly, nil)
	assert.NotNil(t, err, "read only open of missing database")
}
