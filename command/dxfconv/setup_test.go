// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/dxfcodec/dxfversion"
)

const (
	testingDirName = "testing"
)

const sample = `  0
SECTION
  2
HEADER
  9
$ACADVER
  1
AC1015
  0
ENDSEC
  0
SECTION
  2
ENTITIES
  0
LINE
  5
2A
100
AcDbEntity
  8
WALLS
100
AcDbLine
 10
0.0
 20
0.0
 30
0.0
 11
3.0
 21
4.0
 31
0.0
  0
ENDSEC
  0
EOF
`

func setupLogger(t *testing.T) {
	removeFiles()
	err := os.MkdirAll(filepath.Join(testingDirName, "in"), 0700)
	require.Nil(t, err, "mkdir input")
	err = os.MkdirAll(filepath.Join(testingDirName, "out"), 0700)
	require.Nil(t, err, "mkdir output")

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
}

func teardown() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// write a drawing as an input file
func writeInput(t *testing.T, name string, text string) string {
	fileName, err := filepath.Abs(filepath.Join(testingDirName, "in", name))
	require.Nil(t, err, "abs")
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	require.Nil(t, err, "write input")
	return fileName
}

func newTestConverter(t *testing.T, version dxfversion.Version) *converter {
	output, err := filepath.Abs(filepath.Join(testingDirName, "out"))
	require.Nil(t, err, "abs")
	return &converter{
		version:     version,
		emitHandles: true,
		workers:     2,
		output:      output,
		log:         logger.New(converterLoggerPrefix),
	}
}
