// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec_test

import (
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/dxfcodec/groupcode"
	"github.com/bitmark-inc/dxfcodec/handle"
	"github.com/bitmark-inc/dxfcodec/schema"
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

// pairs from alternating code, value arguments
func pairs(codeValue ...interface{}) []groupcode.Pair {
	out := make([]groupcode.Pair, 0, len(codeValue)/2)
	for i := 0; i+1 < len(codeValue); i += 2 {
		out = append(out, groupcode.New(codeValue[i].(int), codeValue[i+1].(string)))
	}
	return out
}

// link every item as the document does after reading
func resolve(items []schema.Object) handle.Result {
	linkers := make([]handle.Linker, len(items))
	for i, o := range items {
		linkers[i] = schema.Linker(o)
	}
	return handle.NewTable(linkers).Resolve(linkers, 2, nil)
}

// first pair with a code, or a zero pair
func find(list []groupcode.Pair, code int) (groupcode.Pair, bool) {
	for _, p := range list {
		if code == p.Code {
			return p, true
		}
	}
	return groupcode.Pair{}, false
}

func count(list []groupcode.Pair, code int) int {
	n := 0
	for _, p := range list {
		if code == p.Code {
			n += 1
		}
	}
	return n
}
