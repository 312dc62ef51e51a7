// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/bitmark-inc/dxfcodec/codec"
	"github.com/bitmark-inc/dxfcodec/document"
	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/itemstore"
	"github.com/bitmark-inc/dxfcodec/pairio"
)

const (
	standardStream = "-"
)

// read, link and report on a drawing
func readDrawing(m *metadata, fileName string) (*document.Drawing, *codec.Collector, error) {
	if "" == fileName {
		return nil, nil, fmt.Errorf("input file is required")
	}

	r := m.r
	if standardStream != fileName {
		f, err := os.Open(fileName)
		if nil != err {
			return nil, nil, err
		}
		defer f.Close()
		r = f
	}

	pairs, err := pairio.ReadAll(r)
	if nil != err {
		return nil, nil, err
	}

	collector := &codec.Collector{}
	d, err := document.Read(context.Background(), pairs, collector, nil)
	if nil != err {
		return nil, nil, err
	}
	result := d.Resolve(runtime.NumCPU(), nil)

	if m.verbose {
		fmt.Fprintf(m.e, "input: %q  pairs: %d  version: %s\n", fileName, len(pairs), d.Version)
		fmt.Fprintf(m.e, "resolved: %d  unresolved: %d\n", result.Resolved, result.Unresolved)
		for _, diagnostic := range collector.Diagnostics {
			fmt.Fprintf(m.e, "diagnostic: %s\n", diagnostic)
		}
	}
	return d, collector, nil
}

// writer for a file name or standard output
func createOutput(m *metadata, fileName string) (io.Writer, func() error, error) {
	if "" == fileName || standardStream == fileName {
		return m.w, func() error { return nil }, nil
	}
	f, err := os.Create(fileName)
	if nil != err {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func parseVersion(s string) (dxfversion.Version, error) {
	v, err := dxfversion.Parse(s)
	if nil != err {
		return v, fmt.Errorf("target: %q: %s", s, err)
	}
	return v, nil
}

func openStore(m *metadata, readOnly bool) (*itemstore.Store, error) {
	if "" == m.store {
		return nil, fmt.Errorf("item database is required, use --store")
	}
	if m.verbose {
		fmt.Fprintf(m.e, "store: %q  read only: %t\n", m.store, readOnly)
	}
	return itemstore.Open(m.store, readOnly, nil)
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
