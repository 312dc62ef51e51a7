// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/dxfcodec/codec"
	"github.com/bitmark-inc/dxfcodec/digest"
	"github.com/bitmark-inc/dxfcodec/document"
	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/itemstore"
	"github.com/bitmark-inc/dxfcodec/pairio"
)

const (
	converterLoggerPrefix = "convert"
)

// converter - writes drawings at one version
type converter struct {
	version     dxfversion.Version
	emitHandles bool
	workers     int
	output      string
	store       *itemstore.Store
	log         *logger.L
}

// result of converting one file
type result struct {
	Input  string         `json:"input"`
	Output string         `json:"output"`
	Stats  document.Stats `json:"stats"`
	Root   digest.Digest  `json:"root"`
}

// diagnostics go to the converter log
type logReporter struct {
	log *logger.L
}

func (r logReporter) Report(d codec.Diagnostic) {
	r.log.Debugf("diagnostic: %s", d)
}

// convert a single file into the output directory
func (c *converter) convertFile(ctx context.Context, inputFile string) (*result, error) {
	outputFile := filepath.Join(c.output, filepath.Base(inputFile))
	if filepath.Clean(inputFile) == outputFile {
		return nil, fmt.Errorf("input: %q would be overwritten", inputFile)
	}

	f, err := os.Open(inputFile)
	if nil != err {
		return nil, err
	}
	pairs, err := pairio.ReadAll(f)
	f.Close()
	if nil != err {
		return nil, err
	}

	d, err := document.Read(ctx, pairs, logReporter{log: c.log}, c.log)
	if nil != err {
		return nil, err
	}
	d.Resolve(c.workers, c.log)

	out := d.Write(c.version, c.emitHandles, c.log)

	// write to a temporary so a watcher never sees a partial file
	temporary := outputFile + ".new"
	w, err := os.Create(temporary)
	if nil != err {
		return nil, err
	}
	err = pairio.WriteAll(w, out)
	if closeErr := w.Close(); nil == err {
		err = closeErr
	}
	if nil != err {
		os.Remove(temporary)
		return nil, err
	}
	if err := os.Rename(temporary, outputFile); nil != err {
		return nil, err
	}

	r := &result{
		Input:  inputFile,
		Output: outputFile,
	}

	if nil != c.store {
		record, skipped, err := c.store.PutDrawing(drawingName(inputFile), c.version, d.Items())
		if nil != err {
			return nil, err
		}
		c.log.Debugf("stored: %q  items: %d  skipped: %d", record.Name, record.Count, skipped)
		r.Root = record.Root
	} else {
		r.Root, _ = d.Digests(c.version, c.log)
	}

	r.Stats = d.Stats()
	c.log.Infof("converted: %q → %q  version: %s  root: %s", inputFile, outputFile, c.version, r.Root)
	return r, nil
}

// convert all files, continuing after errors
//
// returns the number of failures
func (c *converter) convertAll(ctx context.Context, inputFiles []string) int {
	failures := 0
	for _, inputFile := range inputFiles {
		if nil != ctx.Err() {
			return failures + 1
		}
		_, err := c.convertFile(ctx, inputFile)
		if nil != err {
			c.log.Errorf("convert: %q  error: %s", inputFile, err)
			failures += 1
		}
	}
	return failures
}

// the file name without directory and extension
func drawingName(fileName string) string {
	base := filepath.Base(fileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
