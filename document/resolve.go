// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package document

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/dxfcodec/handle"
	"github.com/bitmark-inc/dxfcodec/schema"
)

// Resolve - link every pointer of every item to its target
//
// the handle table is built once, then the items are shared out
// across the workers
func (d *Drawing) Resolve(workers int, log *logger.L) handle.Result {
	items := d.Items()
	linkers := make([]handle.Linker, len(items))
	for i, o := range items {
		linkers[i] = schema.Linker(o)
	}

	d.handles = handle.NewTable(linkers)
	duplicates := d.handles.Duplicates()
	if nil != log {
		for _, h := range duplicates {
			log.Warnf("duplicate handle: %s", h)
		}
	}

	result := d.handles.Resolve(linkers, workers, log)

	d.stats.Handles = d.handles.Count()
	d.stats.Duplicates = len(duplicates)
	d.stats.Resolved = result.Resolved
	d.stats.Unresolved = result.Unresolved
	if nil != log {
		log.Infof("resolved: %d unresolved: %d handles: %d", result.Resolved, result.Unresolved, d.stats.Handles)
	}
	return result
}
