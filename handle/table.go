// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handle

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/dxfcodec/counter"
)

// Table - handle → item map for one drawing
//
// built once, then read only; duplicate handles resolve to the last
// item added
type Table struct {
	items      map[Handle]Target
	duplicates []Handle
}

// NewTable - index every item with a non-null handle
func NewTable(items []Linker) *Table {
	t := &Table{
		items:      make(map[Handle]Target, len(items)),
		duplicates: make([]Handle, 0),
	}
	for _, item := range items {
		h := item.Handle()
		if Null == h {
			continue
		}
		if _, ok := t.items[h]; ok {
			t.duplicates = append(t.duplicates, h)
		}
		t.items[h] = item.Target()
	}
	return t
}

// Lookup - find an item by handle
func (t *Table) Lookup(h Handle) (Target, bool) {
	item, ok := t.items[h]
	return item, ok
}

// Count - number of distinct handles
func (t *Table) Count() int {
	return len(t.items)
}

// Duplicates - handles seen more than once, in the order the repeat
// was encountered
func (t *Table) Duplicates() []Handle {
	return t.duplicates
}

// Result - outcome of a resolution pass
type Result struct {
	Resolved   uint64
	Unresolved uint64
}

// Resolve - substitute every pointer of every item using the table
//
// the table is not modified, and an item's pointers are only touched
// by the worker that owns the item, so the items are split across
// workers without further locking
func (t *Table) Resolve(items []Linker, workers int, log *logger.L) Result {
	if workers < 1 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	var resolved counter.Counter
	var unresolved counter.Counter

	work := make(chan Linker, workers)
	wg := new(sync.WaitGroup)

	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range work {
				item.VisitPointers(func(p *Pointer) {
					if Null == p.handle && nil == p.item {
						return
					}
					if p.resolve(t) {
						resolved.Increment()
						return
					}
					unresolved.Increment()
					if nil != log {
						log.Debugf("item: %s pointer to: %s is unresolved", item.Handle(), p.handle)
					}
				})
			}
		}()
	}

	for _, item := range items {
		work <- item
	}
	close(work)
	wg.Wait()

	return Result{
		Resolved:   resolved.Uint64(),
		Unresolved: unresolved.Uint64(),
	}
}
