// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package document

import (
	"context"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/dxfcodec/codec"
	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/fault"
	"github.com/bitmark-inc/dxfcodec/groupcode"
	"github.com/bitmark-inc/dxfcodec/schema"
	"github.com/bitmark-inc/dxfcodec/table"
)

// Read - parse a whole drawing
//
// cancellation is observed between items; the item being parsed
// when the context ends is discarded
func Read(ctx context.Context, pairs []groupcode.Pair, reporter codec.Reporter, log *logger.L) (*Drawing, error) {
	d := New(dxfversion.Unspecified)
	r := codec.NewReader(nil, reporter, log)

	i := 0
	for i < len(pairs) {
		p := pairs[i]
		if !p.IsTag() {
			return nil, &fault.ParseError{
				Code:     p.Code,
				Value:    p.Value,
				Kind:     "tag",
				Position: i,
				Err:      fault.ErrNotATagPair,
			}
		}

		switch p.Text() {
		case endOfFile:
			i = len(pairs)
			continue
		case sectionStart:
		default:
			// stray item outside any section
			_, next, err := r.Next(pairs, i)
			if nil != err {
				return nil, err
			}
			i = next
			continue
		}

		name := ""
		if i+1 < len(pairs) && sectionNameCode == pairs[i+1].Code {
			name = pairs[i+1].Text()
			i += 1
		}
		i += 1

		var err error
		switch name {
		case HeaderSection:
			i, err = d.readHeader(pairs, i)
		case TablesSection:
			i, err = d.readTables(ctx, r, pairs, i)
		case BlocksSection:
			d.Blocks, i, err = readItems(ctx, r, pairs, i, sectionEnd, d.Blocks)
		case EntitiesSection:
			d.Entities, i, err = readItems(ctx, r, pairs, i, sectionEnd, d.Entities)
		case ObjectsSection:
			d.Objects, i, err = readItems(ctx, r, pairs, i, sectionEnd, d.Objects)
		default:
			i, err = skipSection(pairs, i)
			d.stats.Skipped = append(d.stats.Skipped, name)
			if nil != log {
				log.Debugf("section: %q skipped", name)
			}
		}
		if nil != err {
			if nil != log {
				log.Errorf("section: %s: %s", name, err)
			}
			return nil, err
		}
		d.stats.Sections += 1
	}

	d.stats.Reader = r.Statistics().Summary()
	if nil != log {
		log.Infof("read: version: %s sections: %d items: %d", d.Version, d.stats.Sections, d.stats.Reader.Items)
	}
	return d, nil
}

// readHeader - keep the variables as raw pairs and take the version
func (d *Drawing) readHeader(pairs []groupcode.Pair, i int) (int, error) {
	for ; i < len(pairs); i += 1 {
		p := pairs[i]
		if p.IsTag() && sectionEnd == p.Text() {
			if v, ok := d.variable(versionName); ok {
				version, err := dxfversion.Parse(v.Text())
				if nil != err {
					return i, err
				}
				d.Version = version
			}
			return i + 1, nil
		}
		d.Header = append(d.Header, p)
	}
	return i, fault.ErrSectionNotTerminated
}

// readTables - each TABLE item is followed by its records up to ENDTAB
func (d *Drawing) readTables(ctx context.Context, r *codec.Reader, pairs []groupcode.Pair, i int) (int, error) {
	for i < len(pairs) {
		p := pairs[i]
		if p.IsTag() && sectionEnd == p.Text() {
			return i + 1, nil
		}

		o, next, err := r.Next(pairs, i)
		if nil != err {
			return next, err
		}
		i = next

		h, ok := o.(*table.Header)
		if !ok {
			// not a table header, dropped with the section framing intact
			continue
		}
		t := &Table{
			Header:  h,
			Entries: make([]schema.Object, 0),
		}
		t.Entries, i, err = readItems(ctx, r, pairs, i, tableEnd, t.Entries)
		if nil != err {
			return i, err
		}
		d.Tables = append(d.Tables, t)
	}
	return i, fault.ErrSectionNotTerminated
}

// readItems - items up to and including the terminating tag
func readItems(ctx context.Context, r *codec.Reader, pairs []groupcode.Pair, i int, terminator string, items []schema.Object) ([]schema.Object, int, error) {
	for i < len(pairs) {
		select {
		case <-ctx.Done():
			return items, i, ctx.Err()
		default:
		}

		p := pairs[i]
		if p.IsTag() && terminator == p.Text() {
			return items, i + 1, nil
		}
		if p.IsTag() && sectionEnd == p.Text() {
			// a table left open by the end of its section
			return items, i, nil
		}

		o, next, err := r.Next(pairs, i)
		if nil != err {
			return items, next, err
		}
		if nil != o {
			items = append(items, o)
		}
		i = next
	}
	return items, i, fault.ErrSectionNotTerminated
}

// skipSection - pass over a section this package does not model
func skipSection(pairs []groupcode.Pair, i int) (int, error) {
	for ; i < len(pairs); i += 1 {
		if pairs[i].IsTag() && sectionEnd == pairs[i].Text() {
			return i + 1, nil
		}
	}
	return i, fault.ErrSectionNotTerminated
}
