// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package document

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/dxfcodec/codec"
	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/groupcode"
	"github.com/bitmark-inc/dxfcodec/schema"
)

// Write - the whole drawing as pairs for a version, ending with EOF
//
// items whose type does not exist at the version are left out and
// counted in Stats
func (d *Drawing) Write(version dxfversion.Version, emitHandles bool, log *logger.L) []groupcode.Pair {
	w := codec.NewWriter(version, emitHandles, log)
	version = w.Version()

	out := make([]groupcode.Pair, 0, 1024)
	unwritten := 0

	out = append(out, sectionPairs(HeaderSection)...)
	out = append(out, d.header(version)...)
	out = append(out, tag(sectionEnd))

	if len(d.Tables) > 0 {
		out = append(out, sectionPairs(TablesSection)...)
		for _, t := range d.Tables {
			if nil != t.Header {
				if pairs, ok := w.Write(t.Header); ok {
					out = append(out, pairs...)
				}
			}
			pairs, skipped := w.WriteAll(t.Entries)
			out = append(out, pairs...)
			out = append(out, tag(tableEnd))
			unwritten += skipped
		}
		out = append(out, tag(sectionEnd))
	}

	sections := []struct {
		name  string
		items []schema.Object
		since dxfversion.Version
	}{
		{BlocksSection, d.Blocks, dxfversion.Minimum},
		{EntitiesSection, d.Entities, dxfversion.Minimum},
		{ObjectsSection, d.Objects, dxfversion.R13},
	}
	for _, s := range sections {
		if 0 == len(s.items) {
			continue
		}
		if version < s.since {
			unwritten += len(s.items)
			continue
		}
		pairs, skipped := w.WriteAll(s.items)
		unwritten += skipped
		out = append(out, sectionPairs(s.name)...)
		out = append(out, pairs...)
		out = append(out, tag(sectionEnd))
	}

	out = append(out, tag(endOfFile))

	d.stats.Unwritten = unwritten
	if nil != log {
		log.Infof("write: version: %s pairs: %d unwritten items: %d", version, len(out), unwritten)
	}
	return out
}

// header - the stored variables with $ACADVER set to the version
func (d *Drawing) header(version dxfversion.Version) []groupcode.Pair {
	out := make([]groupcode.Pair, 0, len(d.Header)+2)
	out = append(out,
		groupcode.NewString(variableCode, versionName),
		groupcode.NewString(1, version.AcadVersion()),
	)
	for i := 0; i < len(d.Header); i += 1 {
		p := d.Header[i]
		if variableCode == p.Code && versionName == p.Text() {
			i += 1
			continue
		}
		out = append(out, p)
	}
	return out
}

func sectionPairs(name string) []groupcode.Pair {
	return []groupcode.Pair{
		tag(sectionStart),
		groupcode.NewString(sectionNameCode, name),
	}
}

func tag(name string) groupcode.Pair {
	return groupcode.NewString(groupcode.TagCode, name)
}
