// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/groupcode"
	"github.com/bitmark-inc/dxfcodec/schema"
)

// Writer - turns items into pairs for one drawing version
type Writer struct {
	version     dxfversion.Version
	emitHandles bool
	log         *logger.L
}

// NewWriter - create a writer; an invalid version selects the latest
func NewWriter(version dxfversion.Version, emitHandles bool, log *logger.L) *Writer {
	if !version.IsValid() {
		version = dxfversion.Maximum
	}
	return &Writer{
		version:     version,
		emitHandles: emitHandles,
		log:         log,
	}
}

// Version - the target version
func (w *Writer) Version() dxfversion.Version {
	return w.version
}

// Write - the pairs of one item
//
// false if the item's type does not exist at the target version, in
// which case nothing is written
func (w *Writer) Write(o schema.Object) ([]groupcode.Pair, bool) {
	t := o.Descriptor()
	if !t.SupportsVersion(w.version) {
		if nil != w.log {
			w.log.Debugf("%s: %s not written at: %s", t.Name, o.Handle(), w.version)
		}
		return nil, false
	}

	base := o.ItemBase()
	out := make([]groupcode.Pair, 0, 32)
	out = append(out, groupcode.NewString(groupcode.TagCode, t.Tag()))

	if h := o.Handle(); w.emitHandles && !h.IsNull() {
		out = append(out, groupcode.NewHandle(t.Handle(), uint64(h)))
	}

	if w.version >= dxfversion.R13 {
		for _, g := range base.ExtensionData {
			out = append(out, g.Pairs()...)
		}
	}

	if w.version >= dxfversion.R2000 {
		owner := base.OwnerPointer().WriteHandle()
		out = append(out, groupcode.NewHandle(groupcode.OwnerHandleCode, uint64(owner)))
	}

	for _, layer := range t.Chain() {
		if "" != layer.SubclassMarker && w.version >= dxfversion.R13 {
			out = append(out, groupcode.NewString(groupcode.SubclassMarkerCode, layer.SubclassMarker))
		}
		if nil != layer.WriteOrder {
			s := &script{writer: w, t: t, o: o, out: out}
			s.run(layer.WriteOrder)
			out = s.out
			continue
		}
		for _, f := range layer.Fields {
			out = w.field(out, o, f)
		}
	}

	if !t.PlacesXData() {
		out = append(out, base.XData.Pairs()...)
	}
	return out, true
}

// WriteAll - the pairs of every item in order, skipping items whose
// type does not exist at the target version
func (w *Writer) WriteAll(items []schema.Object) ([]groupcode.Pair, int) {
	out := make([]groupcode.Pair, 0, 32*len(items))
	skipped := 0
	for _, o := range items {
		pairs, ok := w.Write(o)
		if !ok {
			skipped += 1
			continue
		}
		out = append(out, pairs...)
	}
	return out, skipped
}

// field - append a field's pairs if its write predicate holds
func (w *Writer) field(out []groupcode.Pair, o schema.Object, f *schema.Field) []groupcode.Pair {
	if !f.ShouldWrite(o, w.version) {
		return out
	}
	return append(out, f.Access.Pairs(o, f)...)
}
