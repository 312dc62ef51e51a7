// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/dxfcodec/fault"
	"github.com/bitmark-inc/dxfcodec/groupcode"
	"github.com/bitmark-inc/dxfcodec/handle"
	"github.com/bitmark-inc/dxfcodec/item"
	"github.com/bitmark-inc/dxfcodec/schema"
)

// Reader - builds items from a pair stream
type Reader struct {
	registry *schema.Registry
	reporter Reporter
	log      *logger.L
	stats    Statistics
}

// NewReader - create a reader; reporter and log may be nil
func NewReader(registry *schema.Registry, reporter Reporter, log *logger.L) *Reader {
	if nil == registry {
		registry = schema.Default
	}
	return &Reader{
		registry: registry,
		reporter: reporter,
		log:      log,
	}
}

// Statistics - counters accumulated over every read
func (r *Reader) Statistics() *Statistics {
	return &r.stats
}

// ReadAll - every item of a stream holding only items
func (r *Reader) ReadAll(pairs []groupcode.Pair) ([]schema.Object, error) {
	items := make([]schema.Object, 0, 64)
	for i := 0; i < len(pairs); {
		o, next, err := r.Next(pairs, i)
		if nil != err {
			return items, err
		}
		if nil != o {
			items = append(items, o)
		}
		i = next
	}
	return items, nil
}

// Next - parse the item whose tag pair is at pairs[start]
//
// returns the item (nil if its type was swallowed) and the index of
// the first pair after it; the terminating tag pair is not consumed
func (r *Reader) Next(pairs []groupcode.Pair, start int) (schema.Object, int, error) {
	if start >= len(pairs) {
		return nil, start, fault.ErrUnexpectedEndOfFile
	}
	tag := pairs[start]
	if !tag.IsTag() {
		return nil, start, &fault.ParseError{
			Code:     tag.Code,
			Value:    tag.Value,
			Kind:     "tag",
			Position: start,
			Err:      fault.ErrNotATagPair,
		}
	}
	end := itemEnd(pairs, start)

	name := tag.Text()
	t, ok := r.registry.ForTag(name)
	if !ok || !t.IsConcrete() {
		r.stats.Swallowed.Increment()
		r.report(Diagnostic{Kind: Swallowed, Tag: name, Position: start})
		r.debugf("swallowed: %s pairs: %d", name, end-start)
		return nil, end, nil
	}

	s := newState(t, t.New())
	for i := start + 1; i < end; i += 1 {
		if err := r.apply(s, pairs[i], i); nil != err {
			if nil != r.log {
				r.log.Errorf("%s", err)
			}
			return nil, end, err
		}
	}

	o, err := r.redispatch(s)
	if nil != err {
		return nil, end, err
	}
	r.stats.Items.Increment()
	return o, end, nil
}

// index of the next tag pair, or the end of the stream
func itemEnd(pairs []groupcode.Pair, start int) int {
	i := start + 1
	for i < len(pairs) && !pairs[i].IsTag() {
		i += 1
	}
	return i
}

// a pair whose code no layer of the chain reads
type positioned struct {
	pair     groupcode.Pair
	position int
}

// key of a shared code counter
type sharedCode struct {
	layer *schema.Type
	code  int
}

// an open chunked binary value
type sink struct {
	field     *schema.Field
	remaining int
}

// per item parse state, discarded with the item
type state struct {
	t        *schema.Type
	o        schema.Object
	counters map[sharedCode]int
	excess   []positioned
	sink     *sink
	markers  int
	owner    bool
	group    *item.ExtensionGroup
	depth    int
	xdata    string
}

func newState(t *schema.Type, o schema.Object) *state {
	return &state{
		t:        t,
		o:        o,
		counters: make(map[sharedCode]int),
		excess:   make([]positioned, 0),
	}
}

// apply one pair: reserved codes first, then the type's fields
func (r *Reader) apply(s *state, p groupcode.Pair, position int) error {
	base := s.o.ItemBase()

	if groupcode.CommentCode == p.Code {
		return nil
	}

	// inside an extension data group everything up to the closing
	// brace belongs to the group
	if nil != s.group {
		if groupcode.ExtensionGroupCode == p.Code {
			v := p.Text()
			switch {
			case groupcode.ExtensionGroupEnd == v:
				s.depth -= 1
				if 0 == s.depth {
					base.ExtensionData = append(base.ExtensionData, *s.group)
					s.group = nil
					return nil
				}
			case strings.HasPrefix(v, groupcode.ExtensionGroupStart):
				s.depth += 1
			}
		}
		s.group.Items = append(s.group.Items, p)
		return nil
	}

	if groupcode.ExtensionGroupCode == p.Code {
		v := p.Text()
		if strings.HasPrefix(v, groupcode.ExtensionGroupStart) {
			s.group = &item.ExtensionGroup{
				Name:  strings.TrimPrefix(v, groupcode.ExtensionGroupStart),
				Items: make([]groupcode.Pair, 0),
			}
			s.depth = 1
		}
		return nil
	}

	if groupcode.XDataApplication == p.Code {
		s.xdata = p.AsString()
		base.XData.Set(s.xdata, make([]groupcode.Pair, 0))
		return nil
	}
	if groupcode.IsXData(p.Code) {
		if "" == s.xdata {
			s.excess = append(s.excess, positioned{pair: p, position: position})
			r.stats.Ignored.Increment()
			return nil
		}
		if err := p.Validate(); nil != err {
			return r.parseError(s, p, position, err)
		}
		base.XData.Append(s.xdata, p)
		return nil
	}
	s.xdata = ""

	if s.t.Handle() == p.Code {
		h, err := p.AsHandle()
		if nil != err {
			return r.parseError(s, p, position, err)
		}
		base.SetHandle(handle.Handle(h))
		return nil
	}

	if groupcode.SubclassMarkerCode == p.Code {
		s.markers += 1
		return nil
	}

	// the owner precedes the first subclass marker
	if groupcode.OwnerHandleCode == p.Code && !s.owner && 0 == s.markers {
		return r.setOwner(s, p, position)
	}

	if nil != s.sink && s.sink.field.Chunk.ChunkCode == p.Code {
		return r.chunk(s, p, position)
	}

	handled, err := r.assign(s, p, position)
	if nil != err || handled {
		return err
	}

	if groupcode.OwnerHandleCode == p.Code && !s.owner {
		return r.setOwner(s, p, position)
	}

	s.excess = append(s.excess, positioned{pair: p, position: position})
	r.stats.Ignored.Increment()
	return nil
}

func (r *Reader) setOwner(s *state, p groupcode.Pair, position int) error {
	h, err := p.AsHandle()
	if nil != err {
		return r.parseError(s, p, position, err)
	}
	s.o.ItemBase().OwnerPointer().SetHandle(handle.Handle(h))
	s.owner = true
	return nil
}

// assign - route a pair to a field, most derived layer first
//
// false if no layer reads the code
func (r *Reader) assign(s *state, p groupcode.Pair, position int) (bool, error) {
	for _, layer := range s.t.DispatchChain() {
		fields := layer.FieldsFor(p.Code)
		if 0 == len(fields) {
			continue
		}

		f := fields[0]
		if len(fields) > 1 {
			key := sharedCode{layer: layer, code: p.Code}
			n := s.counters[key]
			s.counters[key] = n + 1
			switch {
			case n < len(fields):
				f = fields[n]
			case fields[len(fields)-1].AllowMultiples:
				f = fields[len(fields)-1]
			default:
				r.stats.Overflows.Increment()
				r.report(Diagnostic{Kind: SharedCodeOverflow, Tag: s.t.Name, Code: p.Code, Position: position})
				if nil != r.log {
					r.log.Warnf("%s: %s: code: %d occurrence: %d", s.t.Name, fault.ErrSharedCodeOverflow, p.Code, n+1)
				}
				return true, nil
			}
		}

		component := f.ComponentOf(p.Code)
		if err := f.Access.Assign(s.o, f, component, p); nil != err {
			return true, r.parseError(s, p, position, err)
		}

		if nil != f.Chunk && f.Chunk.LengthCode == p.Code {
			n, _ := f.Chunk.Declared(p)
			s.sink = nil
			if n > 0 {
				s.sink = &sink{field: f, remaining: n}
			}
		}
		return true, nil
	}
	return false, nil
}

// chunk - extend the open binary value
func (r *Reader) chunk(s *state, p groupcode.Pair, position int) error {
	f := s.sink.field
	if err := f.Access.Assign(s.o, f, f.ComponentOf(p.Code), p); nil != err {
		return r.parseError(s, p, position, err)
	}
	s.sink.remaining -= len(p.Text()) / 2
	switch {
	case s.sink.remaining < 0:
		return r.parseError(s, p, position, fault.ErrBinaryChunkOutOfRange)
	case 0 == s.sink.remaining:
		s.sink = nil
	}
	return nil
}

func (r *Reader) parseError(s *state, p groupcode.Pair, position int, err error) error {
	kind := "valid"
	if k, e := groupcode.KindOf(p.Code); nil == e {
		kind = k.String()
	}
	return &fault.ParseError{
		Code:     p.Code,
		Value:    p.Value,
		Kind:     kind,
		Position: position,
		Type:     s.t.Name,
		Err:      err,
	}
}

func (r *Reader) report(d Diagnostic) {
	if nil != r.reporter {
		r.reporter.Report(d)
	}
}

func (r *Reader) debugf(format string, arguments ...interface{}) {
	if nil != r.log {
		r.log.Debugf(format, arguments...)
	}
}
