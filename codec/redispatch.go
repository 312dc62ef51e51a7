// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"github.com/bitmark-inc/dxfcodec/schema"
)

// redispatch - replace a generically parsed item by the subtype its
// own data names
//
// the subtype instance takes over everything already assigned, then
// the pairs the generic pass could not place are replayed against
// the subtype's fields
func (r *Reader) redispatch(s *state) (schema.Object, error) {
	if nil == s.t.Redispatch {
		return s.o, nil
	}

	sub := s.t.Redispatch(s.o)
	if nil == sub || sub == s.t {
		if nil == sub {
			r.report(Diagnostic{Kind: UnknownSubtype, Tag: s.t.Name})
			r.debugf("%s: no subtype, generic item kept", s.t.Name)
		}
		return s.o, nil
	}

	o := sub.New()
	s.t.Promote(o, s.o)

	replay := newState(sub, o)
	replay.owner = true
	for _, e := range s.excess {
		handled, err := r.assign(replay, e.pair, e.position)
		if nil != err {
			return nil, err
		}
		if !handled {
			replay.excess = append(replay.excess, e)
		}
	}

	r.stats.Redispatched.Increment()
	r.report(Diagnostic{Kind: Redispatched, Tag: sub.Name})
	r.debugf("%s: redispatched to: %s replayed: %d unplaced: %d", s.t.Name, sub.Name, len(s.excess), len(replay.excess))
	return o, nil
}
