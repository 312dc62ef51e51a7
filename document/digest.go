// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package document

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/dxfcodec/codec"
	"github.com/bitmark-inc/dxfcodec/digest"
	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/handle"
)

// ItemDigest - digest of one written item
type ItemDigest struct {
	Handle handle.Handle `json:"handle"`
	Type   string        `json:"type"`
	Digest digest.Digest `json:"digest"`
}

// Digests - the digest of every item written at a version and the
// root of the tree over them in document order
//
// items that cannot be written at the version do not contribute
func (d *Drawing) Digests(version dxfversion.Version, log *logger.L) (digest.Digest, []ItemDigest) {
	w := codec.NewWriter(version, true, log)

	items := d.Items()
	result := make([]ItemDigest, 0, len(items))
	leaves := make([]digest.Digest, 0, len(items))
	for _, o := range items {
		pairs, ok := w.Write(o)
		if !ok {
			continue
		}
		id := ItemDigest{
			Handle: o.Handle(),
			Type:   o.Descriptor().Name,
			Digest: digest.Pairs(pairs),
		}
		result = append(result, id)
		leaves = append(leaves, id.Digest)
	}
	return digest.Root(leaves), result
}
