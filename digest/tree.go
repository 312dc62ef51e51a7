// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

// Tree - every level of a binary hash tree over item digests
//
// structure is:
//   1. N * item digests
//   2. level 1..m digests
//   3. root digest
//
// an odd digest at the end of a level is paired with itself
func Tree(items []Digest) []Digest {
	count := len(items)
	if 0 == count {
		return []Digest{}
	}

	totalLength := 1 // all items + space for the final root
	for n := count; n > 1; n = (n + 1) / 2 {
		totalLength += n
	}

	tree := make([]Digest, totalLength)
	copy(tree, items)

	n := count
	j := 0
	for workLength := count; workLength > 1; workLength = (workLength + 1) / 2 {
		for i := 0; i < workLength; i += 2 {
			k := j + 1
			if i+1 == workLength {
				k = j // compensate for odd number
			}
			tree[n] = New(append(tree[j][:], tree[k][:]...))
			n += 1
			j = k + 1
		}
	}
	return tree[:n]
}

// Root - the top of the tree, the zero digest for no items
func Root(items []Digest) Digest {
	tree := Tree(items)
	if 0 == len(tree) {
		return Digest{}
	}
	return tree[len(tree)-1]
}
