// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package itemstore

import (
	"bytes"
	"encoding/binary"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/dxfcodec/codec"
	"github.com/bitmark-inc/dxfcodec/digest"
	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/fault"
	"github.com/bitmark-inc/dxfcodec/groupcode"
	"github.com/bitmark-inc/dxfcodec/handle"
	"github.com/bitmark-inc/dxfcodec/pairio"
	"github.com/bitmark-inc/dxfcodec/schema"
)

const (
	countLength   = 8
	handleLength  = 8
	nameSeparator = 0x00
)

// Record - summary of a stored drawing
type Record struct {
	Name    string             `json:"name"`
	Version dxfversion.Version `json:"version"`
	Count   uint64             `json:"count"`
	Root    digest.Digest      `json:"root"`
}

// PutDrawing - write every item at a version and store the pairs
// keyed by handle, replacing anything stored under the same name
//
// items without a handle or not writable at the version are skipped
// and counted
func (s *Store) PutDrawing(name string, version dxfversion.Version, items []schema.Object) (Record, int, error) {
	if !validName(name) {
		return Record{}, 0, fault.ErrInvalidDrawingName
	}

	old, err := s.pool.Items.Fetch(drawingPrefix(name))
	if nil != err {
		return Record{}, 0, err
	}

	w := codec.NewWriter(version, true, s.log)
	batch := new(leveldb.Batch)

	for _, e := range old {
		s.pool.Items.delete(batch, e.Key)
		s.pool.Digests.delete(batch, e.Key)
	}

	skipped := 0
	leaves := make([]digest.Digest, 0, len(items))
	for _, o := range items {
		h := o.Handle()
		if h.IsNull() {
			skipped += 1
			continue
		}
		pairs, ok := w.Write(o)
		if !ok {
			skipped += 1
			continue
		}

		buffer := &bytes.Buffer{}
		err := pairio.WriteAll(buffer, pairs)
		if nil != err {
			return Record{}, 0, err
		}
		d := digest.Pairs(pairs)

		key := itemKey(name, h)
		s.pool.Items.put(batch, key, buffer.Bytes())
		s.pool.Digests.put(batch, key, d[:])
		leaves = append(leaves, d)
	}

	r := Record{
		Name:    name,
		Version: w.Version(),
		Count:   uint64(len(leaves)),
		Root:    digest.Root(leaves),
	}
	s.pool.Drawings.put(batch, []byte(name), packRecord(r))

	err = s.commit(batch)
	if nil != err {
		return Record{}, 0, err
	}
	if nil != s.log {
		s.log.Infof("put: %q  items: %d  skipped: %d  root: %s", name, r.Count, skipped, r.Root)
	}
	return r, skipped, nil
}

// Drawing - the record of a stored drawing
func (s *Store) Drawing(name string) (Record, bool, error) {
	buffer, err := s.pool.Drawings.Get([]byte(name))
	if nil != err || nil == buffer {
		return Record{}, false, err
	}
	r, err := unpackRecord(name, buffer)
	if nil != err {
		return Record{}, false, err
	}
	return r, true, nil
}

// Drawings - records of all stored drawings in name order
func (s *Store) Drawings() ([]Record, error) {
	elements, err := s.pool.Drawings.Fetch(nil)
	if nil != err {
		return nil, err
	}
	records := make([]Record, 0, len(elements))
	for _, e := range elements {
		r, err := unpackRecord(string(e.Key), e.Value)
		if nil != err {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// DeleteDrawing - remove a drawing and all of its items
func (s *Store) DeleteDrawing(name string) error {
	found, err := s.pool.Drawings.Has([]byte(name))
	if nil != err {
		return err
	}
	if !found {
		return fault.ErrDrawingNotFound
	}

	elements, err := s.pool.Items.Fetch(drawingPrefix(name))
	if nil != err {
		return err
	}
	batch := new(leveldb.Batch)
	for _, e := range elements {
		s.pool.Items.delete(batch, e.Key)
		s.pool.Digests.delete(batch, e.Key)
	}
	s.pool.Drawings.delete(batch, []byte(name))
	return s.commit(batch)
}

// Handles - handles of the stored items of a drawing in ascending order
func (s *Store) Handles(name string) ([]handle.Handle, error) {
	elements, err := s.pool.Digests.Fetch(drawingPrefix(name))
	if nil != err {
		return nil, err
	}
	handles := make([]handle.Handle, 0, len(elements))
	for _, e := range elements {
		n := len(e.Key)
		handles = append(handles, handle.Handle(binary.BigEndian.Uint64(e.Key[n-handleLength:])))
	}
	return handles, nil
}

// Pairs - the stored pairs of one item
func (s *Store) Pairs(name string, h handle.Handle) ([]groupcode.Pair, error) {
	buffer, err := s.pool.Items.Get(itemKey(name, h))
	if nil != err {
		return nil, err
	}
	if nil == buffer {
		return nil, fault.ErrItemNotFound
	}
	return pairio.ReadAll(bytes.NewReader(buffer))
}

// Digest - the stored digest of one item
func (s *Store) Digest(name string, h handle.Handle) (digest.Digest, error) {
	var d digest.Digest
	buffer, err := s.pool.Digests.Get(itemKey(name, h))
	if nil != err {
		return d, err
	}
	if nil == buffer {
		return d, fault.ErrItemNotFound
	}
	err = digest.FromBytes(&d, buffer)
	return d, err
}

// Load - read one stored item back into an object
//
// pointers of the result are unresolved
func (s *Store) Load(name string, h handle.Handle, reporter codec.Reporter, log *logger.L) (schema.Object, error) {
	pairs, err := s.Pairs(name, h)
	if nil != err {
		return nil, err
	}
	r := codec.NewReader(schema.Default, reporter, log)
	o, _, err := r.Next(pairs, 0)
	if nil != err {
		return nil, err
	}
	if nil == o {
		return nil, fault.ErrItemNotFound
	}
	return o, nil
}

func validName(name string) bool {
	return "" != name && !strings.ContainsRune(name, nameSeparator)
}

func drawingPrefix(name string) []byte {
	key := make([]byte, 0, len(name)+1)
	key = append(key, name...)
	return append(key, nameSeparator)
}

func itemKey(name string, h handle.Handle) []byte {
	key := drawingPrefix(name)
	n := len(key)
	key = append(key, make([]byte, handleLength)...)
	binary.BigEndian.PutUint64(key[n:], uint64(h))
	return key
}

func packRecord(r Record) []byte {
	buffer := make([]byte, countLength, countLength+digest.Length+8)
	binary.BigEndian.PutUint64(buffer, r.Count)
	buffer = append(buffer, r.Root[:]...)
	return append(buffer, r.Version.AcadVersion()...)
}

func unpackRecord(name string, buffer []byte) (Record, error) {
	if len(buffer) <= countLength+digest.Length {
		return Record{}, fault.ErrInvalidRecord
	}
	r := Record{
		Name:  name,
		Count: binary.BigEndian.Uint64(buffer[:countLength]),
	}
	err := digest.FromBytes(&r.Root, buffer[countLength:countLength+digest.Length])
	if nil != err {
		return Record{}, err
	}
	r.Version, err = dxfversion.Parse(string(buffer[countLength+digest.Length:]))
	if nil != err {
		return Record{}, err
	}
	return r, nil
}
