// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package itemstore

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/dxfcodec/fault"
)

// Pool - one prefix of the database
type Pool struct {
	prefix byte
	limit  []byte
	store  *Store
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *Pool) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair
func (p *Pool) Put(key []byte, value []byte) error {
	batch := new(leveldb.Batch)
	p.put(batch, key, value)
	return p.store.commit(batch)
}

// Delete - remove a key
func (p *Pool) Delete(key []byte) error {
	batch := new(leveldb.Batch)
	p.delete(batch, key)
	return p.store.commit(batch)
}

func (p *Pool) put(batch *leveldb.Batch, key []byte, value []byte) {
	k := p.prefixKey(key)
	p.store.cache.Set(dbPut, string(k), value)
	batch.Put(k, value)
}

func (p *Pool) delete(batch *leveldb.Batch, key []byte) {
	k := p.prefixKey(key)
	p.store.cache.Set(dbDelete, string(k), nil)
	batch.Delete(k)
}

// Get - read a value, nil if not found
//
// this returns the actual element - copy the result if it must be preserved
func (p *Pool) Get(key []byte) ([]byte, error) {
	k := p.prefixKey(key)
	if value, found, cached := p.store.cache.Get(string(k)); cached {
		if !found {
			return nil, nil
		}
		return value, nil
	}

	p.store.RLock()
	defer p.store.RUnlock()
	if nil == p.store.db {
		return nil, fault.ErrNotInitialised
	}
	value, err := p.store.db.Get(k, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	} else if nil != err {
		return nil, err
	}
	p.store.cache.Set(dbPut, string(k), value)
	return value, nil
}

// Has - check if a key exists
func (p *Pool) Has(key []byte) (bool, error) {
	value, err := p.Get(key)
	return nil != value, err
}

// Fetch - every element whose key starts with a key prefix, in key order
//
// the pool prefix is stripped from the returned keys
func (p *Pool) Fetch(keyPrefix []byte) ([]Element, error) {
	searchRange := ldb_util.BytesPrefix(p.prefixKey(keyPrefix))
	if 0 == len(keyPrefix) {
		searchRange = &ldb_util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		}
	}

	p.store.RLock()
	defer p.store.RUnlock()
	if nil == p.store.db {
		return nil, fault.ErrNotInitialised
	}

	iter := p.store.db.NewIterator(searchRange, nil)
	results := make([]Element, 0, 16)
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		results = append(results, Element{
			Key:   dataKey,
			Value: dataValue,
		})
	}
	iter.Release()
	return results, iter.Error()
}

func (s *Store) commit(batch *leveldb.Batch) error {
	s.RLock()
	defer s.RUnlock()
	if nil == s.db {
		return fault.ErrNotInitialised
	}
	err := s.db.Write(batch, nil)
	if nil != err {
		s.cache.Clear()
	}
	return err
}
