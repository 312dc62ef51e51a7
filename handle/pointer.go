// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handle

// Pointer - a weak, resolve-once reference to another item
//
// holds the raw handle read from the drawing until the resolution
// pass substitutes the item; never owns the target
type Pointer struct {
	handle Handle
	item   Target
}

// NewPointer - an unresolved pointer to a handle
func NewPointer(h Handle) Pointer {
	return Pointer{handle: h}
}

// PointTo - a resolved pointer to an item
func PointTo(t Target) Pointer {
	p := Pointer{}
	p.Point(t)
	return p
}

// Handle - the handle the pointer refers to
//
// once resolved this follows the item, so re-numbering the target
// is reflected here
func (p *Pointer) Handle() Handle {
	if nil != p.item {
		return p.item.Handle()
	}
	return p.handle
}

// RawHandle - the handle as it was read
func (p *Pointer) RawHandle() Handle {
	return p.handle
}

// Item - the resolved item, nil while unresolved
func (p *Pointer) Item() Target {
	return p.item
}

// IsResolved - true once an item has been substituted
func (p *Pointer) IsResolved() bool {
	return nil != p.item
}

// IsSet - true if the pointer refers to anything
func (p *Pointer) IsSet() bool {
	return nil != p.item || Null != p.handle
}

// SetHandle - replace the raw handle, dropping any resolved item
func (p *Pointer) SetHandle(h Handle) {
	p.handle = h
	p.item = nil
}

// Point - refer directly to an item
func (p *Pointer) Point(t Target) {
	p.item = t
	if nil != t {
		p.handle = t.Handle()
	} else {
		p.handle = Null
	}
}

// Clear - reset to unset
func (p *Pointer) Clear() {
	p.handle = Null
	p.item = nil
}

// WriteHandle - the handle to serialise
//
// an unresolved pointer is written as the null handle
func (p *Pointer) WriteHandle() Handle {
	if nil == p.item {
		return Null
	}
	return p.item.Handle()
}

// resolve - look the raw handle up in a table; false if not found
func (p *Pointer) resolve(table *Table) bool {
	if nil != p.item {
		return true
	}
	if Null == p.handle {
		return true
	}
	t, ok := table.Lookup(p.handle)
	if !ok {
		return false
	}
	p.item = t
	return true
}
