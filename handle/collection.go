// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handle

import (
	"github.com/bitmark-inc/dxfcodec/fault"
)

// Collection - ordered pointers with a declared minimum count
//
// a removal that would leave fewer than the minimum is rejected and
// the collection is unchanged
type Collection struct {
	pointers []*Pointer
	minimum  int
}

// NewCollection - an empty collection
func NewCollection(minimumCount int) Collection {
	return Collection{
		pointers: make([]*Pointer, 0),
		minimum:  minimumCount,
	}
}

// MinimumCount - the declared minimum
func (c *Collection) MinimumCount() int {
	return c.minimum
}

// Len - number of pointers held
func (c *Collection) Len() int {
	return len(c.pointers)
}

// At - pointer by index
func (c *Collection) At(i int) *Pointer {
	return c.pointers[i]
}

// All - the pointers in order; the slice must not be modified
func (c *Collection) All() []*Pointer {
	return c.pointers
}

// AppendHandle - append an unresolved pointer
func (c *Collection) AppendHandle(h Handle) {
	p := NewPointer(h)
	c.pointers = append(c.pointers, &p)
}

// Append - append a resolved pointer
func (c *Collection) Append(t Target) {
	p := PointTo(t)
	c.pointers = append(c.pointers, &p)
}

// RemoveAt - remove by index
func (c *Collection) RemoveAt(i int) error {
	if i < 0 || i >= len(c.pointers) {
		return fault.ErrIndexOutOfRange
	}
	if len(c.pointers)-1 < c.minimum {
		return fault.ErrMinimumCount
	}
	c.pointers = append(c.pointers[:i], c.pointers[i+1:]...)
	return nil
}

// Remove - remove the first pointer referring to an item
func (c *Collection) Remove(t Target) error {
	for i, p := range c.pointers {
		if p.item == t {
			return c.RemoveAt(i)
		}
	}
	return fault.ErrIndexOutOfRange
}

// Clear - remove everything, subject to the minimum
func (c *Collection) Clear() error {
	if c.minimum > 0 && len(c.pointers) > 0 {
		return fault.ErrMinimumCount
	}
	c.pointers = c.pointers[:0]
	return nil
}

// Items - the resolved items in order, skipping unresolved pointers
func (c *Collection) Items() []Target {
	items := make([]Target, 0, len(c.pointers))
	for _, p := range c.pointers {
		if nil != p.item {
			items = append(items, p.item)
		}
	}
	return items
}

// WriteHandles - handles to serialise, unresolved entries omitted
func (c *Collection) WriteHandles() []Handle {
	handles := make([]Handle, 0, len(c.pointers))
	for _, p := range c.pointers {
		h := p.WriteHandle()
		if Null != h {
			handles = append(handles, h)
		}
	}
	return handles
}
