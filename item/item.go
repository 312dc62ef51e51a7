// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package item - state common to every entity, container object and
// table entry: identity, owner, extension data groups and XData
package item

import (
	"github.com/bitmark-inc/dxfcodec/handle"
)

// Object - implemented by embedding Base
type Object interface {
	handle.Target
	ItemBase() *Base
}

// Base - the part of an item the engine manages generically
type Base struct {
	handle        handle.Handle
	owner         handle.Pointer
	ExtensionData []ExtensionGroup
	XData         XData
}

// Initialise - reset to the freshly constructed state
func (b *Base) Initialise() {
	b.handle = handle.Null
	b.owner = handle.Pointer{}
	b.ExtensionData = make([]ExtensionGroup, 0)
	b.XData = XData{}
}

// ItemBase - access from the Object interface
func (b *Base) ItemBase() *Base {
	return b
}

// Handle - identity of the item
func (b *Base) Handle() handle.Handle {
	return b.handle
}

// SetHandle - assign identity
func (b *Base) SetHandle(h handle.Handle) {
	b.handle = h
}

// OwnerPointer - the owner reference for the engine and resolver
func (b *Base) OwnerPointer() *handle.Pointer {
	return &b.owner
}

// Owner - the resolved owner, nil if absent or unresolved
func (b *Base) Owner() handle.Target {
	return b.owner.Item()
}

// OwnerHandle - the owner's handle (raw if unresolved)
func (b *Base) OwnerHandle() handle.Handle {
	return b.owner.Handle()
}

// SetOwner - refer to an owning item
func (b *Base) SetOwner(owner handle.Target) {
	b.owner.Point(owner)
}

// CopyFrom - take over identity, owner and extension data from
// another item
//
// used when a generically parsed item is re-created as a more
// specific type
func (b *Base) CopyFrom(other *Base) {
	b.handle = other.handle
	b.owner = other.owner
	b.ExtensionData = append(make([]ExtensionGroup, 0, len(other.ExtensionData)), other.ExtensionData...)
	b.XData = other.XData.Clone()
}
