// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/dxfcodec/groupcode"
	"github.com/bitmark-inc/dxfcodec/handle"
	"github.com/bitmark-inc/dxfcodec/item"
)

type thing struct {
	item.Base
}

func TestBase(t *testing.T) {
	owner := &thing{}
	owner.Initialise()
	owner.SetHandle(0x1a)

	x := &thing{}
	x.Initialise()
	x.SetHandle(0x2b)
	x.SetOwner(owner)

	var o item.Object = x
	assert.Equal(t, handle.Handle(0x2b), o.Handle(), "handle")
	assert.Equal(t, handle.Handle(0x1a), o.ItemBase().OwnerHandle(), "owner handle")
	assert.Same(t, owner, o.ItemBase().Owner(), "owner")

	y := &thing{}
	y.Initialise()
	x.XData.Append("ACAD", groupcode.NewString(1000, "one"))
	y.CopyFrom(x.Base.ItemBase())
	x.XData.Append("ACAD", groupcode.NewString(1000, "two"))

	assert.Equal(t, handle.Handle(0x2b), y.Handle(), "copied handle")
	assert.Same(t, owner, y.Owner(), "copied owner")
	items, ok := y.XData.Get("ACAD")
	assert.True(t, ok, "copied xdata")
	assert.Equal(t, 1, len(items), "copy shares xdata storage")
}

func TestXDataOrder(t *testing.T) {
	var x item.XData
	x.Append("B", groupcode.NewString(1000, "b1"))
	x.Append("A", groupcode.NewString(1000, "a1"))
	x.Append("B", groupcode.NewShort(1070, 2))

	assert.Equal(t, []string{"B", "A"}, x.Names(), "insertion order")

	expected := []groupcode.Pair{
		{Code: 1001, Value: "B"},
		{Code: 1000, Value: "b1"},
		{Code: 1070, Value: "2"},
		{Code: 1001, Value: "A"},
		{Code: 1000, Value: "a1"},
	}
	assert.Equal(t, expected, x.Pairs(), "pairs")

	x.Set("B", nil)
	items, ok := x.Get("B")
	assert.True(t, ok, "replaced application missing")
	assert.Equal(t, 0, len(items), "replace")

	x.Delete("B")
	assert.Equal(t, []string{"A"}, x.Names(), "delete")
}

func TestExtensionGroupPairs(t *testing.T) {
	g := item.ExtensionGroup{
		Name:  "ACAD_REACTORS",
		Items: []groupcode.Pair{groupcode.NewString(330, "1F")},
	}
	expected := []groupcode.Pair{
		{Code: 102, Value: "{ACAD_REACTORS"},
		{Code: 330, Value: "1F"},
		{Code: 102, Value: "}"},
	}
	assert.Equal(t, expected, g.Pairs(), "group pairs")
}
