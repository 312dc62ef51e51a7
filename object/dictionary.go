// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package object

import (
	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/fault"
	"github.com/bitmark-inc/dxfcodec/handle"
	"github.com/bitmark-inc/dxfcodec/item"
	"github.com/bitmark-inc/dxfcodec/schema"
)

// duplicate record cloning
const (
	CloningNotApplicable = 0
	CloningKeepExisting  = 1
	CloningUseClone      = 2
)

// Dictionary - named references to other objects
//
// Names and Entries are parallel: the name at index i labels the
// entry at index i
type Dictionary struct {
	item.Base
	HardOwner bool
	Cloning   int16
	Names     []string
	Entries   handle.Collection
}

type dictionaryHolder interface {
	DictionaryBase() *Dictionary
}

// DictionaryBase - the dictionary layer
func (d *Dictionary) DictionaryBase() *Dictionary { return d }

// Descriptor - the type of the item
func (*Dictionary) Descriptor() *schema.Type { return DictionaryType }

func dictionary(o schema.Object) *Dictionary { return o.(dictionaryHolder).DictionaryBase() }

// DictionaryType - DICTIONARY
var DictionaryType = &schema.Type{
	Name:           "DICTIONARY",
	Tags:           []string{"DICTIONARY"},
	SubclassMarker: "AcDbDictionary",
	Fields: []*schema.Field{
		schema.Bool("HardOwner", 280, false, func(o schema.Object) *bool { return &dictionary(o).HardOwner }).Since(dxfversion.R2000).Suppress(),
		schema.Short("Cloning", 281, CloningKeepExisting, func(o schema.Object) *int16 { return &dictionary(o).Cloning }).Since(dxfversion.R2000),
		schema.StringList("Names", 3, func(o schema.Object) *[]string { return &dictionary(o).Names }),
		schema.Pointers("Entries", 350, 0, func(o schema.Object) *handle.Collection { return &dictionary(o).Entries }),
	},
	WriteOrder: []schema.Op{
		schema.EmitField("HardOwner"),
		schema.EmitField("Cloning"),
		schema.Each("Names",
			schema.EmitElement("Names", 3),
			schema.EmitElement("Entries", 350),
		).Where(entryWritten),
	},
	Allocate: func() schema.Object { return &Dictionary{} },
}

// a name without an entry handle would pair with the next entry
// when read back
func entryWritten(o schema.Object, i int) bool {
	entries := &dictionary(o).Entries
	return i < entries.Len() && handle.Null != entries.At(i).WriteHandle()
}

// NewDictionary - an initialised, empty DICTIONARY
func NewDictionary() *Dictionary {
	return DictionaryType.New().(*Dictionary)
}

// Len - number of entries
func (d *Dictionary) Len() int {
	return len(d.Names)
}

// Add - append a named entry
func (d *Dictionary) Add(name string, target handle.Target) error {
	for _, n := range d.Names {
		if n == name {
			return fault.ErrDuplicateEntry
		}
	}
	d.Names = append(d.Names, name)
	d.Entries.Append(target)
	return nil
}

// Lookup - the pointer of a named entry
func (d *Dictionary) Lookup(name string) (*handle.Pointer, bool) {
	for i, n := range d.Names {
		if n == name && i < d.Entries.Len() {
			return d.Entries.At(i), true
		}
	}
	return nil, false
}

// Remove - drop a named entry
func (d *Dictionary) Remove(name string) error {
	for i, n := range d.Names {
		if n != name {
			continue
		}
		if i < d.Entries.Len() {
			if err := d.Entries.RemoveAt(i); nil != err {
				return err
			}
		}
		d.Names = append(d.Names[:i], d.Names[i+1:]...)
		return nil
	}
	return fault.ErrEntryNotFound
}

// DictionaryWithDefault - a dictionary that answers unknown names
// with a default object
type DictionaryWithDefault struct {
	Dictionary
	Default handle.Pointer
}

// Descriptor - the type of the item
func (*DictionaryWithDefault) Descriptor() *schema.Type { return DictionaryWithDefaultType }

func withDefault(o schema.Object) *DictionaryWithDefault { return o.(*DictionaryWithDefault) }

// DictionaryWithDefaultType - ACDBDICTIONARYWDFLT
var DictionaryWithDefaultType = &schema.Type{
	Name:           "ACDBDICTIONARYWDFLT",
	Tags:           []string{"ACDBDICTIONARYWDFLT"},
	SubclassMarker: "AcDbDictionaryWithDefault",
	Base:           DictionaryType,
	Fields: []*schema.Field{
		schema.Pointer("Default", 340, func(o schema.Object) *handle.Pointer { return &withDefault(o).Default }),
	},
	Allocate: func() schema.Object { return &DictionaryWithDefault{} },
}

// NewDictionaryWithDefault - an initialised ACDBDICTIONARYWDFLT
func NewDictionaryWithDefault(fallback handle.Target) *DictionaryWithDefault {
	d := DictionaryWithDefaultType.New().(*DictionaryWithDefault)
	d.Default.Point(fallback)
	return d
}

// Lookup - the named entry, or the default pointer
func (d *DictionaryWithDefault) Lookup(name string) (*handle.Pointer, bool) {
	if p, ok := d.Dictionary.Lookup(name); ok {
		return p, true
	}
	return &d.Default, d.Default.IsSet()
}
