// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/fault"
	"github.com/bitmark-inc/dxfcodec/groupcode"
	"github.com/bitmark-inc/dxfcodec/handle"
)

// Type - descriptor of one layer of an item's layout
//
// a concrete type is the most derived layer of a chain linked by
// Base; layers without Allocate only contribute fields
type Type struct {
	Name           string
	Tags           []string // dispatch tags, the first is written
	SubclassMarker string
	Base           *Type
	Fields         []*Field
	Flags          []Flag
	MinVersion     dxfversion.Version
	MaxVersion     dxfversion.Version
	HandleCode     int  // zero means groupcode.HandleCode
	WriteOrder     []Op // replaces the default order of this layer's fields

	// Allocate - a zero valued instance, Initialise sets the defaults
	Allocate func() Object

	// Redispatch - after a generic parse, the concrete subtype named
	// by the parsed data; nil keeps the generic instance
	Redispatch func(o Object) *Type

	// Promote - copy the generic instance into the subtype instance
	Promote func(dst Object, src Object)

	prepared   bool
	chain      []*Type // base first
	dispatch   []*Type // derived first
	byCode     map[int][]*Field
	byName     map[string]*Field
	flags      map[string]*Flag
	placesData bool
}

// prepare - index fields and validate the chain; called on registration
func (t *Type) prepare() {
	if t.prepared {
		return
	}
	if nil != t.Base {
		t.Base.prepare()
	}

	t.chain = make([]*Type, 0, 4)
	for layer := t; nil != layer; layer = layer.Base {
		t.chain = append([]*Type{layer}, t.chain...)
	}
	t.dispatch = make([]*Type, len(t.chain))
	for i, layer := range t.chain {
		t.dispatch[len(t.chain)-1-i] = layer
	}

	t.byCode = make(map[int][]*Field)
	t.byName = make(map[string]*Field)
	t.flags = make(map[string]*Flag)
	for _, f := range t.Fields {
		f.layer = t
		for _, code := range f.Codes {
			t.byCode[code] = append(t.byCode[code], f)
		}
	}

	// names resolve derived first
	for _, layer := range t.dispatch {
		for _, f := range layer.Fields {
			if _, ok := t.byName[f.Name]; !ok {
				t.byName[f.Name] = f
			}
		}
		for i := range layer.Flags {
			flag := &layer.Flags[i]
			if _, ok := t.flags[flag.Name]; !ok {
				t.flags[flag.Name] = flag
			}
		}
	}

	for _, flag := range t.flags {
		f, ok := t.byName[flag.Field]
		if !ok {
			fault.Panicf("type: %s flag: %s: %s: %s", t.Name, flag.Name, fault.ErrFieldNotFound, flag.Field)
		}
		if _, ok := f.Access.(IntegerAccessor); !ok || !isIntegerKind(f.Kind) {
			fault.Panicf("type: %s flag: %s: %s", t.Name, flag.Name, fault.ErrNotScalarField)
		}
	}

	for _, layer := range t.chain {
		walk(layer.WriteOrder, func(op Op) {
			switch o := op.(type) {
			case *XDataOp:
				t.placesData = true
			case *FieldRef:
				t.mustHave(o.Name)
			case *ForEach:
				t.mustBeList(o.Field)
			case *ElementRef:
				t.mustBeList(o.Field)
			case *BinaryChunks:
				t.mustHave(o.Field)
				if _, ok := t.byName[o.Field].Access.(BinaryAccessor); !ok {
					fault.Panicf("type: %s script: field: %s is not binary", t.Name, o.Field)
				}
			}
		})
	}

	t.prepared = true
}

func (t *Type) mustHave(name string) {
	if _, ok := t.byName[name]; !ok {
		fault.Panicf("type: %s script: %s: %s", t.Name, fault.ErrFieldNotFound, name)
	}
}

func (t *Type) mustBeList(name string) {
	t.mustHave(name)
	if _, ok := t.byName[name].Access.(ListAccessor); !ok {
		fault.Panicf("type: %s script: field: %s is not a list", t.Name, name)
	}
}

func isIntegerKind(k groupcode.Kind) bool {
	return groupcode.Short == k || groupcode.Integer == k || groupcode.Long == k
}

// Tag - the tag written for the type; subtypes use their base's tag
func (t *Type) Tag() string {
	for layer := t; nil != layer; layer = layer.Base {
		if len(layer.Tags) > 0 {
			return layer.Tags[0]
		}
	}
	return ""
}

// IsConcrete - true if instances can be created
func (t *Type) IsConcrete() bool {
	return nil != t.Allocate
}

// IsA - true if other is this type or one of its bases
func (t *Type) IsA(other *Type) bool {
	for layer := t; nil != layer; layer = layer.Base {
		if layer == other {
			return true
		}
	}
	return false
}

// Chain - the layers, base first
func (t *Type) Chain() []*Type {
	t.prepare()
	return t.chain
}

// DispatchChain - the layers, most derived first
func (t *Type) DispatchChain() []*Type {
	t.prepare()
	return t.dispatch
}

// AllFields - every field of the chain, base first
func (t *Type) AllFields() []*Field {
	fields := make([]*Field, 0, 16)
	for _, layer := range t.Chain() {
		fields = append(fields, layer.Fields...)
	}
	return fields
}

// FieldsFor - the fields of this layer only that read a code, in
// declared order
func (t *Type) FieldsFor(code int) []*Field {
	t.prepare()
	return t.byCode[code]
}

// Field - a field by name, searching derived first
func (t *Type) Field(name string) (*Field, error) {
	t.prepare()
	f, ok := t.byName[name]
	if !ok {
		return nil, fault.ErrFieldNotFound
	}
	return f, nil
}

// Flag - a flag by name, searching derived first
func (t *Type) Flag(name string) (*Flag, error) {
	t.prepare()
	flag, ok := t.flags[name]
	if !ok {
		return nil, fault.ErrFlagNotFound
	}
	return flag, nil
}

// FlagNames - the names of every flag of the chain
func (t *Type) FlagNames() []string {
	names := make([]string, 0, 8)
	for _, layer := range t.Chain() {
		for _, flag := range layer.Flags {
			names = append(names, flag.Name)
		}
	}
	return names
}

// PlacesXData - true if a script positions the XData block
func (t *Type) PlacesXData() bool {
	t.prepare()
	return t.placesData
}

// Handle - the code carrying the item's own handle
func (t *Type) Handle() int {
	for layer := t; nil != layer; layer = layer.Base {
		if 0 != layer.HandleCode {
			return layer.HandleCode
		}
	}
	return groupcode.HandleCode
}

// SupportsVersion - true if every layer of the chain exists at v
func (t *Type) SupportsVersion(v dxfversion.Version) bool {
	for layer := t; nil != layer; layer = layer.Base {
		if !v.InRange(layer.MinVersion, layer.MaxVersion) {
			return false
		}
	}
	return true
}

// New - an initialised instance
func (t *Type) New() Object {
	if nil == t.Allocate {
		fault.Panicf("type: %s: is not concrete", t.Name)
	}
	o := t.Allocate()
	t.Initialise(o)
	return o
}

// Initialise - reset every field of the chain to its default, base first
func (t *Type) Initialise(o Object) {
	o.ItemBase().Initialise()
	for _, layer := range t.Chain() {
		for _, f := range layer.Fields {
			f.Access.Reset(o)
		}
	}
}

// Get - the pairs a field holds, regardless of version
func (t *Type) Get(o Object, name string) ([]groupcode.Pair, error) {
	if o.Descriptor() != t {
		return nil, fault.ErrWrongTypeForDescriptor
	}
	f, err := t.Field(name)
	if nil != err {
		return nil, err
	}
	return f.Access.Pairs(o, f), nil
}

// Set - assign a pair to a field from outside the engine
//
// the pair's code selects the component of a multi-code field;
// list fields append
func (t *Type) Set(o Object, name string, p groupcode.Pair) error {
	if o.Descriptor() != t {
		return fault.ErrWrongTypeForDescriptor
	}
	f, err := t.Field(name)
	if nil != err {
		return err
	}
	if f.ReadOnly {
		return fault.ErrFieldNotSettable
	}
	component := f.ComponentOf(p.Code)
	if component < 0 {
		return fault.ErrUnsupportedCode
	}
	return f.Access.Assign(o, f, component, p)
}

// VisitPointers - every pointer of the object's fields and its owner
func (t *Type) VisitPointers(o Object, fn func(*handle.Pointer)) {
	fn(o.ItemBase().OwnerPointer())
	for _, layer := range t.Chain() {
		for _, f := range layer.Fields {
			if pa, ok := f.Access.(PointerAccessor); ok {
				pa.VisitPointers(o, fn)
			}
		}
	}
}

// Linker - adapt an object to the resolver
func Linker(o Object) handle.Linker {
	return linker{Object: o}
}

type linker struct {
	Object
}

func (l linker) Target() handle.Target {
	return l.Object
}

func (l linker) VisitPointers(fn func(*handle.Pointer)) {
	l.Descriptor().VisitPointers(l.Object, fn)
}
