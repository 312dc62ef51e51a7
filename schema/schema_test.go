// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/dxfcodec/dxfversion"
	"github.com/bitmark-inc/dxfcodec/fault"
	"github.com/bitmark-inc/dxfcodec/geometry"
	"github.com/bitmark-inc/dxfcodec/groupcode"
	"github.com/bitmark-inc/dxfcodec/handle"
	"github.com/bitmark-inc/dxfcodec/item"
	"github.com/bitmark-inc/dxfcodec/schema"
)

type vertex struct {
	Location geometry.Point
	Bulge    float64
}

type sample struct {
	item.Base
	Name     string
	Count    int16
	Visible  bool
	Location geometry.Point
	Values   []float64
	Target   handle.Pointer
	Always   handle.Pointer
	Refs     handle.Collection
	Data     []byte
	Vertices []vertex
}

func (*sample) Descriptor() *schema.Type { return sampleType }

func ref(o schema.Object) *sample { return o.(*sample) }

var sampleType = &schema.Type{
	Name:           "SAMPLE",
	Tags:           []string{"SAMPLE"},
	SubclassMarker: "AcDbSample",
	Fields: []*schema.Field{
		schema.String("Name", 1, "none", func(o schema.Object) *string { return &ref(o).Name }),
		schema.Short("Count", 70, 3, func(o schema.Object) *int16 { return &ref(o).Count }).Computed(),
		schema.Bool("Visible", 60, true, func(o schema.Object) *bool { return &ref(o).Visible }),
		schema.Point("Location", 10, geometry.NewPoint(1, 2, 3), func(o schema.Object) *geometry.Point { return &ref(o).Location }),
		schema.DoubleList("Values", 40, func(o schema.Object) *[]float64 { return &ref(o).Values }),
		schema.Pointer("Target", 340, func(o schema.Object) *handle.Pointer { return &ref(o).Target }),
		schema.Pointer("Always", 360, func(o schema.Object) *handle.Pointer { return &ref(o).Always }).Always(),
		schema.Pointers("Refs", 330, 1, func(o schema.Object) *handle.Collection { return &ref(o).Refs }),
		schema.Chunked("Data", 92, 310, func(o schema.Object) *[]byte { return &ref(o).Data }),
		schema.Records("Vertices", func(o schema.Object) *[]vertex { return &ref(o).Vertices },
			schema.PointMember(11, 0, func(v *vertex) *geometry.Point { return &v.Location }),
			schema.PointMember(21, 1, func(v *vertex) *geometry.Point { return &v.Location }),
			schema.ScalarMember(42, func(v *vertex) *float64 { return &v.Bulge }),
		),
	},
	Flags: []schema.Flag{
		{Name: "Low", Field: "Count", Mask: 1},
	},
	Allocate: func() schema.Object { return &sample{} },
}

func TestNewAppliesDefaults(t *testing.T) {
	s := sampleType.New().(*sample)

	assert.Equal(t, "none", s.Name, "string default")
	assert.Equal(t, int16(3), s.Count, "short default")
	assert.True(t, s.Visible, "bool default")
	assert.Equal(t, geometry.NewPoint(1, 2, 3), s.Location, "point default")
	assert.NotNil(t, s.Values, "list must be empty, not nil")
	assert.Equal(t, 0, len(s.Values), "list not empty")
	assert.NotNil(t, s.Vertices, "records must be empty, not nil")
	assert.Equal(t, 1, s.Refs.MinimumCount(), "collection minimum")
	assert.False(t, s.Target.IsSet(), "pointer default")
	assert.Equal(t, handle.Null, s.Handle(), "handle default")
}

func TestSetAndGet(t *testing.T) {
	s := sampleType.New()

	err := sampleType.Set(s, "Name", groupcode.NewString(1, "hello"))
	assert.Nil(t, err, "set name")

	pairs, err := sampleType.Get(s, "Name")
	assert.Nil(t, err, "get name")
	assert.Equal(t, []groupcode.Pair{{Code: 1, Value: "hello"}}, pairs, "name pairs")

	err = sampleType.Set(s, "Count", groupcode.NewShort(70, 9))
	assert.Equal(t, fault.ErrFieldNotSettable, err, "computed field was set")

	err = sampleType.Set(s, "Name", groupcode.NewString(2, "x"))
	assert.Equal(t, fault.ErrUnsupportedCode, err, "wrong code accepted")

	err = sampleType.Set(s, "Missing", groupcode.NewString(1, "x"))
	assert.Equal(t, fault.ErrFieldNotFound, err, "missing field")

	err = sampleType.Set(s, "Values", groupcode.NewString(40, "abc"))
	assert.True(t, fault.IsErrInvalid(err), "malformed real accepted: %v", err)
}

func TestCompositeCarriesComponents(t *testing.T) {
	s := sampleType.New().(*sample)

	assert.Nil(t, sampleType.Set(s, "Location", groupcode.NewDouble(30, 9)), "z")
	assert.Nil(t, sampleType.Set(s, "Location", groupcode.NewDouble(10, 7)), "x")

	assert.Equal(t, geometry.NewPoint(7, 2, 9), s.Location, "components not carried")

	pairs, _ := sampleType.Get(s, "Location")
	expected := []groupcode.Pair{
		{Code: 10, Value: "7.0"},
		{Code: 20, Value: "2.0"},
		{Code: 30, Value: "9.0"},
	}
	assert.Equal(t, expected, pairs, "composite pairs")
}

func TestBoolOnShortCode(t *testing.T) {
	s := sampleType.New().(*sample)
	s.Visible = false

	pairs, _ := sampleType.Get(s, "Visible")
	assert.Equal(t, []groupcode.Pair{{Code: 60, Value: "0"}}, pairs, "bool written as short")

	assert.Nil(t, sampleType.Set(s, "Visible", groupcode.New(60, "1")), "set")
	assert.True(t, s.Visible, "bool read from short")
}

func TestRecordsFirstMemberStartsElement(t *testing.T) {
	s := sampleType.New().(*sample)

	for _, p := range []groupcode.Pair{
		groupcode.NewDouble(11, 1),
		groupcode.NewDouble(21, 2),
		groupcode.NewDouble(42, 0.5),
		groupcode.NewDouble(11, 3),
		groupcode.NewDouble(21, 4),
	} {
		assert.Nil(t, sampleType.Set(s, "Vertices", p), "set %v", p)
	}

	expected := []vertex{
		{Location: geometry.NewPoint(1, 2, 0), Bulge: 0.5},
		{Location: geometry.NewPoint(3, 4, 0)},
	}
	assert.Equal(t, expected, s.Vertices, "vertices")

	f, _ := sampleType.Field("Vertices")
	list := f.Access.(schema.ListAccessor)
	assert.Equal(t, 2, list.Len(s), "length")
	assert.Equal(t, []groupcode.Pair{
		{Code: 11, Value: "3.0"},
		{Code: 21, Value: "4.0"},
		{Code: 42, Value: "0.0"},
	}, list.ElementPairs(s, f, 1), "element pairs")
	assert.Nil(t, list.ElementPairs(s, f, 2), "out of range element")
}

func TestChunkedSplit(t *testing.T) {
	s := sampleType.New().(*sample)
	s.Data = bytes.Repeat([]byte{0xab}, 300)

	pairs, _ := sampleType.Get(s, "Data")
	if !assert.Equal(t, 4, len(pairs), "pair count") {
		return
	}
	assert.Equal(t, groupcode.Pair{Code: 92, Value: "300"}, pairs[0], "length pair")
	assert.Equal(t, 2*127, len(pairs[1].Value), "first chunk")
	assert.Equal(t, 2*127, len(pairs[2].Value), "second chunk")
	assert.Equal(t, 2*46, len(pairs[3].Value), "last chunk")

	f, _ := sampleType.Field("Data")
	n, err := f.Chunk.Declared(pairs[0])
	assert.Nil(t, err, "declared")
	assert.Equal(t, 300, n, "declared length")
}

func TestPointerWrite(t *testing.T) {
	s := sampleType.New().(*sample)

	pairs, _ := sampleType.Get(s, "Target")
	assert.Equal(t, 0, len(pairs), "null pointer written")

	pairs, _ = sampleType.Get(s, "Always")
	assert.Equal(t, []groupcode.Pair{{Code: 360, Value: "0"}}, pairs, "always pointer")

	s.Target.SetHandle(0x2f)
	pairs, _ = sampleType.Get(s, "Target")
	assert.Equal(t, 0, len(pairs), "unresolved pointer written")

	other := sampleType.New()
	other.ItemBase().SetHandle(0x2f)
	s.Target.Point(other)
	pairs, _ = sampleType.Get(s, "Target")
	assert.Equal(t, []groupcode.Pair{{Code: 340, Value: "2F"}}, pairs, "resolved pointer")

	visited := 0
	sampleType.VisitPointers(s, func(*handle.Pointer) { visited += 1 })
	assert.Equal(t, 3, visited, "owner and two pointers")
}

func TestFieldPredicate(t *testing.T) {
	s := sampleType.New()
	f := schema.Double("Gated", 48, 1, func(schema.Object) *float64 {
		v := 1.0
		return &v
	}).Since(dxfversion.R13).Suppress()

	assert.False(t, f.ShouldWrite(s, dxfversion.R12), "below minimum")
	assert.False(t, f.ShouldWrite(s, dxfversion.R14), "default suppressed")

	g := schema.Double("Plain", 48, 0, func(schema.Object) *float64 {
		v := 1.0
		return &v
	}).Until(dxfversion.R14).When(func(schema.Object) bool { return true })

	assert.True(t, g.ShouldWrite(s, dxfversion.R12), "in range")
	assert.False(t, g.ShouldWrite(s, dxfversion.R2000), "above maximum")
}

func TestKindMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		schema.Double("Bad", 1, 0, nil)
	}, "real field on a string code")
	assert.Panics(t, func() {
		schema.Point("Bad", 60, geometry.Origin, nil)
	}, "point on a short code")
	assert.Panics(t, func() {
		schema.Chunked("Bad", 1, 310, nil)
	}, "text length code")
}

func TestChain(t *testing.T) {
	base := &schema.Type{
		Name:           "BASE",
		SubclassMarker: "AcDbBase",
		Fields: []*schema.Field{
			schema.String("Layer", 8, "0", func(schema.Object) *string { return new(string) }),
		},
	}
	derived := &schema.Type{
		Name:           "DERIVED",
		Tags:           []string{"DERIVED"},
		SubclassMarker: "AcDbDerived",
		Base:           base,
		Fields: []*schema.Field{
			schema.String("Layer", 8, "1", func(schema.Object) *string { return new(string) }),
			schema.Double("Width", 40, 0, func(schema.Object) *float64 { return new(float64) }),
			schema.Double("Height", 40, 0, func(schema.Object) *float64 { return new(float64) }),
		},
	}

	assert.Equal(t, []*schema.Type{base, derived}, derived.Chain(), "base first")
	assert.Equal(t, []*schema.Type{derived, base}, derived.DispatchChain(), "derived first")
	assert.Equal(t, 4, len(derived.AllFields()), "all fields")

	f, err := derived.Field("Layer")
	assert.Nil(t, err, "field")
	assert.Same(t, derived, f.Layer(), "derived field shadows base")

	shared := derived.FieldsFor(40)
	assert.Equal(t, 2, len(shared), "shared code fields")
	assert.Equal(t, "Width", shared[0].Name, "declared order")
	assert.Equal(t, "Height", shared[1].Name, "declared order")

	assert.Equal(t, "DERIVED", derived.Tag(), "tag")
	assert.True(t, derived.IsA(base), "is a base")
	assert.False(t, base.IsA(derived), "base is not derived")
	assert.False(t, base.IsConcrete(), "abstract")
	assert.Equal(t, groupcode.HandleCode, derived.Handle(), "handle code")
}

func TestSupportsVersion(t *testing.T) {
	base := &schema.Type{Name: "B", MinVersion: dxfversion.R13}
	derived := &schema.Type{Name: "D", Base: base, MaxVersion: dxfversion.R2004}

	assert.False(t, derived.SupportsVersion(dxfversion.R12), "base minimum")
	assert.True(t, derived.SupportsVersion(dxfversion.R2000), "in range")
	assert.False(t, derived.SupportsVersion(dxfversion.R2007), "maximum")
}

func TestRegistry(t *testing.T) {
	r := schema.NewRegistry()

	a := &schema.Type{Name: "A", Tags: []string{"A", "ALPHA"}}
	assert.Nil(t, r.Register(a), "register")
	assert.Equal(t, fault.ErrDuplicateTypeName, r.Register(&schema.Type{Name: "A"}), "duplicate name")
	assert.Equal(t, fault.ErrDuplicateTag, r.Register(&schema.Type{Name: "B", Tags: []string{"ALPHA"}}), "duplicate tag")

	d, ok := r.ForTag("ALPHA")
	assert.True(t, ok, "alias tag")
	assert.Same(t, a, d, "alias resolves to type")

	assert.Nil(t, r.Alias("OLD_A", "A"), "alias")
	assert.Equal(t, fault.ErrDescriptorNotFound, r.Alias("X", "NONE"), "alias of missing")

	_, ok = r.ForTag("FUTURE")
	assert.False(t, ok, "unknown tag")

	sub := &schema.Type{Name: "A_SUB", Base: a}
	assert.Nil(t, r.Register(sub), "untagged")
	found, err := r.Lookup("A_SUB")
	assert.Nil(t, err, "lookup")
	assert.Same(t, sub, found, "lookup by name")

	assert.Equal(t, []string{"A", "ALPHA", "OLD_A"}, r.Tags(), "tags")
	assert.Equal(t, 2, len(r.Types()), "types")

	r.Seal()
	assert.True(t, r.IsSealed(), "sealed")
	assert.Equal(t, fault.ErrRegistrySealed, r.Register(&schema.Type{Name: "C"}), "register after seal")
}

func TestFlagValidation(t *testing.T) {
	r := schema.NewRegistry()
	bad := &schema.Type{
		Name: "BAD_FLAG",
		Fields: []*schema.Field{
			schema.String("Name", 1, "", func(schema.Object) *string { return new(string) }),
		},
		Flags: []schema.Flag{{Name: "F", Field: "Name", Mask: 1}},
	}
	assert.Panics(t, func() { _ = r.Register(bad) }, "flag on text field")

	flag, err := sampleType.Flag("Low")
	assert.Nil(t, err, "flag")
	assert.Equal(t, int64(1), flag.Mask, "mask")

	_, err = sampleType.Flag("High")
	assert.Equal(t, fault.ErrFlagNotFound, err, "missing flag")
	assert.Equal(t, []string{"Low"}, sampleType.FlagNames(), "flag names")
}

func TestScriptValidation(t *testing.T) {
	r := schema.NewRegistry()
	bad := &schema.Type{
		Name:       "BAD_SCRIPT",
		WriteOrder: []schema.Op{schema.EmitField("Missing")},
	}
	assert.Panics(t, func() { _ = r.Register(bad) }, "script names a missing field")

	good := &schema.Type{
		Name: "GOOD_SCRIPT",
		Fields: []*schema.Field{
			schema.StringList("Names", 3, func(schema.Object) *[]string { return new([]string) }),
		},
		WriteOrder: []schema.Op{
			schema.Each("Names", schema.EmitElement("Names", 3)),
			schema.EmitXData(),
		},
	}
	assert.Nil(t, r.Register(good), "register")
	assert.True(t, good.PlacesXData(), "xdata placement")
}
