/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Attributes tests
 */

package goipp

import (
	"errors"
	"testing"
	"time"
)

func TestAttributesEqualSimilar(t *testing.T) {
	type testData struct {
		a1, a2  Attributes
		equal   bool
		similar bool
	}

	tests := []testData{
		{a1: nil, a2: nil, equal: true, similar: true},
		{a1: Attributes{}, a2: Attributes{}, equal: true, similar: true},
		{a1: Attributes{}, a2: nil, equal: false, similar: true},
		{
			a1:      Attributes{MakeAttr("attr1", TagInteger, Integer(0))},
			a2:      Attributes{},
			equal:   false,
			similar: false,
		},
		{
			a1:      Attributes{MakeAttr("attr1", TagInteger, Integer(0))},
			a2:      Attributes{MakeAttr("attr1", TagInteger, Integer(0))},
			equal:   true,
			similar: true,
		},
		{
			a1:      Attributes{MakeAttr("attr1", TagInteger, Integer(0))},
			a2:      Attributes{MakeAttr("attr1", TagInteger, Integer(1))},
			equal:   false,
			similar: false,
		},
		{
			a1:      Attributes{MakeAttr("attr1", TagInteger, Integer(0))},
			a2:      Attributes{MakeAttr("attr1", TagEnum, Integer(0))},
			equal:   false,
			similar: false,
		},
		{
			a1: Attributes{
				MakeAttr("attr1", TagString, Binary("hello")),
				MakeAttr("attr2", TagString, String("world")),
			},
			a2: Attributes{
				MakeAttr("attr1", TagString, String("hello")),
				MakeAttr("attr2", TagString, Binary("world")),
			},
			equal:   false,
			similar: true,
		},
		{
			a1: Attributes{
				MakeAttr("attr1", TagString, String("hello")),
				MakeAttr("attr2", TagString, String("world")),
			},
			a2: Attributes{
				MakeAttr("attr2", TagString, String("world")),
				MakeAttr("attr1", TagString, String("hello")),
			},
			equal:   false,
			similar: true,
		},
	}

	for _, test := range tests {
		equal := test.a1.Equal(test.a2)
		similar := test.a1.Similar(test.a2)

		if equal != test.equal {
			t.Errorf("Attributes.Equal(%s, %s): expected %v, present %v",
				test.a1, test.a2, test.equal, equal)
		}
		if similar != test.similar {
			t.Errorf("Attributes.Similar(%s, %s): expected %v, present %v",
				test.a1, test.a2, test.similar, similar)
		}
	}
}

func TestAttributesConstructors(t *testing.T) {
	attrs1 := Attributes{
		Attribute{
			Name: "attr1",
			Values: Values{
				{TagString, String("hello")},
				{TagString, String("world")},
			},
		},
		Attribute{
			Name: "attr2",
			Values: Values{
				{TagInteger, Integer(1)},
				{TagInteger, Integer(2)},
				{TagInteger, Integer(3)},
			},
		},
	}

	attrs2 := Attributes{}
	attrs2.Add(MakeAttr("attr1", TagString, String("hello"), String("world")))
	attrs2.Add(MakeAttr("attr2", TagInteger, Integer(1), Integer(2), Integer(3)))

	if !attrs1.Equal(attrs2) {
		t.Errorf("Attributes constructors test failed")
	}
}

func TestMakeAttribute(t *testing.T) {
	a1 := Attribute{Name: "attr", Values: Values{{TagInteger, Integer(1)}}}
	a2 := MakeAttribute("attr", TagInteger, Integer(1))

	if !a1.Equal(a2) {
		t.Errorf("MakeAttribute test failed")
	}
}

func TestAttributesGet(t *testing.T) {
	attrs := Attributes{
		MakeAttr("attr1", TagInteger, Integer(1)),
		MakeAttr("attr2", TagString, String("hello")),
	}

	if attr, ok := attrs.Get("attr2"); !ok || attr.Name != "attr2" {
		t.Errorf("Attributes.Get(\"attr2\") failed: %#v, %v", attr, ok)
	}

	if _, ok := attrs.Get("no-such-attr"); ok {
		t.Errorf("Attributes.Get(\"no-such-attr\") unexpectedly succeeded")
	}
}

func TestAttributesCopy(t *testing.T) {
	tests := []Attributes{
		nil,
		{},
		{
			MakeAttr("attr1", TagString, String("hello"), String("world")),
			MakeAttr("attr2", TagInteger, Integer(1), Integer(2), Integer(3)),
			MakeAttr("attr2", TagBoolean, Boolean(true), Boolean(false)),
		},
	}

	for _, attrs := range tests {
		if clone := attrs.Clone(); !attrs.Equal(clone) {
			t.Errorf("Attributes.Clone: expected %#v, present %#v", attrs, clone)
		}
		if cp := attrs.DeepCopy(); !attrs.Equal(cp) {
			t.Errorf("Attributes.DeepCopy: expected %#v, present %#v", attrs, cp)
		}
	}
}

func TestAttributeUnpack(t *testing.T) {
	loc := time.FixedZone("UTC+3:30", 3*3600+1800)
	tm, _ := time.ParseInLocation(time.RFC3339, "2025-03-29T16:48:53+03:30", loc)

	values := Values{
		{TagBoolean, Boolean(true)},
		{TagString, Binary{1, 2, 3}},
		{TagInteger, Integer(123)},
		{TagEnum, Integer(-321)},
		{TagRange, Range{-100, 200}},
		{TagResolution, Resolution{150, 300, UnitsDpi}},
		{TagName, String("hello")},
		{TagTextLang, TextWithLang{"en-US", "hello"}},
		{TagDateTime, Time{tm}},
		{TagNoValue, Void{}},
	}

	for _, v := range values {
		expected := Attribute{Name: "attr", Values: Values{v}}
		present := Attribute{Name: "attr"}
		data, _ := v.V.encode()
		present.unpack(v.T, data)

		if !expected.Equal(present) {
			t.Errorf("Attribute.unpack(%s): expected %#v, present %#v",
				v.T, expected, present)
		}
	}
}

func TestAttributeUnpackError(t *testing.T) {
	noError := errors.New("")

	type testData struct {
		t    Tag
		data []byte
		err  string
	}

	tests := []testData{
		{t: TagInteger, data: []byte{}, err: "integer: value must be 4 bytes"},
		{t: TagBoolean, data: []byte{}, err: "boolean: value must be 1 byte"},
	}

	for _, test := range tests {
		attr := Attribute{Name: "attr"}
		err := attr.unpack(test.t, test.data)
		if err == nil {
			err = noError
		}

		if err.Error() != test.err {
			t.Errorf("Attribute.unpack(%s, %x): expected %q, present %q",
				test.t, test.data, test.err, err)
		}
	}
}

func TestAttributeUnpackPanic(t *testing.T) {
	defer func() { recover() }()

	attr := Attribute{Name: "attr"}
	attr.unpack(TagOperationGroup, []byte{})

	t.Errorf("Attribute.unpack must panic on a delimiter tag")
}
