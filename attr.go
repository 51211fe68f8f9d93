/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Attributes
 */

package goipp

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// Attributes represents a sequence of attributes
type Attributes []Attribute

// Add appends an Attribute to Attributes
func (attrs *Attributes) Add(attr Attribute) {
	*attrs = append(*attrs, attr)
}

// String returns a human-readable Attributes representation, for debugging.
func (attrs Attributes) String() string {
	return attributesString(attrs)
}

// Clone creates a shallow copy of Attributes. For nil input it returns nil.
func (attrs Attributes) Clone() Attributes {
	var attrs2 Attributes
	if attrs != nil {
		attrs2 = make(Attributes, len(attrs))
		copy(attrs2, attrs)
	}
	return attrs2
}

// DeepCopy creates a deep copy of Attributes. For nil input it returns nil.
func (attrs Attributes) DeepCopy() Attributes {
	var attrs2 Attributes
	if attrs != nil {
		attrs2 = make(Attributes, len(attrs))
		for i := range attrs {
			attrs2[i] = attrs[i].DeepCopy()
		}
	}
	return attrs2
}

// Equal checks that attrs and attrs2 represent the same sequence of
// attributes, in the same order.
func (attrs Attributes) Equal(attrs2 Attributes) bool {
	if len(attrs) != len(attrs2) {
		return false
	}

	if (attrs == nil) != (attrs2 == nil) {
		return false
	}

	for i := range attrs {
		if !attrs[i].Equal(attrs2[i]) {
			return false
		}
	}

	return true
}

// Similar checks that attrs and attrs2 are **logically** equal sets
// of attributes - same names and similar values, order independent.
func (attrs Attributes) Similar(attrs2 Attributes) bool {
	if len(attrs) != len(attrs2) {
		return false
	}

	s1, s2 := attrs.Clone(), attrs2.Clone()

	less := func(s Attributes) func(i, j int) bool {
		return func(i, j int) bool { return s[i].Name < s[j].Name }
	}

	sort.Slice(s1, less(s1))
	sort.Slice(s2, less(s2))

	for i := range s1 {
		if !s1[i].Similar(s2[i]) {
			return false
		}
	}

	return true
}

// Get looks up the first attribute with the given name.
//
// It returns the Attribute and true if found, or the zero Attribute
// and false otherwise.
func (attrs Attributes) Get(name string) (Attribute, bool) {
	for _, attr := range attrs {
		if attr.Name == name {
			return attr, true
		}
	}
	return Attribute{}, false
}

// Attribute represents a single attribute: its name, and one or
// more tagged values (see the 1setOf convention in the package
// documentation).
type Attribute struct {
	Name   string
	Values Values
}

// MakeAttribute makes a single-value Attribute.
//
// Deprecated: use MakeAttr instead, which admits the possibility
// of a multi-valued (1setOf) attribute from the start.
func MakeAttribute(name string, tag Tag, value Value) Attribute {
	return Attribute{Name: name, Values: Values{{tag, value}}}
}

// MakeAttr makes an Attribute with one or more values, all sharing
// the same tag - the common case for 1setOf attributes.
func MakeAttr(name string, tag Tag, value Value, rest ...Value) Attribute {
	attr := Attribute{Name: name}
	attr.Values.Add(tag, value)
	for _, v := range rest {
		attr.Values.Add(tag, v)
	}
	return attr
}

// MakeAttrCollection makes an Attribute of one or more Collection values.
func MakeAttrCollection(name string, collection Collection, rest ...Collection) Attribute {
	attr := Attribute{Name: name}
	attr.Values.Add(TagBeginCollection, collection)
	for _, c := range rest {
		attr.Values.Add(TagBeginCollection, c)
	}
	return attr
}

// String returns a human-readable Attribute representation, for debugging.
func (attr Attribute) String() string {
	return fmt.Sprintf("%s=%s", attr.Name, attr.Values)
}

// Equal checks that attr and attr2 are equal.
func (attr Attribute) Equal(attr2 Attribute) bool {
	return attr.Name == attr2.Name && attr.Values.Equal(attr2.Values)
}

// Similar checks that attr and attr2 are **logically** equal.
func (attr Attribute) Similar(attr2 Attribute) bool {
	return attr.Name == attr2.Name && attr.Values.Similar(attr2.Values)
}

// DeepCopy creates a deep copy of the Attribute.
func (attr Attribute) DeepCopy() Attribute {
	return Attribute{Name: attr.Name, Values: attr.Values.DeepCopy()}
}

// unpack decodes a single value of the given tag from its raw wire
// bytes into attr, dispatching to the Value implementer that
// corresponds to tag.Type(), and appends it to attr.Values.
//
// It panics if tag is a delimiter tag - callers are expected to have
// already routed delimiter tags to group handling before reaching here.
func (attr *Attribute) unpack(tag Tag, value []byte) error {
	var template Value

	switch tag.Type() {
	case TypeInvalid:
		panic(fmt.Sprintf("goipp: tag %s cannot carry an attribute value", tag))
	case TypeVoid:
		template = Void{}
	case TypeInteger:
		template = Integer(0)
	case TypeBoolean:
		template = Boolean(false)
	case TypeString:
		template = String("")
	case TypeDateTime:
		template = Time{}
	case TypeResolution:
		template = Resolution{}
	case TypeRange:
		template = Range{}
	case TypeTextWithLang:
		template = TextWithLang{}
	case TypeBinary:
		template = Binary(nil)
	case TypeCollection:
		// The collection's members arrive as a separate run of
		// TagMemberName/TagEndCollection attributes, decoded by
		// messageDecoder.decodeCollection - this placeholder is
		// overwritten by the caller once that run is parsed.
		attr.Values.Add(tag, Collection(nil))
		return nil
	}

	v, err := template.decode(value)
	if err != nil {
		return fmt.Errorf("%s: %s", strings.ToLower(tag.Type().String()), err)
	}

	attr.Values.Add(tag, v)
	return nil
}

// attributesString is a small debugging helper behind Attributes.String,
// which the core package's own tests use in their failure messages.
func attributesString(attrs Attributes) string {
	var buf bytes.Buffer
	for i, attr := range attrs {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(attr.String())
	}
	return buf.String()
}
