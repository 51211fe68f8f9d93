/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Attribute groups
 */

package goipp

import (
	"fmt"
	"sort"
)

// Group represents a group of attributes, with its delimiter Tag
// (TagOperationGroup, TagJobGroup, TagPrinterGroup, and so on).
type Group struct {
	Tag   Tag        // Group delimiter tag
	Attrs Attributes // Group attributes
}

// Add appends an Attribute to the Group.
func (g *Group) Add(attr Attribute) {
	g.Attrs.Add(attr)
}

// String returns a human-readable Group representation, for debugging.
func (g Group) String() string {
	return fmt.Sprintf("%s: %s", g.Tag, g.Attrs)
}

// Clone creates a shallow copy of the Group.
func (g Group) Clone() Group {
	return Group{Tag: g.Tag, Attrs: g.Attrs.Clone()}
}

// DeepCopy creates a deep copy of the Group.
func (g Group) DeepCopy() Group {
	return Group{Tag: g.Tag, Attrs: g.Attrs.DeepCopy()}
}

// Equal checks that g and g2 represent the same group.
func (g Group) Equal(g2 Group) bool {
	return g.Tag == g2.Tag && g.Attrs.Equal(g2.Attrs)
}

// Similar checks that g and g2 are **logically** equal groups.
func (g Group) Similar(g2 Group) bool {
	return g.Tag == g2.Tag && g.Attrs.Similar(g2.Attrs)
}

// Groups represents a sequence of attribute groups, in wire order.
type Groups []Group

// Add appends a Group to Groups.
func (groups *Groups) Add(g Group) {
	*groups = append(*groups, g)
}

// Clone creates a shallow copy of Groups.
func (groups Groups) Clone() Groups {
	var groups2 Groups
	if groups != nil {
		groups2 = make(Groups, len(groups))
		for i := range groups {
			groups2[i].Tag = groups[i].Tag
			groups2[i].Attrs = groups[i].Attrs.Clone()
		}
	}
	return groups2
}

// DeepCopy creates a deep copy of Groups.
func (groups Groups) DeepCopy() Groups {
	var groups2 Groups
	if groups != nil {
		groups2 = make(Groups, len(groups))
		for i := range groups {
			groups2[i].Tag = groups[i].Tag
			groups2[i].Attrs = groups[i].Attrs.DeepCopy()
		}
	}
	return groups2
}

// Equal checks that groups and groups2 represent the same sequence
// of groups, in the same order.
func (groups Groups) Equal(groups2 Groups) bool {
	if len(groups) != len(groups2) {
		return false
	}

	if (groups == nil) != (groups2 == nil) {
		return false
	}

	for i := range groups {
		if groups[i].Tag != groups2[i].Tag ||
			!groups[i].Attrs.Equal(groups2[i].Attrs) {
			return false
		}
	}

	return true
}

// Similar checks that groups and groups2 are **logically** equal -
// same groups (by Tag), each with a similar set of attributes,
// independent of attribute order and of the order of groups with
// different Tags. Groups sharing a Tag are compared in the order they
// appear, so swapping two of them makes the result false.
func (groups Groups) Similar(groups2 Groups) bool {
	if len(groups) != len(groups2) {
		return false
	}

	s1, s2 := groups.Clone(), groups2.Clone()

	less := func(s Groups) func(i, j int) bool {
		return func(i, j int) bool { return s[i].Tag < s[j].Tag }
	}

	sort.SliceStable(s1, less(s1))
	sort.SliceStable(s2, less(s2))

	for i := range s1 {
		if s1[i].Tag != s2[i].Tag || !s1[i].Attrs.Similar(s2[i].Attrs) {
			return false
		}
	}

	return true
}
