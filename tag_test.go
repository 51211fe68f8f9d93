/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * IPP Tags tests
 */

package goipp

import "testing"

func TestTagIsDelimiter(t *testing.T) {
	type testData struct {
		t      Tag
		answer bool
	}

	tests := []testData{
		{TagZero, true},
		{TagOperationGroup, true},
		{TagJobGroup, true},
		{TagEnd, true},
		{TagFuture15Group, true},
		{TagUnsupportedValue, false},
		{TagUnknown, false},
		{TagInteger, false},
		{TagBeginCollection, false},
		{TagEndCollection, false},
		{TagExtension, false},
	}

	for _, test := range tests {
		answer := test.t.IsDelimiter()
		if answer != test.answer {
			t.Errorf("Tag.IsDelimiter(%s): expected %v, present %v",
				test.t, test.answer, answer)
		}
	}
}

func TestTagIsGroup(t *testing.T) {
	type testData struct {
		t      Tag
		answer bool
	}

	tests := []testData{
		{TagZero, false},
		{TagOperationGroup, true},
		{TagJobGroup, true},
		{TagEnd, false},
		{TagPrinterGroup, true},
		{TagUnsupportedGroup, true},
		{TagSubscriptionGroup, true},
		{TagEventNotificationGroup, true},
		{TagResourceGroup, true},
		{TagDocumentGroup, true},
		{TagSystemGroup, true},
		{TagFuture11Group, true},
		{TagFuture15Group, true},
		{TagInteger, false},
	}

	for _, test := range tests {
		answer := test.t.IsGroup()
		if answer != test.answer {
			t.Errorf("Tag.IsGroup(%s): expected %v, present %v",
				test.t, test.answer, answer)
		}
	}
}

func TestTagType(t *testing.T) {
	type testData struct {
		t      Tag
		answer Type
	}

	tests := []testData{
		{TagZero, TypeInvalid},
		{TagInteger, TypeInteger},
		{TagEnum, TypeInteger},
		{TagBoolean, TypeBoolean},
		{TagUnsupportedValue, TypeVoid},
		{TagDefault, TypeVoid},
		{TagUnknown, TypeVoid},
		{TagNoValue, TypeVoid},
		{TagNotSettable, TypeVoid},
		{TagDeleteAttr, TypeVoid},
		{TagAdminDefine, TypeVoid},
		{TagText, TypeString},
		{TagName, TypeString},
		{TagReservedString, TypeString},
		{TagKeyword, TypeString},
		{TagURI, TypeString},
		{TagURIScheme, TypeString},
		{TagCharset, TypeString},
		{TagLanguage, TypeString},
		{TagMimeType, TypeString},
		{TagMemberName, TypeString},
		{TagDateTime, TypeDateTime},
		{TagResolution, TypeResolution},
		{TagRange, TypeRange},
		{TagTextLang, TypeTextWithLang},
		{TagNameLang, TypeTextWithLang},
		{TagBeginCollection, TypeCollection},
		{TagEndCollection, TypeVoid},
		{TagExtension, TypeBinary},
		{0x1234, TypeBinary},
	}

	for _, test := range tests {
		answer := test.t.Type()
		if answer != test.answer {
			t.Errorf("Tag.Type(%s): expected %s, present %s",
				test.t, test.answer, answer)
		}
	}
}

func TestTagString(t *testing.T) {
	type testData struct {
		t      Tag
		answer string
	}

	tests := []testData{
		{TagZero, "zero"},
		{TagUnsupportedValue, "unsupported"},
		{0xff, "0xff"},
		{0x1234, "0x1234"},
	}

	for _, test := range tests {
		answer := test.t.String()
		if answer != test.answer {
			t.Errorf("Tag.String(0x%2.2x): expected %q, present %q",
				int(test.t), test.answer, answer)
		}
	}
}
