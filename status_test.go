/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * IPP Status Codes tests
 */

package goipp

import "testing"

func TestStatusString(t *testing.T) {
	type testData struct {
		status Status
		s      string
	}

	tests := []testData{
		{StatusOk, "successful-ok"},
		{StatusOkConflicting, "successful-ok-conflicting-attributes"},
		{StatusOkEventsComplete, "successful-ok-events-complete"},
		{StatusRedirectionOtherSite, "redirection-other-site"},
		{StatusErrorBadRequest, "client-error-bad-request"},
		{StatusErrorForbidden, "client-error-forbidden"},
		{StatusErrorNotFetchable, "client-error-not-fetchable"},
		{StatusErrorInternal, "server-error-internal-error"},
		{StatusErrorTooManyDocuments, "server-error-too-many-documents"},
		{0xabcd, "0xabcd"},
	}

	for _, test := range tests {
		s := test.status.String()
		if s != test.s {
			t.Errorf("Status.String(0x%4.4x): expected %q, present %q",
				int(test.status), test.s, s)
		}
	}
}

func TestStatusIsSuccessful(t *testing.T) {
	type testData struct {
		status Status
		answer bool
	}

	tests := []testData{
		{StatusOk, true},
		{StatusOkEventsComplete, true},
		{StatusRedirectionOtherSite, false},
		{StatusErrorBadRequest, false},
		{StatusErrorInternal, false},
	}

	for _, test := range tests {
		answer := test.status.IsSuccessful()
		if answer != test.answer {
			t.Errorf("Status.IsSuccessful(%s): expected %v, present %v",
				test.status, test.answer, answer)
		}
	}
}

func TestStatusClass(t *testing.T) {
	type testData struct {
		status Status
		class  StatusClass
	}

	tests := []testData{
		{StatusOk, StatusClassSuccessful},
		{Status(0x0100), StatusClassInformational},
		{StatusRedirectionOtherSite, StatusClassRedirection},
		{StatusErrorBadRequest, StatusClassClientError},
		{StatusErrorInternal, StatusClassServerError},
	}

	for _, test := range tests {
		class := test.status.Class()
		if class != test.class {
			t.Errorf("Status.Class(%s): expected %s, present %s",
				test.status, test.class, class)
		}
	}
}
