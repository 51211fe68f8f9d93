/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * IPP Operation Codes tests
 */

package goipp

import "testing"

func TestOpString(t *testing.T) {
	type testData struct {
		op Op
		s  string
	}

	tests := []testData{
		{OpPrintJob, "Print-Job"},
		{OpPrintURI, "Print-URI"},
		{OpValidateJob, "Validate-Job"},
		{OpCancelJob, "Cancel-Job"},
		{OpGetJobs, "Get-Jobs"},
		{OpGetJobAttributes, "Get-Job-Attribute"},
		{OpHoldJob, "Hold-Job"},
		{OpReleaseJob, "Release-Job"},
		{OpRestartJob, "Restart-Job"},
		{OpPausePrinter, "Pause-Printer"},
		{OpRestartSystem, "Restart-System"},
		{OpCupsGetDefault, "CUPS-Get-Default"},
		{OpCupsGetPrinters, "CUPS-Get-Printers"},
		{OpCupsGetClasses, "CUPS-Get-Classes"},
		{OpCupsGetPpd, "CUPS-Get-PPD"},
		{OpCupsGetDocument, "CUPS-Get-Document"},
		{OpCupsCreateLocalPrinter, "CUPS-Create-Local-Printer"},
		{0xabcd, "0xabcd"},
	}

	for _, test := range tests {
		s := test.op.String()
		if s != test.s {
			t.Errorf("Op.String(0x%4.4x): expected %q, present %q",
				int(test.op), test.s, s)
		}
	}
}
