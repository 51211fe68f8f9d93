/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Package documentation
 */

/*
Package goipp implements the IPP core protocol, as defined by RFC 8010/8011.

It doesn't implement high-level operations, such as "print a document" or
"cancel print job" - that's the job of the sibling client package. Its
scope is limited to proper generation and parsing of IPP requests and
responses: a tagged-union Value model, Attribute/Group containers, and a
Message encoder/decoder for the binary wire format.

	IPP protocol uses the following simple model:
	1. Send a request
	2. Receive a response

Request and response both use the same wire format, represented here by
Message, with the only difference that Code is interpreted as an
operation code in a request and as a status code in a response.

Example:

	package main

	import (
		"bytes"
		"net/http"
		"os"

		"github.com/alexpevzner/ippclient"
	)

	const uri = "http://192.168.1.102:631"

	// Build an IPP Get-Printer-Attributes request
	func makeRequest() ([]byte, error) {
		m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpGetPrinterAttributes, 1)
		m.Operation.Add(goipp.MakeAttribute("attributes-charset",
			goipp.TagCharset, goipp.String("utf-8")))
		m.Operation.Add(goipp.MakeAttribute("attributes-natural-language",
			goipp.TagLanguage, goipp.String("en-US")))
		m.Operation.Add(goipp.MakeAttribute("printer-uri",
			goipp.TagURI, goipp.String(uri)))

		return m.EncodeBytes()
	}

	func main() {
		request, err := makeRequest()
		if err != nil {
			panic(err)
		}

		resp, err := http.Post(uri, goipp.ContentType, bytes.NewBuffer(request))
		if err != nil {
			panic(err)
		}

		var respMsg goipp.Message
		if err := respMsg.Decode(resp.Body); err != nil {
			panic(err)
		}

		respMsg.Print(os.Stdout, false)
	}
*/
package goipp

// msgPrintIndent is a two-space indentation string. Message.Print
// indents through a Formatter (FormatterIndentShift) and does not use it.
const msgPrintIndent = "  "
