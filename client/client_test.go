package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	goipp "github.com/alexpevzner/ippclient"
)

// fakeTransport answers every Exchange call with a pre-built
// goipp.Message, ignoring whatever was sent - enough to exercise
// Client.Do's encode/decode/status-gate plumbing without a real printer.
type fakeTransport struct {
	response *goipp.Message
	lastBody []byte
}

func (f *fakeTransport) Exchange(ctx context.Context, in io.Reader, contentLength int64) (io.ReadCloser, error) {
	body, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	f.lastBody = body

	data, err := f.response.EncodeBytes()
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func TestClientDoSuccessful(t *testing.T) {
	resp := goipp.NewResponse(goipp.DefaultVersion, goipp.StatusOk, 1)
	resp.Operation.Add(goipp.MakeAttribute("attributes-charset", goipp.TagCharset, goipp.String("utf-8")))
	resp.Operation.Add(goipp.MakeAttribute("attributes-natural-language", goipp.TagLanguage, goipp.String("en")))
	resp.Printer.Add(goipp.MakeAttribute("printer-state", goipp.TagEnum, goipp.Integer(4)))

	transport := &fakeTransport{response: resp}
	c := New(DefaultConfig(), transport, nil)

	op := GetPrinterAttributes{PrinterURI: "ipp://localhost/printers/office"}
	msg, err := c.Do(context.Background(), op)
	require.NoError(t, err)

	n, err := RequireInteger(msg.Printer, "printer-state")
	require.NoError(t, err)
	require.Equal(t, 4, n)

	require.NotEmpty(t, transport.lastBody)
}

func TestClientDoStatusError(t *testing.T) {
	resp := goipp.NewResponse(goipp.DefaultVersion, goipp.StatusErrorNotFound, 1)
	resp.Operation.Add(goipp.MakeAttribute("attributes-charset", goipp.TagCharset, goipp.String("utf-8")))
	resp.Operation.Add(goipp.MakeAttribute("attributes-natural-language", goipp.TagLanguage, goipp.String("en")))

	c := New(DefaultConfig(), &fakeTransport{response: resp}, nil)

	op := GetPrinterAttributes{PrinterURI: "ipp://localhost/printers/office"}
	msg, err := c.Do(context.Background(), op)

	require.Error(t, err)
	require.NotNil(t, msg, "a status-error response should still be returned for inspection")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, goipp.StatusErrorNotFound, statusErr.Code)
}

func TestClientDoLowerError(t *testing.T) {
	c := New(DefaultConfig(), &fakeTransport{}, nil)

	_, err := c.Do(context.Background(), PrintJob{})
	require.Error(t, err)

	var paramErr *ParamError
	require.ErrorAs(t, err, &paramErr)
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestClientDoPayloadReadError(t *testing.T) {
	readErr := errors.New("disk on fire")
	transport := &fakeTransport{}
	c := New(DefaultConfig(), transport, nil)

	op := PrintJob{
		PrinterURI: "ipp://localhost/printers/office",
		Payload:    failingReader{err: readErr},
	}
	_, err := c.Do(context.Background(), op)
	require.Error(t, err)

	var ioErr *IoError
	require.ErrorAs(t, err, &ioErr)
	require.Equal(t, readErr, ioErr.Err)
}

func TestRequireAttributeHelpers(t *testing.T) {
	attrs := goipp.Attributes{
		goipp.MakeAttribute("copies", goipp.TagInteger, goipp.Integer(3)),
		goipp.MakeAttribute("printer-name", goipp.TagName, goipp.String("office-1")),
		goipp.MakeAttribute("color-supported", goipp.TagBoolean, goipp.Boolean(true)),
	}

	n, err := RequireInteger(attrs, "copies")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	s, err := RequireText(attrs, "printer-name")
	require.NoError(t, err)
	require.Equal(t, "office-1", s)

	b, err := RequireBoolean(attrs, "color-supported")
	require.NoError(t, err)
	require.True(t, b)

	_, err = RequireInteger(attrs, "no-such-attribute")
	var missing *MissingAttribute
	require.ErrorAs(t, err, &missing)

	_, err = RequireInteger(attrs, "printer-name")
	var invalid *InvalidAttributeType
	require.ErrorAs(t, err, &invalid)
}
