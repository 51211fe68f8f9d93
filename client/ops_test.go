package client

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	goipp "github.com/alexpevzner/ippclient"
)

func TestPrintJobLower(t *testing.T) {
	cfg := DefaultConfig()
	op := PrintJob{
		PrinterURI: "ipp://localhost/printers/office",
		JobName:    "report.pdf",
		Copies:     2,
		Payload:    strings.NewReader("%PDF-fake"),
	}

	req, err := op.Lower(cfg, 7)
	require.NoError(t, err)
	require.NotNil(t, req.Payload)
	require.Equal(t, goipp.OpPrintJob, req.Message.OpCode())
	require.Equal(t, int32(7), req.Message.RequestID)

	require.Equal(t, "attributes-charset", req.Message.Operation[0].Name)
	require.Equal(t, "attributes-natural-language", req.Message.Operation[1].Name)
	require.Equal(t, "printer-uri", req.Message.Operation[2].Name)

	uri, ok := req.Message.Operation[2].Text()
	require.True(t, ok)
	require.Equal(t, op.PrinterURI, uri)

	copies, ok := req.Message.Job.Get("copies")
	require.True(t, ok)
	n, ok := copies.Integer()
	require.True(t, ok)
	require.Equal(t, 2, n)
}

func TestPrintJobLowerRejectsMissingPayload(t *testing.T) {
	cfg := DefaultConfig()
	op := PrintJob{PrinterURI: "ipp://localhost/printers/office"}

	_, err := op.Lower(cfg, 1)
	require.Error(t, err)

	var paramErr *ParamError
	require.ErrorAs(t, err, &paramErr)
	require.Equal(t, "Payload", paramErr.Param)
}

func TestGetPrinterAttributesLower(t *testing.T) {
	cfg := DefaultConfig()
	op := GetPrinterAttributes{
		PrinterURI:          "ipp://localhost/printers/office",
		RequestedAttributes: []string{"printer-state", "printer-state-reasons"},
	}

	req, err := op.Lower(cfg, 1)
	require.NoError(t, err)
	require.Nil(t, req.Payload)

	attr, ok := req.Message.Operation.Get("requested-attributes")
	require.True(t, ok)
	require.Len(t, attr.Values, 2)
}

func TestCupsGetPrintersLowerHasNoTargetURI(t *testing.T) {
	cfg := DefaultConfig()
	op := CupsGetPrinters{ServerURI: "ipp://localhost:631"}

	req, err := op.Lower(cfg, 1)
	require.NoError(t, err)
	require.Equal(t, goipp.OpCupsGetPrinters, req.Message.OpCode())
	require.Len(t, req.Message.Operation, 2)
}

func TestJobIDOnlyOperationsValidate(t *testing.T) {
	cfg := DefaultConfig()

	_, err := (HoldJob{PrinterURI: "ipp://x", JobID: 0}).Lower(cfg, 1)
	require.Error(t, err)

	req, err := (ReleaseJob{PrinterURI: "ipp://x", JobID: 5}).Lower(cfg, 1)
	require.NoError(t, err)
	require.Equal(t, goipp.OpReleaseJob, req.Message.OpCode())
}
