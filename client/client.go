package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	goipp "github.com/alexpevzner/ippclient"
)

// Client submits Operations to a single printer (or CUPS server) and
// parses its responses, logging each exchange through logrus.
type Client struct {
	cfg       *Config
	transport Transport
	log       *logrus.Entry
	requestID int32
}

// New creates a Client against transport, configured by cfg. The
// request-ID counter is seeded with a random non-zero starting value,
// per the header invariant that a request-id of zero is never valid.
func New(cfg *Config, transport Transport, log *logrus.Entry) *Client {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	seed := int32(rand.Int31())
	if seed == 0 {
		seed = 1
	}

	return &Client{cfg: cfg, transport: transport, log: log, requestID: seed}
}

// nextRequestID returns the next request ID, skipping zero.
func (c *Client) nextRequestID() int32 {
	id := atomic.AddInt32(&c.requestID, 1)
	if id == 0 {
		id = atomic.AddInt32(&c.requestID, 1)
	}
	return id
}

// Do lowers op, submits it over the Client's Transport, decodes the
// response and applies the status gate: a non-successful
// operation-status is returned as a *StatusError alongside the parsed
// Message, so callers that want the unsupported-attributes detail in
// an error response can still inspect it.
func (c *Client) Do(ctx context.Context, op Operation) (*goipp.Message, error) {
	req, err := op.Lower(c.cfg, c.nextRequestID())
	if err != nil {
		return nil, err
	}

	data, err := req.Message.EncodeBytes()
	if err != nil {
		return nil, fmt.Errorf("client: encoding request: %w", err)
	}

	entry := c.log.WithFields(logrus.Fields{
		"request-id": req.Message.RequestID,
		"op":         req.Message.OpCode(),
	})
	entry.Debug("sending IPP request")
	if entry.Logger.IsLevelEnabled(logrus.TraceLevel) {
		entry.Tracef("request body:\n%x", data)
	}

	body := io.Reader(bytes.NewReader(data))
	contentLength := int64(len(data))
	var payload *errCapturingReader
	if req.Payload != nil {
		payload = &errCapturingReader{r: req.Payload}
		body = io.MultiReader(body, payload)
		contentLength = -1
	}

	resp, err := c.transport.Exchange(ctx, body, contentLength)
	if err != nil {
		if payload != nil && payload.err != nil {
			return nil, &IoError{Err: payload.err}
		}
		return nil, &TransportError{Err: err}
	}
	defer resp.Close()

	var msg goipp.Message
	if err := msg.Decode(resp); err != nil {
		return nil, fmt.Errorf("client: decoding response: %w", err)
	}

	entry.WithField("status", msg.StatusCode()).Debug("received IPP response")

	if !msg.StatusCode().IsSuccessful() {
		return &msg, &StatusError{Code: msg.StatusCode()}
	}

	return &msg, nil
}

// errCapturingReader wraps a payload io.Reader and remembers the last
// non-EOF error it produced, so Do can tell a failed document read
// apart from a failed transport exchange and report an *IoError
// instead of a *TransportError.
type errCapturingReader struct {
	r   io.Reader
	err error
}

func (e *errCapturingReader) Read(p []byte) (int, error) {
	n, err := e.r.Read(p)
	if err != nil && err != io.EOF {
		e.err = err
	}
	return n, err
}
