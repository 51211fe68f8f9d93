package client

import (
	"context"
	"io"
)

// Transport is the byte-oriented request/response boundary a Client
// submits encoded IPP messages through. contentLength may be -1 when
// the payload length is unknown (a streamed document body), the same
// convention http.Request uses for chunked bodies.
//
// Implementations must honor ctx cancellation; canceling while a
// request is in flight must unblock Exchange with ctx.Err() (wrapped
// or not) rather than waiting out the transport's own timeout.
type Transport interface {
	Exchange(ctx context.Context, in io.Reader, contentLength int64) (io.ReadCloser, error)
}
