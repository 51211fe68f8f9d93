package client

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net/http"
	"os"

	goipp "github.com/alexpevzner/ippclient"
)

// HTTPTransport is the default Transport, POSTing IPP messages to a
// configured URL the way ippGetPrinterAttributes POSTs to the
// device's URI: Content-Type application/ipp, body is the encoded
// message followed directly by any document payload.
type HTTPTransport struct {
	url    string
	client *http.Client
}

// NewHTTPTransport builds an HTTPTransport posting to url, configured
// per cfg.TLS. url is normally cfg.PrinterURI with its scheme swapped
// from ipp(s) to http(s); url is used as given, so the caller makes
// that swap before constructing the transport.
func NewHTTPTransport(url string, cfg *Config) (*HTTPTransport, error) {
	tlsConfig := &tls.Config{InsecureSkipVerify: cfg.TLS.InsecureSkipVerify}

	if cfg.TLS.ClientCert != "" {
		cert, err := tls.LoadX509KeyPair(cfg.TLS.ClientCert, cfg.TLS.ClientKey)
		if err != nil {
			return nil, fmt.Errorf("client: loading client certificate: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	if cfg.TLS.CACert != "" {
		pem, err := os.ReadFile(cfg.TLS.CACert)
		if err != nil {
			return nil, fmt.Errorf("client: reading CA certificate: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("client: no certificates found in %s", cfg.TLS.CACert)
		}
		tlsConfig.RootCAs = pool
	}

	return &HTTPTransport{
		url: url,
		client: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: &http.Transport{TLSClientConfig: tlsConfig},
		},
	}, nil
}

// Exchange implements Transport.
func (t *HTTPTransport) Exchange(ctx context.Context, in io.Reader, contentLength int64) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, in)
	if err != nil {
		return nil, fmt.Errorf("client: building request: %w", err)
	}

	req.Header.Set("Content-Type", goipp.ContentType)
	if contentLength >= 0 {
		req.ContentLength = contentLength
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode/100 != 2 {
		resp.Body.Close()
		return nil, fmt.Errorf("client: HTTP %s", resp.Status)
	}

	return resp.Body, nil
}
