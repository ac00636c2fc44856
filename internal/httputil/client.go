package httputil

import (
	"compress/gzip"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewHTTPClient creates a pooled HTTP client safe for concurrent use.
// An optional RoundTripper (e.g. transport.Transport) can be injected. The
// client sets no overall timeout; only the transport's defaults apply.
func NewHTTPClient(rt http.RoundTripper) *http.Client {
	if rt == nil {
		rt = NewPooledTransport()
	}
	return &http.Client{
		Transport: otelhttp.NewTransport(rt),
	}
}

// NewPooledTransport returns the base transport shared by every page fetch.
func NewPooledTransport() *http.Transport {
	return &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     90 * time.Second,
	}
}

// ReadBody reads and decompresses an HTTP response body.
func ReadBody(resp *http.Response) ([]byte, error) {
	var reader io.ReadCloser
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		var err error
		reader, err = gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		defer reader.Close()
	case "br":
		reader = io.NopCloser(brotli.NewReader(resp.Body))
	default:
		reader = resp.Body
	}
	return io.ReadAll(reader)
}

// IsTextContent reports whether a Content-Type header describes markup or
// text. An empty header is accepted.
func IsTextContent(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "text/") ||
		strings.HasSuffix(mediaType, "+xml") ||
		mediaType == "application/xml"
}
