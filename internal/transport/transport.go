package transport

import (
	"fmt"
	"net/http"
)

// Agent is the robots.txt group name used for matching. It is never sent as
// a header.
const Agent = "sportvision-scrap"

// Transport is an http.RoundTripper that applies, in order:
// robots check → optional proxy hop → send.
//
// It adds no headers to the request.
type Transport struct {
	Base   http.RoundTripper
	Robots *RobotsChecker
	Proxy  *ProxyRotator
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !t.Robots.IsAllowed(req.Context(), Agent, req.URL) {
		return nil, fmt.Errorf("%w: %s", ErrDisallowed, req.URL.Path)
	}

	rt := t.Base
	if t.Proxy != nil {
		rt = t.Proxy.Next().Transport()
	}
	if rt == nil {
		rt = http.DefaultTransport
	}

	return rt.RoundTrip(req)
}

// CloseIdleConnections forwards to Base so http.Client.CloseIdleConnections
// reaches the pooled transport underneath.
func (t *Transport) CloseIdleConnections() {
	type closeIdler interface{ CloseIdleConnections() }
	if c, ok := t.Base.(closeIdler); ok {
		c.CloseIdleConnections()
	}
}
