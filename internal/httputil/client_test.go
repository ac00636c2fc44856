package httputil

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andybalholm/brotli"
)

func TestReadBody_Encodings(t *testing.T) {
	const payload = "<html><body>ok</body></html>"

	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	zw.Write([]byte(payload))
	zw.Close()

	var br bytes.Buffer
	bw := brotli.NewWriter(&br)
	bw.Write([]byte(payload))
	bw.Close()

	tests := []struct {
		name     string
		encoding string
		body     []byte
	}{
		{"identity", "", []byte(payload)},
		{"gzip", "gzip", gz.Bytes()},
		{"brotli", "br", br.Bytes()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{
				Header: http.Header{},
				Body:   io.NopCloser(bytes.NewReader(tt.body)),
			}
			if tt.encoding != "" {
				resp.Header.Set("Content-Encoding", tt.encoding)
			}
			got, err := ReadBody(resp)
			if err != nil {
				t.Fatalf("ReadBody: %v", err)
			}
			if string(got) != payload {
				t.Errorf("got %q, want %q", got, payload)
			}
		})
	}
}

func TestReadBody_BadGzip(t *testing.T) {
	resp := &http.Response{
		Header: http.Header{"Content-Encoding": []string{"gzip"}},
		Body:   io.NopCloser(bytes.NewReader([]byte("not gzip"))),
	}
	if _, err := ReadBody(resp); err == nil {
		t.Fatal("expected error for invalid gzip body")
	}
}

func TestIsTextContent(t *testing.T) {
	tests := []struct {
		ct   string
		want bool
	}{
		{"", true},
		{"text/html; charset=utf-8", true},
		{"text/plain", true},
		{"application/xhtml+xml", true},
		{"application/xml", true},
		{"image/jpeg", false},
		{"application/json", false},
		{";;;", false},
	}
	for _, tt := range tests {
		if got := IsTextContent(tt.ct); got != tt.want {
			t.Errorf("IsTextContent(%q) = %v, want %v", tt.ct, got, tt.want)
		}
	}
}

func TestNewHTTPClient_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	}))
	defer srv.Close()

	client := NewHTTPClient(nil)
	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	body, _ := ReadBody(resp)
	if string(body) != "pong" {
		t.Errorf("body = %q", body)
	}
	if client.Timeout != 0 {
		t.Errorf("client timeout should be unset, got %v", client.Timeout)
	}
}
