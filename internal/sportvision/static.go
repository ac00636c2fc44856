package sportvision

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lukman83/sportvision-scrap/internal/httputil"
)

// StaticFetcher retrieves listing pages with a single plain GET.
type StaticFetcher struct {
	client *http.Client
}

func NewStaticFetcher(client *http.Client) *StaticFetcher {
	if client == nil {
		client = httputil.NewHTTPClient(nil)
	}
	return &StaticFetcher{client: client}
}

func (s *StaticFetcher) Name() string { return "http" }

// Fetch issues one GET without retries or extra headers. Non-200 statuses
// and non-text bodies are errors.
func (s *StaticFetcher) Fetch(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !httputil.IsTextContent(ct) {
		return nil, fmt.Errorf("non-text body %q", ct)
	}

	body, err := httputil.ReadBody(resp)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
