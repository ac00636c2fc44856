package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
	"golang.org/x/sync/singleflight"
)

// ErrDisallowed marks a request refused by the origin's robots.txt.
var ErrDisallowed = errors.New("disallowed by robots.txt")

type robotsEntry struct {
	data    *robotstxt.RobotsData
	expires time.Time
}

// RobotsChecker answers robots.txt queries per origin. Rules are cached for
// TTL and concurrent misses on one origin share a single download.
type RobotsChecker struct {
	client  *http.Client
	enabled bool
	TTL     time.Duration

	mu      sync.Mutex
	entries map[string]robotsEntry
	group   singleflight.Group
}

// NewRobotsChecker creates a checker. A disabled checker allows everything
// without any network traffic.
func NewRobotsChecker(client *http.Client, enabled bool) *RobotsChecker {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &RobotsChecker{
		client:  client,
		enabled: enabled,
		TTL:     time.Hour,
		entries: make(map[string]robotsEntry),
	}
}

// Enabled reports whether the checker consults robots.txt at all.
func (r *RobotsChecker) Enabled() bool { return r != nil && r.enabled }

// IsAllowed reports whether agent may fetch u. An origin whose robots.txt
// cannot be retrieved allows the request.
func (r *RobotsChecker) IsAllowed(ctx context.Context, agent string, u *url.URL) bool {
	if !r.Enabled() {
		return true
	}
	data, err := r.rules(ctx, u.Scheme+"://"+u.Host)
	if err != nil {
		return true
	}
	return data.TestAgent(u.EscapedPath(), agent)
}

func (r *RobotsChecker) rules(ctx context.Context, origin string) (*robotstxt.RobotsData, error) {
	if data, ok := r.cached(origin); ok {
		return data, nil
	}

	v, err, _ := r.group.Do(origin, func() (any, error) {
		if data, ok := r.cached(origin); ok {
			return data, nil
		}
		data, err := r.download(ctx, origin)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.entries[origin] = robotsEntry{data: data, expires: time.Now().Add(r.TTL)}
		r.mu.Unlock()
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*robotstxt.RobotsData), nil
}

func (r *RobotsChecker) cached(origin string) (*robotstxt.RobotsData, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[origin]
	if !ok || !time.Now().Before(e.expires) {
		return nil, false
	}
	return e.data, true
}

func (r *RobotsChecker) download(ctx context.Context, origin string) (*robotstxt.RobotsData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, origin+"/robots.txt", nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 512<<10))
	if err != nil {
		return nil, fmt.Errorf("read robots.txt: %w", err)
	}
	return robotstxt.FromStatusAndBytes(resp.StatusCode, body)
}
