package transport

import (
	"bufio"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
)

// ProxyProvider abstracts a proxy backend.
type ProxyProvider interface {
	Transport() http.RoundTripper
	Name() string
}

// ProxyRotator cycles through proxy providers in round-robin order.
type ProxyRotator struct {
	providers []ProxyProvider
	mu        sync.Mutex
	idx       int
}

// NewProxyRotator returns nil if no providers are given.
func NewProxyRotator(providers []ProxyProvider) *ProxyRotator {
	if len(providers) == 0 {
		return nil
	}
	return &ProxyRotator{providers: providers}
}

func (p *ProxyRotator) Next() ProxyProvider {
	p.mu.Lock()
	defer p.mu.Unlock()
	provider := p.providers[p.idx%len(p.providers)]
	p.idx++
	return provider
}

// Len returns the number of providers in rotation.
func (p *ProxyRotator) Len() int {
	if p == nil {
		return 0
	}
	return len(p.providers)
}

// HTTPProxyProvider routes through a single HTTP or SOCKS5 proxy URL.
type HTTPProxyProvider struct {
	URL       *url.URL
	transport http.RoundTripper
	once      sync.Once
}

func (h *HTTPProxyProvider) Name() string { return h.URL.Redacted() }

func (h *HTTPProxyProvider) Transport() http.RoundTripper {
	h.once.Do(func() {
		h.transport = &http.Transport{
			Proxy:               http.ProxyURL(h.URL),
			MaxIdleConnsPerHost: 100,
		}
	})
	return h.transport
}

// LoadProxyFile reads one proxy URL per line. Blank lines and lines
// starting with '#' are ignored.
func LoadProxyFile(path string) ([]ProxyProvider, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open proxy file: %w", err)
	}
	defer f.Close()

	var providers []ProxyProvider
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("proxy file %s:%d: invalid proxy URL %q", path, line, raw)
		}
		providers = append(providers, &HTTPProxyProvider{URL: u})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read proxy file: %w", err)
	}
	return providers, nil
}
