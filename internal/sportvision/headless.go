package sportvision

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultMaxBrowsers bounds concurrent browsers when none is configured.
const DefaultMaxBrowsers = 4

// HeadlessFetcher renders listing pages in a headless browser, for when the
// product grid is filled in by JavaScript.
//
// Every Fetch launches its own browser. Page tasks still start together, but
// at most maxBrowsers of them hold a browser at once; the rest wait for a
// free slot or for ctx to end.
type HeadlessFetcher struct {
	launcherURL string // optional remote launcher URL
	slots       chan struct{}
}

func NewHeadlessFetcher(launcherURL string, maxBrowsers int) *HeadlessFetcher {
	if maxBrowsers <= 0 {
		maxBrowsers = DefaultMaxBrowsers
	}
	return &HeadlessFetcher{
		launcherURL: launcherURL,
		slots:       make(chan struct{}, maxBrowsers),
	}
}

func (h *HeadlessFetcher) Name() string { return "headless" }

// MaxBrowsers reports the concurrent browser cap.
func (h *HeadlessFetcher) MaxBrowsers() int { return cap(h.slots) }

func (h *HeadlessFetcher) Fetch(ctx context.Context, pageURL string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	select {
	case h.slots <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-h.slots }()

	page, cleanup, err := h.openPage(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	timed := page.Timeout(15 * time.Second)
	if err := timed.WaitStable(time.Second); err == nil {
		_ = timed.WaitDOMStable(2*time.Second, 0.1)
	}

	content, err := page.HTML()
	if err != nil {
		return nil, fmt.Errorf("get page HTML: %w", err)
	}
	return []byte(content), nil
}

func (h *HeadlessFetcher) openPage(ctx context.Context, pageURL string) (*rod.Page, func(), error) {
	var l *launcher.Launcher
	if h.launcherURL != "" {
		l = launcher.MustNewManaged(h.launcherURL)
	} else {
		l = launcher.New().Headless(true).Logger(io.Discard)
	}
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("connect browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: pageURL})
	if err != nil {
		browser.Close()
		l.Kill()
		return nil, nil, fmt.Errorf("open page: %w", err)
	}

	cleanup := func() {
		page.Close()
		browser.Close()
		l.Cleanup()
	}
	return page, cleanup, nil
}
