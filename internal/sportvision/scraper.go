package sportvision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lukman83/sportvision-scrap/internal/models"
	"github.com/lukman83/sportvision-scrap/internal/platform"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("sportvision-scrap/internal/sportvision")

// Options configures a Scraper.
type Options struct {
	// BaseURL is the site origin; DefaultBaseURL when empty.
	BaseURL string
	// Strict aborts the run on the first failure in launch order instead of
	// skipping the failed page or node.
	Strict bool
	Logger *slog.Logger
}

// Scraper fans out one fetch task per listing page and merges the results
// in launch order.
type Scraper struct {
	fetcher platform.Fetcher
	parser  *Parser
	baseURL string
	strict  bool
	logger  *slog.Logger
}

func NewScraper(fetcher platform.Fetcher, parser *Parser, opts Options) *Scraper {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Scraper{
		fetcher: fetcher,
		parser:  parser,
		baseURL: opts.BaseURL,
		strict:  opts.Strict,
		logger:  opts.Logger,
	}
}

// PageResult is the outcome of one fetch task.
type PageResult struct {
	Request  models.ScrapeRequest
	Products []models.Product
	// Err is set when the whole page failed (a *FetchError or parse error).
	Err error
	// NodeErrs holds per-node extraction failures of an otherwise good page.
	NodeErrs []error
}

// Failure is one skipped page or listing node.
type Failure struct {
	URL string `json:"url"`
	// Node is the listing node index, or -1 when the whole page failed.
	Node  int    `json:"node"`
	Error string `json:"error"`
	err   error
}

// Cause returns the underlying error for use with errors.Is and errors.As.
func (f Failure) Cause() error { return f.err }

// Report is the merged outcome of a run.
type Report struct {
	Products []models.Product `json:"products"`
	Failures []Failure        `json:"failures,omitempty"`
	Pages    int              `json:"pages"`
}

// Requests expands selections into page requests in launch order.
func (t *Scraper) Requests(selections []models.Selection) ([]models.ScrapeRequest, error) {
	var reqs []models.ScrapeRequest
	for _, sel := range selections {
		c, err := LookupCategory(sel.Category)
		if err != nil {
			return nil, err
		}
		if sel.Pages < 0 {
			return nil, fmt.Errorf("category %s: negative page count %d", c.Name, sel.Pages)
		}
		for page := 0; page < sel.Pages; page++ {
			reqs = append(reqs, models.ScrapeRequest{
				Category: c.Name,
				Page:     page,
				URL:      PageURL(t.baseURL, c, page),
			})
		}
	}
	return reqs, nil
}

// Run scrapes every page of every selection concurrently. All tasks are
// awaited; records are appended in launch order regardless of completion
// order.
func (t *Scraper) Run(ctx context.Context, selections []models.Selection) (*Report, error) {
	reqs, err := t.Requests(selections)
	if err != nil {
		return nil, err
	}

	results := make([]PageResult, len(reqs))
	var g errgroup.Group
	for i, req := range reqs {
		g.Go(func() error {
			results[i] = t.fetchPage(ctx, req)
			return nil
		})
	}
	_ = g.Wait()

	return t.merge(results)
}

func (t *Scraper) merge(results []PageResult) (*Report, error) {
	report := &Report{Products: []models.Product{}, Pages: len(results)}
	failedPages := 0
	for _, r := range results {
		if r.Err != nil {
			if t.strict {
				return nil, r.Err
			}
			failedPages++
			report.Failures = append(report.Failures, Failure{
				URL: r.Request.URL, Node: -1, Error: r.Err.Error(), err: r.Err,
			})
			continue
		}
		for _, nerr := range r.NodeErrs {
			if t.strict {
				return nil, fmt.Errorf("%s: %w", r.Request.URL, nerr)
			}
			idx := -1
			var ne *NodeError
			if errors.As(nerr, &ne) {
				idx = ne.Index
			}
			report.Failures = append(report.Failures, Failure{
				URL: r.Request.URL, Node: idx, Error: nerr.Error(), err: nerr,
			})
		}
		report.Products = append(report.Products, r.Products...)
	}

	if len(results) > 0 && failedPages == len(results) {
		return report, fmt.Errorf("%w: all %d pages failed", ErrNothingScraped, len(results))
	}
	return report, nil
}

// fetchPage is one fetch task: Pending → Running → Succeeded | Failed.
func (t *Scraper) fetchPage(ctx context.Context, req models.ScrapeRequest) PageResult {
	ctx, span := tracer.Start(ctx, "sportvision.page")
	defer span.End()
	span.SetAttributes(
		attribute.String("category", req.Category),
		attribute.Int("page", req.Page),
		attribute.String("url", req.URL),
	)

	res := PageResult{Request: req}

	body, err := t.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		res.Err = &FetchError{URL: req.URL, Err: err}
		span.SetStatus(codes.Error, res.Err.Error())
		t.logger.Warn("page fetch failed", "url", req.URL, "error", err)
		platform.Progressf(ctx, "Page %s/%d failed", req.Category, req.Page)
		return res
	}

	seq, err := t.parser.Parse(ctx, bytes.NewReader(body))
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", req.URL, err)
		span.SetStatus(codes.Error, res.Err.Error())
		t.logger.Warn("page parse failed", "url", req.URL, "error", err)
		return res
	}
	res.Products, res.NodeErrs = Collect(seq)

	for _, nerr := range res.NodeErrs {
		t.logger.Warn("listing node skipped", "url", req.URL, "error", nerr)
	}
	t.logger.Debug("page scraped",
		"url", req.URL,
		"products", len(res.Products),
		"skipped", len(res.NodeErrs),
	)
	span.SetAttributes(attribute.Int("products", len(res.Products)))
	platform.Progressf(ctx, "Page %s/%d: %d products", req.Category, req.Page, len(res.Products))
	return res
}
