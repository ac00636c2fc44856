package sportvision

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/lukman83/sportvision-scrap/internal/models"
	"github.com/lukman83/sportvision-scrap/internal/stock"
	"golang.org/x/net/html"
)

// Field selectors, relative to one listing node.
var (
	selImage       = cascadia.MustCompile(".img-wrapper img")
	selCategory    = cascadia.MustCompile(".text-wrapper .category-wrapper span")
	selBrand       = cascadia.MustCompile(".text-wrapper .brand a")
	selTitle       = cascadia.MustCompile(".text-wrapper .title a")
	selDescription = cascadia.MustCompile(".product-shortname")
	selPrice       = cascadia.MustCompile(".prices-wrapper .current-price")
	selDiscount    = cascadia.MustCompile(".discount-badge")
)

// Field names as reported in MissingFieldError.
const (
	FieldImageURL     = "image_url"
	FieldID           = "id"
	FieldTitle        = "title"
	FieldCurrentPrice = "current_price"
)

// HighRes rewrites a thumbnail URL to its 800px variant. Applying it twice
// gives the same result as applying it once.
func HighRes(imageURL string) string {
	return highRes.Replace(imageURL)
}

var highRes = strings.NewReplacer(
	"thumbs_350", "thumbs_800",
	"350_350px", "800_800px",
)

// Extractor turns one listing node into a Product.
type Extractor struct {
	base   *url.URL
	stock  stock.Estimator
	logger *slog.Logger
}

// NewExtractor resolves relative image paths against baseURL and fills
// stock from est (Random when nil).
func NewExtractor(baseURL string, est stock.Estimator, logger *slog.Logger) (*Extractor, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	if est == nil {
		est = stock.Random{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{base: base, stock: est, logger: logger}, nil
}

// Extract reads every field from node. A missing required field yields a
// *MissingFieldError; missing optional fields take their zero defaults.
func (e *Extractor) Extract(ctx context.Context, node *goquery.Selection) (models.Product, error) {
	var p models.Product

	src, ok := node.FindMatcher(selImage).First().Attr("src")
	src = strings.TrimSpace(src)
	if !ok || src == "" {
		return models.Product{}, &MissingFieldError{Field: FieldImageURL}
	}
	resolved, err := e.base.Parse(src)
	if err != nil {
		return models.Product{}, &MissingFieldError{Field: FieldImageURL}
	}
	p.ImageURL = resolved.String()
	p.ImageURLHighRes = HighRes(p.ImageURL)

	if p.ID, ok = segment(node.FindMatcher(selCategory), 0); !ok {
		return models.Product{}, &MissingFieldError{Field: FieldID}
	}
	if p.Title, ok = segment(node.FindMatcher(selTitle), 1); !ok {
		return models.Product{}, &MissingFieldError{Field: FieldTitle}
	}
	if p.CurrentPrice, ok = segment(node.FindMatcher(selPrice), 1); !ok {
		return models.Product{}, &MissingFieldError{Field: FieldCurrentPrice}
	}

	p.BrandName = strings.TrimSpace(node.FindMatcher(selBrand).First().Text())
	p.ShortDescription, _ = segment(node.FindMatcher(selDescription), 0)

	if badge := node.FindMatcher(selDiscount).First(); badge.Length() > 0 {
		p.Discount = parseDiscount(badge.Text())
	}

	n, err := e.stock.Estimate(ctx, p)
	if err != nil {
		e.logger.Debug("stock estimate failed", "estimator", e.stock.Name(), "error", err)
		n = 0
	}
	p.Stock = stock.Clamp(n)

	return p, nil
}

// segment returns the trimmed i-th descendant text node of the first element
// in sel. Whitespace-only nodes count toward i.
func segment(sel *goquery.Selection, i int) (string, bool) {
	if sel.Length() == 0 {
		return "", false
	}
	segs := textSegments(sel.Nodes[0])
	if i >= len(segs) {
		return "", false
	}
	return strings.TrimSpace(segs[i]), true
}

func textSegments(n *html.Node) []string {
	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				out = append(out, c.Data)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// parseDiscount reads badge text such as "-25%" or "25 %". Text that does
// not parse gives 0.
func parseDiscount(s string) int {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
