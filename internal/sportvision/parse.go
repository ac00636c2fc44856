package sportvision

import (
	"context"
	"fmt"
	"io"
	"iter"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/lukman83/sportvision-scrap/internal/models"
	"golang.org/x/net/html"
)

// selListing matches one product card in the listing grid.
var selListing = cascadia.MustCompile(".wrapper-gridthree-view.product-item .row .item-data")

// Parser locates listing nodes in a page and extracts each one.
type Parser struct {
	extractor *Extractor
}

func NewParser(e *Extractor) *Parser {
	return &Parser{extractor: e}
}

// Parse reads a whole page and returns its listing nodes as a lazy sequence
// in document order. Each node yields either a Product or a *NodeError.
// Ranging over the sequence again re-runs extraction on the same document.
func (p *Parser) Parse(ctx context.Context, r io.Reader) (iter.Seq2[models.Product, error], error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}
	nodes := goquery.NewDocumentFromNode(root).FindMatcher(selListing)

	return func(yield func(models.Product, error) bool) {
		for i := range nodes.Nodes {
			prod, err := p.extractor.Extract(ctx, nodes.Eq(i))
			if err != nil {
				err = &NodeError{Index: i, Err: err}
			}
			if !yield(prod, err) {
				return
			}
		}
	}, nil
}

// Collect materialises a parsed sequence into records and per-node errors.
func Collect(seq iter.Seq2[models.Product, error]) ([]models.Product, []error) {
	var products []models.Product
	var errs []error
	for prod, err := range seq {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		products = append(products, prod)
	}
	return products, errs
}
