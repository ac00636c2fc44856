package cmd

import (
	"fmt"
	"io"

	"github.com/lukman83/sportvision-scrap/internal/models"
	"github.com/lukman83/sportvision-scrap/internal/sportvision"
)

// printProductsTable prints products in a human-friendly card layout.
func printProductsTable(w io.Writer, products []models.Product) {
	for i, p := range products {
		if i > 0 {
			fmt.Fprintln(w)
		}
		name := p.Title
		if p.BrandName != "" {
			name = p.BrandName + " " + name
		}
		fmt.Fprintf(w, " %d. %s\n", i+1, name)

		priceLine := "    Price: " + p.CurrentPrice
		if p.Discount > 0 {
			priceLine += fmt.Sprintf("  (-%d%%)", p.Discount)
		}
		priceLine += fmt.Sprintf("  |  Stock: %d", p.Stock)
		fmt.Fprintln(w, priceLine)

		if p.ID != "" {
			fmt.Fprintf(w, "    Category: %s\n", p.ID)
		}
		if p.ShortDescription != "" {
			fmt.Fprintf(w, "    %s\n", truncate(p.ShortDescription, 80))
		}
		fmt.Fprintf(w, "    %s\n", p.ImageURLHighRes)
	}
}

// printFailures summarises skipped pages and listing nodes.
func printFailures(w io.Writer, failures []sportvision.Failure) {
	if len(failures) == 0 {
		return
	}
	fmt.Fprintf(w, "Skipped %d item(s):\n", len(failures))
	for _, f := range failures {
		if f.Node < 0 {
			fmt.Fprintf(w, "  page %s: %s\n", f.URL, f.Error)
			continue
		}
		fmt.Fprintf(w, "  node %d on %s: %s\n", f.Node, f.URL, f.Error)
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
