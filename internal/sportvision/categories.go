package sportvision

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lukman83/sportvision-scrap/internal/models"
)

// DefaultBaseURL is the origin every listing and image path resolves against.
const DefaultBaseURL = "https://sportvision.rs"

// LegacyCategory is the catch-all product listing used by the single-category mode.
const LegacyCategory = "proizvodi"

// Category is a site section with its own paginated listing.
type Category struct {
	Name  string
	Path  string
	Label string
}

var categories = []Category{
	{Name: "odeca", Path: "odeca", Label: "Apparel"},
	{Name: "obuca", Path: "obuca", Label: "Footwear"},
	{Name: "oprema", Path: "oprema", Label: "Equipment"},
	{Name: "aksesoari", Path: "aksesoari", Label: "Accessories"},
	{Name: LegacyCategory, Path: "proizvodi", Label: "All products (legacy)"},
}

var categoryByName = func() map[string]Category {
	m := make(map[string]Category, len(categories))
	for _, c := range categories {
		m[c.Name] = c
	}
	return m
}()

// Categories returns the known categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// LookupCategory resolves a category name, case-insensitively.
func LookupCategory(name string) (Category, error) {
	c, ok := categoryByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return c, nil
}

// PageURL builds the listing URL for one page of c.
func PageURL(baseURL string, c Category, page int) string {
	return fmt.Sprintf("%s/%s/page-%d", strings.TrimRight(baseURL, "/"), c.Path, page)
}

// ParseSelection parses "category=pages", e.g. "odeca=2".
func ParseSelection(arg string) (models.Selection, error) {
	name, count, ok := strings.Cut(arg, "=")
	if !ok {
		return models.Selection{}, fmt.Errorf("selection %q: want category=pages", arg)
	}
	c, err := LookupCategory(name)
	if err != nil {
		return models.Selection{}, err
	}
	pages, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil || pages < 0 {
		return models.Selection{}, fmt.Errorf("selection %q: page count must be a non-negative integer", arg)
	}
	return models.Selection{Category: c.Name, Pages: pages}, nil
}

// ParseSelections parses each argument, splitting comma-separated lists.
func ParseSelections(args []string) ([]models.Selection, error) {
	var out []models.Selection
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			sel, err := ParseSelection(part)
			if err != nil {
				return nil, err
			}
			out = append(out, sel)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no selections given")
	}
	return out, nil
}
