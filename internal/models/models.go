package models

// Product is one listing entry extracted from a sportvision.rs product grid.
//
// ID is the category marker shown on the listing card. It classifies the
// product and is not unique across records.
type Product struct {
	ImageURL         string `json:"image_url"`
	ImageURLHighRes  string `json:"image_url_high_res"`
	BrandName        string `json:"brand_name"`
	Title            string `json:"title"`
	ShortDescription string `json:"short_description"`
	CurrentPrice     string `json:"current_price"`
	ID               string `json:"id"`
	Stock            int    `json:"stock"`
	Discount         int    `json:"discount"`
}

// Selection asks for pages [0, Pages) of one category.
type Selection struct {
	Category string `json:"category"`
	Pages    int    `json:"pages"`
}

// ScrapeRequest is a single page to fetch.
type ScrapeRequest struct {
	Category string
	Page     int
	URL      string
}
