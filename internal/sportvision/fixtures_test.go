package sportvision

import (
	"fmt"
	"strings"
)

// card describes one synthetic listing node. Empty optional fields are
// omitted from the markup; required ones are omitted when the matching
// drop flag is set.
type card struct {
	image       string
	category    string
	brand       string
	title       string
	description string
	price       string
	discount    string

	noImage bool
	noTitle bool
	noPrice bool
}

func fullCard(n int) card {
	return card{
		image:       fmt.Sprintf("/files/images/thumbs_350/product-%d_350_350px.jpg", n),
		category:    "Patike",
		brand:       "NIKE",
		title:       fmt.Sprintf("Air Max %d", n),
		description: "Muške patike",
		price:       fmt.Sprintf("%d.990,00 RSD", n),
		discount:    "-25%",
	}
}

func (c card) html() string {
	var b strings.Builder
	b.WriteString(`<div class="wrapper-gridthree-view product-item"><div class="row"><div class="item-data">`)
	b.WriteString(`<div class="img-wrapper">`)
	if c.discount != "" {
		fmt.Fprintf(&b, `<span class="discount-badge">%s</span>`, c.discount)
	}
	if !c.noImage {
		fmt.Fprintf(&b, `<img src=" %s " alt="">`, c.image)
	}
	b.WriteString(`</div>`)
	b.WriteString(`<div class="text-wrapper">`)
	fmt.Fprintf(&b, `<div class="category-wrapper"><span> %s </span></div>`, c.category)
	if c.brand != "" {
		fmt.Fprintf(&b, `<div class="brand"><a href="#"> %s </a></div>`, c.brand)
	}
	if !c.noTitle {
		fmt.Fprintf(&b, `<div class="title"><a href="#"><span>Proizvod</span> %s </a></div>`, c.title)
	}
	b.WriteString(`</div>`)
	if c.description != "" {
		fmt.Fprintf(&b, `<div class="product-shortname">%s</div>`, c.description)
	}
	if !c.noPrice {
		fmt.Fprintf(&b, `<div class="prices-wrapper"><div class="current-price"><span>Cena:</span> %s </div></div>`, c.price)
	}
	b.WriteString(`</div></div></div>`)
	return b.String()
}

func page(cards ...card) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><title>Sport Vision</title></head><body>\n")
	b.WriteString(`<div class="product-grid">` + "\n")
	for _, c := range cards {
		b.WriteString(c.html())
		b.WriteString("\n")
	}
	b.WriteString("</div>\n</body></html>")
	return b.String()
}
