package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lukman83/sportvision-scrap/internal/models"
)

// DefaultPath is where the legacy mode writes its results.
const DefaultPath = "products.json"

// Encode writes products as a two-space indented JSON array. A nil slice is
// written as [].
func Encode(w io.Writer, products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("encode products: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write products: %w", err)
	}
	return nil
}

// WriteJSON creates or truncates path and writes products to it.
func WriteJSON(path string, products []models.Product) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("couldn't open/create %s: %w", path, err)
	}
	if err := Encode(f, products); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadJSON loads a file written by WriteJSON.
func ReadJSON(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return products, nil
}
