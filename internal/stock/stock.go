// Package stock provides the estimators that fill Product.Stock.
//
// The listing pages carry no inventory data. The default Random estimator
// produces a placeholder and does not represent real stock levels.
package stock

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/lukman83/sportvision-scrap/internal/models"
)

// Max is the largest stock value a record may carry.
const Max = 127

// Estimator produces a stock figure for an extracted product.
type Estimator interface {
	Name() string
	Estimate(ctx context.Context, p models.Product) (int, error)
}

// Clamp bounds n to [0, Max].
func Clamp(n int) int {
	switch {
	case n < 0:
		return 0
	case n > Max:
		return Max
	default:
		return n
	}
}

// Random draws uniformly from [0, Max], independent of the product.
type Random struct{}

func (Random) Name() string { return "random" }

func (Random) Estimate(context.Context, models.Product) (int, error) {
	return rand.IntN(Max + 1), nil
}

// Fixed always returns N.
type Fixed struct {
	N int
}

func (f Fixed) Name() string { return fmt.Sprintf("fixed(%d)", f.N) }

func (f Fixed) Estimate(context.Context, models.Product) (int, error) {
	return Clamp(f.N), nil
}
