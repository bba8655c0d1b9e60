package cart

import (
	"context"

	"github.com/shopspring/decimal"

	"shopfront/internal/domain"
)

// Repository exposes the cart aggregate and the computed views derived
// from it.
type Repository interface {
	GetByID(ctx context.Context, id int) (*domain.Cart, error)

	// Summary computes the cart's pricing snapshot: line items with
	// pre-formatted prices, applied discounts, money totals and the
	// assigned carrier.
	Summary(ctx context.Context, cart domain.Cart) (*domain.PricingSummary, error)

	// DeliveryOptionsByAddress returns, for every address of the cart's
	// customer, the candidate carrier groups able to deliver there.
	DeliveryOptionsByAddress(ctx context.Context, cart domain.Cart) (map[int][]domain.DeliveryOptionGroup, error)
}

// PriceFormatter renders an amount in an ISO 4217 currency. The summary
// uses it to produce the per-line price strings.
type PriceFormatter interface {
	FormatPrice(amount decimal.Decimal, isoCode string) (string, error)
}
