package cartrule

import (
	"context"

	"shopfront/internal/domain"
)

// Repository looks up promotion rules.
type Repository interface {
	// ListByCart returns the rules applied to a cart, in application
	// order. With onlyFreeShipping set, rules without the free-shipping
	// action are skipped.
	ListByCart(ctx context.Context, cartID int, onlyFreeShipping bool) ([]domain.CartRule, error)

	// IDByCode resolves a rule code to its id. Returns
	// domain.ErrNotFound when no rule carries the code.
	IDByCode(ctx context.Context, code string) (int, error)
}
