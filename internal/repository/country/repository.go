package country

import "context"

// Repository answers country questions needed by the cart views.
type Repository interface {
	// ActiveForAddress reports whether the country of the given address
	// is currently enabled for the shop.
	ActiveForAddress(ctx context.Context, addressID int) (bool, error)
}
