package customer

import (
	"context"

	"shopfront/internal/domain"
)

// Repository exposes customers and their address books.
type Repository interface {
	GetByID(ctx context.Context, id int) (*domain.Customer, error)

	// ListAddresses returns the customer's non-deleted addresses with
	// country names localized for the given language.
	ListAddresses(ctx context.Context, customerID, languageID int) ([]domain.Address, error)
}
