package currency

import (
	"context"

	"shopfront/internal/domain"
)

type Repository interface {
	GetByID(ctx context.Context, id int) (*domain.Currency, error)
}
