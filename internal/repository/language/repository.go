package language

import (
	"context"

	"shopfront/internal/domain"
)

type Repository interface {
	GetByID(ctx context.Context, id int) (*domain.Language, error)
}
