package country

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shopfront/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ActiveForAddress(ctx context.Context, addressID int) (bool, error) {
	const q = `
SELECT co.active
FROM addresses a
JOIN countries co ON co.id = a.country_id
WHERE a.id = $1
`
	var active bool
	err := r.pool.QueryRow(ctx, q, addressID).Scan(&active)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, domain.ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("get country for address %d: %w", addressID, err)
	}
	return active, nil
}
