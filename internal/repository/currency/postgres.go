package currency

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

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Currency, error) {
	const q = `SELECT id, name, iso_code FROM currencies WHERE id = $1`
	var c domain.Currency
	err := r.pool.QueryRow(ctx, q, id).Scan(&c.ID, &c.Name, &c.ISOCode)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get currency %d: %w", id, err)
	}
	return &c, nil
}
