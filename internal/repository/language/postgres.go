package language

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

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Language, error) {
	const q = `SELECT id, name, iso_code, locale FROM languages WHERE id = $1`
	var l domain.Language
	err := r.pool.QueryRow(ctx, q, id).Scan(&l.ID, &l.Name, &l.ISOCode, &l.Locale)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get language %d: %w", id, err)
	}
	return &l, nil
}
