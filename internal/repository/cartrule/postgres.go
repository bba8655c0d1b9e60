package cartrule

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

func (r *postgresRepo) ListByCart(ctx context.Context, cartID int, onlyFreeShipping bool) ([]domain.CartRule, error) {
	const q = `
SELECT cr.id, cr.name, COALESCE(cr.description, ''), COALESCE(cr.code, ''), cr.value, cr.free_shipping
FROM cart_cart_rules ccr
JOIN cart_rules cr ON cr.id = ccr.cart_rule_id
WHERE ccr.cart_id = $1 AND (NOT $2 OR cr.free_shipping)
ORDER BY ccr.position
`
	rows, err := r.pool.Query(ctx, q, cartID, onlyFreeShipping)
	if err != nil {
		return nil, fmt.Errorf("query cart rules: %w", err)
	}
	defer rows.Close()

	var rules []domain.CartRule
	for rows.Next() {
		var rule domain.CartRule
		if err := rows.Scan(&rule.ID, &rule.Name, &rule.Description, &rule.Code, &rule.Value, &rule.FreeShipping); err != nil {
			return nil, fmt.Errorf("scan cart rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart rules: %w", err)
	}
	return rules, nil
}

func (r *postgresRepo) IDByCode(ctx context.Context, code string) (int, error) {
	const q = `SELECT id FROM cart_rules WHERE code = $1`
	var id int
	err := r.pool.QueryRow(ctx, q, code).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("get cart rule by code %q: %w", code, err)
	}
	return id, nil
}
