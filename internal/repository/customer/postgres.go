package customer

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

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	const q = `SELECT id, first_name, last_name, email FROM customers WHERE id = $1`
	var c domain.Customer
	err := r.pool.QueryRow(ctx, q, id).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get customer %d: %w", id, err)
	}
	return &c, nil
}

func (r *postgresRepo) ListAddresses(ctx context.Context, customerID, languageID int) ([]domain.Address, error) {
	const q = `
SELECT a.id,
       a.alias,
       a.first_name,
       a.last_name,
       COALESCE(a.company, ''),
       a.address1,
       COALESCE(a.address2, ''),
       a.postcode,
       a.city,
       a.country_id,
       COALESCE(cl.name, co.name),
       COALESCE(a.phone, '')
FROM addresses a
JOIN countries co ON co.id = a.country_id
LEFT JOIN country_langs cl ON cl.country_id = co.id AND cl.language_id = $2
WHERE a.customer_id = $1 AND NOT a.deleted
ORDER BY a.id
`
	rows, err := r.pool.Query(ctx, q, customerID, languageID)
	if err != nil {
		return nil, fmt.Errorf("query addresses: %w", err)
	}
	defer rows.Close()

	var addresses []domain.Address
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(
			&a.ID,
			&a.Alias,
			&a.FirstName,
			&a.LastName,
			&a.Company,
			&a.Address1,
			&a.Address2,
			&a.Postcode,
			&a.City,
			&a.CountryID,
			&a.Country,
			&a.Phone,
		); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		addresses = append(addresses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate addresses: %w", err)
	}
	return addresses, nil
}
