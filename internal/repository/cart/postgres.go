package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"shopfront/internal/domain"
)

type postgresRepo struct {
	pool      *pgxpool.Pool
	formatter PriceFormatter
	logger    zerolog.Logger
}

// NewPostgres returns a Repository backed by Postgres. The formatter is
// used for the pre-formatted price strings inside pricing summaries.
func NewPostgres(pool *pgxpool.Pool, formatter PriceFormatter, logger zerolog.Logger) Repository {
	return &postgresRepo{pool: pool, formatter: formatter, logger: logger}
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Cart, error) {
	const q = `
SELECT id, customer_id, currency_id, language_id, delivery_address_id, invoice_address_id, carrier_id
FROM carts
WHERE id = $1
`
	var c domain.Cart
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&c.ID,
		&c.CustomerID,
		&c.CurrencyID,
		&c.LanguageID,
		&c.DeliveryAddressID,
		&c.InvoiceAddressID,
		&c.CarrierID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get cart %d: %w", id, err)
	}
	return &c, nil
}

func (r *postgresRepo) Summary(ctx context.Context, cart domain.Cart) (*domain.PricingSummary, error) {
	iso, err := r.currencyISO(ctx, cart.CurrencyID)
	if err != nil {
		return nil, err
	}

	s := &domain.PricingSummary{CurrencyISO: iso}

	if err := r.summaryProducts(ctx, cart.ID, s); err != nil {
		return nil, err
	}
	freeShipping, err := r.summaryDiscounts(ctx, cart.ID, s)
	if err != nil {
		return nil, err
	}
	if err := r.summaryShipping(ctx, cart.CarrierID, freeShipping, s); err != nil {
		return nil, err
	}

	s.Total = s.TotalProducts.Sub(s.TotalDiscounts).Add(s.TotalShipping).Add(s.TotalTax)
	if s.Total.IsNegative() {
		s.Total = decimal.Zero
	}
	s.Total = s.Total.Round(2)
	s.TotalExclTax = s.Total.Sub(s.TotalTax).Round(2)
	if s.TotalExclTax.IsNegative() {
		s.TotalExclTax = decimal.Zero
	}

	r.logger.Debug().
		Int("cart_id", cart.ID).
		Int("products", len(s.Products)).
		Int("discounts", len(s.Discounts)).
		Str("total", s.Total.String()).
		Msg("computed cart summary")

	return s, nil
}

func (r *postgresRepo) currencyISO(ctx context.Context, currencyID int) (string, error) {
	const q = `SELECT iso_code FROM currencies WHERE id = $1`
	var iso string
	err := r.pool.QueryRow(ctx, q, currencyID).Scan(&iso)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get currency %d: %w", currencyID, err)
	}
	return iso, nil
}

func (r *postgresRepo) summaryProducts(ctx context.Context, cartID int, s *domain.PricingSummary) error {
	const q = `
SELECT cp.product_id,
       COALESCE(cp.variant_id, 0),
       COALESCE(cp.customization_id, 0),
       p.name,
       COALESCE(v.label, ''),
       p.reference,
       p.link_rewrite,
       p.image_id,
       cp.quantity,
       p.price + COALESCE(v.price_impact, 0),
       p.tax_rate
FROM cart_products cp
JOIN products p ON p.id = cp.product_id
LEFT JOIN product_variants v ON v.id = cp.variant_id
WHERE cp.cart_id = $1
ORDER BY cp.position, cp.product_id
`
	rows, err := r.pool.Query(ctx, q, cartID)
	if err != nil {
		return fmt.Errorf("query cart products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p       domain.SummaryProduct
			unit    decimal.Decimal
			taxRate decimal.Decimal
		)
		if err := rows.Scan(
			&p.ProductID,
			&p.VariantID,
			&p.CustomizationID,
			&p.Name,
			&p.VariantLabel,
			&p.Reference,
			&p.LinkRewrite,
			&p.ImageID,
			&p.Quantity,
			&unit,
			&taxRate,
		); err != nil {
			return fmt.Errorf("scan cart product: %w", err)
		}

		line := unit.Mul(decimal.NewFromInt(int64(p.Quantity)))
		if p.UnitPrice, err = r.formatter.FormatPrice(unit, s.CurrencyISO); err != nil {
			return err
		}
		if p.LineTotal, err = r.formatter.FormatPrice(line, s.CurrencyISO); err != nil {
			return err
		}

		s.TotalProducts = s.TotalProducts.Add(line)
		s.TotalTax = s.TotalTax.Add(line.Mul(taxRate))
		s.Products = append(s.Products, p)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate cart products: %w", err)
	}

	s.TotalProducts = s.TotalProducts.Round(2)
	s.TotalTax = s.TotalTax.Round(2)
	return nil
}

func (r *postgresRepo) summaryDiscounts(ctx context.Context, cartID int, s *domain.PricingSummary) (bool, error) {
	const q = `
SELECT cr.id, cr.name, COALESCE(cr.description, ''), cr.value, cr.free_shipping
FROM cart_cart_rules ccr
JOIN cart_rules cr ON cr.id = ccr.cart_rule_id
WHERE ccr.cart_id = $1
ORDER BY ccr.position
`
	rows, err := r.pool.Query(ctx, q, cartID)
	if err != nil {
		return false, fmt.Errorf("query cart discounts: %w", err)
	}
	defer rows.Close()

	freeShipping := false
	for rows.Next() {
		var d domain.SummaryDiscount
		var free bool
		if err := rows.Scan(&d.RuleID, &d.Name, &d.Description, &d.Value, &free); err != nil {
			return false, fmt.Errorf("scan cart discount: %w", err)
		}
		freeShipping = freeShipping || free
		s.TotalDiscounts = s.TotalDiscounts.Add(d.Value)
		s.Discounts = append(s.Discounts, d)
	}
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("iterate cart discounts: %w", err)
	}

	s.TotalDiscounts = s.TotalDiscounts.Round(2)
	return freeShipping, nil
}

func (r *postgresRepo) summaryShipping(ctx context.Context, carrierID int, freeShipping bool, s *domain.PricingSummary) error {
	if carrierID == 0 {
		return nil
	}

	const q = `SELECT name, shipping_price FROM carriers WHERE id = $1 AND NOT deleted`
	var name string
	var price decimal.Decimal
	err := r.pool.QueryRow(ctx, q, carrierID).Scan(&name, &price)
	if errors.Is(err, pgx.ErrNoRows) {
		// A retired carrier leaves the cart without shipping info
		// until a new one is picked.
		return nil
	}
	if err != nil {
		return fmt.Errorf("get carrier %d: %w", carrierID, err)
	}

	s.Carrier = domain.AssignedCarrier{ID: carrierID, Name: name}
	if !freeShipping {
		s.TotalShipping = price.Round(2)
	}
	return nil
}

func (r *postgresRepo) DeliveryOptionsByAddress(ctx context.Context, cart domain.Cart) (map[int][]domain.DeliveryOptionGroup, error) {
	const q = `
SELECT a.id,
       cz.zone_id,
       c.id,
       c.name,
       COALESCE(json_object_agg(cl.language_id, cl.delay) FILTER (WHERE cl.language_id IS NOT NULL), '{}')
FROM addresses a
JOIN country_zones cz ON cz.country_id = a.country_id
JOIN carrier_zones crz ON crz.zone_id = cz.zone_id
JOIN carriers c ON c.id = crz.carrier_id AND c.active AND NOT c.deleted
LEFT JOIN carrier_langs cl ON cl.carrier_id = c.id
WHERE a.customer_id = $1 AND NOT a.deleted
GROUP BY a.id, cz.zone_id, c.id, c.name
ORDER BY a.id, cz.zone_id, c.id
`
	rows, err := r.pool.Query(ctx, q, cart.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("query delivery options: %w", err)
	}
	defer rows.Close()

	options := make(map[int][]domain.DeliveryOptionGroup)
	// One group per (address, zone) pair; rows arrive ordered so a zone
	// change closes the current group.
	lastAddress, lastZone := 0, 0

	for rows.Next() {
		var (
			addressID, zoneID int
			carrier           domain.CarrierOption
			delaysJSON        []byte
		)
		if err := rows.Scan(&addressID, &zoneID, &carrier.ID, &carrier.Name, &delaysJSON); err != nil {
			return nil, fmt.Errorf("scan delivery option: %w", err)
		}
		if carrier.Delays, err = parseDelays(delaysJSON); err != nil {
			return nil, fmt.Errorf("carrier %d delays: %w", carrier.ID, err)
		}

		if addressID != lastAddress || zoneID != lastZone {
			options[addressID] = append(options[addressID], domain.DeliveryOptionGroup{})
			lastAddress, lastZone = addressID, zoneID
		}
		groups := options[addressID]
		groups[len(groups)-1].Carriers = append(groups[len(groups)-1].Carriers, carrier)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate delivery options: %w", err)
	}

	return options, nil
}

func parseDelays(raw []byte) (map[int]string, error) {
	byLang := map[string]string{}
	if err := json.Unmarshal(raw, &byLang); err != nil {
		return nil, err
	}
	delays := make(map[int]string, len(byLang))
	for lang, delay := range byLang {
		id, err := strconv.Atoi(lang)
		if err != nil {
			return nil, fmt.Errorf("language id %q: %w", lang, err)
		}
		delays[id] = delay
	}
	return delays, nil
}
