package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Apply inserts demo shop data for manual testing: one customer with two
// addresses (one in a disabled country), a cart with two lines, a value
// discount and a back-office free-shipping voucher, and carriers that
// overlap across zones. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []struct {
		name string
		sql  string
	}{
		{"currencies", `
INSERT INTO currencies (id, name, iso_code) VALUES
    (1, 'US Dollar', 'USD')
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, iso_code = EXCLUDED.iso_code`},

		{"languages", `
INSERT INTO languages (id, name, iso_code, locale) VALUES
    (1, 'English (US)', 'en', 'en-US')
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, locale = EXCLUDED.locale`},

		{"zones", `
INSERT INTO zones (id, name) VALUES
    (1, 'North America'),
    (2, 'Americas')
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`},

		{"countries", `
INSERT INTO countries (id, name, iso_code, active) VALUES
    (1, 'United States', 'US', TRUE),
    (2, 'France', 'FR', FALSE)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, active = EXCLUDED.active`},

		{"country langs", `
INSERT INTO country_langs (country_id, language_id, name) VALUES
    (1, 1, 'United States'),
    (2, 1, 'France')
ON CONFLICT (country_id, language_id) DO UPDATE SET name = EXCLUDED.name`},

		{"country zones", `
INSERT INTO country_zones (country_id, zone_id) VALUES
    (1, 1),
    (1, 2),
    (2, 2)
ON CONFLICT DO NOTHING`},

		{"carriers", `
INSERT INTO carriers (id, name, shipping_price) VALUES
    (3, 'Standard', 4.90),
    (4, 'Express', 9.90)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, shipping_price = EXCLUDED.shipping_price`},

		{"carrier langs", `
INSERT INTO carrier_langs (carrier_id, language_id, delay) VALUES
    (3, 1, '3 to 5 business days'),
    (4, 1, 'Next day')
ON CONFLICT (carrier_id, language_id) DO UPDATE SET delay = EXCLUDED.delay`},

		// Standard serves both zones, so address 7 sees it in two
		// groups and the cart view must collapse the duplicate.
		{"carrier zones", `
INSERT INTO carrier_zones (carrier_id, zone_id) VALUES
    (3, 1),
    (3, 2),
    (4, 1)
ON CONFLICT DO NOTHING`},

		{"customers", `
INSERT INTO customers (id, first_name, last_name, email) VALUES
    (1, 'Ada', 'Winters', 'ada.winters@example.com')
ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email`},

		{"addresses", `
INSERT INTO addresses (id, customer_id, country_id, alias, first_name, last_name, company, address1, postcode, city, phone) VALUES
    (7, 1, 1, 'Home', 'Ada', 'Winters', NULL, '16 Main Street', '73000', 'Springfield', '555-0100'),
    (8, 1, 2, 'Holiday flat', 'Ada', 'Winters', NULL, '12 rue de la Paix', '75002', 'Paris', NULL)
ON CONFLICT (id) DO UPDATE SET alias = EXCLUDED.alias`},

		{"products", `
INSERT INTO products (id, name, reference, link_rewrite, image_id, price, tax_rate) VALUES
    (1, 'Printed Mug', 'demo_1', 'printed-mug', 11, 11.90, 0.0000),
    (2, 'Hummingbird T-Shirt', 'demo_2', 'hummingbird-tshirt', 12, 23.90, 0.0000)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price`},

		{"product variants", `
INSERT INTO product_variants (id, product_id, label, price_impact) VALUES
    (5, 2, 'Size: M, Color: White', 0)
ON CONFLICT (id) DO UPDATE SET label = EXCLUDED.label`},

		{"carts", `
INSERT INTO carts (id, customer_id, currency_id, language_id, delivery_address_id, invoice_address_id, carrier_id) VALUES
    (42, 1, 1, 1, 7, 7, 3)
ON CONFLICT (id) DO UPDATE SET delivery_address_id = EXCLUDED.delivery_address_id,
    invoice_address_id = EXCLUDED.invoice_address_id, carrier_id = EXCLUDED.carrier_id`},

		{"cart products", `
INSERT INTO cart_products (cart_id, product_id, variant_id, customization_id, quantity, position)
SELECT 42, 1, NULL, NULL, 2, 0
WHERE NOT EXISTS (SELECT 1 FROM cart_products WHERE cart_id = 42 AND product_id = 1)`},

		{"cart products variant", `
INSERT INTO cart_products (cart_id, product_id, variant_id, customization_id, quantity, position)
SELECT 42, 2, 5, NULL, 1, 1
WHERE NOT EXISTS (SELECT 1 FROM cart_products WHERE cart_id = 42 AND product_id = 2)`},

		{"cart rules", `
INSERT INTO cart_rules (id, name, description, code, value, free_shipping) VALUES
    (1, 'Summer promo', '5 off any order', 'SUMMER5', 5.00, FALSE),
    (2, 'Free shipping for cart 42', NULL, 'BO_ORDER_42', 0, TRUE)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, code = EXCLUDED.code`},

		{"cart cart rules", `
INSERT INTO cart_cart_rules (cart_id, cart_rule_id, position) VALUES
    (42, 1, 0),
    (42, 2, 1)
ON CONFLICT (cart_id, cart_rule_id) DO UPDATE SET position = EXCLUDED.position`},

		{"sequences", `
SELECT setval('currencies_id_seq', (SELECT MAX(id) FROM currencies)),
       setval('languages_id_seq', (SELECT MAX(id) FROM languages)),
       setval('zones_id_seq', (SELECT MAX(id) FROM zones)),
       setval('countries_id_seq', (SELECT MAX(id) FROM countries)),
       setval('carriers_id_seq', (SELECT MAX(id) FROM carriers)),
       setval('customers_id_seq', (SELECT MAX(id) FROM customers)),
       setval('addresses_id_seq', (SELECT MAX(id) FROM addresses)),
       setval('products_id_seq', (SELECT MAX(id) FROM products)),
       setval('product_variants_id_seq', (SELECT MAX(id) FROM product_variants)),
       setval('carts_id_seq', (SELECT MAX(id) FROM carts)),
       setval('cart_rules_id_seq', (SELECT MAX(id) FROM cart_rules))`},
	}

	for _, st := range statements {
		if _, err := pool.Exec(ctx, st.sql); err != nil {
			return fmt.Errorf("seed %s: %w", st.name, err)
		}
	}
	return nil
}
