package cartinfo

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"shopfront/internal/domain"
	"shopfront/internal/imagelink"
	"shopfront/internal/postal"
)

// freeShippingCodePrefix is the coding convention for back-office issued
// free-shipping vouchers: the prefix concatenated with the cart id.
const freeShippingCodePrefix = "BO_ORDER_"

type cartStore interface {
	GetByID(ctx context.Context, id int) (*domain.Cart, error)
	Summary(ctx context.Context, cart domain.Cart) (*domain.PricingSummary, error)
	DeliveryOptionsByAddress(ctx context.Context, cart domain.Cart) (map[int][]domain.DeliveryOptionGroup, error)
}

type customerStore interface {
	GetByID(ctx context.Context, id int) (*domain.Customer, error)
	ListAddresses(ctx context.Context, customerID, languageID int) ([]domain.Address, error)
}

type countryStore interface {
	ActiveForAddress(ctx context.Context, addressID int) (bool, error)
}

type currencyStore interface {
	GetByID(ctx context.Context, id int) (*domain.Currency, error)
}

type languageStore interface {
	GetByID(ctx context.Context, id int) (*domain.Language, error)
}

type ruleStore interface {
	ListByCart(ctx context.Context, cartID int, onlyFreeShipping bool) ([]domain.CartRule, error)
	IDByCode(ctx context.Context, code string) (int, error)
}

// PriceFormatter renders an amount in an ISO 4217 currency for display.
type PriceFormatter interface {
	FormatPrice(amount decimal.Decimal, isoCode string) (string, error)
}

// ImageLinker builds public product image URLs.
type ImageLinker interface {
	ImageURL(linkRewrite string, imageID int, sizeName string) string
}

// Deps lists the collaborators the service reads from. None of them is
// ever written to.
type Deps struct {
	Carts      cartStore
	Customers  customerStore
	Countries  countryStore
	Currencies currencyStore
	Languages  languageStore
	Rules      ruleStore
	Formatter  PriceFormatter
	Images     ImageLinker

	// DefaultLanguageID picks the carrier delay label shown in
	// delivery options.
	DefaultLanguageID int
}

// Service assembles the cart-information read model. It holds no mutable
// state and is safe for concurrent use.
type Service struct {
	deps Deps
}

func New(deps Deps) *Service {
	return &Service{deps: deps}
}

// Information builds the CartInformation view for a cart id. It returns
// domain.ErrCartNotFound when the cart does not exist; any collaborator
// failure aborts the whole projection.
func (s *Service) Information(ctx context.Context, cartID int) (*CartInformation, error) {
	cart, err := s.deps.Carts.GetByID(ctx, cartID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	currency, err := s.deps.Currencies.GetByID(ctx, cart.CurrencyID)
	if err != nil {
		return nil, fmt.Errorf("get currency: %w", err)
	}
	language, err := s.deps.Languages.GetByID(ctx, cart.LanguageID)
	if err != nil {
		return nil, fmt.Errorf("get language: %w", err)
	}

	summary, err := s.deps.Carts.Summary(ctx, *cart)
	if err != nil {
		return nil, fmt.Errorf("cart summary: %w", err)
	}

	addresses, err := s.addresses(ctx, *cart)
	if err != nil {
		return nil, err
	}

	rules, err := s.cartRules(summary, currency.ISOCode)
	if err != nil {
		return nil, err
	}

	summaryView, shippingTotal, err := s.summaryView(summary, currency.ISOCode)
	if err != nil {
		return nil, err
	}

	var shipping *CartShipping
	if len(addresses) > 0 {
		if shipping, err = s.shipping(ctx, *cart, summary, shippingTotal); err != nil {
			return nil, err
		}
	}

	return &CartInformation{
		CartID:     cart.ID,
		CurrencyID: currency.ID,
		LanguageID: language.ID,
		Products:   s.products(summary),
		CartRules:  rules,
		Addresses:  addresses,
		Summary:    summaryView,
		Shipping:   shipping,
	}, nil
}

// addresses keeps only addresses whose country is active. Inactive
// countries are skipped silently, they are not an error.
func (s *Service) addresses(ctx context.Context, cart domain.Cart) ([]CartAddress, error) {
	customer, err := s.deps.Customers.GetByID(ctx, cart.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	list, err := s.deps.Customers.ListAddresses(ctx, customer.ID, cart.LanguageID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}

	addresses := make([]CartAddress, 0, len(list))
	for _, a := range list {
		active, err := s.deps.Countries.ActiveForAddress(ctx, a.ID)
		if err != nil {
			return nil, fmt.Errorf("country for address %d: %w", a.ID, err)
		}
		if !active {
			continue
		}
		addresses = append(addresses, CartAddress{
			AddressID: a.ID,
			Alias:     a.Alias,
			Formatted: postal.Format(a),
			Delivery:  a.ID == cart.DeliveryAddressID,
			Invoice:   a.ID == cart.InvoiceAddressID,
		})
	}
	return addresses, nil
}

func (s *Service) products(summary *domain.PricingSummary) []CartProduct {
	products := make([]CartProduct, 0, len(summary.Products))
	for _, p := range summary.Products {
		products = append(products, CartProduct{
			ProductID:       p.ProductID,
			VariantID:       p.VariantID,
			CustomizationID: p.CustomizationID,
			Name:            p.Name,
			VariantLabel:    p.VariantLabel,
			Reference:       p.Reference,
			UnitPrice:       p.UnitPrice,
			Quantity:        p.Quantity,
			Total:           p.LineTotal,
			ImageURL:        s.deps.Images.ImageURL(p.LinkRewrite, p.ImageID, imagelink.SizeSmallDefault),
		})
	}
	return products
}

func (s *Service) cartRules(summary *domain.PricingSummary, currencyISO string) ([]CartRule, error) {
	rules := make([]CartRule, 0, len(summary.Discounts))
	for _, d := range summary.Discounts {
		value, err := s.deps.Formatter.FormatPrice(d.Value, currencyISO)
		if err != nil {
			return nil, fmt.Errorf("format discount %d: %w", d.RuleID, err)
		}
		rules = append(rules, CartRule{
			RuleID:      d.RuleID,
			Name:        d.Name,
			Description: d.Description,
			Value:       value,
		})
	}
	return rules, nil
}

// summaryView formats the six totals. The shipping total string is also
// returned on its own because the shipping view reuses it.
func (s *Service) summaryView(summary *domain.PricingSummary, currencyISO string) (CartSummary, string, error) {
	view := CartSummary{}

	totals := []struct {
		amount decimal.Decimal
		dst    *string
	}{
		{summary.TotalProducts, &view.TotalProducts},
		{summary.TotalDiscounts, &view.TotalDiscounts},
		{summary.TotalShipping, &view.TotalShipping},
		{summary.TotalTax, &view.TotalTax},
		{summary.Total, &view.Total},
		{summary.TotalExclTax, &view.TotalExclTax},
	}
	for _, t := range totals {
		formatted, err := s.deps.Formatter.FormatPrice(t.amount, currencyISO)
		if err != nil {
			return CartSummary{}, "", fmt.Errorf("format summary total: %w", err)
		}
		*t.dst = formatted
	}

	// The formatter never emits a sign for the discount total, the
	// reduction is marked explicitly whenever any discount applies.
	if !summary.TotalDiscounts.IsZero() {
		view.TotalDiscounts = "-" + view.TotalDiscounts
	}

	return view, view.TotalShipping, nil
}

// shipping is only called when at least one address survived filtering.
// It still returns nil when the chosen delivery address has no delivery
// options.
func (s *Service) shipping(ctx context.Context, cart domain.Cart, summary *domain.PricingSummary, totalFormatted string) (*CartShipping, error) {
	byAddress, err := s.deps.Carts.DeliveryOptionsByAddress(ctx, cart)
	if err != nil {
		return nil, fmt.Errorf("delivery options: %w", err)
	}

	groups, ok := byAddress[cart.DeliveryAddressID]
	if !ok || len(groups) == 0 {
		return nil, nil
	}

	free, err := s.freeShipping(ctx, cart.ID)
	if err != nil {
		return nil, err
	}

	var carrierID *int
	if summary.Carrier.ID != 0 {
		id := summary.Carrier.ID
		carrierID = &id
	}

	return &CartShipping{
		Total:           totalFormatted,
		FreeShipping:    free,
		DeliveryOptions: s.deliveryOptions(groups),
		CarrierID:       carrierID,
	}, nil
}

// freeShipping reports whether the cart carries the back-office
// free-shipping voucher issued for it, identified by the fixed code
// prefix plus the cart id. Other free-shipping rules do not count.
func (s *Service) freeShipping(ctx context.Context, cartID int) (bool, error) {
	rules, err := s.deps.Rules.ListByCart(ctx, cartID, true)
	if err != nil {
		return false, fmt.Errorf("list free-shipping rules: %w", err)
	}
	if len(rules) == 0 {
		return false, nil
	}

	wanted, err := s.deps.Rules.IDByCode(ctx, freeShippingCodePrefix+strconv.Itoa(cartID))
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("resolve free-shipping code: %w", err)
	}

	for _, r := range rules {
		if r.ID == wanted {
			return true, nil
		}
	}
	return false, nil
}

// deliveryOptions flattens the carrier groups into one list keyed by
// carrier id. Multi-address shipping is gone, so the same carrier showing
// up in several groups collapses to a single row: last write wins, the
// first occurrence keeps its position.
func (s *Service) deliveryOptions(groups []domain.DeliveryOptionGroup) []CartDeliveryOption {
	index := make(map[int]int)
	options := make([]CartDeliveryOption, 0)

	for _, g := range groups {
		for _, c := range g.Carriers {
			opt := CartDeliveryOption{
				CarrierID: c.ID,
				Name:      c.Name,
				Delay:     c.Delays[s.deps.DefaultLanguageID],
			}
			if at, seen := index[c.ID]; seen {
				options[at] = opt
				continue
			}
			index[c.ID] = len(options)
			options = append(options, opt)
		}
	}
	return options
}
