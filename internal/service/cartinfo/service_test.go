package cartinfo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/domain"
)

type stubCarts struct {
	cart       *domain.Cart
	cartErr    error
	summary    *domain.PricingSummary
	summaryErr error
	options    map[int][]domain.DeliveryOptionGroup
	optionsErr error

	optionsCalls int
}

func (s *stubCarts) GetByID(_ context.Context, _ int) (*domain.Cart, error) {
	if s.cartErr != nil {
		return nil, s.cartErr
	}
	if s.cart == nil {
		return nil, domain.ErrNotFound
	}
	return s.cart, nil
}

func (s *stubCarts) Summary(_ context.Context, _ domain.Cart) (*domain.PricingSummary, error) {
	return s.summary, s.summaryErr
}

func (s *stubCarts) DeliveryOptionsByAddress(_ context.Context, _ domain.Cart) (map[int][]domain.DeliveryOptionGroup, error) {
	s.optionsCalls++
	return s.options, s.optionsErr
}

type stubCustomers struct {
	customer  *domain.Customer
	addresses []domain.Address
	addrErr   error
}

func (s *stubCustomers) GetByID(_ context.Context, _ int) (*domain.Customer, error) {
	return s.customer, nil
}

func (s *stubCustomers) ListAddresses(_ context.Context, _, _ int) ([]domain.Address, error) {
	return s.addresses, s.addrErr
}

type stubCountries struct {
	active map[int]bool
	err    error
}

func (s *stubCountries) ActiveForAddress(_ context.Context, addressID int) (bool, error) {
	return s.active[addressID], s.err
}

type stubCurrencies struct {
	currency *domain.Currency
}

func (s *stubCurrencies) GetByID(_ context.Context, _ int) (*domain.Currency, error) {
	return s.currency, nil
}

type stubLanguages struct {
	language *domain.Language
}

func (s *stubLanguages) GetByID(_ context.Context, _ int) (*domain.Language, error) {
	return s.language, nil
}

type stubRules struct {
	freeShippingRules []domain.CartRule
	listErr           error
	idsByCode         map[string]int
}

func (s *stubRules) ListByCart(_ context.Context, _ int, _ bool) ([]domain.CartRule, error) {
	return s.freeShippingRules, s.listErr
}

func (s *stubRules) IDByCode(_ context.Context, code string) (int, error) {
	if id, ok := s.idsByCode[code]; ok {
		return id, nil
	}
	return 0, domain.ErrNotFound
}

type stubFormatter struct {
	err error
}

func (s *stubFormatter) FormatPrice(amount decimal.Decimal, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "$" + amount.StringFixed(2), nil
}

type stubImages struct {
	calls []string
}

func (s *stubImages) ImageURL(linkRewrite string, imageID int, sizeName string) string {
	url := fmt.Sprintf("http://img.example/%d-%s/%s.jpg", imageID, sizeName, linkRewrite)
	s.calls = append(s.calls, url)
	return url
}

// fixture builds the deps for the reference scenario: cart 42 with two
// products, one value discount, a free-shipping voucher, one address in
// an active country, one in a disabled country, and carrier 3 showing up
// in two delivery-option groups under different names.
type fixture struct {
	carts      *stubCarts
	customers  *stubCustomers
	countries  *stubCountries
	currencies *stubCurrencies
	languages  *stubLanguages
	rules      *stubRules
	formatter  *stubFormatter
	images     *stubImages
}

func newFixture() *fixture {
	return &fixture{
		carts: &stubCarts{
			cart: &domain.Cart{
				ID:                42,
				CustomerID:        1,
				CurrencyID:        1,
				LanguageID:        1,
				DeliveryAddressID: 7,
				InvoiceAddressID:  7,
				CarrierID:         3,
			},
			summary: &domain.PricingSummary{
				CurrencyISO: "USD",
				Products: []domain.SummaryProduct{
					{
						ProductID: 1, Name: "Printed Mug", Reference: "demo_1",
						LinkRewrite: "printed-mug", ImageID: 11, Quantity: 2,
						UnitPrice: "$11.90", LineTotal: "$23.80",
					},
					{
						ProductID: 2, VariantID: 5, Name: "Hummingbird T-Shirt",
						VariantLabel: "Size: M, Color: White", Reference: "demo_2",
						LinkRewrite: "hummingbird-tshirt", ImageID: 12, Quantity: 1,
						UnitPrice: "$23.90", LineTotal: "$23.90",
					},
				},
				Discounts: []domain.SummaryDiscount{
					{RuleID: 1, Name: "Summer promo", Description: "5 off any order", Value: decimal.NewFromFloat(5)},
				},
				TotalProducts:  decimal.NewFromFloat(47.70),
				TotalDiscounts: decimal.NewFromFloat(5),
				TotalShipping:  decimal.Zero,
				TotalTax:       decimal.Zero,
				Total:          decimal.NewFromFloat(42.70),
				TotalExclTax:   decimal.NewFromFloat(42.70),
				Carrier:        domain.AssignedCarrier{ID: 3, Name: "Standard"},
			},
			options: map[int][]domain.DeliveryOptionGroup{
				7: {
					{Carriers: []domain.CarrierOption{
						{ID: 3, Name: "Standard", Delays: map[int]string{1: "3 to 5 business days"}},
						{ID: 4, Name: "Express", Delays: map[int]string{1: "Next day"}},
					}},
					{Carriers: []domain.CarrierOption{
						{ID: 3, Name: "Standard-dup", Delays: map[int]string{1: "4 days"}},
					}},
				},
			},
		},
		customers: &stubCustomers{
			customer: &domain.Customer{ID: 1, FirstName: "Ada", LastName: "Winters"},
			addresses: []domain.Address{
				{ID: 7, Alias: "Home", FirstName: "Ada", LastName: "Winters", Address1: "16 Main Street", Postcode: "73000", City: "Springfield", CountryID: 1, Country: "United States"},
				{ID: 8, Alias: "Holiday flat", FirstName: "Ada", LastName: "Winters", Address1: "12 rue de la Paix", Postcode: "75002", City: "Paris", CountryID: 2, Country: "France"},
			},
		},
		countries:  &stubCountries{active: map[int]bool{7: true, 8: false}},
		currencies: &stubCurrencies{currency: &domain.Currency{ID: 1, Name: "US Dollar", ISOCode: "USD"}},
		languages:  &stubLanguages{language: &domain.Language{ID: 1, Name: "English (US)", Locale: "en-US"}},
		rules: &stubRules{
			freeShippingRules: []domain.CartRule{
				{ID: 2, Name: "Free shipping for cart 42", Code: "BO_ORDER_42", FreeShipping: true},
			},
			idsByCode: map[string]int{"BO_ORDER_42": 2, "SUMMER5": 1},
		},
		formatter: &stubFormatter{},
		images:    &stubImages{},
	}
}

func (f *fixture) service() *Service {
	return New(Deps{
		Carts:             f.carts,
		Customers:         f.customers,
		Countries:         f.countries,
		Currencies:        f.currencies,
		Languages:         f.languages,
		Rules:             f.rules,
		Formatter:         f.formatter,
		Images:            f.images,
		DefaultLanguageID: 1,
	})
}

func TestInformation_CartNotFound(t *testing.T) {
	f := newFixture()
	f.carts.cart = nil

	_, err := f.service().Information(context.Background(), 99)

	require.ErrorIs(t, err, domain.ErrCartNotFound)
}

func TestInformation_StoreFailurePropagates(t *testing.T) {
	f := newFixture()
	f.carts.summaryErr = errors.New("db gone")

	_, err := f.service().Information(context.Background(), 42)

	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrCartNotFound)
	assert.Contains(t, err.Error(), "db gone")
}

func TestInformation_ReferenceCart(t *testing.T) {
	f := newFixture()

	info, err := f.service().Information(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, 42, info.CartID)
	assert.Equal(t, 1, info.CurrencyID)
	assert.Equal(t, 1, info.LanguageID)

	// Only the active-country address survives, flagged for both roles.
	require.Len(t, info.Addresses, 1)
	addr := info.Addresses[0]
	assert.Equal(t, 7, addr.AddressID)
	assert.True(t, addr.Delivery)
	assert.True(t, addr.Invoice)
	assert.Contains(t, addr.Formatted, "16 Main Street")
	assert.Contains(t, addr.Formatted, "United States")

	require.Len(t, info.Products, 2)
	assert.Equal(t, CartProduct{
		ProductID: 1, Name: "Printed Mug", Reference: "demo_1",
		UnitPrice: "$11.90", Quantity: 2, Total: "$23.80",
		ImageURL: "http://img.example/11-small_default/printed-mug.jpg",
	}, info.Products[0])
	assert.Equal(t, 5, info.Products[1].VariantID)
	assert.Equal(t, "Size: M, Color: White", info.Products[1].VariantLabel)
	// One image link per product, no more.
	assert.Len(t, f.images.calls, 2)

	require.Len(t, info.CartRules, 1)
	assert.Equal(t, CartRule{RuleID: 1, Name: "Summer promo", Description: "5 off any order", Value: "$5.00"}, info.CartRules[0])

	assert.Equal(t, CartSummary{
		TotalProducts:  "$47.70",
		TotalDiscounts: "-$5.00",
		TotalShipping:  "$0.00",
		TotalTax:       "$0.00",
		Total:          "$42.70",
		TotalExclTax:   "$42.70",
	}, info.Summary)

	require.NotNil(t, info.Shipping)
	assert.Equal(t, "$0.00", info.Shipping.Total)
	assert.True(t, info.Shipping.FreeShipping)
	require.NotNil(t, info.Shipping.CarrierID)
	assert.Equal(t, 3, *info.Shipping.CarrierID)

	// Carrier 3 appears in both groups: one row, last write wins, the
	// first occurrence keeps its position.
	require.Len(t, info.Shipping.DeliveryOptions, 2)
	assert.Equal(t, CartDeliveryOption{CarrierID: 3, Name: "Standard-dup", Delay: "4 days"}, info.Shipping.DeliveryOptions[0])
	assert.Equal(t, CartDeliveryOption{CarrierID: 4, Name: "Express", Delay: "Next day"}, info.Shipping.DeliveryOptions[1])
}

func TestInformation_Idempotent(t *testing.T) {
	f := newFixture()
	svc := f.service()

	first, err := svc.Information(context.Background(), 42)
	require.NoError(t, err)
	second, err := svc.Information(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestInformation_NoAddressesMeansNoShipping(t *testing.T) {
	f := newFixture()
	f.customers.addresses = nil

	info, err := f.service().Information(context.Background(), 42)
	require.NoError(t, err)

	assert.Empty(t, info.Addresses)
	// Serializes as an empty list, not null, like the sibling lists.
	assert.NotNil(t, info.Addresses)
	assert.Nil(t, info.Shipping)
	// Delivery options must not even be queried.
	assert.Zero(t, f.carts.optionsCalls)
}

func TestInformation_AllCountriesInactiveMeansNoShipping(t *testing.T) {
	f := newFixture()
	f.countries.active = map[int]bool{}

	info, err := f.service().Information(context.Background(), 42)
	require.NoError(t, err)

	assert.Empty(t, info.Addresses)
	assert.NotNil(t, info.Addresses)
	assert.Nil(t, info.Shipping)
}

func TestInformation_NoOptionsForDeliveryAddressMeansNoShipping(t *testing.T) {
	f := newFixture()
	f.carts.options = map[int][]domain.DeliveryOptionGroup{
		8: f.carts.options[7],
	}

	info, err := f.service().Information(context.Background(), 42)
	require.NoError(t, err)

	require.Len(t, info.Addresses, 1)
	assert.Nil(t, info.Shipping)
}

func TestInformation_NoDiscountMeansNoSignPrefix(t *testing.T) {
	f := newFixture()
	f.carts.summary.Discounts = nil
	f.carts.summary.TotalDiscounts = decimal.Zero

	info, err := f.service().Information(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, "$0.00", info.Summary.TotalDiscounts)
	assert.Empty(t, info.CartRules)
}

func TestInformation_OtherFreeShippingRulesDoNotCount(t *testing.T) {
	f := newFixture()
	// A generic free-shipping rule applies, but it is not the voucher
	// coded for this cart.
	f.rules.freeShippingRules = []domain.CartRule{
		{ID: 9, Name: "Storewide free shipping", Code: "FREESHIP", FreeShipping: true},
	}

	info, err := f.service().Information(context.Background(), 42)
	require.NoError(t, err)

	require.NotNil(t, info.Shipping)
	assert.False(t, info.Shipping.FreeShipping)
}

func TestInformation_MissingVoucherCodeMeansNotFree(t *testing.T) {
	f := newFixture()
	delete(f.rules.idsByCode, "BO_ORDER_42")

	info, err := f.service().Information(context.Background(), 42)
	require.NoError(t, err)

	require.NotNil(t, info.Shipping)
	assert.False(t, info.Shipping.FreeShipping)
}

func TestInformation_UnassignedCarrierIsNil(t *testing.T) {
	f := newFixture()
	f.carts.summary.Carrier = domain.AssignedCarrier{}

	info, err := f.service().Information(context.Background(), 42)
	require.NoError(t, err)

	require.NotNil(t, info.Shipping)
	assert.Nil(t, info.Shipping.CarrierID)
}

func TestInformation_FormatterFailureAborts(t *testing.T) {
	f := newFixture()
	f.formatter.err = errors.New("unknown currency")

	_, err := f.service().Information(context.Background(), 42)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown currency")
}

func TestInformation_CountryLookupFailureAborts(t *testing.T) {
	f := newFixture()
	f.countries.err = errors.New("store down")

	_, err := f.service().Information(context.Background(), 42)

	require.Error(t, err)
}
