package cartinfo

// CartInformation is the read model served to the back office cart page.
// It is assembled once per request and never persisted.
type CartInformation struct {
	CartID     int           `json:"cartId"`
	CurrencyID int           `json:"currencyId"`
	LanguageID int           `json:"languageId"`
	Products   []CartProduct `json:"products"`
	CartRules  []CartRule    `json:"cartRules"`
	Addresses  []CartAddress `json:"addresses"`
	Summary    CartSummary   `json:"summary"`
	// Shipping is null when the customer has no usable address or the
	// chosen delivery address has no delivery options.
	Shipping *CartShipping `json:"shipping"`
}

// CartProduct is one line item. Monetary fields are display strings
// already formatted for the cart's currency.
type CartProduct struct {
	ProductID       int    `json:"productId"`
	VariantID       int    `json:"variantId"`
	CustomizationID int    `json:"customizationId"`
	Name            string `json:"name"`
	VariantLabel    string `json:"variantLabel,omitempty"`
	Reference       string `json:"reference"`
	UnitPrice       string `json:"unitPrice"`
	Quantity        int    `json:"quantity"`
	Total           string `json:"total"`
	ImageURL        string `json:"imageUrl"`
}

// CartRule is an applied promotion with its formatted discount amount.
type CartRule struct {
	RuleID      int    `json:"cartRuleId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Value       string `json:"value"`
}

// CartAddress is a customer address usable for this cart.
type CartAddress struct {
	AddressID int    `json:"addressId"`
	Alias     string `json:"alias"`
	Formatted string `json:"formatted"`
	Delivery  bool   `json:"delivery"`
	Invoice   bool   `json:"invoice"`
}

// CartSummary carries the cart's money totals as display strings. The
// discount total is prefixed with "-" when any discount applies.
type CartSummary struct {
	TotalProducts  string `json:"totalProducts"`
	TotalDiscounts string `json:"totalDiscounts"`
	TotalShipping  string `json:"totalShipping"`
	TotalTax       string `json:"totalTax"`
	Total          string `json:"total"`
	TotalExclTax   string `json:"totalExclTax"`
}

// CartShipping describes delivery for the cart's chosen address.
type CartShipping struct {
	Total           string               `json:"total"`
	FreeShipping    bool                 `json:"freeShipping"`
	DeliveryOptions []CartDeliveryOption `json:"deliveryOptions"`
	// CarrierID is nil until a carrier has been assigned to the cart.
	CarrierID *int `json:"carrierId"`
}

// CartDeliveryOption is a candidate carrier, unique per carrier id.
type CartDeliveryOption struct {
	CarrierID int    `json:"carrierId"`
	Name      string `json:"name"`
	Delay     string `json:"delay"`
}
