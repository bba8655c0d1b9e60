package domain

import "github.com/shopspring/decimal"

// Cart is the stored cart aggregate: line items live in cart_products,
// everything here is what the cart itself knows.
type Cart struct {
	ID                int
	CustomerID        int
	CurrencyID        int
	LanguageID        int
	DeliveryAddressID int
	InvoiceAddressID  int
	CarrierID         int
}

// PricingSummary is a snapshot of a cart's computed state: line items,
// applied discounts, money totals and the assigned carrier. It is produced
// in one shot by the cart store and never recomputed by consumers.
type PricingSummary struct {
	Products    []SummaryProduct
	Discounts   []SummaryDiscount
	CurrencyISO string

	TotalProducts  decimal.Decimal
	TotalDiscounts decimal.Decimal
	TotalShipping  decimal.Decimal
	TotalTax       decimal.Decimal
	Total          decimal.Decimal
	TotalExclTax   decimal.Decimal

	Carrier AssignedCarrier
}

// SummaryProduct is one cart line as reported by the pricing summary.
// Unit price and line total arrive pre-formatted for the cart's currency.
type SummaryProduct struct {
	ProductID       int
	VariantID       int
	CustomizationID int
	Name            string
	VariantLabel    string
	Reference       string
	LinkRewrite     string
	ImageID         int
	Quantity        int
	UnitPrice       string
	LineTotal       string
}

// SummaryDiscount is one applied cart rule with its raw monetary value.
type SummaryDiscount struct {
	RuleID      int
	Name        string
	Description string
	Value       decimal.Decimal
}

// AssignedCarrier is the carrier currently bound to the cart. A zero ID
// means no carrier has been chosen yet.
type AssignedCarrier struct {
	ID   int
	Name string
}

// CarrierOption is a candidate carrier inside a delivery-option group.
// Delays maps language id to the localized delay label.
type CarrierOption struct {
	ID     int
	Name   string
	Delays map[int]string
}

// DeliveryOptionGroup is one candidate set of carriers able to deliver to
// a given address.
type DeliveryOptionGroup struct {
	Carriers []CarrierOption
}
