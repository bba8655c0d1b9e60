package domain

import "github.com/shopspring/decimal"

type Currency struct {
	ID      int
	Name    string
	ISOCode string
}

type Language struct {
	ID      int
	Name    string
	ISOCode string
	Locale  string
}

// CartRule is a promotion. Value is the rule's monetary reduction; a rule
// with FreeShipping set removes shipping cost entirely.
type CartRule struct {
	ID           int
	Name         string
	Description  string
	Code         string
	Value        decimal.Decimal
	FreeShipping bool
}
