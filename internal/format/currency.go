package format

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LocalizationError reports that a monetary value could not be rendered
// for the configured locale or the requested currency.
type LocalizationError struct {
	Locale   string
	Currency string
	Err      error
}

func (e *LocalizationError) Error() string {
	return fmt.Sprintf("cannot localize price (locale %q, currency %q): %v", e.Locale, e.Currency, e.Err)
}

func (e *LocalizationError) Unwrap() error { return e.Err }

// CurrencyFormatter renders monetary amounts for a single display locale.
// It is immutable after construction and safe for concurrent use.
type CurrencyFormatter struct {
	locale  string
	printer *message.Printer
}

// NewCurrencyFormatter binds a formatter to a BCP 47 locale.
func NewCurrencyFormatter(locale string) (*CurrencyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, &LocalizationError{Locale: locale, Err: err}
	}
	return &CurrencyFormatter{
		locale:  locale,
		printer: message.NewPrinter(tag),
	}, nil
}

// FormatPrice renders amount in the given ISO 4217 currency, using the
// formatter's locale for symbol placement and digit grouping.
func (f *CurrencyFormatter) FormatPrice(amount decimal.Decimal, isoCode string) (string, error) {
	unit, err := currency.ParseISO(isoCode)
	if err != nil {
		return "", &LocalizationError{Locale: f.locale, Currency: isoCode, Err: err}
	}
	return f.printer.Sprint(currency.Symbol(unit.Amount(amount.InexactFloat64()))), nil
}
