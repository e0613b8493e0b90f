package domain

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is a cash currency a portfolio can hold.
type Currency string

const (
	ILS Currency = "ILS"
	USD Currency = "USD"
)

// DefaultDisplayCurrency is used when no display currency is requested.
const DefaultDisplayCurrency = ILS

// SupportedCurrencies lists the currencies accepted for deposits and balances, in display order.
func SupportedCurrencies() []Currency {
	return []Currency{ILS, USD}
}

// IsValid reports whether c is a supported currency.
func (c Currency) IsValid() bool {
	return c == ILS || c == USD
}

// FractionDigits reports the number of minor-unit digits of c.
func (c Currency) FractionDigits() int {
	if m := money.GetCurrency(string(c)); m != nil {
		return m.Fraction
	}
	return 2
}

// BalanceLimit is the exclusive bound of a stored cash balance, matching NUMERIC(20, 4).
var BalanceLimit = decimal.New(1, 16)

// MaxDepositAmount is the largest single deposit accepted.
var MaxDepositAmount = decimal.New(1, 12)

// ParseCurrency normalizes s and reports whether it names a supported currency.
func ParseCurrency(s string) (Currency, bool) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	return c, c.IsValid()
}
