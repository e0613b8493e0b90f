package i18n

import (
	"context"

	"github.com/Rhymond/go-money"
	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	"github.com/go-playground/locales/currency"
	"github.com/shopspring/decimal"
)

// Placeholder is rendered where a value cannot be resolved.
const Placeholder = "—"

// maxExactMinorUnits is the largest count of minor units a float64 holds exactly.
var maxExactMinorUnits = decimal.NewFromInt(1 << 53)

var localeCurrencies = map[domain.Currency]currency.Type{
	domain.ILS: currency.ILS,
	domain.USD: currency.USD,
}

// FormatAmount renders amount in cur using the locale of the translator in ctx.
// Without a translator it falls back to go-money's display format. Amounts too large
// for either are rendered as a plain fixed-point number followed by the code.
func FormatAmount(ctx context.Context, amount decimal.Decimal, cur domain.Currency) string {
	digits := cur.FractionDigits()
	rounded := amount.Round(int32(digits))
	if rounded.Shift(int32(digits)).Abs().GreaterThan(maxExactMinorUnits) {
		return rounded.StringFixed(int32(digits)) + " " + string(cur)
	}

	trans, hasTrans := TranslatorFromCtx(ctx)
	locCur, known := localeCurrencies[cur]
	if hasTrans && known {
		f, _ := rounded.Float64()
		return trans.FmtCurrency(f, uint64(digits), locCur)
	}
	return money.New(rounded.Shift(int32(digits)).IntPart(), string(cur)).Display()
}
