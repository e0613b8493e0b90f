package i18n_test

import (
	"context"
	"testing"

	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	"github.com/SscSPs/portfolio_tracker/internal/i18n"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_TranslatorFromAcceptLanguage(t *testing.T) {
	catalog, err := i18n.NewCatalog("he")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		locale string
	}{
		{name: "regional english", header: "en-US,en;q=0.9", locale: "en"},
		{name: "hebrew", header: "he-IL", locale: "he"},
		{name: "unsupported falls back", header: "fr-FR", locale: "he"},
		{name: "empty falls back", header: "", locale: "he"},
		{name: "second preference", header: "de;q=1.0, en;q=0.5", locale: "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.locale, catalog.Translator(tt.header).Locale())
		})
	}
}

func TestT(t *testing.T) {
	catalog, err := i18n.NewCatalog("en")
	require.NoError(t, err)

	ctx := i18n.WithTranslator(context.Background(), catalog.Translator("he"))
	assert.Equal(t, "יש לבחור תיק", i18n.T(ctx, i18n.MsgSelectPortfolio))

	ctx = i18n.WithTranslator(context.Background(), catalog.Translator("en"))
	assert.Equal(t, "Deposit saved, but balance was not updated", i18n.T(ctx, i18n.MsgDepositPartial))

	// no translator: english text
	assert.Equal(t, "Enter a positive amount", i18n.T(context.Background(), i18n.MsgPositiveAmount))
	// unknown key: key itself
	assert.Equal(t, "nope", i18n.T(context.Background(), "nope"))
}

func TestFormatAmount(t *testing.T) {
	catalog, err := i18n.NewCatalog("en")
	require.NoError(t, err)
	ctx := i18n.WithTranslator(context.Background(), catalog.Translator("en"))

	got := i18n.FormatAmount(ctx, decimal.RequireFromString("1234.5"), domain.USD)
	assert.Contains(t, got, "1,234.50")

	got = i18n.FormatAmount(context.Background(), decimal.RequireFromString("12.5"), domain.USD)
	assert.Equal(t, "$12.50", got)
}

func TestFormatAmount_LargeAmountsStayExact(t *testing.T) {
	catalog, err := i18n.NewCatalog("en")
	require.NoError(t, err)
	ctx := i18n.WithTranslator(context.Background(), catalog.Translator("en"))

	got := i18n.FormatAmount(ctx, domain.MaxDepositAmount.Add(decimal.RequireFromString("0.01")), domain.USD)
	assert.Contains(t, got, "1,000,000,000,000.01")

	got = i18n.FormatAmount(ctx, decimal.RequireFromString("90071992547409931.23"), domain.USD)
	assert.Equal(t, "90071992547409931.23 USD", got)

	got = i18n.FormatAmount(context.Background(), decimal.RequireFromString("-90071992547409931.23"), domain.ILS)
	assert.Equal(t, "-90071992547409931.23 ILS", got)
}
