// Package i18n resolves user-facing messages and currency formatting for the caller's locale.
package i18n

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/he"
	ut "github.com/go-playground/universal-translator"
)

type ctxKey struct{}

// Catalog holds the translators for every supported locale.
type Catalog struct {
	uni *ut.UniversalTranslator
}

// NewCatalog builds a catalog whose fallback is defaultLocale ("he" or "en").
func NewCatalog(defaultLocale string) (*Catalog, error) {
	enLocale := en.New()
	heLocale := he.New()

	fallback := heLocale
	if strings.EqualFold(defaultLocale, "en") {
		fallback = enLocale
	}

	uni := ut.New(fallback, enLocale, heLocale)
	for locale, messages := range catalog {
		trans, found := uni.GetTranslator(locale)
		if !found {
			return nil, fmt.Errorf("no translator registered for locale %q", locale)
		}
		for key, text := range messages {
			if err := trans.Add(key, text, false); err != nil {
				return nil, fmt.Errorf("failed to add %s message %q: %w", locale, key, err)
			}
		}
	}
	return &Catalog{uni: uni}, nil
}

// Translator picks the best translator for an Accept-Language header value.
func (c *Catalog) Translator(acceptLanguage string) ut.Translator {
	trans, _ := c.uni.FindTranslator(parseAcceptLanguage(acceptLanguage)...)
	return trans
}

// Fallback returns the default-locale translator.
func (c *Catalog) Fallback() ut.Translator {
	return c.uni.GetFallback()
}

// parseAcceptLanguage turns "he-IL,he;q=0.9,en;q=0.8" into candidate locale names in header order,
// adding the base language after each regional tag.
func parseAcceptLanguage(header string) []string {
	var out []string
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "" || tag == "*" {
			continue
		}
		tag = strings.ToLower(strings.ReplaceAll(tag, "-", "_"))
		out = append(out, tag)
		if base, _, ok := strings.Cut(tag, "_"); ok {
			out = append(out, base)
		}
	}
	return out
}

// WithTranslator stores trans in ctx.
func WithTranslator(ctx context.Context, trans ut.Translator) context.Context {
	return context.WithValue(ctx, ctxKey{}, trans)
}

// TranslatorFromCtx returns the translator stored by WithTranslator.
func TranslatorFromCtx(ctx context.Context) (ut.Translator, bool) {
	trans, ok := ctx.Value(ctxKey{}).(ut.Translator)
	return trans, ok && trans != nil
}

// T translates key using the translator in ctx. Without one, or for unknown keys,
// it falls back to the English text and finally to the key itself.
func T(ctx context.Context, key string) string {
	if trans, ok := TranslatorFromCtx(ctx); ok {
		if msg, err := trans.T(key); err == nil {
			return msg
		}
	}
	if msg, ok := catalog["en"][key]; ok {
		return msg
	}
	return key
}
