package handlers

import (
	"log/slog"
	"sync"

	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// currencyTag is the binding tag accepting supported currency codes.
const currencyTag = "portfolio_currency"

var registerValidatorsOnce sync.Once

// registerValidators installs the custom binding tags on gin's validator engine.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			slog.Error("Gin validator engine is not go-playground/validator; custom tags unavailable")
			return
		}
		if err := v.RegisterValidation(currencyTag, validateCurrency); err != nil {
			slog.Error("Failed to register currency validation", slog.String("error", err.Error()))
		}
	})
}

func validateCurrency(fl validator.FieldLevel) bool {
	_, ok := domain.ParseCurrency(fl.Field().String())
	return ok
}
