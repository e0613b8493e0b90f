package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/portfolio_tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DefaultFee is the buy/sell fee applied when none is given.
var DefaultFee = decimal.RequireFromString("2.5")

var (
	ErrNameRequired = fmt.Errorf("%w: portfolio name is required", apperrors.ErrValidation)
	ErrNegativeFee  = fmt.Errorf("%w: fees must not be negative", apperrors.ErrValidation)

	// ErrPortfolioNotFound also covers portfolios owned by someone else.
	ErrPortfolioNotFound = fmt.Errorf("%w: portfolio not found", apperrors.ErrNotFound)
)

// Portfolio is a named grouping of holdings and cash owned by one user.
type Portfolio struct {
	PortfolioID   string          `json:"portfolioID"`
	UserID        string          `json:"userID"`
	Name          string          `json:"name"`
	AccountNumber string          `json:"accountNumber"` // empty when not set
	BuyFee        decimal.Decimal `json:"buyFee"`
	SellFee       decimal.Decimal `json:"sellFee"`
	AuditFields
}

// Normalize trims free-text fields in place.
func (p *Portfolio) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.AccountNumber = strings.TrimSpace(p.AccountNumber)
}

// Validate checks the mutable fields of a portfolio.
func (p Portfolio) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	if p.BuyFee.IsNegative() || p.SellFee.IsNegative() {
		return ErrNegativeFee
	}
	return nil
}
