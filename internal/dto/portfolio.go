package dto

import (
	"time"

	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PortfolioRequest carries every mutable portfolio field. Updates are full overwrites,
// so the same shape serves create and update. Unset fees default to 2.5.
type PortfolioRequest struct {
	Name          string           `json:"name"`
	AccountNumber *string          `json:"accountNumber"`
	BuyFee        *decimal.Decimal `json:"buyFee"`
	SellFee       *decimal.Decimal `json:"sellFee"`
}

// PortfolioResponse defines the portfolio data returned by the API.
type PortfolioResponse struct {
	PortfolioID   string          `json:"portfolioID"`
	Name          string          `json:"name"`
	AccountNumber *string         `json:"accountNumber,omitempty"`
	BuyFee        decimal.Decimal `json:"buyFee"`
	SellFee       decimal.Decimal `json:"sellFee"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ListPortfoliosResponse wraps the caller's portfolios.
type ListPortfoliosResponse struct {
	Portfolios []PortfolioResponse `json:"portfolios"`
}

// PortfolioMutationResponse reports the outcome of a create/update/delete.
type PortfolioMutationResponse struct {
	Success   bool               `json:"success"`
	Message   string             `json:"message,omitempty"`
	Portfolio *PortfolioResponse `json:"portfolio,omitempty"`
}

// ToPortfolioResponse converts a domain.Portfolio to PortfolioResponse DTO
func ToPortfolioResponse(p *domain.Portfolio) PortfolioResponse {
	resp := PortfolioResponse{
		PortfolioID:   p.PortfolioID,
		Name:          p.Name,
		BuyFee:        p.BuyFee,
		SellFee:       p.SellFee,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
	if p.AccountNumber != "" {
		acc := p.AccountNumber
		resp.AccountNumber = &acc
	}
	return resp
}

// ToListPortfoliosResponse converts a slice of domain.Portfolio to the list response.
func ToListPortfoliosResponse(portfolios []domain.Portfolio) ListPortfoliosResponse {
	res := make([]PortfolioResponse, len(portfolios))
	for i := range portfolios {
		res[i] = ToPortfolioResponse(&portfolios[i])
	}
	return ListPortfoliosResponse{Portfolios: res}
}
