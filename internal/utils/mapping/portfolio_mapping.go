package mapping

import (
	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	"github.com/SscSPs/portfolio_tracker/internal/models"
)

// ToModelPortfolio converts a domain Portfolio to a model Portfolio
func ToModelPortfolio(d domain.Portfolio) models.Portfolio {
	return models.Portfolio{
		PortfolioID:   d.PortfolioID,
		UserID:        d.UserID,
		Name:          d.Name,
		AccountNumber: nullString(d.AccountNumber),
		BuyFee:        d.BuyFee,
		SellFee:       d.SellFee,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPortfolio converts a model Portfolio to a domain Portfolio
func ToDomainPortfolio(m models.Portfolio) domain.Portfolio {
	return domain.Portfolio{
		PortfolioID:   m.PortfolioID,
		UserID:        m.UserID,
		Name:          m.Name,
		AccountNumber: m.AccountNumber.String,
		BuyFee:        m.BuyFee,
		SellFee:       m.SellFee,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPortfolioSlice converts a slice of model Portfolios to a slice of domain Portfolios
func ToDomainPortfolioSlice(ms []models.Portfolio) []domain.Portfolio {
	ds := make([]domain.Portfolio, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPortfolio(m)
	}
	return ds
}
