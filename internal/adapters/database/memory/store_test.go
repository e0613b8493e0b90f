package memory

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/portfolio_tracker/internal/apperrors"
	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, _ := time.Parse(domain.DateLayout, s)
	return t
}

func seedPortfolio(t *testing.T, s *Store, userID, portfolioID string, createdAt time.Time) {
	t.Helper()
	require.NoError(t, s.SavePortfolio(context.Background(), domain.Portfolio{
		PortfolioID: portfolioID,
		UserID:      userID,
		Name:        portfolioID,
		BuyFee:      domain.DefaultFee,
		SellFee:     domain.DefaultFee,
		AuditFields: domain.AuditFields{CreatedAt: createdAt, LastUpdatedAt: createdAt},
	}))
}

func TestStore_PortfoliosOrderedByCreation(t *testing.T) {
	s := NewStore()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	seedPortfolio(t, s, "u1", "p-late", base.Add(time.Hour))
	seedPortfolio(t, s, "u1", "p-early", base)
	seedPortfolio(t, s, "u2", "p-other", base)

	list, err := s.ListPortfoliosByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "p-early", list[0].PortfolioID)
	assert.Equal(t, "p-late", list[1].PortfolioID)

	_, err = s.FindPortfolioByID(context.Background(), "u1", "p-other")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = s.DeletePortfolio(context.Background(), "u1", "p-other")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_SaveTransactionChecksOwnership(t *testing.T) {
	s := NewStore()
	seedPortfolio(t, s, "u1", "p1", time.Now())

	err := s.SaveTransaction(context.Background(), domain.Transaction{
		TransactionID: "t1", UserID: "u2", PortfolioID: "p1", Date: date("2025-03-01"), Type: domain.Deposit,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = s.SaveTransaction(context.Background(), domain.Transaction{
		TransactionID: "t1", UserID: "u1", PortfolioID: "p1", Date: date("2025-03-01"), Type: domain.Deposit,
	})
	assert.NoError(t, err)
}

func TestStore_LedgerOrderAndPagination(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seedPortfolio(t, s, "u1", "p1", time.Now())

	created := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	entries := []struct {
		id      string
		date    string
		created time.Time
	}{
		{"old", "2025-01-01", created},
		{"same-day-first", "2025-03-01", created},
		{"same-day-second", "2025-03-01", created.Add(time.Minute)},
		{"newest", "2025-03-05", created.Add(-time.Hour)},
	}
	for _, e := range entries {
		require.NoError(t, s.SaveTransaction(ctx, domain.Transaction{
			TransactionID: e.id, UserID: "u1", PortfolioID: "p1",
			Date: date(e.date), Type: domain.Deposit, CreatedAt: e.created,
		}))
	}

	page, next, err := s.ListTransactionsByUser(ctx, "u1", 2, nil)
	require.NoError(t, err)
	require.NotNil(t, next)
	require.Len(t, page, 2)
	assert.Equal(t, "newest", page[0].TransactionID)
	assert.Equal(t, "same-day-second", page[1].TransactionID)

	page, next, err = s.ListTransactionsByUser(ctx, "u1", 2, next)
	require.NoError(t, err)
	assert.Nil(t, next)
	require.Len(t, page, 2)
	assert.Equal(t, "same-day-first", page[0].TransactionID)
	assert.Equal(t, "old", page[1].TransactionID)

	bad := "%%%"
	_, _, err = s.ListTransactionsByUser(ctx, "u1", 2, &bad)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	others, _, err := s.ListTransactionsByUser(ctx, "u2", 10, nil)
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestStore_IncrementCashBalance(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.IncrementCashBalance(ctx, "u1", "p1", domain.ILS, decimal.NewFromInt(100)))
	require.NoError(t, s.IncrementCashBalance(ctx, "u1", "p1", domain.ILS, decimal.RequireFromString("50.25")))
	require.NoError(t, s.IncrementCashBalance(ctx, "u1", "p1", domain.USD, decimal.NewFromInt(7)))

	rows, err := s.ListCashBalancesByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, domain.ILS, rows[0].Currency)
	assert.True(t, rows[0].Balance.Equal(decimal.RequireFromString("150.25")))
	assert.True(t, rows[1].Balance.Equal(decimal.NewFromInt(7)))
}

func TestStore_IncrementCashBalanceOverflow(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	almost := domain.BalanceLimit.Sub(decimal.NewFromInt(1))

	require.NoError(t, s.IncrementCashBalance(ctx, "u1", "p1", domain.USD, almost))
	assert.Error(t, s.IncrementCashBalance(ctx, "u1", "p1", domain.USD, decimal.NewFromInt(1)))

	rows, err := s.ListCashBalancesByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Balance.Equal(almost))
}

func TestStore_UserEmailUniqueCaseInsensitive(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, s.SaveUser(ctx, domain.User{UserID: "u1", Email: "a@example.com"}))

	err := s.SaveUser(ctx, domain.User{UserID: "u2", Email: "A@Example.com"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	u, err := s.FindUserByEmail(ctx, "A@EXAMPLE.COM")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.UserID)

	require.NoError(t, s.UpdateRefreshToken(ctx, "u1", "hash", time.Now().Add(time.Hour)))
	u, _ = s.FindUserByID(ctx, "u1")
	assert.Equal(t, "hash", u.RefreshTokenHash)
	require.NoError(t, s.ClearRefreshToken(ctx, "u1"))
	u, _ = s.FindUserByID(ctx, "u1")
	assert.Empty(t, u.RefreshTokenHash)
	assert.Nil(t, u.RefreshTokenExpiryTime)
}
