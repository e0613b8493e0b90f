package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// staticIdentity resolves every context to the same user; an empty userID means anonymous.
type staticIdentity struct {
	userID string
}

func (s staticIdentity) CurrentIdentity(context.Context) (string, bool) {
	return s.userID, s.userID != ""
}

// --- MockUserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, hash string, expiry time.Time) error {
	return m.Called(ctx, userID, hash, expiry).Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

// --- MockPortfolioRepository ---

type MockPortfolioRepository struct {
	mock.Mock
}

func (m *MockPortfolioRepository) ListPortfoliosByUser(ctx context.Context, userID string) ([]domain.Portfolio, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Portfolio), args.Error(1)
}

func (m *MockPortfolioRepository) FindPortfolioByID(ctx context.Context, userID, portfolioID string) (*domain.Portfolio, error) {
	args := m.Called(ctx, userID, portfolioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Portfolio), args.Error(1)
}

func (m *MockPortfolioRepository) SavePortfolio(ctx context.Context, p domain.Portfolio) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPortfolioRepository) UpdatePortfolio(ctx context.Context, p domain.Portfolio) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPortfolioRepository) DeletePortfolio(ctx context.Context, userID, portfolioID string) error {
	return m.Called(ctx, userID, portfolioID).Error(0)
}

// --- MockTransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return txns, next, args.Error(2)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

// --- MockCashBalanceRepository ---

type MockCashBalanceRepository struct {
	mock.Mock
}

func (m *MockCashBalanceRepository) ListCashBalancesByUser(ctx context.Context, userID string) ([]domain.CashBalance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashBalance), args.Error(1)
}

func (m *MockCashBalanceRepository) IncrementCashBalance(ctx context.Context, userID, portfolioID string, currency domain.Currency, amount decimal.Decimal) error {
	return m.Called(ctx, userID, portfolioID, currency, amount).Error(0)
}
