// Package memory is an in-process storage backend with the same semantics as the
// PostgreSQL repositories. It backs STORAGE_DRIVER=memory and the handler tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/portfolio_tracker/internal/apperrors"
	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/portfolio_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/portfolio_tracker/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

type balanceKey struct {
	userID      string
	portfolioID string
	currency    domain.Currency
}

// Store holds every table in maps guarded by one RWMutex.
type Store struct {
	mu           sync.RWMutex
	users        map[string]domain.User
	portfolios   map[string]domain.Portfolio
	transactions []domain.Transaction
	balances     map[balanceKey]domain.CashBalance
	now          func() time.Time
}

var (
	_ portsrepo.UserRepositoryFacade        = (*Store)(nil)
	_ portsrepo.PortfolioRepositoryFacade   = (*Store)(nil)
	_ portsrepo.TransactionRepositoryFacade = (*Store)(nil)
	_ portsrepo.CashBalanceRepositoryFacade = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		users:      make(map[string]domain.User),
		portfolios: make(map[string]domain.Portfolio),
		balances:   make(map[balanceKey]domain.CashBalance),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// NewRepositoryProvider exposes one shared Store through every repository slot.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        store,
		PortfolioRepo:   store,
		TransactionRepo: store,
		CashBalanceRepo: store,
	}
}

// --- users ---

func (s *Store) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &u, nil
}

func (s *Store) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) SaveUser(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.UserID]; ok {
		return fmt.Errorf("user %s: %w", user.UserID, apperrors.ErrDuplicate)
	}
	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return fmt.Errorf("email %s: %w", user.Email, apperrors.ErrDuplicate)
		}
	}
	s.users[user.UserID] = user
	return nil
}

func (s *Store) UpdateUser(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.users[user.UserID]
	if !ok {
		return fmt.Errorf("user %s: %w", user.UserID, apperrors.ErrNotFound)
	}
	existing.Name = user.Name
	existing.Email = user.Email
	existing.AuthProvider = user.AuthProvider
	existing.ProviderUserID = user.ProviderUserID
	existing.EmailVerified = user.EmailVerified
	existing.LastUpdatedAt = user.LastUpdatedAt
	s.users[user.UserID] = existing
	return nil
}

func (s *Store) UpdateRefreshToken(_ context.Context, userID string, refreshTokenHash string, expiry time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	u.RefreshTokenHash = refreshTokenHash
	u.RefreshTokenExpiryTime = &expiry
	s.users[userID] = u
	return nil
}

func (s *Store) ClearRefreshToken(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	u.RefreshTokenHash = ""
	u.RefreshTokenExpiryTime = nil
	s.users[userID] = u
	return nil
}

// --- portfolios ---

func (s *Store) ListPortfoliosByUser(_ context.Context, userID string) ([]domain.Portfolio, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Portfolio, 0)
	for _, p := range s.portfolios {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].PortfolioID < out[j].PortfolioID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) FindPortfolioByID(_ context.Context, userID, portfolioID string) (*domain.Portfolio, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.portfolios[portfolioID]
	if !ok || p.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (s *Store) SavePortfolio(_ context.Context, portfolio domain.Portfolio) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.portfolios[portfolio.PortfolioID]; ok {
		return fmt.Errorf("portfolio %s: %w", portfolio.PortfolioID, apperrors.ErrDuplicate)
	}
	s.portfolios[portfolio.PortfolioID] = portfolio
	return nil
}

func (s *Store) UpdatePortfolio(_ context.Context, portfolio domain.Portfolio) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.portfolios[portfolio.PortfolioID]
	if !ok || existing.UserID != portfolio.UserID {
		return fmt.Errorf("portfolio %s: %w", portfolio.PortfolioID, apperrors.ErrNotFound)
	}
	existing.Name = portfolio.Name
	existing.AccountNumber = portfolio.AccountNumber
	existing.BuyFee = portfolio.BuyFee
	existing.SellFee = portfolio.SellFee
	existing.LastUpdatedAt = portfolio.LastUpdatedAt
	s.portfolios[portfolio.PortfolioID] = existing
	return nil
}

func (s *Store) DeletePortfolio(_ context.Context, userID, portfolioID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.portfolios[portfolioID]
	if !ok || p.UserID != userID {
		return fmt.Errorf("portfolio %s: %w", portfolioID, apperrors.ErrNotFound)
	}
	delete(s.portfolios, portfolioID)
	return nil
}

// --- ledger ---

func (s *Store) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.portfolios[txn.PortfolioID]
	if !ok || p.UserID != txn.UserID {
		return fmt.Errorf("portfolio %s: %w", txn.PortfolioID, apperrors.ErrNotFound)
	}
	for _, t := range s.transactions {
		if t.TransactionID == txn.TransactionID {
			return fmt.Errorf("transaction %s: %w", txn.TransactionID, apperrors.ErrDuplicate)
		}
	}
	s.transactions = append(s.transactions, txn)
	return nil
}

// ledgerBefore reports whether a sorts ahead of b in (date DESC, created_at DESC) order.
func ledgerBefore(a, b domain.Transaction) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	return a.CreatedAt.After(b.CreatedAt)
}

func (s *Store) ListTransactionsByUser(_ context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 10
	}

	var cursor *domain.Transaction
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		cursor = &domain.Transaction{Date: lastDate, CreatedAt: lastCreatedAt}
	}

	s.mu.RLock()
	owned := make([]domain.Transaction, 0)
	for _, t := range s.transactions {
		if t.UserID != userID {
			continue
		}
		if cursor != nil && !ledgerBefore(*cursor, t) {
			continue
		}
		owned = append(owned, t)
	}
	s.mu.RUnlock()

	sort.SliceStable(owned, func(i, j int) bool { return ledgerBefore(owned[i], owned[j]) })

	var next *string
	if len(owned) > limit {
		last := owned[limit-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		next = &token
		owned = owned[:limit]
	}
	return owned, next, nil
}

// --- cash balances ---

func (s *Store) ListCashBalancesByUser(_ context.Context, userID string) ([]domain.CashBalance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CashBalance, 0)
	for k, b := range s.balances {
		if k.userID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PortfolioID != out[j].PortfolioID {
			return out[i].PortfolioID < out[j].PortfolioID
		}
		return out[i].Currency < out[j].Currency
	})
	return out, nil
}

func (s *Store) IncrementCashBalance(_ context.Context, userID, portfolioID string, currency domain.Currency, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := balanceKey{userID: userID, portfolioID: portfolioID, currency: currency}
	b, ok := s.balances[key]
	if !ok {
		b = domain.CashBalance{UserID: userID, PortfolioID: portfolioID, Currency: currency, Balance: decimal.Zero}
	}
	next := b.Balance.Add(amount)
	if next.Abs().GreaterThanOrEqual(domain.BalanceLimit) {
		return fmt.Errorf("numeric field overflow: balance %s", next.String())
	}
	b.Balance = next
	b.LastUpdatedAt = s.now()
	s.balances[key] = b
	return nil
}
