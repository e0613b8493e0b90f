package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/portfolio_tracker/internal/apperrors"
	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/portfolio_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfolio_tracker/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// depositService appends the ledger entry and then increments the balance.
// The writes are not atomic: a failed increment leaves the entry in place.
type depositService struct {
	BaseService
	txRepo      portsrepo.TransactionRepositoryFacade
	balanceRepo portsrepo.CashBalanceRepositoryFacade
	events      observers[domain.TransactionAdded]
}

// NewDepositService creates the deposit recorder.
func NewDepositService(txRepo portsrepo.TransactionRepositoryFacade, balanceRepo portsrepo.CashBalanceRepositoryFacade, identity portssvc.IdentityResolver) portssvc.DepositSvcFacade {
	return &depositService{
		BaseService: BaseService{Identity: identity},
		txRepo:      txRepo,
		balanceRepo: balanceRepo,
	}
}

func (s *depositService) Subscribe(fn func(domain.TransactionAdded)) func() {
	return s.events.subscribe(fn)
}

func (s *depositService) RecordDeposit(ctx context.Context, req dto.DepositRequest) (*domain.DepositResult, error) {
	portfolioID, payload, date, err := validateDeposit(req)
	if err != nil {
		return nil, err
	}
	userID, err := s.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := payload.Encode()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDepositNotSaved, err)
	}
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		PortfolioID:   portfolioID,
		Date:          date,
		Type:          domain.Deposit,
		Payload:       raw,
		CreatedAt:     time.Now().UTC(),
	}
	logger := s.GetLogger(ctx).With(
		slog.String("transaction_id", txn.TransactionID),
		slog.String("portfolio_id", portfolioID),
	)

	if err := s.txRepo.SaveTransaction(ctx, txn); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Deposit into unknown portfolio")
			return nil, domain.ErrPortfolioNotFound
		}
		logger.Error("Failed to save deposit", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", domain.ErrDepositNotSaved, err)
	}

	if err := s.balanceRepo.IncrementCashBalance(ctx, userID, portfolioID, payload.Currency, payload.Amount); err != nil {
		logger.Error("Deposit saved but balance increment failed", slog.String("error", err.Error()))
		result := &domain.DepositResult{Transaction: txn, Outcome: domain.DepositLedgerOnly}
		s.events.notify(domain.TransactionAdded{Transaction: txn, BalanceUpdated: false})
		return result, fmt.Errorf("%w: %w", domain.ErrBalanceNotUpdated, err)
	}

	logger.Info("Deposit recorded", slog.String("currency", string(payload.Currency)), slog.String("amount", payload.Amount.String()))
	s.events.notify(domain.TransactionAdded{Transaction: txn, BalanceUpdated: true})
	return &domain.DepositResult{Transaction: txn, Outcome: domain.DepositFull}, nil
}

// checkDepositAmount rejects amounts finer than the currency's minor unit or above the deposit limit.
func checkDepositAmount(amount decimal.Decimal, currency domain.Currency) error {
	digits := int32(currency.FractionDigits())
	if !amount.Equal(amount.Truncate(digits)) {
		return domain.ErrAmountPrecision
	}
	if amount.GreaterThan(domain.MaxDepositAmount) {
		return domain.ErrAmountTooLarge
	}
	return nil
}

// validateDeposit checks the form before anything touches storage.
// Currency defaults to ILS and date to today.
func validateDeposit(req dto.DepositRequest) (string, domain.DepositPayload, time.Time, error) {
	portfolioID := strings.TrimSpace(req.PortfolioID)
	if portfolioID == "" {
		return "", domain.DepositPayload{}, time.Time{}, domain.ErrPortfolioRequired
	}
	if !req.Amount.IsPositive() {
		return "", domain.DepositPayload{}, time.Time{}, domain.ErrAmountNotPositive
	}

	currency := domain.DefaultDisplayCurrency
	if strings.TrimSpace(req.Currency) != "" {
		parsed, ok := domain.ParseCurrency(req.Currency)
		if !ok {
			return "", domain.DepositPayload{}, time.Time{}, domain.ErrUnsupportedCurrency
		}
		currency = parsed
	}
	if err := checkDepositAmount(req.Amount, currency); err != nil {
		return "", domain.DepositPayload{}, time.Time{}, err
	}

	date := domain.Today()
	if req.Date != "" {
		parsed, err := time.Parse(domain.DateLayout, req.Date)
		if err != nil {
			return "", domain.DepositPayload{}, time.Time{}, domain.ErrInvalidDate
		}
		date = parsed
	}

	return portfolioID, domain.DepositPayload{Currency: currency, Amount: req.Amount}, date, nil
}
