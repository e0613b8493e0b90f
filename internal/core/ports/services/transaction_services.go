package services

import (
	"context"

	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	"github.com/SscSPs/portfolio_tracker/internal/dto"
)

// DepositRecorderSvc records deposits.
type DepositRecorderSvc interface {
	// RecordDeposit appends a deposit to the ledger and then increments the cash balance.
	// A non-nil result means the ledger entry exists. If the increment failed the result
	// has Outcome domain.DepositLedgerOnly and the error is domain.ErrBalanceNotUpdated.
	RecordDeposit(ctx context.Context, req dto.DepositRequest) (*domain.DepositResult, error)
}

// DepositSvcFacade combines recording with change notification.
type DepositSvcFacade interface {
	DepositRecorderSvc
	Subscribe(fn func(domain.TransactionAdded)) (unsubscribe func())
}

// LedgerSvc is the read-only recent-activity view.
type LedgerSvc interface {
	// Recent returns the caller's newest entries by date then creation time, joined with portfolio names.
	Recent(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// BalanceSvc summarizes cash balances.
type BalanceSvc interface {
	Summary(ctx context.Context, displayCurrency domain.Currency) (domain.BalanceSummary, error)
}
