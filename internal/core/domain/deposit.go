package domain

import (
	"errors"
	"fmt"

	"github.com/SscSPs/portfolio_tracker/internal/apperrors"
)

var (
	ErrPortfolioRequired   = fmt.Errorf("%w: select a portfolio", apperrors.ErrValidation)
	ErrAmountNotPositive   = fmt.Errorf("%w: enter a positive amount", apperrors.ErrValidation)
	ErrAmountPrecision     = fmt.Errorf("%w: too many decimal places for the currency", apperrors.ErrValidation)
	ErrAmountTooLarge      = fmt.Errorf("%w: amount exceeds the deposit limit", apperrors.ErrValidation)
	ErrUnsupportedCurrency = fmt.Errorf("%w: unsupported currency", apperrors.ErrValidation)
	ErrInvalidDate         = fmt.Errorf("%w: invalid date", apperrors.ErrValidation)

	// ErrDepositNotSaved means the ledger insert failed and nothing was written.
	ErrDepositNotSaved = errors.New("deposit not saved")
	// ErrBalanceNotUpdated means the ledger entry exists but the cash balance was not incremented.
	ErrBalanceNotUpdated = errors.New("deposit saved, but balance was not updated")
)

// DepositOutcome distinguishes a complete deposit from one whose balance increment failed.
type DepositOutcome string

const (
	DepositFull       DepositOutcome = "full"
	DepositLedgerOnly DepositOutcome = "ledger_only"
)

// DepositResult is returned whenever the ledger entry was persisted.
type DepositResult struct {
	Transaction Transaction
	Outcome     DepositOutcome
}

// BalanceUpdated reports whether the cash balance reflects the deposit.
func (r DepositResult) BalanceUpdated() bool {
	return r.Outcome == DepositFull
}
