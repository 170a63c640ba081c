package services

import (
	"errors"
	"fmt"
	"time"

	"chequemate/internal/daterange"
	"chequemate/internal/forecast"
	"chequemate/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidYear = errors.New("year is out of range")

// GetMonthlyBreakdown aggregates one account's instruments into per-month
// kind/status totals for a calendar year. Months without instruments are
// present with zero totals so callers get a full twelve-entry series.
func (s *statementService) GetMonthlyBreakdown(userID, accountID uuid.UUID, year int) (*models.MonthlyBreakdown, error) {
	if year < 1970 || year > 2100 {
		return nil, ErrInvalidYear
	}

	account, err := s.authorizeAccount(userID, accountID)
	if err != nil {
		return nil, err
	}

	instruments, err := s.instrumentRepo.GetAllByAccountID(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load instruments: %w", err)
	}

	months := make([]models.MonthlyBreakdownEntry, 12)
	for i := range months {
		months[i] = models.MonthlyBreakdownEntry{
			Month:            i + 1,
			TotalDeposits:    decimal.Zero,
			TotalCheques:     decimal.Zero,
			TotalWithdrawals: decimal.Zero,
			NetMovement:      decimal.Zero,
		}
	}

	totals := newSummary()
	for _, inst := range instruments {
		due := daterange.Normalize(inst.DueDate)
		if due.Year() != year {
			continue
		}
		if !accumulate(&totals, inst) {
			continue
		}

		entry := &months[int(due.Month())-1]
		switch inst.Kind {
		case models.InstrumentKindDeposit:
			entry.TotalDeposits = entry.TotalDeposits.Add(inst.Amount)
		case models.InstrumentKindCheque:
			entry.TotalCheques = entry.TotalCheques.Add(inst.Amount)
		case models.InstrumentKindWithdrawal:
			entry.TotalWithdrawals = entry.TotalWithdrawals.Add(inst.Amount)
		}
		if inst.IsPending() {
			entry.PendingCount++
		} else {
			entry.SettledCount++
		}
	}

	for i := range months {
		m := &months[i]
		m.NetMovement = m.TotalDeposits.Sub(m.TotalCheques).Sub(m.TotalWithdrawals)
	}
	totals.NetMovement = totals.TotalDeposits.Sub(totals.TotalCheques).Sub(totals.TotalWithdrawals)

	s.logger.Info("monthly breakdown generated",
		"account_id", accountID,
		"year", year,
	)

	return &models.MonthlyBreakdown{
		AccountID:   account.ID,
		AccountName: account.Name,
		Currency:    account.Currency,
		Year:        year,
		Months:      months,
		Totals:      totals,
		GeneratedAt: time.Now(),
	}, nil
}

// GetSummaryTotals aggregates an account's full instrument history: per-kind
// totals, pending/settled counts, and the settled balance (opening balance
// plus cleared deposits minus cleared cheques and withdrawals).
func (s *statementService) GetSummaryTotals(userID, accountID uuid.UUID) (*models.AccountSummary, error) {
	account, err := s.authorizeAccount(userID, accountID)
	if err != nil {
		return nil, err
	}

	instruments, err := s.instrumentRepo.GetAllByAccountID(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load instruments: %w", err)
	}

	totals := newSummary()
	counted := 0
	for _, inst := range instruments {
		if accumulate(&totals, inst) {
			counted++
		}
	}
	totals.NetMovement = totals.TotalDeposits.Sub(totals.TotalCheques).Sub(totals.TotalWithdrawals)

	return &models.AccountSummary{
		AccountID:       account.ID,
		AccountName:     account.Name,
		Currency:        account.Currency,
		OpeningBalance:  account.OpeningBalance,
		CurrentBalance:  forecast.CurrentBalance(account.OpeningBalance, instruments),
		InstrumentCount: counted,
		Totals:          totals,
		GeneratedAt:     time.Now(),
	}, nil
}

func newSummary() models.StatementSummary {
	return models.StatementSummary{
		TotalDeposits:    decimal.Zero,
		TotalCheques:     decimal.Zero,
		TotalWithdrawals: decimal.Zero,
		NetMovement:      decimal.Zero,
	}
}

// accumulate folds one instrument into a running summary. Returns false for
// malformed rows, which are skipped everywhere aggregates are built.
func accumulate(summary *models.StatementSummary, inst models.Instrument) bool {
	if !models.IsValidInstrumentKind(inst.Kind) || !models.IsValidInstrumentStatus(inst.Status) {
		return false
	}

	switch inst.Kind {
	case models.InstrumentKindDeposit:
		summary.TotalDeposits = summary.TotalDeposits.Add(inst.Amount)
	case models.InstrumentKindCheque:
		summary.TotalCheques = summary.TotalCheques.Add(inst.Amount)
	case models.InstrumentKindWithdrawal:
		summary.TotalWithdrawals = summary.TotalWithdrawals.Add(inst.Amount)
	}

	if inst.IsPending() {
		summary.PendingCount++
	} else {
		summary.SettledCount++
	}
	return true
}
