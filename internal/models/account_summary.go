package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyBreakdownEntry aggregates one calendar month's instruments by kind
// and status.
type MonthlyBreakdownEntry struct {
	Month            int             `json:"month"`
	TotalDeposits    decimal.Decimal `json:"total_deposits"`
	TotalCheques     decimal.Decimal `json:"total_cheques"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
	NetMovement      decimal.Decimal `json:"net_movement"`
	PendingCount     int             `json:"pending_count"`
	SettledCount     int             `json:"settled_count"`
}

// MonthlyBreakdown is a year of per-month aggregates for one account. Every
// month appears, including empty ones.
type MonthlyBreakdown struct {
	AccountID   uuid.UUID               `json:"account_id"`
	AccountName string                  `json:"account_name"`
	Currency    string                  `json:"currency"`
	Year        int                     `json:"year"`
	Months      []MonthlyBreakdownEntry `json:"months"`
	Totals      StatementSummary        `json:"totals"`
	GeneratedAt time.Time               `json:"generated_at"`
}

// AccountSummary is the all-time aggregate view of one account: per-kind
// totals across every instrument plus the settled (cleared-only) balance.
type AccountSummary struct {
	AccountID       uuid.UUID        `json:"account_id"`
	AccountName     string           `json:"account_name"`
	Currency        string           `json:"currency"`
	OpeningBalance  decimal.Decimal  `json:"opening_balance"`
	CurrentBalance  decimal.Decimal  `json:"current_balance"`
	InstrumentCount int              `json:"instrument_count"`
	Totals          StatementSummary `json:"totals"`
	GeneratedAt     time.Time        `json:"generated_at"`
}
