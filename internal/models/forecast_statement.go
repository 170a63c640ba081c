package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatementPeriodMonthly   = "monthly"
	StatementPeriodQuarterly = "quarterly"
)

// StatementLine is one instrument's appearance on a statement, with the
// projected balance after that instrument's day.
type StatementLine struct {
	Date             time.Time       `json:"date"`
	Kind             string          `json:"kind"`
	Status           string          `json:"status"`
	Amount           decimal.Decimal `json:"amount"`
	Payee            string          `json:"payee,omitempty"`
	Reference        string          `json:"reference,omitempty"`
	ProjectedBalance decimal.Decimal `json:"projected_balance"`
}

// StatementSummary aggregates a statement period by kind and status.
type StatementSummary struct {
	TotalDeposits    decimal.Decimal `json:"total_deposits"`
	TotalCheques     decimal.Decimal `json:"total_cheques"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
	NetMovement      decimal.Decimal `json:"net_movement"`
	PendingCount     int             `json:"pending_count"`
	SettledCount     int             `json:"settled_count"`
}

// ForecastStatement is a period view of projected cash flow for one account.
type ForecastStatement struct {
	AccountID        uuid.UUID        `json:"account_id"`
	AccountName      string           `json:"account_name"`
	Currency         string           `json:"currency"`
	PeriodType       string           `json:"period_type"`
	Year             int              `json:"year"`
	Period           int              `json:"period"`
	StartDate        time.Time        `json:"start_date"`
	EndDate          time.Time        `json:"end_date"`
	OpeningProjected decimal.Decimal  `json:"opening_projected"`
	ClosingProjected decimal.Decimal  `json:"closing_projected"`
	Lines            []StatementLine  `json:"lines"`
	Summary          StatementSummary `json:"summary"`
	GeneratedAt      time.Time        `json:"generated_at"`
}
