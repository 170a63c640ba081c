package dto

import "time"

// Forecast Request DTOs

// ProjectionRequest asks for a day-indexed projection over [startDate, endDate]
type ProjectionRequest struct {
	StartDate    string `query:"startDate" validate:"required,calendar_date"`
	EndDate      string `query:"endDate" validate:"required,calendar_date"`
	LeadingDays  int    `query:"leadingDays" validate:"omitempty,min=0,max=90"`
	TrailingDays int    `query:"trailingDays" validate:"omitempty,min=0,max=90"`
}

// MonthProjectionRequest asks for the calendar month containing refDate
type MonthProjectionRequest struct {
	RefDate string `query:"refDate" validate:"omitempty,calendar_date"`
}

// QuickProjectionRequest asks for a named relative window
type QuickProjectionRequest struct {
	Range string `query:"range" validate:"required,quick_range"`
}

// DayDetailRequest asks for a single day inside a projection window
type DayDetailRequest struct {
	StartDate string `query:"startDate" validate:"required,calendar_date"`
	EndDate   string `query:"endDate" validate:"required,calendar_date"`
	Date      string `query:"date" validate:"required,calendar_date"`
}

// StatementRequest asks for a period statement
type StatementRequest struct {
	PeriodType string `query:"periodType" validate:"required,oneof=monthly quarterly"`
	Year       int    `query:"year" validate:"required,min=1970,max=2100"`
	Period     int    `query:"period" validate:"required,min=1,max=12"`
}

// Forecast Response DTOs

// DayTotalsResponse carries one day's per-kind amounts
type DayTotalsResponse struct {
	Deposits    string `json:"deposits"`
	Cheques     string `json:"cheques"`
	Withdrawals string `json:"withdrawals"`
}

// DayProjectionResponse is one projected day
type DayProjectionResponse struct {
	Date             string            `json:"date"`
	DayTotals        DayTotalsResponse `json:"dayTotals"`
	CumulativeTotals DayTotalsResponse `json:"cumulativeTotals"`
	ProjectedBalance string            `json:"projectedBalance"`
}

// ProjectionResponse is the full projection for an account window
type ProjectionResponse struct {
	AccountID     string                  `json:"accountId"`
	StartDate     string                  `json:"startDate"`
	EndDate       string                  `json:"endDate"`
	AnchorBalance string                  `json:"anchorBalance"`
	Days          []DayProjectionResponse `json:"days"`
	Excluded      int                     `json:"excluded,omitempty"`
}

// SettlementResponse summarizes one settlement pass
type SettlementResponse struct {
	RunAt    time.Time `json:"runAt"`
	Examined int       `json:"examined"`
	Deducted int       `json:"deducted"`
	Cleared  int       `json:"cleared"`
	Applied  int64     `json:"applied"`
}

// StatementLineResponse is one statement line
type StatementLineResponse struct {
	Date             string `json:"date"`
	Kind             string `json:"kind"`
	Status           string `json:"status"`
	Amount           string `json:"amount"`
	Payee            string `json:"payee,omitempty"`
	Reference        string `json:"reference,omitempty"`
	ProjectedBalance string `json:"projectedBalance"`
}

// StatementSummaryResponse aggregates a statement period
type StatementSummaryResponse struct {
	TotalDeposits    string `json:"totalDeposits"`
	TotalCheques     string `json:"totalCheques"`
	TotalWithdrawals string `json:"totalWithdrawals"`
	NetMovement      string `json:"netMovement"`
	PendingCount     int    `json:"pendingCount"`
	SettledCount     int    `json:"settledCount"`
}

// MonthlyBreakdownRequest asks for a year of per-month aggregates
type MonthlyBreakdownRequest struct {
	Year int `query:"year" validate:"required,min=1970,max=2100"`
}

// MonthlyBreakdownEntryResponse is one calendar month's aggregates
type MonthlyBreakdownEntryResponse struct {
	Month            int    `json:"month"`
	TotalDeposits    string `json:"totalDeposits"`
	TotalCheques     string `json:"totalCheques"`
	TotalWithdrawals string `json:"totalWithdrawals"`
	NetMovement      string `json:"netMovement"`
	PendingCount     int    `json:"pendingCount"`
	SettledCount     int    `json:"settledCount"`
}

// MonthlyBreakdownResponse is a year of per-month aggregates for an account
type MonthlyBreakdownResponse struct {
	AccountID   string                          `json:"accountId"`
	AccountName string                          `json:"accountName"`
	Currency    string                          `json:"currency"`
	Year        int                             `json:"year"`
	Months      []MonthlyBreakdownEntryResponse `json:"months"`
	Totals      StatementSummaryResponse        `json:"totals"`
	GeneratedAt time.Time                       `json:"generatedAt"`
}

// AccountSummaryResponse is the all-time aggregate view of an account
type AccountSummaryResponse struct {
	AccountID       string                   `json:"accountId"`
	AccountName     string                   `json:"accountName"`
	Currency        string                   `json:"currency"`
	OpeningBalance  string                   `json:"openingBalance"`
	CurrentBalance  string                   `json:"currentBalance"`
	InstrumentCount int                      `json:"instrumentCount"`
	Totals          StatementSummaryResponse `json:"totals"`
	GeneratedAt     time.Time                `json:"generatedAt"`
}

// StatementResponse is a period statement of projected cash flow
type StatementResponse struct {
	AccountID        string                   `json:"accountId"`
	AccountName      string                   `json:"accountName"`
	Currency         string                   `json:"currency"`
	PeriodType       string                   `json:"periodType"`
	Year             int                      `json:"year"`
	Period           int                      `json:"period"`
	StartDate        string                   `json:"startDate"`
	EndDate          string                   `json:"endDate"`
	OpeningProjected string                   `json:"openingProjected"`
	ClosingProjected string                   `json:"closingProjected"`
	Lines            []StatementLineResponse  `json:"lines"`
	Summary          StatementSummaryResponse `json:"summary"`
	GeneratedAt      time.Time                `json:"generatedAt"`
}
