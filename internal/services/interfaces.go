package services

import (
	"time"

	"chequemate/internal/forecast"
	"chequemate/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ForecastServiceInterface defines balance projection operations.
// Every operation authorizes the account against the requesting user before
// touching instrument data.
type ForecastServiceInterface interface {
	GetProjection(userID, accountID uuid.UUID, start, end time.Time) (*forecast.ProjectionResult, error)
	GetBufferedProjection(userID, accountID uuid.UUID, start, end time.Time, leadingDays, trailingDays int) (*forecast.ProjectionResult, error)
	GetMonthProjection(userID, accountID uuid.UUID, ref time.Time) (*forecast.ProjectionResult, error)
	GetQuickProjection(userID, accountID uuid.UUID, quickKind string) (*forecast.ProjectionResult, error)
	GetDayDetail(userID, accountID uuid.UUID, start, end, date time.Time) (*forecast.DayProjection, error)
	GetCurrentBalance(userID, accountID uuid.UUID) (decimal.Decimal, error)
}

// SettlementServiceInterface defines the due-date status transition pass.
type SettlementServiceInterface interface {
	// SettleDue resolves "today" per owning user's timezone and settles every
	// pending instrument whose due date has arrived. Safe to run repeatedly.
	SettleDue() (*SettlementResult, error)

	// SettleDueForUser settles due instruments across one user's accounts.
	SettleDueForUser(userID uuid.UUID) (*SettlementResult, error)
}

// SettlementResult summarizes one settlement pass.
type SettlementResult struct {
	RunAt    time.Time `json:"run_at"`
	Examined int       `json:"examined"`
	Deducted int       `json:"deducted"`
	Cleared  int       `json:"cleared"`
	Applied  int64     `json:"applied"`
}

// InstrumentServiceInterface defines instrument CRUD operations scoped to the
// requesting user's accounts.
type InstrumentServiceInterface interface {
	CreateInstrument(userID uuid.UUID, instrument *models.Instrument) (*models.Instrument, error)
	GetInstrumentByID(userID, instrumentID uuid.UUID) (*models.Instrument, error)
	ListInstruments(userID uuid.UUID, filters models.InstrumentFilters, offset, limit int) ([]models.Instrument, int64, error)
	UpdateInstrument(userID uuid.UUID, instrumentID uuid.UUID, updates InstrumentUpdates) (*models.Instrument, error)
	UpdateInstrumentStatus(userID, instrumentID uuid.UUID, status string) (*models.Instrument, error)
	DeleteInstrument(userID, instrumentID uuid.UUID) error
}

// InstrumentUpdates carries the mutable instrument fields. Nil pointers leave
// the stored value untouched.
type InstrumentUpdates struct {
	Amount      *decimal.Decimal
	DueDate     *time.Time
	Payee       *string
	Description *string
}

// AccountServiceInterface defines account operations.
type AccountServiceInterface interface {
	CreateAccount(userID uuid.UUID, name, bankName, currency string, openingBalance decimal.Decimal) (*models.Account, error)
	GetAccountByID(userID, accountID uuid.UUID) (*models.Account, error)
	GetUserAccounts(userID uuid.UUID) ([]models.Account, error)
	UpdateAccount(userID, accountID uuid.UUID, name, bankName *string) (*models.Account, error)
	DeleteAccount(userID, accountID uuid.UUID) error
}

// AuthServiceInterface defines registration and login.
type AuthServiceInterface interface {
	Register(email, password, fullName, timezone string) (*models.User, error)
	Login(email, password string) (*models.User, string, time.Time, error)
	GetUserByID(userID uuid.UUID) (*models.User, error)
}

// TokenServiceInterface defines JWT issuing and validation.
type TokenServiceInterface interface {
	GenerateToken(user *models.User) (string, time.Time, error)
	ValidateToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PasswordServiceInterface defines password hashing and policy checks.
type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// StatementServiceInterface builds period statements of projected cash flow
// and aggregate exports of an account's instrument history.
type StatementServiceInterface interface {
	GenerateStatement(userID, accountID uuid.UUID, periodType string, year, period int) (*models.ForecastStatement, error)
	GetMonthlyBreakdown(userID, accountID uuid.UUID, year int) (*models.MonthlyBreakdown, error)
	GetSummaryTotals(userID, accountID uuid.UUID) (*models.AccountSummary, error)
}

// MetricsRecorderInterface abstracts metric recording so services do not
// depend on a concrete metrics backend.
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
