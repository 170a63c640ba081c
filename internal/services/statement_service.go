package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"chequemate/internal/daterange"
	"chequemate/internal/forecast"
	"chequemate/internal/models"
	"chequemate/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPeriodType = errors.New("period type must be monthly or quarterly")
	ErrInvalidPeriod     = errors.New("period is out of range for the period type")
)

type statementService struct {
	accountRepo    repositories.AccountRepositoryInterface
	instrumentRepo repositories.InstrumentRepositoryInterface
	logger         *slog.Logger
}

// NewStatementService creates a new statement service
func NewStatementService(
	accountRepo repositories.AccountRepositoryInterface,
	instrumentRepo repositories.InstrumentRepositoryInterface,
	logger *slog.Logger,
) StatementServiceInterface {
	return &statementService{
		accountRepo:    accountRepo,
		instrumentRepo: instrumentRepo,
		logger:         logger,
	}
}

// GenerateStatement builds a period statement of projected cash flow: every
// instrument falling in the period, the projected balance after each day,
// and kind/status summary totals.
func (s *statementService) GenerateStatement(userID, accountID uuid.UUID, periodType string, year, period int) (*models.ForecastStatement, error) {
	if err := validatePeriod(periodType, period); err != nil {
		return nil, err
	}

	account, err := s.authorizeAccount(userID, accountID)
	if err != nil {
		return nil, err
	}

	startDate, endDate := periodDateRange(periodType, year, period)

	instruments, err := s.instrumentRepo.GetAllByAccountID(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load instruments: %w", err)
	}

	projection, err := forecast.Project(account.OpeningBalance, instruments, startDate, endDate)
	if err != nil {
		return nil, err
	}

	statement := &models.ForecastStatement{
		AccountID:        account.ID,
		AccountName:      account.Name,
		Currency:         account.Currency,
		PeriodType:       periodType,
		Year:             year,
		Period:           period,
		StartDate:        startDate,
		EndDate:          endDate,
		OpeningProjected: openingBalance(projection),
		ClosingProjected: closingBalance(projection),
		Lines:            s.buildLines(instruments, projection, startDate, endDate),
		Summary:          buildSummary(instruments, startDate, endDate),
		GeneratedAt:      time.Now(),
	}

	s.logger.Info("statement generated",
		"account_id", accountID,
		"period_type", periodType,
		"year", year,
		"period", period,
		"lines", len(statement.Lines),
	)

	return statement, nil
}

func validatePeriod(periodType string, period int) error {
	switch periodType {
	case models.StatementPeriodMonthly:
		if period < 1 || period > 12 {
			return ErrInvalidPeriod
		}
	case models.StatementPeriodQuarterly:
		if period < 1 || period > 4 {
			return ErrInvalidPeriod
		}
	default:
		return ErrInvalidPeriodType
	}
	return nil
}

func periodDateRange(periodType string, year, period int) (time.Time, time.Time) {
	var start time.Time
	var months int

	switch periodType {
	case models.StatementPeriodQuarterly:
		start = time.Date(year, time.Month((period-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
		months = 3
	default:
		start = time.Date(year, time.Month(period), 1, 0, 0, 0, 0, time.UTC)
		months = 1
	}

	end := start.AddDate(0, months, -1)
	return start, end
}

func openingBalance(projection *forecast.ProjectionResult) decimal.Decimal {
	if len(projection.Days) == 0 {
		return projection.AnchorBalance
	}
	first := projection.Days[0]
	return first.ProjectedBalance.Sub(first.DayTotals.Net())
}

func closingBalance(projection *forecast.ProjectionResult) decimal.Decimal {
	if len(projection.Days) == 0 {
		return projection.AnchorBalance
	}
	return projection.Days[len(projection.Days)-1].ProjectedBalance
}

func (s *statementService) buildLines(instruments []models.Instrument, projection *forecast.ProjectionResult, startDate, endDate time.Time) []models.StatementLine {
	lines := make([]models.StatementLine, 0, len(instruments))
	for _, inst := range instruments {
		due := daterange.Normalize(inst.DueDate)
		if due.Before(startDate) || due.After(endDate) {
			continue
		}

		day, ok := projection.DetailForDate(due)
		if !ok {
			continue
		}

		lines = append(lines, models.StatementLine{
			Date:             due,
			Kind:             inst.Kind,
			Status:           inst.Status,
			Amount:           inst.Amount,
			Payee:            inst.Payee,
			Reference:        inst.Reference,
			ProjectedBalance: day.ProjectedBalance,
		})
	}
	return lines
}

func buildSummary(instruments []models.Instrument, startDate, endDate time.Time) models.StatementSummary {
	summary := newSummary()

	for _, inst := range instruments {
		due := daterange.Normalize(inst.DueDate)
		if due.Before(startDate) || due.After(endDate) {
			continue
		}
		accumulate(&summary, inst)
	}

	summary.NetMovement = summary.TotalDeposits.Sub(summary.TotalCheques).Sub(summary.TotalWithdrawals)
	return summary
}

func (s *statementService) authorizeAccount(userID, accountID uuid.UUID) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if account.UserID != userID {
		return nil, ErrAccountNotOwned
	}

	return account, nil
}
