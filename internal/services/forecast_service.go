package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"chequemate/internal/clock"
	"chequemate/internal/config"
	"chequemate/internal/daterange"
	"chequemate/internal/forecast"
	"chequemate/internal/models"
	"chequemate/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrAccountNotOwned  = errors.New("account does not belong to user")
	ErrWindowTooLarge   = errors.New("requested projection window exceeds the maximum")
	ErrDateOutsideRange = errors.New("date falls outside the projection window")
)

type forecastService struct {
	accountRepo    repositories.AccountRepositoryInterface
	instrumentRepo repositories.InstrumentRepositoryInterface
	cfg            config.ForecastConfig
	clock          clock.Clock
	metrics        MetricsRecorderInterface
	logger         *slog.Logger
}

// NewForecastService creates a new forecast service
func NewForecastService(
	accountRepo repositories.AccountRepositoryInterface,
	instrumentRepo repositories.InstrumentRepositoryInterface,
	cfg config.ForecastConfig,
	clk clock.Clock,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ForecastServiceInterface {
	return &forecastService{
		accountRepo:    accountRepo,
		instrumentRepo: instrumentRepo,
		cfg:            cfg,
		clock:          clk,
		metrics:        metrics,
		logger:         logger,
	}
}

// GetProjection computes the day-indexed balance projection for [start, end].
func (s *forecastService) GetProjection(userID, accountID uuid.UUID, start, end time.Time) (*forecast.ProjectionResult, error) {
	return s.project(userID, accountID, start, end)
}

// GetBufferedProjection widens [start, end] by the given buffer days before
// projecting. Negative buffers are rejected by the range layer.
func (s *forecastService) GetBufferedProjection(userID, accountID uuid.UUID, start, end time.Time, leadingDays, trailingDays int) (*forecast.ProjectionResult, error) {
	window, err := daterange.Buffered(start, end, leadingDays, trailingDays)
	if err != nil {
		return nil, err
	}
	return s.project(userID, accountID, window.Start, window.End)
}

// GetMonthProjection projects the calendar month containing ref, padded by
// the configured default buffers.
func (s *forecastService) GetMonthProjection(userID, accountID uuid.UUID, ref time.Time) (*forecast.ProjectionResult, error) {
	window, err := daterange.Month(ref, s.cfg.DefaultLeadingDays, s.cfg.DefaultTrailingDays)
	if err != nil {
		return nil, err
	}
	return s.project(userID, accountID, window.Start, window.End)
}

// GetQuickProjection projects one of the named quick windows relative to
// today in the configured timezone.
func (s *forecastService) GetQuickProjection(userID, accountID uuid.UUID, quickKind string) (*forecast.ProjectionResult, error) {
	today, err := s.clock.TodayIn(s.cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve local date: %w", err)
	}

	window, err := daterange.Quick(quickKind, today)
	if err != nil {
		return nil, err
	}
	return s.project(userID, accountID, window.Start, window.End)
}

// GetDayDetail projects [start, end] and returns the single day's detail.
// A date outside the computed window is an error, never an extrapolation.
func (s *forecastService) GetDayDetail(userID, accountID uuid.UUID, start, end, date time.Time) (*forecast.DayProjection, error) {
	result, err := s.project(userID, accountID, start, end)
	if err != nil {
		return nil, err
	}

	day, ok := result.DetailForDate(date)
	if !ok {
		return nil, ErrDateOutsideRange
	}
	return &day, nil
}

// GetCurrentBalance returns the settled balance: opening balance plus every
// cleared deposit, minus every deducted cheque and withdrawal. Pending
// instruments do not move it.
func (s *forecastService) GetCurrentBalance(userID, accountID uuid.UUID) (decimal.Decimal, error) {
	account, err := s.authorizeAccount(userID, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	instruments, err := s.instrumentRepo.GetAllByAccountID(accountID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load instruments: %w", err)
	}

	return forecast.CurrentBalance(account.OpeningBalance, instruments), nil
}

func (s *forecastService) project(userID, accountID uuid.UUID, start, end time.Time) (*forecast.ProjectionResult, error) {
	account, err := s.authorizeAccount(userID, accountID)
	if err != nil {
		return nil, err
	}

	window, err := daterange.New(start, end)
	if err != nil {
		return nil, err
	}
	if s.cfg.MaxWindowDays > 0 && window.Days() > s.cfg.MaxWindowDays {
		return nil, ErrWindowTooLarge
	}

	instruments, err := s.instrumentRepo.GetAllByAccountID(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load instruments: %w", err)
	}

	started := time.Now()
	result, err := forecast.Project(account.OpeningBalance, instruments, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("forecast.projection", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("forecast.projection", time.Since(started))

	if result.Excluded > 0 {
		s.logger.Warn("projection excluded malformed instruments",
			"account_id", accountID,
			"excluded", result.Excluded,
		)
	}

	s.logger.Info("projection computed",
		"account_id", accountID,
		"window_start", daterange.Key(window.Start),
		"window_end", daterange.Key(window.End),
		"days", len(result.Days),
		"instruments", len(instruments),
	)

	return result, nil
}

func (s *forecastService) authorizeAccount(userID, accountID uuid.UUID) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if account.UserID != userID {
		s.logger.Warn("unauthorized account access attempt",
			"account_id", accountID,
			"user_id", userID,
		)
		return nil, ErrAccountNotOwned
	}

	return account, nil
}
