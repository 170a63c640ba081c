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
)

var (
	ErrUserNotFound = errors.New("user not found")
)

type settlementService struct {
	instrumentRepo repositories.InstrumentRepositoryInterface
	userRepo       repositories.UserRepositoryInterface
	cfg            config.ForecastConfig
	clock          clock.Clock
	metrics        MetricsRecorderInterface
	logger         *slog.Logger
}

// NewSettlementService creates a new settlement service
func NewSettlementService(
	instrumentRepo repositories.InstrumentRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	cfg config.ForecastConfig,
	clk clock.Clock,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SettlementServiceInterface {
	return &settlementService{
		instrumentRepo: instrumentRepo,
		userRepo:       userRepo,
		cfg:            cfg,
		clock:          clk,
		metrics:        metrics,
		logger:         logger,
	}
}

// SettleDue settles every pending instrument due today in the service's
// configured timezone. Re-running on the same day is a no-op for rows the
// first run already settled.
func (s *settlementService) SettleDue() (*SettlementResult, error) {
	today, err := s.clock.TodayIn(s.cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve local date: %w", err)
	}

	pending, err := s.instrumentRepo.GetAllPending()
	if err != nil {
		return nil, fmt.Errorf("failed to load pending instruments: %w", err)
	}

	return s.settle(pending, today)
}

// SettleDueForUser settles due instruments across one user's accounts, with
// "today" resolved in that user's own timezone.
func (s *settlementService) SettleDueForUser(userID uuid.UUID) (*SettlementResult, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	tz := user.Timezone
	if tz == "" {
		tz = s.cfg.Timezone
	}

	today, err := s.clock.TodayIn(tz)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve local date: %w", err)
	}

	pending, err := s.instrumentRepo.GetPendingByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending instruments: %w", err)
	}

	return s.settle(pending, today)
}

func (s *settlementService) settle(pending []models.Instrument, today time.Time) (*SettlementResult, error) {
	started := time.Now()
	outcome := forecast.ApplyDueTransitions(pending, today)

	applied, err := s.instrumentRepo.SettlePending(outcome.Updated)
	if err != nil {
		s.metrics.IncrementCounter("settlement.run", map[string]string{"status": "failed"})
		return nil, fmt.Errorf("failed to apply settlement: %w", err)
	}

	s.metrics.IncrementCounter("settlement.run", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("settlement.run", time.Since(started))
	if applied > 0 {
		s.metrics.RecordGauge("settlement.applied", float64(applied), nil)
	}

	s.logger.Info("settlement pass complete",
		"local_date", daterange.Key(today),
		"examined", len(pending),
		"deducted", outcome.Deducted,
		"cleared", outcome.Cleared,
		"applied", applied,
	)

	return &SettlementResult{
		RunAt:    started,
		Examined: len(pending),
		Deducted: outcome.Deducted,
		Cleared:  outcome.Cleared,
		Applied:  applied,
	}, nil
}
