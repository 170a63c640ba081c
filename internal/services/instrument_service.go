package services

import (
	"errors"
	"fmt"
	"log/slog"

	"chequemate/internal/daterange"
	"chequemate/internal/models"
	"chequemate/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInstrumentNotFound = errors.New("instrument not found")
	ErrInstrumentSettled  = errors.New("instrument has already settled")
	ErrInvalidStatus      = errors.New("invalid instrument status")
)

type instrumentService struct {
	instrumentRepo repositories.InstrumentRepositoryInterface
	accountRepo    repositories.AccountRepositoryInterface
	metrics        MetricsRecorderInterface
	logger         *slog.Logger
}

// NewInstrumentService creates a new instrument service
func NewInstrumentService(
	instrumentRepo repositories.InstrumentRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) InstrumentServiceInterface {
	return &instrumentService{
		instrumentRepo: instrumentRepo,
		accountRepo:    accountRepo,
		metrics:        metrics,
		logger:         logger,
	}
}

// CreateInstrument records a new instrument under one of the user's accounts.
func (s *instrumentService) CreateInstrument(userID uuid.UUID, instrument *models.Instrument) (*models.Instrument, error) {
	if _, err := s.authorizeAccount(userID, instrument.AccountID); err != nil {
		return nil, err
	}

	if err := instrument.Validate(); err != nil {
		return nil, err
	}

	if err := s.instrumentRepo.Create(instrument); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("instrument.created", map[string]string{"kind": instrument.Kind})
	s.logger.Info("instrument created",
		"instrument_id", instrument.ID,
		"account_id", instrument.AccountID,
		"kind", instrument.Kind,
		"due_date", daterange.Key(instrument.DueDate),
	)

	return instrument, nil
}

// GetInstrumentByID retrieves an instrument the user owns.
func (s *instrumentService) GetInstrumentByID(userID, instrumentID uuid.UUID) (*models.Instrument, error) {
	return s.authorizeInstrument(userID, instrumentID)
}

// ListInstruments returns the user's instruments matching the filters.
func (s *instrumentService) ListInstruments(userID uuid.UUID, filters models.InstrumentFilters, offset, limit int) ([]models.Instrument, int64, error) {
	if _, err := s.authorizeAccount(userID, filters.AccountID); err != nil {
		return nil, 0, err
	}

	return s.instrumentRepo.GetWithFilters(filters, offset, limit)
}

// UpdateInstrument applies field updates to a pending instrument. Settled
// instruments are immutable history.
func (s *instrumentService) UpdateInstrument(userID uuid.UUID, instrumentID uuid.UUID, updates InstrumentUpdates) (*models.Instrument, error) {
	instrument, err := s.authorizeInstrument(userID, instrumentID)
	if err != nil {
		return nil, err
	}

	if instrument.IsSettled() {
		return nil, ErrInstrumentSettled
	}

	if updates.Amount != nil {
		if updates.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, models.ErrInvalidAmount
		}
		instrument.Amount = *updates.Amount
	}
	if updates.DueDate != nil {
		instrument.DueDate = daterange.Normalize(*updates.DueDate)
	}
	if updates.Payee != nil {
		instrument.Payee = *updates.Payee
	}
	if updates.Description != nil {
		instrument.Description = *updates.Description
	}

	if err := instrument.Validate(); err != nil {
		return nil, err
	}

	if err := s.instrumentRepo.Update(instrument); err != nil {
		return nil, err
	}

	s.logger.Info("instrument updated", "instrument_id", instrument.ID)
	return instrument, nil
}

// UpdateInstrumentStatus manually settles a pending instrument, for example
// when the bank confirms a cheque before its due date. The only legal moves
// are pending to deducted or cleared.
func (s *instrumentService) UpdateInstrumentStatus(userID, instrumentID uuid.UUID, status string) (*models.Instrument, error) {
	if !models.IsValidInstrumentStatus(status) || status == models.InstrumentStatusPending {
		return nil, ErrInvalidStatus
	}

	instrument, err := s.authorizeInstrument(userID, instrumentID)
	if err != nil {
		return nil, err
	}

	if instrument.IsSettled() {
		return nil, ErrInstrumentSettled
	}

	instrument.Status = status
	if err := s.instrumentRepo.Update(instrument); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("instrument.settled", map[string]string{"status": status, "trigger": "manual"})
	s.logger.Info("instrument settled manually",
		"instrument_id", instrument.ID,
		"status", status,
	)

	return instrument, nil
}

// DeleteInstrument removes a pending instrument.
func (s *instrumentService) DeleteInstrument(userID, instrumentID uuid.UUID) error {
	instrument, err := s.authorizeInstrument(userID, instrumentID)
	if err != nil {
		return err
	}

	if instrument.IsSettled() {
		return ErrInstrumentSettled
	}

	if err := s.instrumentRepo.Delete(instrumentID); err != nil {
		return err
	}

	s.logger.Info("instrument deleted", "instrument_id", instrumentID)
	return nil
}

func (s *instrumentService) authorizeInstrument(userID, instrumentID uuid.UUID) (*models.Instrument, error) {
	instrument, err := s.instrumentRepo.GetByID(instrumentID)
	if err != nil {
		if errors.Is(err, repositories.ErrInstrumentNotFound) {
			return nil, ErrInstrumentNotFound
		}
		return nil, fmt.Errorf("failed to get instrument: %w", err)
	}

	if _, err := s.authorizeAccount(userID, instrument.AccountID); err != nil {
		return nil, err
	}

	return instrument, nil
}

func (s *instrumentService) authorizeAccount(userID, accountID uuid.UUID) (*models.Account, error) {
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
