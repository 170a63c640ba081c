package repositories

import (
	"errors"
	"fmt"
	"time"

	"chequemate/internal/daterange"
	"chequemate/internal/forecast"
	"chequemate/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInstrumentNotFound = errors.New("instrument not found")
)

// instrumentRepository implements InstrumentRepositoryInterface
type instrumentRepository struct {
	db *gorm.DB
}

// NewInstrumentRepository creates a new instrument repository
func NewInstrumentRepository(db *gorm.DB) InstrumentRepositoryInterface {
	return &instrumentRepository{
		db: db,
	}
}

// Create creates a new instrument
func (r *instrumentRepository) Create(instrument *models.Instrument) error {
	if err := r.db.Create(instrument).Error; err != nil {
		return fmt.Errorf("failed to create instrument: %w", err)
	}
	return nil
}

// GetByID retrieves an instrument by ID
func (r *instrumentRepository) GetByID(id uuid.UUID) (*models.Instrument, error) {
	instrument := &models.Instrument{ID: id}
	if err := r.db.First(instrument).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstrumentNotFound
		}
		return nil, fmt.Errorf("failed to get instrument: %w", err)
	}
	return instrument, nil
}

// GetByReference retrieves an instrument by reference
func (r *instrumentRepository) GetByReference(reference string) (*models.Instrument, error) {
	var instrument models.Instrument
	if err := r.db.Where("reference = ?", reference).First(&instrument).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstrumentNotFound
		}
		return nil, fmt.Errorf("failed to get instrument by reference: %w", err)
	}
	return &instrument, nil
}

// GetAllByAccountID retrieves the full instrument snapshot for an account
func (r *instrumentRepository) GetAllByAccountID(accountID uuid.UUID) ([]models.Instrument, error) {
	var instruments []models.Instrument
	if err := r.db.Where("account_id = ?", accountID).
		Order("due_date ASC, created_at ASC").
		Find(&instruments).Error; err != nil {
		return nil, fmt.Errorf("failed to get instruments for account: %w", err)
	}
	return instruments, nil
}

// GetByAccountID retrieves instruments for an account with pagination
func (r *instrumentRepository) GetByAccountID(accountID uuid.UUID, offset, limit int) ([]models.Instrument, int64, error) {
	var instruments []models.Instrument
	var total int64

	if err := r.db.Model(&models.Instrument{}).
		Where("account_id = ?", accountID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count instruments: %w", err)
	}

	if err := r.db.Where("account_id = ?", accountID).
		Offset(offset).Limit(limit).
		Order("due_date ASC, created_at ASC").
		Find(&instruments).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get instruments: %w", err)
	}

	return instruments, total, nil
}

// GetWithFilters retrieves instruments matching the given filters
func (r *instrumentRepository) GetWithFilters(filters models.InstrumentFilters, offset, limit int) ([]models.Instrument, int64, error) {
	query := r.db.Model(&models.Instrument{}).Where("account_id = ?", filters.AccountID)

	if filters.Kind != "" {
		query = query.Where("kind = ?", filters.Kind)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.DueDateFrom != nil {
		query = query.Where("due_date >= ?", daterange.Normalize(*filters.DueDateFrom))
	}
	if filters.DueDateTo != nil {
		query = query.Where("due_date <= ?", daterange.Normalize(*filters.DueDateTo))
	}
	if filters.Payee != "" {
		query = query.Where("payee LIKE ?", "%"+filters.Payee+"%")
	}
	if filters.Reference != "" {
		query = query.Where("reference = ?", filters.Reference)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered instruments: %w", err)
	}

	var instruments []models.Instrument
	if err := query.Order(filters.OrderClause()).
		Offset(offset).Limit(limit).
		Find(&instruments).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered instruments: %w", err)
	}

	return instruments, total, nil
}

// GetByDueDateRange retrieves instruments due within an inclusive date range
func (r *instrumentRepository) GetByDueDateRange(accountID uuid.UUID, startDate, endDate time.Time) ([]models.Instrument, error) {
	var instruments []models.Instrument
	if err := r.db.Where("account_id = ? AND due_date BETWEEN ? AND ?",
		accountID, daterange.Normalize(startDate), daterange.Normalize(endDate)).
		Order("due_date ASC, created_at ASC").
		Find(&instruments).Error; err != nil {
		return nil, fmt.Errorf("failed to get instruments by due date range: %w", err)
	}
	return instruments, nil
}

// GetPendingByUserID retrieves all pending instruments across a user's accounts
func (r *instrumentRepository) GetPendingByUserID(userID uuid.UUID) ([]models.Instrument, error) {
	var instruments []models.Instrument
	if err := r.db.
		Joins("JOIN accounts ON accounts.id = instruments.account_id").
		Where("accounts.user_id = ? AND instruments.status = ?", userID, models.InstrumentStatusPending).
		Order("instruments.due_date ASC").
		Find(&instruments).Error; err != nil {
		return nil, fmt.Errorf("failed to get pending instruments for user: %w", err)
	}
	return instruments, nil
}

// GetAllPending retrieves every pending instrument across all accounts
func (r *instrumentRepository) GetAllPending() ([]models.Instrument, error) {
	var instruments []models.Instrument
	if err := r.db.Where("status = ?", models.InstrumentStatusPending).
		Order("due_date ASC").
		Find(&instruments).Error; err != nil {
		return nil, fmt.Errorf("failed to get pending instruments: %w", err)
	}
	return instruments, nil
}

// Update updates an instrument
func (r *instrumentRepository) Update(instrument *models.Instrument) error {
	result := r.db.Save(instrument)
	if result.Error != nil {
		return fmt.Errorf("failed to update instrument: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInstrumentNotFound
	}
	return nil
}

// Delete deletes an instrument
func (r *instrumentRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Instrument{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete instrument: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInstrumentNotFound
	}
	return nil
}

// SettlePending applies status changes to rows still in the pending state.
// The WHERE clause is the idempotency guard: a row settled by an earlier or
// concurrent run no longer matches, so nothing is double-applied.
func (r *instrumentRepository) SettlePending(changes []forecast.StatusChange) (int64, error) {
	if len(changes) == 0 {
		return 0, nil
	}

	var applied int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, change := range changes {
			result := tx.Model(&models.Instrument{}).
				Where("id = ? AND status = ?", change.ID, models.InstrumentStatusPending).
				Updates(map[string]interface{}{
					"status":     change.NewStatus,
					"updated_at": time.Now(),
				})
			if result.Error != nil {
				return fmt.Errorf("failed to settle instrument %s: %w", change.ID, result.Error)
			}
			applied += result.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return applied, nil
}
