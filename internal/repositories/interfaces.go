package repositories

import (
	"time"

	"chequemate/internal/forecast"
	"chequemate/internal/models"

	"github.com/google/uuid"
)

// InstrumentRepositoryInterface defines the contract for instrument repository operations
type InstrumentRepositoryInterface interface {
	Create(instrument *models.Instrument) error
	GetByID(id uuid.UUID) (*models.Instrument, error)
	GetByReference(reference string) (*models.Instrument, error)

	// GetAllByAccountID returns the full instrument snapshot for one account,
	// ordered by due date. This is the projection engine's input; it is never
	// paginated because projection is a fold over the whole set.
	GetAllByAccountID(accountID uuid.UUID) ([]models.Instrument, error)

	GetByAccountID(accountID uuid.UUID, offset, limit int) ([]models.Instrument, int64, error)
	GetWithFilters(filters models.InstrumentFilters, offset, limit int) ([]models.Instrument, int64, error)
	GetByDueDateRange(accountID uuid.UUID, startDate, endDate time.Time) ([]models.Instrument, error)

	// Pending snapshots for the settlement pass.
	GetPendingByUserID(userID uuid.UUID) ([]models.Instrument, error)
	GetAllPending() ([]models.Instrument, error)

	Update(instrument *models.Instrument) error
	Delete(id uuid.UUID) error

	// SettlePending applies computed status changes guarded by the pending
	// precondition: a row that has already settled is skipped, so repeated
	// or concurrent settlement runs are safe. Returns rows actually changed.
	SettlePending(changes []forecast.StatusChange) (int64, error)
}

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetByUserID(userID uuid.UUID) ([]models.Account, error)
	Update(account *models.Account) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
}
