package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrAccountNameRequired = errors.New("account name is required")
)

// Account groups instruments under one owner. OpeningBalance is the anchor
// every balance projection for the account is computed relative to.
type Account struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name           string          `gorm:"type:varchar(100);not null" json:"name"`
	BankName       string          `gorm:"type:varchar(100)" json:"bank_name,omitempty"`
	OpeningBalance decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"opening_balance"`
	Currency       string          `gorm:"type:varchar(3);not null;default:'NPR'" json:"currency"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`

	// Associations
	User        User         `gorm:"foreignKey:UserID" json:"-"`
	Instruments []Instrument `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Currency == "" {
		a.Currency = "NPR"
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if a.Name == "" {
		return ErrAccountNameRequired
	}

	// OpeningBalance may be negative: an overdrawn account is still a
	// legitimate projection anchor.
	return nil
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}
