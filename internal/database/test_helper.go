package database

import (
	"testing"
	"time"

	"chequemate/internal/config"
	"chequemate/internal/daterange"
	"chequemate/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "hashed_password",
		FullName:     "Test User",
		Timezone:     "Asia/Kathmandu",
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestAccount(t *testing.T, db *DB, user *models.User, openingBalance float64) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:         user.ID,
		Name:           "Test Checking",
		BankName:       "Test Bank",
		OpeningBalance: decimal.NewFromFloat(openingBalance),
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CreateTestInstrument(t *testing.T, db *DB, account *models.Account, kind, status string, amount float64, dueDate time.Time) *models.Instrument {
	t.Helper()

	instrument := &models.Instrument{
		AccountID:   account.ID,
		Kind:        kind,
		Status:      status,
		Amount:      decimal.NewFromFloat(amount),
		DueDate:     daterange.Normalize(dueDate),
		Description: "test instrument",
	}

	if err := db.Create(instrument).Error; err != nil {
		t.Fatalf("failed to create test instrument: %v", err)
	}

	return instrument
}
