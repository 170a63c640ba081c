package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"chequemate/internal/models"
	"chequemate/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAccountNameTaken   = errors.New("an account with this name already exists")
	ErrAccountNameMissing = errors.New("account name is required")
)

type accountService struct {
	accountRepo    repositories.AccountRepositoryInterface
	instrumentRepo repositories.InstrumentRepositoryInterface
	logger         *slog.Logger
}

// NewAccountService creates a new account service
func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	instrumentRepo repositories.InstrumentRepositoryInterface,
	logger *slog.Logger,
) AccountServiceInterface {
	return &accountService{
		accountRepo:    accountRepo,
		instrumentRepo: instrumentRepo,
		logger:         logger,
	}
}

// CreateAccount creates a new tracked bank account. The opening balance may
// be negative: an overdrawn account is a valid projection anchor.
func (s *accountService) CreateAccount(userID uuid.UUID, name, bankName, currency string, openingBalance decimal.Decimal) (*models.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrAccountNameMissing
	}

	existing, err := s.accountRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing accounts: %w", err)
	}
	for _, account := range existing {
		if strings.EqualFold(account.Name, name) {
			return nil, ErrAccountNameTaken
		}
	}

	account := &models.Account{
		UserID:         userID,
		Name:           name,
		BankName:       strings.TrimSpace(bankName),
		Currency:       currency,
		OpeningBalance: openingBalance,
	}

	if err := s.accountRepo.Create(account); err != nil {
		return nil, err
	}

	s.logger.Info("account created",
		"account_id", account.ID,
		"user_id", userID,
	)

	return account, nil
}

// GetAccountByID retrieves an account the user owns.
func (s *accountService) GetAccountByID(userID, accountID uuid.UUID) (*models.Account, error) {
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

// GetUserAccounts lists all of the user's accounts.
func (s *accountService) GetUserAccounts(userID uuid.UUID) ([]models.Account, error) {
	return s.accountRepo.GetByUserID(userID)
}

// UpdateAccount renames an account or its bank label.
func (s *accountService) UpdateAccount(userID, accountID uuid.UUID, name, bankName *string) (*models.Account, error) {
	account, err := s.GetAccountByID(userID, accountID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, ErrAccountNameMissing
		}
		account.Name = trimmed
	}
	if bankName != nil {
		account.BankName = strings.TrimSpace(*bankName)
	}

	if err := s.accountRepo.Update(account); err != nil {
		return nil, err
	}

	s.logger.Info("account updated", "account_id", account.ID)
	return account, nil
}

// DeleteAccount soft-deletes an account. Instruments under it remain for
// audit but stop appearing in projections once the account is gone.
func (s *accountService) DeleteAccount(userID, accountID uuid.UUID) error {
	if _, err := s.GetAccountByID(userID, accountID); err != nil {
		return err
	}

	if err := s.accountRepo.Delete(accountID); err != nil {
		return err
	}

	s.logger.Info("account deleted", "account_id", accountID, "user_id", userID)
	return nil
}
