package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	apperrors "chequemate/internal/errors"

	"chequemate/internal/dto"
	"chequemate/internal/models"
	"chequemate/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// AccountHandler handles tracked bank account operations
type AccountHandler struct {
	accountService  services.AccountServiceInterface
	forecastService services.ForecastServiceInterface
	logger          *slog.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(
	accountService services.AccountServiceInterface,
	forecastService services.ForecastServiceInterface,
	logger *slog.Logger,
) *AccountHandler {
	return &AccountHandler{
		accountService:  accountService,
		forecastService: forecastService,
		logger:          logger,
	}
}

// CreateAccount registers a new tracked account for the authenticated user
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral,
			apperrors.WithDetails("Invalid request format"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	openingBalance := decimal.Zero
	if req.OpeningBalance != "" {
		openingBalance, err = decimal.NewFromString(req.OpeningBalance)
		if err != nil {
			return SendError(c, apperrors.ValidationInvalidFormat,
				apperrors.WithDetails("openingBalance must be a decimal number"))
		}
	}

	account, err := h.accountService.CreateAccount(userID, req.Name, req.BankName, req.Currency, openingBalance)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNameTaken):
			return SendError(c, apperrors.AccountNameConflict)
		case errors.Is(err, services.ErrAccountNameMissing):
			return SendError(c, apperrors.ValidationRequiredField,
				apperrors.WithDetails("name is required"))
		default:
			return SendSystemError(c, err)
		}
	}

	h.logger.Info("account created",
		"account_id", account.ID,
		"user_id", userID,
	)

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    accountToResponse(account),
		Message: "Account created",
	})
}

// GetAccount returns one account owned by the authenticated user
func (h *AccountHandler) GetAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat,
			apperrors.WithDetails("account id must be a valid UUID"))
	}

	account, err := h.accountService.GetAccountByID(userID, accountID)
	if err != nil {
		return h.mapAccountError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: accountToResponse(account),
	})
}

// ListAccounts returns every account owned by the authenticated user
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	accounts, err := h.accountService.GetUserAccounts(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, accountToResponse(&accounts[i]))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.AccountListResponse{
			Accounts: responses,
			Total:    len(responses),
		},
	})
}

// UpdateAccount changes the mutable fields of an account
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat,
			apperrors.WithDetails("account id must be a valid UUID"))
	}

	var req dto.UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral,
			apperrors.WithDetails("Invalid request format"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.accountService.UpdateAccount(userID, accountID, req.Name, req.BankName)
	if err != nil {
		if errors.Is(err, services.ErrAccountNameTaken) {
			return SendError(c, apperrors.AccountNameConflict)
		}
		return h.mapAccountError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    accountToResponse(account),
		Message: "Account updated",
	})
}

// DeleteAccount soft-deletes an account
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat,
			apperrors.WithDetails("account id must be a valid UUID"))
	}

	if err := h.accountService.DeleteAccount(userID, accountID); err != nil {
		return h.mapAccountError(c, err)
	}

	h.logger.Info("account deleted",
		"account_id", accountID,
		"user_id", userID,
	)

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Account deleted",
	})
}

// GetBalance returns the settled balance of an account: the opening balance
// adjusted by cleared instruments only
func (h *AccountHandler) GetBalance(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat,
			apperrors.WithDetails("account id must be a valid UUID"))
	}

	account, err := h.accountService.GetAccountByID(userID, accountID)
	if err != nil {
		return h.mapAccountError(c, err)
	}

	balance, err := h.forecastService.GetCurrentBalance(userID, accountID)
	if err != nil {
		return h.mapAccountError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.BalanceResponse{
			AccountID:      accountID.String(),
			CurrentBalance: balance.StringFixed(2),
			Currency:       account.Currency,
		},
	})
}

func (h *AccountHandler) mapAccountError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrAccountNotFound):
		return SendError(c, apperrors.AccountNotFound)
	case errors.Is(err, services.ErrAccountNotOwned):
		return SendError(c, apperrors.AccountNotOwned)
	default:
		return SendSystemError(c, err)
	}
}

func accountToResponse(account *models.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:             account.ID.String(),
		Name:           account.Name,
		BankName:       account.BankName,
		Currency:       account.Currency,
		OpeningBalance: account.OpeningBalance.StringFixed(2),
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
	}
}
