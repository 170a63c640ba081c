package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	apperrors "chequemate/internal/errors"

	"chequemate/internal/dto"
	"chequemate/internal/services"

	"github.com/labstack/echo/v4"
)

// SettlementHandler triggers due-date settlement passes on demand
type SettlementHandler struct {
	settlementService services.SettlementServiceInterface
	logger            *slog.Logger
}

// NewSettlementHandler creates a new settlement handler
func NewSettlementHandler(settlementService services.SettlementServiceInterface, logger *slog.Logger) *SettlementHandler {
	return &SettlementHandler{
		settlementService: settlementService,
		logger:            logger,
	}
}

// RunSettlement settles every due pending instrument across the
// authenticated user's accounts. Idempotent: re-running applies nothing new.
func (h *SettlementHandler) RunSettlement(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	result, err := h.settlementService.SettleDueForUser(userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return SendError(c, apperrors.AuthMissingToken)
		default:
			h.logger.Error("settlement run failed",
				"user_id", userID,
				"error", err.Error(),
			)
			return SendError(c, apperrors.SettlementFailed)
		}
	}

	h.logger.Info("settlement run completed",
		"user_id", userID,
		"examined", result.Examined,
		"applied", result.Applied,
	)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.SettlementResponse{
			RunAt:    result.RunAt,
			Examined: result.Examined,
			Deducted: result.Deducted,
			Cleared:  result.Cleared,
			Applied:  result.Applied,
		},
		Message: "Settlement completed",
	})
}
