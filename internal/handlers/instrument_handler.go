package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	apperrors "chequemate/internal/errors"

	"chequemate/internal/daterange"
	"chequemate/internal/dto"
	"chequemate/internal/models"
	"chequemate/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// InstrumentHandler handles cheque, deposit and withdrawal operations
type InstrumentHandler struct {
	instrumentService services.InstrumentServiceInterface
	logger            *slog.Logger
}

// NewInstrumentHandler creates a new instrument handler
func NewInstrumentHandler(instrumentService services.InstrumentServiceInterface, logger *slog.Logger) *InstrumentHandler {
	return &InstrumentHandler{
		instrumentService: instrumentService,
		logger:            logger,
	}
}

// CreateInstrument records a new instrument against one of the user's accounts
func (h *InstrumentHandler) CreateInstrument(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var req dto.CreateInstrumentRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral,
			apperrors.WithDetails("Invalid request format"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat,
			apperrors.WithDetails("accountId must be a valid UUID"))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, apperrors.InstrumentInvalidAmount)
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidDate,
			apperrors.WithDetails("dueDate must be a valid YYYY-MM-DD date"))
	}

	instrument := &models.Instrument{
		AccountID:   accountID,
		Kind:        req.Kind,
		Amount:      amount,
		DueDate:     dueDate,
		Payee:       req.Payee,
		Description: req.Description,
	}

	created, err := h.instrumentService.CreateInstrument(userID, instrument)
	if err != nil {
		return h.mapInstrumentError(c, err)
	}

	h.logger.Info("instrument created",
		"instrument_id", created.ID,
		"account_id", accountID,
		"kind", created.Kind,
	)

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    instrumentToResponse(created),
		Message: "Instrument recorded",
	})
}

// GetInstrument returns one instrument owned by the authenticated user
func (h *InstrumentHandler) GetInstrument(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	instrumentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat,
			apperrors.WithDetails("instrument id must be a valid UUID"))
	}

	instrument, err := h.instrumentService.GetInstrumentByID(userID, instrumentID)
	if err != nil {
		return h.mapInstrumentError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: instrumentToResponse(instrument),
	})
}

// ListInstruments returns a filtered, paginated instrument listing
func (h *InstrumentHandler) ListInstruments(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var req dto.ListInstrumentsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral,
			apperrors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat,
			apperrors.WithDetails("accountId must be a valid UUID"))
	}

	filters := models.InstrumentFilters{
		AccountID: accountID,
		Kind:      req.Kind,
		Status:    req.Status,
		Payee:     req.Payee,
		Reference: req.Reference,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}

	if req.DueDateFrom != "" {
		from, err := parseDate(req.DueDateFrom)
		if err != nil {
			return SendError(c, apperrors.ValidationInvalidDate)
		}
		filters.DueDateFrom = &from
	}
	if req.DueDateTo != "" {
		to, err := parseDate(req.DueDateTo)
		if err != nil {
			return SendError(c, apperrors.ValidationInvalidDate)
		}
		filters.DueDateTo = &to
	}

	offset, limit, page, pageSize := pagination(c)

	instruments, total, err := h.instrumentService.ListInstruments(userID, filters, offset, limit)
	if err != nil {
		return h.mapInstrumentError(c, err)
	}

	responses := make([]dto.InstrumentResponse, 0, len(instruments))
	for i := range instruments {
		responses = append(responses, instrumentToResponse(&instruments[i]))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.InstrumentListResponse{
			Instruments: responses,
			Total:       total,
			Page:        page,
			PageSize:    pageSize,
		},
	})
}

// UpdateInstrument changes the mutable fields of a pending instrument
func (h *InstrumentHandler) UpdateInstrument(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	instrumentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat,
			apperrors.WithDetails("instrument id must be a valid UUID"))
	}

	var req dto.UpdateInstrumentRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral,
			apperrors.WithDetails("Invalid request format"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	var updates services.InstrumentUpdates

	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			return SendError(c, apperrors.InstrumentInvalidAmount)
		}
		updates.Amount = &amount
	}
	if req.DueDate != nil {
		dueDate, err := parseDate(*req.DueDate)
		if err != nil {
			return SendError(c, apperrors.ValidationInvalidDate,
				apperrors.WithDetails("dueDate must be a valid YYYY-MM-DD date"))
		}
		updates.DueDate = &dueDate
	}
	updates.Payee = req.Payee
	updates.Description = req.Description

	instrument, err := h.instrumentService.UpdateInstrument(userID, instrumentID, updates)
	if err != nil {
		return h.mapInstrumentError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    instrumentToResponse(instrument),
		Message: "Instrument updated",
	})
}

// UpdateInstrumentStatus settles a pending instrument ahead of its due date
func (h *InstrumentHandler) UpdateInstrumentStatus(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	instrumentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat,
			apperrors.WithDetails("instrument id must be a valid UUID"))
	}

	var req dto.UpdateInstrumentStatusRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral,
			apperrors.WithDetails("Invalid request format"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	instrument, err := h.instrumentService.UpdateInstrumentStatus(userID, instrumentID, req.Status)
	if err != nil {
		return h.mapInstrumentError(c, err)
	}

	h.logger.Info("instrument settled manually",
		"instrument_id", instrumentID,
		"status", req.Status,
	)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    instrumentToResponse(instrument),
		Message: "Instrument settled",
	})
}

// DeleteInstrument removes a pending instrument
func (h *InstrumentHandler) DeleteInstrument(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	instrumentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat,
			apperrors.WithDetails("instrument id must be a valid UUID"))
	}

	if err := h.instrumentService.DeleteInstrument(userID, instrumentID); err != nil {
		return h.mapInstrumentError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Instrument deleted",
	})
}

func (h *InstrumentHandler) mapInstrumentError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrInstrumentNotFound):
		return SendError(c, apperrors.InstrumentNotFound)
	case errors.Is(err, services.ErrInstrumentSettled):
		return SendError(c, apperrors.InstrumentSettled)
	case errors.Is(err, services.ErrInvalidStatus):
		return SendError(c, apperrors.InstrumentInvalidStatus)
	case errors.Is(err, services.ErrAccountNotFound):
		return SendError(c, apperrors.AccountNotFound)
	case errors.Is(err, services.ErrAccountNotOwned):
		return SendError(c, apperrors.AccountNotOwned)
	case errors.Is(err, models.ErrInvalidInstrumentKind):
		return SendError(c, apperrors.InstrumentInvalidKind)
	case errors.Is(err, models.ErrInvalidAmount):
		return SendError(c, apperrors.InstrumentInvalidAmount)
	default:
		return SendSystemError(c, err)
	}
}

func instrumentToResponse(instrument *models.Instrument) dto.InstrumentResponse {
	return dto.InstrumentResponse{
		ID:          instrument.ID.String(),
		AccountID:   instrument.AccountID.String(),
		Kind:        instrument.Kind,
		Amount:      instrument.Amount.StringFixed(2),
		Status:      instrument.Status,
		DueDate:     daterange.Key(instrument.DueDate),
		CreatedDate: daterange.Key(instrument.CreatedDate),
		Payee:       instrument.Payee,
		Description: instrument.Description,
		Reference:   instrument.Reference,
		CreatedAt:   instrument.CreatedAt,
		UpdatedAt:   instrument.UpdatedAt,
	}
}
