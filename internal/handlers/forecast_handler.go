package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	apperrors "chequemate/internal/errors"

	"chequemate/internal/daterange"
	"chequemate/internal/dto"
	"chequemate/internal/forecast"
	"chequemate/internal/models"
	"chequemate/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ForecastHandler handles balance projection and statement endpoints
type ForecastHandler struct {
	forecastService  services.ForecastServiceInterface
	statementService services.StatementServiceInterface
	logger           *slog.Logger
}

// NewForecastHandler creates a new forecast handler
func NewForecastHandler(
	forecastService services.ForecastServiceInterface,
	statementService services.StatementServiceInterface,
	logger *slog.Logger,
) *ForecastHandler {
	return &ForecastHandler{
		forecastService:  forecastService,
		statementService: statementService,
		logger:           logger,
	}
}

// GetProjection projects [startDate, endDate], optionally widened by buffer
// days on either side
func (h *ForecastHandler) GetProjection(c echo.Context) error {
	userID, accountID, err := h.principal(c)
	if err != nil {
		return err
	}

	var req dto.ProjectionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral,
			apperrors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidDate)
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidDate)
	}

	var result *forecast.ProjectionResult
	if req.LeadingDays > 0 || req.TrailingDays > 0 {
		result, err = h.forecastService.GetBufferedProjection(userID, accountID, start, end, req.LeadingDays, req.TrailingDays)
	} else {
		result, err = h.forecastService.GetProjection(userID, accountID, start, end)
	}
	if err != nil {
		return h.mapForecastError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: projectionToResponse(accountID, result),
	})
}

// GetMonthProjection projects the calendar month containing refDate, padded
// by the configured default buffers. refDate defaults to today.
func (h *ForecastHandler) GetMonthProjection(c echo.Context) error {
	userID, accountID, err := h.principal(c)
	if err != nil {
		return err
	}

	var req dto.MonthProjectionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral,
			apperrors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	ref := daterange.Normalize(time.Now().UTC())
	if req.RefDate != "" {
		ref, err = parseDate(req.RefDate)
		if err != nil {
			return SendError(c, apperrors.ValidationInvalidDate)
		}
	}

	result, err := h.forecastService.GetMonthProjection(userID, accountID, ref)
	if err != nil {
		return h.mapForecastError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: projectionToResponse(accountID, result),
	})
}

// GetQuickProjection projects a named relative window (lastWeek, lastMonth,
// nextWeek, nextMonth, thisMonth) anchored on today
func (h *ForecastHandler) GetQuickProjection(c echo.Context) error {
	userID, accountID, err := h.principal(c)
	if err != nil {
		return err
	}

	var req dto.QuickProjectionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral,
			apperrors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.forecastService.GetQuickProjection(userID, accountID, req.Range)
	if err != nil {
		return h.mapForecastError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: projectionToResponse(accountID, result),
	})
}

// GetDayDetail returns one day's projection inside [startDate, endDate]
func (h *ForecastHandler) GetDayDetail(c echo.Context) error {
	userID, accountID, err := h.principal(c)
	if err != nil {
		return err
	}

	var req dto.DayDetailRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral,
			apperrors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidDate)
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidDate)
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidDate)
	}

	day, err := h.forecastService.GetDayDetail(userID, accountID, start, end, date)
	if err != nil {
		return h.mapForecastError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dayToResponse(*day),
	})
}

// GetStatement builds a monthly or quarterly statement of projected cash flow
func (h *ForecastHandler) GetStatement(c echo.Context) error {
	userID, accountID, err := h.principal(c)
	if err != nil {
		return err
	}

	var req dto.StatementRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral,
			apperrors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	statement, err := h.statementService.GenerateStatement(userID, accountID, req.PeriodType, req.Year, req.Period)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPeriodType),
			errors.Is(err, services.ErrInvalidPeriod):
			return SendError(c, apperrors.ValidationOutOfRange,
				apperrors.WithDetails(err.Error()))
		default:
			return h.mapForecastError(c, err)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: statementToResponse(statement),
	})
}

// GetAccountSummary returns all-time per-kind totals and the settled balance
// for one account
func (h *ForecastHandler) GetAccountSummary(c echo.Context) error {
	userID, accountID, err := h.principal(c)
	if err != nil {
		return err
	}

	summary, err := h.statementService.GetSummaryTotals(userID, accountID)
	if err != nil {
		return h.mapForecastError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: accountSummaryToResponse(summary),
	})
}

// GetMonthlyBreakdown returns a year of per-month kind/status aggregates
func (h *ForecastHandler) GetMonthlyBreakdown(c echo.Context) error {
	userID, accountID, err := h.principal(c)
	if err != nil {
		return err
	}

	var req dto.MonthlyBreakdownRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral,
			apperrors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	breakdown, err := h.statementService.GetMonthlyBreakdown(userID, accountID, req.Year)
	if err != nil {
		if errors.Is(err, services.ErrInvalidYear) {
			return SendError(c, apperrors.ValidationOutOfRange,
				apperrors.WithDetails(err.Error()))
		}
		return h.mapForecastError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: breakdownToResponse(breakdown),
	})
}

// principal extracts the authenticated user and the accountId path param
func (h *ForecastHandler) principal(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, SendError(c, apperrors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, SendError(c, apperrors.ValidationInvalidFormat,
			apperrors.WithDetails("accountId must be a valid UUID"))
	}

	return userID, accountID, nil
}

func (h *ForecastHandler) mapForecastError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrAccountNotFound):
		return SendError(c, apperrors.AccountNotFound)
	case errors.Is(err, services.ErrAccountNotOwned):
		return SendError(c, apperrors.AccountNotOwned)
	case errors.Is(err, services.ErrWindowTooLarge):
		return SendError(c, apperrors.ForecastWindowTooLarge)
	case errors.Is(err, services.ErrDateOutsideRange):
		return SendError(c, apperrors.ForecastDateOutsideRange)
	case errors.Is(err, daterange.ErrInvalidRange):
		return SendError(c, apperrors.ForecastInvalidRange)
	case errors.Is(err, daterange.ErrNegativeBuffer):
		return SendError(c, apperrors.ForecastNegativeBuffer)
	case errors.Is(err, daterange.ErrUnknownQuickRange):
		return SendError(c, apperrors.ForecastUnknownQuickKind)
	default:
		return SendSystemError(c, err)
	}
}

func totalsToResponse(t forecast.DayTotals) dto.DayTotalsResponse {
	return dto.DayTotalsResponse{
		Deposits:    t.Deposits.StringFixed(2),
		Cheques:     t.Cheques.StringFixed(2),
		Withdrawals: t.Withdrawals.StringFixed(2),
	}
}

func dayToResponse(day forecast.DayProjection) dto.DayProjectionResponse {
	return dto.DayProjectionResponse{
		Date:             daterange.Key(day.Date),
		DayTotals:        totalsToResponse(day.DayTotals),
		CumulativeTotals: totalsToResponse(day.CumulativeTotals),
		ProjectedBalance: day.ProjectedBalance.StringFixed(2),
	}
}

func projectionToResponse(accountID uuid.UUID, result *forecast.ProjectionResult) dto.ProjectionResponse {
	days := make([]dto.DayProjectionResponse, 0, len(result.Days))
	for _, day := range result.Days {
		days = append(days, dayToResponse(day))
	}

	return dto.ProjectionResponse{
		AccountID:     accountID.String(),
		StartDate:     daterange.Key(result.Window.Start),
		EndDate:       daterange.Key(result.Window.End),
		AnchorBalance: result.AnchorBalance.StringFixed(2),
		Days:          days,
		Excluded:      result.Excluded,
	}
}

func statementToResponse(statement *models.ForecastStatement) dto.StatementResponse {
	lines := make([]dto.StatementLineResponse, 0, len(statement.Lines))
	for _, line := range statement.Lines {
		lines = append(lines, dto.StatementLineResponse{
			Date:             daterange.Key(line.Date),
			Kind:             line.Kind,
			Status:           line.Status,
			Amount:           line.Amount.StringFixed(2),
			Payee:            line.Payee,
			Reference:        line.Reference,
			ProjectedBalance: line.ProjectedBalance.StringFixed(2),
		})
	}

	return dto.StatementResponse{
		AccountID:        statement.AccountID.String(),
		AccountName:      statement.AccountName,
		Currency:         statement.Currency,
		PeriodType:       statement.PeriodType,
		Year:             statement.Year,
		Period:           statement.Period,
		StartDate:        daterange.Key(statement.StartDate),
		EndDate:          daterange.Key(statement.EndDate),
		OpeningProjected: statement.OpeningProjected.StringFixed(2),
		ClosingProjected: statement.ClosingProjected.StringFixed(2),
		Lines:            lines,
		Summary:          summaryToResponse(statement.Summary),
		GeneratedAt:      statement.GeneratedAt,
	}
}

func summaryToResponse(summary models.StatementSummary) dto.StatementSummaryResponse {
	return dto.StatementSummaryResponse{
		TotalDeposits:    summary.TotalDeposits.StringFixed(2),
		TotalCheques:     summary.TotalCheques.StringFixed(2),
		TotalWithdrawals: summary.TotalWithdrawals.StringFixed(2),
		NetMovement:      summary.NetMovement.StringFixed(2),
		PendingCount:     summary.PendingCount,
		SettledCount:     summary.SettledCount,
	}
}

func breakdownToResponse(breakdown *models.MonthlyBreakdown) dto.MonthlyBreakdownResponse {
	months := make([]dto.MonthlyBreakdownEntryResponse, 0, len(breakdown.Months))
	for _, m := range breakdown.Months {
		months = append(months, dto.MonthlyBreakdownEntryResponse{
			Month:            m.Month,
			TotalDeposits:    m.TotalDeposits.StringFixed(2),
			TotalCheques:     m.TotalCheques.StringFixed(2),
			TotalWithdrawals: m.TotalWithdrawals.StringFixed(2),
			NetMovement:      m.NetMovement.StringFixed(2),
			PendingCount:     m.PendingCount,
			SettledCount:     m.SettledCount,
		})
	}

	return dto.MonthlyBreakdownResponse{
		AccountID:   breakdown.AccountID.String(),
		AccountName: breakdown.AccountName,
		Currency:    breakdown.Currency,
		Year:        breakdown.Year,
		Months:      months,
		Totals:      summaryToResponse(breakdown.Totals),
		GeneratedAt: breakdown.GeneratedAt,
	}
}

func accountSummaryToResponse(summary *models.AccountSummary) dto.AccountSummaryResponse {
	return dto.AccountSummaryResponse{
		AccountID:       summary.AccountID.String(),
		AccountName:     summary.AccountName,
		Currency:        summary.Currency,
		OpeningBalance:  summary.OpeningBalance.StringFixed(2),
		CurrentBalance:  summary.CurrentBalance.StringFixed(2),
		InstrumentCount: summary.InstrumentCount,
		Totals:          summaryToResponse(summary.Totals),
		GeneratedAt:     summary.GeneratedAt,
	}
}
