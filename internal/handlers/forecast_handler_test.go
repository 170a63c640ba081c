package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chequemate/internal/daterange"
	"chequemate/internal/dto"
	"chequemate/internal/forecast"
	"chequemate/internal/models"
	"chequemate/internal/services"
	"chequemate/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestForecastHandler(t *testing.T) {
	suite.Run(t, new(ForecastHandlerSuite))
}

type ForecastHandlerSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	forecastService  *service_mocks.MockForecastServiceInterface
	statementService *service_mocks.MockStatementServiceInterface
	handler          *ForecastHandler
	e                *echo.Echo
	userID           uuid.UUID
	accountID        uuid.UUID
}

func (s *ForecastHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.forecastService = service_mocks.NewMockForecastServiceInterface(s.ctrl)
	s.statementService = service_mocks.NewMockStatementServiceInterface(s.ctrl)
	s.handler = NewForecastHandler(s.forecastService, s.statementService,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.userID = uuid.New()
	s.accountID = uuid.New()
}

func (s *ForecastHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ForecastHandlerSuite) authedGet(path string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.userID)
	c.SetParamNames("accountId")
	c.SetParamValues(s.accountID.String())
	return rec, c
}

func (s *ForecastHandlerSuite) sampleProjection(start, end time.Time) *forecast.ProjectionResult {
	window, err := daterange.New(start, end)
	s.Require().NoError(err)

	result, err := forecast.Project(decimal.RequireFromString("1000.00"), []models.Instrument{
		{
			ID:        uuid.New(),
			AccountID: s.accountID,
			Kind:      models.InstrumentKindDeposit,
			Status:    models.InstrumentStatusPending,
			Amount:    decimal.RequireFromString("250.00"),
			DueDate:   start.AddDate(0, 0, 1),
		},
	}, window.Start, window.End)
	s.Require().NoError(err)
	return result
}

func (s *ForecastHandlerSuite) TestGetProjection() {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)

	s.Run("plain window", func() {
		s.forecastService.EXPECT().
			GetProjection(s.userID, s.accountID, start, end).
			Return(s.sampleProjection(start, end), nil).
			Times(1)

		rec, c := s.authedGet("/accounts/" + s.accountID.String() +
			"/forecast?startDate=2026-03-01&endDate=2026-03-07")

		err := s.handler.GetProjection(c)
		s.NoError(err)
		s.Equal(http.StatusOK, rec.Code)

		var response struct {
			Data dto.ProjectionResponse `json:"data"`
		}
		_ = json.Unmarshal(rec.Body.Bytes(), &response)
		s.Equal("2026-03-01", response.Data.StartDate)
		s.Equal("2026-03-07", response.Data.EndDate)
		s.Equal("1000.00", response.Data.AnchorBalance)
		s.Len(response.Data.Days, 7)
		// Day 2 carries the deposit; the balance steps up and stays there
		s.Equal("1250.00", response.Data.Days[1].ProjectedBalance)
		s.Equal("1250.00", response.Data.Days[6].ProjectedBalance)
	})

	s.Run("buffered window", func() {
		s.forecastService.EXPECT().
			GetBufferedProjection(s.userID, s.accountID, start, end, 5, 5).
			Return(s.sampleProjection(start.AddDate(0, 0, -5), end.AddDate(0, 0, 5)), nil).
			Times(1)

		rec, c := s.authedGet("/accounts/" + s.accountID.String() +
			"/forecast?startDate=2026-03-01&endDate=2026-03-07&leadingDays=5&trailingDays=5")

		err := s.handler.GetProjection(c)
		s.NoError(err)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("inverted range", func() {
		s.forecastService.EXPECT().
			GetProjection(s.userID, s.accountID, gomock.Any(), gomock.Any()).
			Return(nil, daterange.ErrInvalidRange).
			Times(1)

		rec, c := s.authedGet("/accounts/" + s.accountID.String() +
			"/forecast?startDate=2026-03-07&endDate=2026-03-01")

		err := s.handler.GetProjection(c)
		s.NoError(err)
		s.Equal(http.StatusBadRequest, rec.Code)

		var response ErrorResponse
		_ = json.Unmarshal(rec.Body.Bytes(), &response)
		s.Equal("FORECAST_001", response.Error.Code)
	})

	s.Run("window too large", func() {
		s.forecastService.EXPECT().
			GetProjection(s.userID, s.accountID, gomock.Any(), gomock.Any()).
			Return(nil, services.ErrWindowTooLarge).
			Times(1)

		rec, c := s.authedGet("/accounts/" + s.accountID.String() +
			"/forecast?startDate=2020-01-01&endDate=2026-03-01")

		err := s.handler.GetProjection(c)
		s.NoError(err)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("foreign account", func() {
		s.forecastService.EXPECT().
			GetProjection(s.userID, s.accountID, gomock.Any(), gomock.Any()).
			Return(nil, services.ErrAccountNotOwned).
			Times(1)

		rec, c := s.authedGet("/accounts/" + s.accountID.String() +
			"/forecast?startDate=2026-03-01&endDate=2026-03-07")

		err := s.handler.GetProjection(c)
		s.NoError(err)
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

func (s *ForecastHandlerSuite) TestGetQuickProjection() {
	s.Run("named window", func() {
		start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 1, 22, 0, 0, 0, 0, time.UTC)

		s.forecastService.EXPECT().
			GetQuickProjection(s.userID, s.accountID, "nextWeek").
			Return(s.sampleProjection(start, end), nil).
			Times(1)

		rec, c := s.authedGet("/accounts/" + s.accountID.String() + "/forecast/quick?range=nextWeek")

		err := s.handler.GetQuickProjection(c)
		s.NoError(err)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("unknown quick kind fails validation", func() {
		_, c := s.authedGet("/accounts/" + s.accountID.String() + "/forecast/quick?range=thisWeek")

		err := s.handler.GetQuickProjection(c)
		s.Error(err)
	})
}

func (s *ForecastHandlerSuite) TestGetMonthProjection() {
	start := time.Date(2026, 1, 27, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	s.forecastService.EXPECT().
		GetMonthProjection(s.userID, s.accountID, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)).
		Return(s.sampleProjection(start, end), nil).
		Times(1)

	rec, c := s.authedGet("/accounts/" + s.accountID.String() + "/forecast/month?refDate=2026-02-15")

	err := s.handler.GetMonthProjection(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ForecastHandlerSuite) TestGetDayDetail() {
	s.Run("day inside window", func() {
		day := forecast.DayProjection{
			Date:             time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			ProjectedBalance: decimal.RequireFromString("1250.00"),
		}

		s.forecastService.EXPECT().
			GetDayDetail(s.userID, s.accountID,
				time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)).
			Return(&day, nil).
			Times(1)

		rec, c := s.authedGet("/accounts/" + s.accountID.String() +
			"/forecast/day?startDate=2026-03-01&endDate=2026-03-07&date=2026-03-02")

		err := s.handler.GetDayDetail(c)
		s.NoError(err)
		s.Equal(http.StatusOK, rec.Code)

		var response struct {
			Data dto.DayProjectionResponse `json:"data"`
		}
		_ = json.Unmarshal(rec.Body.Bytes(), &response)
		s.Equal("2026-03-02", response.Data.Date)
		s.Equal("1250.00", response.Data.ProjectedBalance)
	})

	s.Run("date outside window is not found", func() {
		s.forecastService.EXPECT().
			GetDayDetail(s.userID, s.accountID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrDateOutsideRange).
			Times(1)

		rec, c := s.authedGet("/accounts/" + s.accountID.String() +
			"/forecast/day?startDate=2026-03-01&endDate=2026-03-07&date=2026-04-01")

		err := s.handler.GetDayDetail(c)
		s.NoError(err)
		s.Equal(http.StatusNotFound, rec.Code)

		var response ErrorResponse
		_ = json.Unmarshal(rec.Body.Bytes(), &response)
		s.Equal("FORECAST_004", response.Error.Code)
	})
}

func (s *ForecastHandlerSuite) TestGetStatement() {
	s.Run("monthly statement", func() {
		statement := &models.ForecastStatement{
			AccountID:        s.accountID,
			AccountName:      "Everyday",
			Currency:         "NPR",
			PeriodType:       models.StatementPeriodMonthly,
			Year:             2026,
			Period:           3,
			StartDate:        time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:          time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
			OpeningProjected: decimal.RequireFromString("1000.00"),
			ClosingProjected: decimal.RequireFromString("1250.00"),
			GeneratedAt:      time.Now(),
		}

		s.statementService.EXPECT().
			GenerateStatement(s.userID, s.accountID, "monthly", 2026, 3).
			Return(statement, nil).
			Times(1)

		rec, c := s.authedGet("/accounts/" + s.accountID.String() +
			"/statement?periodType=monthly&year=2026&period=3")

		err := s.handler.GetStatement(c)
		s.NoError(err)
		s.Equal(http.StatusOK, rec.Code)

		var response struct {
			Data dto.StatementResponse `json:"data"`
		}
		_ = json.Unmarshal(rec.Body.Bytes(), &response)
		s.Equal("monthly", response.Data.PeriodType)
		s.Equal("1000.00", response.Data.OpeningProjected)
		s.Equal("1250.00", response.Data.ClosingProjected)
	})

	s.Run("quarter out of range", func() {
		s.statementService.EXPECT().
			GenerateStatement(s.userID, s.accountID, "quarterly", 2026, 7).
			Return(nil, services.ErrInvalidPeriod).
			Times(1)

		rec, c := s.authedGet("/accounts/" + s.accountID.String() +
			"/statement?periodType=quarterly&year=2026&period=7")

		err := s.handler.GetStatement(c)
		s.NoError(err)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
