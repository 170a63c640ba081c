package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"chequemate/internal/dto"
	"chequemate/internal/models"
	"chequemate/internal/services"
	"chequemate/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerSuite))
}

type AccountHandlerSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	accountService  *service_mocks.MockAccountServiceInterface
	forecastService *service_mocks.MockForecastServiceInterface
	handler         *AccountHandler
	e               *echo.Echo
	userID          uuid.UUID
}

func (s *AccountHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.accountService = service_mocks.NewMockAccountServiceInterface(s.ctrl)
	s.forecastService = service_mocks.NewMockForecastServiceInterface(s.ctrl)
	s.handler = NewAccountHandler(s.accountService, s.forecastService,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *AccountHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AccountHandlerSuite) authedJSON(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var reader *bytes.Buffer
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return rec, c
}

func (s *AccountHandlerSuite) TestCreateAccount() {
	s.Run("creates account with opening balance", func() {
		account := &models.Account{
			ID:             uuid.New(),
			UserID:         s.userID,
			Name:           "Everyday",
			Currency:       "NPR",
			OpeningBalance: decimal.RequireFromString("2500.00"),
		}

		s.accountService.EXPECT().
			CreateAccount(s.userID, "Everyday", "Nabil Bank", "NPR", decimal.RequireFromString("2500.00")).
			Return(account, nil).
			Times(1)

		rec, c := s.authedJSON(http.MethodPost, "/accounts", map[string]string{
			"name":           "Everyday",
			"bankName":       "Nabil Bank",
			"currency":       "NPR",
			"openingBalance": "2500.00",
		})

		err := s.handler.CreateAccount(c)
		s.NoError(err)
		s.Equal(http.StatusCreated, rec.Code)

		var response struct {
			Data dto.AccountResponse `json:"data"`
		}
		_ = json.Unmarshal(rec.Body.Bytes(), &response)
		s.Equal("2500.00", response.Data.OpeningBalance)
	})

	s.Run("defaults opening balance to zero", func() {
		s.accountService.EXPECT().
			CreateAccount(s.userID, "Savings", "", "", decimal.Zero).
			Return(&models.Account{ID: uuid.New(), UserID: s.userID, Name: "Savings", Currency: "NPR"}, nil).
			Times(1)

		rec, c := s.authedJSON(http.MethodPost, "/accounts", map[string]string{
			"name": "Savings",
		})

		err := s.handler.CreateAccount(c)
		s.NoError(err)
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("rejects malformed opening balance", func() {
		rec, c := s.authedJSON(http.MethodPost, "/accounts", map[string]string{
			"name":           "Broken",
			"openingBalance": "not-a-number",
		})

		err := s.handler.CreateAccount(c)
		s.NoError(err)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("duplicate name conflict", func() {
		s.accountService.EXPECT().
			CreateAccount(s.userID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrAccountNameTaken).
			Times(1)

		rec, c := s.authedJSON(http.MethodPost, "/accounts", map[string]string{
			"name": "Everyday",
		})

		err := s.handler.CreateAccount(c)
		s.NoError(err)
		s.Equal(http.StatusConflict, rec.Code)

		var response ErrorResponse
		_ = json.Unmarshal(rec.Body.Bytes(), &response)
		s.Equal("ACCOUNT_003", response.Error.Code)
	})
}

func (s *AccountHandlerSuite) TestGetAccount() {
	s.Run("returns owned account", func() {
		accountID := uuid.New()
		account := &models.Account{
			ID:             accountID,
			UserID:         s.userID,
			Name:           "Everyday",
			Currency:       "NPR",
			OpeningBalance: decimal.RequireFromString("100.50"),
		}

		s.accountService.EXPECT().
			GetAccountByID(s.userID, accountID).
			Return(account, nil).
			Times(1)

		rec, c := s.authedJSON(http.MethodGet, "/accounts/"+accountID.String(), nil)
		c.SetParamNames("id")
		c.SetParamValues(accountID.String())

		err := s.handler.GetAccount(c)
		s.NoError(err)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("not found", func() {
		accountID := uuid.New()

		s.accountService.EXPECT().
			GetAccountByID(s.userID, accountID).
			Return(nil, services.ErrAccountNotFound).
			Times(1)

		rec, c := s.authedJSON(http.MethodGet, "/accounts/"+accountID.String(), nil)
		c.SetParamNames("id")
		c.SetParamValues(accountID.String())

		err := s.handler.GetAccount(c)
		s.NoError(err)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("foreign account is forbidden", func() {
		accountID := uuid.New()

		s.accountService.EXPECT().
			GetAccountByID(s.userID, accountID).
			Return(nil, services.ErrAccountNotOwned).
			Times(1)

		rec, c := s.authedJSON(http.MethodGet, "/accounts/"+accountID.String(), nil)
		c.SetParamNames("id")
		c.SetParamValues(accountID.String())

		err := s.handler.GetAccount(c)
		s.NoError(err)
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("malformed id", func() {
		rec, c := s.authedJSON(http.MethodGet, "/accounts/nope", nil)
		c.SetParamNames("id")
		c.SetParamValues("nope")

		err := s.handler.GetAccount(c)
		s.NoError(err)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AccountHandlerSuite) TestListAccounts() {
	accounts := []models.Account{
		{ID: uuid.New(), UserID: s.userID, Name: "Everyday", Currency: "NPR"},
		{ID: uuid.New(), UserID: s.userID, Name: "Savings", Currency: "NPR"},
	}

	s.accountService.EXPECT().
		GetUserAccounts(s.userID).
		Return(accounts, nil).
		Times(1)

	rec, c := s.authedJSON(http.MethodGet, "/accounts", nil)

	err := s.handler.ListAccounts(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data dto.AccountListResponse `json:"data"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &response)
	s.Equal(2, response.Data.Total)
	s.Len(response.Data.Accounts, 2)
}

func (s *AccountHandlerSuite) TestGetBalance() {
	accountID := uuid.New()
	account := &models.Account{
		ID:       accountID,
		UserID:   s.userID,
		Name:     "Everyday",
		Currency: "NPR",
	}

	s.accountService.EXPECT().
		GetAccountByID(s.userID, accountID).
		Return(account, nil).
		Times(1)

	s.forecastService.EXPECT().
		GetCurrentBalance(s.userID, accountID).
		Return(decimal.RequireFromString("1175.00"), nil).
		Times(1)

	rec, c := s.authedJSON(http.MethodGet, "/accounts/"+accountID.String()+"/balance", nil)
	c.SetParamNames("id")
	c.SetParamValues(accountID.String())

	err := s.handler.GetBalance(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data dto.BalanceResponse `json:"data"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &response)
	s.Equal("1175.00", response.Data.CurrentBalance)
	s.Equal("NPR", response.Data.Currency)
}

func (s *AccountHandlerSuite) TestDeleteAccount() {
	accountID := uuid.New()

	s.accountService.EXPECT().
		DeleteAccount(s.userID, accountID).
		Return(nil).
		Times(1)

	rec, c := s.authedJSON(http.MethodDelete, "/accounts/"+accountID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(accountID.String())

	err := s.handler.DeleteAccount(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}
