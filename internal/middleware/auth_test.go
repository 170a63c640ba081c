package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chequemate/internal/errors"
	"chequemate/internal/models"
	"chequemate/internal/services"
	"chequemate/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestRequireAuthSuite(t *testing.T) {
	suite.Run(t, new(RequireAuthSuite))
}

type RequireAuthSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	tokenService *service_mocks.MockTokenServiceInterface
	e            *echo.Echo
}

func (s *RequireAuthSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tokenService = service_mocks.NewMockTokenServiceInterface(s.ctrl)
	s.e = echo.New()
}

func (s *RequireAuthSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RequireAuthSuite) runWithAuth(authHeader string) (*httptest.ResponseRecorder, bool, uuid.UUID) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	nextCalled := false
	var seenUserID uuid.UUID
	handler := RequireAuth(s.tokenService)(func(c echo.Context) error {
		nextCalled = true
		seenUserID = GetUserID(c)
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	s.NoError(err)
	return rec, nextCalled, seenUserID
}

func (s *RequireAuthSuite) TestValidToken() {
	userID := uuid.New()
	claims := &models.CustomClaims{
		UserID: userID.String(),
		Email:  "user@example.com",
	}

	s.tokenService.EXPECT().
		ExtractTokenFromHeader("Bearer valid.jwt.token").
		Return("valid.jwt.token", nil).
		Times(1)
	s.tokenService.EXPECT().
		ValidateToken("valid.jwt.token").
		Return(claims, nil).
		Times(1)

	rec, nextCalled, seenUserID := s.runWithAuth("Bearer valid.jwt.token")

	s.True(nextCalled)
	s.Equal(userID, seenUserID)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RequireAuthSuite) TestMissingHeader() {
	rec, nextCalled, _ := s.runWithAuth("")

	s.False(nextCalled)
	s.Equal(http.StatusUnauthorized, rec.Code)

	var response errors.ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &response)
	s.Equal(string(errors.AuthMissingToken), response.Error.Code)
}

func (s *RequireAuthSuite) TestMalformedHeader() {
	s.tokenService.EXPECT().
		ExtractTokenFromHeader("NotBearer abc").
		Return("", services.ErrInvalidAuthHeader).
		Times(1)

	rec, nextCalled, _ := s.runWithAuth("NotBearer abc")

	s.False(nextCalled)
	s.Equal(http.StatusUnauthorized, rec.Code)

	var response errors.ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &response)
	s.Equal(string(errors.AuthInvalidTokenFormat), response.Error.Code)
}

func (s *RequireAuthSuite) TestExpiredToken() {
	s.tokenService.EXPECT().
		ExtractTokenFromHeader(gomock.Any()).
		Return("expired.jwt.token", nil).
		Times(1)
	s.tokenService.EXPECT().
		ValidateToken("expired.jwt.token").
		Return(nil, services.ErrExpiredToken).
		Times(1)

	rec, nextCalled, _ := s.runWithAuth("Bearer expired.jwt.token")

	s.False(nextCalled)
	s.Equal(http.StatusUnauthorized, rec.Code)

	var response errors.ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &response)
	s.Equal(string(errors.AuthExpiredToken), response.Error.Code)
}

func (s *RequireAuthSuite) TestInvalidToken() {
	s.tokenService.EXPECT().
		ExtractTokenFromHeader(gomock.Any()).
		Return("bad.jwt.token", nil).
		Times(1)
	s.tokenService.EXPECT().
		ValidateToken("bad.jwt.token").
		Return(nil, services.ErrInvalidToken).
		Times(1)

	rec, nextCalled, _ := s.runWithAuth("Bearer bad.jwt.token")

	s.False(nextCalled)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RequireAuthSuite) TestGarbageUserIDInClaims() {
	claims := &models.CustomClaims{UserID: "not-a-uuid"}

	s.tokenService.EXPECT().
		ExtractTokenFromHeader(gomock.Any()).
		Return("valid.jwt.token", nil).
		Times(1)
	s.tokenService.EXPECT().
		ValidateToken("valid.jwt.token").
		Return(claims, nil).
		Times(1)

	rec, nextCalled, _ := s.runWithAuth("Bearer valid.jwt.token")

	s.False(nextCalled)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RequireAuthSuite) TestGetUserIDWithoutAuth() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.Equal(uuid.Nil, GetUserID(c))
}
