package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chequemate/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")
	return c, rec
}

func TestCustomHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	c, rec := newErrorContext(t)

	CustomHTTPErrorHandler(echo.NewHTTPError(http.StatusNotFound, "route not found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var response errors.ErrorResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, string(errors.AccountNotFound), response.Error.Code)
	assert.Equal(t, "route not found", response.Error.Message)
	assert.Equal(t, "test-trace-id", response.Error.TraceID)
}

func TestCustomHTTPErrorHandler_RateLimitStatus(t *testing.T) {
	c, rec := newErrorContext(t)

	CustomHTTPErrorHandler(echo.NewHTTPError(http.StatusTooManyRequests, "slow down"), c)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var response errors.ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.Equal(t, string(errors.SystemRateLimitExceeded), response.Error.Code)
}

func TestCustomHTTPErrorHandler_GenericError(t *testing.T) {
	c, rec := newErrorContext(t)

	CustomHTTPErrorHandler(assert.AnError, c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var response errors.ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.Equal(t, string(errors.SystemInternalError), response.Error.Code)
	// Internal details must not leak to the client
	assert.NotContains(t, response.Error.Message, assert.AnError.Error())
}

func TestCustomHTTPErrorHandler_MissingTraceID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	CustomHTTPErrorHandler(assert.AnError, c)

	var response errors.ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.Equal(t, "unknown", response.Error.TraceID)
}

func TestCustomHTTPErrorHandler_CommittedResponse(t *testing.T) {
	c, rec := newErrorContext(t)

	// Response already written; the handler must not write again
	assert.NoError(t, c.NoContent(http.StatusOK))
	CustomHTTPErrorHandler(assert.AnError, c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestMapHTTPStatusToErrorCode(t *testing.T) {
	tests := []struct {
		status int
		want   errors.ErrorCode
	}{
		{http.StatusBadRequest, errors.ValidationGeneral},
		{http.StatusUnauthorized, errors.AuthMissingToken},
		{http.StatusForbidden, errors.AuthInsufficientPermission},
		{http.StatusNotFound, errors.AccountNotFound},
		{http.StatusTooManyRequests, errors.SystemRateLimitExceeded},
		{http.StatusServiceUnavailable, errors.SystemServiceUnavailable},
		{http.StatusTeapot, errors.SystemInternalError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, mapHTTPStatusToErrorCode(tt.status))
	}
}
