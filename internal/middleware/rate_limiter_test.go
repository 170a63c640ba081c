package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"chequemate/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func resetVisitors() {
	mu.Lock()
	defer mu.Unlock()
	visitors = make(map[string]*visitor)
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	resetVisitors()
	e := echo.New()
	handler := RateLimiterWithConfig(5, 10)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", "10.0.0.1")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d within burst should pass", i+1)
	}
}

func TestRateLimiter_BlocksBeyondBurst(t *testing.T) {
	resetVisitors()
	e := echo.New()
	handler := RateLimiterWithConfig(1, 2)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	var lastRec *httptest.ResponseRecorder
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", "10.0.0.2")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		_ = handler(c)
		lastRec = rec
	}

	assert.Equal(t, http.StatusTooManyRequests, lastRec.Code)

	var response errors.ErrorResponse
	_ = json.Unmarshal(lastRec.Body.Bytes(), &response)
	assert.Equal(t, string(errors.SystemRateLimitExceeded), response.Error.Code)
}

func TestRateLimiter_SeparateLimitsPerIP(t *testing.T) {
	resetVisitors()
	e := echo.New()
	handler := RateLimiterWithConfig(1, 1)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// Exhaust one IP's budget
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", "10.0.0.3")
		rec := httptest.NewRecorder()
		_ = handler(e.NewContext(req, rec))
	}

	// A different IP still has its own budget
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "10.0.0.4")
	rec := httptest.NewRecorder()
	err := handler(e.NewContext(req, rec))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetIP_HeaderPrecedence(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "X-Forwarded-For wins",
			headers: map[string]string{"X-Forwarded-For": "1.2.3.4", "X-Real-IP": "5.6.7.8"},
			want:    "1.2.3.4",
		},
		{
			name:    "X-Real-IP fallback",
			headers: map[string]string{"X-Real-IP": "5.6.7.8"},
			want:    "5.6.7.8",
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/test-%d", i), nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			assert.Equal(t, tt.want, getIP(c))
		})
	}
}
