package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Auth Invalid Credentials",
			code:     AuthInvalidCredentials,
			expected: "Invalid email or password",
		},
		{
			name:     "Account Not Found",
			code:     AccountNotFound,
			expected: "Account not found",
		},
		{
			name:     "Instrument Invalid Amount",
			code:     InstrumentInvalidAmount,
			expected: "Instrument amount must be positive",
		},
		{
			name:     "Forecast Invalid Range",
			code:     ForecastInvalidRange,
			expected: "Start date must not be after end date",
		},
		{
			name:     "Forecast Date Outside Range",
			code:     ForecastDateOutsideRange,
			expected: "Requested date is outside the projected window",
		},
		{
			name:     "Settlement Invalid Timezone",
			code:     SettlementInvalidTimezone,
			expected: "Unknown or invalid IANA timezone",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

// TestGetErrorMessage_UnknownCode tests fallback for unregistered codes
func (s *CodesTestSuite) TestGetErrorMessage_UnknownCode() {
	s.Equal("An error occurred", GetErrorMessage(ErrorCode("NOPE_999")))
}

// TestIsValidErrorCode tests code registration checks
func (s *CodesTestSuite) TestIsValidErrorCode() {
	s.True(IsValidErrorCode(ForecastInvalidRange))
	s.True(IsValidErrorCode(SystemInternalError))
	s.False(IsValidErrorCode(ErrorCode("NOPE_999")))
	s.False(IsValidErrorCode(ErrorCode("")))
}

// TestGetHTTPStatus tests the code-to-status mapping
func (s *CodesTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ForecastInvalidRange, http.StatusBadRequest},
		{ForecastNegativeBuffer, http.StatusBadRequest},
		{SettlementInvalidTimezone, http.StatusBadRequest},
		{AuthMissingToken, http.StatusUnauthorized},
		{AuthExpiredToken, http.StatusUnauthorized},
		{AccountNotOwned, http.StatusForbidden},
		{AccountNotFound, http.StatusNotFound},
		{ForecastDateOutsideRange, http.StatusNotFound},
		{InstrumentSettled, http.StatusConflict},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemDatabaseError, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{ErrorCode("NOPE_999"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}
