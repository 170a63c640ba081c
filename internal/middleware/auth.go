package middleware

import (
	"errors"

	apperrors "chequemate/internal/errors"
	"chequemate/internal/handlers"
	"chequemate/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// UserIDContextKey is the context key for the authenticated user's ID
	UserIDContextKey = "user_id"
	// UserEmailContextKey is the context key for the authenticated user's email
	UserEmailContextKey = "user_email"
)

// RequireAuth creates a middleware that requires a valid JWT token
func RequireAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, apperrors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateToken(token)
			if err != nil {
				if errors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, apperrors.AuthExpiredToken)
				}
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat)
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat, apperrors.WithDetails("Invalid user ID in token"))
			}

			c.Set(UserIDContextKey, userID)
			c.Set(UserEmailContextKey, claims.Email)

			return next(c)
		}
	}
}

// GetUserID extracts the authenticated user's ID from the Echo context.
// Returns uuid.Nil when the request did not pass RequireAuth.
func GetUserID(c echo.Context) uuid.UUID {
	userID, ok := c.Get(UserIDContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}
