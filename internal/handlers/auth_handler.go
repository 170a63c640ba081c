package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	apperrors "chequemate/internal/errors"

	"chequemate/internal/dto"
	"chequemate/internal/models"
	"chequemate/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles registration, login and profile lookup
type AuthHandler struct {
	authService services.AuthServiceInterface
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService services.AuthServiceInterface, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register creates a new user account
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral,
			apperrors.WithDetails("Invalid request format"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.Register(req.Email, req.Password, req.FullName, req.Timezone)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return SendError(c, apperrors.AuthEmailTaken)
		case errors.Is(err, services.ErrInvalidTimezone):
			return SendError(c, apperrors.ValidationInvalidFormat,
				apperrors.WithDetails("Unknown IANA timezone"))
		case isPasswordPolicyError(err):
			return SendError(c, apperrors.ValidationGeneral,
				apperrors.WithDetails(err.Error()))
		default:
			h.logger.Error("registration failed",
				"email", req.Email,
				"error", err.Error(),
			)
			return SendSystemError(c, err)
		}
	}

	h.logger.Info("user registered",
		"user_id", user.ID,
		"ip", getClientIP(c),
	)

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    userToProfile(user),
		Message: "Registration successful",
	})
}

// Login authenticates a user and issues a token
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral,
			apperrors.WithDetails("Invalid request format"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, expiresAt, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.logger.Warn("login rejected",
				"email", req.Email,
				"ip", getClientIP(c),
			)
			return SendError(c, apperrors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	h.logger.Info("user logged in",
		"user_id", user.ID,
		"ip", getClientIP(c),
	)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresAt:   expiresAt,
		},
		Message: "Login successful",
	})
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return SendError(c, apperrors.AuthMissingToken)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: userToProfile(user),
	})
}

func isPasswordPolicyError(err error) bool {
	return errors.Is(err, services.ErrPasswordEmpty) ||
		errors.Is(err, services.ErrPasswordTooShort) ||
		errors.Is(err, services.ErrPasswordTooLong) ||
		errors.Is(err, services.ErrPasswordNoUppercase) ||
		errors.Is(err, services.ErrPasswordNoLowercase) ||
		errors.Is(err, services.ErrPasswordNoNumber)
}

func userToProfile(user *models.User) dto.UserProfileResponse {
	return dto.UserProfileResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		FullName:  user.FullName,
		Timezone:  user.Timezone,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
