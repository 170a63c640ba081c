package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"chequemate/internal/models"
	"chequemate/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidTimezone    = errors.New("invalid timezone")
)

type authService struct {
	userRepo        repositories.UserRepositoryInterface
	passwordService PasswordServiceInterface
	tokenService    TokenServiceInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &authService{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		metrics:         metrics,
		logger:          logger,
	}
}

// Register creates a new user. The timezone decides which civil day counts
// as "today" for this user's settlement runs.
func (s *authService) Register(email, password, fullName, timezone string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if timezone != "" {
		if _, err := time.LoadLocation(timezone); err != nil {
			return nil, ErrInvalidTimezone
		}
	}

	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := s.passwordService.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(fullName),
		Timezone:     timezone,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "register"})
	s.logger.Info("user registered", "user_id", user.ID)

	return user, nil
}

// Login verifies credentials and issues a token.
func (s *authService) Login(email, password string) (*models.User, string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_failed"})
			return nil, "", time.Time{}, ErrInvalidCredentials
		}
		return nil, "", time.Time{}, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.passwordService.ComparePassword(password, user.PasswordHash) {
		s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_failed"})
		s.logger.Warn("failed login attempt", "user_id", user.ID)
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokenService.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login"})
	s.logger.Info("user logged in", "user_id", user.ID)

	return user, token, expiresAt, nil
}

// GetUserByID retrieves a user profile.
func (s *authService) GetUserByID(userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
