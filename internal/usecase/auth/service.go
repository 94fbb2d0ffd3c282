package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/frontandrew/fleet/internal/domain"
	"github.com/frontandrew/fleet/internal/pkg/hash"
	"github.com/frontandrew/fleet/internal/pkg/jwt"
	"github.com/frontandrew/fleet/internal/pkg/logger"
	"github.com/frontandrew/fleet/internal/repository"
	"github.com/google/uuid"
)

// RegisterRequest - запрос на создание учетной записи
type RegisterRequest struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	FullName string          `json:"full_name"`
	Role     domain.UserRole `json:"role,omitempty"`
}

// LoginRequest - запрос на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse - ответ на вход
type LoginResponse struct {
	User        *domain.User `json:"user"`
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
}

// Service содержит бизнес-логику аутентификации операторов API
type Service struct {
	userRepo     repository.UserRepository
	tokenService *jwt.TokenService
	logger       logger.Logger
}

// NewService создает новый экземпляр AuthService
func NewService(userRepo repository.UserRepository, tokenService *jwt.TokenService, logger logger.Logger) *Service {
	return &Service{
		userRepo:     userRepo,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register создает новую учетную запись оператора или администратора
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*domain.User, error) {
	if len(req.Password) < 8 {
		return nil, domain.ErrInvalidUserData
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		FullName:     req.FullName,
		Role:         req.Role,
		IsActive:     true,
	}

	if user.Role == "" {
		user.Role = domain.RoleOperator
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, err
		}
		s.logger.Error("Failed to create user", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
	})

	return user, nil
}

// Login проверяет учетные данные и выдает access токен
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	accessToken, expiresAt, err := s.tokenService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("User logged in", map[string]interface{}{
		"user_id": user.ID,
	})

	return &LoginResponse{
		User:        user,
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

// GetUserByID возвращает учетную запись по идентификатору
func (s *Service) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// Bootstrap создает стартовую учетную запись администратора, если ее еще нет.
// Пустой пароль отключает bootstrap.
func (s *Service) Bootstrap(ctx context.Context, email, password string) error {
	if password == "" {
		return nil
	}

	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("failed to check admin account: %w", err)
	}

	_, err = s.Register(ctx, &RegisterRequest{
		Email:    email,
		Password: password,
		FullName: "Fleet Administrator",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("failed to bootstrap admin account: %w", err)
	}

	s.logger.Info("Admin account bootstrapped", map[string]interface{}{
		"email": email,
	})

	return nil
}
