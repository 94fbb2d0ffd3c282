package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/frontandrew/fleet/internal/delivery/http/middleware"
	"github.com/frontandrew/fleet/internal/domain"
	"github.com/frontandrew/fleet/internal/pkg/logger"
	"github.com/frontandrew/fleet/internal/usecase/auth"
)

// AuthHandler обрабатывает запросы аутентификации
type AuthHandler struct {
	authService *auth.Service
	logger      logger.Logger
}

// NewAuthHandler создает новый handler
func NewAuthHandler(authService *auth.Service, logger logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register обрабатывает регистрацию новой учетной записи
// POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidUserData):
			respondError(w, http.StatusBadRequest, "Invalid user data")
		case errors.Is(err, domain.ErrInvalidRole):
			respondError(w, http.StatusBadRequest, "Invalid user role")
		case errors.Is(err, domain.ErrUserAlreadyExists):
			respondError(w, http.StatusConflict, "User already exists")
		default:
			h.logger.Error("Failed to register user", map[string]interface{}{
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to register user")
		}
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

// Login обрабатывает вход пользователя
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, domain.ErrUserInactive):
			respondError(w, http.StatusForbidden, "User account is inactive")
		default:
			h.logger.Error("Failed to login user", map[string]interface{}{
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to login")
		}
		return
	}

	respondJSON(w, http.StatusOK, response)
}

// GetMe возвращает информацию о текущем пользователе
// GET /api/auth/me
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserClaims(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("Failed to get user", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get user")
		return
	}

	respondJSON(w, http.StatusOK, user)
}
