package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"betx.backend/internal/domain/entities"
	domainerrors "betx.backend/internal/domain/errors"
	"betx.backend/internal/interfaces/http/middleware"
	"betx.backend/internal/interfaces/http/response"
	"betx.backend/internal/usecases"
)

type authService interface {
	Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error)
	Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase authService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register handles user registration
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput
	if !bindJSON(c, &input) {
		return
	}

	if _, err := h.authUsecase.Register(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Registration successful",
	})
}

// Login handles user login
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if !bindJSON(c, &input) {
		return
	}
	input.Device = c.Request.UserAgent()
	input.Location = c.ClientIP()

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token":     authResponse.Token,
		"expiresAt": authResponse.ExpiresAt,
	})
}

// GetMe returns the authenticated user
// GET /api/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Please authenticate"))
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// Logout revokes the presented token
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenID, ok := middleware.GetTokenID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Please authenticate"))
		return
	}
	expiresAt, _ := middleware.GetTokenExpiry(c)

	if err := h.authUsecase.Logout(c.Request.Context(), tokenID, expiresAt); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Logged out successfully"})
}
