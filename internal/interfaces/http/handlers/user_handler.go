package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"betx.backend/internal/domain/entities"
	"betx.backend/internal/interfaces/http/response"
	"betx.backend/internal/usecases"
)

type profileService interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input *entities.ChangePasswordInput) error
}

type activityService interface {
	GetStats(ctx context.Context, userID uuid.UUID) (*entities.Stats, error)
	GetRecentActivity(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Activity, error)
}

// UserHandler handles the caller's own profile, stats and activity
type UserHandler struct {
	userUsecase     profileService
	activityUsecase activityService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase *usecases.UserUsecase, activityUsecase *usecases.ActivityUsecase) *UserHandler {
	return &UserHandler{
		userUsecase:     userUsecase,
		activityUsecase: activityUsecase,
	}
}

// UpdateProfile updates name and/or mobile
// PUT /api/user/update-profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var input entities.UpdateProfileInput
	if !bindJSON(c, &input) {
		return
	}

	user, err := h.userUsecase.UpdateProfile(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

// ChangePassword replaces the caller's password
// PUT /api/user/change-password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var input entities.ChangePasswordInput
	if !bindJSON(c, &input) {
		return
	}

	if err := h.userUsecase.ChangePassword(c.Request.Context(), userID, &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// GetStats returns the caller's betting stats
// GET /api/user/stats
func (h *UserHandler) GetStats(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	stats, err := h.activityUsecase.GetStats(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// GetActivity returns the caller's last DefaultActivityLimit entries, newest first.
// The page size is fixed; query parameters are ignored.
// GET /api/user/activity
func (h *UserHandler) GetActivity(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	activities, err := h.activityUsecase.GetRecentActivity(c.Request.Context(), userID, entities.DefaultActivityLimit)
	if err != nil {
		response.Error(c, err)
		return
	}
	if activities == nil {
		activities = []*entities.Activity{}
	}

	response.Success(c, http.StatusOK, activities)
}
