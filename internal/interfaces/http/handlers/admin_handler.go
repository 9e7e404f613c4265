package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"betx.backend/internal/domain/entities"
	domainerrors "betx.backend/internal/domain/errors"
	"betx.backend/internal/interfaces/http/response"
	"betx.backend/internal/usecases"
	"betx.backend/pkg/utils"
)

type adminUserService interface {
	ListUsers(ctx context.Context, search string, page, limit int) ([]*entities.User, utils.PaginationMeta, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Transaction, error)
}

type ledgerService interface {
	AdjustBalance(ctx context.Context, adminID uuid.UUID, input *entities.AdjustBalanceInput) (*entities.User, error)
}

// AdminHandler handles admin endpoints
type AdminHandler struct {
	userUsecase   adminUserService
	ledgerUsecase ledgerService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(userUsecase *usecases.UserUsecase, ledgerUsecase *usecases.LedgerUsecase) *AdminHandler {
	return &AdminHandler{
		userUsecase:   userUsecase,
		ledgerUsecase: ledgerUsecase,
	}
}

// ListUsers lists users, newest first
// GET /api/admin/users?search=&page=&limit=
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, meta, err := h.userUsecase.ListUsers(c.Request.Context(), c.Query("search"), queryInt(c, "page"), queryInt(c, "limit"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if users == nil {
		users = []*entities.User{}
	}

	response.Success(c, http.StatusOK, gin.H{"users": users, "meta": meta})
}

// AdjustBalance moves funds between the admin and a user
// POST /api/admin/adjust-balance
func (h *AdminHandler) AdjustBalance(c *gin.Context) {
	adminID, ok := requireUserID(c)
	if !ok {
		return
	}

	var input entities.AdjustBalanceInput
	if !bindJSON(c, &input) {
		return
	}

	user, err := h.ledgerUsecase.AdjustBalance(c.Request.Context(), adminID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Balance " + input.Type + " successful",
		"user":    user,
	})
}

// ListTransactions lists the adjustments made to a user, newest first
// GET /api/admin/users/:id/transactions?limit=
func (h *AdminHandler) ListTransactions(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.Validation("Invalid user id"))
		return
	}

	txs, err := h.userUsecase.ListTransactions(c.Request.Context(), userID, queryInt(c, "limit"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if txs == nil {
		txs = []*entities.Transaction{}
	}

	response.Success(c, http.StatusOK, gin.H{"transactions": txs})
}
