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

type gameService interface {
	PlayDice(ctx context.Context, userID uuid.UUID, input *entities.DiceInput) (*entities.DiceResult, error)
}

// GameHandler handles game rounds
type GameHandler struct {
	gameUsecase gameService
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameUsecase *usecases.GameUsecase) *GameHandler {
	return &GameHandler{gameUsecase: gameUsecase}
}

// PlayDice settles one dice round
// POST /api/game/dice
func (h *GameHandler) PlayDice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var input entities.DiceInput
	if !bindJSON(c, &input) {
		return
	}

	result, err := h.gameUsecase.PlayDice(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
