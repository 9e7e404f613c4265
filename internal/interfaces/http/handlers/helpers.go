package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerrors "betx.backend/internal/domain/errors"
	"betx.backend/internal/interfaces/http/middleware"
	"betx.backend/internal/interfaces/http/response"
)

const msgInvalidBody = "Invalid request body"

// bindJSON decodes the body and writes a validation error on failure
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, domainerrors.Validation(msgInvalidBody))
		return false
	}
	return true
}

// requireUserID returns the authenticated user id or writes a 401
func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Please authenticate"))
		return uuid.Nil, false
	}
	return userID, true
}

// queryInt parses an optional integer query parameter. Missing or malformed values yield 0.
func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}
