package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"betx.backend/internal/interfaces/http/response"
	"betx.backend/pkg/logger"
	"betx.backend/pkg/redis"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	// LockDuration is the time we hold the lock while processing
	LockDuration = 30 * time.Second
	// RetentionDuration is how long we keep the response
	RetentionDuration = 24 * time.Hour

	codeIdempotencyConflict = "IDEMPOTENCY_CONFLICT"
)

// IdempotencyStore is the storage behind IdempotencyMiddleware
type IdempotencyStore interface {
	Get(ctx context.Context, key string) (string, error)
	Lock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Save(ctx context.Context, key, value string, ttl time.Duration) error
	Release(ctx context.Context, key string) error
}

type storedResponse struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the stored response when a caller repeats an
// Idempotency-Key. Keys are scoped per authenticated user, so it must run after
// AuthMiddleware. Requests without the header pass straight through.
func IdempotencyMiddleware(store IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" || store == nil {
			c.Next()
			return
		}

		userID, _ := GetUserID(c)
		storageKey := userID.String() + ":" + c.FullPath() + ":" + key
		ctx := c.Request.Context()

		val, err := store.Get(ctx, storageKey)
		switch {
		case err == nil:
			replay(c, val)
			return
		case !errors.Is(err, redis.ErrKeyNotFound):
			// fail open: without redis the request still runs once
			logger.Warn(ctx, "Idempotency lookup failed", zap.Error(err))
			c.Next()
			return
		}

		locked, err := store.Lock(ctx, storageKey, LockDuration)
		if err != nil || !locked {
			response.ErrorWithError(c, http.StatusConflict, codeIdempotencyConflict, "Request already in progress")
			c.Abort()
			return
		}

		w := &responseWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			if err := store.Release(ctx, storageKey); err != nil {
				logger.Warn(ctx, "Idempotency release failed", zap.Error(err))
			}
			return
		}

		encoded, err := json.Marshal(storedResponse{Status: status, Body: w.body.String()})
		if err == nil {
			err = store.Save(ctx, storageKey, string(encoded), RetentionDuration)
		}
		if err != nil {
			logger.Warn(ctx, "Idempotency save failed", zap.Error(err))
		}
	}
}

func replay(c *gin.Context, val string) {
	if val == redis.ProcessingMarker {
		response.ErrorWithError(c, http.StatusConflict, codeIdempotencyConflict, "Request already in progress")
		c.Abort()
		return
	}

	var stored storedResponse
	if err := json.Unmarshal([]byte(val), &stored); err != nil || stored.Status == 0 {
		stored = storedResponse{Status: http.StatusOK, Body: val}
	}

	c.Header("X-Idempotency-Hit", "true")
	c.Data(stored.Status, "application/json; charset=utf-8", []byte(stored.Body))
	c.Abort()
}
