package middleware

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"betx.backend/internal/domain/entities"
	domainerrors "betx.backend/internal/domain/errors"
	"betx.backend/internal/interfaces/http/response"
	"betx.backend/pkg/jwt"
	"betx.backend/pkg/logger"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// UserIDKey is the context key for user ID
	UserIDKey = "userId"
	// UserRoleKey is the context key for user role
	UserRoleKey = "userRole"
	// CurrentUserKey is the context key for the authenticated user entity
	CurrentUserKey = "currentUser"
	// TokenIDKey is the context key for the token jti
	TokenIDKey = "tokenId"
	// TokenExpiryKey is the context key for the token expiry
	TokenExpiryKey = "tokenExpiry"
)

const msgPleaseAuthenticate = "Please authenticate"

// UserLookup loads the account behind a verified token
type UserLookup interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
}

// RevocationChecker reports whether a token id was revoked by logout
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthMiddleware verifies the bearer token and attaches the caller to the request.
// revocations may be nil when no token blacklist is configured.
func AuthMiddleware(jwtService *jwt.JWTService, users UserLookup, revocations RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" || !strings.HasPrefix(authHeader, BearerPrefix) {
			response.Abort(c, domainerrors.Unauthorized(msgPleaseAuthenticate))
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimSpace(strings.TrimPrefix(authHeader, BearerPrefix)))
		if err != nil {
			logger.Debug(ctx, "Token rejected", zap.String("path", c.Request.URL.Path), zap.Error(err))
			if errors.Is(err, jwt.ErrExpiredToken) {
				response.Abort(c, domainerrors.Unauthorized("Token has expired"))
				return
			}
			response.Abort(c, domainerrors.Unauthorized("Invalid token"))
			return
		}

		if revocations != nil {
			revoked, err := revocations.IsRevoked(ctx, claims.ID)
			if err != nil {
				response.Abort(c, domainerrors.InternalError(err))
				return
			}
			if revoked {
				response.Abort(c, domainerrors.Unauthorized(msgPleaseAuthenticate))
				return
			}
		}

		user, err := users.GetUserByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				response.Abort(c, domainerrors.Unauthorized(msgPleaseAuthenticate))
				return
			}
			response.Abort(c, domainerrors.InternalError(err))
			return
		}

		c.Set(UserIDKey, user.ID)
		c.Set(UserRoleKey, user.Role())
		c.Set(CurrentUserKey, user)
		c.Set(TokenIDKey, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(TokenExpiryKey, claims.ExpiresAt.Time)
		}
		c.Request = c.Request.WithContext(context.WithValue(ctx, logger.UserIDKey, user.ID.String()))

		c.Next()
	}
}

// GetUserID gets the user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUserRole gets the user role from context
func GetUserRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(UserRoleKey)
	if !exists {
		return "", false
	}
	s, ok := role.(string)
	return s, ok
}

// GetCurrentUser gets the authenticated user entity from context
func GetCurrentUser(c *gin.Context) (*entities.User, bool) {
	v, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*entities.User)
	return user, ok && user != nil
}

// GetTokenID gets the jti of the presented token
func GetTokenID(c *gin.Context) (string, bool) {
	v, exists := c.Get(TokenIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// GetTokenExpiry gets the expiry of the presented token
func GetTokenExpiry(c *gin.Context) (time.Time, bool) {
	v, exists := c.Get(TokenExpiryKey)
	if !exists {
		return time.Time{}, false
	}
	t, ok := v.(time.Time)
	return t, ok
}

// RequireAdmin rejects callers whose account is not flagged as admin.
// It must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		if !ok {
			response.Abort(c, domainerrors.Unauthorized(msgPleaseAuthenticate))
			return
		}
		if !user.IsAdmin {
			response.Abort(c, domainerrors.Forbidden("Admin access required"))
			return
		}
		c.Next()
	}
}
