package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"betx.backend/internal/domain/entities"
	"betx.backend/internal/interfaces/http/middleware"
	"betx.backend/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type authServiceStub struct {
	registerFn func(ctx context.Context, input *entities.RegisterInput) (*entities.User, error)
	loginFn    func(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
	logoutFn   func(ctx context.Context, tokenID string, expiresAt time.Time) error
}

func (s authServiceStub) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	return s.registerFn(ctx, input)
}
func (s authServiceStub) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	return s.loginFn(ctx, input)
}
func (s authServiceStub) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return s.logoutFn(ctx, tokenID, expiresAt)
}

type profileServiceStub struct {
	updateFn         func(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.User, error)
	changePasswordFn func(ctx context.Context, userID uuid.UUID, input *entities.ChangePasswordInput) error
}

func (s profileServiceStub) UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.User, error) {
	return s.updateFn(ctx, userID, input)
}
func (s profileServiceStub) ChangePassword(ctx context.Context, userID uuid.UUID, input *entities.ChangePasswordInput) error {
	return s.changePasswordFn(ctx, userID, input)
}

type activityServiceStub struct {
	statsFn    func(ctx context.Context, userID uuid.UUID) (*entities.Stats, error)
	activityFn func(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Activity, error)
}

func (s activityServiceStub) GetStats(ctx context.Context, userID uuid.UUID) (*entities.Stats, error) {
	return s.statsFn(ctx, userID)
}
func (s activityServiceStub) GetRecentActivity(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Activity, error) {
	return s.activityFn(ctx, userID, limit)
}

type gameServiceStub struct {
	playFn func(ctx context.Context, userID uuid.UUID, input *entities.DiceInput) (*entities.DiceResult, error)
}

func (s gameServiceStub) PlayDice(ctx context.Context, userID uuid.UUID, input *entities.DiceInput) (*entities.DiceResult, error) {
	return s.playFn(ctx, userID, input)
}

type adminUserServiceStub struct {
	listFn func(ctx context.Context, search string, page, limit int) ([]*entities.User, utils.PaginationMeta, error)
	txFn   func(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Transaction, error)
}

func (s adminUserServiceStub) ListUsers(ctx context.Context, search string, page, limit int) ([]*entities.User, utils.PaginationMeta, error) {
	return s.listFn(ctx, search, page, limit)
}
func (s adminUserServiceStub) ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Transaction, error) {
	return s.txFn(ctx, userID, limit)
}

type ledgerServiceStub struct {
	adjustFn func(ctx context.Context, adminID uuid.UUID, input *entities.AdjustBalanceInput) (*entities.User, error)
}

func (s ledgerServiceStub) AdjustBalance(ctx context.Context, adminID uuid.UUID, input *entities.AdjustBalanceInput) (*entities.User, error) {
	return s.adjustFn(ctx, adminID, input)
}

// asUser stands in for AuthMiddleware by attaching user to the context
func asUser(user *entities.User, tokenID string, expiresAt time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, user.ID)
		c.Set(middleware.UserRoleKey, user.Role())
		c.Set(middleware.CurrentUserKey, user)
		c.Set(middleware.TokenIDKey, tokenID)
		c.Set(middleware.TokenExpiryKey, expiresAt)
		c.Next()
	}
}

func doJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "handler-test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(w *httptest.ResponseRecorder) map[string]interface{} {
	out := map[string]interface{}{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return out
}
