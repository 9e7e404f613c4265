package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"betx.backend/internal/domain/entities"
	domainerrors "betx.backend/internal/domain/errors"
)

type stubUsers struct {
	users map[uuid.UUID]*entities.User
	err   error
}

func (s *stubUsers) GetUserByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, domainerrors.NotFound("User not found")
}

func newStubUsers(users ...*entities.User) *stubUsers {
	s := &stubUsers{users: map[uuid.UUID]*entities.User{}}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func newRedisClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func doRequest(r http.Handler, method, path, token string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(AuthorizationHeader, BearerPrefix+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func init() {
	gin.SetMode(gin.TestMode)
}
