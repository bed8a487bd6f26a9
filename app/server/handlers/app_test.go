package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/alicebob/miniredis/v2"
	"github.com/deepesh-sr/Textura-Backend/app/server/cache"
	"github.com/deepesh-sr/Textura-Backend/app/server/jwt"
	"github.com/deepesh-sr/Textura-Backend/app/server/models"
	"github.com/deepesh-sr/Textura-Backend/app/server/repository"
	"github.com/deepesh-sr/Textura-Backend/app/server/repository/repotest"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"net/http/httptest"
	"testing"
)

type testEnv struct {
	e     *echo.Echo
	store *repository.Store
	mr    *miniredis.Miniredis
	jwt   *jwt.JWT
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWith(t, RouteOptions{})
}

func newTestEnvWith(t *testing.T, opts RouteOptions) *testEnv {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	j, err := jwt.New("handlers-secret")
	require.NoError(t, err)

	l := zap.NewNop()
	store := repotest.NewStore()
	app := NewApp(l, store, cache.New(rdb, l), j)

	e := echo.New()
	app.RegisterHandlers(e, opts)

	return &testEnv{e: e, store: store, mr: mr, jwt: j}
}

// userToken 创建一个用户并签出对应的 token
func (env *testEnv) userToken(t *testing.T, email string, role models.Role) string {
	t.Helper()
	user := models.User{Name: "Test", Email: email, Role: role, Password: "unused"}
	require.NoError(t, env.store.Users.Create(context.Background(), &user))
	tk, err := env.jwt.SignToken(&jwt.User{ID: user.ID, Role: role})
	require.NoError(t, err)
	return "Bearer " + tk
}

func (env *testEnv) do(t *testing.T, method, path, auth string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
