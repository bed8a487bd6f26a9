package handlers

import (
	"context"
	"github.com/deepesh-sr/Textura-Backend/app/server/apperr"
	"github.com/deepesh-sr/Textura-Backend/app/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"testing"
)

func TestAuthSignup(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name":     "Jane",
		"email":    "Jane@Example.com",
		"password": "secret-pass",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	resp := decode[SignupResponse](t, rec)
	assert.NotZero(t, resp.UserID)

	user, err := env.store.Users.FindByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "secret-pass", user.Password)
	assert.Contains(t, user.Password, "$argon2id$")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthSignup_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	body := map[string]string{"name": "Jane", "email": "jane@example.com", "password": "secret-pass"}

	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/auth/signup", "", body).Code)

	body["email"] = "JANE@example.com"
	rec := env.do(t, http.MethodPost, "/api/auth/signup", "", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[apperr.Response](t, rec)
	assert.Equal(t, "conflict", resp.Code)
	assert.False(t, resp.Success)
}

func TestAuthSignup_Invalid(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":    "not-an-email",
		"password": "123",
		"role":     "Editor",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[apperr.Response](t, rec)
	assert.Equal(t, "validation", resp.Code)
	assert.Contains(t, resp.Fields, "name")
	assert.Contains(t, resp.Fields, "email")
	assert.Contains(t, resp.Fields, "password")
	assert.Contains(t, resp.Fields, "role")

	rec = env.do(t, http.MethodPost, "/api/auth/signup", "", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decode[apperr.Response](t, rec).Code)
}

func TestAuthSignin(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name": "Root", "email": "root@example.com", "password": "secret-pass", "role": "Admin",
	}).Code)

	rec := env.do(t, http.MethodPost, "/api/auth/signin", "", map[string]string{
		"email": "ROOT@example.com", "password": "secret-pass",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	login := decode[LoginToken](t, rec)
	assert.Equal(t, models.RoleAdmin, login.Role)
	assert.NotZero(t, login.ExpiresAt)

	user, err := env.jwt.ParseUser(login.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	// 返回的 token 可以直接访问管理接口
	rec = env.do(t, http.MethodGet, "/api/admin/blogs", "Bearer "+login.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthSignin_GenericFailure(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name": "Jane", "email": "jane@example.com", "password": "secret-pass",
	}).Code)

	wrongPassword := env.do(t, http.MethodPost, "/api/auth/signin", "", map[string]string{
		"email": "jane@example.com", "password": "wrong-pass",
	})
	unknownEmail := env.do(t, http.MethodPost, "/api/auth/signin", "", map[string]string{
		"email": "nobody@example.com", "password": "secret-pass",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())

	rec := env.do(t, http.MethodPost, "/api/auth/signin", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthMe(t *testing.T) {
	env := newTestEnv(t)
	tk := env.userToken(t, "me@example.com", models.RoleUser)

	rec := env.do(t, http.MethodGet, "/api/auth/me", tk, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	user := decode[models.User](t, rec)
	assert.Equal(t, "me@example.com", user.Email)
	assert.NotContains(t, rec.Body.String(), "unused")

	rec = env.do(t, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthenticated", decode[apperr.Response](t, rec).Code)
}

func TestAuthRateLimit(t *testing.T) {
	env := newTestEnvWith(t, RouteOptions{AuthRateLimit: 0.001, AuthRateBurst: 2})

	body := map[string]string{"email": "nobody@example.com", "password": "x"}
	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodPost, "/api/auth/signin", "", body).Code)
	}
	rec := env.do(t, http.MethodPost, "/api/auth/signin", "", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "rate_limited", decode[apperr.Response](t, rec).Code)
}
