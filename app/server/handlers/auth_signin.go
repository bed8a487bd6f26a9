package handlers

import (
	"errors"
	"github.com/alexedwards/argon2id"
	"github.com/deepesh-sr/Textura-Backend/app/server/apperr"
	"github.com/deepesh-sr/Textura-Backend/app/server/jwt"
	"github.com/deepesh-sr/Textura-Backend/app/server/models"
	"github.com/deepesh-sr/Textura-Backend/app/server/repository"
	"github.com/deepesh-sr/Textura-Backend/app/server/validation"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

type LoginToken struct {
	Token     string      `json:"token"`
	Role      models.Role `json:"role"`
	ExpiresAt int64       `json:"expiresAt"`
}

// 用户不存在与密码错误返回同一个错误，避免枚举邮箱
func invalidCredentials() *apperr.Error {
	return apperr.New(apperr.KindUnauthenticated, "Invalid email or password")
}

func (a *App) AuthSignin(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req validation.SigninInput
	if err := a.bind(c, &req); err != nil {
		return a.er(c, err)
	}

	// 没有写邮箱或密码
	signin, err := validation.ValidateSignin(&req)
	if err != nil {
		return a.er(c, err)
	}

	user, err := a.store.Users.FindByEmail(rctx, signin.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return a.er(c, invalidCredentials())
		}
		a.l.Error("failed to find user", zap.Error(err))
		return a.er(c, err)
	}

	// 提取密码 hash 并进行校验
	if match, _, err := argon2id.CheckHash(signin.Password, user.Password); err != nil {
		a.l.Error("failed to check password", zap.Uint("id", user.ID), zap.Error(err))
		return a.er(c, err)
	} else if !match {
		// 密码不一致
		return a.er(c, invalidCredentials())
	}

	// 签出 JWT
	jwtUser := &jwt.User{
		ID:   user.ID,
		Role: user.Role,
	}
	token, err := a.jwt.SignToken(jwtUser)
	if err != nil {
		a.l.Error("failed to sign token", zap.Error(err))
		return a.er(c, err)
	}

	// 返回
	return c.JSON(http.StatusOK, &LoginToken{
		Token:     token,
		Role:      user.Role,
		ExpiresAt: jwtUser.Expires,
	})
}
