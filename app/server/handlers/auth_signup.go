package handlers

import (
	"errors"
	"github.com/alexedwards/argon2id"
	"github.com/deepesh-sr/Textura-Backend/app/server/apperr"
	"github.com/deepesh-sr/Textura-Backend/app/server/models"
	"github.com/deepesh-sr/Textura-Backend/app/server/repository"
	"github.com/deepesh-sr/Textura-Backend/app/server/validation"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

type SignupResponse struct {
	UserID uint `json:"userId"`
}

func (a *App) AuthSignup(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req validation.SignupInput
	if err := a.bind(c, &req); err != nil {
		return a.er(c, err)
	}

	signup, err := validation.ValidateSignup(&req)
	if err != nil {
		return a.er(c, err)
	}

	// 邮箱已经被使用
	if _, err := a.store.Users.FindByEmail(rctx, signup.Email); err == nil {
		return a.er(c, apperr.Conflict("Email already registered"))
	} else if !errors.Is(err, repository.ErrNotFound) {
		return a.er(c, err)
	}

	// 处理密码
	passwordHash, err := argon2id.CreateHash(signup.Password, argon2id.DefaultParams)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, err)
	}

	// 创建用户
	user := models.User{
		Name:     signup.Name,
		Email:    signup.Email,
		Role:     signup.Role,
		Password: passwordHash,
	}
	if err := a.store.Users.Create(rctx, &user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			// 并发注册时由唯一索引兜底
			return a.er(c, apperr.Wrap(apperr.KindConflict, "Email already registered", err))
		}
		a.l.Error("failed to create user", zap.String("email", user.Email), zap.Error(err))
		return a.er(c, err)
	}

	a.l.Info("user signed up", zap.Uint("id", user.ID), zap.String("role", string(user.Role)))

	return c.JSON(http.StatusCreated, &SignupResponse{
		UserID: user.ID,
	})
}
