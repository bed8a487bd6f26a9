package handlers

import (
	"errors"
	"github.com/deepesh-sr/Textura-Backend/app/server/apperr"
	"github.com/deepesh-sr/Textura-Backend/app/server/middlewares"
	"github.com/deepesh-sr/Textura-Backend/app/server/repository"
	"github.com/labstack/echo/v4"
	"net/http"
)

func (a *App) AuthMe(c echo.Context) error {
	// 认证中间件已经写入身份
	p, ok := middlewares.PrincipalFrom(c)
	if !ok {
		return a.er(c, apperr.Unauthenticated())
	}

	user, err := a.store.Users.FindByID(c.Request().Context(), p.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return a.er(c, apperr.NotFound("User not found"))
		}
		return a.er(c, err)
	}

	// 密码字段不会被序列化
	return c.JSON(http.StatusOK, user)
}
