package handlers

import (
	"errors"
	"github.com/deepesh-sr/Textura-Backend/app/server/apperr"
	"github.com/deepesh-sr/Textura-Backend/app/server/repository"
	"github.com/deepesh-sr/Textura-Backend/app/server/validation"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

// er 把错误转换为对应的状态码与 JSON ，内部错误只记录日志，不返回细节
func (a *App) er(c echo.Context, err error) error {
	ae := apperr.From(err)
	if ae.Kind == apperr.KindInternal {
		// 未分类的错误再按校验与存储层的错误识别一次
		var verr validation.Errors
		switch {
		case errors.As(err, &verr):
			ae = apperr.Validation(verr)
		case errors.Is(err, repository.ErrNotFound):
			ae = apperr.NotFound(http.StatusText(http.StatusNotFound))
		case errors.Is(err, repository.ErrConflict):
			ae = apperr.Conflict(http.StatusText(http.StatusConflict))
		}
	}

	if ae.Kind == apperr.KindInternal {
		a.l.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	return c.JSON(ae.Kind.Status(), ae.Response())
}

// bind 绑定请求体，格式错误时返回 400
func (a *App) bind(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		a.l.Debug("failed to bind request", zap.String("path", c.Path()), zap.Error(err))
		return apperr.BadRequest("Invalid request body")
	}
	return nil
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
