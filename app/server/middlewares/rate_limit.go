package middlewares

import (
	"github.com/deepesh-sr/Textura-Backend/app/server/apperr"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
	"net/http"
	"time"
)

// AuthRateLimit 按客户端 IP 限制登录注册请求，防止暴力破解
func AuthRateLimit(limit float64, burst int) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(limit),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, apperr.Forbidden("Forbidden").Response())
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return fail(c, apperr.RateLimited())
		},
	})
}
