package handlers

import (
	"github.com/deepesh-sr/Textura-Backend/app/server/middlewares"
	"github.com/deepesh-sr/Textura-Backend/app/server/models"
	"github.com/labstack/echo/v4"
)

type RouteOptions struct {
	AuthRateLimit float64
	AuthRateBurst int
}

func (a *App) RegisterHandlers(e *echo.Echo, opts RouteOptions) {
	auth := func(req middlewares.Requirement) echo.MiddlewareFunc {
		return middlewares.Auth(a.jwt, a.l, req)
	}

	e.GET("/healthz", a.HealthCheck)

	// 认证
	authGroup := e.Group("/api/auth")
	if opts.AuthRateLimit > 0 {
		authGroup.Use(middlewares.AuthRateLimit(opts.AuthRateLimit, opts.AuthRateBurst))
	}
	authGroup.POST("/signup", a.AuthSignup)
	authGroup.POST("/signin", a.AuthSignin)
	authGroup.GET("/me", a.AuthMe, auth(middlewares.Authenticated))

	// 管理接口
	adminGroup := e.Group("/api/admin", auth(middlewares.RequireRole(models.RoleAdmin)))
	adminGroup.POST("/sliders", a.SliderCreate)
	adminGroup.PUT("/sliders/:id", a.SliderUpdate)
	adminGroup.DELETE("/sliders/:id", a.SliderDelete)
	adminGroup.POST("/blogs", a.BlogCreate)
	adminGroup.GET("/blogs", a.BlogList)
	adminGroup.GET("/blogs/:id", a.BlogInfoGet)
	adminGroup.PUT("/blogs/:id", a.BlogUpdate)
	adminGroup.DELETE("/blogs/:id", a.BlogDelete)

	// 公开接口
	e.GET("/api/sliders", a.SliderListPublic)
	e.GET("/api/blogs", a.BlogListPublic)
	e.GET("/api/blogs/:slug", a.BlogGetBySlug, auth(middlewares.Optional))
}
