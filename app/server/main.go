package main

import (
	"context"
	"fmt"
	"github.com/deepesh-sr/Textura-Backend/app/server/apidocs"
	"github.com/deepesh-sr/Textura-Backend/app/server/cache"
	"github.com/deepesh-sr/Textura-Backend/app/server/handlers"
	"github.com/deepesh-sr/Textura-Backend/app/server/inits"
	"github.com/deepesh-sr/Textura-Backend/app/server/jwt"
	"github.com/deepesh-sr/Textura-Backend/app/server/middlewares"
	"github.com/deepesh-sr/Textura-Backend/app/server/repository"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"log"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.IsProd())
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}
	defer func() { _ = l.Sync() }()

	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBConnectionString, cfg)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 redis 连接，未配置时不使用缓存
	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}
	if rdb == nil {
		l.Info("redis not configured, cache disabled")
	}

	// 初始化 JWT
	j, err := jwt.New(cfg.Security.SignatureSecretKey)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 准备 handler app
	handlerApp := handlers.NewApp(l, repository.NewGorm(db), cache.New(rdb, l), j)

	// 准备 echo 服务
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middlewares.RequestLogger(l))
	e.Use(middleware.Recover())

	// 绑定 echo 服务
	handlerApp.RegisterHandlers(e, handlers.RouteOptions{
		AuthRateLimit: cfg.Security.AuthRateLimit,
		AuthRateBurst: cfg.Security.AuthRateBurst,
	})

	// 添加 API 文档
	if !cfg.IsProd() {
		if spec, err := apidocs.Spec(context.Background()); err != nil {
			l.Error("error initializing api docs", zap.Error(err))
		} else {
			e.Pre(apidocs.Doc("/api", spec))
		}
	}

	// 启动 echo 服务
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
