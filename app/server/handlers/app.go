package handlers

import (
	"github.com/deepesh-sr/Textura-Backend/app/server/cache"
	"github.com/deepesh-sr/Textura-Backend/app/server/jwt"
	"github.com/deepesh-sr/Textura-Backend/app/server/repository"
	"go.uber.org/zap"
)

type App struct {
	l     *zap.Logger       // 日志
	store *repository.Store // 存储
	cache *cache.Cache      // 公开接口的缓存，可以为空
	jwt   *jwt.JWT          // JWT ，用于无状态验证
}

func NewApp(l *zap.Logger, store *repository.Store, c *cache.Cache, j *jwt.JWT) *App {
	return &App{
		l:     l,
		store: store,
		cache: c,
		jwt:   j,
	}
}
