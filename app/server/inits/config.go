package inits

import (
	"errors"
	"fmt"
	"github.com/caarlos0/env/v11"
	"github.com/deepesh-sr/Textura-Backend/app/server/config"
	"github.com/joho/godotenv"
	"io/fs"
)

func Config() (*config.Config, error) {
	// 本地开发时从 .env 读取，文件不存在不影响使用环境变量
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return &cfg, nil
}
