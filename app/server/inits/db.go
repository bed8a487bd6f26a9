package inits

import (
	"fmt"
	"github.com/alexedwards/argon2id"
	"github.com/deepesh-sr/Textura-Backend/app/server/config"
	"github.com/deepesh-sr/Textura-Backend/app/server/models"
	"github.com/deepesh-sr/Textura-Backend/app/server/validation"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func DB(conn string, cfg *config.Config) (db *gorm.DB, err error) {
	// 打开连接，TranslateError 让唯一约束冲突变成 gorm.ErrDuplicatedKey
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{
		TranslateError: true,
	}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 初始化启动数据
	if cfg != nil && cfg.SeedAdmin() {
		if err = initAdmin(db, cfg); err != nil {
			return nil, fmt.Errorf("failed to init data into database: %w", err)
		}
	}

	// 返回
	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Slider{},
		&models.Blog{},
	)
}

func initAdmin(db *gorm.DB, cfg *config.Config) (err error) {
	// 查询现有记录数量
	var counter int64
	if err = db.Model(&models.User{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get user count: %w", err)
	} else if counter > 0 {
		// 已有用户，不再创建
		return nil
	}

	// 创建密码
	var password string
	if password, err = argon2id.CreateHash(cfg.Admin.Password, argon2id.DefaultParams); err != nil {
		return fmt.Errorf("failed to generate password: %w", err)
	}

	// 插入记录
	if err = db.Create(&models.User{
		Name:     cfg.Admin.Name,
		Email:    validation.NormalizeEmail(cfg.Admin.Email),
		Role:     models.RoleAdmin,
		Password: password,
	}).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	return nil
}
