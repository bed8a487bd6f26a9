package repository

import (
	"context"
	"errors"
	"github.com/deepesh-sr/Textura-Backend/app/server/models"
)

// 各实现需要把记录不存在与唯一约束冲突转换为以下错误
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("unique constraint violated")
)

type Users interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}

type Sliders interface {
	Create(ctx context.Context, slider *models.Slider) error
	Find(ctx context.Context) ([]models.Slider, error)
	FindByID(ctx context.Context, id uint) (*models.Slider, error)
	Update(ctx context.Context, slider *models.Slider) error
	Delete(ctx context.Context, id uint) error
}

// BlogFilter Limit <= 0 表示不分页
type BlogFilter struct {
	PublishedOnly bool
	Limit         int
	Offset        int
}

type Blogs interface {
	Create(ctx context.Context, blog *models.Blog) error
	Find(ctx context.Context, filter BlogFilter) ([]models.Blog, error) // 按创建时间倒序
	Count(ctx context.Context, filter BlogFilter) (int64, error)
	FindByID(ctx context.Context, id uint) (*models.Blog, error)
	FindBySlug(ctx context.Context, slug string) (*models.Blog, error)
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id uint) error
}

type Store struct {
	Users   Users
	Sliders Sliders
	Blogs   Blogs

	ping func(ctx context.Context) error
}

// Ping 检查底层存储是否可用
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}
