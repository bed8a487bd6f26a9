package repository

import (
	"context"
	"errors"
	"fmt"
	"github.com/deepesh-sr/Textura-Backend/app/server/models"
	"gorm.io/gorm"
)

// NewGorm 需要以 TranslateError: true 打开的连接，否则唯一约束冲突无法识别
func NewGorm(db *gorm.DB) *Store {
	return &Store{
		Users:   &gormUsers{db: db},
		Sliders: &gormSliders{db: db},
		Blogs:   &gormBlogs{db: db},
		ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return fmt.Errorf("get sql db: %w", err)
			}
			return sqlDB.PingContext(ctx)
		},
	}
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	default:
		return err
	}
}

// affected 把 0 行受影响的更新和删除视为记录不存在
func affected(res *gorm.DB) error {
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type gormUsers struct {
	db *gorm.DB
}

func (r *gormUsers) Create(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

func (r *gormUsers) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *gormUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *gormUsers) Count(ctx context.Context) (int64, error) {
	var counter int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&counter).Error; err != nil {
		return 0, translate(err)
	}
	return counter, nil
}

type gormSliders struct {
	db *gorm.DB
}

func (r *gormSliders) Create(ctx context.Context, slider *models.Slider) error {
	return translate(r.db.WithContext(ctx).Create(slider).Error)
}

func (r *gormSliders) Find(ctx context.Context) ([]models.Slider, error) {
	sliders := []models.Slider{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&sliders).Error; err != nil {
		return nil, translate(err)
	}
	return sliders, nil
}

func (r *gormSliders) FindByID(ctx context.Context, id uint) (*models.Slider, error) {
	var slider models.Slider
	if err := r.db.WithContext(ctx).First(&slider, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &slider, nil
}

func (r *gormSliders) Update(ctx context.Context, slider *models.Slider) error {
	return affected(r.db.WithContext(ctx).Model(slider).Select("*").Omit("created_at").Updates(slider))
}

func (r *gormSliders) Delete(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Delete(&models.Slider{}, id))
}

type gormBlogs struct {
	db *gorm.DB
}

func (r *gormBlogs) query(ctx context.Context, filter BlogFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Blog{})
	if filter.PublishedOnly {
		q = q.Where("status = ?", models.BlogStatusPublished)
	}
	return q
}

func (r *gormBlogs) Create(ctx context.Context, blog *models.Blog) error {
	return translate(r.db.WithContext(ctx).Create(blog).Error)
}

func (r *gormBlogs) Find(ctx context.Context, filter BlogFilter) ([]models.Blog, error) {
	q := r.query(ctx, filter).Order("created_at DESC").Order("id DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}

	blogs := []models.Blog{}
	if err := q.Find(&blogs).Error; err != nil {
		return nil, translate(err)
	}
	return blogs, nil
}

func (r *gormBlogs) Count(ctx context.Context, filter BlogFilter) (int64, error) {
	var counter int64
	if err := r.query(ctx, filter).Count(&counter).Error; err != nil {
		return 0, translate(err)
	}
	return counter, nil
}

func (r *gormBlogs) FindByID(ctx context.Context, id uint) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.WithContext(ctx).First(&blog, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &blog, nil
}

func (r *gormBlogs) FindBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.WithContext(ctx).First(&blog, "slug = ?", slug).Error; err != nil {
		return nil, translate(err)
	}
	return &blog, nil
}

func (r *gormBlogs) Update(ctx context.Context, blog *models.Blog) error {
	return affected(r.db.WithContext(ctx).Model(blog).Select("*").Omit("created_at").Updates(blog))
}

func (r *gormBlogs) Delete(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Delete(&models.Blog{}, id))
}
