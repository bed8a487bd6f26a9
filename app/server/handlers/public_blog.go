package handlers

import (
	"fmt"
	"github.com/deepesh-sr/Textura-Backend/app/server/constants"
	"github.com/deepesh-sr/Textura-Backend/app/server/middlewares"
	"github.com/deepesh-sr/Textura-Backend/app/server/models"
	"github.com/deepesh-sr/Textura-Backend/app/server/repository"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

func (a *App) BlogListPublic(c echo.Context) error {
	rctx := c.Request().Context()

	// 检查是否有缓存结果
	var blogs []models.Blog
	if a.cache.Get(rctx, constants.CacheKeyBlogPublished, &blogs) {
		return c.JSON(http.StatusOK, blogs)
	}

	blogs, err := a.store.Blogs.Find(rctx, repository.BlogFilter{PublishedOnly: true})
	if err != nil {
		a.l.Error("failed to get published blogs", zap.Error(err))
		return a.er(c, err)
	}

	a.cache.Set(rctx, constants.CacheKeyBlogPublished, blogs, constants.CacheExpireBlogPublished)

	return c.JSON(http.StatusOK, blogs)
}

func (a *App) BlogGetBySlug(c echo.Context) error {
	rctx := c.Request().Context()
	slug := c.Param("slug")

	// 管理员可以查看草稿，不经过缓存
	if p, ok := middlewares.PrincipalFrom(c); ok && p.Role == models.RoleAdmin {
		blog, err := a.store.Blogs.FindBySlug(rctx, slug)
		if err != nil {
			return a.er(c, blogError(err))
		}
		return c.JSON(http.StatusOK, blog)
	}

	cacheKey := fmt.Sprintf(constants.CacheKeyBlogSlug, slug)

	// 缓存中只保存已发布的文章
	var blog models.Blog
	if a.cache.Get(rctx, cacheKey, &blog) {
		return c.JSON(http.StatusOK, &blog)
	}

	found, err := a.store.Blogs.FindBySlug(rctx, slug)
	if err != nil {
		return a.er(c, blogError(err))
	}

	// 草稿对匿名用户不可见，与不存在一致
	if !found.IsPublished() {
		return a.er(c, blogError(repository.ErrNotFound))
	}

	a.cache.Set(rctx, cacheKey, found, constants.CacheExpireBlogSlug)

	// 读取与写入缓存之间文章可能被修改或下线，此时撤回刚写入的缓存
	if a.cache.Enabled() {
		current, err := a.store.Blogs.FindBySlug(rctx, slug)
		if err != nil || !current.IsPublished() || !current.UpdatedAt.Equal(found.UpdatedAt) {
			a.cache.Del(rctx, cacheKey)
		}
	}

	return c.JSON(http.StatusOK, found)
}
