package handlers

import (
	"errors"
	"fmt"
	"github.com/deepesh-sr/Textura-Backend/app/server/apperr"
	"github.com/deepesh-sr/Textura-Backend/app/server/constants"
	"github.com/deepesh-sr/Textura-Backend/app/server/models"
	"github.com/deepesh-sr/Textura-Backend/app/server/repository"
	"github.com/deepesh-sr/Textura-Backend/app/server/validation"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

func blogError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperr.Wrap(apperr.KindNotFound, "Blog not found", err)
	case errors.Is(err, repository.ErrConflict):
		return apperr.Wrap(apperr.KindConflict, "Slug already exists", err)
	default:
		return err
	}
}

// invalidateBlog 清除列表与相关 slug 的缓存
func (a *App) invalidateBlog(c echo.Context, slugs ...string) {
	keys := []string{constants.CacheKeyBlogPublished}
	for _, slug := range slugs {
		keys = append(keys, fmt.Sprintf(constants.CacheKeyBlogSlug, slug))
	}
	a.cache.Del(c.Request().Context(), keys...)
}

func (a *App) BlogCreate(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req validation.BlogInput
	if err := a.bind(c, &req); err != nil {
		return a.er(c, err)
	}

	input, err := validation.ValidateCreate(&req)
	if err != nil {
		return a.er(c, err)
	}

	// 创建，slug 重复由唯一索引检查
	blog := input.Model()
	if err := a.store.Blogs.Create(rctx, blog); err != nil {
		if !errors.Is(err, repository.ErrConflict) {
			a.l.Error("failed to create blog", zap.String("slug", blog.Slug), zap.Error(err))
		}
		return a.er(c, blogError(err))
	}

	a.invalidateBlog(c, blog.Slug)

	return c.JSON(http.StatusCreated, blog)
}

func (a *App) BlogList(c echo.Context) error {
	rctx := c.Request().Context()

	showAll, page, limit := a.parsePagination(c.QueryParam("page"), c.QueryParam("limit"))

	filter := repository.BlogFilter{}
	if !showAll {
		filter.Limit = limit
		filter.Offset = page * limit
	}

	count, err := a.store.Blogs.Count(rctx, filter)
	if err != nil {
		a.l.Error("failed to count blogs", zap.Error(err))
		return a.er(c, err)
	}

	blogs, err := a.store.Blogs.Find(rctx, filter)
	if err != nil {
		a.l.Error("failed to get blog list", zap.Error(err))
		return a.er(c, err)
	}

	if showAll {
		limit = len(blogs)
	}

	return c.JSON(http.StatusOK, &PageResponse[models.Blog]{
		Limit:   limit,
		PageMax: a.calcMaxPage(count, showAll, limit),
		Total:   count,
		List:    blogs,
	})
}

func (a *App) BlogInfoGet(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return a.er(c, err)
	}

	blog, err := a.store.Blogs.FindByID(c.Request().Context(), id)
	if err != nil {
		return a.er(c, blogError(err))
	}

	return c.JSON(http.StatusOK, blog)
}

func (a *App) BlogUpdate(c echo.Context) error {
	rctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return a.er(c, err)
	}

	// 绑定请求体
	var req validation.BlogInput
	if err := a.bind(c, &req); err != nil {
		return a.er(c, err)
	}

	input, err := validation.ValidateUpdate(&req)
	if err != nil {
		return a.er(c, err)
	}

	// 从数据库中获得
	blog, err := a.store.Blogs.FindByID(rctx, id)
	if err != nil {
		return a.er(c, blogError(err))
	}
	oldSlug := blog.Slug

	// 合并字段
	input.Apply(blog)

	if err := a.store.Blogs.Update(rctx, blog); err != nil {
		if !errors.Is(err, repository.ErrConflict) && !errors.Is(err, repository.ErrNotFound) {
			a.l.Error("failed to update blog", zap.Uint("id", id), zap.Error(err))
		}
		return a.er(c, blogError(err))
	}

	a.invalidateBlog(c, oldSlug, blog.Slug)

	return c.JSON(http.StatusOK, blog)
}

func (a *App) BlogDelete(c echo.Context) error {
	rctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return a.er(c, err)
	}

	// 先取出 slug 以便清除缓存
	blog, err := a.store.Blogs.FindByID(rctx, id)
	if err != nil {
		return a.er(c, blogError(err))
	}

	if err := a.store.Blogs.Delete(rctx, id); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			a.l.Error("failed to delete blog", zap.Uint("id", id), zap.Error(err))
		}
		return a.er(c, blogError(err))
	}

	a.invalidateBlog(c, blog.Slug)

	return c.JSON(http.StatusOK, &MessageResponse{
		Success: true,
		Message: "Blog deleted",
	})
}
