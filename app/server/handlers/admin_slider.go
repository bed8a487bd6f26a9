package handlers

import (
	"errors"
	"github.com/deepesh-sr/Textura-Backend/app/server/apperr"
	"github.com/deepesh-sr/Textura-Backend/app/server/constants"
	"github.com/deepesh-sr/Textura-Backend/app/server/models"
	"github.com/deepesh-sr/Textura-Backend/app/server/repository"
	"github.com/deepesh-sr/Textura-Backend/app/server/utils"
	"github.com/deepesh-sr/Textura-Backend/app/server/validation"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

func sliderNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.Wrap(apperr.KindNotFound, "Slider not found", err)
	}
	return err
}

// pathID 解析 :id ，格式错误时返回 400
func pathID(c echo.Context) (uint, error) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return 0, apperr.Wrap(apperr.KindBadRequest, "Invalid id", err)
	}
	return id, nil
}

func (a *App) SliderCreate(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req validation.SliderInput
	if err := a.bind(c, &req); err != nil {
		return a.er(c, err)
	}

	input, err := validation.ValidateSlider(&req)
	if err != nil {
		return a.er(c, err)
	}

	// 创建
	var slider models.Slider
	input.Apply(&slider)

	if err := a.store.Sliders.Create(rctx, &slider); err != nil {
		a.l.Error("failed to create slider", zap.Any("slider", slider), zap.Error(err))
		return a.er(c, err)
	}

	a.cache.Del(rctx, constants.CacheKeySliderList)

	return c.JSON(http.StatusCreated, &slider)
}

func (a *App) SliderUpdate(c echo.Context) error {
	rctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return a.er(c, err)
	}

	// 绑定请求体
	var req validation.SliderInput
	if err := a.bind(c, &req); err != nil {
		return a.er(c, err)
	}

	input, err := validation.ValidateSlider(&req)
	if err != nil {
		return a.er(c, err)
	}

	// 从数据库中获得
	slider, err := a.store.Sliders.FindByID(rctx, id)
	if err != nil {
		return a.er(c, sliderNotFound(err))
	}

	// 只合并出现的字段
	input.Apply(slider)

	if err := a.store.Sliders.Update(rctx, slider); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			a.l.Error("failed to update slider", zap.Uint("id", id), zap.Error(err))
		}
		return a.er(c, sliderNotFound(err))
	}

	a.cache.Del(rctx, constants.CacheKeySliderList)

	return c.JSON(http.StatusOK, slider)
}

func (a *App) SliderDelete(c echo.Context) error {
	rctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return a.er(c, err)
	}

	// 删除不存在的记录返回 404
	if err := a.store.Sliders.Delete(rctx, id); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			a.l.Error("failed to delete slider", zap.Uint("id", id), zap.Error(err))
		}
		return a.er(c, sliderNotFound(err))
	}

	a.cache.Del(rctx, constants.CacheKeySliderList)

	return c.JSON(http.StatusOK, &MessageResponse{
		Success: true,
		Message: "Slider deleted",
	})
}

func (a *App) SliderListPublic(c echo.Context) error {
	rctx := c.Request().Context()

	// 检查是否有缓存结果
	var sliders []models.Slider
	if a.cache.Get(rctx, constants.CacheKeySliderList, &sliders) {
		return c.JSON(http.StatusOK, sliders)
	}

	sliders, err := a.store.Sliders.Find(rctx)
	if err != nil {
		a.l.Error("failed to get slider list", zap.Error(err))
		return a.er(c, err)
	}

	a.cache.Set(rctx, constants.CacheKeySliderList, sliders, constants.CacheExpireSliderList)

	return c.JSON(http.StatusOK, sliders)
}
