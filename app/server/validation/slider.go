package validation

import "github.com/deepesh-sr/Textura-Backend/app/server/models"

// SliderInput 创建与更新共用，所有字段均为可选
type SliderInput struct {
	Title       *string `json:"title" validate:"omitnil,max=200"`
	Badge       *string `json:"badge" validate:"omitnil,max=100"`
	Description *string `json:"description" validate:"omitnil,max=1000"`
	ButtonText  *string `json:"buttonText" validate:"omitnil,max=100"`
	ImageURL    *string `json:"imageUrl" validate:"omitnil,url"`
	Label       *string `json:"label" validate:"omitnil,max=100"`
}

func ValidateSlider(in *SliderInput) (*SliderInput, error) {
	if in == nil {
		return &SliderInput{}, nil
	}
	out := SliderInput{
		Title:       trimPtr(in.Title),
		Badge:       trimPtr(in.Badge),
		Description: trimPtr(in.Description),
		ButtonText:  trimPtr(in.ButtonText),
		ImageURL:    trimPtr(in.ImageURL),
		Label:       trimPtr(in.Label),
	}

	// 空的 imageUrl 表示清除，不做 URL 校验
	rules := out
	rules.ImageURL = blankToNil(rules.ImageURL)
	if err := check(&rules); err != nil {
		return nil, err
	}
	return &out, nil
}

// Apply 合并出现的字段
func (in *SliderInput) Apply(slider *models.Slider) {
	if in.Title != nil {
		slider.Title = *in.Title
	}
	if in.Badge != nil {
		slider.Badge = *in.Badge
	}
	if in.Description != nil {
		slider.Description = *in.Description
	}
	if in.ButtonText != nil {
		slider.ButtonText = *in.ButtonText
	}
	if in.ImageURL != nil {
		slider.ImageURL = *in.ImageURL
	}
	if in.Label != nil {
		slider.Label = *in.Label
	}
}

