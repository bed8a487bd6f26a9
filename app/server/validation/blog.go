package validation

import (
	"github.com/deepesh-sr/Textura-Backend/app/server/models"
	"strings"
)

// BlogInput 是创建与更新文章时的请求体，nil 表示未提供
type BlogInput struct {
	Title           *string `json:"title"`
	Slug            *string `json:"slug"`
	Content         *string `json:"content"`
	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
	FeaturedImage   *string `json:"featuredImage"`
	Status          *string `json:"status"`
}

type blogCreateRules struct {
	Title           *string `json:"title" validate:"required,min=3,max=100"`
	Slug            *string `json:"slug" validate:"required,min=3,max=100,slug"`
	Content         *string `json:"content" validate:"required,min=10"`
	MetaTitle       *string `json:"metaTitle" validate:"omitnil,max=70"`
	MetaDescription *string `json:"metaDescription" validate:"omitnil,max=160"`
	FeaturedImage   *string `json:"featuredImage" validate:"omitnil,url"`
	Status          *string `json:"status" validate:"omitnil,oneof=draft published"`
}

type blogUpdateRules struct {
	Title           *string `json:"title" validate:"omitnil,min=3,max=100"`
	Slug            *string `json:"slug" validate:"omitnil,min=3,max=100,slug"`
	Content         *string `json:"content" validate:"omitnil,min=10"`
	MetaTitle       *string `json:"metaTitle" validate:"omitnil,max=70"`
	MetaDescription *string `json:"metaDescription" validate:"omitnil,max=160"`
	FeaturedImage   *string `json:"featuredImage" validate:"omitnil,url"`
	Status          *string `json:"status" validate:"omitnil,oneof=draft published"`
}

type ValidatedBlog struct {
	Title           string
	Slug            string
	Content         string // 已清理
	MetaTitle       string
	MetaDescription string
	FeaturedImage   string
	Status          models.BlogStatus
}

func (v *ValidatedBlog) Model() *models.Blog {
	return &models.Blog{
		Title:           v.Title,
		Slug:            v.Slug,
		Content:         v.Content,
		MetaTitle:       v.MetaTitle,
		MetaDescription: v.MetaDescription,
		FeaturedImage:   v.FeaturedImage,
		Status:          v.Status,
	}
}

// ValidatedPartialBlog 只包含请求中出现的字段
type ValidatedPartialBlog struct {
	Title           *string
	Slug            *string
	Content         *string // 已清理
	MetaTitle       *string
	MetaDescription *string
	FeaturedImage   *string
	Status          *models.BlogStatus
}

// Apply 把出现的字段合并到已有文章上，未出现的字段保持不变
func (p *ValidatedPartialBlog) Apply(blog *models.Blog) {
	if p.Title != nil {
		blog.Title = *p.Title
	}
	if p.Slug != nil {
		blog.Slug = *p.Slug
	}
	if p.Content != nil {
		blog.Content = *p.Content
	}
	if p.MetaTitle != nil {
		blog.MetaTitle = *p.MetaTitle
	}
	if p.MetaDescription != nil {
		blog.MetaDescription = *p.MetaDescription
	}
	if p.FeaturedImage != nil {
		blog.FeaturedImage = *p.FeaturedImage
	}
	if p.Status != nil {
		blog.Status = *p.Status
	}
}

func ValidateCreate(in *BlogInput) (*ValidatedBlog, error) {
	in = trimBlog(in)

	// 可选字段为空字符串时视为未提供，状态回落到草稿
	in.MetaTitle = blankToNil(in.MetaTitle)
	in.MetaDescription = blankToNil(in.MetaDescription)
	in.FeaturedImage = blankToNil(in.FeaturedImage)
	in.Status = blankToNil(in.Status)

	// 长度按清理后的正文计算
	in.Content = sanitizePtr(in.Content)

	if err := check(blogCreateRules(*in)); err != nil {
		return nil, err
	}

	v := &ValidatedBlog{
		Title:           *in.Title,
		Slug:            *in.Slug,
		Content:         *in.Content,
		MetaTitle:       deref(in.MetaTitle),
		MetaDescription: deref(in.MetaDescription),
		FeaturedImage:   deref(in.FeaturedImage),
		Status:          models.BlogStatusDraft,
	}
	if in.Status != nil {
		v.Status = models.BlogStatus(*in.Status)
	}
	return v, nil
}

func ValidateUpdate(in *BlogInput) (*ValidatedPartialBlog, error) {
	in = trimBlog(in)
	in.Content = sanitizePtr(in.Content)

	// 空的 featuredImage 表示清除，不做 URL 校验
	rules := blogUpdateRules(*in)
	rules.FeaturedImage = blankToNil(rules.FeaturedImage)
	if err := check(rules); err != nil {
		return nil, err
	}

	p := &ValidatedPartialBlog{
		Title:           in.Title,
		Slug:            in.Slug,
		Content:         in.Content,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		FeaturedImage:   in.FeaturedImage,
	}
	if in.Status != nil {
		status := models.BlogStatus(*in.Status)
		p.Status = &status
	}
	return p, nil
}

// trimBlog 去掉单行字段两端的空白，正文保持原样
func trimBlog(in *BlogInput) *BlogInput {
	if in == nil {
		return &BlogInput{}
	}
	out := *in
	out.Title = trimPtr(in.Title)
	out.Slug = trimPtr(in.Slug)
	out.MetaTitle = trimPtr(in.MetaTitle)
	out.MetaDescription = trimPtr(in.MetaDescription)
	out.FeaturedImage = trimPtr(in.FeaturedImage)
	out.Status = trimPtr(in.Status)
	return &out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func blankToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func sanitizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := Sanitize(*s)
	return &t
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
