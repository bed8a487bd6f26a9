package models

import "time"

type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

func (s BlogStatus) IsValid() bool {
	switch s {
	case BlogStatusDraft, BlogStatusPublished:
		return true
	default:
		return false
	}
}

type Blog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title   string `gorm:"column:title;not null" json:"title"`            // 标题
	Slug    string `gorm:"column:slug;uniqueIndex;not null" json:"slug"`  // URL 标识，全局唯一
	Content string `gorm:"column:content" json:"content"`                 // 正文（已清理过的 HTML）

	// SEO 信息
	MetaTitle       string `gorm:"column:meta_title" json:"metaTitle"`
	MetaDescription string `gorm:"column:meta_description" json:"metaDescription"`
	FeaturedImage   string `gorm:"column:featured_image" json:"featuredImage"`

	Status BlogStatus `gorm:"column:status;type:varchar(16);index;not null;default:draft" json:"status"` // 草稿不会出现在公开列表中
}

func (b *Blog) IsPublished() bool {
	return b.Status == BlogStatusPublished
}
