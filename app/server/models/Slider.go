package models

import "time"

type Slider struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title       string `gorm:"column:title" json:"title"`             // 标题
	Badge       string `gorm:"column:badge" json:"badge"`             // 角标文字
	Description string `gorm:"column:description" json:"description"` // 描述
	ButtonText  string `gorm:"column:button_text" json:"buttonText"`  // 按钮文字
	ImageURL    string `gorm:"column:image_url" json:"imageUrl"`      // 背景图片地址
	Label       string `gorm:"column:label" json:"label"`             // 标签
}
