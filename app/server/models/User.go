package models

import "time"

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// 基础信息
	Name  string `gorm:"column:name" json:"name"`                            // 显示名称
	Email string `gorm:"column:email;uniqueIndex;not null" json:"email"`     // 邮箱，全局唯一，统一小写储存
	Role  Role   `gorm:"column:role;type:varchar(16);not null" json:"role"` // 角色：Admin 可以写入内容，User 只能浏览

	// 登录相关
	Password string `gorm:"column:password;not null" json:"-"` // 密码，使用 argon2id 储存
}
