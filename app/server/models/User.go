package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	// 基础信息
	Username string `gorm:"column:username;uniqueIndex"` // 用户名，全局唯一
	Email    string `gorm:"column:email;uniqueIndex"`    // 邮箱，全局唯一，用于登录
	IsAdmin  bool   `gorm:"column:is_admin"`             // 是否为管理员：管理员可以管理所有文章和用户，且不能被删除

	// 登录认证相关
	Password string `gorm:"column:password"` // 密码，使用 argon2id 储存
}
