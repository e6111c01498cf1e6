package models

import "gorm.io/gorm"

type Post struct {
	gorm.Model

	Title   string `gorm:"column:title"`   // 标题
	Content string `gorm:"column:content"` // 正文，换行符在渲染时转换为 <br>

	// 作者，创建时固定，不可转移
	AuthorID uint `gorm:"column:author_id;index"`
	Author   User `gorm:"foreignKey:AuthorID"`
}
