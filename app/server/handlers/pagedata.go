package handlers

import "blog-core/app/server/models"

// pageData 是所有页面模板共用的数据载体
type pageData struct {
	Title       string
	CurrentUser *models.User
	FormError   string            // 表单错误信息，重新渲染表单时展示
	FormData    map[string]string // 用户已输入的值，重新渲染表单时回填
	Notice      string            // 一次性提示信息（后台操作结果）
	Post        *models.Post
	Posts       []models.Post
	Users       []models.User
}
