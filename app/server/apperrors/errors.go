package apperrors

import "errors"

// 领域错误类型，处理层用 errors.Is 分类并映射为对应的响应
var (
	ErrValidation             = errors.New("required field is empty")          // 必填字段为空，重新渲染表单
	ErrConflict               = errors.New("username or email already in use") // 用户名或邮箱重复，重新渲染表单
	ErrAuthentication         = errors.New("invalid credentials")              // 凭据错误，不区分是哪个字段错了
	ErrAuthenticationRequired = errors.New("authentication required")          // 未登录，重定向到登录页
	ErrForbidden              = errors.New("forbidden")                        // 已登录但无权限，硬性 403
	ErrNotFound               = errors.New("not found")                        // 资源不存在，404
)
