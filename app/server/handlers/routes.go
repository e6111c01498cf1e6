package handlers

import (
	"blog-core/app/server/middlewares"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes 绑定路由，每条路由的守卫链显式写出：
// LoadUser → RequireAuthenticated → RequireAdmin → handler
func (a *App) RegisterRoutes(e *echo.Echo) {
	loadUser := middlewares.LoadUser(a.sessions, a.l)
	requireAuth := middlewares.RequireAuthenticated()
	requireAdmin := middlewares.RequireAdmin()
	requireAnon := middlewares.RequireAnonymous()

	// 公开页面
	e.GET("/", a.Home, loadUser)
	e.GET("/post/:id", a.PostView, loadUser)

	// 仅限未登录
	e.GET("/register", a.RegisterPage, loadUser, requireAnon)
	e.POST("/register", a.Register, loadUser, requireAnon)
	e.GET("/login", a.LoginPage, loadUser, requireAnon)
	e.POST("/login", a.Login, loadUser, requireAnon)

	// 需要登录
	e.POST("/logout", a.Logout, loadUser)
	e.GET("/create", a.PostCreatePage, loadUser, requireAuth)
	e.POST("/create", a.PostCreate, loadUser, requireAuth)
	e.GET("/post/:id/edit", a.PostEditPage, loadUser, requireAuth)
	e.POST("/post/:id/edit", a.PostEdit, loadUser, requireAuth)
	e.POST("/post/:id/delete", a.PostDelete, loadUser, requireAuth)

	// 需要管理员
	e.GET("/admin", a.AdminDashboard, loadUser, requireAuth, requireAdmin)
	e.POST("/admin/users/:id/delete", a.AdminUserDelete, loadUser, requireAuth, requireAdmin)
	e.POST("/admin/posts/:id/delete", a.AdminPostDelete, loadUser, requireAuth, requireAdmin)
	e.POST("/admin/users/:id/promote", a.AdminUserPromote, loadUser, requireAuth, requireAdmin)
}
