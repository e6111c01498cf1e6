package middlewares

import (
	"blog-core/app/server/apperrors"
	"blog-core/app/server/constants"
	"blog-core/app/server/models"
	"blog-core/app/server/sessions"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"net/url"
)

const userContextKey = "user"

// CurrentUser 从请求上下文中取出已解析的用户，匿名时返回 nil
// 只在 LoadUser 之后的链路里有意义
func CurrentUser(c echo.Context) *models.User {
	if user, ok := c.Get(userContextKey).(*models.User); ok {
		return user
	}
	return nil
}

// RequireUser 是需要登录的操作的前置检查：取出当前用户，匿名时返回 ErrAuthenticationRequired
// 守卫链保证正常到达 handler 时已登录，这里是业务入口的最后一道闸
func RequireUser(c echo.Context) (*models.User, error) {
	if user := CurrentUser(c); user != nil {
		return user, nil
	}
	return nil, apperrors.ErrAuthenticationRequired
}

// LoadUser 把会话 cookie 解析成用户放进请求上下文，解析不出来就保持匿名
// 本身永远不拦截请求，拦截交给后面的守卫
func LoadUser(sm *sessions.Manager, l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// 提取 cookie
			cookie, err := c.Cookie(constants.SessionCookieName)
			if err != nil {
				// 没有 cookie ，匿名访问
				return next(c)
			}

			// 解析会话
			user, err := sm.CurrentUser(c.Request().Context(), cookie.Value)
			if err != nil {
				// 基础设施故障，记录后按匿名处理
				l.Error("failed to resolve session", zap.Error(err))
				return next(c)
			}

			if user != nil {
				c.Set(userContextKey, user)
			}

			return next(c)
		}
	}
}

// RequireAuthenticated 要求登录，匿名访问重定向到登录页，登录后跳回原页面
func RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentUser(c) == nil {
				return c.Redirect(http.StatusSeeOther, "/login?next="+url.QueryEscape(c.Request().URL.Path))
			}
			return next(c)
		}
	}
}

// RequireAdmin 要求管理员角色，已登录但不是管理员时硬性 403
// 必须排在 RequireAuthenticated 之后
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil || !user.IsAdmin {
				return c.Render(http.StatusForbidden, "error.html", map[string]interface{}{
					"Title":       "403",
					"Code":        http.StatusForbidden,
					"Message":     http.StatusText(http.StatusForbidden),
					"CurrentUser": user,
				})
			}
			return next(c)
		}
	}
}

// RequireAnonymous 只允许未登录用户访问（注册、登录页），已登录直接回首页
func RequireAnonymous() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentUser(c) != nil {
				return c.Redirect(http.StatusSeeOther, "/")
			}
			return next(c)
		}
	}
}
