package handlers

import (
	"blog-core/app/server/apperrors"
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"strings"
)

func (a *App) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", &pageData{
		Title: "Register",
	})
}

func (a *App) Register(c echo.Context) error {
	rctx := c.Request().Context()

	username := c.FormValue("username")
	email := c.FormValue("email")
	plain := c.FormValue("password")

	if _, err := a.directory.Register(rctx, username, email, plain); err != nil {
		// 可恢复的错误重新渲染表单并回填输入，密码除外
		var formError string
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			formError = "Please fill all fields"
		case errors.Is(err, apperrors.ErrConflict):
			formError = "User with that username/email already exists"
		default:
			a.l.Error("failed to register user", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}

		return c.Render(http.StatusOK, "register.html", &pageData{
			Title:     "Register",
			FormError: formError,
			FormData: map[string]string{
				"username": username,
				"email":    email,
			},
		})
	}

	// 注册成功，去登录
	return c.Redirect(http.StatusSeeOther, "/login")
}

func (a *App) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", &pageData{
		Title: "Login",
	})
}

func (a *App) Login(c echo.Context) error {
	rctx := c.Request().Context()

	// 邮箱两端的空白和注册时一样清理掉，密码原样比较
	email := strings.TrimSpace(c.FormValue("email"))
	plain := c.FormValue("password")

	token, err := a.sessions.Authenticate(rctx, email, plain)
	if err != nil {
		if errors.Is(err, apperrors.ErrAuthentication) {
			// 统一的报错信息，不暴露具体是哪一项错了
			return c.Render(http.StatusOK, "login.html", &pageData{
				Title:     "Login",
				FormError: "Invalid credentials",
				FormData: map[string]string{
					"email": email,
				},
			})
		}

		a.l.Error("failed to authenticate user", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.setSessionCookie(c, token)

	// 登录前被拦截的页面可以通过 next 参数跳回去
	return c.Redirect(http.StatusSeeOther, safeNext(c.QueryParam("next")))
}

func (a *App) Logout(c echo.Context) error {
	if token := a.sessionToken(c); token != "" {
		a.sessions.End(c.Request().Context(), token)
	}

	a.clearSessionCookie(c)

	return c.Redirect(http.StatusSeeOther, "/")
}
