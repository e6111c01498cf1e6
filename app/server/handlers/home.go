package handlers

import (
	"blog-core/app/server/middlewares"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

func (a *App) Home(c echo.Context) error {
	// 文章列表，新的在前
	posts, err := a.store.ListAll(c.Request().Context())
	if err != nil {
		a.l.Error("failed to list posts", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Render(http.StatusOK, "home.html", &pageData{
		Title:       "Home",
		CurrentUser: middlewares.CurrentUser(c),
		Posts:       posts,
	})
}
