package handlers

import (
	"blog-core/app/server/middlewares"
	"github.com/labstack/echo/v4"
	"net/http"
	"strconv"
)

func (a *App) er(c echo.Context, statusCode int) error {
	return c.Render(statusCode, "error.html", map[string]interface{}{
		"Title":       strconv.Itoa(statusCode),
		"Code":        statusCode,
		"Message":     http.StatusText(statusCode),
		"CurrentUser": middlewares.CurrentUser(c),
	})
}
