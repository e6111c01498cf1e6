package handlers

import (
	"blog-core/app/server/apperrors"
	"blog-core/app/server/middlewares"
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

// 后台操作结果的一次性提示，重定向时通过 notice 参数携带
var adminNotices = map[string]string{
	"user_deleted":  "User deleted",
	"admin_immune":  "Cannot delete another admin",
	"post_deleted":  "Post deleted",
	"user_promoted": "User promoted to admin",
}

func (a *App) AdminDashboard(c echo.Context) error {
	rctx := c.Request().Context()

	users, err := a.directory.ListAll(rctx)
	if err != nil {
		a.l.Error("failed to list users", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	posts, err := a.store.ListAll(rctx)
	if err != nil {
		a.l.Error("failed to list posts", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Render(http.StatusOK, "admin_dashboard.html", &pageData{
		Title:       "Admin",
		CurrentUser: middlewares.CurrentUser(c),
		Notice:      adminNotices[c.QueryParam("notice")],
		Users:       users,
		Posts:       posts,
	})
}

func (a *App) AdminUserDelete(c echo.Context) error {
	rctx := c.Request().Context()

	id, err := a.paramID(c)
	if err != nil {
		return a.er(c, http.StatusNotFound)
	}

	user, err := a.directory.FindByID(rctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}

		a.l.Error("failed to find user", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	if err := a.directory.Delete(rctx, user); err != nil {
		// 管理员账户不可删除，操作者是谁都一样
		if errors.Is(err, apperrors.ErrForbidden) {
			return c.Redirect(http.StatusSeeOther, "/admin?notice=admin_immune")
		}

		a.l.Error("failed to delete user", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Redirect(http.StatusSeeOther, "/admin?notice=user_deleted")
}

func (a *App) AdminPostDelete(c echo.Context) error {
	post, err, statusCode := a.getPost(c)
	if err != nil {
		if statusCode == http.StatusInternalServerError {
			a.l.Error("failed to get post", zap.Error(err))
		}
		return a.er(c, statusCode)
	}

	if err := a.store.Delete(c.Request().Context(), post); err != nil {
		a.l.Error("failed to delete post", zap.Uint("id", post.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Redirect(http.StatusSeeOther, "/admin?notice=post_deleted")
}

func (a *App) AdminUserPromote(c echo.Context) error {
	rctx := c.Request().Context()

	id, err := a.paramID(c)
	if err != nil {
		return a.er(c, http.StatusNotFound)
	}

	user, err := a.directory.FindByID(rctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}

		a.l.Error("failed to find user", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	if err := a.directory.PromoteToAdmin(rctx, user); err != nil {
		a.l.Error("failed to promote user", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Redirect(http.StatusSeeOther, "/admin?notice=user_promoted")
}
