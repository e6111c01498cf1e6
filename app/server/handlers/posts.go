package handlers

import (
	"blog-core/app/server/apperrors"
	"blog-core/app/server/middlewares"
	"blog-core/app/server/models"
	"blog-core/app/server/policy"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

// getPost 解析路径里的文章 ID 并取出文章
func (a *App) getPost(c echo.Context) (*models.Post, error, int) {
	id, err := a.paramID(c)
	if err != nil {
		return nil, fmt.Errorf("invalid post id: %w", err), http.StatusNotFound
	}

	post, err := a.store.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err, http.StatusNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err), http.StatusInternalServerError
	}

	return post, nil, http.StatusOK
}

func (a *App) PostCreatePage(c echo.Context) error {
	user, err := middlewares.RequireUser(c)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	return c.Render(http.StatusOK, "create_post.html", &pageData{
		Title:       "New post",
		CurrentUser: user,
	})
}

func (a *App) PostCreate(c echo.Context) error {
	user, err := middlewares.RequireUser(c)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	title := c.FormValue("title")
	body := c.FormValue("content")

	if _, err := a.store.Create(c.Request().Context(), user, title, body); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return c.Render(http.StatusOK, "create_post.html", &pageData{
				Title:       "New post",
				CurrentUser: user,
				FormError:   "Title and content required",
				FormData: map[string]string{
					"title":   title,
					"content": body,
				},
			})
		}

		a.l.Error("failed to create post", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

func (a *App) PostView(c echo.Context) error {
	post, err, statusCode := a.getPost(c)
	if err != nil {
		if statusCode == http.StatusInternalServerError {
			a.l.Error("failed to get post", zap.Error(err))
		}
		return a.er(c, statusCode)
	}

	return c.Render(http.StatusOK, "single_post.html", &pageData{
		Title:       post.Title,
		CurrentUser: middlewares.CurrentUser(c),
		Post:        post,
	})
}

func (a *App) PostEditPage(c echo.Context) error {
	post, err, statusCode := a.getPost(c)
	if err != nil {
		if statusCode == http.StatusInternalServerError {
			a.l.Error("failed to get post", zap.Error(err))
		}
		return a.er(c, statusCode)
	}

	// 只有作者本人或管理员可以编辑
	user, err := middlewares.RequireUser(c)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	if !policy.CanModify(user.ID, post.AuthorID, user.IsAdmin) {
		return a.er(c, http.StatusForbidden)
	}

	return c.Render(http.StatusOK, "edit_post.html", &pageData{
		Title:       "Edit post",
		CurrentUser: user,
		Post:        post,
	})
}

func (a *App) PostEdit(c echo.Context) error {
	post, err, statusCode := a.getPost(c)
	if err != nil {
		if statusCode == http.StatusInternalServerError {
			a.l.Error("failed to get post", zap.Error(err))
		}
		return a.er(c, statusCode)
	}

	// 只有作者本人或管理员可以编辑
	user, err := middlewares.RequireUser(c)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	if !policy.CanModify(user.ID, post.AuthorID, user.IsAdmin) {
		return a.er(c, http.StatusForbidden)
	}

	title := c.FormValue("title")
	body := c.FormValue("content")

	if _, err := a.store.Update(c.Request().Context(), post, title, body); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return c.Render(http.StatusOK, "edit_post.html", &pageData{
				Title:       "Edit post",
				CurrentUser: user,
				FormError:   "Title and content required",
				Post:        post,
			})
		}

		a.l.Error("failed to update post", zap.Uint("id", post.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/post/%d", post.ID))
}

func (a *App) PostDelete(c echo.Context) error {
	post, err, statusCode := a.getPost(c)
	if err != nil {
		if statusCode == http.StatusInternalServerError {
			a.l.Error("failed to get post", zap.Error(err))
		}
		return a.er(c, statusCode)
	}

	// 只有作者本人或管理员可以删除
	user, err := middlewares.RequireUser(c)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	if !policy.CanModify(user.ID, post.AuthorID, user.IsAdmin) {
		return a.er(c, http.StatusForbidden)
	}

	if err := a.store.Delete(c.Request().Context(), post); err != nil {
		a.l.Error("failed to delete post", zap.Uint("id", post.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Redirect(http.StatusSeeOther, "/")
}
