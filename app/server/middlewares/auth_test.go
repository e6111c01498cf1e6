package middlewares

import (
	"blog-core/app/server/apperrors"
	"blog-core/app/server/models"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/matryer/is"
)

func testContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestCurrentUserAnonymous(t *testing.T) {
	is := is.New(t)
	c := testContext()

	is.True(CurrentUser(c) == nil)
}

func TestRequireUser(t *testing.T) {
	is := is.New(t)
	c := testContext()

	// 匿名时返回未登录错误
	_, err := RequireUser(c)
	is.True(errors.Is(err, apperrors.ErrAuthenticationRequired))

	// 登录后返回上下文里的用户
	user := &models.User{Username: "alice"}
	c.Set(userContextKey, user)

	got, err := RequireUser(c)
	is.NoErr(err)
	is.Equal(got, user)
}
