package policy

import (
	"blog-core/app/server/models"
	"testing"

	"github.com/matryer/is"
)

func TestCanModify(t *testing.T) {
	is := is.New(t)

	// 作者本人
	is.True(CanModify(1, 1, false))
	// 管理员改别人的
	is.True(CanModify(2, 1, true))
	// 非作者非管理员
	is.True(!CanModify(2, 1, false))
	// 管理员改自己的
	is.True(CanModify(1, 1, true))
}

func TestCanDeleteUser(t *testing.T) {
	is := is.New(t)

	is.True(CanDeleteUser(&models.User{IsAdmin: false}))
	// 管理员账户绝对不可删除
	is.True(!CanDeleteUser(&models.User{IsAdmin: true}))
}
