package accounts

import (
	"blog-core/app/server/apperrors"
	"blog-core/app/server/models"
	"blog-core/app/server/password"
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/matryer/is"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func testDirectory(t *testing.T) (*Directory, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatal(err)
	}
	// 内存库绑定单个连接，连接池的第二个连接会看到一个空库
	if sqlDB, err := db.DB(); err != nil {
		t.Fatal(err)
	} else {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Post{}); err != nil {
		t.Fatal(err)
	}

	return NewDirectory(zap.NewNop(), db), db
}

func TestRegisterAndFind(t *testing.T) {
	is := is.New(t)
	d, _ := testDirectory(t)
	ctx := context.Background()

	user, err := d.Register(ctx, "alice", "a@x.com", "pw1")
	is.NoErr(err)
	is.Equal(user.Username, "alice")
	is.Equal(user.Email, "a@x.com")
	is.True(!user.IsAdmin)           // 注册默认不是管理员
	is.True(user.Password != "pw1")  // 存的是摘要
	is.True(len(user.Password) > 0)

	match, err := password.Verify("pw1", user.Password)
	is.NoErr(err)
	is.True(match)

	found, err := d.FindByEmail(ctx, "a@x.com")
	is.NoErr(err)
	is.Equal(found.ID, user.ID)

	found, err = d.FindByID(ctx, user.ID)
	is.NoErr(err)
	is.Equal(found.Username, "alice")
}

func TestRegisterTrimsInput(t *testing.T) {
	is := is.New(t)
	d, _ := testDirectory(t)

	user, err := d.Register(context.Background(), "  alice  ", " a@x.com ", "pw1")
	is.NoErr(err)
	is.Equal(user.Username, "alice")
	is.Equal(user.Email, "a@x.com")
}

func TestRegisterValidation(t *testing.T) {
	is := is.New(t)
	d, _ := testDirectory(t)
	ctx := context.Background()

	for _, tc := range []struct{ username, email, pw string }{
		{"", "a@x.com", "pw"},
		{"alice", "", "pw"},
		{"alice", "a@x.com", ""},
		{"   ", "a@x.com", "pw"},
		{"alice", "a@x.com", "   "},
	} {
		_, err := d.Register(ctx, tc.username, tc.email, tc.pw)
		is.True(errors.Is(err, apperrors.ErrValidation))
	}
}

func TestRegisterConflict(t *testing.T) {
	is := is.New(t)
	d, _ := testDirectory(t)
	ctx := context.Background()

	_, err := d.Register(ctx, "alice", "a@x.com", "pw1")
	is.NoErr(err)

	// 邮箱重复，用户名不同
	_, err = d.Register(ctx, "alice2", "a@x.com", "pw2")
	is.True(errors.Is(err, apperrors.ErrConflict))

	// 用户名重复，邮箱不同
	_, err = d.Register(ctx, "alice", "a2@x.com", "pw2")
	is.True(errors.Is(err, apperrors.ErrConflict))
}

func TestFindMissing(t *testing.T) {
	is := is.New(t)
	d, _ := testDirectory(t)
	ctx := context.Background()

	_, err := d.FindByEmail(ctx, "nobody@x.com")
	is.True(errors.Is(err, apperrors.ErrNotFound))

	_, err = d.FindByID(ctx, 42)
	is.True(errors.Is(err, apperrors.ErrNotFound))
}

func TestListAllOrder(t *testing.T) {
	is := is.New(t)
	d, _ := testDirectory(t)
	ctx := context.Background()

	_, err := d.Register(ctx, "alice", "a@x.com", "pw")
	is.NoErr(err)
	_, err = d.Register(ctx, "bob", "b@x.com", "pw")
	is.NoErr(err)

	users, err := d.ListAll(ctx)
	is.NoErr(err)
	is.Equal(len(users), 2)
	is.True(users[0].ID < users[1].ID) // ID 升序
}

func TestDeleteCascadesPosts(t *testing.T) {
	is := is.New(t)
	d, db := testDirectory(t)
	ctx := context.Background()

	user, err := d.Register(ctx, "alice", "a@x.com", "pw")
	is.NoErr(err)

	is.NoErr(db.Create(&models.Post{Title: "T", Content: "C", AuthorID: user.ID}).Error)

	is.NoErr(d.Delete(ctx, user))

	_, err = d.FindByID(ctx, user.ID)
	is.True(errors.Is(err, apperrors.ErrNotFound))

	// 该用户的文章一并删除
	var counter int64
	is.NoErr(db.Model(&models.Post{}).Where("author_id = ?", user.ID).Count(&counter).Error)
	is.Equal(counter, int64(0))
}

func TestReRegisterAfterDelete(t *testing.T) {
	is := is.New(t)
	d, db := testDirectory(t)
	ctx := context.Background()

	user, err := d.Register(ctx, "alice", "a@x.com", "pw")
	is.NoErr(err)
	is.NoErr(db.Create(&models.Post{Title: "T", Content: "C", AuthorID: user.ID}).Error)

	is.NoErr(d.Delete(ctx, user))

	// 删除是物理删除，行不能残留占用唯一索引
	var counter int64
	is.NoErr(db.Unscoped().Model(&models.User{}).Where("id = ?", user.ID).Count(&counter).Error)
	is.Equal(counter, int64(0))
	is.NoErr(db.Unscoped().Model(&models.Post{}).Where("author_id = ?", user.ID).Count(&counter).Error)
	is.Equal(counter, int64(0))

	// 被释放的用户名和邮箱可以重新注册
	again, err := d.Register(ctx, "alice", "a@x.com", "pw2")
	is.NoErr(err)
	is.True(again.ID != user.ID)
}

func TestDeleteAdminForbidden(t *testing.T) {
	is := is.New(t)
	d, db := testDirectory(t)
	ctx := context.Background()

	user, err := d.Register(ctx, "alice", "a@x.com", "pw")
	is.NoErr(err)
	is.NoErr(d.PromoteToAdmin(ctx, user))

	err = d.Delete(ctx, user)
	is.True(errors.Is(err, apperrors.ErrForbidden))

	// 用户还在
	var counter int64
	is.NoErr(db.Model(&models.User{}).Where("id = ?", user.ID).Count(&counter).Error)
	is.Equal(counter, int64(1))
}

func TestPromoteIdempotent(t *testing.T) {
	is := is.New(t)
	d, _ := testDirectory(t)
	ctx := context.Background()

	user, err := d.Register(ctx, "alice", "a@x.com", "pw")
	is.NoErr(err)

	is.NoErr(d.PromoteToAdmin(ctx, user))
	is.True(user.IsAdmin)

	// 重复提升不报错
	is.NoErr(d.PromoteToAdmin(ctx, user))

	reloaded, err := d.FindByID(ctx, user.ID)
	is.NoErr(err)
	is.True(reloaded.IsAdmin)
}
