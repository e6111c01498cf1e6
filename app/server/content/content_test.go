package content

import (
	"blog-core/app/server/apperrors"
	"blog-core/app/server/models"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/matryer/is"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func testStore(t *testing.T) (*Store, *gorm.DB, *models.User) {
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

	author := models.User{Username: "alice", Email: "a@x.com", Password: "digest"}
	if err := db.Create(&author).Error; err != nil {
		t.Fatal(err)
	}

	return NewStore(zap.NewNop(), db), db, &author
}

func TestCreateAndGet(t *testing.T) {
	is := is.New(t)
	s, _, author := testStore(t)
	ctx := context.Background()

	post, err := s.Create(ctx, author, "  Title  ", "Line one\nLine two")
	is.NoErr(err)
	is.Equal(post.Title, "Title") // 输入两端空白被清理
	is.Equal(post.AuthorID, author.ID)
	is.True(!post.CreatedAt.IsZero())

	got, err := s.Get(ctx, post.ID)
	is.NoErr(err)
	is.Equal(got.Content, "Line one\nLine two") // 换行原样保存
	is.Equal(got.Author.Username, "alice")
}

func TestCreateValidation(t *testing.T) {
	is := is.New(t)
	s, _, author := testStore(t)
	ctx := context.Background()

	for _, tc := range []struct{ title, content string }{
		{"", "C"},
		{"T", ""},
		{"   ", "C"},
		{"T", "  \n "},
	} {
		_, err := s.Create(ctx, author, tc.title, tc.content)
		is.True(errors.Is(err, apperrors.ErrValidation))
	}
}

func TestGetMissing(t *testing.T) {
	is := is.New(t)
	s, _, _ := testStore(t)

	_, err := s.Get(context.Background(), 42)
	is.True(errors.Is(err, apperrors.ErrNotFound))
}

func TestListAllNewestFirst(t *testing.T) {
	is := is.New(t)
	s, db, author := testStore(t)
	ctx := context.Background()

	p1, err := s.Create(ctx, author, "first", "C")
	is.NoErr(err)
	p2, err := s.Create(ctx, author, "second", "C")
	is.NoErr(err)
	p3, err := s.Create(ctx, author, "third", "C")
	is.NoErr(err)

	// 拉开创建时间，确认按时间倒序
	is.NoErr(db.Model(p1).Update("created_at", time.Now().Add(-2*time.Hour)).Error)
	is.NoErr(db.Model(p2).Update("created_at", time.Now().Add(-1*time.Hour)).Error)

	posts, err := s.ListAll(ctx)
	is.NoErr(err)
	is.Equal(len(posts), 3)
	is.Equal(posts[0].ID, p3.ID)
	is.Equal(posts[1].ID, p2.ID)
	is.Equal(posts[2].ID, p1.ID)
}

func TestUpdateKeepsTimestampAndOwner(t *testing.T) {
	is := is.New(t)
	s, _, author := testStore(t)
	ctx := context.Background()

	post, err := s.Create(ctx, author, "T", "C")
	is.NoErr(err)
	createdAt := post.CreatedAt

	_, err = s.Update(ctx, post, "T2", "C2")
	is.NoErr(err)

	got, err := s.Get(ctx, post.ID)
	is.NoErr(err)
	is.Equal(got.Title, "T2")
	is.Equal(got.Content, "C2")
	is.True(got.CreatedAt.Equal(createdAt)) // 创建时间不变
	is.Equal(got.AuthorID, author.ID)       // 作者不变
}

func TestUpdateValidation(t *testing.T) {
	is := is.New(t)
	s, _, author := testStore(t)
	ctx := context.Background()

	post, err := s.Create(ctx, author, "T", "C")
	is.NoErr(err)

	_, err = s.Update(ctx, post, "", "C2")
	is.True(errors.Is(err, apperrors.ErrValidation))

	// 失败的更新不落库
	got, err := s.Get(ctx, post.ID)
	is.NoErr(err)
	is.Equal(got.Title, "T")
}

func TestDelete(t *testing.T) {
	is := is.New(t)
	s, _, author := testStore(t)
	ctx := context.Background()

	post, err := s.Create(ctx, author, "T", "C")
	is.NoErr(err)

	is.NoErr(s.Delete(ctx, post))

	_, err = s.Get(ctx, post.ID)
	is.True(errors.Is(err, apperrors.ErrNotFound))
}
