package content

import (
	"blog-core/app/server/apperrors"
	"blog-core/app/server/models"
	"context"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"strings"
)

// Store 管理文章实体：创建、查询、更新、删除
type Store struct {
	l  *zap.Logger
	db *gorm.DB
}

func NewStore(l *zap.Logger, db *gorm.DB) *Store {
	return &Store{
		l:  l,
		db: db,
	}
}

func (s *Store) Create(ctx context.Context, author *models.User, title string, content string) (*models.Post, error) {
	// 清理输入
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	// 校验必填字段
	if title == "" || content == "" {
		return nil, apperrors.ErrValidation
	}

	// 创建文章，作者在此固定，之后不可转移
	post := models.Post{
		Title:    title,
		Content:  content,
		AuthorID: author.ID,
	}
	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return &post, nil
}

func (s *Store) Get(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).Preload("Author").First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (s *Store) ListAll(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC, id DESC").
		Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (s *Store) Update(ctx context.Context, post *models.Post, title string, content string) (*models.Post, error) {
	// 清理输入
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	// 校验必填字段
	if title == "" || content == "" {
		return nil, apperrors.ErrValidation
	}

	// 只更新标题和正文，创建时间保持不变
	if err := s.db.WithContext(ctx).Model(post).Updates(map[string]interface{}{
		"title":   title,
		"content": content,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

func (s *Store) Delete(ctx context.Context, post *models.Post) error {
	// 物理删除，和用户删除保持一致
	if err := s.db.WithContext(ctx).Unscoped().Delete(post).Error; err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}
