package accounts

import (
	"blog-core/app/server/apperrors"
	"blog-core/app/server/models"
	"blog-core/app/server/password"
	"blog-core/app/server/policy"
	"context"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"strings"
)

// Directory 管理用户实体：注册、查找、删除、提升管理员
type Directory struct {
	l  *zap.Logger
	db *gorm.DB
}

func NewDirectory(l *zap.Logger, db *gorm.DB) *Directory {
	return &Directory{
		l:  l,
		db: db,
	}
}

func (d *Directory) Register(ctx context.Context, username string, email string, plain string) (*models.User, error) {
	// 清理输入
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	// 校验必填字段
	if username == "" || email == "" || strings.TrimSpace(plain) == "" {
		return nil, apperrors.ErrValidation
	}

	// 预检查重复，给用户友好的报错
	var counter int64
	if err := d.db.WithContext(ctx).
		Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&counter).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	} else if counter > 0 {
		return nil, apperrors.ErrConflict
	}

	// 处理密码
	digest, err := password.Hash(plain)
	if err != nil {
		return nil, err
	}

	// 创建用户
	user := models.User{
		Username: username,
		Email:    email,
		Password: digest,
		IsAdmin:  false,
	}
	if err := d.db.WithContext(ctx).Create(&user).Error; err != nil {
		// 并发注册时预检查可能双双通过，最终由唯一索引裁决
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (d *Directory) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := d.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return &user, nil
}

func (d *Directory) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := d.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}

	return &user, nil
}

func (d *Directory) ListAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := d.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// Delete 删除用户，管理员账户绝对不可删除
// 该用户的文章一并删除：后台列表按作者名展示文章，悬空的作者引用没有意义
func (d *Directory) Delete(ctx context.Context, user *models.User) error {
	if !policy.CanDeleteUser(user) {
		return apperrors.ErrForbidden
	}

	// 物理删除：软删除的行仍占用用户名、邮箱的唯一索引，身份要能重新注册
	if err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("author_id = ?", user.ID).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(user).Error
	}); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// PromoteToAdmin 把用户提升为管理员，重复提升不报错
// 没有反向操作：管理员标记只能 false→true
func (d *Directory) PromoteToAdmin(ctx context.Context, user *models.User) error {
	if user.IsAdmin {
		return nil
	}

	if err := d.db.WithContext(ctx).Model(user).Update("is_admin", true).Error; err != nil {
		return fmt.Errorf("failed to promote user: %w", err)
	}

	return nil
}
