package sessions

import (
	"blog-core/app/server/accounts"
	"blog-core/app/server/apperrors"
	"blog-core/app/server/constants"
	"blog-core/app/server/jwt"
	"blog-core/app/server/models"
	"blog-core/app/server/password"
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"strconv"
	"time"
)

// Manager 管理会话：服务端记录存 redis（会话 ID → 用户 ID），
// 客户端持有的 cookie 是签名过的令牌，伪造的 cookie 在查 redis 之前就会被拒绝
// 会话只有两个状态：匿名（无记录）和活跃（绑定一个用户）
type Manager struct {
	l         *zap.Logger
	rdb       *redis.Client
	jwt       *jwt.JWT
	directory *accounts.Directory
}

func NewManager(l *zap.Logger, rdb *redis.Client, j *jwt.JWT, directory *accounts.Directory) *Manager {
	return &Manager{
		l:         l,
		rdb:       rdb,
		jwt:       j,
		directory: directory,
	}
}

// Authenticate 用邮箱和密码换取会话令牌
// 邮箱不存在和密码错误返回同一个错误，不暴露具体是哪一项错了
func (m *Manager) Authenticate(ctx context.Context, email string, plain string) (string, error) {
	// 查找用户
	user, err := m.directory.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrAuthentication
		}
		return "", err
	}

	// 校验密码
	if match, err := password.Verify(plain, user.Password); err != nil {
		return "", err
	} else if !match {
		return "", apperrors.ErrAuthentication
	}

	// 建立服务端会话记录
	sid := uuid.NewString()
	expires := time.Now().Add(constants.SessionDuration)
	if err := m.rdb.Set(ctx,
		fmt.Sprintf(constants.CacheKeySession, sid),
		user.ID,
		constants.SessionDuration,
	).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	// 签出令牌
	token, err := m.jwt.SignToken(&jwt.Session{
		SID:     sid,
		Expires: expires.Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}

// CurrentUser 把令牌解析成用户，匿名、过期、被注销、用户已不存在都返回 nil
// 只有基础设施故障才返回 error
func (m *Manager) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}

	// 验签，无效或过期的令牌一律视为匿名
	session, err := m.jwt.ParseSession(token)
	if err != nil {
		return nil, nil
	}

	// 查询服务端记录
	idStr, err := m.rdb.Get(ctx, fmt.Sprintf(constants.CacheKeySession, session.SID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// 已注销或已过期
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	idUint64, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		// 无效的记录，清理掉
		m.rdb.Del(ctx, fmt.Sprintf(constants.CacheKeySession, session.SID))
		return nil, nil
	}

	// 确认用户仍然存在
	user, err := m.directory.FindByID(ctx, uint(idUint64))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

// End 注销会话，之后 CurrentUser 立即返回 nil
// 令牌无效时静默返回，注销不需要报错
func (m *Manager) End(ctx context.Context, token string) {
	if token == "" {
		return
	}

	session, err := m.jwt.ParseSession(token)
	if err != nil {
		return
	}

	if err := m.rdb.Del(ctx, fmt.Sprintf(constants.CacheKeySession, session.SID)).Err(); err != nil {
		m.l.Error("failed to delete session", zap.String("sid", session.SID), zap.Error(err))
	}
}
