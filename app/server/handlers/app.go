package handlers

import (
	"blog-core/app/server/accounts"
	"blog-core/app/server/content"
	"blog-core/app/server/sessions"
	"go.uber.org/zap"
)

type App struct {
	l         *zap.Logger         // 日志
	directory *accounts.Directory // 用户目录
	store     *content.Store      // 文章存储
	sessions  *sessions.Manager   // 会话管理
}

func NewApp(l *zap.Logger, directory *accounts.Directory, store *content.Store, sm *sessions.Manager) *App {
	return &App{
		l:         l,
		directory: directory,
		store:     store,
		sessions:  sm,
	}
}
