package main

import (
	"blog-core/app/server/accounts"
	"blog-core/app/server/content"
	"blog-core/app/server/handlers"
	"blog-core/app/server/inits"
	"blog-core/app/server/jwt"
	"blog-core/app/server/sessions"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"log"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBConnectionString, cfg.Security.InitialAdminPassword)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 redis 连接
	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}

	// 初始化会话令牌签名
	j, err := jwt.New(cfg.Security.SignatureSecretKey)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 准备服务对象，统一在这里构造并注入，不用全局单例
	directory := accounts.NewDirectory(l, db)
	store := content.NewStore(l, db)
	sm := sessions.NewManager(l, rdb, j, directory)

	// 准备 handler app
	handlerApp := handlers.NewApp(l, directory, store, sm)

	// 准备模板渲染
	renderer, err := handlers.NewRenderer()
	if err != nil {
		l.Fatal("error initializing renderer", zap.Error(err))
	}

	// 准备 echo 服务
	e := echo.New()
	e.Renderer = renderer
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())

	// 绑定 echo 服务
	handlerApp.RegisterRoutes(e)

	// 启动 echo 服务
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
