package constants

import "time"

const (
	CacheKeySession = "blog:session:%s" // 会话记录，值为用户 ID
)

const (
	SessionDuration = 24 * time.Hour // 会话有效期，redis TTL 与签名过期时间共用
)

const (
	SessionCookieName = "blog_session" // 客户端持有的会话令牌 cookie
)
