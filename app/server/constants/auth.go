package constants

import "time"

const (
	AuthTokenDuration = 24 * time.Hour // 会话 token 有效期，过期后需要重新登录
	AuthTokenIssuer   = "textura"
)

const (
	ContextKeyPrincipal = "principal" // 认证通过后写入 echo.Context 的键
)
