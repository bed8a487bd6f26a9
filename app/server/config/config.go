package config

import "strings"

type Config struct {
	System struct {
		Mode                  string `env:"MODE" envDefault:"development"` // 以 p 开头（prod / production）时为生产环境
		Listen                string `env:"LISTEN" envDefault:":3000"`     // 监听地址
		DBConnectionString    string `env:"DB_CONN,required"`              // Postgres 数据库的连接字符串
		RedisConnectionString string `env:"REDIS_CONN"`                    // Redis 连接字符串，留空则不使用缓存
	}
	Security struct {
		SignatureSecretKey string  `env:"JWT_SECRET,required"`             // 签名密钥，用于签发 JWT ，更新会导致旧有会话失效
		AuthRateLimit      float64 `env:"AUTH_RATE_LIMIT" envDefault:"5"`  // 登录注册接口每个 IP 每秒允许的请求数
		AuthRateBurst      int     `env:"AUTH_RATE_BURST" envDefault:"10"` // 突发请求数
	}
	Admin struct {
		Email    string `env:"ADMIN_EMAIL"`                          // 初始管理员邮箱，只有在没有任何用户时才会创建
		Password string `env:"ADMIN_PASSWORD"`                       // 初始管理员密码
		Name     string `env:"ADMIN_NAME" envDefault:"Administrator"` // 初始管理员名称
	}
}

func (c *Config) IsProd() bool {
	return strings.HasPrefix(strings.ToLower(c.System.Mode), "p")
}

func (c *Config) SeedAdmin() bool {
	return c.Admin.Email != "" && c.Admin.Password != ""
}
