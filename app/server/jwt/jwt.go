package jwt

import (
	"errors"
	"fmt"
	"github.com/deepesh-sr/Textura-Backend/app/server/constants"
	"github.com/deepesh-sr/Textura-Backend/app/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"time"
)

var (
	ErrEmptyKey     = errors.New("key is empty")
	ErrInvalidToken = errors.New("invalid token")
)

type JWT struct {
	key []byte
	now func() time.Time
}

// User 是 token 中携带的身份信息
type User struct {
	ID      uint
	Role    models.Role
	Expires int64 // Unix second
}

type claims struct {
	UserID uint        `json:"userid"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

func New(key string) (*JWT, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	return &JWT{key: []byte(key), now: time.Now}, nil
}

func (j *JWT) clock() time.Time {
	if j.now == nil {
		return time.Now()
	}
	return j.now()
}

func (j *JWT) ParseUser(tokenString string) (*User, error) {
	// 没有密钥时一律视为无效，而不是放行或 panic
	if j == nil || len(j.key) == 0 {
		return nil, fmt.Errorf("%w: signing key not configured", ErrInvalidToken)
	}

	// 检查是否有效
	if len(tokenString) == 0 {
		return nil, fmt.Errorf("%w: token string is empty", ErrInvalidToken)
	}

	// 映射字段
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(constants.AuthTokenIssuer),
		jwt.WithTimeFunc(j.clock),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	// 匹配内容
	if !c.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, c.Role)
	}
	if c.UserID == 0 {
		return nil, fmt.Errorf("%w: missing user id", ErrInvalidToken)
	}

	return &User{
		ID:      c.UserID,
		Role:    c.Role,
		Expires: c.ExpiresAt.Unix(),
	}, nil
}

// SignToken 签发 token ，有效期固定为 constants.AuthTokenDuration ，user.Expires 会被回填
func (j *JWT) SignToken(user *User) (string, error) {
	if j == nil || len(j.key) == 0 {
		return "", ErrEmptyKey
	}
	if !user.Role.IsValid() {
		return "", fmt.Errorf("unknown role %q", user.Role)
	}

	// 创建声明
	now := j.clock()
	expires := now.Add(constants.AuthTokenDuration)
	c := &claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    constants.AuthTokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	// 创建令牌
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)

	// 签名并返回
	signed, err := token.SignedString(j.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	user.Expires = expires.Unix()
	return signed, nil
}
