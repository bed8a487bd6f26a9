package middlewares

import (
	"github.com/deepesh-sr/Textura-Backend/app/server/apperr"
	"github.com/deepesh-sr/Textura-Backend/app/server/constants"
	"github.com/deepesh-sr/Textura-Backend/app/server/jwt"
	"github.com/deepesh-sr/Textura-Backend/app/server/models"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"strings"
)

// Principal 是认证通过后的调用者身份，写入 context 后不再修改
type Principal struct {
	UserID uint
	Role   models.Role
}

type requirementKind int

const (
	requirePublic requirementKind = iota
	requireOptional
	requireAuthenticated
	requireRole
)

// Requirement 描述一个路由对调用者的要求
type Requirement struct {
	kind requirementKind
	role models.Role
}

var (
	Public        = Requirement{kind: requirePublic}
	Optional      = Requirement{kind: requireOptional} // token 有效时写入身份，缺失或无效则匿名继续
	Authenticated = Requirement{kind: requireAuthenticated}
)

func RequireRole(role models.Role) Requirement {
	return Requirement{kind: requireRole, role: role}
}

func PrincipalFrom(c echo.Context) (Principal, bool) {
	p, ok := c.Get(constants.ContextKeyPrincipal).(Principal)
	return p, ok
}

func fail(c echo.Context, e *apperr.Error) error {
	return c.JSON(e.Kind.Status(), e.Response())
}

// Auth 每条路径要么返回一个响应，要么调用 next ，不会出现两者都没有的情况
func Auth(j *jwt.JWT, l *zap.Logger, req Requirement) echo.MiddlewareFunc {
	if req.kind == requirePublic {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	// 提取并验证 token
	parse := echojwt.WithConfig(echojwt.Config{
		ContextKey:  constants.ContextKeyPrincipal,
		TokenLookup: "header:" + echo.HeaderAuthorization,
		Skipper: func(c echo.Context) bool {
			return req.kind == requireOptional && c.Request().Header.Get(echo.HeaderAuthorization) == ""
		},
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			user, err := j.ParseUser(stripBearer(auth))
			if err != nil {
				return nil, err
			}
			return Principal{UserID: user.ID, Role: user.Role}, nil
		},
		// 可选认证时无效的 token 按匿名处理
		ContinueOnIgnoredError: req.kind == requireOptional,
		ErrorHandler: func(c echo.Context, err error) error {
			l.Debug("authentication failed", zap.String("path", c.Path()), zap.Error(err))
			if req.kind == requireOptional {
				return nil
			}
			return fail(c, apperr.Unauthenticated())
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return parse(gate(req, next))
	}
}

// gate 在 token 已经解析之后检查角色
func gate(req Requirement, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, ok := PrincipalFrom(c)

		switch req.kind {
		case requireOptional:
			return next(c)
		case requireAuthenticated:
			if !ok {
				return fail(c, apperr.Unauthenticated())
			}
			return next(c)
		case requireRole:
			if !ok {
				return fail(c, apperr.Unauthenticated())
			}
			if p.Role != req.role {
				return fail(c, apperr.Forbidden(forbiddenMessage(req.role)))
			}
			return next(c)
		default:
			return next(c)
		}
	}
}

func forbiddenMessage(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return "Forbidden, admin access required"
	case models.RoleUser:
		return "Forbidden, user access required"
	default:
		return "Forbidden"
	}
}

// stripBearer 兼容 "Bearer <token>" 与直接携带 token 两种写法
func stripBearer(auth string) string {
	auth = strings.TrimSpace(auth)
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return auth
}
