package adaptor

import (
	"context"
	"errors"
	"strings"

	"course-select/biz/application/dto/basic"
	"course-select/biz/infrastructure/config"
	"course-select/biz/infrastructure/consts"
	"course-select/biz/infrastructure/repository/user"
	"course-select/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	hconsts "github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/wire"
	"github.com/spf13/cast"
)

// AuthMiddleware 认证与角色校验, 依赖通过构造注入
type AuthMiddleware struct {
	Config     *config.Config
	UserMapper user.Mapper
}

var AuthMiddlewareSet = wire.NewSet(
	wire.Struct(new(AuthMiddleware), "*"),
)

// VerifyAuthorization 校验Bearer令牌, 通过后把身份放入上下文
func (m *AuthMiddleware) VerifyAuthorization(ctx context.Context, c *app.RequestContext) {
	raw := string(c.GetHeader(consts.AuthorizationHeader))
	if !strings.HasPrefix(raw, consts.BearerPrefix) {
		abortUnauthenticated(c)
		return
	}

	tokenString := strings.TrimPrefix(raw, consts.BearerPrefix)
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, consts.ErrNotAuthentication
		}
		return []byte(m.Config.Auth.SecretKey), nil
	})
	if err != nil || !token.Valid {
		log.CtxInfo(ctx, "verify token failed: %v", err)
		abortUnauthenticated(c)
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	email := cast.ToString(claims[consts.ClaimEmail])
	if email == "" {
		abortUnauthenticated(c)
		return
	}

	c.Next(WithIdentity(ctx, &basic.UserMeta{Email: email}))
}

// RequireRole 角色守卫, 精确匹配, admin不隐含instructor
func (m *AuthMiddleware) RequireRole(role string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		meta := ExtractIdentity(ctx)
		if meta.GetEmail() == "" {
			// 路由编排漏掉了认证中间件
			abortUnauthenticated(c)
			return
		}

		resolved, err := m.resolveRole(ctx, meta.GetEmail())
		if err != nil {
			log.CtxError(ctx, "resolve role failed: %v", err)
			c.AbortWithStatusJSON(hconsts.StatusInternalServerError, &basic.ErrorResp{Error: true, Message: "internal server error"})
			return
		}
		if resolved != role {
			c.AbortWithStatusJSON(hconsts.StatusForbidden, &basic.ErrorResp{Error: true, Message: consts.ErrForbidden.Error()})
			return
		}

		c.Next(ctx)
	}
}

// resolveRole 未注册的身份按student处理
func (m *AuthMiddleware) resolveRole(ctx context.Context, email string) (string, error) {
	u, err := m.UserMapper.FindOneByEmail(ctx, email)
	switch {
	case err == nil:
		return u.Role, nil
	case errors.Is(err, consts.ErrNotFound):
		return consts.RoleStudent, nil
	default:
		return "", err
	}
}

func abortUnauthenticated(c *app.RequestContext) {
	c.AbortWithStatusJSON(hconsts.StatusUnauthorized, &basic.ErrorResp{Error: true, Message: consts.ErrNotAuthentication.Error()})
}
