package service

import (
	"context"
	"time"

	"course-select/biz/application/dto/course"
	"course-select/biz/infrastructure/config"
	"course-select/biz/infrastructure/consts"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/wire"
	"github.com/spf13/cast"
)

type IAuthService interface {
	IssueToken(ctx context.Context, payload map[string]any) (*course.IssueTokenResp, error)
}

type AuthService struct {
	Config *config.Config
}

var AuthServiceSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),
)

// IssueToken 签发会话令牌, 负载原样进claims, 过期时间由配置决定
// 本接口不校验调用方身份, 信任边界见DESIGN.md
func (s *AuthService) IssueToken(ctx context.Context, payload map[string]any) (*course.IssueTokenResp, error) {
	email := cast.ToString(payload[consts.ClaimEmail])
	if email == "" {
		return nil, consts.ErrInvalidParams
	}

	iat := time.Now().Unix()
	claims := make(jwt.MapClaims, len(payload)+2)
	for k, v := range payload {
		claims[k] = v
	}
	claims[consts.ClaimIat] = iat
	claims[consts.ClaimExp] = iat + s.Config.Auth.AccessExpire

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.Config.Auth.SecretKey))
	if err != nil {
		return nil, consts.ErrCall
	}

	return &course.IssueTokenResp{Token: signed}, nil
}
