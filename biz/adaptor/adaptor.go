package adaptor

import (
	"context"
	"errors"

	"course-select/biz/application/dto/basic"
	"course-select/biz/infrastructure/consts"
	"course-select/biz/infrastructure/util"
	"course-select/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	hconsts "github.com/cloudwego/hertz/pkg/protocol/consts"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type identityKey struct{}

// WithIdentity 将校验过的身份写入请求上下文
func WithIdentity(ctx context.Context, meta *basic.UserMeta) context.Context {
	return context.WithValue(ctx, identityKey{}, meta)
}

// ExtractIdentity 读取中间件写入的身份, 未认证的路由返回nil
func ExtractIdentity(ctx context.Context) *basic.UserMeta {
	meta, ok := ctx.Value(identityKey{}).(*basic.UserMeta)
	if !ok {
		return nil
	}
	return meta
}

// PostProcess 统一的响应出口, 错误不向外暴露内部细节
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	log.CtxInfo(ctx, "[%s] req=%s, resp=%s, err=%v", c.Path(), util.JSONF(req), util.JSONF(resp), err)

	if err == nil {
		c.JSON(hconsts.StatusOK, resp)
		return
	}

	var en *consts.Errno
	if !errors.As(err, &en) {
		// 存储层等未分类错误, 一律500
		c.JSON(hconsts.StatusInternalServerError, &basic.ErrorResp{Error: true, Message: "internal server error"})
		return
	}

	s, _ := status.FromError(en)
	c.JSON(httpStatus(s.Code()), &basic.ErrorResp{Error: true, Message: en.Error()})
}

func httpStatus(code codes.Code) int {
	switch code {
	case codes.Unauthenticated:
		return hconsts.StatusUnauthorized
	case codes.PermissionDenied:
		return hconsts.StatusForbidden
	case codes.InvalidArgument:
		return hconsts.StatusBadRequest
	case codes.NotFound:
		return hconsts.StatusNotFound
	default:
		return hconsts.StatusInternalServerError
	}
}
