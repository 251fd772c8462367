package controller

import (
	"context"
	"encoding/json"

	"course-select/biz/adaptor"
	"course-select/biz/infrastructure/consts"
	"course-select/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// IssueToken 签发会话令牌
func IssueToken(ctx context.Context, c *app.RequestContext) {
	var payload map[string]any
	body, err := c.Body()
	if err != nil || json.Unmarshal(body, &payload) != nil {
		adaptor.PostProcess(ctx, c, nil, nil, consts.ErrInvalidParams)
		return
	}

	p := provider.Get()
	resp, err := p.AuthService.IssueToken(ctx, payload)
	adaptor.PostProcess(ctx, c, payload, resp, err)
}
