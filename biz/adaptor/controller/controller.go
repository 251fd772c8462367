package controller

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	hconsts "github.com/cloudwego/hertz/pkg/protocol/consts"
)

func Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(hconsts.StatusOK, map[string]string{
		"ping": "pong",
	})
}
