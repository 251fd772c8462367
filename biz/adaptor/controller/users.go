package controller

import (
	"context"

	"course-select/biz/adaptor"
	"course-select/biz/application/dto/course"
	"course-select/biz/infrastructure/consts"
	"course-select/provider"

	"github.com/cloudwego/hertz/pkg/app"
	hconsts "github.com/cloudwego/hertz/pkg/protocol/consts"
)

// CreateUser 注册用户, 重复邮箱返回提示而不是报错
func CreateUser(ctx context.Context, c *app.RequestContext) {
	var req course.CreateUserReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}

	p := provider.Get()
	resp, existed, err := p.UserService.Register(ctx, &req)
	if err == nil && existed {
		c.JSON(hconsts.StatusOK, &course.MessageResp{Message: "user already exists"})
		return
	}
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetUsers(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.UserService.ListUsers(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

func GetCurrentUser(ctx context.Context, c *app.RequestContext) {
	email := c.Param("email")
	p := provider.Get()
	resp, err := p.UserService.CurrentUser(ctx, email)
	adaptor.PostProcess(ctx, c, email, resp, err)
}

func CheckAdmin(ctx context.Context, c *app.RequestContext) {
	email := c.Param("email")
	p := provider.Get()
	resp, err := p.UserService.CheckAdmin(ctx, email)
	adaptor.PostProcess(ctx, c, email, resp, err)
}

func MakeAdmin(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	p := provider.Get()
	resp, err := p.UserService.PromoteRole(ctx, id, consts.RoleAdmin)
	adaptor.PostProcess(ctx, c, id, resp, err)
}

func MakeInstructor(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	p := provider.Get()
	resp, err := p.UserService.PromoteRole(ctx, id, consts.RoleInstructor)
	adaptor.PostProcess(ctx, c, id, resp, err)
}

// AddUserClasses 选课追加
func AddUserClasses(ctx context.Context, c *app.RequestContext) {
	var req course.AddClassesReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	email := c.Param("email")
	p := provider.Get()
	resp, err := p.UserService.AddClasses(ctx, email, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// SetUserClasses 退课后整表覆盖
func SetUserClasses(ctx context.Context, c *app.RequestContext) {
	var req course.SetClassesReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	email := c.Param("email")
	p := provider.Get()
	resp, err := p.UserService.SetClasses(ctx, email, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ManagePayment 缴费历史追加
func ManagePayment(ctx context.Context, c *app.RequestContext) {
	var req course.ManagePaymentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	email := c.Param("email")
	p := provider.Get()
	resp, err := p.UserService.AppendPayments(ctx, email, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
