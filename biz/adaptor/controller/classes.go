package controller

import (
	"context"

	"course-select/biz/adaptor"
	"course-select/biz/application/dto/course"
	"course-select/biz/infrastructure/consts"
	"course-select/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

func CreateClass(ctx context.Context, c *app.RequestContext) {
	var req course.CreateClassReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.CreateClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetClasses(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.ClassService.ListClasses(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

func GetClassesByInstructor(ctx context.Context, c *app.RequestContext) {
	email := c.Param("email")
	p := provider.Get()
	resp, err := p.ClassService.ListByInstructor(ctx, email)
	adaptor.PostProcess(ctx, c, email, resp, err)
}

// UpdateClassStatus 审核状态流转
func UpdateClassStatus(ctx context.Context, c *app.RequestContext) {
	var req course.UpdateStatusReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	id := c.Param("id")
	p := provider.Get()
	resp, err := p.ClassService.UpdateStatus(ctx, id, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func AttachFeedback(ctx context.Context, c *app.RequestContext) {
	var req course.AttachFeedbackReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	id := c.Param("id")
	p := provider.Get()
	resp, err := p.ClassService.AttachFeedback(ctx, id, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func UpdateClassOffering(ctx context.Context, c *app.RequestContext) {
	var req course.UpdateOfferingReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	id := c.Param("id")
	p := provider.Get()
	resp, err := p.ClassService.UpdateOffering(ctx, id, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
