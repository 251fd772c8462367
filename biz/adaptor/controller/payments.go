package controller

import (
	"context"

	"course-select/biz/adaptor"
	"course-select/biz/application/dto/course"
	"course-select/biz/infrastructure/consts"
	"course-select/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// CreatePaymentIntent 请求支付网关, 返回client secret
func CreatePaymentIntent(ctx context.Context, c *app.RequestContext) {
	var req course.CreatePaymentIntentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}

	p := provider.Get()
	resp, err := p.PaymentService.CreateIntent(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func CreatePayment(ctx context.Context, c *app.RequestContext) {
	var req course.CreatePaymentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}

	p := provider.Get()
	resp, err := p.PaymentService.CreatePayment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetPayments(ctx context.Context, c *app.RequestContext) {
	email := c.Param("email")
	p := provider.Get()
	resp, err := p.PaymentService.ListPayments(ctx, email)
	adaptor.PostProcess(ctx, c, email, resp, err)
}
