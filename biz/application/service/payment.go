package service

import (
	"context"
	"math"

	"course-select/biz/adaptor"
	"course-select/biz/application/dto/course"
	"course-select/biz/infrastructure/consts"
	"course-select/biz/infrastructure/repository/payment"
	"course-select/biz/infrastructure/util"
	"course-select/biz/infrastructure/util/log"

	"github.com/google/uuid"
	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
)

// PaymentGateway 外部支付网关, 对本服务只是一个返回client secret的黑盒
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*util.PaymentIntent, error)
}

var _ PaymentGateway = (*util.HttpClient)(nil)

type IPaymentService interface {
	CreateIntent(ctx context.Context, req *course.CreatePaymentIntentReq) (*course.CreatePaymentIntentResp, error)
	CreatePayment(ctx context.Context, req *course.CreatePaymentReq) (*course.PaymentVO, error)
	ListPayments(ctx context.Context, email string) ([]*course.PaymentVO, error)
}

type PaymentService struct {
	PaymentMapper payment.Mapper
	Gateway       PaymentGateway
}

var PaymentServiceSet = wire.NewSet(
	wire.Struct(new(PaymentService), "*"),
	wire.Bind(new(IPaymentService), new(*PaymentService)),
)

// CreateIntent 向支付网关创建支付意向, 金额换算为最小货币单位
func (s *PaymentService) CreateIntent(ctx context.Context, req *course.CreatePaymentIntentReq) (*course.CreatePaymentIntentResp, error) {
	amount := int64(math.Round(req.Price * consts.CentsPerUnit))
	if amount < 1 {
		return nil, consts.ErrInvalidParams
	}

	intent, err := s.Gateway.CreatePaymentIntent(ctx, amount, consts.DefaultCurrency)
	if err != nil {
		log.CtxError(ctx, "create payment intent failed: %v", err)
		return nil, consts.ErrPaymentIntent
	}
	return &course.CreatePaymentIntentResp{ClientSecret: intent.ClientSecret}, nil
}

// CreatePayment 落缴费流水, 只追加
func (s *PaymentService) CreatePayment(ctx context.Context, req *course.CreatePaymentReq) (*course.PaymentVO, error) {
	p := &payment.Payment{
		Email:         req.Email,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		ClassIDs:      req.ClassIDs,
	}
	if p.TransactionID == "" {
		p.TransactionID = uuid.NewString()
	}
	if p.Currency == "" {
		p.Currency = consts.DefaultCurrency
	}

	if err := s.PaymentMapper.Insert(ctx, p); err != nil {
		log.CtxError(ctx, "insert payment failed: %v", err)
		return nil, consts.ErrSavePayment
	}
	return paymentVO(p), nil
}

// ListPayments 只允许查询自己的流水
func (s *PaymentService) ListPayments(ctx context.Context, email string) ([]*course.PaymentVO, error) {
	meta := adaptor.ExtractIdentity(ctx)
	if meta.GetEmail() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if meta.GetEmail() != email {
		return nil, consts.ErrForbidden
	}

	payments, err := s.PaymentMapper.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return lo.Map(payments, func(p *payment.Payment, _ int) *course.PaymentVO {
		return paymentVO(p)
	}), nil
}

func paymentVO(p *payment.Payment) *course.PaymentVO {
	vo := new(course.PaymentVO)
	_ = copier.Copy(vo, p)
	vo.ID = p.ID.Hex()
	return vo
}
