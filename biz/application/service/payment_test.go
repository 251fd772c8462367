package service_test

import (
	"context"
	"testing"

	"course-select/biz/application/dto/course"
	"course-select/biz/application/service"
	"course-select/biz/infrastructure/consts"
	"course-select/biz/infrastructure/repository/payment"
	"course-select/biz/infrastructure/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaymentService(gw *fakeGateway) (*service.PaymentService, *memPaymentMapper) {
	mapper := &memPaymentMapper{}
	return &service.PaymentService{PaymentMapper: mapper, Gateway: gw}, mapper
}

func TestCreateIntentConvertsToMinorUnits(t *testing.T) {
	gw := &fakeGateway{intent: &util.PaymentIntent{ID: "pi_1", ClientSecret: "cs_test"}}
	svc, _ := newPaymentService(gw)

	resp, err := svc.CreateIntent(context.Background(), &course.CreatePaymentIntentReq{Price: 12.34})
	require.NoError(t, err)
	assert.Equal(t, "cs_test", resp.ClientSecret)
	assert.Equal(t, int64(1234), gw.gotAmount)
	assert.Equal(t, consts.DefaultCurrency, gw.gotCurrency)
}

func TestCreateIntentRejectsNonPositivePrice(t *testing.T) {
	svc, _ := newPaymentService(&fakeGateway{})

	_, err := svc.CreateIntent(context.Background(), &course.CreatePaymentIntentReq{Price: 0})
	assert.ErrorIs(t, err, consts.ErrInvalidParams)
}

func TestCreateIntentGatewayFailureIsGeneric(t *testing.T) {
	gw := &fakeGateway{err: assert.AnError}
	svc, _ := newPaymentService(gw)

	_, err := svc.CreateIntent(context.Background(), &course.CreatePaymentIntentReq{Price: 10})
	assert.ErrorIs(t, err, consts.ErrPaymentIntent)
}

func TestCreatePaymentFillsDefaults(t *testing.T) {
	svc, mapper := newPaymentService(&fakeGateway{})

	vo, err := svc.CreatePayment(context.Background(), &course.CreatePaymentReq{
		Email:    "stu@x.com",
		Amount:   49.9,
		ClassIDs: []string{"c1"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, vo.TransactionID)
	assert.Equal(t, consts.DefaultCurrency, vo.Currency)
	require.Len(t, mapper.payments, 1)
	assert.Equal(t, "stu@x.com", mapper.payments[0].Email)
}

func TestListPaymentsSelfOnly(t *testing.T) {
	svc, mapper := newPaymentService(&fakeGateway{})
	ctx := context.Background()
	require.NoError(t, mapper.Insert(ctx, &payment.Payment{Email: "stu@x.com", TransactionID: "tx1", Amount: 5}))
	require.NoError(t, mapper.Insert(ctx, &payment.Payment{Email: "other@x.com", TransactionID: "tx2", Amount: 7}))

	_, err := svc.ListPayments(ctx, "stu@x.com")
	assert.ErrorIs(t, err, consts.ErrNotAuthentication)

	_, err = svc.ListPayments(identityCtx("other@x.com"), "stu@x.com")
	assert.ErrorIs(t, err, consts.ErrForbidden)

	out, err := svc.ListPayments(identityCtx("stu@x.com"), "stu@x.com")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "tx1", out[0].TransactionID)
}
