package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 认证与授权错误, 对外只暴露通用文案
var (
	ErrNotAuthentication = NewErrno(codes.Unauthenticated, errors.New("unauthorized access"))
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("forbidden message"))
)

// 业务错误
var (
	ErrCreateClass   = NewErrno(codes.Code(1001), errors.New("create class failed"))
	ErrInvalidStatus = NewErrno(codes.InvalidArgument, errors.New("invalid class status"))
	ErrPaymentIntent = NewErrno(codes.Code(1002), errors.New("create payment intent failed"))
	ErrSavePayment   = NewErrno(codes.Code(1003), errors.New("save payment failed"))
)

// ErrInvalidParams 调用时错误
var (
	ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("invalid params"))
	ErrCall          = NewErrno(codes.Unknown, errors.New("call external service failed"))
)

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("invalid id"))
	ErrUpdate          = NewErrno(codes.Code(2001), errors.New("update failed"))
	ErrInsert          = NewErrno(codes.Code(2002), errors.New("insert failed"))
)
