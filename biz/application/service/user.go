package service

import (
	"context"
	"errors"
	"time"

	"course-select/biz/adaptor"
	"course-select/biz/application/dto/basic"
	"course-select/biz/application/dto/course"
	"course-select/biz/infrastructure/consts"
	"course-select/biz/infrastructure/repository/user"
	"course-select/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/mongo"
)

type IUserService interface {
	Register(ctx context.Context, req *course.CreateUserReq) (*course.UserVO, bool, error)
	ListUsers(ctx context.Context) ([]*course.UserVO, error)
	CurrentUser(ctx context.Context, email string) ([]*course.UserVO, error)
	CheckAdmin(ctx context.Context, email string) (*course.CheckAdminResp, error)
	PromoteRole(ctx context.Context, id string, role string) (*basic.UpdateResult, error)
	AddClasses(ctx context.Context, email string, req *course.AddClassesReq) (*basic.UpdateResult, error)
	SetClasses(ctx context.Context, email string, req *course.SetClassesReq) (*basic.UpdateResult, error)
	AppendPayments(ctx context.Context, email string, req *course.ManagePaymentReq) (*basic.UpdateResult, error)
}

type UserService struct {
	UserMapper user.Mapper
}

var UserServiceSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
)

// Register 注册用户, 按邮箱幂等: 已存在时不再插入
func (s *UserService) Register(ctx context.Context, req *course.CreateUserReq) (*course.UserVO, bool, error) {
	existing, err := s.UserMapper.FindOneByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, consts.ErrNotFound) {
		return nil, false, err
	}
	if existing != nil {
		return nil, true, nil
	}

	// 角色一律从student起步, 提升只走管理端操作
	u := &user.User{
		Name:            req.Name,
		Email:           req.Email,
		Photo:           req.Photo,
		Role:            consts.RoleStudent,
		EnrolledClasses: []string{},
		PaymentHistory:  []user.PaymentEntry{},
	}
	if err := s.UserMapper.Insert(ctx, u); err != nil {
		log.CtxError(ctx, "insert user failed: %v", err)
		return nil, false, consts.ErrInsert
	}
	return userVO(u), false, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*course.UserVO, error) {
	users, err := s.UserMapper.FindMany(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(users, func(u *user.User, _ int) *course.UserVO {
		return userVO(u)
	}), nil
}

// CurrentUser 按邮箱查询, 返回0或1个用户的数组
func (s *UserService) CurrentUser(ctx context.Context, email string) ([]*course.UserVO, error) {
	u, err := s.UserMapper.FindOneByEmail(ctx, email)
	if errors.Is(err, consts.ErrNotFound) {
		return []*course.UserVO{}, nil
	}
	if err != nil {
		return nil, err
	}
	return []*course.UserVO{userVO(u)}, nil
}

// CheckAdmin 只允许查询自己的身份, 邮箱不一致时直接返回false
func (s *UserService) CheckAdmin(ctx context.Context, email string) (*course.CheckAdminResp, error) {
	meta := adaptor.ExtractIdentity(ctx)
	if meta.GetEmail() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if meta.GetEmail() != email {
		return &course.CheckAdminResp{Admin: false}, nil
	}

	u, err := s.UserMapper.FindOneByEmail(ctx, email)
	if errors.Is(err, consts.ErrNotFound) {
		return &course.CheckAdminResp{Admin: false}, nil
	}
	if err != nil {
		return nil, err
	}
	return &course.CheckAdminResp{Admin: u.Role == consts.RoleAdmin}, nil
}

func (s *UserService) PromoteRole(ctx context.Context, id string, role string) (*basic.UpdateResult, error) {
	res, err := s.UserMapper.UpdateRole(ctx, id, role)
	if errors.Is(err, consts.ErrInvalidObjectId) {
		return nil, err
	}
	if err != nil {
		log.CtxError(ctx, "promote role failed: %v", err)
		return nil, consts.ErrUpdate
	}
	return toUpdateResult(res), nil
}

func (s *UserService) AddClasses(ctx context.Context, email string, req *course.AddClassesReq) (*basic.UpdateResult, error) {
	if len(req.AddedClass) == 0 {
		return nil, consts.ErrInvalidParams
	}
	res, err := s.UserMapper.AddEnrolledClasses(ctx, email, req.AddedClass)
	if err != nil {
		log.CtxError(ctx, "add enrolled classes failed: %v", err)
		return nil, consts.ErrUpdate
	}
	return toUpdateResult(res), nil
}

func (s *UserService) SetClasses(ctx context.Context, email string, req *course.SetClassesReq) (*basic.UpdateResult, error) {
	res, err := s.UserMapper.SetEnrolledClasses(ctx, email, req.AddedClasses)
	if err != nil {
		log.CtxError(ctx, "set enrolled classes failed: %v", err)
		return nil, consts.ErrUpdate
	}
	return toUpdateResult(res), nil
}

func (s *UserService) AppendPayments(ctx context.Context, email string, req *course.ManagePaymentReq) (*basic.UpdateResult, error) {
	if len(req.PaymentHistory) == 0 {
		return nil, consts.ErrInvalidParams
	}
	entries := lo.Map(req.PaymentHistory, func(vo course.PaymentEntryVO, _ int) user.PaymentEntry {
		entry := user.PaymentEntry{}
		_ = copier.Copy(&entry, &vo)
		if entry.Currency == "" {
			entry.Currency = consts.DefaultCurrency
		}
		if entry.Date.IsZero() {
			entry.Date = time.Now()
		}
		return entry
	})
	res, err := s.UserMapper.AppendPaymentHistory(ctx, email, entries)
	if err != nil {
		log.CtxError(ctx, "append payment history failed: %v", err)
		return nil, consts.ErrUpdate
	}
	return toUpdateResult(res), nil
}

func userVO(u *user.User) *course.UserVO {
	vo := new(course.UserVO)
	_ = copier.Copy(vo, u)
	vo.ID = u.ID.Hex()
	if vo.EnrolledClasses == nil {
		vo.EnrolledClasses = []string{}
	}
	if vo.PaymentHistory == nil {
		vo.PaymentHistory = []course.PaymentEntryVO{}
	}
	return vo
}

func toUpdateResult(res *mongo.UpdateResult) *basic.UpdateResult {
	if res == nil {
		return &basic.UpdateResult{}
	}
	return &basic.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
}
