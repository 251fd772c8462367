package service

import (
	"context"
	"errors"

	"course-select/biz/application/dto/basic"
	"course-select/biz/application/dto/course"
	"course-select/biz/infrastructure/consts"
	"course-select/biz/infrastructure/repository/class"
	"course-select/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/mongo"
)

type IClassService interface {
	CreateClass(ctx context.Context, req *course.CreateClassReq) (*course.ClassVO, error)
	ListClasses(ctx context.Context) ([]*course.ClassVO, error)
	ListByInstructor(ctx context.Context, email string) ([]*course.ClassVO, error)
	UpdateStatus(ctx context.Context, id string, req *course.UpdateStatusReq) (*basic.UpdateResult, error)
	AttachFeedback(ctx context.Context, id string, req *course.AttachFeedbackReq) (*basic.UpdateResult, error)
	UpdateOffering(ctx context.Context, id string, req *course.UpdateOfferingReq) (*basic.UpdateResult, error)
}

type ClassService struct {
	ClassMapper class.Mapper
}

var ClassServiceSet = wire.NewSet(
	wire.Struct(new(ClassService), "*"),
	wire.Bind(new(IClassService), new(*ClassService)),
)

// CreateClass 新建课程, 初始状态固定为pending
func (s *ClassService) CreateClass(ctx context.Context, req *course.CreateClassReq) (*course.ClassVO, error) {
	c := &class.Class{
		Name:            req.Name,
		Image:           req.Image,
		InstructorName:  req.InstructorName,
		InstructorEmail: req.InstructorEmail,
		Price:           req.Price,
		AvailableSeats:  req.AvailableSeats,
		Status:          consts.ClassStatusPending,
	}
	if err := s.ClassMapper.Insert(ctx, c); err != nil {
		log.CtxError(ctx, "insert class failed: %v", err)
		return nil, consts.ErrCreateClass
	}
	return classVO(c), nil
}

func (s *ClassService) ListClasses(ctx context.Context) ([]*course.ClassVO, error) {
	classes, err := s.ClassMapper.FindMany(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(classes, func(c *class.Class, _ int) *course.ClassVO {
		return classVO(c)
	}), nil
}

func (s *ClassService) ListByInstructor(ctx context.Context, email string) ([]*course.ClassVO, error) {
	classes, err := s.ClassMapper.FindByInstructor(ctx, email)
	if err != nil {
		return nil, err
	}
	return lo.Map(classes, func(c *class.Class, _ int) *course.ClassVO {
		return classVO(c)
	}), nil
}

// UpdateStatus 状态只接受三个枚举值
func (s *ClassService) UpdateStatus(ctx context.Context, id string, req *course.UpdateStatusReq) (*basic.UpdateResult, error) {
	switch req.Status {
	case consts.ClassStatusPending, consts.ClassStatusApproved, consts.ClassStatusDenied:
	default:
		return nil, consts.ErrInvalidStatus
	}
	return s.applyUpdate(ctx, func() (*mongo.UpdateResult, error) {
		return s.ClassMapper.UpdateStatus(ctx, id, req.Status)
	})
}

func (s *ClassService) AttachFeedback(ctx context.Context, id string, req *course.AttachFeedbackReq) (*basic.UpdateResult, error) {
	return s.applyUpdate(ctx, func() (*mongo.UpdateResult, error) {
		return s.ClassMapper.UpdateFeedback(ctx, id, req.FeedBack)
	})
}

func (s *ClassService) UpdateOffering(ctx context.Context, id string, req *course.UpdateOfferingReq) (*basic.UpdateResult, error) {
	return s.applyUpdate(ctx, func() (*mongo.UpdateResult, error) {
		return s.ClassMapper.UpdateOffering(ctx, id, req.Price, req.AvailableSeats)
	})
}

func (s *ClassService) applyUpdate(ctx context.Context, update func() (*mongo.UpdateResult, error)) (*basic.UpdateResult, error) {
	res, err := update()
	if errors.Is(err, consts.ErrInvalidObjectId) {
		return nil, err
	}
	if err != nil {
		log.CtxError(ctx, "update class failed: %v", err)
		return nil, consts.ErrUpdate
	}
	return toUpdateResult(res), nil
}

func classVO(c *class.Class) *course.ClassVO {
	vo := new(course.ClassVO)
	_ = copier.Copy(vo, c)
	vo.ID = c.ID.Hex()
	return vo
}
