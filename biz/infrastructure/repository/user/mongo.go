package user

import (
	"context"
	"errors"
	"time"

	"course-select/biz/infrastructure/config"
	"course-select/biz/infrastructure/consts"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixUserCacheKey = "cache:user"
	UserCollectionName = "user"
)

// Mapper 用户集合的存储接口
type Mapper interface {
	Insert(ctx context.Context, user *User) error
	FindOneByEmail(ctx context.Context, email string) (*User, error)
	FindMany(ctx context.Context) ([]*User, error)
	UpdateRole(ctx context.Context, id string, role string) (*mongo.UpdateResult, error)
	AddEnrolledClasses(ctx context.Context, email string, classIDs []string) (*mongo.UpdateResult, error)
	SetEnrolledClasses(ctx context.Context, email string, classIDs []string) (*mongo.UpdateResult, error)
	AppendPaymentHistory(ctx context.Context, email string, entries []PaymentEntry) (*mongo.UpdateResult, error)
}

type MongoMapper struct {
	conn *monc.Model
}

var _ Mapper = (*MongoMapper)(nil)

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, UserCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, user *User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
		user.CreateTime = time.Now()
		user.UpdateTime = user.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, user)
	return err
}

func (m *MongoMapper) FindOneByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := m.conn.FindOneNoCache(ctx, &u, bson.M{
		consts.Email: email,
	})
	switch {
	case err == nil:
		return &u, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindMany(ctx context.Context) ([]*User, error) {
	var users []*User
	err := m.conn.Find(ctx, &users, bson.M{}, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (m *MongoMapper) UpdateRole(ctx context.Context, id string, role string) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	return m.conn.UpdateOneNoCache(ctx, bson.M{consts.ID: oid}, bson.M{
		consts.Set: bson.M{
			consts.Role:       role,
			consts.UpdateTime: time.Now(),
		},
	})
}

// AddEnrolledClasses 选课追加, 单文档原子操作, 不做读改写
func (m *MongoMapper) AddEnrolledClasses(ctx context.Context, email string, classIDs []string) (*mongo.UpdateResult, error) {
	return m.conn.UpdateOneNoCache(ctx, bson.M{consts.Email: email}, bson.M{
		consts.AddToSet: bson.M{
			consts.EnrolledClasses: bson.M{consts.Each: classIDs},
		},
		consts.Set: bson.M{
			consts.UpdateTime: time.Now(),
		},
	})
}

func (m *MongoMapper) SetEnrolledClasses(ctx context.Context, email string, classIDs []string) (*mongo.UpdateResult, error) {
	return m.conn.UpdateOneNoCache(ctx, bson.M{consts.Email: email}, bson.M{
		consts.Set: bson.M{
			consts.EnrolledClasses: classIDs,
			consts.UpdateTime:      time.Now(),
		},
	})
}

func (m *MongoMapper) AppendPaymentHistory(ctx context.Context, email string, entries []PaymentEntry) (*mongo.UpdateResult, error) {
	return m.conn.UpdateOneNoCache(ctx, bson.M{consts.Email: email}, bson.M{
		consts.Push: bson.M{
			consts.PaymentHistory: bson.M{consts.Each: entries},
		},
		consts.Set: bson.M{
			consts.UpdateTime: time.Now(),
		},
	})
}
