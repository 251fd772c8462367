package class

import (
	"context"
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
	prefixClassCacheKey = "cache:class"
	ClassCollectionName = "classes"
)

// Mapper 课程集合的存储接口
type Mapper interface {
	Insert(ctx context.Context, class *Class) error
	FindMany(ctx context.Context) ([]*Class, error)
	FindByInstructor(ctx context.Context, email string) ([]*Class, error)
	UpdateStatus(ctx context.Context, id string, status string) (*mongo.UpdateResult, error)
	UpdateFeedback(ctx context.Context, id string, feedback string) (*mongo.UpdateResult, error)
	UpdateOffering(ctx context.Context, id string, price float64, availableSeats int64) (*mongo.UpdateResult, error)
}

type MongoMapper struct {
	conn *monc.Model
}

var _ Mapper = (*MongoMapper)(nil)

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, ClassCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, class *Class) error {
	if class.ID.IsZero() {
		class.ID = primitive.NewObjectID()
		class.CreateTime = time.Now()
		class.UpdateTime = class.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, class)
	return err
}

func (m *MongoMapper) FindMany(ctx context.Context) ([]*Class, error) {
	var classes []*Class
	err := m.conn.Find(ctx, &classes, bson.M{}, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (m *MongoMapper) FindByInstructor(ctx context.Context, email string) ([]*Class, error) {
	var classes []*Class
	err := m.conn.Find(ctx, &classes, bson.M{consts.InstructorEmail: email}, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (m *MongoMapper) UpdateStatus(ctx context.Context, id string, status string) (*mongo.UpdateResult, error) {
	return m.updateByID(ctx, id, bson.M{consts.Status: status})
}

func (m *MongoMapper) UpdateFeedback(ctx context.Context, id string, feedback string) (*mongo.UpdateResult, error) {
	return m.updateByID(ctx, id, bson.M{consts.Feedback: feedback})
}

func (m *MongoMapper) UpdateOffering(ctx context.Context, id string, price float64, availableSeats int64) (*mongo.UpdateResult, error) {
	return m.updateByID(ctx, id, bson.M{
		consts.Price:          price,
		consts.AvailableSeats: availableSeats,
	})
}

func (m *MongoMapper) updateByID(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	fields[consts.UpdateTime] = time.Now()
	return m.conn.UpdateOneNoCache(ctx, bson.M{consts.ID: oid}, bson.M{
		consts.Set: fields,
	})
}
