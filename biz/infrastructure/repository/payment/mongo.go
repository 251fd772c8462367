package payment

import (
	"context"
	"time"

	"course-select/biz/infrastructure/config"
	"course-select/biz/infrastructure/consts"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixPaymentCacheKey = "cache:payment"
	PaymentCollectionName = "payments"
)

// Mapper 缴费流水的存储接口
type Mapper interface {
	Insert(ctx context.Context, payment *Payment) error
	FindByEmail(ctx context.Context, email string) ([]*Payment, error)
}

type MongoMapper struct {
	conn *monc.Model
}

var _ Mapper = (*MongoMapper)(nil)

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, PaymentCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, payment *Payment) error {
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
		payment.CreateTime = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, payment)
	return err
}

func (m *MongoMapper) FindByEmail(ctx context.Context, email string) ([]*Payment, error) {
	var payments []*Payment
	err := m.conn.Find(ctx, &payments, bson.M{consts.Email: email}, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return payments, nil
}
