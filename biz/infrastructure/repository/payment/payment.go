package payment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment 缴费流水, 只插入不修改
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email         string             `bson:"email" json:"email"`
	TransactionID string             `bson:"transaction_id" json:"transactionId"`
	Amount        float64            `bson:"amount" json:"amount"`
	Currency      string             `bson:"currency" json:"currency"`
	ClassIDs      []string           `bson:"class_ids,omitempty" json:"classIds,omitempty"`
	CreateTime    time.Time          `bson:"create_time" json:"createTime"`
}
