package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentEntry 用户文档内嵌的缴费记录, 只追加
type PaymentEntry struct {
	TransactionID string    `bson:"transaction_id" json:"transactionId"`
	Amount        float64   `bson:"amount" json:"amount"`
	Currency      string    `bson:"currency" json:"currency"`
	Date          time.Time `bson:"date" json:"date"`
}

type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	Photo           string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role            string             `bson:"role" json:"role"` // student/instructor/admin
	EnrolledClasses []string           `bson:"enrolled_classes" json:"enrolledClasses"`
	PaymentHistory  []PaymentEntry     `bson:"payment_history" json:"paymentHistory"`
	CreateTime      time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime      time.Time          `bson:"update_time" json:"updateTime"`
}
