package class

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Class struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	InstructorName  string             `bson:"instructor_name" json:"instructorName"`
	InstructorEmail string             `bson:"instructor_email" json:"instructorEmail"`
	Price           float64            `bson:"price" json:"price"`
	AvailableSeats  int64              `bson:"available_seats" json:"availableSeats"`
	Enrolled        int64              `bson:"enrolled" json:"enrolled"`
	Status          string             `bson:"status" json:"status"` // pending/approved/denied
	Feedback        string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
	CreateTime      time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime      time.Time          `bson:"update_time" json:"updateTime"`
}
