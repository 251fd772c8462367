package course

import "time"

type CreateClassReq struct {
	Name            string  `form:"name" json:"name" vd:"len($)>0"`
	Image           string  `form:"image" json:"image"`
	InstructorName  string  `form:"instructorName" json:"instructorName"`
	InstructorEmail string  `form:"instructorEmail" json:"instructorEmail" vd:"len($)>0"`
	Price           float64 `form:"price" json:"price"`
	AvailableSeats  int64   `form:"availableSeats" json:"availableSeats"`
}

type ClassVO struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Image           string    `json:"image,omitempty"`
	InstructorName  string    `json:"instructorName"`
	InstructorEmail string    `json:"instructorEmail"`
	Price           float64   `json:"price"`
	AvailableSeats  int64     `json:"availableSeats"`
	Enrolled        int64     `json:"enrolled"`
	Status          string    `json:"status"`
	Feedback        string    `json:"feedback,omitempty"`
	CreateTime      time.Time `json:"createTime"`
	UpdateTime      time.Time `json:"updateTime"`
}

type UpdateStatusReq struct {
	Status string `json:"status" vd:"len($)>0"`
}

type AttachFeedbackReq struct {
	FeedBack string `json:"feedBack"`
}

type UpdateOfferingReq struct {
	Price          float64 `json:"price"`
	AvailableSeats int64   `json:"availableSeats"`
}
