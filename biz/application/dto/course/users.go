package course

import "time"

type CreateUserReq struct {
	Name  string `form:"name" json:"name"`
	Email string `form:"email" json:"email" vd:"len($)>0"`
	Photo string `form:"photo" json:"photo"`
	Role  string `form:"role" json:"role"`
}

type PaymentEntryVO struct {
	TransactionID string    `json:"transactionId"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Date          time.Time `json:"date"`
}

type UserVO struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Photo           string           `json:"photo,omitempty"`
	Role            string           `json:"role"`
	EnrolledClasses []string         `json:"enrolledClasses"`
	PaymentHistory  []PaymentEntryVO `json:"paymentHistory"`
	CreateTime      time.Time        `json:"createTime"`
	UpdateTime      time.Time        `json:"updateTime"`
}

type MessageResp struct {
	Message string `json:"message"`
}

type CheckAdminResp struct {
	Admin bool `json:"admin"`
}

type AddClassesReq struct {
	AddedClass []string `json:"addedClass"`
}

type SetClassesReq struct {
	AddedClasses []string `json:"addedClasses"`
}

type ManagePaymentReq struct {
	PaymentHistory []PaymentEntryVO `json:"paymentHistory"`
}
