package consts

// 数据库相关
const (
	ID              = "_id"
	Email           = "email"
	Role            = "role"
	Status          = "status"
	Feedback        = "feedback"
	Price           = "price"
	AvailableSeats  = "available_seats"
	InstructorEmail = "instructor_email"
	EnrolledClasses = "enrolled_classes"
	PaymentHistory  = "payment_history"
	CreateTime      = "create_time"
	UpdateTime      = "update_time"
)

// mongo更新算子
const (
	Set      = "$set"
	Push     = "$push"
	AddToSet = "$addToSet"
	Each     = "$each"
)

// 用户角色
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// 课程状态
const (
	ClassStatusPending  = "pending"
	ClassStatusApproved = "approved"
	ClassStatusDenied   = "denied"
)

// jwt claims
const (
	ClaimEmail = "email"
	ClaimExp   = "exp"
	ClaimIat   = "iat"
)

// http
const (
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
	ContentTypeJson     = "application/json"
)

// 默认值
const (
	DefaultCurrency = "usd"
	CentsPerUnit    = 100
)
