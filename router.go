package main

import (
	"course-select/biz/adaptor/controller"
	"course-select/biz/infrastructure/consts"
	"course-select/provider"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizedRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", controller.Ping)

	p := provider.Get()
	auth := p.AuthMiddleware

	// 会话
	r.POST("/jwt", controller.IssueToken)

	// 用户
	r.GET("/users", controller.GetUsers)
	r.POST("/users", controller.CreateUser)
	r.GET("/users/admin/:email", auth.VerifyAuthorization, controller.CheckAdmin)
	r.GET("/currentUser/:email", controller.GetCurrentUser)
	// 角色提升仅限管理员操作
	r.PATCH("/users/admin/:id", auth.VerifyAuthorization, auth.RequireRole(consts.RoleAdmin), controller.MakeAdmin)
	r.PATCH("/users/instructor/:id", auth.VerifyAuthorization, auth.RequireRole(consts.RoleAdmin), controller.MakeInstructor)

	// 课程
	r.POST("/classes", auth.VerifyAuthorization, auth.RequireRole(consts.RoleInstructor), controller.CreateClass)
	r.GET("/classes", controller.GetClasses)
	r.GET("/classes/:email", controller.GetClassesByInstructor)
	r.PUT("/classes/:id", controller.UpdateClassStatus)
	r.PUT("/feedback/:id", controller.AttachFeedback)
	r.PUT("/update/:id", controller.UpdateClassOffering)

	// 选课
	r.PUT("/manageUserAddClass/:email", controller.AddUserClasses)
	r.PUT("/deleteClass/:email", controller.SetUserClasses)

	// 支付
	r.POST("/create-payment-intent", controller.CreatePaymentIntent)
	r.POST("/payments", controller.CreatePayment)
	r.GET("/payments/:email", auth.VerifyAuthorization, controller.GetPayments)
	r.PUT("/managePayment/:email", controller.ManagePayment)
}
