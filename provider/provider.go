package provider

import (
	"course-select/biz/adaptor"
	"course-select/biz/application/service"
	"course-select/biz/infrastructure/config"
	"course-select/biz/infrastructure/repository/class"
	"course-select/biz/infrastructure/repository/payment"
	"course-select/biz/infrastructure/repository/user"
	"course-select/biz/infrastructure/util"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config         *config.Config
	AuthMiddleware *adaptor.AuthMiddleware
	AuthService    service.IAuthService
	UserService    service.IUserService
	ClassService   service.IClassService
	PaymentService service.IPaymentService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.AuthServiceSet,
	service.UserServiceSet,
	service.ClassServiceSet,
	service.PaymentServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	adaptor.AuthMiddlewareSet,
	user.NewMongoMapper,
	wire.Bind(new(user.Mapper), new(*user.MongoMapper)),
	class.NewMongoMapper,
	wire.Bind(new(class.Mapper), new(*class.MongoMapper)),
	payment.NewMongoMapper,
	wire.Bind(new(payment.Mapper), new(*payment.MongoMapper)),
	util.NewHttpClient,
	wire.Bind(new(service.PaymentGateway), new(*util.HttpClient)),
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
