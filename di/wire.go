//go:build wireinject
// +build wireinject

package di

import (
	"hallbook/config"
	"hallbook/infras/jwt"
	"hallbook/infras/kafka"
	"hallbook/infras/otel"
	"hallbook/infras/postgres"
	"hallbook/infras/redis"
	"hallbook/infras/s3"
	"hallbook/permissions"
	"hallbook/shared/cache"
	"hallbook/transport/http"
	"hallbook/transport/http/middleware"
	"hallbook/transport/http/router"

	bookingHandler "hallbook/internal/handlers/booking"
	componentHandler "hallbook/internal/handlers/component"
	equipmentHandler "hallbook/internal/handlers/equipment"
	hallHandler "hallbook/internal/handlers/hall"
	notificationHandler "hallbook/internal/handlers/notification"
	profileHandler "hallbook/internal/handlers/profile"
	webhookHandler "hallbook/internal/handlers/webhook"

	bookingRepository "hallbook/internal/domains/booking/repository"
	bookingService "hallbook/internal/domains/booking/service"
	componentRepository "hallbook/internal/domains/component/repository"
	componentService "hallbook/internal/domains/component/service"
	equipmentRepository "hallbook/internal/domains/equipment/repository"
	equipmentService "hallbook/internal/domains/equipment/service"
	hallRepository "hallbook/internal/domains/hall/repository"
	hallService "hallbook/internal/domains/hall/service"
	notificationRepository "hallbook/internal/domains/notification/repository"
	notificationService "hallbook/internal/domains/notification/service"
	userRepository "hallbook/internal/domains/user/repository"
	userService "hallbook/internal/domains/user/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userRepository.NewProfile,
	userService.New,
)

var hallDomain = wire.NewSet(
	hallRepository.New,
	hallRepository.NewDepartment,
	hallRepository.NewAssignment,
	hallService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var equipmentDomain = wire.NewSet(
	equipmentRepository.New,
	equipmentRepository.NewLog,
	equipmentService.New,
)

var componentDomain = wire.NewSet(
	componentRepository.New,
	componentRepository.NewLog,
	componentService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var domains = wire.NewSet(
	userDomain,
	hallDomain,
	bookingDomain,
	equipmentDomain,
	componentDomain,
	notificationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	hallHandler.New,
	equipmentHandler.New,
	componentHandler.New,
	notificationHandler.New,
	profileHandler.New,
	webhookHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
