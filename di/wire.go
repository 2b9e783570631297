//go:build wireinject
// +build wireinject

package di

import (
	"farn/config"
	"farn/infras/kafka"
	"farn/infras/mailer"
	"farn/infras/otel"
	"farn/infras/postgres"
	"farn/infras/redis"
	bookingHandler "farn/internal/handlers/booking"
	guestHandler "farn/internal/handlers/guest"
	loyaltyHandler "farn/internal/handlers/loyalty"
	roomHandler "farn/internal/handlers/room"
	staffHandler "farn/internal/handlers/staff"
	"farn/shared/cache"
	"farn/transport/http"
	"farn/transport/http/middleware"
	"farn/transport/http/router"

	bookingRepository "farn/internal/domains/booking/repository"
	bookingService "farn/internal/domains/booking/service"
	guestRepository "farn/internal/domains/guest/repository"
	guestService "farn/internal/domains/guest/service"
	loyaltyRepository "farn/internal/domains/loyalty/repository"
	loyaltyService "farn/internal/domains/loyalty/service"
	roomRepository "farn/internal/domains/room/repository"
	roomService "farn/internal/domains/room/service"
	staffRepository "farn/internal/domains/staff/repository"
	staffService "farn/internal/domains/staff/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var loyaltyDomain = wire.NewSet(
	loyaltyRepository.New,
	loyaltyService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	guestDomain,
	roomDomain,
	staffDomain,
	loyaltyDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	guestHandler.New,
	roomHandler.New,
	staffHandler.New,
	loyaltyHandler.New,
	bookingHandler.New,
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
