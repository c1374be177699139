//go:build wireinject
// +build wireinject

package di

import (
	"roster/config"
	"roster/infras/jwt"
	"roster/infras/kafka"
	"roster/infras/otel"
	"roster/infras/postgres"
	"roster/infras/redis"
	"roster/permissions"
	"roster/shared/cache"
	"roster/transport/http"
	"roster/transport/http/middleware"
	"roster/transport/http/router"

	"github.com/google/wire"

	assignmentRepository "roster/internal/domains/assignment/repository"
	assignmentService "roster/internal/domains/assignment/service"
	authService "roster/internal/domains/auth/service"
	conflictRepository "roster/internal/domains/conflict/repository"
	conflictService "roster/internal/domains/conflict/service"
	projectRepository "roster/internal/domains/project/repository"
	projectService "roster/internal/domains/project/service"
	scheduleService "roster/internal/domains/schedule/service"
	userRepository "roster/internal/domains/user/repository"
	userService "roster/internal/domains/user/service"

	assignmentHandler "roster/internal/handlers/assignment"
	authHandler "roster/internal/handlers/auth"
	conflictHandler "roster/internal/handlers/conflict"
	projectHandler "roster/internal/handlers/project"
	scheduleHandler "roster/internal/handlers/schedule"
	userHandler "roster/internal/handlers/user"
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
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var projectDomain = wire.NewSet(
	projectRepository.New,
	projectService.New,
)

var assignmentDomain = wire.NewSet(
	assignmentRepository.New,
	assignmentRepository.NewDay,
	assignmentRepository.NewExcludedDate,
	assignmentRepository.NewHistory,
	assignmentService.New,
)

var conflictDomain = wire.NewSet(
	conflictRepository.New,
	conflictService.New,
)

var scheduleDomain = wire.NewSet(
	scheduleService.New,
)

var domains = wire.NewSet(
	authDomain,
	projectDomain,
	assignmentDomain,
	conflictDomain,
	scheduleDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	projectHandler.New,
	assignmentHandler.New,
	conflictHandler.New,
	scheduleHandler.New,
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
