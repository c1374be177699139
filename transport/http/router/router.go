package router

import (
	"roster/internal/handlers/assignment"
	"roster/internal/handlers/auth"
	"roster/internal/handlers/conflict"
	"roster/internal/handlers/project"
	"roster/internal/handlers/schedule"
	"roster/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth       auth.Handler
	User       user.Handler
	Project    project.Handler
	Assignment assignment.Handler
	Conflict   conflict.Handler
	Schedule   schedule.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Project.Router(routerGroup)
		r.DomainHandlers.Assignment.Router(routerGroup)
		r.DomainHandlers.Conflict.Router(routerGroup)
		r.DomainHandlers.Schedule.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
