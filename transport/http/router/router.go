package router

import (
	"hallbook/internal/handlers/booking"
	"hallbook/internal/handlers/component"
	"hallbook/internal/handlers/equipment"
	"hallbook/internal/handlers/hall"
	"hallbook/internal/handlers/notification"
	"hallbook/internal/handlers/profile"
	"hallbook/internal/handlers/webhook"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Booking      booking.Handler
	Hall         hall.Handler
	Equipment    equipment.Handler
	Component    component.Handler
	Notification notification.Handler
	Profile      profile.Handler
	Webhook      webhook.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Hall.Router(routerGroup)
		r.DomainHandlers.Equipment.Router(routerGroup)
		r.DomainHandlers.Component.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
		r.DomainHandlers.Profile.Router(routerGroup)
		r.DomainHandlers.Webhook.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
