package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-service/internal/api/http/handlers"
	"github.com/spec-kit/restaurant-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Restaurants    *handlers.RestaurantsHandler
	Partners       *handlers.PartnersHandler
	Orders         *handlers.OrdersHandler
	ContextBuilder *auth.ContextBuilder
}

// RegisterRoutes wires HTTP routes. The security context is assembled once
// per request before routing; the handlers themselves run the role checks.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(auth.SecurityContextMiddleware(cfg.ContextBuilder))

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/customers/register", cfg.Auth.RegisterCustomer)
	authGroup.Post("/code/request", cfg.Auth.RequestCode)
	authGroup.Post("/code/exchange", cfg.Auth.ExchangeCode)
	authGroup.Post("/partners/login", cfg.Auth.PartnerLogin)
	authGroup.Post("/admin/login", cfg.Auth.AdminLogin)

	app.Get("/restaurants", cfg.Restaurants.ListRestaurants)
	app.Post("/restaurants", cfg.Restaurants.CreateRestaurant)
	app.Get("/restaurants/:id", cfg.Restaurants.GetRestaurant)
	app.Get("/restaurants/:id/tables", cfg.Restaurants.ListRestaurantTables)
	app.Get("/restaurants/:id/dishes", cfg.Restaurants.ListRestaurantDishes)
	app.Get("/dishes/:id", cfg.Restaurants.GetDish)
	app.Get("/tables/:id", cfg.Restaurants.GetDiningTable)

	app.Get("/orders/current", cfg.Orders.CurrentOrder)
	app.Post("/orders", cfg.Orders.OpenOrder)
	app.Post("/orders/current/dishes", cfg.Orders.AddDish)

	partnerGroup := app.Group("/partner")
	partnerGroup.Get("/restaurant", cfg.Restaurants.GetPartnerRestaurant)
	partnerGroup.Post("/dishes", cfg.Restaurants.CreatePartnerDish)
	partnerGroup.Post("/tables", cfg.Restaurants.CreatePartnerTable)
	partnerGroup.Get("/orders", cfg.Orders.ListPartnerOrders)
	partnerGroup.Post("/orders/:id/close", cfg.Orders.ClosePartnerOrder)

	adminGroup := app.Group("/admin")
	adminGroup.Post("/partners", cfg.Partners.CreatePartner)
}
