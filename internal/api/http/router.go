package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hotel-booking/internal/api/http/handlers"
	"github.com/spec-kit/hotel-booking/internal/auth"
	"github.com/spec-kit/hotel-booking/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Hotels         *handlers.HotelsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Protected routes compose the auth stage
// before the role gate explicitly; the gate never runs without the verifier
// ahead of it.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	if cfg.Health != nil {
		app.Get("/health/live", cfg.Health.Live)
		app.Get("/health/ready", cfg.Health.Ready)
	}

	api := app.Group("/api")

	users := api.Group("/users")
	users.Post("/register", cfg.Users.Register)
	users.Post("/login", cfg.Users.Login)
	users.Get("/:id", cfg.AuthMiddleware.Handle(), auth.RequireRole(domain.RoleAdmin), cfg.Users.GetByID)

	hotels := api.Group("/hotels")
	hotels.Get("/", cfg.Hotels.List)
	hotels.Get("/:id", cfg.Hotels.Get)

	adminHotels := hotels.Group("", cfg.AuthMiddleware.Handle(), auth.RequireRole(domain.RoleAdmin))
	adminHotels.Post("/", cfg.Hotels.Create)
	adminHotels.Put("/:id", cfg.Hotels.Update)
	adminHotels.Delete("/:id", cfg.Hotels.Delete)
}
