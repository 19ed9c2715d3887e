package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nafirj-2103/nafi-rj-portfolio/internal/api/http/handlers"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/auth"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/ratelimit"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Inquiries      *handlers.InquiriesHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
	Limiter        *ratelimit.Limiter
}

// RegisterRoutes wires HTTP routes. POST /api/inquiries is the only
// public mutation; everything under management requires a bearer token.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	api := app.Group("/api")

	api.Get("/health", cfg.Health.Status)

	api.Post("/inquiries", rateLimitMiddleware(cfg.Limiter), cfg.Inquiries.Submit)
	api.Get("/inquiries", cfg.AuthMiddleware.Handle, cfg.Inquiries.List)
	api.Get("/inquiries/:id", cfg.AuthMiddleware.Handle, cfg.Inquiries.Get)
	api.Post("/inquiries/:id/reply", cfg.AuthMiddleware.Handle, cfg.Inquiries.Reply)
	api.Post("/inquiries/:id/close", cfg.AuthMiddleware.Handle, cfg.Inquiries.Close)

	adminGroup := api.Group("/admin")
	adminGroup.Post("/register", cfg.Admin.Register)
	adminGroup.Post("/login", cfg.Admin.Login)
}
