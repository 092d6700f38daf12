package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/daily-feed-api/internal/auth"
	"github.com/noah-isme/daily-feed-api/internal/config"
	"github.com/noah-isme/daily-feed-api/internal/handler"
	"github.com/noah-isme/daily-feed-api/internal/middleware"
	"github.com/noah-isme/daily-feed-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	StudentHandler *handler.StudentHandler
	FeedHandler    *handler.FeedHandler

	// AuthMiddleware overrides the bearer middleware when set (tests).
	AuthMiddleware fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
//
// Route table:
//
//	GET  /health                           — no auth
//	GET  /metrics                          — no auth, Prometheus scrape
//	GET  /students                         — no auth
//	POST /students/:student_id/daily-feed  — teacher role required
//	GET  /students/:student_id/daily-feed  — any authenticated role
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/health", handler.HealthCheck())
	app.Get("/metrics", observability.MetricsHandler())

	bearer := deps.AuthMiddleware
	if bearer == nil {
		bearer = middleware.BearerAuth(auth.NewRegistry(cfg.BearerTokens()))
	}

	if deps.StudentHandler != nil {
		app.Get("/students", deps.StudentHandler.List)
	}

	if deps.FeedHandler != nil {
		app.Post("/students/:student_id/daily-feed", bearer, middleware.RequireRole(auth.RoleTeacher), deps.FeedHandler.Create)
		app.Get("/students/:student_id/daily-feed", bearer, deps.FeedHandler.List)
	}
}
