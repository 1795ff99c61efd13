package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/uta-gremial/reclamos-service/internal/api/http/handlers"
	"github.com/uta-gremial/reclamos-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health             *handlers.HealthHandler
	Auth               *handlers.AuthHandler
	Reclamos           *handlers.ReclamosHandler
	Notifications      *handlers.NotificationsHandler
	Users              *handlers.UsersHandler
	Invitations        *handlers.InvitationsHandler
	Stats              *handlers.StatsHandler
	AuthMiddleware     *auth.Middleware
	ReclamoRateLimiter fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Sistema de Reclamos Gremiales UTA"})
	})
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/register", cfg.Auth.Register)
	app.Post("/auth/login", cfg.Auth.Login)

	// Public so invitees can accept before having an account.
	app.Get("/invitations/:token", cfg.Invitations.Get)
	app.Post("/invitations/:token/accept", cfg.Invitations.Accept)

	authed := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	authed.Get("/auth/me", cfg.Auth.Me)
	authed.Patch("/users/me/password", cfg.Auth.ChangePassword)

	reclamos := authed.Group("/reclamos")
	reclamos.Post("", cfg.ReclamoRateLimiter, cfg.Reclamos.Create)
	reclamos.Get("", cfg.Reclamos.List)
	reclamos.Get("/:id", cfg.Reclamos.Get)
	reclamos.Patch("/:id", cfg.Reclamos.Update)
	reclamos.Delete("/:id", auth.RequireAdmin(), cfg.Reclamos.Delete)
	reclamos.Post("/:id/comentarios", cfg.Reclamos.AddComment)
	reclamos.Post("/:id/archivos", cfg.Reclamos.UploadArchivo)

	authed.Get("/notifications", cfg.Notifications.List)
	authed.Get("/notifications/unread/count", cfg.Notifications.UnreadCount)
	authed.Patch("/notifications/:id/read", cfg.Notifications.MarkRead)

	authed.Get("/estadisticas", cfg.Stats.Get)

	admin := authed.Group("", auth.RequireAdmin())
	admin.Get("/users", cfg.Users.List)
	admin.Post("/users/create", cfg.Users.Create)
	admin.Delete("/users/:id", cfg.Users.Delete)
	admin.Patch("/users/:id/assign-line", cfg.Users.AssignLine)
	admin.Patch("/users/:id/role", cfg.Users.ChangeRole)
	admin.Post("/invitations/create", cfg.Invitations.Create)
	admin.Get("/health/metrics", cfg.Health.Metrics)
}
