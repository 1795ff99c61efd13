package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/uta-gremial/reclamos-service/internal/domain"
	apperrors "github.com/uta-gremial/reclamos-service/pkg/util"
)

// RequireAdmin ensures the authenticated user holds the ADMIN role.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := UserFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		switch user.Role {
		case domain.RoleAdmin:
			return c.Next()
		case domain.RoleSubmitter:
			return apperrors.NewForbidden("admin role required")
		default:
			return apperrors.NewForbidden("unknown role")
		}
	}
}

// RequireAuthenticated ensures a principal is present.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := UserFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}
