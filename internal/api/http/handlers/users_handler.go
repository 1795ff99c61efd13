package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/uta-gremial/reclamos-service/internal/api/dto"
	"github.com/uta-gremial/reclamos-service/internal/domain"
	"github.com/uta-gremial/reclamos-service/internal/service"
	apperrors "github.com/uta-gremial/reclamos-service/pkg/util"
)

// UsersHandler exposes the admin-only account management endpoints.
type UsersHandler struct {
	service *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{service: userService}
}

// List GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.UserView, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserView(&users[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create POST /users/create.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("username, email, password required", nil)
	}

	user, err := h.service.Create(c.UserContext(), service.UserCreateInput{
		Username:      req.Username,
		Email:         req.Email,
		Password:      req.Password,
		Role:          domain.Role(req.Role),
		LineaAsignada: req.LineaAsignada,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewUserView(user)})
}

// Delete DELETE /users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "user deleted"}})
}

// AssignLine PATCH /users/:id/assign-line?linea=A.
func (h *UsersHandler) AssignLine(c *fiber.Ctx) error {
	linea := c.Query("linea")
	if linea == "" {
		return apperrors.NewValidationError("linea query parameter required", nil)
	}
	user, err := h.service.AssignLine(c.UserContext(), c.Params("id"), linea)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewUserView(user)})
}

// ChangeRole PATCH /users/:id/role?role=ADMIN.
func (h *UsersHandler) ChangeRole(c *fiber.Ctx) error {
	role := c.Query("role")
	if role == "" {
		return apperrors.NewValidationError("role query parameter required", nil)
	}
	user, err := h.service.ChangeRole(c.UserContext(), c.Params("id"), domain.Role(role))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewUserView(user)})
}
