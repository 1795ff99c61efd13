package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/uta-gremial/reclamos-service/internal/api/dto"
	"github.com/uta-gremial/reclamos-service/internal/auth"
	"github.com/uta-gremial/reclamos-service/internal/service"
	apperrors "github.com/uta-gremial/reclamos-service/pkg/util"
)

// InvitationsHandler covers invitation issuance and redemption. Creation is
// admin-only; the token endpoints are public so invitees can land on the
// acceptance page before having an account.
type InvitationsHandler struct {
	service *service.InvitationService
}

// NewInvitationsHandler constructs handler.
func NewInvitationsHandler(invitationService *service.InvitationService) *InvitationsHandler {
	return &InvitationsHandler{service: invitationService}
}

// Create POST /invitations/create.
func (h *InvitationsHandler) Create(c *fiber.Ctx) error {
	admin, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateInvitationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("username, email, password required", nil)
	}
	if len(req.Password) < 6 {
		return apperrors.NewValidationError("password must be at least 6 characters", nil)
	}

	invitation, err := h.service.Create(c.UserContext(), admin.ID, service.InvitationCreateInput{
		Username:      req.Username,
		Email:         req.Email,
		Password:      req.Password,
		LineaAsignada: req.LineaAsignada,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewInvitationView(invitation)})
}

// Get GET /invitations/:token.
func (h *InvitationsHandler) Get(c *fiber.Ctx) error {
	invitation, err := h.service.GetByToken(c.UserContext(), c.Params("token"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewInvitationView(invitation)})
}

// Accept POST /invitations/:token/accept.
func (h *InvitationsHandler) Accept(c *fiber.Ctx) error {
	user, err := h.service.Accept(c.UserContext(), c.Params("token"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewUserView(user)})
}
