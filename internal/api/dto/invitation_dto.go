package dto

import (
	"time"

	"github.com/uta-gremial/reclamos-service/internal/domain"
)

// CreateInvitationRequest payload for admin-issued invitations.
type CreateInvitationRequest struct {
	Username      string  `json:"username"`
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	LineaAsignada *string `json:"linea_asignada"`
}

// CreateUserRequest payload for direct account creation by an admin.
type CreateUserRequest struct {
	Username      string  `json:"username"`
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	Role          string  `json:"role"`
	LineaAsignada *string `json:"linea_asignada"`
}

// InvitationView is the public projection shown on the acceptance page.
type InvitationView struct {
	Token         string    `json:"token"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	LineaAsignada *string   `json:"linea_asignada"`
	Accepted      bool      `json:"accepted"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewInvitationView projects a domain invitation without the hash.
func NewInvitationView(inv *domain.Invitation) InvitationView {
	return InvitationView{
		Token:         inv.Token,
		Username:      inv.Username,
		Email:         inv.Email,
		LineaAsignada: inv.LineaAsignada,
		Accepted:      inv.Accepted,
		CreatedAt:     inv.CreatedAt,
	}
}
