package dto

import (
	"time"

	"github.com/uta-gremial/reclamos-service/internal/domain"
)

// NotificationResponse mirrors a stored notification.
type NotificationResponse struct {
	ID            string    `json:"id"`
	ReclamoID     string    `json:"reclamo_id"`
	NumeroReclamo string    `json:"numero_reclamo"`
	Message       string    `json:"message"`
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewNotificationResponse projects a domain notification.
func NewNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:            n.ID,
		ReclamoID:     n.ReclamoID,
		NumeroReclamo: n.NumeroReclamo,
		Message:       n.Message,
		Read:          n.Read,
		CreatedAt:     n.CreatedAt,
	}
}
