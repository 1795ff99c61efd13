package events

import (
	"time"

	"github.com/uta-gremial/reclamos-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventReclamoCreated      EventType = "reclamo_created"
	EventReclamoEstadoChange EventType = "reclamo_estado_changed"
	EventCommentAdded        EventType = "reclamo_comment_added"
)

// Event represents a domain event emitted by services.
type Event struct {
	Type          EventType
	ReclamoID     string
	NumeroReclamo string
	ActorID       string
	ActorRole     domain.Role
	Timestamp     time.Time
	Payload       interface{}
}

// ReclamoCreatedPayload carries creation metadata.
type ReclamoCreatedPayload struct {
	Linea     string
	Categoria string
}

// EstadoChangedPayload carries an estado transition.
type EstadoChangedPayload struct {
	OldEstado string
	NewEstado string
}

// CommentAddedPayload carries the appended comment and the complaint creator,
// when one is recorded.
type CommentAddedPayload struct {
	Comment   domain.Comment
	CreadorID *string
}
