package service

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/uta-gremial/reclamos-service/internal/domain"
	"github.com/uta-gremial/reclamos-service/internal/events"
	"github.com/uta-gremial/reclamos-service/internal/numbering"
	"github.com/uta-gremial/reclamos-service/internal/repository"
	apperrors "github.com/uta-gremial/reclamos-service/pkg/util"
)

// FileSaver abstracts the upload store.
type FileSaver interface {
	Save(originalName string, content io.Reader) (string, error)
}

// ReclamoService coordinates complaint workflows with role-scoped visibility.
type ReclamoService struct {
	reclamos   repository.ReclamoRepository
	files      FileSaver
	dispatcher events.Dispatcher
	sanitizer  *bluemonday.Policy
}

// ReclamoDependencies bundles collaborators for the service.
type ReclamoDependencies struct {
	ReclamoRepo repository.ReclamoRepository
	Files       FileSaver
	Dispatcher  events.Dispatcher
}

// NewReclamoService constructs the service.
func NewReclamoService(deps ReclamoDependencies) *ReclamoService {
	return &ReclamoService{
		reclamos:   deps.ReclamoRepo,
		files:      deps.Files,
		dispatcher: deps.Dispatcher,
		sanitizer:  bluemonday.StrictPolicy(),
	}
}

// ReclamoCreateInput describes a new complaint.
type ReclamoCreateInput struct {
	Linea          string
	Categoria      string
	SectorEstacion string
	Descripcion    string
}

// ReclamoListFilter describes caller-supplied list filters. For submitters
// the line filter is overridden by their assignment and results are always
// restricted to their own records.
type ReclamoListFilter struct {
	Linea       *string
	Categoria   *string
	Estado      *string
	Responsable *string
	Search      *string
}

// ReclamoPatch carries the admin-updatable fields; nil means untouched.
type ReclamoPatch struct {
	Estado            *string
	Responsable       *string
	Solucion          *string
	ResponsableCierre *string
}

// Create files a new complaint. Submitters must have an assigned line and may
// only file against it; the human-readable number is derived from the current
// (linea, categoria) count.
func (s *ReclamoService) Create(ctx context.Context, actor *domain.User, input ReclamoCreateInput) (*domain.Reclamo, error) {
	if actor.Role == domain.RoleSubmitter {
		if actor.LineaAsignada == nil {
			return nil, apperrors.NewForbidden("no line assigned")
		}
		if input.Linea != *actor.LineaAsignada {
			return nil, apperrors.NewForbidden("cannot file a reclamo for another line")
		}
	}

	count, err := s.reclamos.CountByLineaCategoria(ctx, input.Linea, input.Categoria)
	if err != nil {
		return nil, err
	}

	creadorID := actor.ID
	creadorUsername := actor.Username
	reclamo := &domain.Reclamo{
		ID:              uuid.NewString(),
		NumeroReclamo:   numbering.Generate(input.Linea, input.Categoria, count+1),
		Linea:           input.Linea,
		Categoria:       input.Categoria,
		SectorEstacion:  strings.TrimSpace(input.SectorEstacion),
		Descripcion:     s.clean(input.Descripcion),
		Archivos:        []string{},
		Estado:          domain.EstadoPendiente,
		Comentarios:     []domain.Comment{},
		CreadorID:       &creadorID,
		CreadorUsername: &creadorUsername,
		FechaCreacion:   time.Now().UTC(),
	}
	if err := s.reclamos.Create(ctx, reclamo); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:          events.EventReclamoCreated,
		ReclamoID:     reclamo.ID,
		NumeroReclamo: reclamo.NumeroReclamo,
		ActorID:       actor.ID,
		ActorRole:     actor.Role,
		Payload: events.ReclamoCreatedPayload{
			Linea:     reclamo.Linea,
			Categoria: reclamo.Categoria,
		},
	})
	return reclamo, nil
}

// List returns complaints visible to the actor, newest first, capped at 1000.
func (s *ReclamoService) List(ctx context.Context, actor *domain.User, filter ReclamoListFilter) ([]domain.Reclamo, error) {
	repoFilter := repository.ReclamoFilter{
		Linea:       filter.Linea,
		Categoria:   filter.Categoria,
		Estado:      filter.Estado,
		Responsable: filter.Responsable,
		Search:      filter.Search,
		Limit:       1000,
	}
	scopeToActor(&repoFilter, actor)
	reclamos, err := s.reclamos.ListWithFilter(ctx, repoFilter)
	if err != nil {
		return nil, err
	}
	if reclamos == nil {
		reclamos = []domain.Reclamo{}
	}
	return reclamos, nil
}

// Get fetches one complaint, enforcing submitter ownership.
func (s *ReclamoService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Reclamo, error) {
	reclamo, err := s.reclamos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleSubmitter && !createdBy(reclamo, actor.ID) {
		return nil, apperrors.NewForbidden("reclamo belongs to another user")
	}
	return reclamo, nil
}

// Update applies an admin patch. The closure timestamp is stamped exactly
// once, on the first transition to Resuelto, and never cleared afterwards.
func (s *ReclamoService) Update(ctx context.Context, actor *domain.User, id string, patch ReclamoPatch) (*domain.Reclamo, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, apperrors.NewForbidden("admin role required")
	}
	reclamo, err := s.reclamos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldEstado := reclamo.Estado
	if patch.Estado != nil {
		if strings.TrimSpace(*patch.Estado) == "" {
			return nil, apperrors.NewValidationError("estado cannot be empty", nil)
		}
		reclamo.Estado = *patch.Estado
	}
	if patch.Responsable != nil {
		reclamo.Responsable = patch.Responsable
	}
	if patch.Solucion != nil {
		clean := s.clean(*patch.Solucion)
		reclamo.Solucion = &clean
	}
	if patch.ResponsableCierre != nil {
		reclamo.ResponsableCierre = patch.ResponsableCierre
	}
	if reclamo.Estado == domain.EstadoResuelto && reclamo.FechaCierre == nil {
		now := time.Now().UTC()
		reclamo.FechaCierre = &now
	}

	if err := s.reclamos.Update(ctx, reclamo); err != nil {
		return nil, err
	}

	if reclamo.Estado != oldEstado {
		s.publish(ctx, events.Event{
			Type:          events.EventReclamoEstadoChange,
			ReclamoID:     reclamo.ID,
			NumeroReclamo: reclamo.NumeroReclamo,
			ActorID:       actor.ID,
			ActorRole:     actor.Role,
			Payload: events.EstadoChangedPayload{
				OldEstado: oldEstado,
				NewEstado: reclamo.Estado,
			},
		})
	}
	return reclamo, nil
}

// AddComment appends a comment. Submitters may only comment on their own
// complaints. The comment event carries the creator so an admin response
// turns into a notification for them.
func (s *ReclamoService) AddComment(ctx context.Context, actor *domain.User, id, text, author string) (*domain.Comment, error) {
	reclamo, err := s.reclamos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleSubmitter && !createdBy(reclamo, actor.ID) {
		return nil, apperrors.NewForbidden("reclamo belongs to another user")
	}

	comment := domain.Comment{
		ID:        uuid.NewString(),
		Text:      s.clean(text),
		Author:    strings.TrimSpace(author),
		Timestamp: time.Now().UTC(),
	}
	if err := s.reclamos.AppendComment(ctx, reclamo.ID, comment); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:          events.EventCommentAdded,
		ReclamoID:     reclamo.ID,
		NumeroReclamo: reclamo.NumeroReclamo,
		ActorID:       actor.ID,
		ActorRole:     actor.Role,
		Payload: events.CommentAddedPayload{
			Comment:   comment,
			CreadorID: reclamo.CreadorID,
		},
	})
	return &comment, nil
}

// AddArchivo stores an uploaded file and appends its public URL.
func (s *ReclamoService) AddArchivo(ctx context.Context, id, originalName string, content io.Reader) (string, error) {
	if _, err := s.reclamos.GetByID(ctx, id); err != nil {
		return "", err
	}
	url, err := s.files.Save(originalName, content)
	if err != nil {
		return "", err
	}
	if err := s.reclamos.AppendArchivo(ctx, id, url); err != nil {
		return "", err
	}
	return url, nil
}

// Delete removes a complaint.
func (s *ReclamoService) Delete(ctx context.Context, id string) error {
	return s.reclamos.Delete(ctx, id)
}

func (s *ReclamoService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.Timestamp = time.Now().UTC()
	_ = s.dispatcher.Publish(ctx, event)
}

func (s *ReclamoService) clean(text string) string {
	return strings.TrimSpace(s.sanitizer.Sanitize(text))
}

// scopeToActor narrows a repository filter to what the actor may see. A
// submitter is always pinned to their own records and, when assigned, their
// line overrides any caller-supplied line filter.
func scopeToActor(filter *repository.ReclamoFilter, actor *domain.User) {
	if actor.Role != domain.RoleSubmitter {
		return
	}
	creadorID := actor.ID
	filter.CreadorID = &creadorID
	if actor.LineaAsignada != nil {
		filter.Linea = actor.LineaAsignada
	}
}

func createdBy(reclamo *domain.Reclamo, userID string) bool {
	return reclamo.CreadorID != nil && *reclamo.CreadorID == userID
}
