package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/uta-gremial/reclamos-service/internal/auth"
	"github.com/uta-gremial/reclamos-service/internal/domain"
	"github.com/uta-gremial/reclamos-service/internal/repository"
	apperrors "github.com/uta-gremial/reclamos-service/pkg/util"
)

// InvitationService issues and redeems single-use account invitations. The
// invite carries the password hash from the start so the plaintext never
// outlives the admin's create request.
type InvitationService struct {
	invitations repository.InvitationRepository
	users       repository.UserRepository
	bcryptCost  int
}

// NewInvitationService constructs the service.
func NewInvitationService(invitations repository.InvitationRepository, users repository.UserRepository, bcryptCost int) *InvitationService {
	return &InvitationService{invitations: invitations, users: users, bcryptCost: bcryptCost}
}

// InvitationCreateInput describes an invitation offer.
type InvitationCreateInput struct {
	Username      string
	Email         string
	Password      string
	LineaAsignada *string
}

// Create issues an invitation on behalf of an admin.
func (s *InvitationService) Create(ctx context.Context, createdBy string, input InvitationCreateInput) (*domain.Invitation, error) {
	if err := s.checkAvailable(ctx, input.Username, input.Email); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	invitation := &domain.Invitation{
		ID:            uuid.NewString(),
		Token:         uuid.NewString(),
		Username:      input.Username,
		Email:         input.Email,
		PasswordHash:  hash,
		LineaAsignada: input.LineaAsignada,
		CreatedBy:     createdBy,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.invitations.Create(ctx, invitation); err != nil {
		return nil, err
	}
	return invitation, nil
}

// GetByToken resolves an invitation for the public acceptance page.
func (s *InvitationService) GetByToken(ctx context.Context, token string) (*domain.Invitation, error) {
	return s.invitations.GetByToken(ctx, token)
}

// Accept redeems the invitation: creates the submitter account and marks the
// invitation spent. A second acceptance conflicts.
func (s *InvitationService) Accept(ctx context.Context, token string) (*domain.User, error) {
	invitation, err := s.invitations.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if invitation.Accepted {
		return nil, apperrors.NewConflict("invitation already accepted", nil)
	}
	if err := s.checkAvailable(ctx, invitation.Username, invitation.Email); err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:            uuid.NewString(),
		Username:      invitation.Username,
		Email:         invitation.Email,
		PasswordHash:  invitation.PasswordHash,
		Role:          domain.RoleSubmitter,
		LineaAsignada: invitation.LineaAsignada,
		IsActive:      true,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	if err := s.invitations.MarkAccepted(ctx, invitation.ID); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *InvitationService) checkAvailable(ctx context.Context, username, email string) error {
	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return apperrors.NewConflict("username already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	return nil
}
