package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uta-gremial/reclamos-service/internal/domain"
)

// InvitationRepository persists admin-issued account invitations.
type InvitationRepository interface {
	Create(ctx context.Context, invitation *domain.Invitation) error
	GetByToken(ctx context.Context, token string) (*domain.Invitation, error)
	MarkAccepted(ctx context.Context, id string) error
}

type invitationRepository struct {
	pool *pgxpool.Pool
}

// NewInvitationRepository returns a Postgres-backed implementation.
func NewInvitationRepository(pool *pgxpool.Pool) InvitationRepository {
	return &invitationRepository{pool: pool}
}

func (r *invitationRepository) Create(ctx context.Context, invitation *domain.Invitation) error {
	const query = `
        INSERT INTO invitations (id, token, username, email, password_hash, linea_asignada, created_by, accepted, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`
	_, err := r.pool.Exec(ctx, query,
		invitation.ID,
		invitation.Token,
		invitation.Username,
		invitation.Email,
		invitation.PasswordHash,
		invitation.LineaAsignada,
		invitation.CreatedBy,
		invitation.Accepted,
		invitation.CreatedAt,
	)
	return err
}

func (r *invitationRepository) GetByToken(ctx context.Context, token string) (*domain.Invitation, error) {
	const query = `
        SELECT id, token, username, email, password_hash, linea_asignada, created_by, accepted, created_at
        FROM invitations WHERE token=$1`
	var inv domain.Invitation
	if err := r.pool.QueryRow(ctx, query, token).Scan(
		&inv.ID,
		&inv.Token,
		&inv.Username,
		&inv.Email,
		&inv.PasswordHash,
		&inv.LineaAsignada,
		&inv.CreatedBy,
		&inv.Accepted,
		&inv.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invitationRepository) MarkAccepted(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE invitations SET accepted=TRUE WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
