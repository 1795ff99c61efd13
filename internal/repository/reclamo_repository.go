package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uta-gremial/reclamos-service/internal/domain"
)

// ReclamoFilter captures listing parameters. Role scoping is expressed by the
// service through CreadorID and Linea before the query is built.
type ReclamoFilter struct {
	Linea       *string
	Categoria   *string
	Estado      *string
	Responsable *string
	CreadorID   *string
	Search      *string
	Limit       int
}

// ReclamoRepository encapsulates complaint persistence. Comments and file
// URLs live inside the reclamo row, so appends are row updates rather than
// inserts into side tables.
type ReclamoRepository interface {
	Create(ctx context.Context, reclamo *domain.Reclamo) error
	Update(ctx context.Context, reclamo *domain.Reclamo) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Reclamo, error)
	ListWithFilter(ctx context.Context, filter ReclamoFilter) ([]domain.Reclamo, error)
	CountByLineaCategoria(ctx context.Context, linea, categoria string) (int, error)
	AppendComment(ctx context.Context, id string, comment domain.Comment) error
	AppendArchivo(ctx context.Context, id string, url string) error
}

type reclamoRepository struct {
	pool *pgxpool.Pool
}

// NewReclamoRepository instantiates the repository.
func NewReclamoRepository(pool *pgxpool.Pool) ReclamoRepository {
	return &reclamoRepository{pool: pool}
}

const reclamoColumns = `id, numero_reclamo, linea, categoria, sector_estacion, descripcion,
               archivos, estado, responsable, comentarios, creador_id, creador_username,
               fecha_creacion, fecha_cierre, solucion, responsable_cierre`

func (r *reclamoRepository) Create(ctx context.Context, reclamo *domain.Reclamo) error {
	comentarios, err := marshalComments(reclamo.Comentarios)
	if err != nil {
		return err
	}
	const query = `
        INSERT INTO reclamos (id, numero_reclamo, linea, categoria, sector_estacion, descripcion,
                              archivos, estado, responsable, comentarios, creador_id, creador_username,
                              fecha_creacion, fecha_cierre, solucion, responsable_cierre)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`
	_, err = r.pool.Exec(ctx, query,
		reclamo.ID,
		reclamo.NumeroReclamo,
		reclamo.Linea,
		reclamo.Categoria,
		reclamo.SectorEstacion,
		reclamo.Descripcion,
		reclamo.Archivos,
		reclamo.Estado,
		reclamo.Responsable,
		comentarios,
		reclamo.CreadorID,
		reclamo.CreadorUsername,
		reclamo.FechaCreacion,
		reclamo.FechaCierre,
		reclamo.Solucion,
		reclamo.ResponsableCierre,
	)
	return err
}

func (r *reclamoRepository) Update(ctx context.Context, reclamo *domain.Reclamo) error {
	const query = `
        UPDATE reclamos SET estado=$1, responsable=$2, solucion=$3, responsable_cierre=$4, fecha_cierre=$5
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		reclamo.Estado,
		reclamo.Responsable,
		reclamo.Solucion,
		reclamo.ResponsableCierre,
		reclamo.FechaCierre,
		reclamo.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *reclamoRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM reclamos WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *reclamoRepository) GetByID(ctx context.Context, id string) (*domain.Reclamo, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+reclamoColumns+` FROM reclamos WHERE id=$1`, id)
	return scanReclamo(row)
}

func (r *reclamoRepository) ListWithFilter(ctx context.Context, filter ReclamoFilter) ([]domain.Reclamo, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Linea != nil {
		args = append(args, *filter.Linea)
		clauses = append(clauses, fmt.Sprintf("linea=$%d", len(args)))
	}
	if filter.Categoria != nil {
		args = append(args, *filter.Categoria)
		clauses = append(clauses, fmt.Sprintf("categoria=$%d", len(args)))
	}
	if filter.Estado != nil {
		args = append(args, *filter.Estado)
		clauses = append(clauses, fmt.Sprintf("estado=$%d", len(args)))
	}
	if filter.Responsable != nil {
		args = append(args, *filter.Responsable)
		clauses = append(clauses, fmt.Sprintf("responsable=$%d", len(args)))
	}
	if filter.CreadorID != nil {
		args = append(args, *filter.CreadorID)
		clauses = append(clauses, fmt.Sprintf("creador_id=$%d", len(args)))
	}
	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		search := "%" + escapeLike(strings.ToLower(strings.TrimSpace(*filter.Search))) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf(
			"(LOWER(numero_reclamo) LIKE %s OR LOWER(descripcion) LIKE %s OR LOWER(sector_estacion) LIKE %s)",
			placeholder, placeholder, placeholder))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 1000
	}

	query := fmt.Sprintf(`SELECT %s FROM reclamos WHERE %s ORDER BY fecha_creacion DESC LIMIT %d`,
		reclamoColumns, strings.Join(clauses, " AND "), limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Reclamo
	for rows.Next() {
		reclamo, err := scanReclamo(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *reclamo)
	}
	return result, rows.Err()
}

func (r *reclamoRepository) CountByLineaCategoria(ctx context.Context, linea, categoria string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM reclamos WHERE linea=$1 AND categoria=$2`, linea, categoria,
	).Scan(&count)
	return count, err
}

func (r *reclamoRepository) AppendComment(ctx context.Context, id string, comment domain.Comment) error {
	payload, err := json.Marshal(comment)
	if err != nil {
		return err
	}
	cmd, err := r.pool.Exec(ctx,
		`UPDATE reclamos SET comentarios = comentarios || jsonb_build_array($2::jsonb) WHERE id=$1`,
		id, payload)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *reclamoRepository) AppendArchivo(ctx context.Context, id string, url string) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE reclamos SET archivos = array_append(archivos, $2) WHERE id=$1`, id, url)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// escapeLike neutralizes LIKE metacharacters so a search term matches
// literally instead of acting as a wildcard.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func scanReclamo(row pgx.Row) (*domain.Reclamo, error) {
	var reclamo domain.Reclamo
	var comentarios []byte
	if err := row.Scan(
		&reclamo.ID,
		&reclamo.NumeroReclamo,
		&reclamo.Linea,
		&reclamo.Categoria,
		&reclamo.SectorEstacion,
		&reclamo.Descripcion,
		&reclamo.Archivos,
		&reclamo.Estado,
		&reclamo.Responsable,
		&comentarios,
		&reclamo.CreadorID,
		&reclamo.CreadorUsername,
		&reclamo.FechaCreacion,
		&reclamo.FechaCierre,
		&reclamo.Solucion,
		&reclamo.ResponsableCierre,
	); err != nil {
		return nil, err
	}
	if len(comentarios) > 0 {
		if err := json.Unmarshal(comentarios, &reclamo.Comentarios); err != nil {
			return nil, fmt.Errorf("decode comentarios: %w", err)
		}
	}
	return &reclamo, nil
}

func marshalComments(comments []domain.Comment) ([]byte, error) {
	if comments == nil {
		comments = []domain.Comment{}
	}
	return json.Marshal(comments)
}
