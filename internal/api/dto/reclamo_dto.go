package dto

import (
	"time"

	"github.com/uta-gremial/reclamos-service/internal/domain"
)

// CreateReclamoRequest payload for filing a complaint.
type CreateReclamoRequest struct {
	Linea          string `json:"linea"`
	Categoria      string `json:"categoria"`
	SectorEstacion string `json:"sector_estacion"`
	Descripcion    string `json:"descripcion"`
}

// UpdateReclamoRequest payload for the admin PATCH; nil fields are untouched.
type UpdateReclamoRequest struct {
	Estado            *string `json:"estado"`
	Responsable       *string `json:"responsable"`
	Solucion          *string `json:"solucion"`
	ResponsableCierre *string `json:"responsable_cierre"`
}

// CreateCommentRequest payload for appending a comment.
type CreateCommentRequest struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// CommentResponse mirrors an embedded comment.
type CommentResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

// ReclamoResponse is the full complaint projection.
type ReclamoResponse struct {
	ID                string            `json:"id"`
	NumeroReclamo     string            `json:"numero_reclamo"`
	Linea             string            `json:"linea"`
	Categoria         string            `json:"categoria"`
	SectorEstacion    string            `json:"sector_estacion"`
	Descripcion       string            `json:"descripcion"`
	Archivos          []string          `json:"archivos"`
	Estado            string            `json:"estado"`
	Responsable       *string           `json:"responsable"`
	Comentarios       []CommentResponse `json:"comentarios"`
	CreadorID         *string           `json:"creador_id"`
	CreadorUsername   *string           `json:"creador_username"`
	FechaCreacion     time.Time         `json:"fecha_creacion"`
	FechaCierre       *time.Time        `json:"fecha_cierre"`
	Solucion          *string           `json:"solucion"`
	ResponsableCierre *string           `json:"responsable_cierre"`
}

// NewReclamoResponse projects a domain reclamo.
func NewReclamoResponse(reclamo *domain.Reclamo) ReclamoResponse {
	comentarios := make([]CommentResponse, 0, len(reclamo.Comentarios))
	for _, c := range reclamo.Comentarios {
		comentarios = append(comentarios, CommentResponse(c))
	}
	archivos := reclamo.Archivos
	if archivos == nil {
		archivos = []string{}
	}
	return ReclamoResponse{
		ID:                reclamo.ID,
		NumeroReclamo:     reclamo.NumeroReclamo,
		Linea:             reclamo.Linea,
		Categoria:         reclamo.Categoria,
		SectorEstacion:    reclamo.SectorEstacion,
		Descripcion:       reclamo.Descripcion,
		Archivos:          archivos,
		Estado:            reclamo.Estado,
		Responsable:       reclamo.Responsable,
		Comentarios:       comentarios,
		CreadorID:         reclamo.CreadorID,
		CreadorUsername:   reclamo.CreadorUsername,
		FechaCreacion:     reclamo.FechaCreacion,
		FechaCierre:       reclamo.FechaCierre,
		Solucion:          reclamo.Solucion,
		ResponsableCierre: reclamo.ResponsableCierre,
	}
}
