package domain

import "time"

// Known estado values. The set is deliberately open: an admin may set any
// non-empty estado via PATCH, and only the transition onto EstadoResuelto has
// special behavior (the one-shot closure stamp).
const (
	EstadoPendiente = "Pendiente"
	EstadoEnProceso = "En Proceso"
	EstadoResuelto  = "Resuelto"
)

// Comment is a thread entry embedded in its owning reclamo. Comments are
// append-only; they are never edited or removed.
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

// Reclamo is the aggregate for a filed grievance. Comments and uploaded file
// URLs are embedded and have no independent lifecycle.
type Reclamo struct {
	ID                string
	NumeroReclamo     string
	Linea             string
	Categoria         string
	SectorEstacion    string
	Descripcion       string
	Archivos          []string
	Estado            string
	Responsable       *string
	Comentarios       []Comment
	CreadorID         *string
	CreadorUsername   *string
	FechaCreacion     time.Time
	FechaCierre       *time.Time
	Solucion          *string
	ResponsableCierre *string
}
