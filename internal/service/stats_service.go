package service

import (
	"context"
	"time"

	"github.com/uta-gremial/reclamos-service/internal/domain"
	"github.com/uta-gremial/reclamos-service/internal/repository"
)

// statsScanLimit bounds the number of rows the report walks.
const statsScanLimit = 10000

// Estadisticas is the aggregate report over visible complaints.
type Estadisticas struct {
	TotalReclamos            int            `json:"total_reclamos"`
	ReclamosPorLinea         map[string]int `json:"reclamos_por_linea"`
	ReclamosPorCategoria     map[string]int `json:"reclamos_por_categoria"`
	ReclamosPorEstado        map[string]int `json:"reclamos_por_estado"`
	TiempoPromedioResolucion *float64       `json:"tiempo_promedio_resolucion"`
	ReclamosPorMes           map[string]int `json:"reclamos_por_mes"`
}

// StatsService derives the statistics report.
type StatsService struct {
	reclamos repository.ReclamoRepository
}

// NewStatsService constructs the service.
func NewStatsService(reclamos repository.ReclamoRepository) *StatsService {
	return &StatsService{reclamos: reclamos}
}

// Compute aggregates the complaints visible to the actor: totals, per-line /
// category / estado / creation-month counts, and the mean resolution time in
// whole days over resolved complaints that carry a closure timestamp. The
// average is nil when no complaint qualifies.
func (s *StatsService) Compute(ctx context.Context, actor *domain.User) (*Estadisticas, error) {
	filter := repository.ReclamoFilter{Limit: statsScanLimit}
	scopeToActor(&filter, actor)

	reclamos, err := s.reclamos.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	stats := &Estadisticas{
		TotalReclamos:        len(reclamos),
		ReclamosPorLinea:     make(map[string]int),
		ReclamosPorCategoria: make(map[string]int),
		ReclamosPorEstado:    make(map[string]int),
		ReclamosPorMes:       make(map[string]int),
	}

	var totalDays, resolved int
	for i := range reclamos {
		r := &reclamos[i]
		stats.ReclamosPorLinea[r.Linea]++
		stats.ReclamosPorCategoria[r.Categoria]++
		stats.ReclamosPorEstado[r.Estado]++
		stats.ReclamosPorMes[r.FechaCreacion.Format("2006-01")]++

		if r.Estado == domain.EstadoResuelto && r.FechaCierre != nil {
			totalDays += wholeDays(r.FechaCreacion, *r.FechaCierre)
			resolved++
		}
	}

	if resolved > 0 {
		avg := float64(totalDays) / float64(resolved)
		stats.TiempoPromedioResolucion = &avg
	}
	return stats, nil
}

func wholeDays(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}
