package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/uta-gremial/reclamos-service/internal/domain"
	"github.com/uta-gremial/reclamos-service/internal/repository"
	"github.com/uta-gremial/reclamos-service/internal/service"
)

func TestStats_EmptyDataset(t *testing.T) {
	repo := new(mockReclamoRepo)
	repo.On("ListWithFilter", mock.Anything, mock.Anything).Return([]domain.Reclamo{}, nil)

	stats, err := service.NewStatsService(repo).Compute(context.Background(), adminActor())

	assert.NoError(t, err)
	assert.Equal(t, 0, stats.TotalReclamos)
	assert.Empty(t, stats.ReclamosPorLinea)
	assert.Nil(t, stats.TiempoPromedioResolucion)
}

func TestStats_AveragesResolutionInWholeDays(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	closedAfter := func(days int) *time.Time {
		closure := base.Add(time.Duration(days) * 24 * time.Hour)
		return &closure
	}

	repo := new(mockReclamoRepo)
	repo.On("ListWithFilter", mock.Anything, mock.Anything).Return([]domain.Reclamo{
		{Linea: "A", Categoria: "Higiene y salubridad", Estado: domain.EstadoResuelto, FechaCreacion: base, FechaCierre: closedAfter(2)},
		{Linea: "A", Categoria: "Seguridad y prevención", Estado: domain.EstadoResuelto, FechaCreacion: base, FechaCierre: closedAfter(4)},
		{Linea: "B", Categoria: "Seguridad y prevención", Estado: domain.EstadoPendiente, FechaCreacion: base},
	}, nil)

	stats, err := service.NewStatsService(repo).Compute(context.Background(), adminActor())

	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalReclamos)
	assert.Equal(t, 2, stats.ReclamosPorLinea["A"])
	assert.Equal(t, 1, stats.ReclamosPorLinea["B"])
	assert.Equal(t, 2, stats.ReclamosPorCategoria["Seguridad y prevención"])
	assert.Equal(t, 2, stats.ReclamosPorEstado[domain.EstadoResuelto])
	assert.Equal(t, 1, stats.ReclamosPorEstado[domain.EstadoPendiente])
	assert.Equal(t, 3, stats.ReclamosPorMes["2026-03"])
	if assert.NotNil(t, stats.TiempoPromedioResolucion) {
		assert.InDelta(t, 3.0, *stats.TiempoPromedioResolucion, 0.0001)
	}
}

// Resolved complaints without a recorded closure never feed the average.
func TestStats_ResolvedWithoutClosureExcludedFromAverage(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := new(mockReclamoRepo)
	repo.On("ListWithFilter", mock.Anything, mock.Anything).Return([]domain.Reclamo{
		{Linea: "A", Categoria: "Otros reclamos gremiales", Estado: domain.EstadoResuelto, FechaCreacion: base},
	}, nil)

	stats, err := service.NewStatsService(repo).Compute(context.Background(), adminActor())

	assert.NoError(t, err)
	assert.Equal(t, 1, stats.TotalReclamos)
	assert.Nil(t, stats.TiempoPromedioResolucion)
}

func TestStats_SubmitterScopedToOwnRecords(t *testing.T) {
	actor := submitterActor("C")
	repo := new(mockReclamoRepo)
	repo.On("ListWithFilter", mock.Anything, mock.MatchedBy(func(filter repository.ReclamoFilter) bool {
		return filter.CreadorID != nil && *filter.CreadorID == actor.ID &&
			filter.Linea != nil && *filter.Linea == "C" &&
			filter.Limit == 10000
	})).Return([]domain.Reclamo{}, nil)

	_, err := service.NewStatsService(repo).Compute(context.Background(), actor)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
