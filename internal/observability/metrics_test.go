package observability_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/uta-gremial/reclamos-service/internal/observability"
)

func TestSnapshot_ReturnsRecordedCounters(t *testing.T) {
	m := observability.NewMetrics()
	m.RecordRequest("/reclamos", "GET", 200, 5*time.Millisecond)
	m.RecordRequest("/reclamos", "GET", 200, 7*time.Millisecond)
	m.RecordRequest("/reclamos", "POST", 201, 9*time.Millisecond)
	m.RecordError("/reclamos", "POST", "FORBIDDEN")

	requests, errors := m.Snapshot()

	assert.Equal(t, int64(2), requests["/reclamos|GET|200"])
	assert.Equal(t, int64(1), requests["/reclamos|POST|201"])
	assert.Equal(t, int64(1), errors["/reclamos|POST|FORBIDDEN"])
}

func TestSnapshot_ReturnsCopies(t *testing.T) {
	m := observability.NewMetrics()
	m.RecordRequest("/reclamos", "GET", 200, time.Millisecond)

	requests, _ := m.Snapshot()
	requests["/reclamos|GET|200"] = 99

	fresh, _ := m.Snapshot()
	assert.Equal(t, int64(1), fresh["/reclamos|GET|200"])
}
