package service_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/uta-gremial/reclamos-service/internal/domain"
	"github.com/uta-gremial/reclamos-service/internal/service"
)

func newNotificationService(repo *mockNotificationRepo) *service.NotificationService {
	return service.NewNotificationService(repo, nil, nil, zap.NewNop())
}

func TestNotify_PersistsUnreadNotification(t *testing.T) {
	repo := new(mockNotificationRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == "u-1" && n.ReclamoID == "r-1" && !n.Read && n.ID != ""
	})).Return(nil)

	svc := newNotificationService(repo)
	err := svc.Notify(context.Background(), "u-1", "r-1", "LíneaA-SEG-0001", "Nueva respuesta en tu reclamo LíneaA-SEG-0001")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListForUser_NilBecomesEmptySlice(t *testing.T) {
	repo := new(mockNotificationRepo)
	repo.On("ListForUser", mock.Anything, "u-1", 100).Return(nil, nil)

	svc := newNotificationService(repo)
	list, err := svc.ListForUser(context.Background(), "u-1")

	assert.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestMarkRead_ForeignNotificationSurfacesNotFound(t *testing.T) {
	repo := new(mockNotificationRepo)
	repo.On("MarkRead", mock.Anything, "n-1", "intruso").Return(pgx.ErrNoRows)

	svc := newNotificationService(repo)
	err := svc.MarkRead(context.Background(), "n-1", "intruso")

	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestUnreadCount_FallsBackToRepositoryWithoutCache(t *testing.T) {
	repo := new(mockNotificationRepo)
	repo.On("UnreadCount", mock.Anything, "u-1").Return(int64(3), nil)

	svc := newNotificationService(repo)
	count, err := svc.UnreadCount(context.Background(), "u-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
