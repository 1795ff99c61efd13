package service_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/uta-gremial/reclamos-service/internal/domain"
	"github.com/uta-gremial/reclamos-service/internal/repository"
)

type mockReclamoRepo struct {
	mock.Mock
}

func (m *mockReclamoRepo) Create(ctx context.Context, reclamo *domain.Reclamo) error {
	return m.Called(ctx, reclamo).Error(0)
}

func (m *mockReclamoRepo) Update(ctx context.Context, reclamo *domain.Reclamo) error {
	return m.Called(ctx, reclamo).Error(0)
}

func (m *mockReclamoRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockReclamoRepo) GetByID(ctx context.Context, id string) (*domain.Reclamo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reclamo), args.Error(1)
}

func (m *mockReclamoRepo) ListWithFilter(ctx context.Context, filter repository.ReclamoFilter) ([]domain.Reclamo, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reclamo), args.Error(1)
}

func (m *mockReclamoRepo) CountByLineaCategoria(ctx context.Context, linea, categoria string) (int, error) {
	args := m.Called(ctx, linea, categoria)
	return args.Int(0), args.Error(1)
}

func (m *mockReclamoRepo) AppendComment(ctx context.Context, id string, comment domain.Comment) error {
	return m.Called(ctx, id, comment).Error(0)
}

func (m *mockReclamoRepo) AppendArchivo(ctx context.Context, id string, url string) error {
	return m.Called(ctx, id, url).Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type mockNotificationRepo struct {
	mock.Mock
}

func (m *mockNotificationRepo) Create(ctx context.Context, notification *domain.Notification) error {
	return m.Called(ctx, notification).Error(0)
}

func (m *mockNotificationRepo) ListForUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *mockNotificationRepo) MarkRead(ctx context.Context, id, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *mockNotificationRepo) UnreadCount(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockInvitationRepo struct {
	mock.Mock
}

func (m *mockInvitationRepo) Create(ctx context.Context, invitation *domain.Invitation) error {
	return m.Called(ctx, invitation).Error(0)
}

func (m *mockInvitationRepo) GetByToken(ctx context.Context, token string) (*domain.Invitation, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}

func (m *mockInvitationRepo) MarkAccepted(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockFileSaver struct {
	mock.Mock
}

func (m *mockFileSaver) Save(originalName string, content io.Reader) (string, error) {
	args := m.Called(originalName, content)
	return args.String(0), args.Error(1)
}
