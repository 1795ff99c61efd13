package service_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/uta-gremial/reclamos-service/internal/domain"
	"github.com/uta-gremial/reclamos-service/internal/service"
)

func TestUserCreate_DefaultsRoleToSubmitter(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByUsername", mock.Anything, "nuevo").Return(nil, pgx.ErrNoRows)
	users.On("GetByEmail", mock.Anything, "nuevo@uta.com").Return(nil, pgx.ErrNoRows)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleSubmitter && u.IsActive
	})).Return(nil)

	svc := service.NewUserService(users, bcrypt.MinCost)
	user, err := svc.Create(context.Background(), service.UserCreateInput{
		Username: "nuevo",
		Email:    "nuevo@uta.com",
		Password: "clave123",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleSubmitter, user.Role)
	users.AssertExpectations(t)
}

func TestUserCreate_RejectsUnknownRole(t *testing.T) {
	users := new(mockUserRepo)
	svc := service.NewUserService(users, bcrypt.MinCost)

	_, err := svc.Create(context.Background(), service.UserCreateInput{
		Username: "nuevo",
		Email:    "nuevo@uta.com",
		Password: "clave123",
		Role:     domain.Role("SUPERVISOR"),
	})

	assertErrorCode(t, err, "VALIDATION_FAILED")
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAssignLine_UpdatesAssignment(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, "u-1").Return(&domain.User{ID: "u-1", Role: domain.RoleSubmitter}, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.LineaAsignada != nil && *u.LineaAsignada == "C"
	})).Return(nil)

	svc := service.NewUserService(users, bcrypt.MinCost)
	user, err := svc.AssignLine(context.Background(), "u-1", "C")

	assert.NoError(t, err)
	if assert.NotNil(t, user.LineaAsignada) {
		assert.Equal(t, "C", *user.LineaAsignada)
	}
	users.AssertExpectations(t)
}

func TestChangeRole_ValidRole(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, "u-1").Return(&domain.User{ID: "u-1", Role: domain.RoleSubmitter}, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleAdmin
	})).Return(nil)

	svc := service.NewUserService(users, bcrypt.MinCost)
	user, err := svc.ChangeRole(context.Background(), "u-1", domain.RoleAdmin)

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
}

func TestChangeRole_RejectsUnknownRole(t *testing.T) {
	users := new(mockUserRepo)
	svc := service.NewUserService(users, bcrypt.MinCost)

	_, err := svc.ChangeRole(context.Background(), "u-1", domain.Role("GERENTE"))

	assertErrorCode(t, err, "VALIDATION_FAILED")
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserList_NilBecomesEmptySlice(t *testing.T) {
	users := new(mockUserRepo)
	users.On("List", mock.Anything).Return(nil, nil)

	svc := service.NewUserService(users, bcrypt.MinCost)
	list, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
