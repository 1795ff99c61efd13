package util_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/uta-gremial/reclamos-service/pkg/util"
)

func TestToDomainError_PassesThroughDomainErrors(t *testing.T) {
	original := util.NewForbidden("no access")
	mapped := util.ToDomainError(original)

	assert.Equal(t, "FORBIDDEN", mapped.Code)
	assert.Equal(t, http.StatusForbidden, mapped.HTTPStatus)
}

func TestToDomainError_UnwrapsWrappedDomainErrors(t *testing.T) {
	wrapped := fmt.Errorf("listing users: %w", util.NewConflict("taken", nil))
	mapped := util.ToDomainError(wrapped)

	assert.Equal(t, "CONFLICT", mapped.Code)
	assert.Equal(t, http.StatusConflict, mapped.HTTPStatus)
}

func TestToDomainError_MissingRowsBecomeNotFound(t *testing.T) {
	mapped := util.ToDomainError(fmt.Errorf("fetch reclamo: %w", pgx.ErrNoRows))

	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainError_UniqueViolationsBecomeConflict(t *testing.T) {
	// A lost check-then-act race (duplicate username, reclamo number or
	// invitation token) surfaces from pgx as SQLSTATE 23505.
	cause := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
	mapped := util.ToDomainError(fmt.Errorf("create user: %w", cause))

	assert.Equal(t, "CONFLICT", mapped.Code)
	assert.Equal(t, http.StatusConflict, mapped.HTTPStatus)
	assert.Equal(t, "users_username_key", mapped.Details["constraint"])
}

func TestToDomainError_OtherPgErrorsStayInternal(t *testing.T) {
	mapped := util.ToDomainError(&pgconn.PgError{Code: "23503"})

	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
}

func TestToDomainError_UnknownErrorsBecomeInternal(t *testing.T) {
	cause := errors.New("connection reset")
	mapped := util.ToDomainError(cause)

	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	assert.ErrorIs(t, mapped, cause)
}

func TestToDomainError_NilStaysNil(t *testing.T) {
	assert.Nil(t, util.ToDomainError(nil))
}
