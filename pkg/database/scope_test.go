package database

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	appErrors "github.com/noah-isme/hrms-saas-api/pkg/errors"
)

const (
	tenantA   = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	userA     = "2f1b5a3c-8e4d-4f6a-9b7c-1d2e3f4a5b6c"
	employeeA = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
)

type recordingObserver struct {
	opened   int
	closed   []bool
	failures []string
}

func (r *recordingObserver) ScopeOpened()                              { r.opened++ }
func (r *recordingObserver) ScopeClosed(_ time.Duration, committed bool) { r.closed = append(r.closed, committed) }
func (r *recordingObserver) ScopeFailed(reason string)                  { r.failures = append(r.failures, reason) }

func newScoper(t *testing.T) (*Scoper, sqlmock.Sqlmock, *recordingObserver, *[]State) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	observer := &recordingObserver{}
	scoper := NewScoper(sqlx.NewDb(db, "sqlmock"), observer, nil)
	trace := []State{}
	scoper.onTransition = func(s State) { trace = append(trace, s) }
	return scoper, mock, observer, &trace
}

func strPtr(v string) *string { return &v }

func TestWithScopeBindsTenantActor(t *testing.T) {
	scoper, mock, observer, trace := newScoper(t)
	actor := &models.Actor{UserID: userA, TenantID: strPtr(tenantA), EmployeeID: strPtr(employeeA), Role: models.RoleHR}

	mock.ExpectBegin()
	mock.ExpectExec(`set_config\('app.tenant_id', \$1, true\)`).
		WithArgs(tenantA, userA, employeeA, "HR").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO departments`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := scoper.WithScope(context.Background(), actor, func(q sqlx.ExtContext) error {
		_, err := q.ExecContext(context.Background(), "INSERT INTO departments (name) VALUES ('Ops')")
		return err
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, []State{StateScoping, StateScoped, StateReleasing, StateUnscoped}, *trace)
	assert.Equal(t, 1, observer.opened)
	assert.Equal(t, []bool{true}, observer.closed)
	assert.Zero(t, scoper.Active())
}

func TestWithScopeSuperAdminUnsetsTenant(t *testing.T) {
	scoper, mock, _, _ := newScoper(t)
	// a stray tenant on a global actor must never reach the database
	actor := &models.Actor{UserID: userA, TenantID: strPtr(tenantA), Role: models.RoleSuperAdmin}

	mock.ExpectBegin()
	mock.ExpectExec(`set_config`).WithArgs("", userA, "", "SUPER_ADMIN").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, scoper.WithScope(context.Background(), actor, func(sqlx.ExtContext) error { return nil }))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithScopeAnonymousResetsEverything(t *testing.T) {
	scoper, mock, _, _ := newScoper(t)

	mock.ExpectBegin()
	mock.ExpectExec(`set_config`).WithArgs("", "", "", "").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, scoper.WithScope(context.Background(), nil, func(sqlx.ExtContext) error { return nil }))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithScopeSystemActor(t *testing.T) {
	scoper, mock, _, _ := newScoper(t)

	mock.ExpectBegin()
	mock.ExpectExec(`set_config`).WithArgs("", "", "", "SYSTEM").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, scoper.WithScope(context.Background(), models.SystemActor(), func(sqlx.ExtContext) error { return nil }))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithScopeSetConfigFailureFailsClosed(t *testing.T) {
	scoper, mock, observer, trace := newScoper(t)
	actor := &models.Actor{UserID: userA, TenantID: strPtr(tenantA), Role: models.RoleAdmin}

	mock.ExpectBegin()
	mock.ExpectExec(`set_config`).WillReturnError(errors.New("invalid input syntax"))
	mock.ExpectRollback()

	called := false
	err := scoper.WithScope(context.Background(), actor, func(sqlx.ExtContext) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrScopeFailed.Code, appErr.Code)
	assert.Equal(t, 403, appErr.Status)
	assert.Equal(t, []string{"set_config"}, observer.failures)
	assert.Zero(t, observer.opened)
	assert.Equal(t, []State{StateScoping, StateReleasing, StateUnscoped}, *trace)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithScopeInvalidActorNeverBegins(t *testing.T) {
	scoper, mock, observer, trace := newScoper(t)
	actor := &models.Actor{UserID: userA, TenantID: strPtr("acme'; DROP TABLE users; --"), Role: models.RoleAdmin}

	err := scoper.WithScope(context.Background(), actor, func(sqlx.ExtContext) error {
		t.Fatal("work must not run")
		return nil
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrScopeFailed))
	assert.True(t, errors.Is(err, models.ErrInvalidActor))
	assert.Equal(t, []string{"invalid_actor"}, observer.failures)
	assert.Empty(t, *trace)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithScopeWorkErrorRollsBack(t *testing.T) {
	scoper, mock, observer, trace := newScoper(t)
	actor := &models.Actor{UserID: userA, TenantID: strPtr(tenantA), Role: models.RoleEmployee}

	mock.ExpectBegin()
	mock.ExpectExec(`set_config`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := scoper.WithScope(context.Background(), actor, func(sqlx.ExtContext) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []bool{false}, observer.closed)
	assert.Equal(t, []State{StateScoping, StateScoped, StateReleasing, StateUnscoped}, *trace)
	assert.Zero(t, scoper.Active())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithScopePanicRollsBackAndRepanics(t *testing.T) {
	scoper, mock, observer, trace := newScoper(t)
	actor := &models.Actor{UserID: userA, TenantID: strPtr(tenantA), Role: models.RoleManager}

	mock.ExpectBegin()
	mock.ExpectExec(`set_config`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "kaboom", func() {
		_ = scoper.WithScope(context.Background(), actor, func(sqlx.ExtContext) error { panic("kaboom") })
	})
	assert.Equal(t, []bool{false}, observer.closed)
	assert.Equal(t, StateUnscoped, (*trace)[len(*trace)-1])
	assert.Zero(t, scoper.Active())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithScopeBeginFailure(t *testing.T) {
	scoper, mock, observer, _ := newScoper(t)

	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	err := scoper.WithScope(context.Background(), nil, func(sqlx.ExtContext) error {
		t.Fatal("work must not run")
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, 500, appErrors.FromError(err).Status)
	assert.Equal(t, []string{"begin"}, observer.failures)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "SCOPED", StateScoped.String())
	assert.Equal(t, "State(9)", State(9).String())
}
