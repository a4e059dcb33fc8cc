package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hrms-saas-api/internal/models"
)

func TestTenantRepositoryFindConflict(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTenantRepository()

	mock.ExpectQuery("FROM tenants").
		WithArgs("acme.io", "ops@acme.io", nil).
		WillReturnRows(sqlmock.NewRows([]string{"case"}).AddRow("domain"))
	mock.ExpectQuery("FROM tenants").
		WithArgs(nil, "new@globex.io", nil).
		WillReturnRows(sqlmock.NewRows([]string{"case"}))

	field, err := repo.FindConflict(context.Background(), db, strPtr("acme.io"), " ops@acme.io ", nil)
	require.NoError(t, err)
	assert.Equal(t, "domain", field)

	field, err = repo.FindConflict(context.Background(), db, nil, "new@globex.io", nil)
	require.NoError(t, err)
	assert.Empty(t, field)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantRepositoryCreateDefaultsSettings(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO tenants").WillReturnResult(sqlmock.NewResult(0, 1))

	tenant := &models.Tenant{Name: "Acme", Email: "ops@acme.io", IsActive: true}
	require.NoError(t, NewTenantRepository().Create(context.Background(), db, tenant))
	assert.NotEmpty(t, tenant.ID)
	assert.JSONEq(t, `{}`, string(tenant.Settings))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantRepositorySetActive(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE tenants SET is_active = $2")).
		WithArgs("t-1", false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewTenantRepository().SetActive(context.Background(), db, "t-1", false))
	assert.NoError(t, mock.ExpectationsWereMet())
}
