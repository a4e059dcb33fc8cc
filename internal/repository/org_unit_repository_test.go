package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hrms-saas-api/internal/models"
)

func TestOrgUnitRepositorySelectsTable(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	now := time.Now()
	cols := []string{"id", "tenant_id", "name", "description", "is_active", "created_by", "updated_by", "created_at", "updated_at"}
	mock.ExpectQuery(regexp.QuoteMeta("FROM designations WHERE tenant_id = $1 ORDER BY name")).
		WithArgs("t-1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("g-1", "t-1", "Engineer", nil, true, nil, nil, now, nil))
	mock.ExpectQuery(regexp.QuoteMeta("FROM departments WHERE tenant_id = $1 ORDER BY name")).
		WithArgs("t-1").
		WillReturnRows(sqlmock.NewRows(cols))

	designations, err := NewOrgUnitRepository(models.OrgUnitDesignation).List(context.Background(), db, "t-1")
	require.NoError(t, err)
	assert.Len(t, designations, 1)

	departments, err := NewOrgUnitRepository(models.OrgUnitDepartment).List(context.Background(), db, "t-1")
	require.NoError(t, err)
	assert.Empty(t, departments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrgUnitRepositoryCreateDuplicateName(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO departments").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "departments_tenant_name_key"})

	err := NewOrgUnitRepository(models.OrgUnitDepartment).Create(context.Background(), db, &models.OrgUnit{TenantID: "t-1", Name: "Ops"})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrgUnitRepositoryDeleteMissing(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM departments WHERE id = $1")).
		WithArgs("d-404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewOrgUnitRepository(models.OrgUnitDepartment).Delete(context.Background(), db, "d-404")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
