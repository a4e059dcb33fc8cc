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

func TestAuditRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO audit_logs").WillReturnResult(sqlmock.NewResult(0, 1))

	entry := &models.AuditLog{TenantID: strPtr("t-1"), UserID: strPtr("u-1"), Action: models.AuditActionOrgUnitCreate, Resource: "departments"}
	require.NoError(t, NewAuditRepository().Create(context.Background(), db, entry))
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepositoryListRecent(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("FROM audit_logs WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2")).
		WithArgs("t-1", 50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "action", "resource"}).AddRow("a-1", "USER_CREATE", "users"))

	logs, err := NewAuditRepository().ListRecent(context.Background(), db, "t-1", 50)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "USER_CREATE", logs[0].Action)
	assert.NoError(t, mock.ExpectationsWereMet())
}
