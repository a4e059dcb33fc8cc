package database

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hrms-saas-api/internal/models"
)

// Runs only when HRMS_TEST_DATABASE_URL points at a disposable database
// reached through a role without SUPERUSER or BYPASSRLS.
func TestRowLevelSecurityIsolatesTenants(t *testing.T) {
	url := os.Getenv("HRMS_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("HRMS_TEST_DATABASE_URL not set")
	}
	require.NoError(t, Migrate(url, "up"))

	db, err := sqlx.Connect("postgres", url)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	// one connection so every scope below reuses the same session
	db.SetMaxOpenConns(1)

	var bypass bool
	require.NoError(t, db.Get(&bypass, `SELECT rolsuper OR rolbypassrls FROM pg_roles WHERE rolname = current_user`))
	if bypass {
		t.Skip("connected role bypasses row level security")
	}

	ctx := context.Background()
	scoper := NewScoper(db, nil, nil)
	tenantOne, tenantTwo := uuid.NewString(), uuid.NewString()

	err = scoper.WithScope(ctx, models.SystemActor(), func(q sqlx.ExtContext) error {
		for _, id := range []string{tenantOne, tenantTwo} {
			if _, err := q.ExecContext(ctx, `INSERT INTO tenants (id, name, email) VALUES ($1, $2, $3)`, id, "rls "+id, id+"@rls.test"); err != nil {
				return err
			}
			if _, err := q.ExecContext(ctx, `INSERT INTO departments (tenant_id, name) VALUES ($1, $2)`, id, "Engineering"); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = scoper.WithScope(ctx, models.SystemActor(), func(q sqlx.ExtContext) error {
			_, err := q.ExecContext(ctx, `DELETE FROM tenants WHERE id IN ($1, $2)`, tenantOne, tenantTwo)
			return err
		})
	})

	admin := &models.Actor{UserID: uuid.NewString(), TenantID: &tenantOne, Role: models.RoleAdmin}

	t.Run("tenant sees only its rows", func(t *testing.T) {
		var owners []string
		err := scoper.WithScope(ctx, admin, func(q sqlx.ExtContext) error {
			return sqlx.SelectContext(ctx, q, &owners, `SELECT tenant_id FROM departments WHERE tenant_id IN ($1, $2)`, tenantOne, tenantTwo)
		})
		require.NoError(t, err)
		assert.Equal(t, []string{tenantOne}, owners)
	})

	t.Run("cross tenant write is rejected", func(t *testing.T) {
		err := scoper.WithScope(ctx, admin, func(q sqlx.ExtContext) error {
			_, err := q.ExecContext(ctx, `INSERT INTO departments (tenant_id, name) VALUES ($1, $2)`, tenantTwo, "Sneaky")
			return err
		})
		require.Error(t, err)
	})

	t.Run("anonymous scope sees nothing", func(t *testing.T) {
		var count int
		err := scoper.WithScope(ctx, nil, func(q sqlx.ExtContext) error {
			return sqlx.GetContext(ctx, q, &count, `SELECT COUNT(*) FROM departments WHERE tenant_id IN ($1, $2)`, tenantOne, tenantTwo)
		})
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("super admin sees every tenant", func(t *testing.T) {
		var count int
		super := &models.Actor{UserID: uuid.NewString(), Role: models.RoleSuperAdmin}
		err := scoper.WithScope(ctx, super, func(q sqlx.ExtContext) error {
			return sqlx.GetContext(ctx, q, &count, `SELECT COUNT(*) FROM departments WHERE tenant_id IN ($1, $2)`, tenantOne, tenantTwo)
		})
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("scope does not leak to the pooled connection", func(t *testing.T) {
		require.NoError(t, scoper.WithScope(ctx, admin, func(sqlx.ExtContext) error { return nil }))

		var leaked sql.NullString
		require.NoError(t, db.GetContext(ctx, &leaked, `SELECT current_setting('app.tenant_id', true)`))
		assert.True(t, !leaked.Valid || leaked.String == "", "tenant scope leaked: %q", leaked.String)
	})
}
