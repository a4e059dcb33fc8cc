package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hrms-saas-api/internal/models"
)

func newDepartmentService() (*OrgUnitService, *fakeOrgUnits, *fakeAudit, *invalidationRecorder) {
	store := newFakeOrgUnits(
		models.OrgUnit{ID: testDepartmentID, TenantID: testTenantID, Name: "Engineering", IsActive: true},
		models.OrgUnit{ID: foreignDeptID, TenantID: otherTenantID, Name: "Sales", IsActive: true},
	)
	audit := &fakeAudit{}
	cache := &invalidationRecorder{}
	return NewOrgUnitService(models.OrgUnitDepartment, &fakeScoper{}, store, audit, cache, nil, nil), store, audit, cache
}

func TestOrgUnitServiceCreate(t *testing.T) {
	svc, store, audit, cache := newDepartmentService()

	unit, err := svc.Create(context.Background(), hrActor(), models.CreateOrgUnitRequest{Name: "  Finance ", Description: strPtr("Money")})
	require.NoError(t, err)
	assert.Equal(t, "Finance", unit.Name)
	assert.Equal(t, testTenantID, unit.TenantID)
	assert.Equal(t, testHRID, *unit.CreatedBy)
	assert.Contains(t, store.units, unit.ID)
	assert.Equal(t, []string{models.AuditActionOrgUnitCreate}, audit.actions())
	assert.Equal(t, "department", audit.entries[0].Resource)
	assert.Equal(t, []string{testTenantID}, cache.tenants)
}

func TestOrgUnitServiceCreateDuplicate(t *testing.T) {
	svc, _, _, _ := newDepartmentService()

	_, err := svc.Create(context.Background(), adminActor(), models.CreateOrgUnitRequest{Name: "engineering"})
	appErr := requireAppError(t, err, 409)
	assert.Equal(t, "Department with this name already exists", appErr.Message)
}

func TestOrgUnitServiceCreateValidation(t *testing.T) {
	svc, _, _, _ := newDepartmentService()

	_, err := svc.Create(context.Background(), adminActor(), models.CreateOrgUnitRequest{Name: "X"})
	requireAppError(t, err, 400)
}

func TestOrgUnitServiceListAndGetStayInTenant(t *testing.T) {
	svc, _, _, _ := newDepartmentService()

	units, err := svc.List(context.Background(), adminActor())
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "Engineering", units[0].Name)

	_, err = svc.Get(context.Background(), adminActor(), foreignDeptID)
	requireAppError(t, err, 404)
}

func TestOrgUnitServiceUpdate(t *testing.T) {
	svc, _, audit, _ := newDepartmentService()

	unit, err := svc.Update(context.Background(), hrActor(), testDepartmentID, models.UpdateOrgUnitRequest{Name: strPtr("Platform"), IsActive: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, "Platform", unit.Name)
	assert.False(t, unit.IsActive)
	assert.Equal(t, []string{models.AuditActionOrgUnitUpdate}, audit.actions())

	_, err = svc.Update(context.Background(), hrActor(), testDepartmentID, models.UpdateOrgUnitRequest{})
	requireAppError(t, err, 400)
}

func TestOrgUnitServiceDelete(t *testing.T) {
	svc, store, audit, _ := newDepartmentService()

	err := svc.Delete(context.Background(), hrActor(), testDepartmentID)
	requireAppError(t, err, 403)

	store.referenced[testDepartmentID] = true
	err = svc.Delete(context.Background(), adminActor(), testDepartmentID)
	appErr := requireAppError(t, err, 409)
	assert.Equal(t, "Department is still assigned to employees", appErr.Message)

	store.referenced[testDepartmentID] = false
	require.NoError(t, svc.Delete(context.Background(), adminActor(), testDepartmentID))
	assert.NotContains(t, store.units, testDepartmentID)
	assert.Equal(t, []string{models.AuditActionOrgUnitDelete}, audit.actions())

	err = svc.Delete(context.Background(), adminActor(), foreignDeptID)
	requireAppError(t, err, 404)
}

func TestOrgUnitServiceDesignationLabels(t *testing.T) {
	store := newFakeOrgUnits()
	svc := NewOrgUnitService(models.OrgUnitDesignation, &fakeScoper{}, store, nil, nil, nil, nil)

	_, err := svc.Get(context.Background(), adminActor(), testDesignationID)
	appErr := requireAppError(t, err, 404)
	assert.Equal(t, "Designation not found", appErr.Message)
}
