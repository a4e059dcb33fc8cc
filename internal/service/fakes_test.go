package service

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	"github.com/noah-isme/hrms-saas-api/internal/repository"
	"github.com/noah-isme/hrms-saas-api/pkg/jobs"
	"github.com/noah-isme/hrms-saas-api/pkg/security"
)

const (
	testTenantID   = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	otherTenantID  = "0b6f1c2e-3d4a-4b5c-8d9e-0f1a2b3c4d5e"
	testAdminID    = "2f1b5a3c-8e4d-4f6a-9b7c-1d2e3f4a5b6c"
	testHRID       = "3a2b1c0d-9e8f-4a7b-8c6d-5e4f3a2b1c0d"
	testEmployeeID = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
)

func adminActor() *models.Actor {
	return &models.Actor{UserID: testAdminID, TenantID: strPtr(testTenantID), Role: models.RoleAdmin, SessionID: "sess-admin"}
}

func hrActor() *models.Actor {
	return &models.Actor{UserID: testHRID, TenantID: strPtr(testTenantID), Role: models.RoleHR, SessionID: "sess-hr"}
}

func superAdminActor() *models.Actor {
	return &models.Actor{UserID: "5d4c3b2a-1f0e-4d9c-8b7a-6f5e4d3c2b1a", Role: models.RoleSuperAdmin}
}

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }

// fakeScoper runs work with a nil executor and records the actors it was given.
type fakeScoper struct {
	mu     sync.Mutex
	actors []*models.Actor
	err    error
}

func (f *fakeScoper) WithScope(_ context.Context, actor *models.Actor, fn func(sqlx.ExtContext) error) error {
	f.mu.Lock()
	f.actors = append(f.actors, actor)
	f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	return fn(nil)
}

func (f *fakeScoper) lastRole() models.UserRole {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.actors) == 0 || f.actors[len(f.actors)-1] == nil {
		return ""
	}
	return f.actors[len(f.actors)-1].Role
}

type fakeAudit struct {
	entries []*models.AuditLog
}

func (f *fakeAudit) Create(_ context.Context, _ sqlx.ExtContext, entry *models.AuditLog) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeAudit) actions() []string {
	out := make([]string, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e.Action)
	}
	return out
}

type queueStub struct {
	jobs []jobs.Job
	err  error
}

func (q *queueStub) Enqueue(job jobs.Job) error {
	if q.err != nil {
		return q.err
	}
	q.jobs = append(q.jobs, job)
	return nil
}

type notifierStub struct {
	resets    map[string]string
	welcomes  []string
	temps     []string
	tenants   []string
	expiring  []models.ExpiringSubscription
	expiredTo [][]string
}

func newNotifierStub() *notifierStub {
	return &notifierStub{resets: map[string]string{}}
}

func (n *notifierStub) PasswordReset(email, token string) { n.resets[email] = token }

func (n *notifierStub) UserWelcome(email, _ string, _ models.UserRole, _ string) {
	n.welcomes = append(n.welcomes, email)
}

func (n *notifierStub) TemporaryPassword(email, _, _ string) { n.temps = append(n.temps, email) }

func (n *notifierStub) TenantWelcome(tenant *models.Tenant, adminEmail, _ string, _ *time.Time) {
	n.tenants = append(n.tenants, tenant.Name+":"+adminEmail)
}

func (n *notifierStub) SubscriptionExpiring(sub models.ExpiringSubscription, to []string, _ time.Time) {
	n.expiring = append(n.expiring, sub)
	n.expiredTo = append(n.expiredTo, to)
}

// fakeUsers is an in-memory user table keyed by id.
type fakeUsers struct {
	users      map[string]*models.AuthUser
	employees  map[string]*models.Employee
	lastLogins map[string]time.Time
	failList   error
}

func newFakeUsers(users ...models.AuthUser) *fakeUsers {
	f := &fakeUsers{users: map[string]*models.AuthUser{}, employees: map[string]*models.Employee{}, lastLogins: map[string]time.Time{}}
	for i := range users {
		u := users[i]
		f.users[u.ID] = &u
	}
	return f
}

func (f *fakeUsers) FindAuthByEmail(_ context.Context, _ sqlx.ExtContext, email string) ([]models.AuthUser, error) {
	var out []models.AuthUser
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUsers) FindAuthByID(_ context.Context, _ sqlx.ExtContext, id string) (*models.AuthUser, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUsers) FindDetail(_ context.Context, _ sqlx.ExtContext, id string) (*models.UserDetail, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	d := &models.UserDetail{
		ID: u.ID, TenantID: u.TenantID, Email: u.Email, Role: u.Role, IsActive: u.IsActive,
		EmployeeID: u.EmployeeID, FirstName: u.FirstName, LastName: u.LastName,
	}
	if e, ok := f.employees[u.ID]; ok {
		d.EmployeeID = &e.ID
		d.Phone = e.Phone
		d.DepartmentID = e.DepartmentID
		d.DesignationID = e.DesignationID
		d.ReportsTo = e.ReportsTo
	}
	return d, nil
}

func (f *fakeUsers) EmailExists(_ context.Context, _ sqlx.ExtContext, tenantID, email, excludeID string) (bool, error) {
	for _, u := range f.users {
		if u.TenantID != nil && *u.TenantID == tenantID && strings.EqualFold(u.Email, email) && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) Create(_ context.Context, _ sqlx.ExtContext, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	for _, u := range f.users {
		if strings.EqualFold(u.Email, user.Email) && derefString(u.TenantID) == derefString(user.TenantID) {
			return repository.ErrDuplicate
		}
	}
	f.users[user.ID] = &models.AuthUser{User: *user}
	return nil
}

func (f *fakeUsers) List(_ context.Context, _ sqlx.ExtContext, tenantID string, filter models.UserFilter) ([]models.UserDetail, int, error) {
	if f.failList != nil {
		return nil, 0, f.failList
	}
	var out []models.UserDetail
	for _, u := range f.users {
		if derefString(u.TenantID) != tenantID {
			continue
		}
		if filter.Role != nil && u.Role != *filter.Role {
			continue
		}
		out = append(out, models.UserDetail{ID: u.ID, Email: u.Email, Role: u.Role, TenantID: u.TenantID})
	}
	return out, len(out), nil
}

func (f *fakeUsers) Update(_ context.Context, _ sqlx.ExtContext, id string, email *string, isActive *bool) error {
	u, ok := f.users[id]
	if !ok {
		return sql.ErrNoRows
	}
	if email != nil {
		u.Email = *email
	}
	if isActive != nil {
		u.IsActive = *isActive
	}
	return nil
}

func (f *fakeUsers) UpdateRole(_ context.Context, _ sqlx.ExtContext, id string, role models.UserRole) error {
	u, ok := f.users[id]
	if !ok {
		return sql.ErrNoRows
	}
	u.Role = role
	return nil
}

func (f *fakeUsers) SetActive(_ context.Context, _ sqlx.ExtContext, id string, active bool) error {
	u, ok := f.users[id]
	if !ok {
		return sql.ErrNoRows
	}
	u.IsActive = active
	return nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, _ sqlx.ExtContext, id, passwordHash string, mustChange bool) error {
	u, ok := f.users[id]
	if !ok {
		return sql.ErrNoRows
	}
	u.PasswordHash = passwordHash
	u.MustChangePassword = mustChange
	return nil
}

func (f *fakeUsers) UpdateLastLogin(_ context.Context, _ sqlx.ExtContext, id string, ts time.Time) error {
	f.lastLogins[id] = ts
	return nil
}

func (f *fakeUsers) AdminEmails(_ context.Context, _ sqlx.ExtContext, tenantID string) ([]string, error) {
	var out []string
	for _, u := range f.users {
		if derefString(u.TenantID) == tenantID && u.Role == models.RoleAdmin && u.IsActive {
			out = append(out, u.Email)
		}
	}
	return out, nil
}

// fakeSessions stores sessions keyed by id.
type fakeSessions struct {
	sessions map[string]*models.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: map[string]*models.Session{}}
}

func (f *fakeSessions) add(userID, token string, expires time.Time) *models.Session {
	s := &models.Session{
		ID:               uuid.NewString(),
		UserID:           userID,
		RefreshTokenHash: security.HashToken(token),
		ExpiresAt:        expires,
		CreatedAt:        time.Now().UTC(),
	}
	f.sessions[s.ID] = s
	return s
}

func (f *fakeSessions) Create(_ context.Context, _ sqlx.ExtContext, session *models.Session) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	session.CreatedAt = time.Now().UTC()
	clone := *session
	f.sessions[session.ID] = &clone
	return nil
}

func (f *fakeSessions) FindByHash(_ context.Context, _ sqlx.ExtContext, hash string) (*models.Session, error) {
	for _, s := range f.sessions {
		if s.RefreshTokenHash == hash {
			clone := *s
			return &clone, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeSessions) Rotate(_ context.Context, _ sqlx.ExtContext, id, oldHash, newHash string, expiresAt time.Time, _, _ *string) (bool, error) {
	s, ok := f.sessions[id]
	if !ok || s.RefreshTokenHash != oldHash || s.IsRevoked {
		return false, nil
	}
	s.RefreshTokenHash = newHash
	s.ExpiresAt = expiresAt
	return true, nil
}

func (f *fakeSessions) RevokeByHash(_ context.Context, _ sqlx.ExtContext, hash string) (int64, error) {
	var n int64
	for _, s := range f.sessions {
		if s.RefreshTokenHash == hash && !s.IsRevoked {
			s.IsRevoked = true
			n++
		}
	}
	return n, nil
}

func (f *fakeSessions) RevokeAllForUser(_ context.Context, _ sqlx.ExtContext, userID, exceptID string) (int64, error) {
	var n int64
	for _, s := range f.sessions {
		if s.UserID == userID && !s.IsRevoked && s.ID != exceptID {
			s.IsRevoked = true
			n++
		}
	}
	return n, nil
}

func (f *fakeSessions) ListActive(_ context.Context, _ sqlx.ExtContext, userID string) ([]models.SessionView, error) {
	var out []models.SessionView
	now := time.Now().UTC()
	for _, s := range f.sessions {
		if s.UserID == userID && s.Usable(now) {
			out = append(out, models.SessionView{ID: s.ID, CreatedAt: s.CreatedAt, ExpiresAt: s.ExpiresAt})
		}
	}
	return out, nil
}

func (f *fakeSessions) live(userID string) int {
	n := 0
	for _, s := range f.sessions {
		if s.UserID == userID && !s.IsRevoked {
			n++
		}
	}
	return n
}

// fakeResets stores reset tokens keyed by hash.
type fakeResets struct {
	byHash map[string]*models.PasswordReset
}

func newFakeResets() *fakeResets {
	return &fakeResets{byHash: map[string]*models.PasswordReset{}}
}

func (f *fakeResets) Replace(_ context.Context, _ sqlx.ExtContext, reset *models.PasswordReset) error {
	for hash, r := range f.byHash {
		if r.UserID == reset.UserID {
			delete(f.byHash, hash)
		}
	}
	clone := *reset
	f.byHash[reset.TokenHash] = &clone
	return nil
}

func (f *fakeResets) Consume(_ context.Context, _ sqlx.ExtContext, hash string) (*models.PasswordReset, error) {
	r, ok := f.byHash[hash]
	if !ok || !time.Now().Before(r.ExpiresAt) {
		return nil, sql.ErrNoRows
	}
	delete(f.byHash, hash)
	return r, nil
}

type fakeTenants struct {
	tenants  map[string]*models.Tenant
	conflict string
}

func newFakeTenants(tenants ...models.Tenant) *fakeTenants {
	f := &fakeTenants{tenants: map[string]*models.Tenant{}}
	for i := range tenants {
		t := tenants[i]
		f.tenants[t.ID] = &t
	}
	return f
}

func (f *fakeTenants) FindConflict(_ context.Context, _ sqlx.ExtContext, _ *string, email string, _ *string) (string, error) {
	if f.conflict != "" {
		return f.conflict, nil
	}
	for _, t := range f.tenants {
		if strings.EqualFold(t.Email, email) {
			return "email", nil
		}
	}
	return "", nil
}

func (f *fakeTenants) Create(_ context.Context, _ sqlx.ExtContext, tenant *models.Tenant) error {
	if tenant.ID == "" {
		tenant.ID = uuid.NewString()
	}
	clone := *tenant
	f.tenants[tenant.ID] = &clone
	return nil
}

func (f *fakeTenants) FindByID(_ context.Context, _ sqlx.ExtContext, id string) (*models.Tenant, error) {
	t, ok := f.tenants[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *t
	return &clone, nil
}

func (f *fakeTenants) SetActive(_ context.Context, _ sqlx.ExtContext, id string, active bool) error {
	t, ok := f.tenants[id]
	if !ok {
		return sql.ErrNoRows
	}
	t.IsActive = active
	return nil
}

// fakeEmployees keys employee profiles by employee id.
type fakeEmployees struct {
	byID    map[string]*models.Employee
	reports map[string][]models.UserDetail
}

func newFakeEmployees(employees ...models.Employee) *fakeEmployees {
	f := &fakeEmployees{byID: map[string]*models.Employee{}, reports: map[string][]models.UserDetail{}}
	for i := range employees {
		e := employees[i]
		f.byID[e.ID] = &e
	}
	return f
}

func (f *fakeEmployees) Create(_ context.Context, _ sqlx.ExtContext, employee *models.Employee) error {
	if employee.ID == "" {
		employee.ID = uuid.NewString()
	}
	clone := *employee
	f.byID[employee.ID] = &clone
	return nil
}

func (f *fakeEmployees) FindByID(_ context.Context, _ sqlx.ExtContext, id string) (*models.Employee, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *e
	return &clone, nil
}

func (f *fakeEmployees) FindByUserID(_ context.Context, _ sqlx.ExtContext, userID string) (*models.Employee, error) {
	for _, e := range f.byID {
		if e.UserID == userID {
			clone := *e
			return &clone, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeEmployees) UpdateByUserID(_ context.Context, _ sqlx.ExtContext, userID string, req models.UpdateEmployeeRequest) error {
	for _, e := range f.byID {
		if e.UserID != userID {
			continue
		}
		if req.FirstName != nil {
			e.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			e.LastName = req.LastName
		}
		if req.Phone != nil {
			e.Phone = req.Phone
		}
		if req.DepartmentID != nil {
			e.DepartmentID = req.DepartmentID
		}
		if req.DesignationID != nil {
			e.DesignationID = req.DesignationID
		}
		if req.ReportsTo != nil {
			e.ReportsTo = req.ReportsTo
		}
		return nil
	}
	return sql.ErrNoRows
}

func (f *fakeEmployees) ListReports(_ context.Context, _ sqlx.ExtContext, managerEmployeeID string) ([]models.UserDetail, error) {
	return f.reports[managerEmployeeID], nil
}

func (f *fakeEmployees) forUser(userID string) *models.Employee {
	for _, e := range f.byID {
		if e.UserID == userID {
			return e
		}
	}
	return nil
}

// fakeOrgUnits holds one catalogue, departments or designations.
type fakeOrgUnits struct {
	units      map[string]*models.OrgUnit
	referenced map[string]bool
}

func newFakeOrgUnits(units ...models.OrgUnit) *fakeOrgUnits {
	f := &fakeOrgUnits{units: map[string]*models.OrgUnit{}, referenced: map[string]bool{}}
	for i := range units {
		u := units[i]
		f.units[u.ID] = &u
	}
	return f
}

func (f *fakeOrgUnits) Create(_ context.Context, _ sqlx.ExtContext, unit *models.OrgUnit) error {
	for _, u := range f.units {
		if u.TenantID == unit.TenantID && strings.EqualFold(u.Name, unit.Name) {
			return repository.ErrDuplicate
		}
	}
	if unit.ID == "" {
		unit.ID = uuid.NewString()
	}
	unit.CreatedAt = time.Now().UTC()
	clone := *unit
	f.units[unit.ID] = &clone
	return nil
}

func (f *fakeOrgUnits) FindByID(_ context.Context, _ sqlx.ExtContext, id string) (*models.OrgUnit, error) {
	u, ok := f.units[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *u
	return &clone, nil
}

func (f *fakeOrgUnits) List(_ context.Context, _ sqlx.ExtContext, tenantID string) ([]models.OrgUnit, error) {
	var out []models.OrgUnit
	for _, u := range f.units {
		if u.TenantID == tenantID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeOrgUnits) Update(_ context.Context, _ sqlx.ExtContext, id string, req models.UpdateOrgUnitRequest, updatedBy string) error {
	u, ok := f.units[id]
	if !ok {
		return sql.ErrNoRows
	}
	if req.Name != nil {
		for _, other := range f.units {
			if other.ID != id && other.TenantID == u.TenantID && strings.EqualFold(other.Name, *req.Name) {
				return repository.ErrDuplicate
			}
		}
		u.Name = *req.Name
	}
	if req.Description != nil {
		u.Description = req.Description
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	u.UpdatedBy = &updatedBy
	return nil
}

func (f *fakeOrgUnits) Delete(_ context.Context, _ sqlx.ExtContext, id string) error {
	if _, ok := f.units[id]; !ok {
		return sql.ErrNoRows
	}
	if f.referenced[id] {
		return repository.ErrReferenced
	}
	delete(f.units, id)
	return nil
}

// fakeSubscriptions holds the plan catalogue and tenant subscriptions.
type fakeSubscriptions struct {
	plans    map[string]*models.SubscriptionPlan
	subs     map[string]*models.TenantSubscription
	ending   map[models.SubscriptionStatus][]models.ExpiringSubscription
	ended    map[models.SubscriptionStatus][]models.ExpiringSubscription
	extended map[string]time.Time
}

func newFakeSubscriptions(plans ...models.SubscriptionPlan) *fakeSubscriptions {
	f := &fakeSubscriptions{
		plans:    map[string]*models.SubscriptionPlan{},
		subs:     map[string]*models.TenantSubscription{},
		ending:   map[models.SubscriptionStatus][]models.ExpiringSubscription{},
		ended:    map[models.SubscriptionStatus][]models.ExpiringSubscription{},
		extended: map[string]time.Time{},
	}
	for i := range plans {
		p := plans[i]
		f.plans[p.ID] = &p
	}
	return f
}

func (f *fakeSubscriptions) ListPlans(_ context.Context, _ sqlx.ExtContext) ([]models.SubscriptionPlan, error) {
	out := make([]models.SubscriptionPlan, 0, len(f.plans))
	for _, p := range f.plans {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeSubscriptions) FindPlan(_ context.Context, _ sqlx.ExtContext, id string) (*models.SubscriptionPlan, error) {
	p, ok := f.plans[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *p
	return &clone, nil
}

func (f *fakeSubscriptions) FindTrialPlan(_ context.Context, _ sqlx.ExtContext) (*models.SubscriptionPlan, error) {
	for _, p := range f.plans {
		if p.IsTrial || p.PlanType == models.PlanTrial {
			clone := *p
			return &clone, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeSubscriptions) PlanNameTaken(_ context.Context, _ sqlx.ExtContext, name, excludeID string) (bool, error) {
	for _, p := range f.plans {
		if strings.EqualFold(p.Name, name) && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSubscriptions) CreatePlan(_ context.Context, _ sqlx.ExtContext, plan *models.SubscriptionPlan) error {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	clone := *plan
	f.plans[plan.ID] = &clone
	return nil
}

func (f *fakeSubscriptions) UpdatePlan(_ context.Context, _ sqlx.ExtContext, plan *models.SubscriptionPlan) error {
	if _, ok := f.plans[plan.ID]; !ok {
		return sql.ErrNoRows
	}
	clone := *plan
	f.plans[plan.ID] = &clone
	return nil
}

func (f *fakeSubscriptions) PlanInUse(_ context.Context, _ sqlx.ExtContext, id string) (bool, error) {
	for _, s := range f.subs {
		if s.PlanID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSubscriptions) DeletePlan(_ context.Context, _ sqlx.ExtContext, id string) error {
	if _, ok := f.plans[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.plans, id)
	return nil
}

func (f *fakeSubscriptions) FindCurrent(_ context.Context, _ sqlx.ExtContext, tenantID string) (*models.TenantSubscription, error) {
	var current *models.TenantSubscription
	for _, s := range f.subs {
		if s.TenantID != tenantID || (s.Status != models.SubscriptionActive && s.Status != models.SubscriptionTrial) {
			continue
		}
		if current == nil || s.CreatedAt.After(current.CreatedAt) {
			current = s
		}
	}
	if current == nil {
		return nil, sql.ErrNoRows
	}
	clone := *current
	return &clone, nil
}

func (f *fakeSubscriptions) HasStatus(_ context.Context, _ sqlx.ExtContext, tenantID string, status models.SubscriptionStatus) (bool, error) {
	for _, s := range f.subs {
		if s.TenantID == tenantID && s.Status == status {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSubscriptions) CreateSubscription(_ context.Context, _ sqlx.ExtContext, sub *models.TenantSubscription) error {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	sub.CreatedAt = time.Now().UTC().Add(time.Duration(len(f.subs)) * time.Millisecond)
	clone := *sub
	f.subs[sub.ID] = &clone
	return nil
}

func (f *fakeSubscriptions) SetStatus(_ context.Context, _ sqlx.ExtContext, id string, status models.SubscriptionStatus, _ *string) error {
	s, ok := f.subs[id]
	if !ok {
		return sql.ErrNoRows
	}
	s.Status = status
	return nil
}

func (f *fakeSubscriptions) DeactivateCurrent(_ context.Context, _ sqlx.ExtContext, tenantID string, _ *string) (int64, error) {
	var n int64
	for _, s := range f.subs {
		if s.TenantID == tenantID && (s.Status == models.SubscriptionActive || s.Status == models.SubscriptionTrial) {
			s.Status = models.SubscriptionInactive
			n++
		}
	}
	return n, nil
}

func (f *fakeSubscriptions) Extend(_ context.Context, _ sqlx.ExtContext, id string, endDate time.Time) error {
	f.extended[id] = endDate
	if s, ok := f.subs[id]; ok {
		s.EndDate = &endDate
	}
	return nil
}

func (f *fakeSubscriptions) ListEndingBetween(_ context.Context, _ sqlx.ExtContext, status models.SubscriptionStatus, _, _ time.Time) ([]models.ExpiringSubscription, error) {
	return f.ending[status], nil
}

func (f *fakeSubscriptions) ListEndedBefore(_ context.Context, _ sqlx.ExtContext, status models.SubscriptionStatus, _ time.Time) ([]models.ExpiringSubscription, error) {
	return f.ended[status], nil
}

func (f *fakeSubscriptions) statusOf(tenantID string) []models.SubscriptionStatus {
	var out []models.SubscriptionStatus
	for _, s := range f.subs {
		if s.TenantID == tenantID {
			out = append(out, s.Status)
		}
	}
	return out
}
