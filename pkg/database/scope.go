package database

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	appErrors "github.com/noah-isme/hrms-saas-api/pkg/errors"
)

// applyScopeSQL binds all four RLS variables in one round trip. is_local=true
// ties their lifetime to the surrounding transaction.
const applyScopeSQL = `SELECT set_config('app.tenant_id', $1, true),
	set_config('app.user_id', $2, true),
	set_config('app.employee_id', $3, true),
	set_config('app.role', $4, true)`

// State is the lifecycle position of a scoped unit of work.
type State int32

const (
	StateUnscoped State = iota
	StateScoping
	StateScoped
	StateReleasing
)

func (s State) String() string {
	switch s {
	case StateUnscoped:
		return "UNSCOPED"
	case StateScoping:
		return "SCOPING"
	case StateScoped:
		return "SCOPED"
	case StateReleasing:
		return "RELEASING"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// ScopeObserver receives lifecycle signals for instrumentation.
type ScopeObserver interface {
	ScopeOpened()
	ScopeClosed(duration time.Duration, committed bool)
	ScopeFailed(reason string)
}

type nopObserver struct{}

func (nopObserver) ScopeOpened()                    {}
func (nopObserver) ScopeClosed(time.Duration, bool) {}
func (nopObserver) ScopeFailed(string)              {}

// Scoper runs database work inside a transaction whose RLS variables are
// bound to a single actor.
type Scoper struct {
	db       *sqlx.DB
	observer ScopeObserver
	logger   *zap.Logger
	active   int64

	onTransition func(State)
}

// NewScoper constructs a Scoper over the shared pool.
func NewScoper(db *sqlx.DB, observer ScopeObserver, logger *zap.Logger) *Scoper {
	if observer == nil {
		observer = nopObserver{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scoper{db: db, observer: observer, logger: logger}
}

// Active returns the number of scopes currently open.
func (s *Scoper) Active() int64 {
	return atomic.LoadInt64(&s.active)
}

// WithScope begins a transaction, binds the actor's scope, runs fn and
// commits. A nil actor binds every variable to the unset value. Any failure
// while binding aborts before fn runs. fn errors and panics roll back.
func (s *Scoper) WithScope(ctx context.Context, actor *models.Actor, fn func(q sqlx.ExtContext) error) (err error) {
	if actor != nil {
		if verr := actor.Validate(); verr != nil {
			s.observer.ScopeFailed("invalid_actor")
			s.logger.Warn("rejecting scope for invalid actor", zap.Error(verr))
			return appErrors.Wrap(verr, appErrors.ErrScopeFailed.Code, appErrors.ErrScopeFailed.Status, appErrors.ErrScopeFailed.Message)
		}
	}

	s.transition(StateScoping)
	started := time.Now()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.transition(StateUnscoped)
		s.observer.ScopeFailed("begin")
		return appErrors.Internal(fmt.Errorf("begin scoped transaction: %w", err), "database unavailable")
	}

	tenantID, userID, employeeID, role := scopeValues(actor)
	if _, err := tx.ExecContext(ctx, applyScopeSQL, tenantID, userID, employeeID, role); err != nil {
		s.release(tx)
		s.observer.ScopeFailed("set_config")
		s.logger.Error("failed to bind tenant scope", zap.Error(err), zap.String("role", role))
		return appErrors.Wrap(err, appErrors.ErrScopeFailed.Code, appErrors.ErrScopeFailed.Status, appErrors.ErrScopeFailed.Message)
	}

	atomic.AddInt64(&s.active, 1)
	s.observer.ScopeOpened()
	s.transition(StateScoped)

	committed := false
	defer func() {
		atomic.AddInt64(&s.active, -1)
		if p := recover(); p != nil {
			s.release(tx)
			s.observer.ScopeClosed(time.Since(started), false)
			panic(p)
		}
		if !committed {
			s.release(tx)
			s.observer.ScopeClosed(time.Since(started), false)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	s.transition(StateReleasing)
	if err = tx.Commit(); err != nil {
		committed = true
		s.transition(StateUnscoped)
		s.observer.ScopeClosed(time.Since(started), false)
		return appErrors.Internal(fmt.Errorf("commit scoped transaction: %w", err), "failed to persist changes")
	}
	committed = true
	s.transition(StateUnscoped)
	s.observer.ScopeClosed(time.Since(started), true)
	return nil
}

func (s *Scoper) release(tx *sqlx.Tx) {
	s.transition(StateReleasing)
	if err := tx.Rollback(); err != nil {
		s.logger.Warn("rollback scoped transaction", zap.Error(err))
	}
	s.transition(StateUnscoped)
}

func (s *Scoper) transition(state State) {
	if s.onTransition != nil {
		s.onTransition(state)
	}
}

// scopeValues maps an actor to the four GUC values. Global roles and the
// anonymous case bind the tenant to the empty string.
func scopeValues(actor *models.Actor) (tenantID, userID, employeeID, role string) {
	if actor == nil {
		return "", "", "", ""
	}
	if !actor.Role.Global() {
		tenantID = actor.Tenant()
	}
	return tenantID, actor.UserID, actor.Employee(), string(actor.Role)
}
