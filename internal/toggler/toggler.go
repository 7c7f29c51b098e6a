package toggler

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/tempaccess/toggler/internal/config"
	"github.com/tempaccess/toggler/internal/entity"
	"github.com/tempaccess/toggler/internal/logger"
)

const (
	OpValidate       = "validate event"
	OpResolveUser    = "resolve identity"
	OpApplyAction    = "apply assignment"
	OpRetireSchedule = "retire schedule"
)

// UserResolver looks up user ids by username in the identity store.
type UserResolver interface {
	ListUserIds(ctx context.Context, username string) ([]string, error)
}

// AssignmentApplier creates and deletes account assignments.
type AssignmentApplier interface {
	CreateAssignment(ctx context.Context, a *entity.Assignment) error
	DeleteAssignment(ctx context.Context, a *entity.Assignment) error
}

// ScheduleRetirer deletes the schedule which triggered the invocation.
type ScheduleRetirer interface {
	DeleteSchedule(ctx context.Context, sc *entity.Schedule) error
}

// Toggler grants or revokes the admin permission set for one user on one account,
// then deletes the triggering schedule so that the action fires exactly once.
// It keeps no state between invocations.
type Toggler struct {
	config      *config.Config
	users       UserResolver
	assignments AssignmentApplier
	schedules   ScheduleRetirer
	log         *logger.Logger
}

func New(c *config.Config, users UserResolver, assignments AssignmentApplier, schedules ScheduleRetirer, log *logger.Logger) *Toggler {
	if log == nil {
		log = logger.WithNamespace("toggler")
	}
	return &Toggler{
		config:      c,
		users:       users,
		assignments: assignments,
		schedules:   schedules,
		log:         log,
	}
}

// Run executes resolve identity, apply assignment and retire schedule in order.
// The first failure stops the sequence and is returned as *Fault.
// Nothing is retried or rolled back: when the assignment is applied but the schedule
// could not be deleted, the assignment stays and the schedule stays active.
func (t *Toggler) Run(ctx context.Context, ev *entity.Event) error {
	if err := ev.Validate(); err != nil {
		return fault(KindInvalidEvent, OpValidate, err)
	}
	sc, err := ev.Schedule()
	if err != nil {
		return fault(KindInvalidEvent, OpValidate, err)
	}

	userId, err := t.ResolveIdentity(ctx, ev.Username)
	if err != nil {
		return err
	}
	if err := t.ApplyAssignment(ctx, ev.Action, userId, ev.AccountId); err != nil {
		return err
	}
	if err := t.RetireSchedule(ctx, sc); err != nil {
		t.log.Warnf(
			"%s for user %s on account %s has been applied, but schedule %s is still active and will fire again\n",
			ev.Action, ev.Username, ev.AccountId, sc.Name,
		)
		return err
	}

	t.log.Infof("%s assignment for user %s on account %s completed\n", ev.Action, ev.Username, ev.AccountId)
	return nil
}

// ResolveIdentity returns the user id of the username.
// The first user is taken when the store returns more than one.
func (t *Toggler) ResolveIdentity(ctx context.Context, username string) (string, error) {
	ids, err := t.users.ListUserIds(ctx, username)
	if err != nil {
		return "", fault(KindService, OpResolveUser, err)
	}
	if len(ids) == 0 {
		return "", fault(KindUserNotFound, OpResolveUser,
			errors.Errorf("no user named %q in identity store %s", username, t.config.IdentityStoreId),
		)
	}
	if len(ids) > 1 {
		t.log.Warnf("%d users matched %q, use first one: %s\n", len(ids), username, strings.Join(ids, ","))
	}
	t.log.Printf("Resolved user %s: %s\n", username, ids[0])
	return ids[0], nil
}

// ApplyAssignment creates or deletes the admin assignment of the user on the account.
func (t *Toggler) ApplyAssignment(ctx context.Context, action entity.Action, userId, accountId string) error {
	a := entity.NewUserAssignment(t.config.InstanceArn, t.config.PermissionSetArn, accountId, userId)

	var err error
	switch action {
	case entity.ActionCreate:
		err = t.assignments.CreateAssignment(ctx, a)
	case entity.ActionDelete:
		err = t.assignments.DeleteAssignment(ctx, a)
	default:
		t.log.Errorf("Unknown action: %s\n", action)
		return fault(KindUnknownAction, OpApplyAction, errors.Errorf("unknown action %q", action))
	}
	if err != nil {
		return fault(KindService, OpApplyAction, err)
	}
	return nil
}

// RetireSchedule deletes the schedule so it never fires again.
func (t *Toggler) RetireSchedule(ctx context.Context, sc *entity.Schedule) error {
	if err := t.schedules.DeleteSchedule(ctx, sc); err != nil {
		return fault(KindService, OpRetireSchedule, err)
	}
	return nil
}

// KindOf returns the fault kind of err, or 0 when err is not a *Fault.
func KindOf(err error) Kind {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind
	}
	return 0
}
