package compliance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gilrsantana/pontolegal/internal/domain/employee"
	"github.com/gilrsantana/pontolegal/internal/domain/notification"
	"github.com/gilrsantana/pontolegal/internal/domain/timeclock"
	"github.com/gilrsantana/pontolegal/internal/domain/workingday"
	"github.com/gilrsantana/pontolegal/internal/pkg/database"
	"github.com/gilrsantana/pontolegal/internal/pkg/metrics"
)

// Evaluator resolves the employee's working day, checks the punch against it
// and, when the punch is out of tolerance, demotes it and records a review
// notification in the same transaction.
type Evaluator struct {
	employees     employee.EmployeeRepository
	workingDays   workingday.Repository
	punches       timeclock.Repository
	notifications notification.Repository
	tx            database.Transactor
	notifier      notification.Service
	metrics       *metrics.Metrics
	logger        *slog.Logger
	now           func() time.Time
}

const reasonAlreadyEvaluated = "already evaluated"

var _ timeclock.ComplianceEvaluator = (*Evaluator)(nil)

func NewEvaluator(
	employees employee.EmployeeRepository,
	workingDays workingday.Repository,
	punches timeclock.Repository,
	notifications notification.Repository,
	tx database.Transactor,
	notifier notification.Service,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Evaluator {
	return &Evaluator{
		employees:     employees,
		workingDays:   workingDays,
		punches:       punches,
		notifications: notifications,
		tx:            tx,
		notifier:      notifier,
		metrics:       m,
		logger:        logger,
		now:           time.Now,
	}
}

// Evaluate runs compliance for a persisted punch and updates it in place.
// A punch whose EvaluatedAt is already set, in memory or in storage, is
// reported from its current status without being checked again. On error
// the returned outcome is Skipped or Failed and the punch is left
// unevaluated.
func (e *Evaluator) Evaluate(ctx context.Context, punch *timeclock.Punch) (outcome timeclock.ComplianceOutcome, err error) {
	if punch.EvaluatedAt != nil {
		return alreadyEvaluated(*punch), nil
	}

	start := time.Now()
	defer func() {
		e.metrics.ObserveEvaluateLatency(time.Since(start))
		if outcome.Reason != reasonAlreadyEvaluated {
			e.metrics.IncrementOutcome(string(punch.RegisterType), string(outcome.Status))
		}
	}()

	wd, err := e.resolveWorkingDay(ctx, punch.EmployeeID)
	if err != nil {
		return timeclock.ComplianceOutcome{Status: timeclock.ComplianceSkipped, Reason: reason(err)}, err
	}

	decision := Check(*punch, wd)
	outcome = outcomeFor(decision)

	if decision.Compliant {
		evaluated := *punch
		evaluated.MarkEvaluated(e.now())
		if err := e.punches.MarkEvaluated(ctx, evaluated); err != nil {
			if errors.Is(err, timeclock.ErrAlreadyEvaluated) {
				return e.reload(ctx, punch)
			}
			return timeclock.ComplianceOutcome{Status: timeclock.ComplianceFailed, Reason: reason(err)}, fmt.Errorf("mark punch evaluated: %w", err)
		}
		*punch = evaluated
		return outcome, nil
	}

	flagged := *punch
	flagged.Flag()
	flagged.MarkEvaluated(e.now())

	var created notification.ReviewNotification
	err = e.tx.InTransaction(ctx, func(txCtx context.Context) error {
		// the conditional write makes a concurrent evaluation roll back here
		// before it creates a second notification
		if err := e.punches.MarkEvaluated(txCtx, flagged); err != nil {
			return fmt.Errorf("flag punch: %w", err)
		}

		n := notification.NewReviewNotification(
			flagged.ID,
			flagged.EmployeeID,
			string(flagged.RegisterType),
			flagged.RegisterTime,
			outcome.WindowStart,
			outcome.WindowEnd,
		)
		var createErr error
		created, createErr = e.notifications.Create(txCtx, n)
		if createErr != nil {
			return fmt.Errorf("create review notification: %w", createErr)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, timeclock.ErrAlreadyEvaluated) {
			return e.reload(ctx, punch)
		}
		return timeclock.ComplianceOutcome{Status: timeclock.ComplianceFailed, Reason: reason(err)}, err
	}

	*punch = flagged
	outcome.NotificationID = created.ID
	e.metrics.IncrementReviewNotifications()

	e.logger.InfoContext(ctx, "punch flagged for review",
		"punch_id", punch.ID,
		"employee_id", punch.EmployeeID,
		"register_type", punch.RegisterType,
		"register_time", punch.RegisterTime.Format(workingday.ClockLayout),
		"window_start", outcome.WindowStart,
		"window_end", outcome.WindowEnd,
		"notification_id", created.ID,
	)

	e.notifier.Publish(ctx, created)

	return outcome, nil
}

// reload refreshes a punch that another evaluation or a status override
// settled first.
func (e *Evaluator) reload(ctx context.Context, punch *timeclock.Punch) (timeclock.ComplianceOutcome, error) {
	stored, err := e.punches.GetByID(ctx, punch.ID)
	if err != nil {
		return timeclock.ComplianceOutcome{Status: timeclock.ComplianceFailed, Reason: reason(err)}, fmt.Errorf("reload evaluated punch: %w", err)
	}

	e.logger.DebugContext(ctx, "punch already evaluated", "punch_id", punch.ID)

	*punch = stored
	return alreadyEvaluated(stored), nil
}

func alreadyEvaluated(p timeclock.Punch) timeclock.ComplianceOutcome {
	status := timeclock.ComplianceCompliant
	if p.Status == timeclock.StatusPending {
		status = timeclock.ComplianceFlagged
	}
	return timeclock.ComplianceOutcome{Status: status, Reason: reasonAlreadyEvaluated}
}

func (e *Evaluator) resolveWorkingDay(ctx context.Context, employeeID string) (workingday.WorkingDay, error) {
	emp, err := e.employees.GetByID(ctx, employeeID)
	if err != nil {
		return workingday.WorkingDay{}, fmt.Errorf("resolve employee %s: %w", employeeID, err)
	}

	wd, err := e.workingDays.GetByID(ctx, emp.WorkingDayID)
	if err != nil {
		return workingday.WorkingDay{}, fmt.Errorf("resolve working day %s: %w", emp.WorkingDayID, err)
	}

	return wd, nil
}

func outcomeFor(d Decision) timeclock.ComplianceOutcome {
	if !d.Applicable {
		return timeclock.ComplianceOutcome{Status: timeclock.ComplianceNotApplicable}
	}

	outcome := timeclock.ComplianceOutcome{
		Status:      timeclock.ComplianceCompliant,
		Boundary:    FormatMinutes(d.Boundary),
		WindowStart: FormatMinutes(d.WindowStart),
		WindowEnd:   FormatMinutes(d.WindowEnd),
	}
	if !d.Compliant {
		outcome.Status = timeclock.ComplianceFlagged
	}
	return outcome
}

// reason keeps the outcome readable for API clients; the full error is logged
// by the caller.
func reason(err error) string {
	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return employee.ErrEmployeeNotFound.Error()
	case errors.Is(err, workingday.ErrWorkingDayNotFound):
		return workingday.ErrWorkingDayNotFound.Error()
	case errors.Is(err, notification.ErrAddNotification):
		return notification.ErrAddNotification.Error()
	default:
		return "compliance evaluation failed"
	}
}
