package timeclock

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/gilrsantana/pontolegal/internal/domain/employee"
	"github.com/gilrsantana/pontolegal/internal/domain/timeclock"
	"github.com/gilrsantana/pontolegal/internal/domain/workingday"
	"github.com/gilrsantana/pontolegal/internal/pkg/lock"
	"github.com/gilrsantana/pontolegal/internal/service/compliance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scenario struct {
	service       *TimeClockServiceImpl
	evaluator     *compliance.Evaluator
	punches       *memPunches
	notifications *memNotifications
	employees     memEmployees
}

func newScenario(t *testing.T, now time.Time) *scenario {
	t.Helper()
	clock := func(s string) time.Time {
		v, err := time.Parse(workingday.ClockLayout, s)
		require.NoError(t, err)
		return v
	}

	wd, err := workingday.New(workingday.Params{
		Name:             "Commercial",
		Type:             workingday.ShiftTenHours,
		StartWork:        clock("08:00"),
		StartBreak:       clock("12:00"),
		EndBreak:         clock("13:00"),
		EndWork:          clock("18:00"),
		ToleranceMinutes: 15,
	})
	require.NoError(t, err)
	wd.ID = "wd-1"

	sc := &scenario{
		punches:       newMemPunches(),
		notifications: &memNotifications{},
		employees:     memEmployees{"emp-1": {ID: "emp-1", FullName: "Ana Souza", WorkingDayID: "wd-1"}},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sc.evaluator = compliance.NewEvaluator(sc.employees, memWorkingDays{"wd-1": wd}, sc.punches, sc.notifications, passthroughTx{}, discardNotifier{}, nil, logger)

	sc.service = NewTimeClockService(sc.punches, sc.evaluator, lock.NewLocal(), nil, logger, Config{})
	sc.service.now = func() time.Time { return now }
	return sc
}

func at(hour, minute int) time.Time {
	return time.Date(2024, 5, 10, hour, minute, 0, 0, time.UTC)
}

func TestScenario_CompliantStartAndFlaggedEnd(t *testing.T) {
	sc := newScenario(t, at(23, 0))
	ctx := context.Background()

	start, err := sc.service.RegisterPunch(ctx, timeclock.RegisterPunchRequest{
		EmployeeID: "emp-1", RegisterType: string(timeclock.StartWorkingDay), RegisterTime: at(8, 10),
	})
	require.NoError(t, err)
	assert.Equal(t, timeclock.StatusApproved, start.Punch.Status)
	assert.Equal(t, timeclock.ComplianceCompliant, start.Compliance.Status)
	assert.Empty(t, sc.notifications.items)

	end, err := sc.service.RegisterPunch(ctx, timeclock.RegisterPunchRequest{
		EmployeeID: "emp-1", RegisterType: string(timeclock.EndWorkingDay), RegisterTime: at(18, 40),
	})
	require.NoError(t, err)
	assert.Equal(t, timeclock.StatusPending, end.Punch.Status)
	assert.Equal(t, timeclock.ComplianceFlagged, end.Compliance.Status)

	require.Len(t, sc.notifications.items, 1)
	assert.Equal(t, end.Punch.ID, sc.notifications.items[0].PunchID)

	stored, err := sc.punches.GetByID(ctx, end.Punch.ID)
	require.NoError(t, err)
	assert.Equal(t, timeclock.StatusPending, stored.Status)
}

func TestScenario_DuplicateRegisterTypeSameDay(t *testing.T) {
	sc := newScenario(t, at(23, 0))
	ctx := context.Background()

	_, err := sc.service.RegisterPunch(ctx, timeclock.RegisterPunchRequest{
		EmployeeID: "emp-1", RegisterType: string(timeclock.StartWorkingDay), RegisterTime: at(8, 0),
	})
	require.NoError(t, err)

	_, err = sc.service.RegisterPunch(ctx, timeclock.RegisterPunchRequest{
		EmployeeID: "emp-1", RegisterType: string(timeclock.StartWorkingDay), RegisterTime: at(21, 45),
	})
	assert.ErrorIs(t, err, timeclock.ErrDuplicateRegisterType)

	// next day is a fresh slate
	_, err = sc.service.RegisterPunch(ctx, timeclock.RegisterPunchRequest{
		EmployeeID: "emp-1", RegisterType: string(timeclock.StartWorkingDay), RegisterTime: at(8, 0).AddDate(0, 0, -1),
	})
	assert.NoError(t, err)
}

func TestScenario_ConcurrentDuplicatesOnlyOneWins(t *testing.T) {
	sc := newScenario(t, at(23, 0))
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = sc.service.RegisterPunch(ctx, timeclock.RegisterPunchRequest{
				EmployeeID: "emp-1", RegisterType: string(timeclock.StartBreak), RegisterTime: at(12, i),
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, timeclock.ErrDuplicateRegisterType)
	}
	assert.Equal(t, 1, succeeded)
}

func TestScenario_ReadsAreOrderedAndRepeatable(t *testing.T) {
	sc := newScenario(t, at(23, 0))
	ctx := context.Background()

	for _, r := range []struct {
		registerType timeclock.RegisterType
		h, m         int
	}{
		{timeclock.EndWorkingDay, 18, 2},
		{timeclock.StartWorkingDay, 8, 1},
		{timeclock.EndBreak, 13, 0},
		{timeclock.StartBreak, 12, 5},
	} {
		_, err := sc.service.RegisterPunch(ctx, timeclock.RegisterPunchRequest{
			EmployeeID: "emp-1", RegisterType: string(r.registerType), RegisterTime: at(r.h, r.m),
		})
		require.NoError(t, err)
	}

	first, err := sc.service.GetPunchesForEmployeeOnDate(ctx, "emp-1", at(0, 0))
	require.NoError(t, err)
	second, err := sc.service.GetPunchesForEmployeeOnDate(ctx, "emp-1", at(0, 0))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, first, 4)
	assert.Equal(t, []string{"START_WORKING_DAY", "START_BREAK", "END_BREAK", "END_WORKING_DAY"}, []string{
		first[0].RegisterType, first[1].RegisterType, first[2].RegisterType, first[3].RegisterType,
	})
}

func TestScenario_RetryEvaluatesPunchOnceEmployeeIsResolvable(t *testing.T) {
	sc := newScenario(t, at(23, 0))
	ctx := context.Background()
	delete(sc.employees, "emp-1")

	registered, err := sc.service.RegisterPunch(ctx, timeclock.RegisterPunchRequest{
		EmployeeID: "emp-1", RegisterType: string(timeclock.EndWorkingDay), RegisterTime: at(18, 40),
	})
	require.NoError(t, err)
	assert.Equal(t, timeclock.ComplianceSkipped, registered.Compliance.Status)
	assert.Equal(t, timeclock.StatusApproved, registered.Punch.Status)
	assert.Empty(t, sc.notifications.items)

	sc.employees["emp-1"] = employee.Employee{ID: "emp-1", WorkingDayID: "wd-1"}

	n, err := sc.service.EvaluatePending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	stored, err := sc.punches.GetByID(ctx, registered.Punch.ID)
	require.NoError(t, err)
	assert.Equal(t, timeclock.StatusPending, stored.Status)
	assert.NotNil(t, stored.EvaluatedAt)
	assert.Len(t, sc.notifications.items, 1)

	// a second run finds nothing left to evaluate
	n, err = sc.service.EvaluatePending(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, sc.notifications.items, 1)
}

func TestScenario_OverlappingRetriesRaiseOneNotification(t *testing.T) {
	sc := newScenario(t, at(23, 0))
	ctx := context.Background()
	delete(sc.employees, "emp-1")

	registered, err := sc.service.RegisterPunch(ctx, timeclock.RegisterPunchRequest{
		EmployeeID: "emp-1", RegisterType: string(timeclock.EndWorkingDay), RegisterTime: at(18, 40),
	})
	require.NoError(t, err)
	require.Equal(t, timeclock.ComplianceSkipped, registered.Compliance.Status)

	sc.employees["emp-1"] = employee.Employee{ID: "emp-1", WorkingDayID: "wd-1"}

	// two runs load the same unevaluated punch before either writes
	first, err := sc.punches.ListUnevaluated(ctx, at(23, 0), 10)
	require.NoError(t, err)
	second, err := sc.punches.ListUnevaluated(ctx, at(23, 0), 10)
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Len(t, second, 1)

	outcomes := make([]timeclock.ComplianceOutcome, 2)
	var wg sync.WaitGroup
	for i, copies := range [][]timeclock.Punch{first, second} {
		wg.Add(1)
		go func(i int, punch timeclock.Punch) {
			defer wg.Done()
			outcome, err := sc.evaluator.Evaluate(ctx, &punch)
			assert.NoError(t, err)
			outcomes[i] = outcome
		}(i, copies[0])
	}
	wg.Wait()

	notifications, err := sc.notifications.ListByPunch(ctx, registered.Punch.ID)
	require.NoError(t, err)
	assert.Len(t, notifications, 1)

	assert.Equal(t, timeclock.ComplianceFlagged, outcomes[0].Status)
	assert.Equal(t, timeclock.ComplianceFlagged, outcomes[1].Status)
	assert.ElementsMatch(t, []string{notifications[0].ID, ""}, []string{outcomes[0].NotificationID, outcomes[1].NotificationID})
}

func TestScenario_RetryKeepsStatusOverride(t *testing.T) {
	sc := newScenario(t, at(23, 0))
	ctx := context.Background()
	delete(sc.employees, "emp-1")

	registered, err := sc.service.RegisterPunch(ctx, timeclock.RegisterPunchRequest{
		EmployeeID: "emp-1", RegisterType: string(timeclock.EndWorkingDay), RegisterTime: at(18, 40),
	})
	require.NoError(t, err)

	stale, err := sc.punches.ListUnevaluated(ctx, at(23, 0), 10)
	require.NoError(t, err)
	require.Len(t, stale, 1)

	_, err = sc.service.SetPunchStatus(ctx, timeclock.UpdatePunchStatusRequest{ID: registered.Punch.ID, Status: "APPROVED"})
	require.NoError(t, err)

	sc.employees["emp-1"] = employee.Employee{ID: "emp-1", WorkingDayID: "wd-1"}

	outcome, err := sc.evaluator.Evaluate(ctx, &stale[0])
	require.NoError(t, err)
	assert.Equal(t, timeclock.ComplianceCompliant, outcome.Status)

	stored, err := sc.punches.GetByID(ctx, registered.Punch.ID)
	require.NoError(t, err)
	assert.Equal(t, timeclock.StatusApproved, stored.Status)
	assert.Empty(t, sc.notifications.items)

	n, err := sc.service.EvaluatePending(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
