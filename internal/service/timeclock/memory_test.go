package timeclock

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/gilrsantana/pontolegal/internal/domain/employee"
	"github.com/gilrsantana/pontolegal/internal/domain/notification"
	"github.com/gilrsantana/pontolegal/internal/domain/timeclock"
	"github.com/gilrsantana/pontolegal/internal/domain/workingday"
)

// In-memory stores used by the end-to-end scenarios. They mirror the
// constraints of the Postgres schema that matter to registration.

type memPunches struct {
	mu     sync.Mutex
	seq    int
	byID   map[string]timeclock.Punch
	events []string
}

func newMemPunches() *memPunches {
	return &memPunches{byID: make(map[string]timeclock.Punch)}
}

func (m *memPunches) Create(_ context.Context, p timeclock.Punch) (timeclock.Punch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.EmployeeID == p.EmployeeID && existing.Date().Equal(p.Date()) && existing.RegisterType == p.RegisterType {
			return timeclock.Punch{}, timeclock.ErrDuplicateRegisterType
		}
	}
	m.seq++
	p.ID = fmt.Sprintf("p-%d", m.seq)
	p.CreatedAt = p.RegisterTime
	p.UpdatedAt = p.RegisterTime
	m.byID[p.ID] = p
	m.events = append(m.events, "create:"+p.ID)
	return p, nil
}

func (m *memPunches) GetByID(_ context.Context, id string) (timeclock.Punch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byID[id]
	if !ok {
		return timeclock.Punch{}, timeclock.ErrPunchNotFound
	}
	return p, nil
}

func (m *memPunches) FindByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) ([]timeclock.Punch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []timeclock.Punch
	for _, p := range m.byID {
		if p.EmployeeID == employeeID && p.Date().Equal(timeclock.DateOf(date)) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EmployeeID != out[j].EmployeeID {
			return out[i].EmployeeID < out[j].EmployeeID
		}
		return out[i].RegisterTime.Before(out[j].RegisterTime)
	})
	return out, nil
}

func (m *memPunches) Update(_ context.Context, p timeclock.Punch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[p.ID]; !ok {
		return timeclock.ErrPunchNotFound
	}
	m.byID[p.ID] = p
	m.events = append(m.events, "update:"+p.ID)
	return nil
}

func (m *memPunches) MarkEvaluated(_ context.Context, p timeclock.Punch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.byID[p.ID]
	if !ok {
		return timeclock.ErrPunchNotFound
	}
	if stored.EvaluatedAt != nil {
		return timeclock.ErrAlreadyEvaluated
	}
	m.byID[p.ID] = p
	m.events = append(m.events, "evaluate:"+p.ID)
	return nil
}

func (m *memPunches) ListUnevaluated(_ context.Context, before time.Time, limit int) ([]timeclock.Punch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []timeclock.Punch
	for _, p := range m.byID {
		if p.EvaluatedAt == nil && p.CreatedAt.Before(before) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RegisterTime.Before(out[j].RegisterTime) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memNotifications struct {
	mu    sync.Mutex
	items []notification.ReviewNotification
}

func (m *memNotifications) Create(_ context.Context, n notification.ReviewNotification) (notification.ReviewNotification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n.ID = fmt.Sprintf("n-%d", len(m.items)+1)
	m.items = append(m.items, n)
	return n, nil
}

func (m *memNotifications) ListByPunch(_ context.Context, punchID string) ([]notification.ReviewNotification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []notification.ReviewNotification
	for _, n := range m.items {
		if n.PunchID == punchID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memNotifications) ListPending(_ context.Context) ([]notification.ReviewNotification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]notification.ReviewNotification(nil), m.items...), nil
}

type memEmployees map[string]employee.Employee

func (m memEmployees) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	m[e.ID] = e
	return e, nil
}

func (m memEmployees) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := m[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (m memEmployees) UpdateWorkingDay(_ context.Context, id string, workingDayID string) error {
	e, ok := m[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.WorkingDayID = workingDayID
	m[id] = e
	return nil
}

type memWorkingDays map[string]workingday.WorkingDay

func (m memWorkingDays) Create(_ context.Context, wd workingday.WorkingDay) (workingday.WorkingDay, error) {
	m[wd.ID] = wd
	return wd, nil
}

func (m memWorkingDays) GetByID(_ context.Context, id string) (workingday.WorkingDay, error) {
	wd, ok := m[id]
	if !ok {
		return workingday.WorkingDay{}, workingday.ErrWorkingDayNotFound
	}
	return wd, nil
}

func (m memWorkingDays) List(_ context.Context) ([]workingday.WorkingDay, error) {
	out := make([]workingday.WorkingDay, 0, len(m))
	for _, wd := range m {
		out = append(out, wd)
	}
	return out, nil
}

func (m memWorkingDays) Update(_ context.Context, wd workingday.WorkingDay) error {
	m[wd.ID] = wd
	return nil
}

type passthroughTx struct{}

func (passthroughTx) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type discardNotifier struct{}

func (discardNotifier) Publish(context.Context, notification.ReviewNotification) {}
func (discardNotifier) ListByPunch(context.Context, string) ([]notification.ReviewNotificationResponse, error) {
	return nil, nil
}
func (discardNotifier) ListPending(context.Context) ([]notification.ReviewNotificationResponse, error) {
	return nil, nil
}
func (discardNotifier) Subscribe(context.Context) (<-chan notification.SSEEvent, func()) {
	return nil, func() {}
}
