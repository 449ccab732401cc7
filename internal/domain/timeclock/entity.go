package timeclock

import (
	"time"

	"github.com/gilrsantana/pontolegal/internal/pkg/validator"
)

// Punch is a single time-clock registration for one employee.
type Punch struct {
	ID           string
	EmployeeID   string
	RegisterTime time.Time
	RegisterType RegisterType
	Status       Status

	// EvaluatedAt is nil until compliance evaluation has completed.
	EvaluatedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type RegisterType string

const (
	StartWorkingDay RegisterType = "START_WORKING_DAY"
	StartBreak      RegisterType = "START_BREAK"
	EndBreak        RegisterType = "END_BREAK"
	EndWorkingDay   RegisterType = "END_WORKING_DAY"
)

var RegisterTypeValues = []string{
	string(StartWorkingDay),
	string(StartBreak),
	string(EndBreak),
	string(EndWorkingDay),
}

func (t RegisterType) IsValid() bool {
	return validator.IsInSlice(string(t), RegisterTypeValues)
}

type Status string

const (
	StatusApproved Status = "APPROVED"
	StatusPending  Status = "PENDING"
)

var StatusValues = []string{
	string(StatusApproved),
	string(StatusPending),
}

func (s Status) IsValid() bool {
	return validator.IsInSlice(string(s), StatusValues)
}

const (
	FieldEmployeeID   = "TimeClock.EmployeeId"
	FieldRegisterType = "TimeClock.RegisterType"
	FieldRegisterTime = "TimeClock.RegisterTime"
	FieldStatus       = "TimeClock.Status"
)

// NewPunch validates the inputs and returns an APPROVED punch. All failures
// are collected into a validator.ValidationErrors.
func NewPunch(employeeID string, registerType RegisterType, registerTime, now time.Time) (Punch, error) {
	var errs validator.ValidationErrors

	if validator.IsEmpty(employeeID) {
		errs = errs.Add(FieldEmployeeID, "REQUIRED", "EmployeeId is required")
	}
	if !registerType.IsValid() {
		errs = errs.Add(FieldRegisterType, "INVALID_REGISTER_TYPE", "RegisterType is invalid")
	}
	if registerTime.IsZero() {
		errs = errs.Add(FieldRegisterTime, "REQUIRED", "RegisterTime is required")
	} else if registerTime.After(now) {
		errs = errs.Add(FieldRegisterTime, "FUTURE_REGISTER_TIME", "RegisterTime must be ≤ now")
	}

	if err := errs.Err(); err != nil {
		return Punch{}, err
	}

	return Punch{
		EmployeeID:   employeeID,
		RegisterTime: registerTime,
		RegisterType: registerType,
		Status:       StatusApproved,
	}, nil
}

// Flag demotes an APPROVED punch to PENDING. It reports false when the punch
// was already pending.
func (p *Punch) Flag() bool {
	if p.Status == StatusPending {
		return false
	}
	p.Status = StatusPending
	return true
}

// MarkEvaluated records that compliance evaluation has run for the punch.
func (p *Punch) MarkEvaluated(at time.Time) {
	p.EvaluatedAt = &at
}

// Date is the calendar day of the punch in its own location.
func (p Punch) Date() time.Time {
	return DateOf(p.RegisterTime)
}

// DateOf truncates t to midnight in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
