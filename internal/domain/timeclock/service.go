package timeclock

//go:generate mockgen -source=service.go -destination=mocks/service_mocks.go -package=mocks

import (
	"context"
	"time"
)

// Service is the punch registration entry point.
type Service interface {
	// RegisterPunch validates, stores and evaluates a new punch. A punch that
	// falls outside the tolerance window is still registered; the returned
	// outcome carries ComplianceFlagged.
	RegisterPunch(ctx context.Context, req RegisterPunchRequest) (PunchRegistered, error)

	// SetPunchStatus is the administrative override of a punch status.
	SetPunchStatus(ctx context.Context, req UpdatePunchStatusRequest) (PunchResponse, error)

	GetPunch(ctx context.Context, id string) (PunchResponse, error)
	GetPunchesForEmployeeOnDate(ctx context.Context, employeeID string, date time.Time) ([]PunchResponse, error)

	// EvaluatePending re-runs compliance evaluation for punches whose
	// evaluation did not complete at registration time.
	EvaluatePending(ctx context.Context) (int, error)
}

// ComplianceEvaluator checks a freshly stored punch against the employee's
// working day. Implementations may mutate the punch status.
type ComplianceEvaluator interface {
	Evaluate(ctx context.Context, punch *Punch) (ComplianceOutcome, error)
}
