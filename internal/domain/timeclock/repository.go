package timeclock

//go:generate mockgen -source=repository.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"
)

// Repository defines data access methods for time clock punches.
type Repository interface {
	// Create persists a new punch. A second punch with the same employee,
	// calendar date and register type fails with ErrDuplicateRegisterType.
	Create(ctx context.Context, punch Punch) (Punch, error)

	// GetByID returns ErrPunchNotFound when no punch has the id.
	GetByID(ctx context.Context, id string) (Punch, error)

	// FindByEmployeeAndDate lists the punches of one employee on one
	// calendar date ordered by employee id then register time.
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]Punch, error)

	// Update persists status and evaluation time of an existing punch.
	Update(ctx context.Context, punch Punch) error

	// MarkEvaluated persists status and evaluation time only while the
	// stored punch is still unevaluated. It fails with ErrAlreadyEvaluated
	// when another evaluation or a status override got there first.
	MarkEvaluated(ctx context.Context, punch Punch) error

	// ListUnevaluated returns punches registered before the cutoff whose
	// compliance evaluation never completed, oldest first.
	ListUnevaluated(ctx context.Context, before time.Time, limit int) ([]Punch, error)
}
