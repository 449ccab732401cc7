package employee

//go:generate mockgen -source=repository.go -destination=mocks/mocks.go -package=mocks

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	UpdateWorkingDay(ctx context.Context, id string, workingDayID string) error
}
