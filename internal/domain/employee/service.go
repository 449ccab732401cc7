package employee

//go:generate mockgen -source=service.go -destination=mocks/service_mocks.go -package=mocks

import (
	"context"
)

// EmployeeService defines the employee operations attendance relies on
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// AssignWorkingDay moves the employee to another schedule; later punches
	// are evaluated against it.
	AssignWorkingDay(ctx context.Context, req AssignWorkingDayRequest) (EmployeeResponse, error)
}
