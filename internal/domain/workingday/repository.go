package workingday

//go:generate mockgen -source=repository.go -destination=mocks/mocks.go -package=mocks

import "context"

// Repository persists working-day schedules.
type Repository interface {
	Create(ctx context.Context, workingDay WorkingDay) (WorkingDay, error)
	GetByID(ctx context.Context, id string) (WorkingDay, error)
	List(ctx context.Context) ([]WorkingDay, error)
	Update(ctx context.Context, workingDay WorkingDay) error
}
