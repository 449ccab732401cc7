package workingday

//go:generate mockgen -source=service.go -destination=mocks/service_mocks.go -package=mocks

import "context"

// Service manages working-day schedules.
type Service interface {
	Create(ctx context.Context, req CreateWorkingDayRequest) (WorkingDayResponse, error)
	Update(ctx context.Context, req UpdateWorkingDayRequest) (WorkingDayResponse, error)
	Get(ctx context.Context, id string) (WorkingDayResponse, error)
	List(ctx context.Context) ([]WorkingDayResponse, error)
}
