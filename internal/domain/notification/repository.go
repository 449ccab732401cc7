package notification

//go:generate mockgen -source=repository.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
)

// Repository defines the review notification repository interface
type Repository interface {
	Create(ctx context.Context, n ReviewNotification) (ReviewNotification, error)
	ListByPunch(ctx context.Context, punchID string) ([]ReviewNotification, error)
	ListPending(ctx context.Context) ([]ReviewNotification, error)
}
