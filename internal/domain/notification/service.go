package notification

//go:generate mockgen -source=service.go -destination=mocks/service_mocks.go -package=mocks

import (
	"context"
)

// Service defines the review notification service interface
type Service interface {
	// Publish fans a persisted notification out to live subscribers and the
	// event stream. Delivery failures are logged, never returned.
	Publish(ctx context.Context, n ReviewNotification)

	ListByPunch(ctx context.Context, punchID string) ([]ReviewNotificationResponse, error)
	ListPending(ctx context.Context) ([]ReviewNotificationResponse, error)

	// Subscribe streams review notifications as they are created.
	Subscribe(ctx context.Context) (<-chan SSEEvent, func())
}
