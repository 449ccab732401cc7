package notification

import (
	"time"
)

// ============= Response DTOs =============

// ReviewNotificationResponse represents a review notification in API responses
type ReviewNotificationResponse struct {
	ID           string       `json:"id"`
	PunchID      string       `json:"punch_id"`
	EmployeeID   string       `json:"employee_id"`
	Status       ReviewStatus `json:"status"`
	RegisterType string       `json:"register_type"`
	RegisterTime string       `json:"register_time"`
	WindowStart  string       `json:"window_start"`
	WindowEnd    string       `json:"window_end"`
	CreatedAt    time.Time    `json:"created_at"`
}

func (n ReviewNotification) ToResponse() ReviewNotificationResponse {
	return ReviewNotificationResponse{
		ID:           n.ID,
		PunchID:      n.PunchID,
		EmployeeID:   n.EmployeeID,
		Status:       n.Status,
		RegisterType: n.RegisterType,
		RegisterTime: n.RegisterTime.Format(time.RFC3339),
		WindowStart:  n.WindowStart,
		WindowEnd:    n.WindowEnd,
		CreatedAt:    n.CreatedAt,
	}
}

// ============= SSE Event =============

// EventReviewCreated is the SSE event name for a new review notification.
const EventReviewCreated = "review_notification"

// SSEEvent represents a Server-Sent Event
type SSEEvent struct {
	Event string                     `json:"event"`
	Data  ReviewNotificationResponse `json:"data"`
}

// SSETokenResponse carries the short-lived token the stream endpoint expects
type SSETokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}
