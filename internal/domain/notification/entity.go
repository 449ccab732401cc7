package notification

import (
	"time"
)

// ReviewStatus is the lifecycle state of a review notification. Resolution
// happens outside this service, so PENDING is the only state it creates.
type ReviewStatus string

const (
	ReviewStatusPending ReviewStatus = "PENDING"
)

// ReviewNotification flags one out-of-tolerance punch for manual review.
// A punch may own several notifications; storage does not deduplicate.
type ReviewNotification struct {
	ID           string
	PunchID      string
	EmployeeID   string
	Status       ReviewStatus
	RegisterType string
	RegisterTime time.Time

	// WindowStart and WindowEnd are the HH:MM bounds the punch missed.
	WindowStart string
	WindowEnd   string
	CreatedAt   time.Time
}

// NewReviewNotification returns a PENDING notification for the given punch.
func NewReviewNotification(punchID, employeeID, registerType string, registerTime time.Time, windowStart, windowEnd string) ReviewNotification {
	return ReviewNotification{
		PunchID:      punchID,
		EmployeeID:   employeeID,
		Status:       ReviewStatusPending,
		RegisterType: registerType,
		RegisterTime: registerTime,
		WindowStart:  windowStart,
		WindowEnd:    windowEnd,
	}
}
