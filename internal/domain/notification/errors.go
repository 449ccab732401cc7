package notification

import "errors"

// Notification domain errors
var (
	ErrNotificationNotFound = errors.New("review notification not found")
	ErrAddNotification      = errors.New("error adding review notification")
	ErrPunchIDRequired      = errors.New("punch_id is required")
)
