package response

import (
	"errors"
	"net/http"

	"github.com/gilrsantana/pontolegal/internal/domain/employee"
	"github.com/gilrsantana/pontolegal/internal/domain/notification"
	"github.com/gilrsantana/pontolegal/internal/domain/timeclock"
	"github.com/gilrsantana/pontolegal/internal/domain/workingday"
	"github.com/gilrsantana/pontolegal/internal/pkg/jwt"
	"github.com/gilrsantana/pontolegal/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs)
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, jwt.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, jwt.ErrAdminRequired):
		Forbidden(w, "Admin privilege required")

	// Time clock domain errors
	case errors.Is(err, timeclock.ErrDuplicateRegisterType):
		Conflict(w, timeclock.ErrDuplicateRegisterType.Error())
	case errors.Is(err, timeclock.ErrPunchNotFound):
		NotFound(w, "Punch not found")
	case errors.Is(err, timeclock.ErrInvalidDate):
		BadRequest(w, err.Error(), nil)

	// Working day domain errors
	case errors.Is(err, workingday.ErrWorkingDayNotFound):
		NotFound(w, "Working day not found")
	case errors.Is(err, workingday.ErrWorkingDayNameExists):
		Conflict(w, "Working day name already exists")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Notification domain errors
	case errors.Is(err, notification.ErrPunchIDRequired):
		BadRequest(w, "punch_id is required", nil)
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Review notification not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
