package employee

import (
	"strings"
	"time"

	"github.com/gilrsantana/pontolegal/internal/pkg/validator"
)

// Employee is the slice of the employee record attendance needs: who the
// person is and which working day they are held to.
type Employee struct {
	ID           string
	FullName     string
	WorkingDayID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const (
	FieldFullName     = "Employee.FullName"
	FieldWorkingDayID = "Employee.WorkingDayId"
)

func validate(fullName, workingDayID string) error {
	var errs validator.ValidationErrors

	if n := len([]rune(strings.TrimSpace(fullName))); n < 3 || n > 120 {
		errs = errs.Add(FieldFullName, "INVALID_FULL_NAME", "full_name must be between 3 and 120 characters")
	}
	if validator.IsEmpty(workingDayID) {
		errs = errs.Add(FieldWorkingDayID, "REQUIRED", "working_day_id is required")
	}

	return errs.Err()
}
