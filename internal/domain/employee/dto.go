package employee

import "github.com/gilrsantana/pontolegal/internal/pkg/validator"

type CreateEmployeeRequest struct {
	FullName     string `json:"full_name"`
	WorkingDayID string `json:"working_day_id"`
}

func (r *CreateEmployeeRequest) Validate() error {
	return validate(r.FullName, r.WorkingDayID)
}

type AssignWorkingDayRequest struct {
	EmployeeID   string `json:"-"`
	WorkingDayID string `json:"working_day_id"`
}

func (r *AssignWorkingDayRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.WorkingDayID) {
		errs = errs.Add(FieldWorkingDayID, "REQUIRED", "working_day_id is required")
	}
	return errs.Err()
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	WorkingDayID string `json:"working_day_id"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func (e Employee) ToResponse() EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		FullName:     e.FullName,
		WorkingDayID: e.WorkingDayID,
		CreatedAt:    e.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    e.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
