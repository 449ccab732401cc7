package workingday

import (
	"time"

	"github.com/gilrsantana/pontolegal/internal/pkg/validator"
)

type CreateWorkingDayRequest struct {
	Name             string `json:"name"`
	Type             string `json:"type"`
	StartWork        string `json:"start_work"`  // HH:MM format
	StartBreak       string `json:"start_break"` // HH:MM format
	EndBreak         string `json:"end_break"`   // HH:MM format
	EndWork          string `json:"end_work"`    // HH:MM format
	ToleranceMinutes *int   `json:"tolerance_minutes"`
}

// Params parses the request into entity params. Unparseable or missing
// times are reported under the entity's field keys; the entity rules run
// only once every value could be read.
func (r *CreateWorkingDayRequest) Params() (Params, error) {
	var errs validator.ValidationErrors

	parse := func(value, field, code, label string) time.Time {
		if validator.IsEmpty(value) {
			errs = errs.Add(field, code, label+" is required")
			return time.Time{}
		}
		t, ok := validator.IsValidTime(value)
		if !ok {
			errs = errs.Add(field, code, label+" must be a valid time in HH:MM format")
		}
		return t
	}

	p := Params{
		Name:       r.Name,
		Type:       ShiftCategory(r.Type),
		StartWork:  parse(r.StartWork, FieldStartWork, CodeInvalidStartWork, "start_work"),
		StartBreak: parse(r.StartBreak, FieldStartBreak, CodeInvalidStartBreak, "start_break"),
		EndBreak:   parse(r.EndBreak, FieldEndBreak, CodeInvalidEndBreak, "end_break"),
		EndWork:    parse(r.EndWork, FieldEndWork, CodeInvalidEndWork, "end_work"),
	}

	if r.ToleranceMinutes == nil {
		errs = errs.Add(FieldTolerance, CodeInvalidTolerance, "tolerance_minutes is required")
	} else {
		p.ToleranceMinutes = *r.ToleranceMinutes
	}

	return p, errs.Err()
}

type UpdateWorkingDayRequest struct {
	ID string `json:"-"`
	CreateWorkingDayRequest
}

type WorkingDayResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	StartWork        string `json:"start_work"`
	StartBreak       string `json:"start_break"`
	EndBreak         string `json:"end_break"`
	EndWork          string `json:"end_work"`
	ToleranceMinutes int    `json:"tolerance_minutes"`
	ShiftHours       int    `json:"shift_hours"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

// ToResponse maps the entity to its API view.
func (w WorkingDay) ToResponse() WorkingDayResponse {
	return WorkingDayResponse{
		ID:               w.ID,
		Name:             w.Name,
		Type:             string(w.Type),
		StartWork:        w.StartWork.Format(ClockLayout),
		StartBreak:       w.StartBreak.Format(ClockLayout),
		EndBreak:         w.EndBreak.Format(ClockLayout),
		EndWork:          w.EndWork.Format(ClockLayout),
		ToleranceMinutes: w.ToleranceMinutes,
		ShiftHours:       ShiftHours(w.StartWork, w.EndWork),
		CreatedAt:        w.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:        w.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
