package timeclock

import (
	"strings"
	"time"

	"github.com/gilrsantana/pontolegal/internal/pkg/validator"
)

// ========================================
// REGISTRATION DTOs
// ========================================

type RegisterPunchRequest struct {
	EmployeeID   string    `json:"employee_id"`
	RegisterType string    `json:"register_type"`
	RegisterTime time.Time `json:"register_time"` // RFC3339
}

// ComplianceStatus classifies what evaluation concluded for a punch.
type ComplianceStatus string

const (
	ComplianceCompliant     ComplianceStatus = "compliant"
	ComplianceFlagged       ComplianceStatus = "flagged"
	ComplianceNotApplicable ComplianceStatus = "not_applicable"
	ComplianceSkipped       ComplianceStatus = "skipped"
	ComplianceFailed        ComplianceStatus = "failed"
)

// ComplianceOutcome reports the evaluation result next to the registration
// result. Skipped and Failed outcomes leave the punch unevaluated so the
// retry job can pick it up.
type ComplianceOutcome struct {
	Status         ComplianceStatus `json:"status"`
	Boundary       string           `json:"boundary,omitempty"`     // HH:MM
	WindowStart    string           `json:"window_start,omitempty"` // HH:MM
	WindowEnd      string           `json:"window_end,omitempty"`   // HH:MM
	NotificationID string           `json:"notification_id,omitempty"`
	Reason         string           `json:"reason,omitempty"`
}

// Evaluated reports whether evaluation ran to completion.
func (o ComplianceOutcome) Evaluated() bool {
	return o.Status != ComplianceSkipped && o.Status != ComplianceFailed
}

// PunchRegistered is the two-part result of a registration.
type PunchRegistered struct {
	Punch      Punch
	Compliance ComplianceOutcome
}

type RegisterPunchResponse struct {
	Punch      PunchResponse     `json:"punch"`
	Compliance ComplianceOutcome `json:"compliance"`
}

func (r PunchRegistered) ToResponse() RegisterPunchResponse {
	return RegisterPunchResponse{
		Punch:      r.Punch.ToResponse(),
		Compliance: r.Compliance,
	}
}

// ========================================
// STATUS OVERRIDE DTOs
// ========================================

type UpdatePunchStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdatePunchStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = errs.Add("TimeClock.Id", "REQUIRED", "id is required")
	}
	if !Status(r.Status).IsValid() {
		errs = errs.Add(FieldStatus, "INVALID_STATUS", "status must be one of: "+strings.Join(StatusValues, ", "))
	}

	return errs.Err()
}

// ========================================
// VIEW DTOs
// ========================================

type PunchResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	RegisterDate string  `json:"register_date"`
	RegisterTime string  `json:"register_time"`
	RegisterType string  `json:"register_type"`
	Status       string  `json:"status"`
	EvaluatedAt  *string `json:"evaluated_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func (p Punch) ToResponse() PunchResponse {
	var evaluatedAt *string
	if p.EvaluatedAt != nil {
		formatted := p.EvaluatedAt.Format(time.RFC3339)
		evaluatedAt = &formatted
	}

	return PunchResponse{
		ID:           p.ID,
		EmployeeID:   p.EmployeeID,
		RegisterDate: p.Date().Format("2006-01-02"),
		RegisterTime: p.RegisterTime.Format(time.RFC3339),
		RegisterType: string(p.RegisterType),
		Status:       string(p.Status),
		EvaluatedAt:  evaluatedAt,
		CreatedAt:    p.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    p.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
