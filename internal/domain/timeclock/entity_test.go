package timeclock

import (
	"errors"
	"testing"
	"time"

	"github.com/gilrsantana/pontolegal/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func TestNewPunch_Approved(t *testing.T) {
	at := now.Add(-time.Hour)

	p, err := NewPunch("emp-1", StartWorkingDay, at, now)

	require.NoError(t, err)
	assert.Equal(t, "emp-1", p.EmployeeID)
	assert.Equal(t, StartWorkingDay, p.RegisterType)
	assert.Equal(t, at, p.RegisterTime)
	assert.Equal(t, StatusApproved, p.Status)
	assert.Nil(t, p.EvaluatedAt)
}

func TestNewPunch_RegisterTimeEqualToNowIsAccepted(t *testing.T) {
	_, err := NewPunch("emp-1", EndWorkingDay, now, now)
	assert.NoError(t, err)
}

func TestNewPunch_CollectsErrors(t *testing.T) {
	_, err := NewPunch("  ", "LUNCH", now.Add(time.Minute), now)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Len(t, errs, 3)
	assert.True(t, errs.Has(FieldEmployeeID))
	assert.True(t, errs.Has(FieldRegisterType))
	assert.True(t, errs.Has(FieldRegisterTime))
	assert.Equal(t, "EmployeeId is required", errs.ToMap()[FieldEmployeeID])
	assert.Equal(t, "RegisterTime must be ≤ now", errs.ToMap()[FieldRegisterTime])
}

func TestNewPunch_MissingRegisterTime(t *testing.T) {
	_, err := NewPunch("emp-1", StartBreak, time.Time{}, now)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	require.Len(t, errs, 1)
	assert.Equal(t, "REQUIRED", errs[0].Code)
}

func TestPunch_FlagOnlyOnce(t *testing.T) {
	p, err := NewPunch("emp-1", StartBreak, now, now)
	require.NoError(t, err)

	assert.True(t, p.Flag())
	assert.Equal(t, StatusPending, p.Status)
	assert.False(t, p.Flag())
	assert.Equal(t, StatusPending, p.Status)
}

func TestPunch_Date(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	p := Punch{RegisterTime: time.Date(2024, 5, 10, 23, 30, 0, 0, loc)}

	d := p.Date()
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, loc), d)
}

func TestUpdatePunchStatusRequest_Validate(t *testing.T) {
	ok := UpdatePunchStatusRequest{ID: "p-1", Status: "PENDING"}
	assert.NoError(t, ok.Validate())

	bad := UpdatePunchStatusRequest{ID: "", Status: "REJECTED"}
	var errs validator.ValidationErrors
	require.True(t, errors.As(bad.Validate(), &errs))
	assert.Len(t, errs, 2)
	assert.True(t, errs.Has(FieldStatus))
}

func TestComplianceOutcome_Evaluated(t *testing.T) {
	assert.True(t, ComplianceOutcome{Status: ComplianceCompliant}.Evaluated())
	assert.True(t, ComplianceOutcome{Status: ComplianceFlagged}.Evaluated())
	assert.True(t, ComplianceOutcome{Status: ComplianceNotApplicable}.Evaluated())
	assert.False(t, ComplianceOutcome{Status: ComplianceSkipped}.Evaluated())
	assert.False(t, ComplianceOutcome{Status: ComplianceFailed}.Evaluated())
}
