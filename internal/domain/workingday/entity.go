package workingday

import (
	"strings"
	"time"

	"github.com/gilrsantana/pontolegal/internal/pkg/validator"
)

// WorkingDay is the daily schedule an employee is assigned to. The four
// boundaries are time-of-day values; their date component is ignored.
type WorkingDay struct {
	ID               string
	Name             string
	Type             ShiftCategory
	StartWork        time.Time
	StartBreak       time.Time
	EndBreak         time.Time
	EndWork          time.Time
	ToleranceMinutes int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ShiftCategory declares the expected shift length in whole hours.
type ShiftCategory string

const (
	ShiftSixHours    ShiftCategory = "SIX_HOURS"
	ShiftSevenHours  ShiftCategory = "SEVEN_HOURS"
	ShiftEightHours  ShiftCategory = "EIGHT_HOURS"
	ShiftNineHours   ShiftCategory = "NINE_HOURS"
	ShiftTenHours    ShiftCategory = "TEN_HOURS"
	ShiftElevenHours ShiftCategory = "ELEVEN_HOURS"
	ShiftTwelveHours ShiftCategory = "TWELVE_HOURS"
)

var shiftHours = map[ShiftCategory]int{
	ShiftSixHours:    6,
	ShiftSevenHours:  7,
	ShiftEightHours:  8,
	ShiftNineHours:   9,
	ShiftTenHours:    10,
	ShiftElevenHours: 11,
	ShiftTwelveHours: 12,
}

var ShiftCategoryValues = []string{
	string(ShiftSixHours),
	string(ShiftSevenHours),
	string(ShiftEightHours),
	string(ShiftNineHours),
	string(ShiftTenHours),
	string(ShiftElevenHours),
	string(ShiftTwelveHours),
}

// Hours returns the shift length the category stands for.
func (c ShiftCategory) Hours() (int, bool) {
	h, ok := shiftHours[c]
	return h, ok
}

// Field keys reported by schedule validation.
const (
	FieldName       = "WorkingDay.Name"
	FieldStartWork  = "WorkingDay.StartWork"
	FieldStartBreak = "WorkingDay.StartBreak"
	FieldEndBreak   = "WorkingDay.EndBreak"
	FieldEndWork    = "WorkingDay.EndWork"
	FieldType       = "WorkingDay.Type"
	FieldTolerance  = "WorkingDay.Tolerance"
)

// Error codes reported by schedule validation.
const (
	CodeInvalidName       = "INVALID_NAME"
	CodeInvalidStartWork  = "INVALID_START_WORK"
	CodeInvalidStartBreak = "INVALID_START_BREAK"
	CodeInvalidEndBreak   = "INVALID_END_BREAK"
	CodeInvalidEndWork    = "INVALID_END_WORK"
	CodeInvalidType       = "INVALID_TYPE"
	CodeInvalidTolerance  = "INVALID_TOLERANCE"
)

const (
	NameMinLength = 3
	NameMaxLength = 30
)

// Params carries the caller-supplied attributes of a schedule.
type Params struct {
	Name             string
	Type             ShiftCategory
	StartWork        time.Time
	StartBreak       time.Time
	EndBreak         time.Time
	EndWork          time.Time
	ToleranceMinutes int
}

// New builds a WorkingDay from p and validates it. The returned value is
// always populated; when err is non-nil it is a validator.ValidationErrors
// listing every violated rule and the value must not be persisted.
func New(p Params) (WorkingDay, error) {
	wd := WorkingDay{}
	wd.apply(p)
	return wd, Validate(p)
}

// Update re-runs validation on p and applies it only when valid.
func (w *WorkingDay) Update(p Params) error {
	if err := Validate(p); err != nil {
		return err
	}
	w.apply(p)
	return nil
}

func (w *WorkingDay) apply(p Params) {
	w.Name = strings.TrimSpace(p.Name)
	w.Type = p.Type
	w.StartWork = clockOnly(p.StartWork)
	w.StartBreak = clockOnly(p.StartBreak)
	w.EndBreak = clockOnly(p.EndBreak)
	w.EndWork = clockOnly(p.EndWork)
	w.ToleranceMinutes = p.ToleranceMinutes
}

// Validate checks every schedule rule and collects all failures.
func Validate(p Params) error {
	var errs validator.ValidationErrors

	startWork := MinuteOfDay(p.StartWork)
	startBreak := MinuteOfDay(p.StartBreak)
	endBreak := MinuteOfDay(p.EndBreak)
	endWork := MinuteOfDay(p.EndWork)

	if n := len([]rune(strings.TrimSpace(p.Name))); n < NameMinLength || n > NameMaxLength {
		errs = errs.Add(FieldName, CodeInvalidName, "name must be between 3 and 30 characters")
	}

	if startWork >= endWork || startWork >= startBreak {
		errs = errs.Add(FieldStartWork, CodeInvalidStartWork, "start of work must be before start of break and end of work")
	}

	if startBreak >= endBreak || startBreak >= endWork {
		errs = errs.Add(FieldStartBreak, CodeInvalidStartBreak, "start of break must be before end of break and end of work")
	}

	if endBreak >= endWork {
		errs = errs.Add(FieldEndBreak, CodeInvalidEndBreak, "end of break must be before end of work")
	}

	hours, known := p.Type.Hours()
	if !known {
		errs = errs.Add(FieldType, CodeInvalidType, "type must be one of: "+strings.Join(ShiftCategoryValues, ", "))
	} else if hours != ShiftHours(p.StartWork, p.EndWork) {
		errs = errs.Add(FieldType, CodeInvalidType, "type does not match the shift length between start and end of work")
	}

	if p.ToleranceMinutes < 0 {
		errs = errs.Add(FieldTolerance, CodeInvalidTolerance, "tolerance must be a non-negative number of minutes")
	}

	return errs.Err()
}

// ShiftHours is the truncated number of whole hours between start and end.
func ShiftHours(start, end time.Time) int {
	return (MinuteOfDay(end) - MinuteOfDay(start)) / 60
}

// MinuteOfDay reduces t to minutes since midnight; seconds are dropped.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func clockOnly(t time.Time) time.Time {
	return time.Date(0, time.January, 1, t.Hour(), t.Minute(), 0, 0, time.UTC)
}

const ClockLayout = "15:04"
