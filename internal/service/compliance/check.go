package compliance

import (
	"fmt"
	"time"

	"github.com/gilrsantana/pontolegal/internal/domain/timeclock"
	"github.com/gilrsantana/pontolegal/internal/domain/workingday"
)

const minutesPerDay = 24 * 60

// Decision is the result of comparing a punch with its schedule boundary.
// Boundary and window bounds are minutes since midnight; the window bounds
// may fall outside [0, 1440) near midnight and are never wrapped.
type Decision struct {
	Applicable  bool
	Compliant   bool
	Boundary    int
	WindowStart int
	WindowEnd   int
}

// Check decides whether the punch lies within the tolerance window of the
// schedule boundary matching its register type. Only the time of day is
// compared and both window bounds are inclusive. A register type with no
// boundary is compliant by default.
func Check(punch timeclock.Punch, wd workingday.WorkingDay) Decision {
	boundary, ok := boundaryFor(punch.RegisterType, wd)
	if !ok {
		return Decision{Compliant: true}
	}

	at := workingday.MinuteOfDay(boundary)
	d := Decision{
		Applicable:  true,
		Boundary:    at,
		WindowStart: at - wd.ToleranceMinutes,
		WindowEnd:   at + wd.ToleranceMinutes,
	}

	minute := workingday.MinuteOfDay(punch.RegisterTime)
	d.Compliant = minute >= d.WindowStart && minute <= d.WindowEnd

	return d
}

func boundaryFor(registerType timeclock.RegisterType, wd workingday.WorkingDay) (time.Time, bool) {
	switch registerType {
	case timeclock.StartWorkingDay:
		return wd.StartWork, true
	case timeclock.EndWorkingDay:
		return wd.EndWork, true
	case timeclock.StartBreak:
		return wd.StartBreak, true
	case timeclock.EndBreak:
		return wd.EndBreak, true
	default:
		return time.Time{}, false
	}
}

// FormatMinutes renders minutes since midnight as HH:MM, wrapping values
// outside a single day.
func FormatMinutes(m int) string {
	m = ((m % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
