// Package schedule decides, for an employee and a calendar date, whether the
// date is a duty day and how many worked minutes the day expects. The
// resolver is pure: reconciliation can re-run for past dates and get the same
// answer the day itself produced.
package schedule

import (
	"time"

	"github.com/athos-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/athos-hr/timeclock-backend-go/internal/pkg/validator"
)

type Resolver struct {
	// fullShiftMinutes is the duty-day target for the 12x36 rotation, which
	// is not split by a lunch break the way the nominal shift fields are.
	fullShiftMinutes int
}

func NewResolver(fullShiftMinutes int) *Resolver {
	return &Resolver{fullShiftMinutes: fullShiftMinutes}
}

// IsDutyDay reports whether the employee's schedule requires attendance on
// the given date.
func (r *Resolver) IsDutyDay(emp employee.Employee, date time.Time) bool {
	switch emp.ScheduleKind {
	case employee.ScheduleFiveTwo:
		wd := date.Weekday()
		return wd != time.Saturday && wd != time.Sunday
	case employee.ScheduleTwelveThirtySix:
		if emp.ScheduleAnchor == nil {
			return false
		}
		// The anchor day and every second day before or after it are duty
		// days. Euclidean modulo keeps the alternation symmetric for dates
		// preceding the anchor.
		d := wholeDaysBetween(*emp.ScheduleAnchor, date)
		return ((d%2)+2)%2 == 0
	default:
		return true
	}
}

// ExpectedMinutes returns the worked-minutes target for the date: the
// nominal shift duration on duty days, zero otherwise.
func (r *Resolver) ExpectedMinutes(emp employee.Employee, date time.Time) int {
	if !r.IsDutyDay(emp, date) {
		return 0
	}
	if emp.ScheduleKind == employee.ScheduleTwelveThirtySix {
		return r.fullShiftMinutes
	}
	return NominalShiftMinutes(emp)
}

// NominalShiftMinutes computes (lunch-out - entry) + (exit - lunch-in) from
// the nominal shift fields, floored at zero.
func NominalShiftMinutes(emp employee.Employee) int {
	entry := validator.ClockToMinutes(emp.ShiftEntry)
	lunchOut := validator.ClockToMinutes(emp.ShiftLunchOut)
	lunchIn := validator.ClockToMinutes(emp.ShiftLunchIn)
	exit := validator.ClockToMinutes(emp.ShiftExit)

	minutes := (lunchOut - entry) + (exit - lunchIn)
	if minutes < 0 {
		return 0
	}
	return minutes
}

func wholeDaysBetween(anchor, date time.Time) int {
	a := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
