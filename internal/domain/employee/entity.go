package employee

import (
	"time"
)

type ScheduleKind string

const (
	// ScheduleUnrestricted has no rest days; every date is a duty day.
	ScheduleUnrestricted ScheduleKind = "unrestricted"
	// ScheduleFiveTwo works Monday through Friday.
	ScheduleFiveTwo ScheduleKind = "five_two"
	// ScheduleTwelveThirtySix alternates a full duty day with a full rest
	// day, anchored on a known duty day.
	ScheduleTwelveThirtySix ScheduleKind = "twelve_thirty_six"
)

func (k ScheduleKind) Valid() bool {
	switch k {
	case ScheduleUnrestricted, ScheduleFiveTwo, ScheduleTwelveThirtySix:
		return true
	}
	return false
}

type Employee struct {
	ID           string
	Name         string
	ScheduleKind ScheduleKind

	// ScheduleAnchor marks a known duty day. Required for the 12x36
	// rotation, ignored otherwise.
	ScheduleAnchor *time.Time

	// Nominal shift, "HH:MM". The expected-minutes target on a duty day is
	// (lunch-out - entry) + (exit - lunch-in).
	ShiftEntry    string
	ShiftLunchOut string
	ShiftLunchIn  string
	ShiftExit     string

	CreatedAt time.Time
	UpdatedAt time.Time
}
