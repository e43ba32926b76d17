package timeclock

import "errors"

var (
	ErrPunchNotFound = errors.New("punch record not found")
	ErrRestDayPunch  = errors.New("punching is blocked on a scheduled rest day")
	ErrPunchTooSoon  = errors.New("a punch was already recorded moments ago")
	ErrNotOwnMirror  = errors.New("unauthorized to view this employee's mirror")
)
