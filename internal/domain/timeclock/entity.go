package timeclock

import (
	"fmt"
	"time"
)

// Label identifies a punch's position in the day. The set is closed and the
// ordering is load-bearing: kiosk sequencing derives the next label from the
// count of punches already recorded today.
type Label string

const (
	LabelEntry    Label = "entry"
	LabelLunchOut Label = "lunch_out"
	LabelLunchIn  Label = "lunch_in"
	LabelExit     Label = "exit"
	LabelExtra    Label = "extra"
)

// labelSequence is the fixed count-to-label table.
var labelSequence = [...]Label{LabelEntry, LabelLunchOut, LabelLunchIn, LabelExit}

// NextLabel maps the number of punches already recorded for the day to the
// label of the next one.
func NextLabel(punchCount int) Label {
	if punchCount < 0 {
		punchCount = 0
	}
	if punchCount < len(labelSequence) {
		return labelSequence[punchCount]
	}
	return LabelExtra
}

func (l Label) Valid() bool {
	switch l {
	case LabelEntry, LabelLunchOut, LabelLunchIn, LabelExit, LabelExtra:
		return true
	}
	return false
}

// Source records how a punch was captured.
type Source string

const (
	SourceGeo        Source = "geo"
	SourceKiosk      Source = "kiosk"
	SourceAdjustment Source = "adjustment"
)

type PunchEvent struct {
	ID         string
	EmployeeID string
	// Date is the working day the punch belongs to, truncated to midnight.
	Date time.Time
	// At is the capture timestamp. Minute-of-day drives all balance math;
	// seconds only matter for the anti-replay interval.
	At        time.Time
	Label     Label
	Source    Source
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time
}

// MinuteOfDay returns the punch position as minutes since midnight.
func (p PunchEvent) MinuteOfDay() int {
	return p.At.Hour()*60 + p.At.Minute()
}

func (p PunchEvent) TimeString() string {
	return p.At.Format("15:04")
}

// DayStatus classifies a reconciled day. The leave values are written by the
// leave workflow's summary overrides, never by the reconciler.
type DayStatus string

const (
	StatusOK         DayStatus = "ok"
	StatusOvertime   DayStatus = "overtime"
	StatusShortfall  DayStatus = "shortfall"
	StatusIncomplete DayStatus = "incomplete"
	StatusAbsence    DayStatus = "absence"
	StatusRestDay    DayStatus = "rest_day"

	StatusVacation    DayStatus = "vacation"
	StatusSickLeave   DayStatus = "sick_leave"
	StatusUnpaidLeave DayStatus = "unpaid_leave"
)

type DailySummary struct {
	ID              string
	EmployeeID      string
	Date            time.Time
	WorkedMinutes   int
	ExpectedMinutes int
	BalanceMinutes  int
	Status          DayStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FormatMinutesHM renders a signed minute count as "-HH:MM".
func FormatMinutesHM(totalMinutes int) string {
	sign := ""
	if totalMinutes < 0 {
		sign = "-"
		totalMinutes = -totalMinutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, totalMinutes/60, totalMinutes%60)
}
