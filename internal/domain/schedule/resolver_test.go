package schedule

import (
	"testing"
	"time"

	"github.com/athos-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func nominalShiftEmployee(kind employee.ScheduleKind) employee.Employee {
	return employee.Employee{
		ID:            "emp-1",
		ScheduleKind:  kind,
		ShiftEntry:    "08:00",
		ShiftLunchOut: "12:00",
		ShiftLunchIn:  "13:00",
		ShiftExit:     "17:12",
	}
}

func TestFiveTwo_WeekendsAreRestDays(t *testing.T) {
	r := NewResolver(720)
	emp := nominalShiftEmployee(employee.ScheduleFiveTwo)

	// 2026-08-31 is a Monday.
	monday := date(2026, time.August, 31)
	for i := 0; i < 5; i++ {
		d := monday.AddDate(0, 0, i)
		assert.True(t, r.IsDutyDay(emp, d), "weekday %s", d.Weekday())
		assert.Equal(t, 480, r.ExpectedMinutes(emp, d))
	}
	for i := 5; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		assert.False(t, r.IsDutyDay(emp, d), "weekend %s", d.Weekday())
		assert.Equal(t, 0, r.ExpectedMinutes(emp, d))
	}
}

func TestUnrestricted_EveryDayIsDuty(t *testing.T) {
	r := NewResolver(720)
	emp := nominalShiftEmployee(employee.ScheduleUnrestricted)

	saturday := date(2026, time.September, 5)
	assert.True(t, r.IsDutyDay(emp, saturday))
	assert.Equal(t, 480, r.ExpectedMinutes(emp, saturday))
}

func TestTwelveThirtySix_AlternatesFromAnchor(t *testing.T) {
	r := NewResolver(720)
	anchor := date(2026, time.August, 10)
	emp := employee.Employee{
		ID:             "emp-1",
		ScheduleKind:   employee.ScheduleTwelveThirtySix,
		ScheduleAnchor: &anchor,
	}

	assert.True(t, r.IsDutyDay(emp, anchor))
	assert.Equal(t, 720, r.ExpectedMinutes(emp, anchor))

	// Strict alternation after and before the anchor.
	prev := true
	for i := 1; i <= 10; i++ {
		got := r.IsDutyDay(emp, anchor.AddDate(0, 0, i))
		assert.NotEqual(t, prev, got, "day +%d must alternate", i)
		prev = got
	}
	prev = true
	for i := 1; i <= 10; i++ {
		got := r.IsDutyDay(emp, anchor.AddDate(0, 0, -i))
		assert.NotEqual(t, prev, got, "day -%d must alternate", i)
		prev = got
	}

	assert.Equal(t, 0, r.ExpectedMinutes(emp, anchor.AddDate(0, 0, 1)))
	assert.Equal(t, 720, r.ExpectedMinutes(emp, anchor.AddDate(0, 0, -2)))
}

func TestTwelveThirtySix_MissingAnchorMeansRest(t *testing.T) {
	r := NewResolver(720)
	emp := employee.Employee{ID: "emp-1", ScheduleKind: employee.ScheduleTwelveThirtySix}

	assert.False(t, r.IsDutyDay(emp, date(2026, time.August, 10)))
	assert.Equal(t, 0, r.ExpectedMinutes(emp, date(2026, time.August, 10)))
}

func TestNominalShiftMinutes_FlooredAtZero(t *testing.T) {
	emp := employee.Employee{
		ShiftEntry:    "17:00",
		ShiftLunchOut: "08:00",
		ShiftLunchIn:  "13:00",
		ShiftExit:     "12:00",
	}
	assert.Equal(t, 0, NominalShiftMinutes(emp))
}

func TestResolver_IsPure(t *testing.T) {
	r := NewResolver(720)
	emp := nominalShiftEmployee(employee.ScheduleFiveTwo)
	d := date(2026, time.September, 2)

	first := r.ExpectedMinutes(emp, d)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, r.ExpectedMinutes(emp, d))
	}
}
