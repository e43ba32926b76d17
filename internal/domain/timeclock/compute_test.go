package timeclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func punchAt(t *testing.T, clock string) PunchEvent {
	t.Helper()
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		t.Fatalf("bad clock %q: %v", clock, err)
	}
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	return PunchEvent{
		EmployeeID: "emp-1",
		Date:       day,
		At:         time.Date(2026, 8, 31, parsed.Hour(), parsed.Minute(), 0, 0, time.UTC),
	}
}

func punchesAt(t *testing.T, clocks ...string) []PunchEvent {
	t.Helper()
	punches := make([]PunchEvent, 0, len(clocks))
	for _, c := range clocks {
		punches = append(punches, punchAt(t, c))
	}
	return punches
}

func TestComputeDay_FullDayWithinTolerance(t *testing.T) {
	got := ComputeDay(punchesAt(t, "08:00", "12:00", "13:00", "17:12"), 480, 10)

	assert.Equal(t, 480, got.WorkedMinutes)
	assert.Equal(t, 0, got.BalanceMinutes)
	assert.Equal(t, StatusOK, got.Status)
}

func TestComputeDay_HalfDayIsShortfall(t *testing.T) {
	got := ComputeDay(punchesAt(t, "08:00", "12:05"), 480, 10)

	assert.Equal(t, 245, got.WorkedMinutes)
	assert.Equal(t, -235, got.BalanceMinutes)
	assert.Equal(t, StatusShortfall, got.Status)
}

func TestComputeDay_OddCountIsAlwaysIncomplete(t *testing.T) {
	cases := [][]string{
		{"08:00"},
		{"08:00", "12:00", "13:00"},
		{"08:00", "12:00", "13:00", "17:12", "18:00"},
	}
	for _, clocks := range cases {
		got := ComputeDay(punchesAt(t, clocks...), 480, 10)
		assert.Equal(t, StatusIncomplete, got.Status, "punches %v", clocks)
	}
}

func TestComputeDay_TrailingPunchContributesNothing(t *testing.T) {
	got := ComputeDay(punchesAt(t, "08:00", "12:00", "13:00"), 480, 10)
	assert.Equal(t, 240, got.WorkedMinutes)
}

func TestComputeDay_NoPunches(t *testing.T) {
	assert.Equal(t, StatusAbsence, ComputeDay(nil, 480, 10).Status)
	assert.Equal(t, StatusRestDay, ComputeDay(nil, 0, 10).Status)
}

func TestComputeDay_ToleranceBand(t *testing.T) {
	// 10 minutes over, inside the band: reported as exactly zero.
	got := ComputeDay(punchesAt(t, "08:00", "12:00", "13:00", "17:22"), 480, 10)
	assert.Equal(t, StatusOK, got.Status)
	assert.Equal(t, 0, got.BalanceMinutes)

	// 11 minutes over: overtime, balance kept.
	got = ComputeDay(punchesAt(t, "08:00", "12:00", "13:00", "17:23"), 480, 10)
	assert.Equal(t, StatusOvertime, got.Status)
	assert.Equal(t, 11, got.BalanceMinutes)

	// 11 minutes under: shortfall.
	got = ComputeDay(punchesAt(t, "08:00", "12:00", "13:00", "17:01"), 480, 10)
	assert.Equal(t, StatusShortfall, got.Status)
	assert.Equal(t, -11, got.BalanceMinutes)
}

func TestComputeDay_Idempotent(t *testing.T) {
	punches := punchesAt(t, "08:00", "12:00", "13:00", "18:00")
	first := ComputeDay(punches, 480, 10)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, ComputeDay(punches, 480, 10))
	}
}

func TestNextLabel_FixedSequence(t *testing.T) {
	cases := []struct {
		count int
		want  Label
	}{
		{0, LabelEntry},
		{1, LabelLunchOut},
		{2, LabelLunchIn},
		{3, LabelExit},
		{4, LabelExtra},
		{7, LabelExtra},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NextLabel(c.count), "count %d", c.count)
	}
}

func TestFormatMinutesHM(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{480, "08:00"},
		{-235, "-03:55"},
		{61, "01:01"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatMinutesHM(c.minutes))
	}
}
