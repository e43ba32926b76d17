package timeclock

// DayComputation is the outcome of pairing a day's punches against its
// expected-minutes target.
type DayComputation struct {
	WorkedMinutes   int
	ExpectedMinutes int
	BalanceMinutes  int
	Status          DayStatus
}

// ComputeDay pairs punches sequentially into sessions and classifies the
// day. Punches must be ordered by time. An odd punch count forces
// incomplete: a trailing unpaired punch contributes nothing to worked
// minutes and the day must never silently report a balance.
func ComputeDay(punches []PunchEvent, expectedMinutes, toleranceMinutes int) DayComputation {
	worked := 0
	for i := 0; i+1 < len(punches); i += 2 {
		worked += punches[i+1].MinuteOfDay() - punches[i].MinuteOfDay()
	}

	balance := worked - expectedMinutes

	var status DayStatus
	switch {
	case len(punches)%2 != 0:
		status = StatusIncomplete
	case len(punches) == 0 && expectedMinutes > 0:
		status = StatusAbsence
	case len(punches) == 0:
		status = StatusRestDay
	case balance >= -toleranceMinutes && balance <= toleranceMinutes:
		status = StatusOK
		// Minor variance is not carried forward as debt or credit.
		balance = 0
	case balance > toleranceMinutes:
		status = StatusOvertime
	default:
		status = StatusShortfall
	}

	return DayComputation{
		WorkedMinutes:   worked,
		ExpectedMinutes: expectedMinutes,
		BalanceMinutes:  balance,
		Status:          status,
	}
}
