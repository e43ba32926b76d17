package leave

// Entitled maps the number of unjustified absences in the trailing
// entitlement cycle to the number of vacation days the employee has earned.
func Entitled(unjustifiedAbsences int) int {
	switch {
	case unjustifiedAbsences <= 5:
		return 30
	case unjustifiedAbsences <= 14:
		return 24
	case unjustifiedAbsences <= 23:
		return 18
	case unjustifiedAbsences <= 32:
		return 12
	default:
		return 0
	}
}

// Balance is an employee's vacation entitlement breakdown.
type Balance struct {
	UnjustifiedAbsences int `json:"unjustified_absences"`
	EntitledDays        int `json:"entitled_days"`
	UsedDays            int `json:"used_days"`
	BalanceDays         int `json:"balance_days"`
}

func NewBalance(unjustifiedAbsences, usedDays int) Balance {
	entitled := Entitled(unjustifiedAbsences)
	return Balance{
		UnjustifiedAbsences: unjustifiedAbsences,
		EntitledDays:        entitled,
		UsedDays:            usedDays,
		BalanceDays:         entitled - usedDays,
	}
}
