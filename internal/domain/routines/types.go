package routines

// Period de una rutina. A diferencia de los periodos del día que calcula el
// backend (dawn incluido), las rutinas solo usan estas tres franjas.
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
)

func ValidPeriod(p Period) bool {
	switch p {
	case PeriodMorning, PeriodAfternoon, PeriodEvening:
		return true
	}
	return false
}

// PeriodRank define el orden del sort por periodo:
// morning < afternoon < evening < cualquier otro valor.
func PeriodRank(p Period) int {
	switch p {
	case PeriodMorning:
		return 1
	case PeriodAfternoon:
		return 2
	case PeriodEvening:
		return 3
	default:
		return 4
	}
}
