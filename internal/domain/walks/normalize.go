package walks

import (
	"time"

	"pet-care-tracker/internal/platform/timezone"
)

// normalizePauses convierte cada extremo de cada tramo a la zona de
// referencia, de forma independiente: un extremo ausente queda ausente.
// Una colección vacía o ausente colapsa a nil ("sin datos de pausa").
func normalizePauses(clock *timezone.Clock, segments []PauseSegment) []PauseSegment {
	if len(segments) == 0 {
		return nil
	}

	out := make([]PauseSegment, 0, len(segments))
	for _, seg := range segments {
		var n PauseSegment
		if seg.StartedAt != nil {
			t := clock.ToReference(*seg.StartedAt)
			n.StartedAt = &t
		}
		if seg.EndedAt != nil {
			t := clock.ToReference(*seg.EndedAt)
			n.EndedAt = &t
		}
		out = append(out, n)
	}
	return out
}

// durationBetween devuelve los segundos enteros (floor) entre dos instantes.
func durationBetween(start, end time.Time) int {
	return int(end.Sub(start) / time.Second)
}
