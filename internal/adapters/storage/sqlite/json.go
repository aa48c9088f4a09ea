package sqlite

import (
	"database/sql"
	"encoding/json"
	"time"

	"pet-care-tracker/internal/domain/walks"
)

// jsonArray serializa un slice a JSON para una columna de texto.
// nil se guarda como NULL: "sin datos" no es lo mismo que lista vacía.
func jsonArray[T any](v []T) (any, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func scanJSONArray[T any](s sql.NullString) ([]T, error) {
	if !s.Valid {
		return nil, nil
	}
	var out []T
	if err := json.Unmarshal([]byte(s.String), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// pauseJSON fija los nombres de campo del JSON persistido de pausas.
type pauseJSON struct {
	StartedAt *time.Time `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at"`
}

func pausesToJSON(segments []walks.PauseSegment) []pauseJSON {
	if segments == nil {
		return nil
	}
	out := make([]pauseJSON, 0, len(segments))
	for _, seg := range segments {
		out = append(out, pauseJSON{StartedAt: seg.StartedAt, EndedAt: seg.EndedAt})
	}
	return out
}

func pausesFromJSON(in []pauseJSON) []walks.PauseSegment {
	if in == nil {
		return nil
	}
	out := make([]walks.PauseSegment, 0, len(in))
	for _, seg := range in {
		out = append(out, walks.PauseSegment{StartedAt: seg.StartedAt, EndedAt: seg.EndedAt})
	}
	return out
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func fromNullTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
