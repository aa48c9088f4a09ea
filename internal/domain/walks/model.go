package walks

import "time"

// PauseSegment es un tramo de pausa dentro del paseo. Cualquiera de los dos
// extremos puede faltar (pausa abierta o registro parcial).
type PauseSegment struct {
	StartedAt *time.Time
	EndedAt   *time.Time
}

// Entry es una sesión de paseo. PauseEvents en nil significa "sin datos de
// pausa", que no es lo mismo que una lista vacía: el cliente distingue ambos.
type Entry struct {
	ID    string
	PetID string
	Date  string // YYYY-MM-DD

	StartTime       time.Time
	EndTime         *time.Time
	DurationSeconds *int
	PauseEvents     []PauseSegment

	// Observaciones, todas opcionales.
	EnergyLevel        *string
	Behavior           []string
	CompletedRoute     *bool
	PeeCount           *string
	PeeVolume          *string
	PeeColor           *string
	PoopMade           *bool
	PoopConsistency    *string
	PoopBlood          *bool
	PoopMucus          *bool
	PoopColor          *string
	Photos             []string
	Weather            *string
	TemperatureCelsius *float64
	RouteDistanceKm    *float64
	RouteDescription   *string
	MobilityNotes      *string
	Disorientation     *bool
	ExcessivePanting   *bool
	Cough              *bool
	Notes              *string
	Alerts             []string

	CreatedAt time.Time
}
