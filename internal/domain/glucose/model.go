package glucose

import (
	"time"

	"pet-care-tracker/internal/platform/timezone"
)

// Reading es una medición puntual de glucosa. TimeOfDay se deriva siempre de
// la hora de creación en la zona de referencia; nunca lo manda el cliente.
type Reading struct {
	ID    string
	PetID string

	Value     float64
	TimeOfDay timezone.Period

	Protocol    *string
	Notes       *string
	InsulinDose *float64

	Date string // YYYY-MM-DD

	CreatedAt time.Time
}
