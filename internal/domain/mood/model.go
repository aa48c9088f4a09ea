package mood

import "time"

// Entry es el registro diario de humor. Los valores (alta/media/baixa,
// alto/normal/baixo/nao-comeu, longo/curto/nao-passeou) vienen del cliente
// en portugués y el backend los trata como opacos.
type Entry struct {
	ID    string
	PetID string

	EnergyLevel string
	GeneralMood []string
	Appetite    string
	Walk        string

	Notes *string
	Date  string // YYYY-MM-DD

	CreatedAt time.Time
}
