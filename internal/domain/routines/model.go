package routines

import "time"

// Template es una definición recurrente de tarea; de los templates activos
// se siembran los items diarios. Se desactiva con IsActive (soft delete).
type Template struct {
	ID     string
	PetID  string
	Period Period
	Task   string

	IsActive  bool
	CreatedAt time.Time
}

// Item es la ocurrencia concreta de una tarea en una fecha calendario.
// TemplateID es nil para items ad-hoc creados a mano.
type Item struct {
	ID         string
	PetID      string
	TemplateID *string

	Period Period
	Task   string

	Completed   bool
	CompletedAt *time.Time

	Date string // YYYY-MM-DD

	CreatedAt time.Time
}
