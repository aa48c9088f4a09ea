package pets

import "time"

// Pet es la raíz de identidad: todos los demás registros (rutinas, glucosa,
// humor, paseos) referencian a una mascota por pet_id.
type Pet struct {
	ID   string
	Name string

	Breed *string
	Age   *int

	CreatedAt time.Time
	UpdatedAt *time.Time
}
