package patch

import "encoding/json"

// Field distingue los tres estados de un campo en un body PATCH:
// ausente (Present=false), null explícito (Present=true, Value=nil)
// y valor (Present=true, Value!=nil). Ausente nunca toca el registro.
type Field[T any] struct {
	Present bool
	Value   *T
}

// UnmarshalJSON solo se invoca si el campo vino en el JSON, así que
// la sola invocación marca presencia.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Present = true
	if string(b) == "null" {
		f.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

// Set construye un campo presente con valor (tests y merges internos).
func Set[T any](v T) Field[T] {
	return Field[T]{Present: true, Value: &v}
}

// Null construye un campo presente con null explícito.
func Null[T any]() Field[T] {
	return Field[T]{Present: true}
}

// Apply pisa dst solo si el campo vino con valor; con null lo limpia a cero.
func (f Field[T]) Apply(dst *T) {
	if !f.Present {
		return
	}
	if f.Value == nil {
		var zero T
		*dst = zero
		return
	}
	*dst = *f.Value
}

// ApplyPtr es Apply para destinos opcionales: null deja nil.
func (f Field[T]) ApplyPtr(dst **T) {
	if !f.Present {
		return
	}
	if f.Value == nil {
		*dst = nil
		return
	}
	v := *f.Value
	*dst = &v
}
