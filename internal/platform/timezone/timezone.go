package timezone

import (
	"strings"
	"time"
)

// DefaultZone es la zona de referencia del sistema (Brasília, UTC-3).
// Todos los timestamps persistidos se normalizan a esta zona.
const DefaultZone = "America/Sao_Paulo"

// Period clasifica la hora local del día.
type Period string

const (
	PeriodDawn      Period = "dawn"
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
)

const (
	layoutDate  = "2006-01-02"
	layoutNaive = "2006-01-02T15:04:05"
)

// Clock centraliza "ahora" y las conversiones a la zona de referencia.
// Se inyecta en los services para poder congelar el tiempo en tests.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func New(zone string) (*Clock, error) {
	if strings.TrimSpace(zone) == "" {
		zone = DefaultZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, err
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// MustNew es para main/tests donde una zona inválida es un error de arranque.
func MustNew(zone string) *Clock {
	c, err := New(zone)
	if err != nil {
		panic(err)
	}
	return c
}

// WithNow devuelve una copia con el reloj fijado (tests).
func (c *Clock) WithNow(now func() time.Time) *Clock {
	return &Clock{loc: c.loc, now: now}
}

func (c *Clock) Location() *time.Location { return c.loc }

// Now devuelve el instante actual ya expresado en la zona de referencia.
func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Today devuelve la fecha de hoy (YYYY-MM-DD) en la zona de referencia.
func (c *Clock) Today() string {
	return c.Now().Format(layoutDate)
}

// ToReference convierte cualquier instante a la zona de referencia.
func (c *Clock) ToReference(t time.Time) time.Time {
	return t.In(c.loc)
}

// Parse acepta RFC3339 (con offset) o un timestamp "naive" sin zona.
// Un timestamp naive se interpreta como hora local de la zona de referencia,
// NO como UTC: así lo hace el sistema desde el inicio y los registros
// almacenados dependen de ese comportamiento.
func (c *Clock) Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(c.loc), nil
	}
	t, err := time.ParseInLocation(layoutNaive, s, c.loc)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// ParseDate valida una fecha plana YYYY-MM-DD y la devuelve normalizada.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(layoutDate, strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return t.Format(layoutDate), nil
}

// DateOf devuelve la fecha calendario del instante en la zona de referencia.
func (c *Clock) DateOf(t time.Time) string {
	return t.In(c.loc).Format(layoutDate)
}

// PeriodOfDay clasifica una hora [0,24) en franjas semiabiertas:
// dawn [0,5), morning [5,12), afternoon [12,18), evening [18,24).
func PeriodOfDay(hour int) Period {
	switch {
	case hour < 5:
		return PeriodDawn
	case hour < 12:
		return PeriodMorning
	case hour < 18:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}
