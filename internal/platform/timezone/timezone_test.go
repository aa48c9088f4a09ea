package timezone

import (
	"testing"
	"time"
)

func TestPeriodOfDay_AllHours(t *testing.T) {
	for h := 0; h < 24; h++ {
		var want Period
		switch {
		case h < 5:
			want = PeriodDawn
		case h < 12:
			want = PeriodMorning
		case h < 18:
			want = PeriodAfternoon
		default:
			want = PeriodEvening
		}
		if got := PeriodOfDay(h); got != want {
			t.Fatalf("PeriodOfDay(%d) = %s, want %s", h, got, want)
		}
	}
}

func TestPeriodOfDay_Boundaries(t *testing.T) {
	cases := map[int]Period{
		0:  PeriodDawn,
		4:  PeriodDawn,
		5:  PeriodMorning,
		11: PeriodMorning,
		12: PeriodAfternoon,
		17: PeriodAfternoon,
		18: PeriodEvening,
		23: PeriodEvening,
	}
	for h, want := range cases {
		if got := PeriodOfDay(h); got != want {
			t.Fatalf("PeriodOfDay(%d) = %s, want %s", h, got, want)
		}
	}
}

// Fija el comportamiento histórico: un timestamp sin offset se lee como hora
// local de la zona de referencia, no como UTC. Si esto cambia, cambian los
// registros almacenados.
func TestClock_Parse_NaiveIsReferenceZone(t *testing.T) {
	c := MustNew(DefaultZone)

	got, err := c.Parse("2024-01-15T10:30:00")
	if err != nil {
		t.Fatalf("Parse naive: %v", err)
	}

	want := time.Date(2024, 1, 15, 10, 30, 0, 0, c.Location())
	if !got.Equal(want) {
		t.Fatalf("naive parse = %v, want %v", got, want)
	}
	if got.Hour() != 10 {
		t.Fatalf("naive hour = %d, want 10 (sin corrimiento UTC)", got.Hour())
	}
}

func TestClock_Parse_ZonedConvertsToReference(t *testing.T) {
	c := MustNew(DefaultZone)

	// 13:00 UTC = 10:00 en Brasília (UTC-3, sin DST desde 2019)
	got, err := c.Parse("2024-01-15T13:00:00Z")
	if err != nil {
		t.Fatalf("Parse RFC3339: %v", err)
	}
	if got.Hour() != 10 {
		t.Fatalf("hora convertida = %d, want 10", got.Hour())
	}
	if got.Location() != c.Location() {
		t.Fatalf("location = %v, want %v", got.Location(), c.Location())
	}
}

func TestClock_Parse_Invalid(t *testing.T) {
	c := MustNew(DefaultZone)
	if _, err := c.Parse("15/01/2024"); err == nil {
		t.Fatal("expected error for malformed timestamp")
	}
}

func TestClock_NowAndToday_UseReferenceZone(t *testing.T) {
	c := MustNew(DefaultZone)
	fixed := time.Date(2024, 6, 1, 2, 0, 0, 0, time.UTC) // 23:00 del 31/05 en Brasília
	c = c.WithNow(func() time.Time { return fixed })

	if got := c.Now().Hour(); got != 23 {
		t.Fatalf("Now().Hour() = %d, want 23", got)
	}
	if got := c.Today(); got != "2024-05-31" {
		t.Fatalf("Today() = %s, want 2024-05-31", got)
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2024-02-30"); err == nil {
		t.Fatal("expected error for impossible date")
	}
	got, err := ParseDate(" 2024-01-01 ")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got != "2024-01-01" {
		t.Fatalf("ParseDate = %s", got)
	}
}
