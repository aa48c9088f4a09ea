package glucose

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-care-tracker/internal/platform/patch"
	"pet-care-tracker/internal/platform/timezone"
)

type testRepo struct {
	byID map[string]Reading
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Reading{}}
}

func (r *testRepo) Create(ctx context.Context, g Reading) error {
	if g.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[g.ID] = g
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Reading, error) {
	g, ok := r.byID[id]
	if !ok {
		return Reading{}, ErrNotFound
	}
	return g, nil
}

func (r *testRepo) ListByPet(ctx context.Context, petID string, filter ListFilter) ([]Reading, error) {
	out := make([]Reading, 0)
	for _, g := range r.byID {
		if g.PetID == petID {
			out = append(out, g)
		}
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, g Reading) error {
	if _, ok := r.byID[g.ID]; !ok {
		return ErrNotFound
	}
	r.byID[g.ID] = g
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func clockAt(t *testing.T, at time.Time) *timezone.Clock {
	t.Helper()
	return timezone.MustNew(timezone.DefaultZone).WithNow(func() time.Time { return at })
}

func TestService_Create_TimeOfDayIsServerComputed(t *testing.T) {
	repo := newTestRepo()
	// 17:00 UTC = 14:00 en la zona de referencia => afternoon
	svc := NewService(repo, clockAt(t, time.Date(2024, 1, 15, 17, 0, 0, 0, time.UTC)))

	g, err := svc.Create(context.Background(), "pet-1", CreateInput{Value: 110})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.TimeOfDay != timezone.PeriodAfternoon {
		t.Fatalf("time_of_day = %s, want afternoon", g.TimeOfDay)
	}
	if g.Date != "2024-01-15" {
		t.Fatalf("date = %s, want 2024-01-15", g.Date)
	}
}

func TestService_Create_TimeOfDayPerHour(t *testing.T) {
	cases := []struct {
		refHour int
		want    timezone.Period
	}{
		{2, timezone.PeriodDawn},
		{7, timezone.PeriodMorning},
		{14, timezone.PeriodAfternoon},
		{20, timezone.PeriodEvening},
	}

	for _, tc := range cases {
		repo := newTestRepo()
		loc := timezone.MustNew(timezone.DefaultZone).Location()
		at := time.Date(2024, 1, 15, tc.refHour, 0, 0, 0, loc)
		svc := NewService(repo, clockAt(t, at))

		g, err := svc.Create(context.Background(), "pet-1", CreateInput{Value: 95})
		if err != nil {
			t.Fatalf("Create at hour %d: %v", tc.refHour, err)
		}
		if g.TimeOfDay != tc.want {
			t.Fatalf("hour %d: time_of_day = %s, want %s", tc.refHour, g.TimeOfDay, tc.want)
		}
	}
}

func TestService_Create_RejectsNonPositiveValue(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, clockAt(t, time.Now()))

	if _, err := svc.Create(context.Background(), "pet-1", CreateInput{Value: 0}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Update_TimeOfDayImmutable(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, clockAt(t, time.Date(2024, 1, 15, 17, 0, 0, 0, time.UTC)))

	g, err := svc.Create(context.Background(), "pet-1", CreateInput{Value: 110})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	v := 130.0
	updated, err := svc.Update(context.Background(), g.ID, UpdateInput{
		Value: &v,
		Notes: patch.Set("post walk"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Value != 130 {
		t.Fatalf("value = %v, want 130", updated.Value)
	}
	if updated.TimeOfDay != g.TimeOfDay {
		t.Fatal("time_of_day must never change on update")
	}
	if updated.Notes == nil || *updated.Notes != "post walk" {
		t.Fatalf("notes = %v", updated.Notes)
	}
}

func TestService_Update_NullClearsOptionalFields(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, clockAt(t, time.Date(2024, 1, 15, 17, 0, 0, 0, time.UTC)))

	proto := "curve"
	g, err := svc.Create(context.Background(), "pet-1", CreateInput{Value: 110, Protocol: &proto})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(context.Background(), g.ID, UpdateInput{
		Protocol: patch.Null[string](),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Protocol != nil {
		t.Fatal("protocol null must clear the field")
	}
	if updated.Value != 110 {
		t.Fatal("value must stay untouched when absent from the patch")
	}
}
