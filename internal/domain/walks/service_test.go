package walks

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-care-tracker/internal/platform/patch"
	"pet-care-tracker/internal/platform/timezone"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	entries map[string]Entry
}

func newTestRepo() *testRepo {
	return &testRepo{entries: map[string]Entry{}}
}

func (r *testRepo) Create(ctx context.Context, e Entry) error {
	if e.ID == "" {
		return errors.New("repo: id required")
	}
	r.entries[e.ID] = e
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Entry, error) {
	e, ok := r.entries[id]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return e, nil
}

func (r *testRepo) ListByPet(ctx context.Context, petID string, filter ListFilter) ([]Entry, error) {
	out := make([]Entry, 0)
	for _, e := range r.entries {
		if e.PetID == petID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, e Entry) error {
	if _, ok := r.entries[e.ID]; !ok {
		return ErrNotFound
	}
	r.entries[e.ID] = e
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.entries[id]; !ok {
		return ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

func testClock(t *testing.T, at time.Time) *timezone.Clock {
	t.Helper()
	return timezone.MustNew(timezone.DefaultZone).WithNow(func() time.Time { return at })
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_DerivesDurationFromEndTime(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testClock(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))

	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(125 * time.Second)

	e, err := svc.Create(context.Background(), "pet-1", CreateInput{
		StartTime: start,
		EndTime:   &end,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if e.DurationSeconds == nil || *e.DurationSeconds != 125 {
		t.Fatalf("duration = %v, want 125", e.DurationSeconds)
	}
}

func TestService_Create_ClientDurationWins(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testClock(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))

	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(300 * time.Second)
	sent := 90

	e, err := svc.Create(context.Background(), "pet-1", CreateInput{
		StartTime:       start,
		EndTime:         &end,
		DurationSeconds: &sent,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if e.DurationSeconds == nil || *e.DurationSeconds != 90 {
		t.Fatalf("duration = %v, want 90 (lo que mandó el cliente)", e.DurationSeconds)
	}
}

func TestService_Create_NoEndNoDuration(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testClock(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))

	e, err := svc.Create(context.Background(), "pet-1", CreateInput{
		StartTime: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if e.EndTime != nil || e.DurationSeconds != nil {
		t.Fatalf("paseo abierto: end=%v duration=%v, ambos deben ser nil", e.EndTime, e.DurationSeconds)
	}
}

func TestService_Create_DateDerivedFromStartInReferenceZone(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testClock(t, time.Date(2024, 5, 2, 3, 0, 0, 0, time.UTC)))

	// 02:00 UTC del día 2 = 23:00 del día 1 en la zona de referencia
	start := time.Date(2024, 5, 2, 2, 0, 0, 0, time.UTC)

	e, err := svc.Create(context.Background(), "pet-1", CreateInput{StartTime: start})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if e.Date != "2024-05-01" {
		t.Fatalf("date = %s, want 2024-05-01", e.Date)
	}
	if e.StartTime.Hour() != 23 {
		t.Fatalf("start hour = %d, want 23 (zona de referencia)", e.StartTime.Hour())
	}
}

func TestService_Create_NormalizesPausesAndCollapsesEmpty(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testClock(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))

	p0 := time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC)
	e, err := svc.Create(context.Background(), "pet-1", CreateInput{
		StartTime:   time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
		PauseEvents: []PauseSegment{{StartedAt: &p0}}, // pausa abierta
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(e.PauseEvents) != 1 {
		t.Fatalf("pauses = %d, want 1", len(e.PauseEvents))
	}
	if e.PauseEvents[0].StartedAt.Hour() != 10 {
		t.Fatalf("pause start hour = %d, want 10 (13 UTC en zona de referencia)", e.PauseEvents[0].StartedAt.Hour())
	}
	if e.PauseEvents[0].EndedAt != nil {
		t.Fatal("extremo ausente debe quedar ausente")
	}

	empty, err := svc.Create(context.Background(), "pet-1", CreateInput{
		StartTime:   time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
		PauseEvents: []PauseSegment{},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if empty.PauseEvents != nil {
		t.Fatal("lista vacía de pausas debe colapsar a nil")
	}
}

func TestService_Update_EndTimeNullClearsAndKeepsDuration(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testClock(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))

	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(600 * time.Second)
	e, err := svc.Create(context.Background(), "pet-1", CreateInput{StartTime: start, EndTime: &end})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Update(context.Background(), e.ID, UpdateInput{
		EndTime: patch.Null[time.Time](),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.EndTime != nil {
		t.Fatal("end_time null debe limpiar el campo")
	}
	if got.DurationSeconds == nil || *got.DurationSeconds != 600 {
		t.Fatalf("duration = %v, debe quedar en 600 si el patch no la toca", got.DurationSeconds)
	}
}

func TestService_Update_EndTimeRecomputesDuration(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testClock(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))

	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	e, err := svc.Create(context.Background(), "pet-1", CreateInput{StartTime: start})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Update(context.Background(), e.ID, UpdateInput{
		EndTime: patch.Set(start.Add(45 * time.Second)),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.DurationSeconds == nil || *got.DurationSeconds != 45 {
		t.Fatalf("duration = %v, want 45 recalculada contra start_time", got.DurationSeconds)
	}
}

func TestService_Update_PatchDurationWinsOverRecompute(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testClock(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))

	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	e, err := svc.Create(context.Background(), "pet-1", CreateInput{StartTime: start})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Update(context.Background(), e.ID, UpdateInput{
		EndTime:         patch.Set(start.Add(45 * time.Second)),
		DurationSeconds: patch.Set(999),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.DurationSeconds == nil || *got.DurationSeconds != 999 {
		t.Fatalf("duration = %v, want 999 (el patch manda)", got.DurationSeconds)
	}
}

func TestService_Update_NotesOnlyLeavesTimingUntouched(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testClock(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))

	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(200 * time.Second)
	e, err := svc.Create(context.Background(), "pet-1", CreateInput{StartTime: start, EndTime: &end})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Update(context.Background(), e.ID, UpdateInput{
		Notes: patch.Set("ok"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !got.StartTime.Equal(e.StartTime) {
		t.Fatal("start_time no debe cambiar")
	}
	if got.EndTime == nil || !got.EndTime.Equal(*e.EndTime) {
		t.Fatal("end_time no debe cambiar")
	}
	if got.DurationSeconds == nil || *got.DurationSeconds != 200 {
		t.Fatalf("duration = %v, want 200 sin cambios", got.DurationSeconds)
	}
	if got.Notes == nil || *got.Notes != "ok" {
		t.Fatalf("notes = %v, want ok", got.Notes)
	}
}

func TestService_Update_PauseEventsNullVsEmpty(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testClock(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))

	p0 := time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC)
	p1 := p0.Add(2 * time.Minute)
	e, err := svc.Create(context.Background(), "pet-1", CreateInput{
		StartTime:   time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
		PauseEvents: []PauseSegment{{StartedAt: &p0, EndedAt: &p1}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Update(context.Background(), e.ID, UpdateInput{
		PauseEvents: patch.Null[[]PauseSegment](),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.PauseEvents != nil {
		t.Fatal("pause_events null debe borrar los datos de pausa")
	}
}

func TestService_Delete_ReturnsDeletedEntry(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testClock(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))

	e, err := svc.Create(context.Background(), "pet-1", CreateInput{
		StartTime: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Delete(context.Background(), e.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got.ID != e.ID {
		t.Fatalf("deleted id = %s, want %s", got.ID, e.ID)
	}
	if _, err := svc.GetByID(context.Background(), e.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
