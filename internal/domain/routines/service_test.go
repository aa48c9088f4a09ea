package routines

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
	templates map[string]Template
	items     []Item

	itemWrites int
}

func newTestRepo() *testRepo {
	return &testRepo{templates: map[string]Template{}}
}

func (r *testRepo) CreateTemplate(ctx context.Context, t Template) error {
	if t.ID == "" {
		return errors.New("repo: id required")
	}
	r.templates[t.ID] = t
	return nil
}

func (r *testRepo) GetTemplate(ctx context.Context, id string) (Template, error) {
	t, ok := r.templates[id]
	if !ok {
		return Template{}, ErrTemplateNotFound
	}
	return t, nil
}

func (r *testRepo) ListTemplates(ctx context.Context, petID string, activeOnly bool) ([]Template, error) {
	out := make([]Template, 0)
	for _, t := range r.templates {
		if t.PetID != petID {
			continue
		}
		if activeOnly && !t.IsActive {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *testRepo) UpdateTemplate(ctx context.Context, t Template) error {
	if _, ok := r.templates[t.ID]; !ok {
		return ErrTemplateNotFound
	}
	r.templates[t.ID] = t
	return nil
}

func (r *testRepo) DeleteTemplate(ctx context.Context, id string) error {
	if _, ok := r.templates[id]; !ok {
		return ErrTemplateNotFound
	}
	delete(r.templates, id)
	return nil
}

func (r *testRepo) CreateItem(ctx context.Context, it Item) error {
	if it.ID == "" {
		return errors.New("repo: id required")
	}
	r.items = append(r.items, it)
	r.itemWrites++
	return nil
}

func (r *testRepo) GetItem(ctx context.Context, id string) (Item, error) {
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, ErrItemNotFound
}

func (r *testRepo) ListItems(ctx context.Context, petID string, filter ItemFilter) ([]Item, error) {
	out := make([]Item, 0)
	for _, it := range r.items {
		if it.PetID != petID {
			continue
		}
		if filter.Date != "" && it.Date != filter.Date {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (r *testRepo) UpdateItem(ctx context.Context, it Item) error {
	for i := range r.items {
		if r.items[i].ID == it.ID {
			r.items[i] = it
			return nil
		}
	}
	return ErrItemNotFound
}

func (r *testRepo) DeleteItem(ctx context.Context, id string) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// -------------------------
// Helpers
// -------------------------

func testClock(t *testing.T, at time.Time) *timezone.Clock {
	t.Helper()
	return timezone.MustNew(timezone.DefaultZone).WithNow(func() time.Time { return at })
}

func seedTemplate(t *testing.T, repo *testRepo, id, petID string, period Period, task string, active bool) {
	t.Helper()
	err := repo.CreateTemplate(context.Background(), Template{
		ID:       id,
		PetID:    petID,
		Period:   period,
		Task:     task,
		IsActive: active,
	})
	if err != nil {
		t.Fatalf("seed template: %v", err)
	}
}

// -------------------------
// Tests
// -------------------------

func TestService_EnsureDaily_SeedsFromActiveTemplates(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testClock(t, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)))

	seedTemplate(t, repo, "tpl-feed", "pet-1", PeriodMorning, "feed", true)
	seedTemplate(t, repo, "tpl-walk", "pet-1", PeriodEvening, "walk", true)

	items, err := svc.EnsureDaily(context.Background(), "pet-1", "2024-01-01")
	if err != nil {
		t.Fatalf("EnsureDaily: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 seeded items, got %d", len(items))
	}
	for _, it := range items {
		if it.Date != "2024-01-01" {
			t.Fatalf("item date = %s, want 2024-01-01", it.Date)
		}
		if it.Completed {
			t.Fatal("seeded items must start incomplete")
		}
		if it.TemplateID == nil {
			t.Fatal("seeded items must reference their template")
		}
	}
}

func TestService_EnsureDaily_Idempotent(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testClock(t, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)))

	seedTemplate(t, repo, "tpl-feed", "pet-1", PeriodMorning, "feed", true)
	seedTemplate(t, repo, "tpl-walk", "pet-1", PeriodEvening, "walk", true)

	first, err := svc.EnsureDaily(context.Background(), "pet-1", "2024-01-01")
	if err != nil {
		t.Fatalf("EnsureDaily #1: %v", err)
	}
	writesAfterFirst := repo.itemWrites

	second, err := svc.EnsureDaily(context.Background(), "pet-1", "2024-01-01")
	if err != nil {
		t.Fatalf("EnsureDaily #2: %v", err)
	}

	if repo.itemWrites != writesAfterFirst {
		t.Fatalf("second call wrote %d new items, want 0", repo.itemWrites-writesAfterFirst)
	}
	if len(second) != len(first) {
		t.Fatalf("second call returned %d items, want %d", len(second), len(first))
	}

	got := map[string]struct{}{}
	for _, it := range second {
		got[it.ID] = struct{}{}
	}
	for _, it := range first {
		if _, ok := got[it.ID]; !ok {
			t.Fatalf("item %s from first call missing in second call", it.ID)
		}
	}
}

func TestService_EnsureDaily_TopsUpTemplatesAddedLater(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testClock(t, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)))

	seedTemplate(t, repo, "tpl-feed", "pet-1", PeriodMorning, "feed", true)

	if _, err := svc.EnsureDaily(context.Background(), "pet-1", "2024-01-01"); err != nil {
		t.Fatalf("EnsureDaily #1: %v", err)
	}

	// template agregado después del primer seeding del día
	seedTemplate(t, repo, "tpl-meds", "pet-1", PeriodAfternoon, "meds", true)

	items, err := svc.EnsureDaily(context.Background(), "pet-1", "2024-01-01")
	if err != nil {
		t.Fatalf("EnsureDaily #2: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected top-up to 2 items, got %d", len(items))
	}

	// los preexistentes van primero
	if items[0].Task != "feed" || items[1].Task != "meds" {
		t.Fatalf("order = [%s, %s], want [feed, meds]", items[0].Task, items[1].Task)
	}
}

func TestService_EnsureDaily_SkipsInactiveTemplates(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testClock(t, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)))

	seedTemplate(t, repo, "tpl-feed", "pet-1", PeriodMorning, "feed", true)
	seedTemplate(t, repo, "tpl-old", "pet-1", PeriodEvening, "retired", false)

	items, err := svc.EnsureDaily(context.Background(), "pet-1", "2024-01-01")
	if err != nil {
		t.Fatalf("EnsureDaily: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item (inactive skipped), got %d", len(items))
	}
	if items[0].Task != "feed" {
		t.Fatalf("seeded task = %s, want feed", items[0].Task)
	}
}

func TestService_EnsureDaily_DefaultsDateToToday(t *testing.T) {
	repo := newTestRepo()
	// 2024-06-10 23:30 UTC = 2024-06-10 20:30 en la zona de referencia
	svc := NewService(repo, testClock(t, time.Date(2024, 6, 10, 23, 30, 0, 0, time.UTC)))

	seedTemplate(t, repo, "tpl-feed", "pet-1", PeriodMorning, "feed", true)

	items, err := svc.EnsureDaily(context.Background(), "pet-1", "")
	if err != nil {
		t.Fatalf("EnsureDaily: %v", err)
	}
	if len(items) != 1 || items[0].Date != "2024-06-10" {
		t.Fatalf("expected item dated 2024-06-10, got %+v", items)
	}
}

func TestService_CreateItem_DefaultsDate(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testClock(t, time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)))

	it, err := svc.CreateItem(context.Background(), "pet-1", CreateItemInput{
		Period: PeriodMorning,
		Task:   "feed",
	})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if it.Date != "2024-03-05" {
		t.Fatalf("date = %s, want 2024-03-05", it.Date)
	}
	if it.TemplateID != nil {
		t.Fatal("ad-hoc item must not reference a template")
	}
}

func TestService_UpdateItem_CompletedAtNullClears(t *testing.T) {
	repo := newTestRepo()
	clock := testClock(t, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))
	svc := NewService(repo, clock)

	completedAt := time.Date(2024, 1, 1, 9, 0, 0, 0, clock.Location())
	err := repo.CreateItem(context.Background(), Item{
		ID:          "item-1",
		PetID:       "pet-1",
		Period:      PeriodMorning,
		Task:        "feed",
		Completed:   true,
		CompletedAt: &completedAt,
		Date:        "2024-01-01",
	})
	if err != nil {
		t.Fatalf("seed item: %v", err)
	}

	it, err := svc.UpdateItem(context.Background(), "item-1", UpdateItemInput{
		CompletedAt: patch.Null[string](),
	})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if it.CompletedAt != nil {
		t.Fatal("completed_at null must clear the field")
	}
	if !it.Completed {
		t.Fatal("completed must stay untouched when absent from the patch")
	}
}

func TestService_UpdateItem_CompletedAtNormalizedToReferenceZone(t *testing.T) {
	repo := newTestRepo()
	clock := testClock(t, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))
	svc := NewService(repo, clock)

	err := repo.CreateItem(context.Background(), Item{
		ID:     "item-1",
		PetID:  "pet-1",
		Period: PeriodMorning,
		Task:   "feed",
		Date:   "2024-01-01",
	})
	if err != nil {
		t.Fatalf("seed item: %v", err)
	}

	completed := true
	it, err := svc.UpdateItem(context.Background(), "item-1", UpdateItemInput{
		Completed:   &completed,
		CompletedAt: patch.Set("2024-01-01T12:00:00Z"),
	})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if it.CompletedAt == nil {
		t.Fatal("completed_at not applied")
	}
	if it.CompletedAt.Hour() != 9 {
		t.Fatalf("completed_at hour = %d, want 9 (12 UTC en zona de referencia)", it.CompletedAt.Hour())
	}
}

func TestPeriodRank_Ordering(t *testing.T) {
	if !(PeriodRank(PeriodMorning) < PeriodRank(PeriodAfternoon) &&
		PeriodRank(PeriodAfternoon) < PeriodRank(PeriodEvening) &&
		PeriodRank(PeriodEvening) < PeriodRank(Period("whatever"))) {
		t.Fatal("period rank must order morning < afternoon < evening < other")
	}
}
