package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-care-tracker/internal/domain/routines"
)

type routinesRepo struct {
	mu        sync.RWMutex
	templates map[string]routines.Template
	items     map[string]routines.Item
}

func NewRoutinesRepo() routines.Repository {
	return &routinesRepo{
		templates: make(map[string]routines.Template),
		items:     make(map[string]routines.Item),
	}
}

func (r *routinesRepo) CreateTemplate(ctx context.Context, t routines.Template) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(t.ID) == "" {
		return errors.New("template id required")
	}
	r.templates[t.ID] = t
	return nil
}

func (r *routinesRepo) GetTemplate(ctx context.Context, id string) (routines.Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.templates[id]
	if !ok {
		return routines.Template{}, routines.ErrTemplateNotFound
	}
	return t, nil
}

func (r *routinesRepo) ListTemplates(ctx context.Context, petID string, activeOnly bool) ([]routines.Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]routines.Template, 0)
	for _, t := range r.templates {
		if t.PetID != petID {
			continue
		}
		if activeOnly && !t.IsActive {
			continue
		}
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *routinesRepo) UpdateTemplate(ctx context.Context, t routines.Template) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.templates[t.ID]; !ok {
		return routines.ErrTemplateNotFound
	}
	r.templates[t.ID] = t
	return nil
}

func (r *routinesRepo) DeleteTemplate(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.templates[id]; !ok {
		return routines.ErrTemplateNotFound
	}
	delete(r.templates, id)
	return nil
}

func (r *routinesRepo) CreateItem(ctx context.Context, it routines.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(it.ID) == "" {
		return errors.New("item id required")
	}
	r.items[it.ID] = it
	return nil
}

func (r *routinesRepo) GetItem(ctx context.Context, id string) (routines.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[id]
	if !ok {
		return routines.Item{}, routines.ErrItemNotFound
	}
	return it, nil
}

func (r *routinesRepo) ListItems(ctx context.Context, petID string, filter routines.ItemFilter) ([]routines.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]routines.Item, 0)
	for _, it := range r.items {
		if it.PetID != petID {
			continue
		}
		if filter.Date != "" && it.Date != filter.Date {
			continue
		}
		out = append(out, it)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if filter.SortByPeriod {
		sort.SliceStable(out, func(i, j int) bool {
			return routines.PeriodRank(out[i].Period) < routines.PeriodRank(out[j].Period)
		})
	}
	return out, nil
}

func (r *routinesRepo) UpdateItem(ctx context.Context, it routines.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[it.ID]; !ok {
		return routines.ErrItemNotFound
	}
	r.items[it.ID] = it
	return nil
}

func (r *routinesRepo) DeleteItem(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return routines.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}
