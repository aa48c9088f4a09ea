package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-care-tracker/internal/domain/glucose"
)

type glucoseRepo struct {
	mu   sync.RWMutex
	byID map[string]glucose.Reading
}

func NewGlucoseRepo() glucose.Repository {
	return &glucoseRepo{
		byID: make(map[string]glucose.Reading),
	}
}

func (r *glucoseRepo) Create(ctx context.Context, g glucose.Reading) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(g.ID) == "" {
		return errors.New("reading id required")
	}
	r.byID[g.ID] = g
	return nil
}

func (r *glucoseRepo) GetByID(ctx context.Context, id string) (glucose.Reading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.byID[id]
	if !ok {
		return glucose.Reading{}, glucose.ErrNotFound
	}
	return g, nil
}

func (r *glucoseRepo) ListByPet(ctx context.Context, petID string, filter glucose.ListFilter) ([]glucose.Reading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]glucose.Reading, 0)
	for _, g := range r.byID {
		if g.PetID == petID {
			out = append(out, g)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if filter.SortByCreated {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *glucoseRepo) Update(ctx context.Context, g glucose.Reading) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[g.ID]; !ok {
		return glucose.ErrNotFound
	}
	r.byID[g.ID] = g
	return nil
}

func (r *glucoseRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return glucose.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
