package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-care-tracker/internal/domain/walks"
)

type walksRepo struct {
	mu   sync.RWMutex
	byID map[string]walks.Entry
}

func NewWalksRepo() walks.Repository {
	return &walksRepo{
		byID: make(map[string]walks.Entry),
	}
}

func (r *walksRepo) Create(ctx context.Context, e walks.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("entry id required")
	}
	r.byID[e.ID] = e
	return nil
}

func (r *walksRepo) GetByID(ctx context.Context, id string) (walks.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return walks.Entry{}, walks.ErrNotFound
	}
	return e, nil
}

func (r *walksRepo) ListByPet(ctx context.Context, petID string, filter walks.ListFilter) ([]walks.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]walks.Entry, 0)
	for _, e := range r.byID {
		if e.PetID != petID {
			continue
		}
		// rango sobre la fecha calendario del paseo (YYYY-MM-DD compara bien como string)
		if filter.StartDate != "" && e.Date < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && e.Date > filter.EndDate {
			continue
		}
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool {
		if filter.Ascending {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].StartTime.After(out[j].StartTime)
	})

	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *walksRepo) Update(ctx context.Context, e walks.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[e.ID]; !ok {
		return walks.ErrNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *walksRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return walks.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
