package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-care-tracker/internal/domain/mood"
)

type moodRepo struct {
	mu   sync.RWMutex
	byID map[string]mood.Entry
}

func NewMoodRepo() mood.Repository {
	return &moodRepo{
		byID: make(map[string]mood.Entry),
	}
}

func (r *moodRepo) Create(ctx context.Context, e mood.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("entry id required")
	}
	r.byID[e.ID] = e
	return nil
}

func (r *moodRepo) GetByID(ctx context.Context, id string) (mood.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return mood.Entry{}, mood.ErrNotFound
	}
	return e, nil
}

func (r *moodRepo) ListByPet(ctx context.Context, petID string, filter mood.ListFilter) ([]mood.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]mood.Entry, 0)
	for _, e := range r.byID {
		if e.PetID == petID {
			out = append(out, e)
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

func (r *moodRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return mood.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
