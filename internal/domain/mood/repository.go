package mood

import "context"

type ListFilter struct {
	Limit         int
	SortByCreated bool // created_at descendente
}

type Repository interface {
	Create(ctx context.Context, e Entry) error
	GetByID(ctx context.Context, id string) (Entry, error)
	ListByPet(ctx context.Context, petID string, filter ListFilter) ([]Entry, error)
	Delete(ctx context.Context, id string) error
}
