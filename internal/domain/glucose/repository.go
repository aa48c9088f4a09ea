package glucose

import "context"

type ListFilter struct {
	Limit         int
	SortByCreated bool // created_at descendente
}

type Repository interface {
	Create(ctx context.Context, g Reading) error
	GetByID(ctx context.Context, id string) (Reading, error)
	ListByPet(ctx context.Context, petID string, filter ListFilter) ([]Reading, error)
	Update(ctx context.Context, g Reading) error
	Delete(ctx context.Context, id string) error
}
