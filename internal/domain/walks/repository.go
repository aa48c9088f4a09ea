package walks

import "context"

type ListFilter struct {
	Limit     int
	StartDate string // filtra date >= StartDate (YYYY-MM-DD)
	EndDate   string // filtra date <= EndDate
	Ascending bool   // default: start_time descendente
}

type Repository interface {
	Create(ctx context.Context, e Entry) error
	GetByID(ctx context.Context, id string) (Entry, error)
	ListByPet(ctx context.Context, petID string, filter ListFilter) ([]Entry, error)
	Update(ctx context.Context, e Entry) error
	Delete(ctx context.Context, id string) error
}
