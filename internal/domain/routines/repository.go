package routines

import "context"

type ItemFilter struct {
	Date         string // vacío = sin filtro por fecha
	SortByPeriod bool
}

type Repository interface {
	CreateTemplate(ctx context.Context, t Template) error
	GetTemplate(ctx context.Context, id string) (Template, error)
	ListTemplates(ctx context.Context, petID string, activeOnly bool) ([]Template, error)
	UpdateTemplate(ctx context.Context, t Template) error
	DeleteTemplate(ctx context.Context, id string) error

	CreateItem(ctx context.Context, it Item) error
	GetItem(ctx context.Context, id string) (Item, error)
	ListItems(ctx context.Context, petID string, filter ItemFilter) ([]Item, error)
	UpdateItem(ctx context.Context, it Item) error
	DeleteItem(ctx context.Context, id string) error
}
