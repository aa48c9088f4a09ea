package routines

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"pet-care-tracker/internal/platform/patch"
	"pet-care-tracker/internal/platform/timezone"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrTemplateNotFound = errors.New("template not found")
	ErrItemNotFound     = errors.New("routine item not found")
)

type Service struct {
	repo  Repository
	clock *timezone.Clock
}

func NewService(repo Repository, clock *timezone.Clock) *Service {
	return &Service{repo: repo, clock: clock}
}

// -------------------------
// Templates
// -------------------------

type CreateTemplateInput struct {
	Period Period
	Task   string
}

func (s *Service) CreateTemplate(ctx context.Context, petID string, in CreateTemplateInput) (Template, error) {
	if strings.TrimSpace(petID) == "" {
		return Template{}, ErrInvalidInput
	}
	if !ValidPeriod(in.Period) {
		return Template{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Task) == "" {
		return Template{}, ErrInvalidInput
	}

	t := Template{
		ID:        uuid.NewString(),
		PetID:     petID,
		Period:    in.Period,
		Task:      strings.TrimSpace(in.Task),
		IsActive:  true,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repo.CreateTemplate(ctx, t); err != nil {
		return Template{}, err
	}
	return t, nil
}

func (s *Service) ListTemplates(ctx context.Context, petID string, activeOnly bool) ([]Template, error) {
	return s.repo.ListTemplates(ctx, petID, activeOnly)
}

type UpdateTemplateInput struct {
	Period   *Period
	Task     *string
	IsActive *bool
}

func (s *Service) UpdateTemplate(ctx context.Context, id string, in UpdateTemplateInput) (Template, error) {
	t, err := s.repo.GetTemplate(ctx, id)
	if err != nil {
		return Template{}, err
	}

	if in.Period != nil {
		if !ValidPeriod(*in.Period) {
			return Template{}, ErrInvalidInput
		}
		t.Period = *in.Period
	}
	if in.Task != nil {
		if strings.TrimSpace(*in.Task) == "" {
			return Template{}, ErrInvalidInput
		}
		t.Task = strings.TrimSpace(*in.Task)
	}
	if in.IsActive != nil {
		t.IsActive = *in.IsActive
	}

	if err := s.repo.UpdateTemplate(ctx, t); err != nil {
		return Template{}, err
	}
	return t, nil
}

func (s *Service) DeleteTemplate(ctx context.Context, id string) (Template, error) {
	t, err := s.repo.GetTemplate(ctx, id)
	if err != nil {
		return Template{}, err
	}
	if err := s.repo.DeleteTemplate(ctx, id); err != nil {
		return Template{}, err
	}
	return t, nil
}

// -------------------------
// Items
// -------------------------

type CreateItemInput struct {
	TemplateID *string
	Period     Period
	Task       string
	Date       string // opcional; default hoy en la zona de referencia
}

func (s *Service) CreateItem(ctx context.Context, petID string, in CreateItemInput) (Item, error) {
	if strings.TrimSpace(petID) == "" {
		return Item{}, ErrInvalidInput
	}
	if !ValidPeriod(in.Period) {
		return Item{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Task) == "" {
		return Item{}, ErrInvalidInput
	}

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = s.clock.Today()
	} else {
		d, err := timezone.ParseDate(date)
		if err != nil {
			return Item{}, ErrInvalidInput
		}
		date = d
	}

	it := Item{
		ID:         uuid.NewString(),
		PetID:      petID,
		TemplateID: in.TemplateID,
		Period:     in.Period,
		Task:       strings.TrimSpace(in.Task),
		Completed:  false,
		Date:       date,
		CreatedAt:  s.clock.Now(),
	}

	if err := s.repo.CreateItem(ctx, it); err != nil {
		return Item{}, err
	}
	return it, nil
}

func (s *Service) ListItems(ctx context.Context, petID string, filter ItemFilter) ([]Item, error) {
	return s.repo.ListItems(ctx, petID, filter)
}

type UpdateItemInput struct {
	Completed *bool
	// CompletedAt acepta null para limpiar; el valor se normaliza a la zona
	// de referencia.
	CompletedAt patch.Field[string]
}

func (s *Service) UpdateItem(ctx context.Context, id string, in UpdateItemInput) (Item, error) {
	it, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return Item{}, err
	}

	if in.Completed != nil {
		it.Completed = *in.Completed
	}
	if in.CompletedAt.Present {
		if in.CompletedAt.Value == nil {
			it.CompletedAt = nil
		} else {
			t, err := s.clock.Parse(*in.CompletedAt.Value)
			if err != nil {
				return Item{}, ErrInvalidInput
			}
			it.CompletedAt = &t
		}
	}

	if err := s.repo.UpdateItem(ctx, it); err != nil {
		return Item{}, err
	}
	return it, nil
}

func (s *Service) DeleteItem(ctx context.Context, id string) (Item, error) {
	it, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return Item{}, err
	}
	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return Item{}, err
	}
	return it, nil
}

// -------------------------
// Seeder diario
// -------------------------

// EnsureDaily materializa los items del día a partir de los templates activos.
// La cobertura por template se recalcula contra lo persistido en cada llamada,
// así que repetir la invocación con el mismo (pet, fecha) no duplica items:
// un template ya representado entre los items existentes se salta. Los items
// preexistentes van primero en la respuesta, luego los recién creados.
//
// Dos llamadas simultáneas para el mismo (pet, fecha) pueden pisarse entre la
// lectura y la escritura; la API es de un solo usuario y el caso no se protege.
func (s *Service) EnsureDaily(ctx context.Context, petID, date string) ([]Item, error) {
	if strings.TrimSpace(petID) == "" {
		return nil, ErrInvalidInput
	}

	date = strings.TrimSpace(date)
	if date == "" {
		date = s.clock.Today()
	} else {
		d, err := timezone.ParseDate(date)
		if err != nil {
			return nil, ErrInvalidInput
		}
		date = d
	}

	existing, err := s.repo.ListItems(ctx, petID, ItemFilter{Date: date})
	if err != nil {
		return nil, err
	}

	covered := make(map[string]struct{}, len(existing))
	for _, it := range existing {
		if it.TemplateID != nil {
			covered[*it.TemplateID] = struct{}{}
		}
	}

	templates, err := s.repo.ListTemplates(ctx, petID, true)
	if err != nil {
		return nil, err
	}

	created := make([]Item, 0)
	for _, t := range templates {
		if _, ok := covered[t.ID]; ok {
			continue
		}

		templateID := t.ID
		it := Item{
			ID:         uuid.NewString(),
			PetID:      petID,
			TemplateID: &templateID,
			Period:     t.Period,
			Task:       t.Task,
			Completed:  false,
			Date:       date,
			CreatedAt:  s.clock.Now(),
		}
		if err := s.repo.CreateItem(ctx, it); err != nil {
			return nil, err
		}
		created = append(created, it)
	}

	return append(existing, created...), nil
}
