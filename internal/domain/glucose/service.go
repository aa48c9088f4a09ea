package glucose

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"pet-care-tracker/internal/platform/patch"
	"pet-care-tracker/internal/platform/timezone"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("glucose reading not found")
)

const defaultListLimit = 30

type Service struct {
	repo  Repository
	clock *timezone.Clock
}

func NewService(repo Repository, clock *timezone.Clock) *Service {
	return &Service{repo: repo, clock: clock}
}

type CreateInput struct {
	Value       float64
	Protocol    *string
	Notes       *string
	InsulinDose *float64
	Date        string // opcional; default hoy
}

// Create registra una medición. time_of_day se calcula del instante de
// creación en la zona de referencia, se ignora lo que venga del cliente.
func (s *Service) Create(ctx context.Context, petID string, in CreateInput) (Reading, error) {
	if strings.TrimSpace(petID) == "" {
		return Reading{}, ErrInvalidInput
	}
	if in.Value <= 0 {
		return Reading{}, ErrInvalidInput
	}

	now := s.clock.Now()

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = s.clock.Today()
	} else {
		d, err := timezone.ParseDate(date)
		if err != nil {
			return Reading{}, ErrInvalidInput
		}
		date = d
	}

	g := Reading{
		ID:          uuid.NewString(),
		PetID:       petID,
		Value:       in.Value,
		TimeOfDay:   timezone.PeriodOfDay(now.Hour()),
		Protocol:    in.Protocol,
		Notes:       in.Notes,
		InsulinDose: in.InsulinDose,
		Date:        date,
		CreatedAt:   now,
	}

	if err := s.repo.Create(ctx, g); err != nil {
		return Reading{}, err
	}
	return g, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Reading, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPet(ctx context.Context, petID string, filter ListFilter) ([]Reading, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	return s.repo.ListByPet(ctx, petID, filter)
}

type UpdateInput struct {
	Value       *float64
	Protocol    patch.Field[string]
	Notes       patch.Field[string]
	InsulinDose patch.Field[float64]
	Date        *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Reading, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Reading{}, err
	}

	if in.Value != nil {
		if *in.Value <= 0 {
			return Reading{}, ErrInvalidInput
		}
		g.Value = *in.Value
	}
	in.Protocol.ApplyPtr(&g.Protocol)
	in.Notes.ApplyPtr(&g.Notes)
	in.InsulinDose.ApplyPtr(&g.InsulinDose)
	if in.Date != nil {
		d, err := timezone.ParseDate(*in.Date)
		if err != nil {
			return Reading{}, ErrInvalidInput
		}
		g.Date = d
	}

	if err := s.repo.Update(ctx, g); err != nil {
		return Reading{}, err
	}
	return g, nil
}

func (s *Service) Delete(ctx context.Context, id string) (Reading, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Reading{}, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return Reading{}, err
	}
	return g, nil
}
