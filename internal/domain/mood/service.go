package mood

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"pet-care-tracker/internal/platform/timezone"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("mood entry not found")
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
	EnergyLevel string
	GeneralMood []string
	Appetite    string
	Walk        string
	Notes       *string
	Date        string // opcional; default hoy
}

func (s *Service) Create(ctx context.Context, petID string, in CreateInput) (Entry, error) {
	if strings.TrimSpace(petID) == "" {
		return Entry{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.EnergyLevel) == "" ||
		strings.TrimSpace(in.Appetite) == "" ||
		strings.TrimSpace(in.Walk) == "" {
		return Entry{}, ErrInvalidInput
	}
	if len(in.GeneralMood) == 0 {
		return Entry{}, ErrInvalidInput
	}

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = s.clock.Today()
	} else {
		d, err := timezone.ParseDate(date)
		if err != nil {
			return Entry{}, ErrInvalidInput
		}
		date = d
	}

	e := Entry{
		ID:          uuid.NewString(),
		PetID:       petID,
		EnergyLevel: in.EnergyLevel,
		GeneralMood: in.GeneralMood,
		Appetite:    in.Appetite,
		Walk:        in.Walk,
		Notes:       in.Notes,
		Date:        date,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Entry, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPet(ctx context.Context, petID string, filter ListFilter) ([]Entry, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	return s.repo.ListByPet(ctx, petID, filter)
}

func (s *Service) Delete(ctx context.Context, id string) (Entry, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Entry{}, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return Entry{}, err
	}
	return e, nil
}
