package pets

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"pet-care-tracker/internal/platform/timezone"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo  Repository
	clock *timezone.Clock
}

func NewService(repo Repository, clock *timezone.Clock) *Service {
	return &Service{repo: repo, clock: clock}
}

type CreateInput struct {
	Name  string
	Breed *string
	Age   *int
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}

	p := Pet{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Breed:     in.Breed,
		Age:       in.Age,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, skip, limit int) ([]Pet, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	return s.repo.List(ctx, skip, limit)
}

// Delete borra la mascota y devuelve el registro eliminado.
// No hay cascade: los registros hijos quedan huérfanos.
func (s *Service) Delete(ctx context.Context, id string) (Pet, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Exists es el chequeo de existencia que hacen los módulos hijos antes de
// crear registros asociados a una mascota.
func (s *Service) Exists(ctx context.Context, id string) error {
	_, err := s.GetByID(ctx, id)
	return err
}
