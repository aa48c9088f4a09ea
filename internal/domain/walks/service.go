package walks

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-care-tracker/internal/platform/patch"
	"pet-care-tracker/internal/platform/timezone"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("walk entry not found")
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
	StartTime       time.Time
	EndTime         *time.Time
	DurationSeconds *int
	PauseEvents     []PauseSegment
	Date            string // opcional; default: fecha de start_time en zona de referencia

	EnergyLevel        *string
	Behavior           []string
	CompletedRoute     *bool
	PeeCount           *string
	PeeVolume          *string
	PeeColor           *string
	PoopMade           *bool
	PoopConsistency    *string
	PoopBlood          *bool
	PoopMucus          *bool
	PoopColor          *string
	Photos             []string
	Weather            *string
	TemperatureCelsius *float64
	RouteDistanceKm    *float64
	RouteDescription   *string
	MobilityNotes      *string
	Disorientation     *bool
	ExcessivePanting   *bool
	Cough              *bool
	Notes              *string
	Alerts             []string
}

// Create normaliza y persiste una sesión de paseo:
// start/end a zona de referencia, duración derivada (floor de end-start en
// segundos) cuando el cliente no la manda y hay end_time, pausas tramo a
// tramo, y date derivada del start si no viene.
func (s *Service) Create(ctx context.Context, petID string, in CreateInput) (Entry, error) {
	if strings.TrimSpace(petID) == "" {
		return Entry{}, ErrInvalidInput
	}
	if in.StartTime.IsZero() {
		return Entry{}, ErrInvalidInput
	}

	start := s.clock.ToReference(in.StartTime)

	var end *time.Time
	if in.EndTime != nil {
		t := s.clock.ToReference(*in.EndTime)
		end = &t
	}

	duration := in.DurationSeconds
	if duration == nil && end != nil {
		d := durationBetween(start, *end)
		duration = &d
	}

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = s.clock.DateOf(start)
	} else {
		d, err := timezone.ParseDate(date)
		if err != nil {
			return Entry{}, ErrInvalidInput
		}
		date = d
	}

	e := Entry{
		ID:              uuid.NewString(),
		PetID:           petID,
		Date:            date,
		StartTime:       start,
		EndTime:         end,
		DurationSeconds: duration,
		PauseEvents:     normalizePauses(s.clock, in.PauseEvents),

		EnergyLevel:        in.EnergyLevel,
		Behavior:           in.Behavior,
		CompletedRoute:     in.CompletedRoute,
		PeeCount:           in.PeeCount,
		PeeVolume:          in.PeeVolume,
		PeeColor:           in.PeeColor,
		PoopMade:           in.PoopMade,
		PoopConsistency:    in.PoopConsistency,
		PoopBlood:          in.PoopBlood,
		PoopMucus:          in.PoopMucus,
		PoopColor:          in.PoopColor,
		Photos:             in.Photos,
		Weather:            in.Weather,
		TemperatureCelsius: in.TemperatureCelsius,
		RouteDistanceKm:    in.RouteDistanceKm,
		RouteDescription:   in.RouteDescription,
		MobilityNotes:      in.MobilityNotes,
		Disorientation:     in.Disorientation,
		ExcessivePanting:   in.ExcessivePanting,
		Cough:              in.Cough,
		Notes:              in.Notes,
		Alerts:             in.Alerts,

		CreatedAt: s.clock.Now(),
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

// UpdateInput es el patch explícito de paseo: solo los campos presentes
// tocan el registro (ausente != null). start_time no es editable.
type UpdateInput struct {
	Date            *string
	EndTime         patch.Field[time.Time]
	DurationSeconds patch.Field[int]
	PauseEvents     patch.Field[[]PauseSegment]

	EnergyLevel        patch.Field[string]
	Behavior           patch.Field[[]string]
	CompletedRoute     patch.Field[bool]
	PeeCount           patch.Field[string]
	PeeVolume          patch.Field[string]
	PeeColor           patch.Field[string]
	PoopMade           patch.Field[bool]
	PoopConsistency    patch.Field[string]
	PoopBlood          patch.Field[bool]
	PoopMucus          patch.Field[bool]
	PoopColor          patch.Field[string]
	Photos             patch.Field[[]string]
	Weather            patch.Field[string]
	TemperatureCelsius patch.Field[float64]
	RouteDistanceKm    patch.Field[float64]
	RouteDescription   patch.Field[string]
	MobilityNotes      patch.Field[string]
	Disorientation     patch.Field[bool]
	ExcessivePanting   patch.Field[bool]
	Cough              patch.Field[bool]
	Notes              patch.Field[string]
	Alerts             patch.Field[[]string]
}

// Update aplica el patch campo a campo. Regla de duración: si el patch trae
// end_time (no null) y NO trae duration_seconds, la duración se recalcula
// contra el start_time existente; en cualquier otro caso la duración es
// exactamente lo que diga el patch (o queda como estaba si no vino).
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Entry, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Entry{}, err
	}

	if in.Date != nil {
		d, err := timezone.ParseDate(*in.Date)
		if err != nil {
			return Entry{}, ErrInvalidInput
		}
		e.Date = d
	}

	if in.EndTime.Present {
		if in.EndTime.Value == nil {
			e.EndTime = nil
		} else {
			t := s.clock.ToReference(*in.EndTime.Value)
			e.EndTime = &t

			if !in.DurationSeconds.Present {
				d := durationBetween(e.StartTime, t)
				e.DurationSeconds = &d
			}
		}
	}
	in.DurationSeconds.ApplyPtr(&e.DurationSeconds)

	if in.PauseEvents.Present {
		if in.PauseEvents.Value == nil {
			e.PauseEvents = nil
		} else {
			e.PauseEvents = normalizePauses(s.clock, *in.PauseEvents.Value)
		}
	}

	in.EnergyLevel.ApplyPtr(&e.EnergyLevel)
	if in.Behavior.Present {
		e.Behavior = derefSlice(in.Behavior.Value)
	}
	in.CompletedRoute.ApplyPtr(&e.CompletedRoute)
	in.PeeCount.ApplyPtr(&e.PeeCount)
	in.PeeVolume.ApplyPtr(&e.PeeVolume)
	in.PeeColor.ApplyPtr(&e.PeeColor)
	in.PoopMade.ApplyPtr(&e.PoopMade)
	in.PoopConsistency.ApplyPtr(&e.PoopConsistency)
	in.PoopBlood.ApplyPtr(&e.PoopBlood)
	in.PoopMucus.ApplyPtr(&e.PoopMucus)
	in.PoopColor.ApplyPtr(&e.PoopColor)
	if in.Photos.Present {
		e.Photos = derefSlice(in.Photos.Value)
	}
	in.Weather.ApplyPtr(&e.Weather)
	in.TemperatureCelsius.ApplyPtr(&e.TemperatureCelsius)
	in.RouteDistanceKm.ApplyPtr(&e.RouteDistanceKm)
	in.RouteDescription.ApplyPtr(&e.RouteDescription)
	in.MobilityNotes.ApplyPtr(&e.MobilityNotes)
	in.Disorientation.ApplyPtr(&e.Disorientation)
	in.ExcessivePanting.ApplyPtr(&e.ExcessivePanting)
	in.Cough.ApplyPtr(&e.Cough)
	in.Notes.ApplyPtr(&e.Notes)
	if in.Alerts.Present {
		e.Alerts = derefSlice(in.Alerts.Value)
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return Entry{}, err
	}
	return e, nil
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

func derefSlice[T any](v *[]T) []T {
	if v == nil {
		return nil
	}
	return *v
}
