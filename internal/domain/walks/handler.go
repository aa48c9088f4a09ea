package walks

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-care-tracker/internal/domain/pets"
	"pet-care-tracker/internal/platform/httpjson"
	"pet-care-tracker/internal/platform/patch"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/walk-entries", func(wr chi.Router) {
		wr.Get("/", listEntriesHandler(svc))
		wr.Post("/", createEntryHandler(svc, petsSvc))
		wr.Patch("/{entryID}", updateEntryHandler(svc))
		wr.Delete("/{entryID}", deleteEntryHandler(svc))
	})
}

type pauseSegmentRequest struct {
	StartedAt *string `json:"started_at"`
	EndedAt   *string `json:"ended_at"`
}

type createEntryRequest struct {
	StartTime       string                `json:"start_time"` // RFC3339 o naive (zona de referencia)
	EndTime         *string               `json:"end_time"`
	DurationSeconds *int                  `json:"duration_seconds"`
	PauseEvents     []pauseSegmentRequest `json:"pause_events"`
	Date            string                `json:"date"` // YYYY-MM-DD opcional

	EnergyLevel        *string  `json:"energy_level"`
	Behavior           []string `json:"behavior"`
	CompletedRoute     *bool    `json:"completed_route"`
	PeeCount           *string  `json:"pee_count"`
	PeeVolume          *string  `json:"pee_volume"`
	PeeColor           *string  `json:"pee_color"`
	PoopMade           *bool    `json:"poop_made"`
	PoopConsistency    *string  `json:"poop_consistency"`
	PoopBlood          *bool    `json:"poop_blood"`
	PoopMucus          *bool    `json:"poop_mucus"`
	PoopColor          *string  `json:"poop_color"`
	Photos             []string `json:"photos"`
	Weather            *string  `json:"weather"`
	TemperatureCelsius *float64 `json:"temperature_celsius"`
	RouteDistanceKm    *float64 `json:"route_distance_km"`
	RouteDescription   *string  `json:"route_description"`
	MobilityNotes      *string  `json:"mobility_notes"`
	Disorientation     *bool    `json:"disorientation"`
	ExcessivePanting   *bool    `json:"excessive_panting"`
	Cough              *bool    `json:"cough"`
	Notes              *string  `json:"notes"`
	Alerts             []string `json:"alerts"`
}

type updateEntryRequest struct {
	EndTime         patch.Field[string]                `json:"end_time"` // null limpia
	DurationSeconds patch.Field[int]                   `json:"duration_seconds"`
	PauseEvents     patch.Field[[]pauseSegmentRequest] `json:"pause_events"`
	Date            *string                            `json:"date"`

	EnergyLevel        patch.Field[string]   `json:"energy_level"`
	Behavior           patch.Field[[]string] `json:"behavior"`
	CompletedRoute     patch.Field[bool]     `json:"completed_route"`
	PeeCount           patch.Field[string]   `json:"pee_count"`
	PeeVolume          patch.Field[string]   `json:"pee_volume"`
	PeeColor           patch.Field[string]   `json:"pee_color"`
	PoopMade           patch.Field[bool]     `json:"poop_made"`
	PoopConsistency    patch.Field[string]   `json:"poop_consistency"`
	PoopBlood          patch.Field[bool]     `json:"poop_blood"`
	PoopMucus          patch.Field[bool]     `json:"poop_mucus"`
	PoopColor          patch.Field[string]   `json:"poop_color"`
	Photos             patch.Field[[]string] `json:"photos"`
	Weather            patch.Field[string]   `json:"weather"`
	TemperatureCelsius patch.Field[float64]  `json:"temperature_celsius"`
	RouteDistanceKm    patch.Field[float64]  `json:"route_distance_km"`
	RouteDescription   patch.Field[string]   `json:"route_description"`
	MobilityNotes      patch.Field[string]   `json:"mobility_notes"`
	Disorientation     patch.Field[bool]     `json:"disorientation"`
	ExcessivePanting   patch.Field[bool]     `json:"excessive_panting"`
	Cough              patch.Field[bool]     `json:"cough"`
	Notes              patch.Field[string]   `json:"notes"`
	Alerts             patch.Field[[]string] `json:"alerts"`
}

type pauseSegmentResponse struct {
	StartedAt *time.Time `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at"`
}

type entryResponse struct {
	ID              string                 `json:"id"`
	Date            string                 `json:"date"`
	StartTime       time.Time              `json:"start_time"`
	EndTime         *time.Time             `json:"end_time"`
	DurationSeconds *int                   `json:"duration_seconds"`
	PauseEvents     []pauseSegmentResponse `json:"pause_events"`

	EnergyLevel        *string   `json:"energy_level"`
	Behavior           []string  `json:"behavior"`
	CompletedRoute     *bool     `json:"completed_route"`
	PeeCount           *string   `json:"pee_count"`
	PeeVolume          *string   `json:"pee_volume"`
	PeeColor           *string   `json:"pee_color"`
	PoopMade           *bool     `json:"poop_made"`
	PoopConsistency    *string   `json:"poop_consistency"`
	PoopBlood          *bool     `json:"poop_blood"`
	PoopMucus          *bool     `json:"poop_mucus"`
	PoopColor          *string   `json:"poop_color"`
	Photos             []string  `json:"photos"`
	Weather            *string   `json:"weather"`
	TemperatureCelsius *float64  `json:"temperature_celsius"`
	RouteDistanceKm    *float64  `json:"route_distance_km"`
	RouteDescription   *string   `json:"route_description"`
	MobilityNotes      *string   `json:"mobility_notes"`
	Disorientation     *bool     `json:"disorientation"`
	ExcessivePanting   *bool     `json:"excessive_panting"`
	Cough              *bool     `json:"cough"`
	Notes              *string   `json:"notes"`
	Alerts             []string  `json:"alerts"`
	CreatedAt          time.Time `json:"created_at"`
}

// listEntriesHandler godoc
// @Summary Listar paseos
// @Description Lista paseos de una mascota, más recientes primero salvo `sort=start_time:asc`. `start_date`/`end_date` filtran por fecha del paseo.
// @Tags walk-entries
// @Produce json
// @Param pet_id query string true "ID de la mascota"
// @Param limit query int false "Máximo de registros (default 30)"
// @Param sort query string false "start_time:desc | start_time:asc"
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Success 200 {array} entryResponse
// @Failure 400 {object} httpjson.ErrorBody
// @Router /walk-entries [get]
func listEntriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := r.URL.Query().Get("pet_id")
		if petID == "" {
			httpjson.BadRequest(w, "pet_id is required")
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		items, err := svc.ListByPet(r.Context(), petID, ListFilter{
			Limit:     limit,
			StartDate: r.URL.Query().Get("start_date"),
			EndDate:   r.URL.Query().Get("end_date"),
			Ascending: r.URL.Query().Get("sort") == "start_time:asc",
		})
		if err != nil {
			httpjson.Internal(w)
			return
		}

		out := make([]entryResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEntryResponse(e))
		}
		httpjson.WriteJSON(w, http.StatusOK, out)
	}
}

// createEntryHandler godoc
// @Summary Registrar paseo
// @Description Crea una sesión de paseo. Tiempos en RFC3339 o sin zona (se asumen en la zona de referencia). Sin `duration_seconds`, con `end_time` presente, la duración se deriva. Sin `date`, se usa la fecha del start en la zona de referencia.
// @Tags walk-entries
// @Accept json
// @Produce json
// @Param pet_id query string true "ID de la mascota"
// @Param payload body createEntryRequest true "Paseo"
// @Success 201 {object} entryResponse
// @Failure 404 {object} httpjson.ErrorBody
// @Router /walk-entries [post]
func createEntryHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := r.URL.Query().Get("pet_id")
		if petID == "" {
			httpjson.BadRequest(w, "pet_id is required")
			return
		}
		if err := petsSvc.Exists(r.Context(), petID); err != nil {
			httpjson.NotFound(w, "Pet not found")
			return
		}

		var req createEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.BadRequest(w, "invalid json")
			return
		}

		if req.StartTime == "" {
			httpjson.BadRequest(w, "start_time is required")
			return
		}
		start, err := svc.clock.Parse(req.StartTime)
		if err != nil {
			httpjson.BadRequest(w, "start_time must be a timestamp")
			return
		}

		var end *time.Time
		if req.EndTime != nil {
			t, err := svc.clock.Parse(*req.EndTime)
			if err != nil {
				httpjson.BadRequest(w, "end_time must be a timestamp")
				return
			}
			end = &t
		}

		pauses, err := parsePauseSegments(svc, req.PauseEvents)
		if err != nil {
			httpjson.BadRequest(w, "pause_events timestamps must be valid")
			return
		}

		e, err := svc.Create(r.Context(), petID, CreateInput{
			StartTime:       start,
			EndTime:         end,
			DurationSeconds: req.DurationSeconds,
			PauseEvents:     pauses,
			Date:            req.Date,

			EnergyLevel:        req.EnergyLevel,
			Behavior:           req.Behavior,
			CompletedRoute:     req.CompletedRoute,
			PeeCount:           req.PeeCount,
			PeeVolume:          req.PeeVolume,
			PeeColor:           req.PeeColor,
			PoopMade:           req.PoopMade,
			PoopConsistency:    req.PoopConsistency,
			PoopBlood:          req.PoopBlood,
			PoopMucus:          req.PoopMucus,
			PoopColor:          req.PoopColor,
			Photos:             req.Photos,
			Weather:            req.Weather,
			TemperatureCelsius: req.TemperatureCelsius,
			RouteDistanceKm:    req.RouteDistanceKm,
			RouteDescription:   req.RouteDescription,
			MobilityNotes:      req.MobilityNotes,
			Disorientation:     req.Disorientation,
			ExcessivePanting:   req.ExcessivePanting,
			Cough:              req.Cough,
			Notes:              req.Notes,
			Alerts:             req.Alerts,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpjson.BadRequest(w, "invalid walk entry payload")
				return
			}
			httpjson.Internal(w)
			return
		}

		httpjson.WriteJSON(w, http.StatusCreated, toEntryResponse(e))
	}
}

func updateEntryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.BadRequest(w, "invalid json")
			return
		}

		in := UpdateInput{
			DurationSeconds: req.DurationSeconds,
			Date:            req.Date,

			EnergyLevel:        req.EnergyLevel,
			Behavior:           req.Behavior,
			CompletedRoute:     req.CompletedRoute,
			PeeCount:           req.PeeCount,
			PeeVolume:          req.PeeVolume,
			PeeColor:           req.PeeColor,
			PoopMade:           req.PoopMade,
			PoopConsistency:    req.PoopConsistency,
			PoopBlood:          req.PoopBlood,
			PoopMucus:          req.PoopMucus,
			PoopColor:          req.PoopColor,
			Photos:             req.Photos,
			Weather:            req.Weather,
			TemperatureCelsius: req.TemperatureCelsius,
			RouteDistanceKm:    req.RouteDistanceKm,
			RouteDescription:   req.RouteDescription,
			MobilityNotes:      req.MobilityNotes,
			Disorientation:     req.Disorientation,
			ExcessivePanting:   req.ExcessivePanting,
			Cough:              req.Cough,
			Notes:              req.Notes,
			Alerts:             req.Alerts,
		}

		if req.EndTime.Present {
			if req.EndTime.Value == nil {
				in.EndTime = patch.Null[time.Time]()
			} else {
				t, err := svc.clock.Parse(*req.EndTime.Value)
				if err != nil {
					httpjson.BadRequest(w, "end_time must be a timestamp or null")
					return
				}
				in.EndTime = patch.Set(t)
			}
		}

		if req.PauseEvents.Present {
			if req.PauseEvents.Value == nil {
				in.PauseEvents = patch.Null[[]PauseSegment]()
			} else {
				pauses, err := parsePauseSegments(svc, *req.PauseEvents.Value)
				if err != nil {
					httpjson.BadRequest(w, "pause_events timestamps must be valid")
					return
				}
				in.PauseEvents = patch.Set(pauses)
			}
		}

		e, err := svc.Update(r.Context(), chi.URLParam(r, "entryID"), in)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpjson.BadRequest(w, "invalid walk entry patch")
			case errors.Is(err, ErrNotFound):
				httpjson.NotFound(w, "Walk entry not found")
			default:
				httpjson.Internal(w)
			}
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, toEntryResponse(e))
	}
}

func deleteEntryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := svc.Delete(r.Context(), chi.URLParam(r, "entryID")); err != nil {
			if errors.Is(err, ErrNotFound) {
				httpjson.NotFound(w, "Walk entry not found")
				return
			}
			httpjson.Internal(w)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, httpjson.MessageBody{Message: "Walk entry deleted successfully"})
	}
}

func parsePauseSegments(svc *Service, in []pauseSegmentRequest) ([]PauseSegment, error) {
	if len(in) == 0 {
		return nil, nil
	}

	out := make([]PauseSegment, 0, len(in))
	for _, seg := range in {
		var p PauseSegment
		if seg.StartedAt != nil {
			t, err := svc.clock.Parse(*seg.StartedAt)
			if err != nil {
				return nil, err
			}
			p.StartedAt = &t
		}
		if seg.EndedAt != nil {
			t, err := svc.clock.Parse(*seg.EndedAt)
			if err != nil {
				return nil, err
			}
			p.EndedAt = &t
		}
		out = append(out, p)
	}
	return out, nil
}

func toEntryResponse(e Entry) entryResponse {
	var pauses []pauseSegmentResponse
	if e.PauseEvents != nil {
		pauses = make([]pauseSegmentResponse, 0, len(e.PauseEvents))
		for _, seg := range e.PauseEvents {
			pauses = append(pauses, pauseSegmentResponse{
				StartedAt: seg.StartedAt,
				EndedAt:   seg.EndedAt,
			})
		}
	}

	return entryResponse{
		ID:              e.ID,
		Date:            e.Date,
		StartTime:       e.StartTime,
		EndTime:         e.EndTime,
		DurationSeconds: e.DurationSeconds,
		PauseEvents:     pauses,

		EnergyLevel:        e.EnergyLevel,
		Behavior:           e.Behavior,
		CompletedRoute:     e.CompletedRoute,
		PeeCount:           e.PeeCount,
		PeeVolume:          e.PeeVolume,
		PeeColor:           e.PeeColor,
		PoopMade:           e.PoopMade,
		PoopConsistency:    e.PoopConsistency,
		PoopBlood:          e.PoopBlood,
		PoopMucus:          e.PoopMucus,
		PoopColor:          e.PoopColor,
		Photos:             e.Photos,
		Weather:            e.Weather,
		TemperatureCelsius: e.TemperatureCelsius,
		RouteDistanceKm:    e.RouteDistanceKm,
		RouteDescription:   e.RouteDescription,
		MobilityNotes:      e.MobilityNotes,
		Disorientation:     e.Disorientation,
		ExcessivePanting:   e.ExcessivePanting,
		Cough:              e.Cough,
		Notes:              e.Notes,
		Alerts:             e.Alerts,
		CreatedAt:          e.CreatedAt,
	}
}
