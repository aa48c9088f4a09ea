package mood

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-care-tracker/internal/domain/pets"
	"pet-care-tracker/internal/platform/httpjson"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/mood-entries", func(mr chi.Router) {
		mr.Get("/", listEntriesHandler(svc))
		mr.Post("/", createEntryHandler(svc, petsSvc))
		mr.Delete("/{entryID}", deleteEntryHandler(svc))
	})
}

type createEntryRequest struct {
	EnergyLevel string   `json:"energy_level"`
	GeneralMood []string `json:"general_mood"`
	Appetite    string   `json:"appetite"`
	Walk        string   `json:"walk"`
	Notes       *string  `json:"notes"`
	Date        string   `json:"date"` // YYYY-MM-DD opcional
}

type entryResponse struct {
	ID          string    `json:"id"`
	EnergyLevel string    `json:"energy_level"`
	GeneralMood []string  `json:"general_mood"`
	Appetite    string    `json:"appetite"`
	Walk        string    `json:"walk"`
	Notes       *string   `json:"notes"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

func listEntriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := r.URL.Query().Get("pet_id")
		if petID == "" {
			httpjson.BadRequest(w, "pet_id is required")
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		items, err := svc.ListByPet(r.Context(), petID, ListFilter{
			Limit:         limit,
			SortByCreated: r.URL.Query().Get("sort") == "created_at:desc",
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

		e, err := svc.Create(r.Context(), petID, CreateInput{
			EnergyLevel: req.EnergyLevel,
			GeneralMood: req.GeneralMood,
			Appetite:    req.Appetite,
			Walk:        req.Walk,
			Notes:       req.Notes,
			Date:        req.Date,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpjson.BadRequest(w, "energy_level, general_mood, appetite and walk are required")
				return
			}
			httpjson.Internal(w)
			return
		}

		httpjson.WriteJSON(w, http.StatusCreated, toEntryResponse(e))
	}
}

func deleteEntryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := svc.Delete(r.Context(), chi.URLParam(r, "entryID")); err != nil {
			if errors.Is(err, ErrNotFound) {
				httpjson.NotFound(w, "Mood entry not found")
				return
			}
			httpjson.Internal(w)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, httpjson.MessageBody{Message: "Mood entry deleted successfully"})
	}
}

func toEntryResponse(e Entry) entryResponse {
	return entryResponse{
		ID:          e.ID,
		EnergyLevel: e.EnergyLevel,
		GeneralMood: e.GeneralMood,
		Appetite:    e.Appetite,
		Walk:        e.Walk,
		Notes:       e.Notes,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
	}
}
