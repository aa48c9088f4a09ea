package glucose

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
	"pet-care-tracker/internal/platform/timezone"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/glucose-readings", func(gr chi.Router) {
		gr.Get("/", listReadingsHandler(svc))
		gr.Post("/", createReadingHandler(svc, petsSvc))
		gr.Patch("/{readingID}", updateReadingHandler(svc))
		gr.Delete("/{readingID}", deleteReadingHandler(svc))
	})
}

type createReadingRequest struct {
	Value       float64  `json:"value"`
	Protocol    *string  `json:"protocol"`
	Notes       *string  `json:"notes"`
	InsulinDose *float64 `json:"insulin_dose"`
	Date        string   `json:"date"` // YYYY-MM-DD opcional
}

type updateReadingRequest struct {
	Value       *float64             `json:"value"`
	Protocol    patch.Field[string]  `json:"protocol"`
	Notes       patch.Field[string]  `json:"notes"`
	InsulinDose patch.Field[float64] `json:"insulin_dose"`
	Date        *string              `json:"date"`
}

type readingResponse struct {
	ID          string          `json:"id"`
	Value       float64         `json:"value"`
	TimeOfDay   timezone.Period `json:"time_of_day"`
	Protocol    *string         `json:"protocol"`
	Notes       *string         `json:"notes"`
	InsulinDose *float64        `json:"insulin_dose"`
	Date        string          `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

func listReadingsHandler(svc *Service) http.HandlerFunc {
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

		out := make([]readingResponse, 0, len(items))
		for _, g := range items {
			out = append(out, toReadingResponse(g))
		}
		httpjson.WriteJSON(w, http.StatusOK, out)
	}
}

// createReadingHandler godoc
// @Summary Registrar medición de glucosa
// @Description Crea una medición. `time_of_day` lo calcula el servidor con la hora de la zona de referencia; el valor del cliente se ignora.
// @Tags glucose-readings
// @Accept json
// @Produce json
// @Param pet_id query string true "ID de la mascota"
// @Param payload body createReadingRequest true "Medición"
// @Success 201 {object} readingResponse
// @Failure 404 {object} httpjson.ErrorBody
// @Router /glucose-readings [post]
func createReadingHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
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

		var req createReadingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.BadRequest(w, "invalid json")
			return
		}

		g, err := svc.Create(r.Context(), petID, CreateInput{
			Value:       req.Value,
			Protocol:    req.Protocol,
			Notes:       req.Notes,
			InsulinDose: req.InsulinDose,
			Date:        req.Date,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpjson.BadRequest(w, "value must be positive and date YYYY-MM-DD")
				return
			}
			httpjson.Internal(w)
			return
		}

		httpjson.WriteJSON(w, http.StatusCreated, toReadingResponse(g))
	}
}

func updateReadingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateReadingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.BadRequest(w, "invalid json")
			return
		}

		g, err := svc.Update(r.Context(), chi.URLParam(r, "readingID"), UpdateInput{
			Value:       req.Value,
			Protocol:    req.Protocol,
			Notes:       req.Notes,
			InsulinDose: req.InsulinDose,
			Date:        req.Date,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpjson.BadRequest(w, "invalid glucose reading patch")
			case errors.Is(err, ErrNotFound):
				httpjson.NotFound(w, "Glucose reading not found")
			default:
				httpjson.Internal(w)
			}
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, toReadingResponse(g))
	}
}

func deleteReadingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := svc.Delete(r.Context(), chi.URLParam(r, "readingID")); err != nil {
			if errors.Is(err, ErrNotFound) {
				httpjson.NotFound(w, "Glucose reading not found")
				return
			}
			httpjson.Internal(w)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, httpjson.MessageBody{Message: "Glucose reading deleted successfully"})
	}
}

func toReadingResponse(g Reading) readingResponse {
	return readingResponse{
		ID:          g.ID,
		Value:       g.Value,
		TimeOfDay:   g.TimeOfDay,
		Protocol:    g.Protocol,
		Notes:       g.Notes,
		InsulinDose: g.InsulinDose,
		Date:        g.Date,
		CreatedAt:   g.CreatedAt,
	}
}
