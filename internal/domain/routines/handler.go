package routines

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-care-tracker/internal/domain/pets"
	"pet-care-tracker/internal/platform/httpjson"
	"pet-care-tracker/internal/platform/patch"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/routine-templates", func(tr chi.Router) {
		tr.Get("/", listTemplatesHandler(svc))
		tr.Post("/", createTemplateHandler(svc, petsSvc))
		tr.Patch("/{templateID}", updateTemplateHandler(svc))
		tr.Delete("/{templateID}", deleteTemplateHandler(svc))
	})

	r.Route("/routine-items", func(ir chi.Router) {
		ir.Get("/", listItemsHandler(svc))
		ir.Post("/", createItemHandler(svc, petsSvc))
		ir.Post("/ensure-daily", ensureDailyHandler(svc, petsSvc))
		ir.Patch("/{itemID}", updateItemHandler(svc))
		ir.Delete("/{itemID}", deleteItemHandler(svc))
	})
}

type createTemplateRequest struct {
	Period Period `json:"period" enums:"morning,afternoon,evening"`
	Task   string `json:"task"`
}

type updateTemplateRequest struct {
	Period   *Period `json:"period"`
	Task     *string `json:"task"`
	IsActive *bool   `json:"is_active"`
}

type templateResponse struct {
	ID        string    `json:"id"`
	Period    Period    `json:"period"`
	Task      string    `json:"task"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type createItemRequest struct {
	TemplateID *string `json:"template_id"`
	Period     Period  `json:"period" enums:"morning,afternoon,evening"`
	Task       string  `json:"task"`
	Date       string  `json:"date"` // YYYY-MM-DD opcional
}

type updateItemRequest struct {
	Completed   *bool               `json:"completed"`
	CompletedAt patch.Field[string] `json:"completed_at"` // null limpia
}

type itemResponse struct {
	ID          string     `json:"id"`
	TemplateID  *string    `json:"template_id"`
	Period      Period     `json:"period"`
	Task        string     `json:"task"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	Date        string     `json:"date"`
}

func listTemplatesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := r.URL.Query().Get("pet_id")
		if petID == "" {
			httpjson.BadRequest(w, "pet_id is required")
			return
		}

		// active_only default true, como siempre se comportó la API
		activeOnly := r.URL.Query().Get("active_only") != "false"

		items, err := svc.ListTemplates(r.Context(), petID, activeOnly)
		if err != nil {
			httpjson.Internal(w)
			return
		}

		out := make([]templateResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toTemplateResponse(t))
		}
		httpjson.WriteJSON(w, http.StatusOK, out)
	}
}

func createTemplateHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
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

		var req createTemplateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.BadRequest(w, "invalid json")
			return
		}

		t, err := svc.CreateTemplate(r.Context(), petID, CreateTemplateInput{
			Period: req.Period,
			Task:   req.Task,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpjson.BadRequest(w, "period must be morning|afternoon|evening and task is required")
				return
			}
			httpjson.Internal(w)
			return
		}

		httpjson.WriteJSON(w, http.StatusCreated, toTemplateResponse(t))
	}
}

func updateTemplateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateTemplateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.BadRequest(w, "invalid json")
			return
		}

		t, err := svc.UpdateTemplate(r.Context(), chi.URLParam(r, "templateID"), UpdateTemplateInput{
			Period:   req.Period,
			Task:     req.Task,
			IsActive: req.IsActive,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpjson.BadRequest(w, err.Error())
			case errors.Is(err, ErrTemplateNotFound):
				httpjson.NotFound(w, "Template not found")
			default:
				httpjson.Internal(w)
			}
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, toTemplateResponse(t))
	}
}

func deleteTemplateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := svc.DeleteTemplate(r.Context(), chi.URLParam(r, "templateID")); err != nil {
			if errors.Is(err, ErrTemplateNotFound) {
				httpjson.NotFound(w, "Template not found")
				return
			}
			httpjson.Internal(w)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, httpjson.MessageBody{Message: "Template deleted successfully"})
	}
}

// listItemsHandler godoc
// @Summary Listar items de rutina
// @Description Lista los items de rutina de una mascota. Sin `date` se asume hoy (zona de referencia). `sort=period` ordena morning < afternoon < evening < otros.
// @Tags routine-items
// @Produce json
// @Param pet_id query string true "ID de la mascota"
// @Param date query string false "Fecha YYYY-MM-DD (default hoy)"
// @Param sort query string false "period"
// @Success 200 {array} itemResponse
// @Failure 400 {object} httpjson.ErrorBody
// @Router /routine-items [get]
func listItemsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := r.URL.Query().Get("pet_id")
		if petID == "" {
			httpjson.BadRequest(w, "pet_id is required")
			return
		}

		date := r.URL.Query().Get("date")
		if date == "" {
			date = svc.clock.Today()
		}

		items, err := svc.ListItems(r.Context(), petID, ItemFilter{
			Date:         date,
			SortByPeriod: r.URL.Query().Get("sort") == "period",
		})
		if err != nil {
			httpjson.Internal(w)
			return
		}

		out := make([]itemResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toItemResponse(it))
		}
		httpjson.WriteJSON(w, http.StatusOK, out)
	}
}

func createItemHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
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

		var req createItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.BadRequest(w, "invalid json")
			return
		}

		it, err := svc.CreateItem(r.Context(), petID, CreateItemInput{
			TemplateID: req.TemplateID,
			Period:     req.Period,
			Task:       req.Task,
			Date:       req.Date,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpjson.BadRequest(w, "invalid routine item payload")
				return
			}
			httpjson.Internal(w)
			return
		}

		httpjson.WriteJSON(w, http.StatusCreated, toItemResponse(it))
	}
}

// ensureDailyHandler godoc
// @Summary Sembrar tareas del día
// @Description Garantiza que existan items para la fecha a partir de los templates activos. Idempotente: repetir la llamada no duplica items.
// @Tags routine-items
// @Produce json
// @Param pet_id query string true "ID de la mascota"
// @Param date query string false "Fecha YYYY-MM-DD (default hoy)"
// @Success 200 {array} itemResponse
// @Failure 404 {object} httpjson.ErrorBody
// @Router /routine-items/ensure-daily [post]
func ensureDailyHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
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

		items, err := svc.EnsureDaily(r.Context(), petID, r.URL.Query().Get("date"))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpjson.BadRequest(w, "date must be YYYY-MM-DD")
				return
			}
			httpjson.Internal(w)
			return
		}

		out := make([]itemResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toItemResponse(it))
		}
		httpjson.WriteJSON(w, http.StatusOK, out)
	}
}

func updateItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.BadRequest(w, "invalid json")
			return
		}

		it, err := svc.UpdateItem(r.Context(), chi.URLParam(r, "itemID"), UpdateItemInput{
			Completed:   req.Completed,
			CompletedAt: req.CompletedAt,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpjson.BadRequest(w, "completed_at must be a timestamp or null")
			case errors.Is(err, ErrItemNotFound):
				httpjson.NotFound(w, "Routine item not found")
			default:
				httpjson.Internal(w)
			}
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, toItemResponse(it))
	}
}

func deleteItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := svc.DeleteItem(r.Context(), chi.URLParam(r, "itemID")); err != nil {
			if errors.Is(err, ErrItemNotFound) {
				httpjson.NotFound(w, "Routine item not found")
				return
			}
			httpjson.Internal(w)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, httpjson.MessageBody{Message: "Routine item deleted successfully"})
	}
}

func toTemplateResponse(t Template) templateResponse {
	return templateResponse{
		ID:        t.ID,
		Period:    t.Period,
		Task:      t.Task,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
	}
}

func toItemResponse(it Item) itemResponse {
	return itemResponse{
		ID:          it.ID,
		TemplateID:  it.TemplateID,
		Period:      it.Period,
		Task:        it.Task,
		Completed:   it.Completed,
		CompletedAt: it.CompletedAt,
		Date:        it.Date,
	}
}
