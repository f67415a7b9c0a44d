package food

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hinode-pos/hinode-backend/internal/busdate"
)

// Handler exposes food-count HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/food", func(r chi.Router) {
		r.Get("/", h.itemsForDate) // GET /api/v1/food?date=
		r.Put("/", h.saveCounts)   // PUT /api/v1/food?date=
	})
}

func (h *Handler) itemsForDate(w http.ResponseWriter, r *http.Request) {
	date := busdate.Resolve(r.URL.Query().Get("date"), time.Now())
	items, err := h.service.ItemsForDate(r.Context(), date)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"business_date": date, "items": items})
}

func (h *Handler) saveCounts(w http.ResponseWriter, r *http.Request) {
	var req SaveCountsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if req.BusinessDate == "" {
		req.BusinessDate = r.URL.Query().Get("date")
	}
	date, err := h.service.SaveCounts(r.Context(), req)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	items, err := h.service.ItemsForDate(r.Context(), date)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"business_date": date, "items": items})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
