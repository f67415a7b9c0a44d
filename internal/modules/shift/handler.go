package shift

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hinode-pos/hinode-backend/internal/busdate"
)

// Handler exposes staff-segment HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/shifts", func(r chi.Router) {
		r.Post("/", h.addSegment)          // POST   /api/v1/shifts
		r.Get("/", h.listByDate)           // GET    /api/v1/shifts?date=
		r.Delete("/{id}", h.deleteSegment) // DELETE /api/v1/shifts/{id}
	})
}

func (h *Handler) addSegment(w http.ResponseWriter, r *http.Request) {
	var req CreateSegmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if req.BusinessDate == "" {
		req.BusinessDate = r.URL.Query().Get("date")
	}
	seg, err := h.service.AddSegment(r.Context(), req)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "required") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, seg)
}

func (h *Handler) listByDate(w http.ResponseWriter, r *http.Request) {
	date := busdate.Resolve(r.URL.Query().Get("date"), time.Now())
	segments, err := h.service.ListByDate(r.Context(), date)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if segments == nil {
		segments = []*Segment{}
	}
	respond(w, http.StatusOK, map[string]interface{}{"business_date": date, "segments": segments})
}

func (h *Handler) deleteSegment(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSegment(r.Context(), chi.URLParam(r, "id")); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
