package slip

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hinode-pos/hinode-backend/internal/busdate"
)

// Handler exposes slip HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/slips", func(r chi.Router) {
		r.Post("/", h.recordSlip)        // POST   /api/v1/slips
		r.Get("/", h.listByDate)         // GET    /api/v1/slips?date=
		r.Get("/{id}", h.getSlip)        // GET    /api/v1/slips/{id}
		r.Put("/{id}", h.updateSlip)     // PUT    /api/v1/slips/{id}
		r.Delete("/{id}", h.deleteSlip)  // DELETE /api/v1/slips/{id}
	})
}

func (h *Handler) recordSlip(w http.ResponseWriter, r *http.Request) {
	var req CreateSlipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	// Explicit body value wins over the query parameter; the computed
	// default applies only when neither is present.
	if req.BusinessDate == "" {
		req.BusinessDate = r.URL.Query().Get("date")
	}
	s, err := h.service.RecordSlip(r.Context(), req)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, s)
}

func (h *Handler) listByDate(w http.ResponseWriter, r *http.Request) {
	date := busdate.Resolve(r.URL.Query().Get("date"), time.Now())
	slips, err := h.service.ListByDate(r.Context(), date)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if slips == nil {
		slips = []*Slip{}
	}
	respond(w, http.StatusOK, map[string]interface{}{"business_date": date, "slips": slips})
}

func (h *Handler) getSlip(w http.ResponseWriter, r *http.Request) {
	s, err := h.service.GetSlip(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, s)
}

func (h *Handler) updateSlip(w http.ResponseWriter, r *http.Request) {
	var req UpdateSlipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s, err := h.service.UpdateSlip(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, s)
}

func (h *Handler) deleteSlip(w http.ResponseWriter, r *http.Request) {
	date, err := h.service.DeleteSlip(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"business_date": date})
}

func statusFor(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
