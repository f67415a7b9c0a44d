package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hinode-pos/hinode-backend/internal/busdate"
)

// Handler exposes reporting HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/daily", h.daily)              // GET /api/v1/reports/daily?date=
		r.Get("/daily/export", h.exportCSV)   // GET /api/v1/reports/daily/export?date=
		r.Get("/dates", h.recentDates)        // GET /api/v1/reports/dates?limit=
		r.Get("/series", h.series)            // GET /api/v1/reports/series?limit=
		r.Get("/food-weekly", h.foodWindow)   // GET /api/v1/reports/food-weekly?window=
	})
}

func (h *Handler) daily(w http.ResponseWriter, r *http.Request) {
	date := busdate.Resolve(r.URL.Query().Get("date"), time.Now())
	rep, err := h.service.Daily(r.Context(), date)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, rep)
}

func (h *Handler) recentDates(w http.ResponseWriter, r *http.Request) {
	dates, err := h.service.RecentDates(r.Context(), intParam(r, "limit"))
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"dates": dates})
}

func (h *Handler) series(w http.ResponseWriter, r *http.Request) {
	points, err := h.service.DailySeries(r.Context(), intParam(r, "limit"))
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"series": points})
}

func (h *Handler) foodWindow(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.FoodWindow(r.Context(), intParam(r, "window"))
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	date := busdate.Resolve(r.URL.Query().Get("date"), time.Now())
	rep, err := h.service.Daily(r.Context(), date)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "report-"+date+".csv"))

	cw := csv.NewWriter(w)
	defer cw.Flush()

	cw.Write([]string{"time", "table", "people", "amount", "payment_method"})
	for _, line := range rep.Slips {
		cw.Write([]string{
			line.Time,
			line.TableName,
			strconv.Itoa(line.People),
			strconv.Itoa(line.Amount),
			string(line.PaymentMethod),
		})
	}
	cw.Write([]string{})
	cw.Write([]string{"total_sales", strconv.Itoa(rep.Summary.TotalSales)})
	cw.Write([]string{"total_customers", strconv.Itoa(rep.Summary.TotalCustomers)})
	cw.Write([]string{"total_tables", strconv.Itoa(rep.Summary.TotalTables)})
	cw.Write([]string{"avg_per_customer", strconv.Itoa(rep.Summary.AvgPerCustomer)})
}

func intParam(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return n
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
