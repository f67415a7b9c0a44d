package slip

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func setupTestServer(t *testing.T) (*httptest.Server, *fakeRepo) {
	t.Helper()

	repo := newFakeRepo()
	svc := &service{repo: repo, now: fixedClock(t, "2025-06-10 19:00")}

	router := chi.NewRouter()
	router.Route("/api/v1", func(r chi.Router) {
		NewHandler(svc).RegisterRoutes(r)
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, repo
}

func TestRecordSlipEndpoint(t *testing.T) {
	server, _ := setupTestServer(t)

	body, _ := json.Marshal(CreateSlipRequest{
		TableName: "A1", People: "4", Amount: "12800", PaymentMethod: "credit",
	})
	resp, err := http.Post(server.URL+"/api/v1/slips", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /slips failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}

	var created Slip
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.Amount != 12800 || created.People != 4 {
		t.Errorf("created slip = %+v, want amount 12800 people 4", created)
	}
	if created.BusinessDate != "2025-06-10" {
		t.Errorf("business date = %q, want 2025-06-10", created.BusinessDate)
	}
}

func TestRecordSlipEndpointRejectsUnknownMethod(t *testing.T) {
	server, _ := setupTestServer(t)

	body, _ := json.Marshal(CreateSlipRequest{People: "2", Amount: "500", PaymentMethod: "iou"})
	resp, err := http.Post(server.URL+"/api/v1/slips", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /slips failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func TestGetSlipEndpointNotFound(t *testing.T) {
	server, _ := setupTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/slips/00000000-0000-0000-0000-000000000000")
	if err != nil {
		t.Fatalf("GET /slips/{id} failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func TestListSlipsEndpointFiltersByDate(t *testing.T) {
	server, _ := setupTestServer(t)

	body, _ := json.Marshal(CreateSlipRequest{People: "2", Amount: "500", BusinessDate: "2020-01-01"})
	resp, err := http.Post(server.URL+"/api/v1/slips", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /slips failed: %v", err)
	}
	resp.Body.Close()

	resp, err = http.Get(server.URL + "/api/v1/slips?date=2020-01-01")
	if err != nil {
		t.Fatalf("GET /slips failed: %v", err)
	}
	defer resp.Body.Close()

	var listed struct {
		BusinessDate string  `json:"business_date"`
		Slips        []*Slip `json:"slips"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if listed.BusinessDate != "2020-01-01" || len(listed.Slips) != 1 {
		t.Errorf("listed %d slips for %q, want 1 for 2020-01-01", len(listed.Slips), listed.BusinessDate)
	}
}
