// README: Handler tests with stubbed route and rate collaborators.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"chauffeur/internal/http/handlers"
	"chauffeur/internal/modules/quote"
	"chauffeur/internal/modules/rates"
	"chauffeur/internal/service"
	"chauffeur/internal/types"
)

// stubRoutes is a test double for the maps route service.
type stubRoutes struct {
	distanceKm  float64
	durationMin int
}

func (s *stubRoutes) GetTravelEstimate(_ context.Context, _, _ string) (float64, int, error) {
	return s.distanceKm, s.durationMin, nil
}

// stubRates serves one in-memory vehicle profile.
type stubRates struct {
	vehicle *rates.VehicleRateProfile
}

func (s *stubRates) Vehicle(_ context.Context, id types.ID) (*rates.VehicleRateProfile, error) {
	if s.vehicle == nil || s.vehicle.ID != id {
		return nil, rates.ErrVehicleNotFound
	}
	return s.vehicle, nil
}

func (s *stubRates) DriverDefaults(_ context.Context, _ types.ID) (*rates.DriverPricingDefaults, error) {
	return nil, nil
}

// stubReader serves stored quotes from a map.
type stubReader struct {
	records map[types.ID]*quote.Record
}

func (s *stubReader) Get(_ context.Context, id types.ID) (*quote.Record, error) {
	rec, ok := s.records[id]
	if !ok {
		return nil, quote.ErrNotFound
	}
	return rec, nil
}

func floatp(v float64) *float64 { return &v }
func boolp(v bool) *bool        { return &v }

func testVehicle() *rates.VehicleRateProfile {
	return &rates.VehicleRateProfile{
		ID:               "veh1",
		DriverID:         "drv1",
		Name:             "Berline",
		BasePricePerKm:   floatp(2.0),
		NightRateEnabled: boolp(false),
	}
}

func buildTestRouter(t *testing.T, routes *stubRoutes, reader *stubReader) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	quoteSvc := quote.NewService(&stubRates{vehicle: testVehicle()}, nil, quote.VATRates{RideRate: 10, WaitingRate: 20})
	planner, err := service.NewPlanner(routes, quoteSvc, "Europe/Paris")
	if err != nil {
		t.Fatalf("planner: %v", err)
	}

	r := gin.New()
	h := handlers.NewQuoteHandler(planner, reader)
	r.POST("/api/quotes/preview", h.Preview)
	r.GET("/api/quotes/:id", h.Get)
	return r
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func previewBody(vehicleID string) map[string]any {
	return map[string]any{
		"vehicle_id":  vehicleID,
		"driver_id":   "drv1",
		"origin":      "12 rue de la Paix, Paris",
		"destination": "Aéroport CDG",
		"pickup_time": "2026-03-06T10:00:00+01:00",
	}
}

func TestPreview_OK(t *testing.T) {
	r := buildTestRouter(t, &stubRoutes{distanceKm: 30, durationMin: 40}, &stubReader{})

	w := doRequest(r, http.MethodPost, "/api/quotes/preview", previewBody("veh1"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var q quote.Quote
	if err := json.Unmarshal(w.Body.Bytes(), &q); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if q.OneWayPriceHT != 60 {
		t.Errorf("OneWayPriceHT = %v, want 60 (30 km at 2.00)", q.OneWayPriceHT)
	}
	if got := q.TotalPriceHT + q.TotalVAT; got != q.TotalPrice {
		t.Errorf("TotalPrice = %v, want TotalPriceHT+TotalVAT = %v", q.TotalPrice, got)
	}
}

func TestPreview_UnknownVehicle(t *testing.T) {
	r := buildTestRouter(t, &stubRoutes{distanceKm: 30, durationMin: 40}, &stubReader{})

	w := doRequest(r, http.MethodPost, "/api/quotes/preview", previewBody("nope"))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestPreview_BadPickupTime(t *testing.T) {
	r := buildTestRouter(t, &stubRoutes{distanceKm: 30, durationMin: 40}, &stubReader{})

	body := previewBody("veh1")
	body["pickup_time"] = "tomorrow at ten"
	w := doRequest(r, http.MethodPost, "/api/quotes/preview", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestPreview_NotComputable(t *testing.T) {
	// A zero-distance route makes the engine decline with "not computable".
	r := buildTestRouter(t, &stubRoutes{distanceKm: 0, durationMin: 0}, &stubReader{})

	w := doRequest(r, http.MethodPost, "/api/quotes/preview", previewBody("veh1"))
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
}

func TestGet_NotFound(t *testing.T) {
	r := buildTestRouter(t, &stubRoutes{distanceKm: 30, durationMin: 40}, &stubReader{records: map[types.ID]*quote.Record{}})

	w := doRequest(r, http.MethodGet, "/api/quotes/deadbeef", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestGet_OK(t *testing.T) {
	rec := &quote.Record{ID: "q1", VehicleID: "veh1", Origin: "A", Destination: "B"}
	rec.Quote.TotalPrice = 66
	r := buildTestRouter(t, &stubRoutes{}, &stubReader{records: map[types.ID]*quote.Record{"q1": rec}})

	w := doRequest(r, http.MethodGet, "/api/quotes/q1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		QuoteID string      `json:"quote_id"`
		Quote   quote.Quote `json:"quote"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.QuoteID != "q1" || resp.Quote.TotalPrice != 66 {
		t.Errorf("unexpected response: %s", w.Body.String())
	}
}
