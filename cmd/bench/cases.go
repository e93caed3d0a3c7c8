// README: Smoke-check cases: health, rates round-trip, preview invariants, persistence, Redis.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	db    *pgxpool.Pool
	redis *redis.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.DSN != "" {
		if db, err := pgxpool.New(ctx, r.cfg.DSN); err == nil {
			r.db = db
		}
	}
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
	}

	if r.cfg.ApplyMigration && r.db != nil {
		if err := r.applyMigration(ctx); err != nil {
			fmt.Printf("migration failed: %v\n", err)
		}
	}

	cases := []TestCase{
		{Name: "health", Run: checkHealth},
		{Name: "redis ping", Run: checkRedis},
		{Name: "vehicle rates round-trip", Run: checkRatesRoundTrip},
		{Name: "preview invariants", Run: checkPreviewInvariants},
		{Name: "quote persisted", Run: checkQuotePersisted},
		{Name: "parallel previews agree", Run: checkParallelPreviews},
	}

	var results []Result
	for _, tc := range cases {
		start := time.Now()
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		res.Latency = time.Since(start)
		fmt.Printf("%-28s %-5s %8s  %s\n", res.Name, res.Status, res.Latency.Round(time.Millisecond), res.Note)
		results = append(results, res)
	}
	return results
}

func (r *Runner) applyMigration(ctx context.Context) error {
	sqlBytes, err := os.ReadFile(r.cfg.MigrationPath)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, string(sqlBytes))
	return err
}

func checkHealth(ctx context.Context, r *Runner) Result {
	resp, err := r.get(ctx, "/health")
	if err != nil {
		return fail(err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fail(fmt.Sprintf("status %d", resp.StatusCode))
	}
	return pass("")
}

func checkRedis(ctx context.Context, r *Runner) Result {
	if r.redis == nil {
		return skip("no redis address")
	}
	if err := r.redis.Ping(ctx).Err(); err != nil {
		return fail(err.Error())
	}
	return pass("")
}

// checkRatesRoundTrip writes a vehicle profile and reads it back unchanged.
func checkRatesRoundTrip(ctx context.Context, r *Runner) Result {
	profile := map[string]any{
		"driver_id":             "bench-driver",
		"name":                  "Bench Berline",
		"base_price_per_km":     2.0,
		"night_rate_enabled":    true,
		"night_rate_start":      "20:00",
		"night_rate_end":        "06:00",
		"night_rate_percentage": 50.0,
		"wait_price_per_15_min": 15.0,
	}
	resp, err := r.putJSON(ctx, "/api/vehicles/"+r.cfg.VehicleID+"/rates", profile)
	if err != nil {
		return fail(err.Error())
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fail(fmt.Sprintf("put status %d", resp.StatusCode))
	}

	resp, err = r.get(ctx, "/api/vehicles/"+r.cfg.VehicleID+"/rates")
	if err != nil {
		return fail(err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fail(fmt.Sprintf("get status %d", resp.StatusCode))
	}
	var got struct {
		BasePricePerKm *float64 `json:"base_price_per_km"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		return fail(err.Error())
	}
	if got.BasePricePerKm == nil || *got.BasePricePerKm != 2.0 {
		return fail("base_price_per_km did not round-trip")
	}
	return pass("")
}

type previewResponse struct {
	DayKm              float64 `json:"day_km"`
	NightKm            float64 `json:"night_km"`
	TotalKm            float64 `json:"total_km"`
	OneWayPriceHT      float64 `json:"one_way_price_ht"`
	ReturnPriceHT      float64 `json:"return_price_ht"`
	WaitingTimePriceHT float64 `json:"waiting_time_price_ht"`
	TotalPriceHT       float64 `json:"total_price_ht"`
	TotalVAT           float64 `json:"total_vat"`
	TotalPrice         float64 `json:"total_price"`
}

func (r *Runner) preview(ctx context.Context) (*previewResponse, error) {
	body := map[string]any{
		"vehicle_id":      r.cfg.VehicleID,
		"driver_id":       "bench-driver",
		"origin":          "Gare de Lyon, Paris",
		"destination":     "Aéroport CDG",
		"pickup_time":     "2026-03-08T22:00:00+01:00",
		"round_trip":      true,
		"waiting_minutes": 30,
	}
	resp, err := r.postJSON(ctx, "/api/quotes/preview", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, raw)
	}
	var q previewResponse
	if err := json.NewDecoder(resp.Body).Decode(&q); err != nil {
		return nil, err
	}
	return &q, nil
}

func checkPreviewInvariants(ctx context.Context, r *Runner) Result {
	q, err := r.preview(ctx)
	if err != nil {
		return fail(err.Error())
	}
	if math.Abs(q.DayKm+q.NightKm-q.TotalKm) > 0.01 {
		return fail("day_km + night_km != total_km")
	}
	if math.Abs(q.OneWayPriceHT+q.ReturnPriceHT+q.WaitingTimePriceHT-q.TotalPriceHT) > 0.01 {
		return fail("HT categories do not sum to total_price_ht")
	}
	if math.Abs(q.TotalPriceHT+q.TotalVAT-q.TotalPrice) > 0.01 {
		return fail("total_price != total_price_ht + total_vat")
	}
	return pass(fmt.Sprintf("total %.2f", q.TotalPrice))
}

// checkQuotePersisted creates a quote and verifies the stored row matches.
func checkQuotePersisted(ctx context.Context, r *Runner) Result {
	if r.db == nil {
		return skip("no database")
	}
	body := map[string]any{
		"vehicle_id":  r.cfg.VehicleID,
		"driver_id":   "bench-driver",
		"origin":      "Gare de Lyon, Paris",
		"destination": "Aéroport CDG",
		"pickup_time": "2026-03-08T22:00:00+01:00",
	}
	resp, err := r.postJSON(ctx, "/api/quotes", body)
	if err != nil {
		return fail(err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return fail(fmt.Sprintf("status %d: %s", resp.StatusCode, raw))
	}
	var created struct {
		QuoteID string `json:"quote_id"`
		Quote   struct {
			TotalPrice float64 `json:"total_price"`
		} `json:"quote"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return fail(err.Error())
	}

	var storedTotal float64
	err = r.db.QueryRow(ctx, `SELECT total_price FROM quotes WHERE id = $1`, created.QuoteID).Scan(&storedTotal)
	if err != nil {
		return fail(fmt.Sprintf("stored row: %v", err))
	}
	if math.Abs(storedTotal-created.Quote.TotalPrice) > 0.001 {
		return fail(fmt.Sprintf("stored %.2f != returned %.2f", storedTotal, created.Quote.TotalPrice))
	}
	return pass(created.QuoteID)
}

// checkParallelPreviews sends the same request concurrently; every response must be
// identical (the engine is deterministic and stateless).
func checkParallelPreviews(ctx context.Context, r *Runner) Result {
	n := r.cfg.Concurrency
	totals := make([]float64, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			q, err := r.preview(ctx)
			if err != nil {
				errs[i] = err
				return
			}
			totals[i] = q.TotalPrice
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return fail(err.Error())
		}
	}
	for _, total := range totals {
		if total != totals[0] {
			return fail("previews diverged across concurrent calls")
		}
	}
	return pass(fmt.Sprintf("%d identical previews", n))
}

func (r *Runner) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return r.httpc.Do(req)
}

func (r *Runner) postJSON(ctx context.Context, path string, body any) (*http.Response, error) {
	return r.sendJSON(ctx, http.MethodPost, path, body)
}

func (r *Runner) putJSON(ctx context.Context, path string, body any) (*http.Response, error) {
	return r.sendJSON(ctx, http.MethodPut, path, body)
}

func (r *Runner) sendJSON(ctx context.Context, method, path string, body any) (*http.Response, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, r.cfg.BaseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return r.httpc.Do(req)
}

func pass(note string) Result { return Result{Status: "PASS", Note: note} }
func fail(note string) Result { return Result{Status: "FAIL", Note: note} }
func skip(note string) Result { return Result{Status: "SKIP", Note: note} }
