// README: Quote service; resolves profiles, runs the engine, persists final quotes.
package quote

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"chauffeur/internal/modules/rates"
	"chauffeur/internal/types"
)

var (
	ErrNotComputable = errors.New("quote not computable")
	ErrNotFound      = errors.New("quote not found")
	ErrBadRequest    = errors.New("bad request")
)

// RatesSource is the slice of the rates service the quote service needs.
type RatesSource interface {
	Vehicle(ctx context.Context, id types.ID) (*rates.VehicleRateProfile, error)
	DriverDefaults(ctx context.Context, driverID types.ID) (*rates.DriverPricingDefaults, error)
}

type Service struct {
	rates RatesSource
	store *Store
	vat   VATRates
}

// NewService creates the quote service. The store may be nil for preview-only use.
func NewService(ratesSource RatesSource, store *Store, vat VATRates) *Service {
	return &Service{rates: ratesSource, store: store, vat: vat}
}

// QuoteCommand describes one quoting request with the trip legs already measured.
type QuoteCommand struct {
	VehicleID   types.ID
	DriverID    types.ID
	Origin      string
	Destination string
	Trip        TripInput
}

// Preview computes a quote without persisting anything. A nil engine result maps to
// ErrNotComputable, which callers treat as "insufficient data", not a failure.
func (s *Service) Preview(ctx context.Context, cmd QuoteCommand) (*Quote, error) {
	if cmd.VehicleID == "" {
		return nil, ErrBadRequest
	}
	vehicle, err := s.rates.Vehicle(ctx, cmd.VehicleID)
	if err != nil {
		return nil, err
	}
	defaults, err := s.rates.DriverDefaults(ctx, cmd.DriverID)
	if err != nil {
		return nil, err
	}
	q := Compute(cmd.Trip, vehicle, defaults, s.vat)
	if q == nil {
		return nil, ErrNotComputable
	}
	return q, nil
}

// Create computes a quote and stores the denormalized record. The stored quote is
// exactly the previewed one; the presentation layer reads it back and never
// recomputes, so preview and stored pricing cannot diverge.
func (s *Service) Create(ctx context.Context, cmd QuoteCommand) (*Record, error) {
	q, err := s.Preview(ctx, cmd)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		ID:          newID(),
		VehicleID:   cmd.VehicleID,
		DriverID:    cmd.DriverID,
		Origin:      cmd.Origin,
		Destination: cmd.Destination,
		PickupAt:    cmd.Trip.Outbound.Start,
		RoundTrip:   cmd.Trip.Return != nil,
		CreatedAt:   time.Now().UTC(),
		Quote:       *q,
	}
	if cmd.Trip.Wait != nil {
		rec.WaitingMinutes = cmd.Trip.Wait.Minutes
	}
	if err := s.store.Insert(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Record, error) {
	if id == "" {
		return nil, ErrBadRequest
	}
	return s.store.Get(ctx, id)
}

func newID() types.ID {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return types.ID(hex.EncodeToString(b))
}
