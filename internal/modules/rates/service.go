// README: Rates service; reads profiles through the cache, writes through the store.
package rates

import (
	"context"
	"errors"

	"chauffeur/internal/types"
)

var (
	ErrVehicleNotFound  = errors.New("vehicle rate profile not found")
	ErrDefaultsNotFound = errors.New("driver pricing defaults not found")
	ErrBadProfile       = errors.New("invalid rate profile")
)

type Service struct {
	store *Store
	cache *Cache
}

// NewService creates the rates service. The cache may be nil, in which case every
// read goes to the store.
func NewService(store *Store, cache *Cache) *Service {
	return &Service{store: store, cache: cache}
}

func (s *Service) Vehicle(ctx context.Context, id types.ID) (*VehicleRateProfile, error) {
	if id == "" {
		return nil, ErrVehicleNotFound
	}
	if s.cache != nil {
		if v, ok := s.cache.GetVehicle(ctx, id); ok {
			return v, nil
		}
	}
	v, err := s.store.GetVehicle(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetVehicle(ctx, v)
	}
	return v, nil
}

func (s *Service) SaveVehicle(ctx context.Context, v *VehicleRateProfile) error {
	if v == nil || v.ID == "" {
		return ErrBadProfile
	}
	if err := s.store.UpsertVehicle(ctx, v); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateVehicle(ctx, v.ID)
	}
	return nil
}

// DriverDefaults returns the driver-wide defaults, or nil when the driver has none.
// Missing defaults are not an error: resolution falls through to the fallbacks.
func (s *Service) DriverDefaults(ctx context.Context, driverID types.ID) (*DriverPricingDefaults, error) {
	if driverID == "" {
		return nil, nil
	}
	if s.cache != nil {
		if d, ok := s.cache.GetDriverDefaults(ctx, driverID); ok {
			return d, nil
		}
	}
	d, err := s.store.GetDriverDefaults(ctx, driverID)
	if errors.Is(err, ErrDefaultsNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetDriverDefaults(ctx, d)
	}
	return d, nil
}
