// README: Vehicle rate profiles and driver-wide pricing defaults.
package rates

import "chauffeur/internal/types"

// VehicleRateProfile carries the per-vehicle tariff overrides. Every tariff field is
// a pointer: nil means "not set for this vehicle", and the value falls through to the
// driver defaults, then to the built-in fallbacks (see Resolve).
type VehicleRateProfile struct {
	ID       types.ID `json:"id"`
	DriverID types.ID `json:"driver_id"`
	Name     string   `json:"name"`

	BasePricePerKm          *float64 `json:"base_price_per_km"`
	NightRateEnabled        *bool    `json:"night_rate_enabled"`
	NightRateStart          *string  `json:"night_rate_start"` // "HH:MM"
	NightRateEnd            *string  `json:"night_rate_end"`   // "HH:MM"
	NightRatePercentage     *float64 `json:"night_rate_percentage"`
	HolidaySundayPercentage *float64 `json:"holiday_sunday_percentage"`
	MinimumTripFare         *float64 `json:"minimum_trip_fare"`
	MinTripDistanceKm       *float64 `json:"min_trip_distance_km"`
	WaitPricePer15Min       *float64 `json:"wait_price_per_15_min"`
	WaitNightEnabled        *bool    `json:"wait_night_enabled"`
	WaitNightStart          *string  `json:"wait_night_start"` // "HH:MM"
	WaitNightEnd            *string  `json:"wait_night_end"`   // "HH:MM"
	WaitNightPercentage     *float64 `json:"wait_night_percentage"`
}

// DriverPricingDefaults has the same tariff shape as VehicleRateProfile but applies
// driver-wide, filling any field the selected vehicle leaves unset.
type DriverPricingDefaults struct {
	DriverID types.ID `json:"driver_id"`

	BasePricePerKm          *float64 `json:"base_price_per_km"`
	NightRateEnabled        *bool    `json:"night_rate_enabled"`
	NightRateStart          *string  `json:"night_rate_start"`
	NightRateEnd            *string  `json:"night_rate_end"`
	NightRatePercentage     *float64 `json:"night_rate_percentage"`
	HolidaySundayPercentage *float64 `json:"holiday_sunday_percentage"`
	MinimumTripFare         *float64 `json:"minimum_trip_fare"`
	MinTripDistanceKm       *float64 `json:"min_trip_distance_km"`
	WaitPricePer15Min       *float64 `json:"wait_price_per_15_min"`
	WaitNightEnabled        *bool    `json:"wait_night_enabled"`
	WaitNightStart          *string  `json:"wait_night_start"`
	WaitNightEnd            *string  `json:"wait_night_end"`
	WaitNightPercentage     *float64 `json:"wait_night_percentage"`
}

// Effective is the fully resolved tariff the engine prices with. No field is
// optional once resolution has run.
type Effective struct {
	BasePricePerKm          float64
	NightRateEnabled        bool
	NightRateStart          string
	NightRateEnd            string
	NightRatePercentage     float64
	HolidaySundayPercentage float64
	MinimumTripFare         float64
	MinTripDistanceKm       float64
	WaitPricePer15Min       float64
	WaitNightEnabled        bool
	WaitNightStart          string
	WaitNightEnd            string
	WaitNightPercentage     float64
}
