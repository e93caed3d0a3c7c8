// README: Rate profile store backed by PostgreSQL.
package rates

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"chauffeur/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

const vehicleColumns = `
	id, driver_id, name,
	base_price_per_km,
	night_rate_enabled, night_rate_start, night_rate_end, night_rate_percentage,
	holiday_sunday_percentage,
	minimum_trip_fare, min_trip_distance_km,
	wait_price_per_15_min,
	wait_night_enabled, wait_night_start, wait_night_end, wait_night_percentage`

func (s *Store) GetVehicle(ctx context.Context, id types.ID) (*VehicleRateProfile, error) {
	row := s.db.QueryRow(ctx, `
		SELECT`+vehicleColumns+`
		FROM vehicle_rates
		WHERE id = $1`, string(id),
	)

	var v VehicleRateProfile
	var basePerKm, nightPct, sundayPct, minFare, minDist, waitPer15, waitPct sql.NullFloat64
	var nightEnabled, waitEnabled sql.NullBool
	var nightStart, nightEnd, waitStart, waitEnd sql.NullString

	err := row.Scan(
		&v.ID, &v.DriverID, &v.Name,
		&basePerKm,
		&nightEnabled, &nightStart, &nightEnd, &nightPct,
		&sundayPct,
		&minFare, &minDist,
		&waitPer15,
		&waitEnabled, &waitStart, &waitEnd, &waitPct,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, err
	}

	v.BasePricePerKm = floatPtr(basePerKm)
	v.NightRateEnabled = boolPtr(nightEnabled)
	v.NightRateStart = stringPtr(nightStart)
	v.NightRateEnd = stringPtr(nightEnd)
	v.NightRatePercentage = floatPtr(nightPct)
	v.HolidaySundayPercentage = floatPtr(sundayPct)
	v.MinimumTripFare = floatPtr(minFare)
	v.MinTripDistanceKm = floatPtr(minDist)
	v.WaitPricePer15Min = floatPtr(waitPer15)
	v.WaitNightEnabled = boolPtr(waitEnabled)
	v.WaitNightStart = stringPtr(waitStart)
	v.WaitNightEnd = stringPtr(waitEnd)
	v.WaitNightPercentage = floatPtr(waitPct)
	return &v, nil
}

func (s *Store) UpsertVehicle(ctx context.Context, v *VehicleRateProfile) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO vehicle_rates (`+vehicleColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (id) DO UPDATE SET
			driver_id = EXCLUDED.driver_id,
			name = EXCLUDED.name,
			base_price_per_km = EXCLUDED.base_price_per_km,
			night_rate_enabled = EXCLUDED.night_rate_enabled,
			night_rate_start = EXCLUDED.night_rate_start,
			night_rate_end = EXCLUDED.night_rate_end,
			night_rate_percentage = EXCLUDED.night_rate_percentage,
			holiday_sunday_percentage = EXCLUDED.holiday_sunday_percentage,
			minimum_trip_fare = EXCLUDED.minimum_trip_fare,
			min_trip_distance_km = EXCLUDED.min_trip_distance_km,
			wait_price_per_15_min = EXCLUDED.wait_price_per_15_min,
			wait_night_enabled = EXCLUDED.wait_night_enabled,
			wait_night_start = EXCLUDED.wait_night_start,
			wait_night_end = EXCLUDED.wait_night_end,
			wait_night_percentage = EXCLUDED.wait_night_percentage`,
		string(v.ID), string(v.DriverID), v.Name,
		v.BasePricePerKm,
		v.NightRateEnabled, v.NightRateStart, v.NightRateEnd, v.NightRatePercentage,
		v.HolidaySundayPercentage,
		v.MinimumTripFare, v.MinTripDistanceKm,
		v.WaitPricePer15Min,
		v.WaitNightEnabled, v.WaitNightStart, v.WaitNightEnd, v.WaitNightPercentage,
	)
	return err
}

func (s *Store) GetDriverDefaults(ctx context.Context, driverID types.ID) (*DriverPricingDefaults, error) {
	row := s.db.QueryRow(ctx, `
		SELECT driver_id,
		       base_price_per_km,
		       night_rate_enabled, night_rate_start, night_rate_end, night_rate_percentage,
		       holiday_sunday_percentage,
		       minimum_trip_fare, min_trip_distance_km,
		       wait_price_per_15_min,
		       wait_night_enabled, wait_night_start, wait_night_end, wait_night_percentage
		FROM driver_defaults
		WHERE driver_id = $1`, string(driverID),
	)

	var d DriverPricingDefaults
	var basePerKm, nightPct, sundayPct, minFare, minDist, waitPer15, waitPct sql.NullFloat64
	var nightEnabled, waitEnabled sql.NullBool
	var nightStart, nightEnd, waitStart, waitEnd sql.NullString

	err := row.Scan(
		&d.DriverID,
		&basePerKm,
		&nightEnabled, &nightStart, &nightEnd, &nightPct,
		&sundayPct,
		&minFare, &minDist,
		&waitPer15,
		&waitEnabled, &waitStart, &waitEnd, &waitPct,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDefaultsNotFound
	}
	if err != nil {
		return nil, err
	}

	d.BasePricePerKm = floatPtr(basePerKm)
	d.NightRateEnabled = boolPtr(nightEnabled)
	d.NightRateStart = stringPtr(nightStart)
	d.NightRateEnd = stringPtr(nightEnd)
	d.NightRatePercentage = floatPtr(nightPct)
	d.HolidaySundayPercentage = floatPtr(sundayPct)
	d.MinimumTripFare = floatPtr(minFare)
	d.MinTripDistanceKm = floatPtr(minDist)
	d.WaitPricePer15Min = floatPtr(waitPer15)
	d.WaitNightEnabled = boolPtr(waitEnabled)
	d.WaitNightStart = stringPtr(waitStart)
	d.WaitNightEnd = stringPtr(waitEnd)
	d.WaitNightPercentage = floatPtr(waitPct)
	return &d, nil
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func boolPtr(v sql.NullBool) *bool {
	if !v.Valid {
		return nil
	}
	b := v.Bool
	return &b
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
