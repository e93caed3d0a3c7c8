// README: Quote store backed by PostgreSQL; one denormalized row per final quote.
package quote

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"chauffeur/internal/types"
)

// Record is a persisted quote with its trip metadata. The pricing columns mirror the
// Quote fields one to one and round-trip losslessly.
type Record struct {
	ID             types.ID
	VehicleID      types.ID
	DriverID       types.ID
	Origin         string
	Destination    string
	PickupAt       time.Time
	RoundTrip      bool
	WaitingMinutes int
	CreatedAt      time.Time
	Quote          Quote
}

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, r *Record) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO quotes (
			id, vehicle_id, driver_id, origin, destination,
			pickup_at, round_trip, waiting_minutes, created_at,
			base_price,
			day_km, night_km, total_km,
			return_day_km, return_night_km, return_total_km,
			day_price, night_price, night_surcharge,
			return_day_price, return_night_price, return_night_surcharge,
			is_night_rate, is_return_night_rate,
			is_sunday, sunday_surcharge,
			wait_time_day, wait_time_night, wait_price_day, wait_price_night,
			one_way_price_ht, one_way_price,
			return_price_ht, return_price,
			waiting_time_price_ht, waiting_time_price,
			total_price_ht, total_vat, total_price,
			has_min_distance_warning, min_distance,
			night_start_display, night_end_display
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10,
			$11, $12, $13,
			$14, $15, $16,
			$17, $18, $19,
			$20, $21, $22,
			$23, $24,
			$25, $26,
			$27, $28, $29, $30,
			$31, $32,
			$33, $34,
			$35, $36,
			$37, $38, $39,
			$40, $41,
			$42, $43
		)`,
		string(r.ID), string(r.VehicleID), string(r.DriverID), r.Origin, r.Destination,
		r.PickupAt, r.RoundTrip, r.WaitingMinutes, r.CreatedAt,
		r.Quote.BasePrice,
		r.Quote.DayKm, r.Quote.NightKm, r.Quote.TotalKm,
		r.Quote.ReturnDayKm, r.Quote.ReturnNightKm, r.Quote.ReturnTotalKm,
		r.Quote.DayPrice, r.Quote.NightPrice, r.Quote.NightSurcharge,
		r.Quote.ReturnDayPrice, r.Quote.ReturnNightPrice, r.Quote.ReturnNightSurcharge,
		r.Quote.IsNightRate, r.Quote.IsReturnNightRate,
		r.Quote.IsSunday, r.Quote.SundaySurcharge,
		r.Quote.WaitTimeDay, r.Quote.WaitTimeNight, r.Quote.WaitPriceDay, r.Quote.WaitPriceNight,
		r.Quote.OneWayPriceHT, r.Quote.OneWayPrice,
		r.Quote.ReturnPriceHT, r.Quote.ReturnPrice,
		r.Quote.WaitingTimePriceHT, r.Quote.WaitingTimePrice,
		r.Quote.TotalPriceHT, r.Quote.TotalVAT, r.Quote.TotalPrice,
		r.Quote.HasMinDistanceWarning, r.Quote.MinDistance,
		r.Quote.NightStartDisplay, r.Quote.NightEndDisplay,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Record, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, vehicle_id, driver_id, origin, destination,
		       pickup_at, round_trip, waiting_minutes, created_at,
		       base_price,
		       day_km, night_km, total_km,
		       return_day_km, return_night_km, return_total_km,
		       day_price, night_price, night_surcharge,
		       return_day_price, return_night_price, return_night_surcharge,
		       is_night_rate, is_return_night_rate,
		       is_sunday, sunday_surcharge,
		       wait_time_day, wait_time_night, wait_price_day, wait_price_night,
		       one_way_price_ht, one_way_price,
		       return_price_ht, return_price,
		       waiting_time_price_ht, waiting_time_price,
		       total_price_ht, total_vat, total_price,
		       has_min_distance_warning, min_distance,
		       night_start_display, night_end_display
		FROM quotes
		WHERE id = $1`, string(id),
	)

	var r Record
	err := row.Scan(
		&r.ID, &r.VehicleID, &r.DriverID, &r.Origin, &r.Destination,
		&r.PickupAt, &r.RoundTrip, &r.WaitingMinutes, &r.CreatedAt,
		&r.Quote.BasePrice,
		&r.Quote.DayKm, &r.Quote.NightKm, &r.Quote.TotalKm,
		&r.Quote.ReturnDayKm, &r.Quote.ReturnNightKm, &r.Quote.ReturnTotalKm,
		&r.Quote.DayPrice, &r.Quote.NightPrice, &r.Quote.NightSurcharge,
		&r.Quote.ReturnDayPrice, &r.Quote.ReturnNightPrice, &r.Quote.ReturnNightSurcharge,
		&r.Quote.IsNightRate, &r.Quote.IsReturnNightRate,
		&r.Quote.IsSunday, &r.Quote.SundaySurcharge,
		&r.Quote.WaitTimeDay, &r.Quote.WaitTimeNight, &r.Quote.WaitPriceDay, &r.Quote.WaitPriceNight,
		&r.Quote.OneWayPriceHT, &r.Quote.OneWayPrice,
		&r.Quote.ReturnPriceHT, &r.Quote.ReturnPrice,
		&r.Quote.WaitingTimePriceHT, &r.Quote.WaitingTimePrice,
		&r.Quote.TotalPriceHT, &r.Quote.TotalVAT, &r.Quote.TotalPrice,
		&r.Quote.HasMinDistanceWarning, &r.Quote.MinDistance,
		&r.Quote.NightStartDisplay, &r.Quote.NightEndDisplay,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}
