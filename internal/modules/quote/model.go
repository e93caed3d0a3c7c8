// README: Trip inputs and the itemized quote record.
package quote

import "time"

// TripLeg is one directional portion of a trip. Start is the wall-clock instant the
// leg begins; the engine never reads the current time itself.
type TripLeg struct {
	Start           time.Time
	DistanceKm      float64
	DurationMinutes int
}

// End is the instant the leg finishes.
func (l TripLeg) End() time.Time {
	return l.Start.Add(time.Duration(l.DurationMinutes) * time.Minute)
}

// WaitInterval is a requested waiting period between the outbound and return legs.
type WaitInterval struct {
	Start   time.Time
	Minutes int
}

// TripInput is everything the engine needs about the trip itself. Return and Wait
// are optional; a return leg's Start is the outbound end plus the wait duration.
type TripInput struct {
	Outbound TripLeg
	Return   *TripLeg
	Wait     *WaitInterval
}

// Quote is the fully itemized, tax-inclusive result. It is immutable: every input
// change recomputes a fresh value. JSON tags match the persisted column names so a
// stored row round-trips losslessly (HT = pre-tax, no suffix = tax-inclusive).
type Quote struct {
	BasePrice float64 `json:"base_price"`

	DayKm   float64 `json:"day_km"`
	NightKm float64 `json:"night_km"`
	TotalKm float64 `json:"total_km"`

	ReturnDayKm   float64 `json:"return_day_km"`
	ReturnNightKm float64 `json:"return_night_km"`
	ReturnTotalKm float64 `json:"return_total_km"`

	DayPrice       float64 `json:"day_price"`
	NightPrice     float64 `json:"night_price"`
	NightSurcharge float64 `json:"night_surcharge"`

	ReturnDayPrice       float64 `json:"return_day_price"`
	ReturnNightPrice     float64 `json:"return_night_price"`
	ReturnNightSurcharge float64 `json:"return_night_surcharge"`

	IsNightRate       bool `json:"is_night_rate"`
	IsReturnNightRate bool `json:"is_return_night_rate"`

	IsSunday        bool    `json:"is_sunday"`
	SundaySurcharge float64 `json:"sunday_surcharge"`

	WaitTimeDay    int     `json:"wait_time_day"`
	WaitTimeNight  int     `json:"wait_time_night"`
	WaitPriceDay   float64 `json:"wait_price_day"`
	WaitPriceNight float64 `json:"wait_price_night"`

	OneWayPriceHT      float64 `json:"one_way_price_ht"`
	OneWayPrice        float64 `json:"one_way_price"`
	ReturnPriceHT      float64 `json:"return_price_ht"`
	ReturnPrice        float64 `json:"return_price"`
	WaitingTimePriceHT float64 `json:"waiting_time_price_ht"`
	WaitingTimePrice   float64 `json:"waiting_time_price"`

	TotalPriceHT float64 `json:"total_price_ht"`
	TotalVAT     float64 `json:"total_vat"`
	TotalPrice   float64 `json:"total_price"`

	HasMinDistanceWarning bool    `json:"has_min_distance_warning"`
	MinDistance           float64 `json:"min_distance"`

	NightStartDisplay string `json:"night_start_display"`
	NightEndDisplay   string `json:"night_end_display"`
}
