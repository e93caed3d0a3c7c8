// README: Waiting-time pricing at a per-15-minute rate with an optional night split.
package quote

import "time"

// WaitPrice is the priced waiting interval. End is always the wait start plus the
// requested minutes, even when nothing is billed.
type WaitPrice struct {
	DayMinutes   int
	NightMinutes int
	DayPrice     float64
	NightPrice   float64
	TotalHT      float64
	End          time.Time
}

// PriceWaiting prices a wait duration. When night rates are disabled for waiting all
// minutes bill at the day rate; otherwise the interval splits against the waiting
// night window and the night minutes carry the surcharge percentage.
func PriceWaiting(start time.Time, minutes int, per15 float64, nightEnabled bool, w Window, nightPct float64) WaitPrice {
	if minutes <= 0 {
		return WaitPrice{End: start}
	}

	p := WaitPrice{End: start.Add(time.Duration(minutes) * time.Minute)}
	perMinute := per15 / 15

	if !nightEnabled {
		p.DayMinutes = minutes
		p.DayPrice = float64(minutes) * perMinute
		p.TotalHT = p.DayPrice
		return p
	}

	p.NightMinutes = NightMinutes(start, minutes, w)
	p.DayMinutes = minutes - p.NightMinutes
	p.DayPrice = float64(p.DayMinutes) * perMinute
	p.NightPrice = float64(p.NightMinutes) * perMinute * (1 + nightPct/100)
	p.TotalHT = p.DayPrice + p.NightPrice
	return p
}
