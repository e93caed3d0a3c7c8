// README: Per-km pricing of a day/night distance split.
package quote

// SegmentPrice is the pre-tax price of one leg, broken into day and night parts.
type SegmentPrice struct {
	DayPrice       float64
	NightBase      float64
	NightSurcharge float64
	NightPrice     float64
	TotalHT        float64
	IsNightRate    bool
}

// PriceSegment prices a day/night km split at the base per-km rate, adding the night
// surcharge percentage on the night portion when the night rate is enabled.
func PriceSegment(dayKm, nightKm, perKm float64, nightEnabled bool, nightPct float64) SegmentPrice {
	p := SegmentPrice{
		DayPrice:  dayKm * perKm,
		NightBase: nightKm * perKm,
	}
	if nightEnabled && nightKm > 0 {
		p.NightSurcharge = p.NightBase * nightPct / 100
		p.IsNightRate = true
	}
	p.NightPrice = p.NightBase + p.NightSurcharge
	p.TotalHT = p.DayPrice + p.NightPrice
	return p
}
