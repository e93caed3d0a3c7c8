// README: Quote assembler; sequences the calculators for both legs, waiting time and VAT.
package quote

import (
	"chauffeur/internal/modules/rates"
	"chauffeur/internal/types"
)

// Compute turns a trip description and the layered tariff into a fully itemized
// quote. It is a pure function: no clock reads, no I/O, identical inputs produce
// identical output, and it is safe to call concurrently.
//
// It returns nil, never a partial result, when the quote is not yet computable:
// no vehicle selected, outbound distance not positive, or an unparseable night
// window in the resolved tariff. Callers treat nil as "insufficient data".
func Compute(trip TripInput, vehicle *rates.VehicleRateProfile, defaults *rates.DriverPricingDefaults, vat VATRates) *Quote {
	if vehicle == nil || trip.Outbound.DistanceKm <= 0 {
		return nil
	}

	eff := rates.Resolve(vehicle, defaults)

	rideWindow, err := ParseWindow(eff.NightRateStart, eff.NightRateEnd)
	if err != nil {
		return nil
	}
	waitWindow, err := ParseWindow(eff.WaitNightStart, eff.WaitNightEnd)
	if err != nil {
		return nil
	}

	q := &Quote{
		BasePrice:         eff.BasePricePerKm,
		MinDistance:       eff.MinTripDistanceKm,
		NightStartDisplay: eff.NightRateStart,
		NightEndDisplay:   eff.NightRateEnd,
	}
	q.HasMinDistanceWarning = eff.MinTripDistanceKm > 0 && trip.Outbound.DistanceKm < eff.MinTripDistanceKm

	// Outbound leg. The window is only evaluated when the night rate is enabled.
	outNightMin := 0
	if eff.NightRateEnabled {
		outNightMin = NightMinutes(trip.Outbound.Start, trip.Outbound.DurationMinutes, rideWindow)
	}
	q.DayKm, q.NightKm = SplitDistance(trip.Outbound.DistanceKm, outNightMin, trip.Outbound.DurationMinutes)
	q.TotalKm = trip.Outbound.DistanceKm
	outSeg := PriceSegment(q.DayKm, q.NightKm, eff.BasePricePerKm, eff.NightRateEnabled, eff.NightRatePercentage)

	// Return leg, priced with its own start instant so a trip straddling the night
	// boundary is split correctly per leg.
	var retSeg SegmentPrice
	if trip.Return != nil {
		retNightMin := 0
		if eff.NightRateEnabled {
			retNightMin = NightMinutes(trip.Return.Start, trip.Return.DurationMinutes, rideWindow)
		}
		q.ReturnDayKm, q.ReturnNightKm = SplitDistance(trip.Return.DistanceKm, retNightMin, trip.Return.DurationMinutes)
		q.ReturnTotalKm = trip.Return.DistanceKm
		retSeg = PriceSegment(q.ReturnDayKm, q.ReturnNightKm, eff.BasePricePerKm, eff.NightRateEnabled, eff.NightRatePercentage)
	}

	q.IsNightRate = outSeg.IsNightRate
	q.IsReturnNightRate = retSeg.IsNightRate

	outHT, retHT, sundaySurcharge, isSunday := ApplySundaySurcharge(
		trip.Outbound.Start, eff.HolidaySundayPercentage, outSeg.TotalHT, retSeg.TotalHT)
	q.IsSunday = isSunday
	q.SundaySurcharge = types.Round2(sundaySurcharge)

	outHT, retHT = EnforceMinimumFare(outHT, retHT, eff.MinimumTripFare)

	var wait WaitPrice
	if trip.Wait != nil {
		wait = PriceWaiting(trip.Wait.Start, trip.Wait.Minutes,
			eff.WaitPricePer15Min, eff.WaitNightEnabled, waitWindow, eff.WaitNightPercentage)
	}

	q.DayPrice = types.Round2(outSeg.DayPrice)
	q.NightPrice = types.Round2(outSeg.NightPrice)
	q.NightSurcharge = types.Round2(outSeg.NightSurcharge)
	q.ReturnDayPrice = types.Round2(retSeg.DayPrice)
	q.ReturnNightPrice = types.Round2(retSeg.NightPrice)
	q.ReturnNightSurcharge = types.Round2(retSeg.NightSurcharge)

	q.WaitTimeDay = wait.DayMinutes
	q.WaitTimeNight = wait.NightMinutes
	q.WaitPriceDay = types.Round2(wait.DayPrice)
	q.WaitPriceNight = types.Round2(wait.NightPrice)

	// Category HT amounts round first; the totals sum the rounded amounts so the
	// published invariants hold exactly, not only within tolerance.
	q.OneWayPriceHT = types.Round2(outHT)
	q.ReturnPriceHT = types.Round2(retHT)
	q.WaitingTimePriceHT = types.Round2(wait.TotalHT)

	totals := ApplyVAT(q.OneWayPriceHT, q.ReturnPriceHT, q.WaitingTimePriceHT, vat)
	q.OneWayPrice = types.Round2(totals.OneWayTTC)
	q.ReturnPrice = types.Round2(totals.ReturnTTC)
	q.WaitingTimePrice = types.Round2(totals.WaitingTTC)
	q.TotalPriceHT = types.Round2(totals.TotalHT)
	q.TotalVAT = types.Round2(totals.TotalVAT)
	q.TotalPrice = types.Round2(q.TotalPriceHT + q.TotalVAT)

	return q
}
