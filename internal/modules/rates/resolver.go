// README: Layered tariff resolution: vehicle override, else driver default, else fallback.
package rates

// Built-in fallback tariff, used when neither the vehicle profile nor the driver
// defaults set a field. A rate lookup is never silently absent.
const (
	fallbackBasePricePerKm          = 1.80
	fallbackNightRateEnabled        = false
	fallbackNightRateStart          = "20:00"
	fallbackNightRateEnd            = "06:00"
	fallbackNightRatePercentage     = 15.0
	fallbackHolidaySundayPercentage = 0.0
	fallbackMinimumTripFare         = 0.0
	fallbackMinTripDistanceKm       = 0.0
	fallbackWaitPricePer15Min       = 7.50
	fallbackWaitNightEnabled        = false
	fallbackWaitNightStart          = "20:00"
	fallbackWaitNightEnd            = "06:00"
	fallbackWaitNightPercentage     = 15.0
)

// Resolve merges the vehicle profile over the driver defaults over the fallback
// constants. Either argument may be nil.
func Resolve(v *VehicleRateProfile, d *DriverPricingDefaults) Effective {
	if v == nil {
		v = &VehicleRateProfile{}
	}
	if d == nil {
		d = &DriverPricingDefaults{}
	}
	return Effective{
		BasePricePerKm:          pickFloat(v.BasePricePerKm, d.BasePricePerKm, fallbackBasePricePerKm),
		NightRateEnabled:        pickBool(v.NightRateEnabled, d.NightRateEnabled, fallbackNightRateEnabled),
		NightRateStart:          pickString(v.NightRateStart, d.NightRateStart, fallbackNightRateStart),
		NightRateEnd:            pickString(v.NightRateEnd, d.NightRateEnd, fallbackNightRateEnd),
		NightRatePercentage:     pickFloat(v.NightRatePercentage, d.NightRatePercentage, fallbackNightRatePercentage),
		HolidaySundayPercentage: pickFloat(v.HolidaySundayPercentage, d.HolidaySundayPercentage, fallbackHolidaySundayPercentage),
		MinimumTripFare:         pickFloat(v.MinimumTripFare, d.MinimumTripFare, fallbackMinimumTripFare),
		MinTripDistanceKm:       pickFloat(v.MinTripDistanceKm, d.MinTripDistanceKm, fallbackMinTripDistanceKm),
		WaitPricePer15Min:       pickFloat(v.WaitPricePer15Min, d.WaitPricePer15Min, fallbackWaitPricePer15Min),
		WaitNightEnabled:        pickBool(v.WaitNightEnabled, d.WaitNightEnabled, fallbackWaitNightEnabled),
		WaitNightStart:          pickString(v.WaitNightStart, d.WaitNightStart, fallbackWaitNightStart),
		WaitNightEnd:            pickString(v.WaitNightEnd, d.WaitNightEnd, fallbackWaitNightEnd),
		WaitNightPercentage:     pickFloat(v.WaitNightPercentage, d.WaitNightPercentage, fallbackWaitNightPercentage),
	}
}

func pickFloat(override, def *float64, fallback float64) float64 {
	if override != nil {
		return *override
	}
	if def != nil {
		return *def
	}
	return fallback
}

func pickBool(override, def *bool, fallback bool) bool {
	if override != nil {
		return *override
	}
	if def != nil {
		return *def
	}
	return fallback
}

func pickString(override, def *string, fallback string) string {
	if override != nil && *override != "" {
		return *override
	}
	if def != nil && *def != "" {
		return *def
	}
	return fallback
}
