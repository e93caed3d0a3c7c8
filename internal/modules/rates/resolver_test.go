// README: Resolver tests for the vehicle → driver → fallback tariff chain.
package rates

import "testing"

func f(v float64) *float64 { return &v }
func b(v bool) *bool       { return &v }
func s(v string) *string   { return &v }

func TestResolveFallbackChain(t *testing.T) {
	vehicle := &VehicleRateProfile{
		BasePricePerKm:   f(2.40),
		NightRateEnabled: b(true),
		NightRateStart:   s("21:00"),
	}
	driver := &DriverPricingDefaults{
		BasePricePerKm:      f(1.95),
		NightRateEnd:        s("05:30"),
		NightRatePercentage: f(25),
		MinimumTripFare:     f(20),
	}

	eff := Resolve(vehicle, driver)

	if eff.BasePricePerKm != 2.40 {
		t.Errorf("BasePricePerKm = %v, want vehicle override 2.40", eff.BasePricePerKm)
	}
	if !eff.NightRateEnabled {
		t.Error("NightRateEnabled = false, want vehicle override true")
	}
	if eff.NightRateStart != "21:00" {
		t.Errorf("NightRateStart = %q, want vehicle override", eff.NightRateStart)
	}
	if eff.NightRateEnd != "05:30" {
		t.Errorf("NightRateEnd = %q, want driver default", eff.NightRateEnd)
	}
	if eff.NightRatePercentage != 25 {
		t.Errorf("NightRatePercentage = %v, want driver default 25", eff.NightRatePercentage)
	}
	if eff.MinimumTripFare != 20 {
		t.Errorf("MinimumTripFare = %v, want driver default 20", eff.MinimumTripFare)
	}
	if eff.WaitPricePer15Min != fallbackWaitPricePer15Min {
		t.Errorf("WaitPricePer15Min = %v, want fallback %v", eff.WaitPricePer15Min, fallbackWaitPricePer15Min)
	}
	if eff.WaitNightStart != fallbackWaitNightStart {
		t.Errorf("WaitNightStart = %q, want fallback", eff.WaitNightStart)
	}
}

func TestResolveNilProfiles(t *testing.T) {
	eff := Resolve(nil, nil)

	if eff.BasePricePerKm != fallbackBasePricePerKm {
		t.Errorf("BasePricePerKm = %v, want fallback %v", eff.BasePricePerKm, fallbackBasePricePerKm)
	}
	if eff.NightRateEnabled != fallbackNightRateEnabled {
		t.Errorf("NightRateEnabled = %v, want fallback", eff.NightRateEnabled)
	}
	if eff.NightRateStart != "20:00" || eff.NightRateEnd != "06:00" {
		t.Errorf("night window = %s-%s, want fallback 20:00-06:00", eff.NightRateStart, eff.NightRateEnd)
	}
	if eff.MinimumTripFare != 0 {
		t.Errorf("MinimumTripFare = %v, want 0", eff.MinimumTripFare)
	}
}

func TestResolveEmptyStringFallsThrough(t *testing.T) {
	vehicle := &VehicleRateProfile{NightRateStart: s("")}
	driver := &DriverPricingDefaults{NightRateStart: s("22:00")}

	eff := Resolve(vehicle, driver)
	if eff.NightRateStart != "22:00" {
		t.Errorf("NightRateStart = %q, want driver default for empty vehicle value", eff.NightRateStart)
	}
}
