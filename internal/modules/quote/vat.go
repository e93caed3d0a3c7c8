// README: VAT application; independent rates for the ride and waiting-time categories.
package quote

// VATRates are the two VAT percentages the engine applies: the ride rate covers both
// trip legs, the waiting rate covers waiting time.
type VATRates struct {
	RideRate    float64
	WaitingRate float64
}

// VATTotals carries pre-tax, tax and tax-inclusive amounts per category and overall.
type VATTotals struct {
	OneWayTTC  float64
	ReturnTTC  float64
	WaitingTTC float64
	TotalHT    float64
	TotalVAT   float64
	TotalTTC   float64
}

// ApplyVAT computes VAT on the ride category (outbound + return) and the waiting
// category at their independent rates.
func ApplyVAT(oneWayHT, returnHT, waitingHT float64, rates VATRates) VATTotals {
	rideFactor := 1 + rates.RideRate/100
	waitFactor := 1 + rates.WaitingRate/100

	t := VATTotals{
		OneWayTTC:  oneWayHT * rideFactor,
		ReturnTTC:  returnHT * rideFactor,
		WaitingTTC: waitingHT * waitFactor,
	}
	t.TotalHT = oneWayHT + returnHT + waitingHT
	t.TotalVAT = (oneWayHT+returnHT)*rates.RideRate/100 + waitingHT*rates.WaitingRate/100
	t.TotalTTC = t.TotalHT + t.TotalVAT
	return t
}
