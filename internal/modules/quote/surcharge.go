// README: Sunday surcharge on pre-tax leg amounts.
package quote

import "time"

// ApplySundaySurcharge scales both pre-tax leg amounts by the surcharge percentage
// when the trip date is a calendar Sunday. Only Sundays are detected; despite the
// "holiday" naming in the tariff field, no holiday calendar is consulted. The
// returned surcharge is computed on the pre-surcharge combined amount.
func ApplySundaySurcharge(date time.Time, pct, outboundHT, returnHT float64) (outHT, retHT, surcharge float64, isSunday bool) {
	isSunday = date.Weekday() == time.Sunday
	if !isSunday || pct <= 0 {
		return outboundHT, returnHT, 0, isSunday
	}
	surcharge = (outboundHT + returnHT) * pct / 100
	outHT = outboundHT * (1 + pct/100)
	retHT = returnHT * (1 + pct/100)
	return outHT, retHT, surcharge, isSunday
}
