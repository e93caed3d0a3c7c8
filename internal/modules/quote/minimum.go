// README: Minimum-fare floor, redistributed proportionally across legs.
package quote

// EnforceMinimumFare raises the combined pre-tax total to the configured floor,
// keeping the outbound/return ratio. With no return leg the ratio is 1 and the
// whole floor lands on the outbound leg. The denominator guard keeps the degenerate
// zero-sum case division-free.
func EnforceMinimumFare(oneWayHT, returnHT, minFare float64) (float64, float64) {
	sum := oneWayHT + returnHT
	if minFare <= 0 || sum >= minFare {
		return oneWayHT, returnHT
	}
	denom := sum
	if denom == 0 {
		denom = 1
	}
	ratio := oneWayHT / denom
	return minFare * ratio, minFare * (1 - ratio)
}
