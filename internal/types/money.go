// README: Common value helpers shared across modules; amounts are euros with two decimals.
package types

import "math"

// ID identifies persisted records (32-char hex, see the newID generators in the modules).
type ID string

// Round2 rounds a monetary or kilometre value to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
