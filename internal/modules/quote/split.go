// README: Distance split between day and night portions of a leg.
package quote

import "chauffeur/internal/types"

// SplitDistance apportions a leg's distance by the night share of its duration.
// The night share rounds to two decimals and the day share takes the remainder, so
// dayKm + nightKm always reconstructs the total within 0.01.
func SplitDistance(totalKm float64, nightMinutes, totalMinutes int) (dayKm, nightKm float64) {
	if totalMinutes == 0 || nightMinutes <= 0 {
		return totalKm, 0
	}
	nightKm = types.Round2(totalKm * float64(nightMinutes) / float64(totalMinutes))
	dayKm = types.Round2(totalKm - nightKm)
	return dayKm, nightKm
}
