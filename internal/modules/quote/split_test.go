package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDistance(t *testing.T) {
	tests := []struct {
		name         string
		totalKm      float64
		nightMinutes int
		totalMinutes int
		wantDay      float64
		wantNight    float64
	}{
		{name: "no night minutes", totalKm: 42.5, nightMinutes: 0, totalMinutes: 60, wantDay: 42.5, wantNight: 0},
		{name: "zero duration guard", totalKm: 42.5, nightMinutes: 0, totalMinutes: 0, wantDay: 42.5, wantNight: 0},
		{name: "half night", totalKm: 30, nightMinutes: 30, totalMinutes: 60, wantDay: 15, wantNight: 15},
		{name: "all night", totalKm: 18.2, nightMinutes: 45, totalMinutes: 45, wantDay: 0, wantNight: 18.2},
		{name: "third rounds to two decimals", totalKm: 10, nightMinutes: 20, totalMinutes: 60, wantDay: 6.67, wantNight: 3.33},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			day, night := SplitDistance(test.totalKm, test.nightMinutes, test.totalMinutes)
			assert.InDelta(t, test.wantDay, day, 0.001)
			assert.InDelta(t, test.wantNight, night, 0.001)
			assert.InDelta(t, test.totalKm, day+night, 0.01, "day + night must reconstruct the total")
		})
	}
}
