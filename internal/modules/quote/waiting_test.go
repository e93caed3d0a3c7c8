package quote

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPriceWaitingDisabledNightRate(t *testing.T) {
	start := at(t, "2026-03-06 21:00")
	w := mustWindow(t, "20:00", "06:00")

	p := PriceWaiting(start, 45, 7.50, false, w, 30)

	assert.Equal(t, 45, p.DayMinutes)
	assert.Equal(t, 0, p.NightMinutes)
	assert.InDelta(t, 22.50, p.TotalHT, 0.001) // 45 * 0.50
	assert.Equal(t, start.Add(45*time.Minute), p.End)
}

func TestPriceWaitingNightSplit(t *testing.T) {
	// 05:30 + 60min: 30 night minutes (until 06:00), 30 day minutes.
	start := at(t, "2026-03-06 05:30")
	w := mustWindow(t, "20:00", "06:00")

	p := PriceWaiting(start, 60, 15, true, w, 20)

	assert.Equal(t, 30, p.DayMinutes)
	assert.Equal(t, 30, p.NightMinutes)
	assert.InDelta(t, 30.0, p.DayPrice, 0.001)   // 30 * 1.00
	assert.InDelta(t, 36.0, p.NightPrice, 0.001) // 30 * 1.00 * 1.20
	assert.InDelta(t, 66.0, p.TotalHT, 0.001)
	assert.Equal(t, start.Add(time.Hour), p.End)
}

func TestPriceWaitingZeroMinutes(t *testing.T) {
	start := at(t, "2026-03-06 10:00")
	w := mustWindow(t, "20:00", "06:00")

	p := PriceWaiting(start, 0, 7.50, true, w, 20)

	assert.Zero(t, p.DayMinutes)
	assert.Zero(t, p.NightMinutes)
	assert.Zero(t, p.TotalHT)
	assert.Equal(t, start, p.End, "end stays at the wait start when nothing is billed")
}
