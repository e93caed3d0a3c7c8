package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyVAT(t *testing.T) {
	rates := VATRates{RideRate: 10, WaitingRate: 20}

	t.Run("independent category rates", func(t *testing.T) {
		got := ApplyVAT(100, 0, 50, rates)
		assert.InDelta(t, 20.0, got.TotalVAT, 0.001) // 10 ride + 10 waiting
		assert.InDelta(t, 150.0, got.TotalHT, 0.001)
		assert.InDelta(t, 170.0, got.TotalTTC, 0.001)
		assert.InDelta(t, 110.0, got.OneWayTTC, 0.001)
		assert.InDelta(t, 60.0, got.WaitingTTC, 0.001)
	})

	t.Run("ride rate covers both legs", func(t *testing.T) {
		got := ApplyVAT(60, 40, 0, rates)
		assert.InDelta(t, 10.0, got.TotalVAT, 0.001)
		assert.InDelta(t, 66.0, got.OneWayTTC, 0.001)
		assert.InDelta(t, 44.0, got.ReturnTTC, 0.001)
		assert.InDelta(t, 110.0, got.TotalTTC, 0.001)
	})

	t.Run("all zero", func(t *testing.T) {
		got := ApplyVAT(0, 0, 0, rates)
		assert.Zero(t, got.TotalVAT)
		assert.Zero(t, got.TotalTTC)
	})
}
