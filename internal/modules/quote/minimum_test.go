package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnforceMinimumFare(t *testing.T) {
	tests := []struct {
		name    string
		oneWay  float64
		ret     float64
		minFare float64
		wantOne float64
		wantRet float64
	}{
		{name: "no floor configured", oneWay: 10, ret: 5, minFare: 0, wantOne: 10, wantRet: 5},
		{name: "already above floor", oneWay: 25, ret: 10, minFare: 30, wantOne: 25, wantRet: 10},
		{name: "no return leg gets whole floor", oneWay: 10, ret: 0, minFare: 30, wantOne: 30, wantRet: 0},
		{name: "ratio preserved across legs", oneWay: 20, ret: 10, minFare: 60, wantOne: 40, wantRet: 20},
		{name: "zero sum sends floor to return side", oneWay: 0, ret: 0, minFare: 30, wantOne: 0, wantRet: 30},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			one, ret := EnforceMinimumFare(test.oneWay, test.ret, test.minFare)
			assert.InDelta(t, test.wantOne, one, 0.001)
			assert.InDelta(t, test.wantRet, ret, 0.001)
			if test.minFare > 0 && test.oneWay+test.ret < test.minFare {
				assert.InDelta(t, test.minFare, one+ret, 0.001, "enforced legs must sum to the floor")
			}
		})
	}
}
