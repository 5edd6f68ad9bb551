package power

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name        string
		resistance  float64
		voltage     float64
		limit       float64
		wantCurrent float64
		wantPower   float64
		wantExceeds bool
	}{
		{
			name:        "0.25 ohm at 7.4V under 30A limit",
			resistance:  0.25,
			voltage:     7.4,
			limit:       30,
			wantCurrent: 29.6,
			wantPower:   219.04,
			wantExceeds: false,
		},
		{
			name:        "0.25 ohm at 7.4V over 25A limit",
			resistance:  0.25,
			voltage:     7.4,
			limit:       25,
			wantCurrent: 29.6,
			wantPower:   219.04,
			wantExceeds: true,
		},
		{
			name:        "1 ohm at 3.7V",
			resistance:  1.0,
			voltage:     3.7,
			limit:       25,
			wantCurrent: 3.7,
			wantPower:   13.69,
			wantExceeds: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Derive(tt.resistance, tt.voltage, tt.limit)
			assert.InDelta(t, tt.wantCurrent, res.CurrentA, 1e-9)
			assert.InDelta(t, tt.wantPower, res.PowerW, 1e-9)
			assert.Equal(t, tt.wantExceeds, res.ExceedsLimit)
		})
	}
}

func TestDeriveZeroResistance(t *testing.T) {
	res := Derive(0, 7.4, 30)
	assert.False(t, math.IsInf(res.CurrentA, 0))
	assert.False(t, math.IsNaN(res.CurrentA))
	assert.Greater(t, res.CurrentA, 1e6)
	assert.True(t, res.ExceedsLimit)
}

func TestCalculateValidation(t *testing.T) {
	_, err := Calculate(Input{ResistanceOhm: 0.5, VoltageV: 0, CurrentLimitA: 25})
	assert.Error(t, err)

	_, err = Calculate(Input{ResistanceOhm: 0.5, VoltageV: 3.7, CurrentLimitA: 0})
	assert.Error(t, err)

	res, err := Calculate(Input{ResistanceOhm: 0.5, VoltageV: 3.7, CurrentLimitA: 25})
	assert.NoError(t, err)
	assert.InDelta(t, 7.4, res.CurrentA, 1e-9)
}
