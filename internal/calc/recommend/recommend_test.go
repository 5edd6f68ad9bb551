package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGaugePicksThickestFit(t *testing.T) {
	// SS316L, 3.0 mm coil, 6 mm legs, 0.5 ohm target: 20-24 AWG need more
	// than 12 wraps, 26 AWG lands at 9.
	res, err := Gauge(GaugeInput{
		Material:        "SS316L",
		InnerDiameterMM: 3.0,
		LegLengthMM:     6,
		TargetOhm:       0.5,
	})
	assert.NoError(t, err)
	assert.Equal(t, 26, res.GaugeAWG)
	assert.Equal(t, 9, res.Wraps)
	assert.GreaterOrEqual(t, res.ResistanceOhm, 0.5)
}

func TestGaugeFallsBackToThinnest(t *testing.T) {
	// No gauge reaches 50 ohm in a dozen wraps on a 2 mm coil.
	res, err := Gauge(GaugeInput{
		Material:        "Kanthal A1",
		InnerDiameterMM: 2.0,
		LegLengthMM:     5,
		TargetOhm:       50,
	})
	assert.NoError(t, err)
	assert.Equal(t, 32, res.GaugeAWG)
	assert.Contains(t, res.Notes, "thinnest")
}

func TestGaugeValidation(t *testing.T) {
	_, err := Gauge(GaugeInput{Material: "SS316L", InnerDiameterMM: 0, TargetOhm: 0.5})
	assert.Error(t, err)

	_, err = Gauge(GaugeInput{Material: "Copper", InnerDiameterMM: 3, TargetOhm: 0.5})
	assert.Error(t, err)
}
