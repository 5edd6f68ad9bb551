package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	coil "github.com/tucommenceapousser/coil-making/internal/calc/coil"
)

func TestCalculateCoil(t *testing.T) {
	in := CoilBatchInput{Items: []coil.Input{
		{Material: "SS316L", WireDiameterMM: 0.405, Wraps: 5, InnerDiameterMM: 3.0, LegLengthMM: 6, VoltageV: 3.7},
		{Material: "Kanthal A1", GaugeAWG: 28, Wraps: 7, InnerDiameterMM: 2.5, LegLengthMM: 5, VoltageV: 3.7},
	}}

	out, err := CalculateCoil(in)
	assert.NoError(t, err)
	assert.Len(t, out.Results, 2)
	for _, r := range out.Results {
		assert.Greater(t, r.ResistanceOhm, 0.0)
	}
}

func TestCalculateCoilEmpty(t *testing.T) {
	_, err := CalculateCoil(CoilBatchInput{})
	assert.Error(t, err)
}

func TestCalculateCoilBadItemFailsBatch(t *testing.T) {
	in := CoilBatchInput{Items: []coil.Input{
		{Material: "SS316L", WireDiameterMM: 0.405, Wraps: 5, InnerDiameterMM: 3.0, LegLengthMM: 6, VoltageV: 3.7},
		{Material: "Copper", WireDiameterMM: 0.405, Wraps: 5, InnerDiameterMM: 3.0, LegLengthMM: 6, VoltageV: 3.7},
	}}
	_, err := CalculateCoil(in)
	assert.Error(t, err)
}
