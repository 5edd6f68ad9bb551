package coil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	material "github.com/tucommenceapousser/coil-making/internal/material"
)

func TestWireLengthM(t *testing.T) {
	// 5 full turns on 3.0 mm plus 6 mm legs.
	got := WireLengthM(5, 3.0, 6)
	want := (math.Pi*3.0*5 + 6) / 1000.0
	assert.InDelta(t, want, got, 1e-12)
	assert.InDelta(t, 0.053124, got, 1e-5)

	// No legs.
	assert.InDelta(t, math.Pi*3.0/1000.0, WireLengthM(1, 3.0, 0), 1e-12)
}

func TestCrossSectionAreaMM2(t *testing.T) {
	tests := []struct {
		name       string
		diameterMM float64
		want       float64
		wantErr    bool
	}{
		{name: "AWG26", diameterMM: 0.405, want: math.Pi * 0.2025 * 0.2025},
		{name: "1mm wire", diameterMM: 1.0, want: math.Pi * 0.25},
		{name: "zero diameter fails", diameterMM: 0, wantErr: true},
		{name: "negative diameter fails", diameterMM: -0.4, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CrossSectionAreaMM2(tt.diameterMM)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDimension)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestResistanceReferenceBuild(t *testing.T) {
	// SS316L, AWG26 (0.405 mm), 5 wraps on 3.0 mm, 6 mm legs.
	mat, err := material.Lookup("SS316L")
	assert.NoError(t, err)

	r, err := Resistance(mat, 0.405, 5, 3.0, 6)
	assert.NoError(t, err)

	length := (math.Pi*3.0*5 + 6) / 1000.0
	area := math.Pi * 0.2025 * 0.2025
	assert.InDelta(t, 0.75*length/area, r, 1e-12)
	assert.InDelta(t, 0.3093, r, 0.0005)
}

func TestResistanceMonotonicInWraps(t *testing.T) {
	mat, err := material.Lookup("Kanthal A1")
	assert.NoError(t, err)

	prev := 0.0
	for n := 1; n <= 60; n++ {
		r, err := Resistance(mat, 0.321, n, 2.5, 5)
		assert.NoError(t, err)
		assert.Greater(t, r, prev)
		prev = r
	}
}

func TestResistancePropagatesInvalidDimension(t *testing.T) {
	mat, err := material.Lookup("Ni200")
	assert.NoError(t, err)

	_, err = Resistance(mat, 0, 5, 3.0, 6)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestCalculate(t *testing.T) {
	base := Input{
		Material:        "SS316L",
		WireDiameterMM:  0.405,
		Wraps:           5,
		InnerDiameterMM: 3.0,
		LegLengthMM:     6,
		VoltageV:        3.7,
		CurrentLimitA:   25,
	}

	res, err := Calculate(base)
	assert.NoError(t, err)
	assert.InDelta(t, 0.3093, res.ResistanceOhm, 0.0005)
	assert.InDelta(t, 3.7/res.ResistanceOhm, res.CurrentA, 1e-9)
	assert.InDelta(t, res.CurrentA*res.CurrentA*res.ResistanceOhm, res.PowerW, 1e-9)
	assert.False(t, res.ExceedsLimit)
	assert.Equal(t, 0.405, res.WireDiameterMM)
}

func TestCalculateGaugeMatchesDirectDiameter(t *testing.T) {
	direct := Input{
		Material:        "Nichrome Ni80",
		WireDiameterMM:  0.405,
		Wraps:           7,
		InnerDiameterMM: 2.5,
		LegLengthMM:     5,
		VoltageV:        3.7,
		CurrentLimitA:   25,
	}
	byGauge := direct
	byGauge.WireDiameterMM = 0
	byGauge.GaugeAWG = 26

	a, err := Calculate(direct)
	assert.NoError(t, err)
	b, err := Calculate(byGauge)
	assert.NoError(t, err)
	assert.Equal(t, a.ResistanceOhm, b.ResistanceOhm)
	assert.Equal(t, a.WireDiameterMM, b.WireDiameterMM)
}

func TestCalculateErrors(t *testing.T) {
	valid := Input{
		Material:        "SS316L",
		WireDiameterMM:  0.405,
		Wraps:           5,
		InnerDiameterMM: 3.0,
		LegLengthMM:     6,
		VoltageV:        3.7,
	}

	tests := []struct {
		name    string
		mutate  func(*Input)
		wantErr error
	}{
		{name: "unknown material", mutate: func(in *Input) { in.Material = "Copper" }, wantErr: material.ErrUnknownMaterial},
		{name: "unknown gauge", mutate: func(in *Input) { in.GaugeAWG = 99 }, wantErr: material.ErrUnknownGauge},
		{name: "zero diameter", mutate: func(in *Input) { in.WireDiameterMM = 0 }, wantErr: ErrInvalidDimension},
		{name: "zero wraps", mutate: func(in *Input) { in.Wraps = 0 }},
		{name: "zero inner diameter", mutate: func(in *Input) { in.InnerDiameterMM = 0 }},
		{name: "negative leg", mutate: func(in *Input) { in.LegLengthMM = -1 }},
		{name: "zero voltage", mutate: func(in *Input) { in.VoltageV = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			_, err := Calculate(in)
			assert.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestFormatPrecision(t *testing.T) {
	assert.Equal(t, "0.405", FormatDiameter(0.405))
	assert.Equal(t, "0.3093", FormatResistance(0.30928))
	assert.Equal(t, "29.600", FormatCurrent(29.6))
	assert.Equal(t, "219.04", FormatPower(219.04))
}

func TestDisplay(t *testing.T) {
	res := Result{
		WireDiameterMM: 0.8128,
		ResistanceOhm:  0.25,
		CurrentA:       29.6,
		PowerW:         219.04,
	}
	d := res.Display()
	assert.Equal(t, "0.813", d.WireDiameterMM)
	assert.Equal(t, "0.2500", d.ResistanceOhm)
	assert.Equal(t, "29.600", d.CurrentA)
	assert.Equal(t, "219.04", d.PowerW)
}
