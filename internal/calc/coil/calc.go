package coil

import (
	"errors"
	"fmt"
	"math"

	power "github.com/tucommenceapousser/coil-making/internal/calc/power"
	material "github.com/tucommenceapousser/coil-making/internal/material"
)

var ErrInvalidDimension = errors.New("invalid dimension")

type Input struct {
	Material        string  `json:"material"`
	GaugeAWG        int     `json:"gauge_awg"` // 0 means WireDiameterMM is used directly
	WireDiameterMM  float64 `json:"wire_diameter_mm"`
	Wraps           int     `json:"wraps"`
	InnerDiameterMM float64 `json:"inner_diameter_mm"`
	LegLengthMM     float64 `json:"leg_length_mm"`
	VoltageV        float64 `json:"voltage_v"`
	CurrentLimitA   float64 `json:"current_limit_a"`
}

type Result struct {
	WireDiameterMM float64 `json:"wire_diameter_mm"`
	LengthM        float64 `json:"length_m"`
	AreaMM2        float64 `json:"area_mm2"`
	ResistanceOhm  float64 `json:"resistance_ohm"`
	CurrentA       float64 `json:"current_a"`
	PowerW         float64 `json:"power_w"`
	ExceedsLimit   bool    `json:"exceeds_limit"`
	Notes          string  `json:"notes"`
}

// WireLengthM treats the coil as full circular turns of the stated inner
// diameter plus straight lead wire. Pitch, turn spacing and the wire's own
// thickness are deliberately not modelled; the approximation matches the
// original hand tool this replaces.
func WireLengthM(wraps int, innerDiameterMM, legLengthMM float64) float64 {
	return (math.Pi*innerDiameterMM*float64(wraps) + legLengthMM) / 1000.0
}

func CrossSectionAreaMM2(diameterMM float64) (float64, error) {
	if diameterMM <= 0 {
		return 0, fmt.Errorf("%w: wire diameter %.3f mm", ErrInvalidDimension, diameterMM)
	}
	r := diameterMM / 2.0
	return math.Pi * r * r, nil
}

// Resistance is resistivity * length / area, with length in meters and area
// in mm^2. Strictly positive for valid inputs.
func Resistance(mat material.Material, wireDiameterMM float64, wraps int, innerDiameterMM, legLengthMM float64) (float64, error) {
	area, err := CrossSectionAreaMM2(wireDiameterMM)
	if err != nil {
		return 0, err
	}
	length := WireLengthM(wraps, innerDiameterMM, legLengthMM)
	return mat.ResistivityOhmMM * length / area, nil
}

func Calculate(in Input) (Result, error) {
	if in.Wraps < 1 || in.InnerDiameterMM <= 0 || in.LegLengthMM < 0 || in.VoltageV <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.CurrentLimitA <= 0 {
		in.CurrentLimitA = 25
	}

	mat, err := material.Lookup(in.Material)
	if err != nil {
		return Result{}, err
	}

	d := in.WireDiameterMM
	if in.GaugeAWG > 0 {
		d, err = material.GaugeDiameterMM(in.GaugeAWG)
		if err != nil {
			return Result{}, err
		}
	}

	area, err := CrossSectionAreaMM2(d)
	if err != nil {
		return Result{}, err
	}
	length := WireLengthM(in.Wraps, in.InnerDiameterMM, in.LegLengthMM)
	res := mat.ResistivityOhmMM * length / area

	el := power.Derive(res, in.VoltageV, in.CurrentLimitA)

	return Result{
		WireDiameterMM: d,
		LengthM:        length,
		AreaMM2:        area,
		ResistanceOhm:  res,
		CurrentA:       el.CurrentA,
		PowerW:         el.PowerW,
		ExceedsLimit:   el.ExceedsLimit,
		Notes:          "Single coil, full turns plus straight legs.",
	}, nil
}
