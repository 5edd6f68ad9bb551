package wraps

import (
	"fmt"

	coil "github.com/tucommenceapousser/coil-making/internal/calc/coil"
	material "github.com/tucommenceapousser/coil-making/internal/material"
)

// MaxWraps bounds the search. Past 60 turns the build is not physically
// sensible anyway.
const MaxWraps = 60

type Input struct {
	Material        string  `json:"material"`
	GaugeAWG        int     `json:"gauge_awg"`
	WireDiameterMM  float64 `json:"wire_diameter_mm"`
	InnerDiameterMM float64 `json:"inner_diameter_mm"`
	LegLengthMM     float64 `json:"leg_length_mm"`
	TargetOhm       float64 `json:"target_ohm"`
}

type Result struct {
	Wraps         int     `json:"wraps"`
	ResistanceOhm float64 `json:"resistance_ohm"`
	Saturated     bool    `json:"saturated"`
	Notes         string  `json:"notes"`
}

// SolveForTarget scans wrap counts from 1 upward and returns the first one
// whose resistance reaches the target. Resistance grows monotonically with
// wraps for fixed wire and geometry, so the first crossing is the minimal
// one. When even maxWraps falls short the result saturates at maxWraps with
// its actual resistance; that is a usable answer, not an error.
func SolveForTarget(mat material.Material, wireDiameterMM, innerDiameterMM, legLengthMM, targetOhm float64, maxWraps int) (int, float64, error) {
	if maxWraps < 1 {
		maxWraps = MaxWraps
	}
	var res float64
	for n := 1; n <= maxWraps; n++ {
		r, err := coil.Resistance(mat, wireDiameterMM, n, innerDiameterMM, legLengthMM)
		if err != nil {
			return 0, 0, err
		}
		res = r
		if r >= targetOhm {
			return n, r, nil
		}
	}
	return maxWraps, res, nil
}

func Calculate(in Input) (Result, error) {
	if in.InnerDiameterMM <= 0 || in.LegLengthMM < 0 || in.TargetOhm <= 0 {
		return Result{}, fmt.Errorf("invalid input")
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
	n, r, err := SolveForTarget(mat, d, in.InnerDiameterMM, in.LegLengthMM, in.TargetOhm, MaxWraps)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Wraps:         n,
		ResistanceOhm: r,
		Saturated:     n == MaxWraps && r < in.TargetOhm,
		Notes:         "Smallest wrap count reaching the target resistance.",
	}, nil
}
