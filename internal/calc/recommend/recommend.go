package recommend

import (
	"fmt"

	wraps "github.com/tucommenceapousser/coil-making/internal/calc/wraps"
	material "github.com/tucommenceapousser/coil-making/internal/material"
)

type GaugeInput struct {
	Material        string  `json:"material"`
	InnerDiameterMM float64 `json:"inner_diameter_mm"`
	LegLengthMM     float64 `json:"leg_length_mm"`
	TargetOhm       float64 `json:"target_ohm"`
	MinWraps        int     `json:"min_wraps"`
	MaxWraps        int     `json:"max_wraps"`
}

type GaugeResult struct {
	GaugeAWG       int     `json:"gauge_awg"`
	WireDiameterMM float64 `json:"wire_diameter_mm"`
	Wraps          int     `json:"wraps"`
	ResistanceOhm  float64 `json:"resistance_ohm"`
	Notes          string  `json:"notes"`
}

// Gauge picks the thickest wire in the table whose wrap solution for the
// target resistance lands in a buildable wrap range. Thicker wire wicks heat
// better, so the scan goes thick to thin and stops at the first fit; when no
// gauge fits, the thinnest wire's solution is returned as a best effort.
func Gauge(in GaugeInput) (GaugeResult, error) {
	if in.InnerDiameterMM <= 0 || in.TargetOhm <= 0 || in.LegLengthMM < 0 {
		return GaugeResult{}, fmt.Errorf("invalid input")
	}
	if in.MinWraps <= 0 {
		in.MinWraps = 4
	}
	if in.MaxWraps <= 0 || in.MaxWraps < in.MinWraps {
		in.MaxWraps = 12
	}
	mat, err := material.Lookup(in.Material)
	if err != nil {
		return GaugeResult{}, err
	}

	var fallback GaugeResult
	for _, awg := range material.GaugesThickToThin {
		d, err := material.GaugeDiameterMM(awg)
		if err != nil {
			return GaugeResult{}, err
		}
		n, r, err := wraps.SolveForTarget(mat, d, in.InnerDiameterMM, in.LegLengthMM, in.TargetOhm, wraps.MaxWraps)
		if err != nil {
			return GaugeResult{}, err
		}
		fallback = GaugeResult{
			GaugeAWG:       awg,
			WireDiameterMM: d,
			Wraps:          n,
			ResistanceOhm:  r,
			Notes:          "No gauge reaches the target in the wrap range; thinnest wire shown.",
		}
		if r >= in.TargetOhm && n >= in.MinWraps && n <= in.MaxWraps {
			return GaugeResult{
				GaugeAWG:       awg,
				WireDiameterMM: d,
				Wraps:          n,
				ResistanceOhm:  r,
				Notes:          "Thickest gauge hitting the target within the wrap range.",
			}, nil
		}
	}
	return fallback, nil
}
