package power

import "fmt"

// minResistanceOhm keeps the current finite when a resistance underflows to
// zero; we never report an infinite or NaN current.
const minResistanceOhm = 1e-6

type Input struct {
	ResistanceOhm float64 `json:"resistance_ohm"`
	VoltageV      float64 `json:"voltage_v"`
	CurrentLimitA float64 `json:"current_limit_a"`
}

type Result struct {
	CurrentA     float64 `json:"current_a"`
	PowerW       float64 `json:"power_w"`
	ExceedsLimit bool    `json:"exceeds_limit"`
	Notes        string  `json:"notes"`
}

// Derive applies Ohm's law and the power law to a resistance under a supply
// voltage, and flags the result when the draw exceeds the battery's continuous
// discharge limit. It never fails: a zero resistance is clamped to a minimal
// epsilon instead of dividing by zero.
func Derive(resistanceOhm, voltageV, currentLimitA float64) Result {
	r := resistanceOhm
	if r < minResistanceOhm {
		r = minResistanceOhm
	}
	current := voltageV / r
	return Result{
		CurrentA:     current,
		PowerW:       current * current * r,
		ExceedsLimit: current > currentLimitA,
		Notes:        "Ohm's law draw against the continuous discharge limit.",
	}
}

func Calculate(in Input) (Result, error) {
	if in.VoltageV <= 0 || in.CurrentLimitA <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	return Derive(in.ResistanceOhm, in.VoltageV, in.CurrentLimitA), nil
}
