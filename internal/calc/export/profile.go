package export

import (
	"fmt"
	"math"
	"strings"

	coil "github.com/tucommenceapousser/coil-making/internal/calc/coil"
	material "github.com/tucommenceapousser/coil-making/internal/material"
)

type Mode string

const (
	ModeTCSS  Mode = "TC-SS"
	ModePower Mode = "Power"
)

// ssTemperatureC is the stock TC preset for stainless builds.
const ssTemperatureC = 220

type Profile struct {
	Name                   string `json:"name"`
	Mode                   Mode   `json:"mode"`
	TemperatureC           int    `json:"temperature_c,omitempty"`
	HasTemperature         bool   `json:"has_temperature"`
	PowerW                 int    `json:"power_w"`
	PreheatPowerW          int    `json:"preheat_power_w"`
	PreheatTimeS           int    `json:"preheat_time_s"`
	CutoffS                int    `json:"cutoff_s"`
	EstimatedResistanceOhm string `json:"estimated_resistance_ohm"`
}

// BuildProfile maps a finished calculation onto a device profile. Materials
// with known resistance-vs-temperature behaviour get the TC-SS mode; the
// fixed temperature preset applies to SS316L only. Power is capped at 50 W
// and preheat boosts it by 40% within a 20..80 W window.
func BuildProfile(mat material.Material, res coil.Result) Profile {
	mode := ModePower
	if mat.TCSuitable {
		mode = ModeTCSS
	}
	p := Profile{
		Name:                   fmt.Sprintf("%s coil", mat.ID),
		Mode:                   mode,
		PowerW:                 int(math.Min(50, math.Round(res.PowerW))),
		PreheatPowerW:          int(math.Round(clamp(res.PowerW*1.4, 20, 80))),
		PreheatTimeS:           1,
		CutoffS:                8,
		EstimatedResistanceOhm: coil.FormatResistance(res.ResistanceOhm),
	}
	if mat.ID == "SS316L" {
		p.TemperatureC = ssTemperatureC
		p.HasTemperature = true
	}
	return p
}

// Serialize renders the line-oriented profile document. Output is a pure
// function of the Profile; identical input yields identical bytes.
func Serialize(p Profile) string {
	var b strings.Builder
	b.WriteString("; Generated by coil-making\n")
	b.WriteString("[ProfileCustom]\n")
	fmt.Fprintf(&b, "Name=%s\n", p.Name)
	fmt.Fprintf(&b, "Mode=%s\n", p.Mode)
	if p.HasTemperature {
		fmt.Fprintf(&b, "Temperature=%d\n", p.TemperatureC)
	}
	fmt.Fprintf(&b, "Power=%d\n", p.PowerW)
	fmt.Fprintf(&b, "PreheatPower=%d\n", p.PreheatPowerW)
	fmt.Fprintf(&b, "PreheatTime=%d\n", p.PreheatTimeS)
	fmt.Fprintf(&b, "Cutoff=%d\n", p.CutoffS)
	fmt.Fprintf(&b, "; EstimatedResistance=%s\n", p.EstimatedResistanceOhm)
	return b.String()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
