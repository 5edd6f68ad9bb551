package material

import (
	"errors"
	"fmt"
)

var ErrUnknownMaterial = errors.New("unknown material")
var ErrUnknownGauge = errors.New("unknown gauge")

type Material struct {
	ID               string  `json:"id"`
	ResistivityOhmMM float64 `json:"resistivity_ohm_mm2_per_m"`
	TCSuitable       bool    `json:"tc_suitable"`
	Note             string  `json:"note"`
}

// Resistivity in Ohm*mm^2/m. The table is read-only reference data; Lookup
// returns a copy so callers can never touch the catalog itself.
var catalog = map[string]Material{
	"Kanthal A1": {
		ID:               "Kanthal A1",
		ResistivityOhmMM: 1.45,
		TCSuitable:       false,
		Note:             "High resistance, holds shape well. Wattage mode only.",
	},
	"Nichrome Ni80": {
		ID:               "Nichrome Ni80",
		ResistivityOhmMM: 1.09,
		TCSuitable:       false,
		Note:             "Fast ramp-up, easy to work with. Wattage mode only.",
	},
	"SS316L": {
		ID:               "SS316L",
		ResistivityOhmMM: 0.75,
		TCSuitable:       true,
		Note:             "Works in both wattage and temperature control.",
	},
	"Ni200": {
		ID:               "Ni200",
		ResistivityOhmMM: 0.70,
		TCSuitable:       true,
		Note:             "Temperature control only, too soft for wattage mode.",
	},
	"Titanium": {
		ID:               "Titanium",
		ResistivityOhmMM: 0.42,
		TCSuitable:       true,
		Note:             "Temperature control only. Do not dry burn.",
	},
}

// AWG -> wire diameter in mm.
var gauges = map[int]float64{
	20: 0.8128,
	22: 0.6438,
	24: 0.511,
	26: 0.405,
	28: 0.321,
	30: 0.255,
	32: 0.202,
}

// GaugesThickToThin lists the supported AWG values from thickest wire to
// thinnest, the order recommendation scans in.
var GaugesThickToThin = []int{20, 22, 24, 26, 28, 30, 32}

func Lookup(id string) (Material, error) {
	m, ok := catalog[id]
	if !ok {
		return Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, id)
	}
	return m, nil
}

func GaugeDiameterMM(awg int) (float64, error) {
	d, ok := gauges[awg]
	if !ok {
		return 0, fmt.Errorf("%w: AWG %d", ErrUnknownGauge, awg)
	}
	return d, nil
}

// All returns the catalog entries for listing in the UI. Order is not
// guaranteed.
func All() []Material {
	out := make([]Material, 0, len(catalog))
	for _, m := range catalog {
		out = append(out, m)
	}
	return out
}
