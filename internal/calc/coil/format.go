package coil

import "fmt"

// Display precision is part of the output contract: diameter 3 decimals,
// resistance 4, current 3, power 2.

func FormatDiameter(mm float64) string    { return fmt.Sprintf("%.3f", mm) }
func FormatResistance(ohm float64) string { return fmt.Sprintf("%.4f", ohm) }
func FormatCurrent(a float64) string      { return fmt.Sprintf("%.3f", a) }
func FormatPower(w float64) string        { return fmt.Sprintf("%.2f", w) }

// Display is the human-facing rendering of a Result.
type Display struct {
	WireDiameterMM string `json:"wire_diameter_mm"`
	ResistanceOhm  string `json:"resistance_ohm"`
	CurrentA       string `json:"current_a"`
	PowerW         string `json:"power_w"`
}

func (r Result) Display() Display {
	return Display{
		WireDiameterMM: FormatDiameter(r.WireDiameterMM),
		ResistanceOhm:  FormatResistance(r.ResistanceOhm),
		CurrentA:       FormatCurrent(r.CurrentA),
		PowerW:         FormatPower(r.PowerW),
	}
}
