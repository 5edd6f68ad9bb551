package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	coil "github.com/tucommenceapousser/coil-making/internal/calc/coil"
)

type Input struct {
	Builder string     `json:"builder"`
	Title   string     `json:"title"`
	Notes   string     `json:"notes"`
	Coil    coil.Input `json:"coil"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Coil Build Sheet"
	}

	res, err := coil.Calculate(input.Coil)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	d := res.Display()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Builder: %s", input.Builder))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Build")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Material: %s", input.Coil.Material))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Wire diameter: %s mm", d.WireDiameterMM))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Wraps: %d on %.1f mm, legs %.1f mm",
		input.Coil.Wraps, input.Coil.InnerDiameterMM, input.Coil.LegLengthMM))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Results")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Resistance: %s Ohm", d.ResistanceOhm))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Current at %.1f V: %s A", input.Coil.VoltageV, d.CurrentA))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Power: %s W", d.PowerW))
	pdf.Ln(6)
	if res.ExceedsLimit {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 6, "WARNING: draw exceeds the battery current limit")
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 11)
	}
	if input.Notes != "" {
		pdf.Ln(4)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"coil-build.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
