package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	coil "github.com/tucommenceapousser/coil-making/internal/calc/coil"
)

type Handler struct{}

type CoilImportResult struct {
	Count   int           `json:"count"`
	Results []coil.Result `json:"results"`
}

// Coil imports a sheet of coil builds and calculates each row. Rows that do
// not parse or calculate are skipped rather than failing the whole sheet.
func (h *Handler) Coil(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []coil.Result
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 5 {
			continue
		}
		input, err := parseCoilRow(row)
		if err != nil {
			continue
		}
		res, err := coil.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CoilImportResult{Count: len(results), Results: results})
}

func parseCoilRow(row []string) (coil.Input, error) {
	// expected: material, wire_diameter_mm, wraps, inner_diameter_mm,
	// leg_length_mm, voltage_v(optional), current_limit_a(optional)
	if len(row) < 5 {
		return coil.Input{}, fmt.Errorf("bad row")
	}
	mat := row[0]
	d, err := toFloat(row[1])
	if err != nil {
		return coil.Input{}, err
	}
	wrapsF, err := toFloat(row[2])
	if err != nil {
		return coil.Input{}, err
	}
	inner, err := toFloat(row[3])
	if err != nil {
		return coil.Input{}, err
	}
	leg, err := toFloat(row[4])
	if err != nil {
		return coil.Input{}, err
	}
	voltage := 3.7
	if len(row) > 5 && row[5] != "" {
		voltage, _ = toFloat(row[5])
	}
	limit := 0.0
	if len(row) > 6 && row[6] != "" {
		limit, _ = toFloat(row[6])
	}
	return coil.Input{
		Material:        mat,
		WireDiameterMM:  d,
		Wraps:           int(wrapsF),
		InnerDiameterMM: inner,
		LegLengthMM:     leg,
		VoltageV:        voltage,
		CurrentLimitA:   limit,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
