package export

import (
	"encoding/json"
	"net/http"

	coil "github.com/tucommenceapousser/coil-making/internal/calc/coil"
	material "github.com/tucommenceapousser/coil-making/internal/material"
)

type Handler struct{}

// Download runs a full calculation and streams the serialized profile as a
// plain-text attachment.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	var input coil.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := coil.Calculate(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	mat, err := material.Lookup(input.Material)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	doc := Serialize(BuildProfile(mat, res))

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("Content-Disposition", "attachment; filename=\"coil-profile.ini\"")
	w.Write([]byte(doc))
}
