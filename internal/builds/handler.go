package builds

import (
	"encoding/json"
	"net/http"

	auth "github.com/tucommenceapousser/coil-making/internal/auth"
	coil "github.com/tucommenceapousser/coil-making/internal/calc/coil"
	repo "github.com/tucommenceapousser/coil-making/internal/repo"
)

type Handler struct {
	Repo repo.Repository
}

type SaveRequest struct {
	Name string     `json:"name"`
	Coil coil.Input `json:"coil"`
}

// Save calculates the build first so the stored record carries the resolved
// wire diameter and resistance, not just the raw inputs.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Name required", http.StatusBadRequest)
		return
	}

	res, err := coil.Calculate(req.Coil)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	id, err := h.Repo.SaveBuild(r.Context(), userID, repo.Build{
		Name:            req.Name,
		Material:        req.Coil.Material,
		WireDiameterMM:  res.WireDiameterMM,
		Wraps:           req.Coil.Wraps,
		InnerDiameterMM: req.Coil.InnerDiameterMM,
		LegLengthMM:     req.Coil.LegLengthMM,
		VoltageV:        req.Coil.VoltageV,
		ResistanceOhm:   res.ResistanceOhm,
	})
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int{"id": id})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	list, err := h.Repo.ListBuilds(r.Context(), userID)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}
