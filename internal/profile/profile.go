package profile

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	auth "github.com/tucommenceapousser/coil-making/internal/auth"
	repo "github.com/tucommenceapousser/coil-making/internal/repo"
)

type ProfileHandler struct {
	Repo repo.Repository
}

type UpdateProfileRequest struct {
	Login       string `json:"login"`
	Description string `json:"description"`
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if idStr, ok := vars["id"]; ok && idStr != "" {
		targetID, err := strconv.Atoi(idStr)
		if err != nil {
			http.Error(w, "Invalid id", http.StatusBadRequest)
			return
		}
		prof, err := h.Repo.GetProfileByID(r.Context(), targetID)
		if err != nil {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(prof)
		return
	}

	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	prof, err := h.Repo.GetProfileByID(r.Context(), userID)
	if err != nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(prof)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := h.Repo.UpdateProfile(r.Context(), userID, req.Login, req.Description); err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
