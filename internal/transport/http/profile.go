package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleProfileGet(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profilesService.GetProfile(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ProfileResponse{Profile: profileToDto(profile)})
}

func (h *Handler) handleProfilePut(w http.ResponseWriter, r *http.Request) {
	var dto ProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeBadRequest(w, "invalid JSON")
		return
	}

	userID := chi.URLParam(r, "userID")
	if dto.UserID != "" && dto.UserID != userID {
		writeBadRequest(w, "user_id does not match path")
		return
	}

	stored, err := h.profilesService.PutProfile(r.Context(), profileFromDto(userID, dto))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ProfileResponse{Profile: profileToDto(stored)})
}

func (h *Handler) handleProfilePatch(w http.ResponseWriter, r *http.Request) {
	var req ProfilePatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON")
		return
	}

	merged, err := h.profilesService.UpdateProfile(r.Context(), chi.URLParam(r, "userID"), patchFromDto(req))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ProfileResponse{Profile: profileToDto(merged)})
}
