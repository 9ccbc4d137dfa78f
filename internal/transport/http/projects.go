package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleProjects(w http.ResponseWriter, r *http.Request) {
	summary, err := h.projectsService.Projects(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
