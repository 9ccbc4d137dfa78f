package http

import (
	"net/http"
	"strconv"

	"portfolio/internal/stats"

	"github.com/go-chi/chi/v5"
)

// handleDashboard serves the coding-platform dashboard. Each platform is
// enabled unless its query flag says otherwise.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	enabled := stats.AllPlatforms()
	flags := map[stats.Platform]*bool{
		stats.LeetCode:   &enabled.LeetCode,
		stats.CodeChef:   &enabled.CodeChef,
		stats.Codeforces: &enabled.Codeforces,
	}
	for _, p := range stats.Platforms {
		raw := q.Get(p.Key())
		if raw == "" {
			continue
		}
		on, err := strconv.ParseBool(raw)
		if err != nil {
			writeBadRequest(w, p.Key()+" must be a boolean")
			return
		}
		*flags[p] = on
	}

	dashboard, err := h.statsService.Dashboard(r.Context(), chi.URLParam(r, "userID"), enabled)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboard)
}
