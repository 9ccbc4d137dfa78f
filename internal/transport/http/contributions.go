package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"portfolio/internal/contrib"

	"github.com/go-chi/chi/v5"
)

// handleContributions renders the contribution list. The query carries the
// client's current view followed by the events to apply to it:
// reset, toggle_repository, toggle_state, remove_repository, remove_state
// and select, in that order.
func (h *Handler) handleContributions(w http.ResponseWriter, r *http.Request) {
	view, err := h.viewFromQuery(r.URL.Query())
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	listing, err := h.contributionsService.Contributions(r.Context(), chi.URLParam(r, "userID"), view)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listingToDto(listing))
}

func (h *Handler) viewFromQuery(q url.Values) (contrib.View, error) {
	view := contrib.NewView(h.pageSize)

	for _, repo := range q["repository"] {
		if repo != "" && !slices.Contains(view.Filters.Repositories, repo) {
			view.Filters.Repositories = append(view.Filters.Repositories, repo)
		}
	}
	for _, raw := range q["state"] {
		st, err := parseStatus(raw)
		if err != nil {
			return contrib.View{}, err
		}
		if !slices.Contains(view.Filters.States, st) {
			view.Filters.States = append(view.Filters.States, st)
		}
	}

	if raw := q.Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			return contrib.View{}, errors.New("page_size must be a positive integer")
		}
		view = view.SetPageSize(size)
	}
	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return contrib.View{}, errors.New("page must be a positive integer")
		}
		view = view.SetPage(page)
	}
	view.Selected = q.Get("selected")

	if reset, _ := strconv.ParseBool(q.Get("reset")); reset {
		view = view.Reset()
	}
	if repo := q.Get("toggle_repository"); repo != "" {
		view = view.ToggleRepository(repo)
	}
	if raw := q.Get("toggle_state"); raw != "" {
		st, err := parseStatus(raw)
		if err != nil {
			return contrib.View{}, err
		}
		view = view.ToggleState(st)
	}
	if repo := q.Get("remove_repository"); repo != "" {
		view = view.RemoveRepository(repo)
	}
	if raw := q.Get("remove_state"); raw != "" {
		st, err := parseStatus(raw)
		if err != nil {
			return contrib.View{}, err
		}
		view = view.RemoveState(st)
	}
	if id := q.Get("select"); id != "" {
		view = view.Select(id)
	}

	return view, nil
}

func parseStatus(raw string) (contrib.Status, error) {
	st, ok := contrib.ParseStatus(raw)
	if !ok {
		return "", fmt.Errorf("unknown state %q", raw)
	}
	return st, nil
}
