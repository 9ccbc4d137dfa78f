package http

import (
	"errors"
	"net/http"

	"portfolio/internal/contrib"
	"portfolio/internal/domain"
)

func profileFromDto(userID string, p ProfileDTO) domain.Profile {
	return domain.Profile{
		ID:         userID,
		Name:       p.Name,
		Email:      p.Email,
		ResumeURL:  p.ResumeURL,
		GitHub:     p.GitHub,
		LeetCode:   p.LeetCode,
		CodeChef:   p.CodeChef,
		Codeforces: p.Codeforces,
	}
}

func patchFromDto(p ProfilePatchRequest) domain.ProfilePatch {
	return domain.ProfilePatch{
		Name:       p.Name,
		Email:      p.Email,
		ResumeURL:  p.ResumeURL,
		GitHub:     p.GitHub,
		LeetCode:   p.LeetCode,
		CodeChef:   p.CodeChef,
		Codeforces: p.Codeforces,
	}
}

func profileToDto(p *domain.Profile) ProfileDTO {
	return ProfileDTO{
		UserID:     p.ID,
		Name:       p.Name,
		Email:      p.Email,
		ResumeURL:  p.ResumeURL,
		GitHub:     p.GitHub,
		LeetCode:   p.LeetCode,
		CodeChef:   p.CodeChef,
		Codeforces: p.Codeforces,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func listingToDto(l contrib.Listing) ContributionsResponse {
	prs := make([]PullRequestDTO, 0, len(l.Items))
	for _, item := range l.Items {
		prs = append(prs, PullRequestDTO{
			ID:           item.Record.ID,
			Repository:   item.Record.Repository,
			Title:        item.Record.Title,
			URL:          item.Record.URL,
			Additions:    item.Record.Additions,
			Deletions:    item.Record.Deletions,
			ChangedFiles: item.Record.ChangedFiles,
			OpenedAt:     item.Record.OpenedAt,
			Status:       string(item.Status),
			MergedBy:     item.Record.MergedBy,
			Selected:     item.Selected,
		})
	}

	view := l.View
	if view.Filters.Repositories == nil {
		view.Filters.Repositories = []string{}
	}
	if view.Filters.States == nil {
		view.Filters.States = []contrib.Status{}
	}

	return ContributionsResponse{
		View:          view,
		Summary:       l.Summary,
		ByRepository:  l.ByRepository,
		ByStatus:      l.ByStatus,
		TotalFiltered: l.TotalFiltered,
		PageCount:     l.PageCount,
		PullRequests:  prs,
	}
}

func mappingDomainErrors(err error) (int, ErrorResponse) {
	var code string
	var status int

	switch {
	case errors.Is(err, domain.ErrInvalidProfile):
		status = http.StatusBadRequest
		code = "INVALID_PROFILE"

	case errors.Is(err, domain.ErrNoHandle):
		status = http.StatusNotFound
		code = "NO_HANDLE"

	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		code = "NOT_FOUND"

	case errors.Is(err, domain.ErrUnavailable):
		status = http.StatusBadGateway
		code = "UPSTREAM_UNAVAILABLE"

	default:
		status = http.StatusInternalServerError
		code = "INTERNAL"
	}

	return status, ErrorResponse{
		Error: errorBody{
			Code:    code,
			Message: err.Error(),
		},
	}
}
