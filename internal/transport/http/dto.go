package http

import (
	"time"

	"portfolio/internal/contrib"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error errorBody `json:"error"`
}

type ProfileDTO struct {
	UserID     string     `json:"user_id"`
	Name       string     `json:"name"`
	Email      string     `json:"email,omitempty"`
	ResumeURL  string     `json:"resume_url,omitempty"`
	GitHub     string     `json:"github,omitempty"`
	LeetCode   string     `json:"leetcode,omitempty"`
	CodeChef   string     `json:"codechef,omitempty"`
	Codeforces string     `json:"codeforces,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

type ProfilePatchRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	ResumeURL  *string `json:"resume_url"`
	GitHub     *string `json:"github"`
	LeetCode   *string `json:"leetcode"`
	CodeChef   *string `json:"codechef"`
	Codeforces *string `json:"codeforces"`
}

type ProfileResponse struct {
	Profile ProfileDTO `json:"profile"`
}

type PullRequestDTO struct {
	ID           string    `json:"id"`
	Repository   string    `json:"repository"`
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	Additions    int       `json:"additions"`
	Deletions    int       `json:"deletions"`
	ChangedFiles int       `json:"changed_files"`
	OpenedAt     time.Time `json:"opened_at"`
	Status       string    `json:"status"`
	MergedBy     string    `json:"merged_by,omitempty"`
	Selected     bool      `json:"selected"`
}

type ContributionsResponse struct {
	View          contrib.View              `json:"view"`
	Summary       contrib.Summary           `json:"summary"`
	ByRepository  []contrib.RepositoryCount `json:"by_repository"`
	ByStatus      []contrib.StatusCount     `json:"by_status"`
	TotalFiltered int                       `json:"total_filtered"`
	PageCount     int                       `json:"page_count"`
	PullRequests  []PullRequestDTO          `json:"pull_requests"`
}
