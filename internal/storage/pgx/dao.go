package pgx

import (
	"time"

	"portfolio/internal/domain"
)

type profileDAO struct {
	ID         string
	Name       string
	Email      string
	ResumeURL  string
	GitHub     string
	LeetCode   string
	CodeChef   string
	Codeforces string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (d *profileDAO) scanTargets() []any {
	return []any{
		&d.ID, &d.Name, &d.Email, &d.ResumeURL,
		&d.GitHub, &d.LeetCode, &d.CodeChef, &d.Codeforces,
		&d.CreatedAt, &d.UpdatedAt,
	}
}

func profileDAOToDomain(d profileDAO) *domain.Profile {
	createdAt, updatedAt := d.CreatedAt, d.UpdatedAt
	return &domain.Profile{
		ID:         d.ID,
		Name:       d.Name,
		Email:      d.Email,
		ResumeURL:  d.ResumeURL,
		GitHub:     d.GitHub,
		LeetCode:   d.LeetCode,
		CodeChef:   d.CodeChef,
		Codeforces: d.Codeforces,
		CreatedAt:  &createdAt,
		UpdatedAt:  &updatedAt,
	}
}
