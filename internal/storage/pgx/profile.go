package pgx

import (
	"context"
	"errors"

	"portfolio/internal/domain"

	"github.com/jackc/pgx/v5"
)

const profileColumns = `id, name, email, resume_url, github, leetcode, codechef, codeforces, created_at, updated_at`

func (s *Storage) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	const query = `
		SELECT ` + profileColumns + `
		  FROM profiles
		 WHERE id = $1;
	`

	var dao profileDAO
	err := s.getExecutor(ctx).QueryRow(ctx, query, userID).Scan(dao.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return profileDAOToDomain(dao), nil
}

// PutProfile stores the whole profile, replacing any previous one.
func (s *Storage) PutProfile(ctx context.Context, p domain.Profile) error {
	const query = `
		INSERT INTO profiles (id, name, email, resume_url, github, leetcode, codechef, codeforces)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		   SET name       = EXCLUDED.name,
		       email      = EXCLUDED.email,
		       resume_url = EXCLUDED.resume_url,
		       github     = EXCLUDED.github,
		       leetcode   = EXCLUDED.leetcode,
		       codechef   = EXCLUDED.codechef,
		       codeforces = EXCLUDED.codeforces,
		       updated_at = now();
	`

	_, err := s.getExecutor(ctx).Exec(ctx, query,
		p.ID, p.Name, p.Email, p.ResumeURL,
		p.GitHub, p.LeetCode, p.CodeChef, p.Codeforces,
	)
	return err
}

// MergeProfile writes only the non-nil patch fields, creating the profile if
// it does not exist yet.
func (s *Storage) MergeProfile(ctx context.Context, userID string, patch domain.ProfilePatch) error {
	const query = `
		INSERT INTO profiles (id, name, email, resume_url, github, leetcode, codechef, codeforces)
		VALUES ($1, COALESCE($2, ''), COALESCE($3, ''), COALESCE($4, ''),
		        COALESCE($5, ''), COALESCE($6, ''), COALESCE($7, ''), COALESCE($8, ''))
		ON CONFLICT (id) DO UPDATE
		   SET name       = COALESCE($2, profiles.name),
		       email      = COALESCE($3, profiles.email),
		       resume_url = COALESCE($4, profiles.resume_url),
		       github     = COALESCE($5, profiles.github),
		       leetcode   = COALESCE($6, profiles.leetcode),
		       codechef   = COALESCE($7, profiles.codechef),
		       codeforces = COALESCE($8, profiles.codeforces),
		       updated_at = now();
	`

	_, err := s.getExecutor(ctx).Exec(ctx, query,
		userID, patch.Name, patch.Email, patch.ResumeURL,
		patch.GitHub, patch.LeetCode, patch.CodeChef, patch.Codeforces,
	)
	return err
}
