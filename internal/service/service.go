package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio/internal/contrib"
	"portfolio/internal/domain"
	"portfolio/internal/projects"
	"portfolio/internal/stats"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name=ProfileStorage --output=mocks
//go:generate mockery --name=Upstream --output=mocks

type ProfileStorage interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	PutProfile(ctx context.Context, profile domain.Profile) error
	MergeProfile(ctx context.Context, userID string, patch domain.ProfilePatch) error
}

type Upstream interface {
	LeetCode(ctx context.Context, handle string) (*stats.LeetCodePayload, error)
	CodeChef(ctx context.Context, handle string) (*stats.CodeChefPayload, error)
	Codeforces(ctx context.Context, handle string) (*stats.CodeforcesPayload, error)
	Contributions(ctx context.Context, handle string) ([]contrib.Record, error)
	Projects(ctx context.Context, handle string) (*projects.Payload, error)
}

type txManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	profiles ProfileStorage
	upstream Upstream
	tx       txManager
	log      *zap.SugaredLogger
	loc      *time.Location
}

func NewService(profiles ProfileStorage, upstream Upstream, tx txManager, log *zap.SugaredLogger, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		profiles: profiles,
		upstream: upstream,
		tx:       tx,
		log:      log.Named("service"),
		loc:      loc,
	}
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profiles.GetProfile(ctx, userID)
}

func (s *Service) PutProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error) {
	profile = normalizeProfile(profile)
	if profile.ID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidProfile)
	}
	if profile.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidProfile)
	}

	var stored *domain.Profile
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.profiles.PutProfile(ctx, profile); err != nil {
			return err
		}
		var err error
		stored, err = s.profiles.GetProfile(ctx, profile.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return stored, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, patch domain.ProfilePatch) (*domain.Profile, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidProfile)
	}
	patch = normalizePatch(patch)
	if patch.Name != nil && *patch.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be blank", domain.ErrInvalidProfile)
	}
	if patch.Empty() {
		return s.profiles.GetProfile(ctx, userID)
	}

	var merged *domain.Profile
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		_, err := s.profiles.GetProfile(ctx, userID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			created := patch.Apply(domain.Profile{ID: userID})
			if created.Name == "" {
				return fmt.Errorf("%w: name is required to create a profile", domain.ErrInvalidProfile)
			}
			err = s.profiles.PutProfile(ctx, created)
		case err == nil:
			err = s.profiles.MergeProfile(ctx, userID, patch)
		}
		if err != nil {
			return err
		}

		merged, err = s.profiles.GetProfile(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return merged, nil
}

// Dashboard fetches every enabled platform with a configured handle at once
// and merges whatever arrived. A failed platform is logged and rendered as
// having no data.
func (s *Service) Dashboard(ctx context.Context, userID string, enabled stats.EnabledPlatforms) (stats.Dashboard, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return stats.Dashboard{}, err
	}

	var (
		lc *stats.LeetCodePayload
		cc *stats.CodeChefPayload
		cf *stats.CodeforcesPayload
		g  errgroup.Group
	)

	if enabled.LeetCode {
		fetchPlatform(ctx, &g, s.log, stats.LeetCode, profile.LeetCode, &lc, s.upstream.LeetCode)
	}
	if enabled.CodeChef {
		fetchPlatform(ctx, &g, s.log, stats.CodeChef, profile.CodeChef, &cc, s.upstream.CodeChef)
	}
	if enabled.Codeforces {
		fetchPlatform(ctx, &g, s.log, stats.Codeforces, profile.Codeforces, &cf, s.upstream.Codeforces)
	}

	// Fetches report their own failures, so Wait only joins them.
	if err := g.Wait(); err != nil {
		s.log.Errorw("platform fetch group failed", "user_id", userID, "error", err)
	}

	return stats.BuildDashboard(lc, cc, cf, enabled, s.loc), nil
}

// fetchPlatform schedules one upstream call writing into its own slot. An
// unset handle skips the call; errors never reach the group.
func fetchPlatform[T any](
	ctx context.Context,
	g *errgroup.Group,
	log *zap.SugaredLogger,
	platform stats.Platform,
	handle string,
	slot **T,
	fetch func(context.Context, string) (*T, error),
) {
	if handle == "" {
		return
	}
	g.Go(func() error {
		payload, err := fetch(ctx, handle)
		if err != nil {
			log.Warnw("platform fetch failed", "platform", platform, "handle", handle, "error", err)
			return nil
		}
		*slot = payload
		return nil
	})
}

// Contributions renders the pull-request list of the profile's GitHub handle
// for the given view. An upstream failure yields an empty list.
func (s *Service) Contributions(ctx context.Context, userID string, view contrib.View) (contrib.Listing, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return contrib.Listing{}, err
	}
	if profile.GitHub == "" {
		return contrib.Listing{}, fmt.Errorf("github: %w", domain.ErrNoHandle)
	}

	records, err := s.upstream.Contributions(ctx, profile.GitHub)
	if err != nil {
		s.log.Warnw("contributions fetch failed", "handle", profile.GitHub, "error", err)
		records = nil
	}

	return contrib.Render(records, view), nil
}

func (s *Service) Projects(ctx context.Context, userID string) (projects.Summary, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return projects.Summary{}, err
	}
	if profile.GitHub == "" {
		return projects.Summary{}, fmt.Errorf("github: %w", domain.ErrNoHandle)
	}

	payload, err := s.upstream.Projects(ctx, profile.GitHub)
	if err != nil {
		s.log.Warnw("projects fetch failed", "handle", profile.GitHub, "error", err)
		return projects.Summary{}, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}

	return projects.Summarize(*payload), nil
}

func normalizeProfile(p domain.Profile) domain.Profile {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.ResumeURL = strings.TrimSpace(p.ResumeURL)
	p.GitHub = normalizeHandle(p.GitHub)
	p.LeetCode = normalizeHandle(p.LeetCode)
	p.CodeChef = normalizeHandle(p.CodeChef)
	p.Codeforces = normalizeHandle(p.Codeforces)
	return p
}

func normalizePatch(p domain.ProfilePatch) domain.ProfilePatch {
	apply := func(v *string, fn func(string) string) *string {
		if v == nil {
			return nil
		}
		out := fn(*v)
		return &out
	}
	p.Name = apply(p.Name, strings.TrimSpace)
	p.Email = apply(p.Email, strings.TrimSpace)
	p.ResumeURL = apply(p.ResumeURL, strings.TrimSpace)
	p.GitHub = apply(p.GitHub, normalizeHandle)
	p.LeetCode = apply(p.LeetCode, normalizeHandle)
	p.CodeChef = apply(p.CodeChef, normalizeHandle)
	p.Codeforces = apply(p.Codeforces, normalizeHandle)
	return p
}

// normalizeHandle drops surrounding blanks and a leading "@".
func normalizeHandle(h string) string {
	return strings.TrimPrefix(strings.TrimSpace(h), "@")
}
