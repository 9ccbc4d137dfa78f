package stats

import "time"

// Dashboard is the complete coding-profile view for one user.
type Dashboard struct {
	Enabled    EnabledPlatforms     `json:"enabled"`
	Avatar     string               `json:"avatar,omitempty"`
	Details    []PlatformDetail     `json:"details"`
	Ratings    []PlatformSnapshot   `json:"ratings"`
	Solved     []SolvedTotal        `json:"solved"`
	Difficulty []DifficultyBucket   `json:"difficulty"`
	History    []RatingHistoryPoint `json:"history"`
}

// BuildDashboard assembles every series from whichever payloads are present.
// History only carries lines for enabled platforms.
func BuildDashboard(lc *LeetCodePayload, cc *CodeChefPayload, cf *CodeforcesPayload, enabled EnabledPlatforms, loc *time.Location) Dashboard {
	var (
		ccHistory []CodeChefRating
		cfHistory []CodeforcesRating
		avatar    string
	)
	if cc != nil && enabled.CodeChef {
		ccHistory = cc.AllRating
	}
	if cf != nil {
		avatar = cf.UserInfo.Avatar.String()
		if enabled.Codeforces {
			cfHistory = cf.UserRating
		}
	}

	difficulty := []DifficultyBucket{}
	if enabled.LeetCode {
		difficulty = DifficultyBreakdown(lc)
	}

	return Dashboard{
		Enabled:    enabled,
		Avatar:     avatar,
		Details:    PlatformDetails(lc, cc, cf, enabled),
		Ratings:    MergeRatingSnapshot(lc, cc, cf, enabled),
		Solved:     MergeSolvedTotals(lc, cc, cf, enabled),
		Difficulty: difficulty,
		History:    MergeRatingHistoryIn(loc, ccHistory, cfHistory),
	}
}
