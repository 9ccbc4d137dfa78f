package stats

type PlatformSnapshot struct {
	Platform  Platform `json:"platform"`
	Rating    int      `json:"rating"`
	HasRating bool     `json:"has_rating"`
	Rank      int      `json:"rank,omitempty"`
	HasRank   bool     `json:"has_rank"`
	Solved    int      `json:"solved"`
}

type SolvedTotal struct {
	Platform Platform `json:"platform"`
	Solved   int      `json:"solved"`
}

type DifficultyBucket struct {
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

// PlatformDetail is the per-platform stat card. Absent values stay absent so
// clients can tell "unknown" from zero.
type PlatformDetail struct {
	Platform    Platform `json:"platform"`
	Username    string   `json:"username,omitempty"`
	Rating      Int      `json:"rating"`
	MaxRating   Int      `json:"max_rating"`
	GlobalRank  Int      `json:"global_rank"`
	CountryRank Int      `json:"country_rank"`
	Stars       string   `json:"stars,omitempty"`
	Title       string   `json:"title,omitempty"`
	Solved      Int      `json:"solved"`
}

// MergeRatingSnapshot extracts the current rating of every enabled platform.
// A nil payload contributes a zero rating rather than being dropped.
func MergeRatingSnapshot(lc *LeetCodePayload, cc *CodeChefPayload, cf *CodeforcesPayload, enabled EnabledPlatforms) []PlatformSnapshot {
	all := []PlatformSnapshot{
		snapshot(LeetCode, leetCodeRating(lc), leetCodeRank(lc), leetCodeSolved(lc)),
		snapshot(CodeChef, codeChefRating(cc), codeChefRank(cc), codeChefSolved(cc)),
		snapshot(Codeforces, codeforcesRating(cf), Int{}, codeforcesSolved(cf)),
	}
	return filterEnabled(all, enabled, func(s PlatformSnapshot) Platform { return s.Platform })
}

// MergeSolvedTotals counts solved problems per enabled platform.
func MergeSolvedTotals(lc *LeetCodePayload, cc *CodeChefPayload, cf *CodeforcesPayload, enabled EnabledPlatforms) []SolvedTotal {
	all := []SolvedTotal{
		{Platform: LeetCode, Solved: leetCodeSolved(lc).Or(0)},
		{Platform: CodeChef, Solved: codeChefSolved(cc).Or(0)},
		{Platform: Codeforces, Solved: codeforcesSolved(cf).Or(0)},
	}
	return filterEnabled(all, enabled, func(s SolvedTotal) Platform { return s.Platform })
}

// DifficultyBreakdown returns LeetCode accepted-question counts per difficulty
// as reported upstream.
func DifficultyBreakdown(lc *LeetCodePayload) []DifficultyBucket {
	if lc == nil {
		return []DifficultyBucket{}
	}
	out := make([]DifficultyBucket, 0, len(lc.QuestionProgress.NumAccepted))
	for _, bucket := range lc.QuestionProgress.NumAccepted {
		out = append(out, DifficultyBucket{
			Difficulty: bucket.Difficulty.String(),
			Count:      bucket.Count.Or(0),
		})
	}
	return out
}

func PlatformDetails(lc *LeetCodePayload, cc *CodeChefPayload, cf *CodeforcesPayload, enabled EnabledPlatforms) []PlatformDetail {
	all := []PlatformDetail{
		{Platform: LeetCode, Rating: leetCodeRating(lc), GlobalRank: leetCodeRank(lc), Solved: leetCodeSolved(lc)},
		{Platform: CodeChef, Rating: codeChefRating(cc), GlobalRank: codeChefRank(cc), Solved: codeChefSolved(cc)},
		{Platform: Codeforces, Rating: codeforcesRating(cf), Solved: codeforcesSolved(cf)},
	}

	if lc != nil {
		all[0].Username = lc.MatchedUser.Username.String()
	}
	if cc != nil {
		all[1].Username = cc.Username.String()
		all[1].Stars = cc.Stars.String()
		all[1].CountryRank = cc.CountryRank
	}
	if cf != nil {
		all[2].Username = cf.Username.String()
		all[2].MaxRating = cf.UserInfo.MaxRating
		all[2].Title = cf.UserInfo.Rank.String()
	}

	return filterEnabled(all, enabled, func(d PlatformDetail) Platform { return d.Platform })
}

func snapshot(p Platform, rating, rank, solved Int) PlatformSnapshot {
	return PlatformSnapshot{
		Platform:  p,
		Rating:    rating.Or(0),
		HasRating: rating.Valid,
		Rank:      rank.Or(0),
		HasRank:   rank.Valid,
		Solved:    solved.Or(0),
	}
}

func leetCodeRating(lc *LeetCodePayload) Int {
	if lc == nil {
		return Int{}
	}
	return lc.ContestRanking.Rating
}

func leetCodeRank(lc *LeetCodePayload) Int {
	if lc == nil {
		return Int{}
	}
	return lc.ContestRanking.GlobalRanking
}

// leetCodeSolved sums the per-difficulty buckets as reported.
func leetCodeSolved(lc *LeetCodePayload) Int {
	if lc == nil || len(lc.QuestionProgress.NumAccepted) == 0 {
		return Int{}
	}
	total := 0
	for _, bucket := range lc.QuestionProgress.NumAccepted {
		total += bucket.Count.Or(0)
	}
	return IntOf(total)
}

func codeChefRating(cc *CodeChefPayload) Int {
	if cc == nil {
		return Int{}
	}
	return cc.Rating
}

func codeChefRank(cc *CodeChefPayload) Int {
	if cc == nil {
		return Int{}
	}
	return cc.GlobalRank
}

func codeChefSolved(cc *CodeChefPayload) Int {
	if cc == nil {
		return Int{}
	}
	return cc.ProblemsSolved
}

func codeforcesRating(cf *CodeforcesPayload) Int {
	if cf == nil {
		return Int{}
	}
	return cf.UserInfo.Rating
}

func codeforcesSolved(cf *CodeforcesPayload) Int {
	if cf == nil {
		return Int{}
	}
	return cf.TotalProblemsSolved
}
