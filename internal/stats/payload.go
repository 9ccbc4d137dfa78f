package stats

import "time"

// LeetCodePayload is the body of GET /leetcode/{handle}, already unwrapped
// from its "message" envelope.
type LeetCodePayload struct {
	MatchedUser      LeetCodeUser     `json:"matchedUser"`
	ContestRanking   LeetCodeContest  `json:"userContestRanking"`
	QuestionProgress LeetCodeProgress `json:"userProfileUserQuestionProgressV2"`
}

type LeetCodeUser struct {
	Username Text `json:"username"`
}

func (u *LeetCodeUser) UnmarshalJSON(data []byte) error {
	type plain LeetCodeUser
	decodeObject(data, (*plain)(u))
	return nil
}

type LeetCodeContest struct {
	Rating        Int `json:"rating"`
	GlobalRanking Int `json:"globalRanking"`
}

func (c *LeetCodeContest) UnmarshalJSON(data []byte) error {
	type plain LeetCodeContest
	decodeObject(data, (*plain)(c))
	return nil
}

type LeetCodeProgress struct {
	NumAccepted List[LeetCodeDifficulty] `json:"numAcceptedQuestions"`
}

func (p *LeetCodeProgress) UnmarshalJSON(data []byte) error {
	type plain LeetCodeProgress
	decodeObject(data, (*plain)(p))
	return nil
}

type LeetCodeDifficulty struct {
	Difficulty Text `json:"difficulty"`
	Count      Int  `json:"count"`
}

type CodeChefPayload struct {
	Username       Text                 `json:"username"`
	Rating         Int                  `json:"rating"`
	Stars          Text                 `json:"stars"`
	GlobalRank     Int                  `json:"global_rank"`
	CountryRank    Int                  `json:"country_rank"`
	ProblemsSolved Int                  `json:"problems_solved"`
	AllRating      List[CodeChefRating] `json:"all_rating"`
}

// CodeChefRating is one contest result. EndDate is a naive local timestamp
// such as "2024-01-03 22:00:00".
type CodeChefRating struct {
	EndDate Text `json:"end_date"`
	Rating  Int  `json:"rating"`
}

var codeChefDateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (r CodeChefRating) timestamp(loc *time.Location) (time.Time, bool) {
	for _, layout := range codeChefDateLayouts {
		if t, err := time.ParseInLocation(layout, r.EndDate.String(), loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

type CodeforcesPayload struct {
	Username            Text                   `json:"username"`
	UserInfo            CodeforcesUserInfo     `json:"user_info"`
	TotalProblemsSolved Int                    `json:"total_problems_solved"`
	UserRating          List[CodeforcesRating] `json:"user_rating"`
}

type CodeforcesUserInfo struct {
	Rating    Int  `json:"rating"`
	MaxRating Int  `json:"maxRating"`
	Rank      Text `json:"rank"`
	Avatar    Text `json:"avatar"`
}

func (u *CodeforcesUserInfo) UnmarshalJSON(data []byte) error {
	type plain CodeforcesUserInfo
	decodeObject(data, (*plain)(u))
	return nil
}

type CodeforcesRating struct {
	RatingUpdateTimeSeconds Int `json:"ratingUpdateTimeSeconds"`
	NewRating               Int `json:"newRating"`
}

func (r CodeforcesRating) timestamp(loc *time.Location) (time.Time, bool) {
	if !r.RatingUpdateTimeSeconds.Valid {
		return time.Time{}, false
	}
	return time.Unix(int64(r.RatingUpdateTimeSeconds.Value), 0).In(loc), true
}
