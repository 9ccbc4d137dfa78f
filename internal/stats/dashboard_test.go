package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildDashboard_PartialData(t *testing.T) {
	cf := decode[CodeforcesPayload](t, `{
		"username": "cf",
		"user_info": {"rating": 1650, "avatar": "https://cf/avatar.png"},
		"user_rating": [{"ratingUpdateTimeSeconds": 1704067200, "newRating": 1650}]
	}`)

	got := BuildDashboard(nil, nil, cf, AllPlatforms(), time.UTC)

	assert.Equal(t, "https://cf/avatar.png", got.Avatar)
	assert.Len(t, got.Ratings, 3)
	assert.Len(t, got.Solved, 3)
	assert.Len(t, got.Details, 3)
	assert.Empty(t, got.Difficulty)
	assert.Len(t, got.History, 1)
	assert.Nil(t, got.History[0].CodeChef)
}

func TestBuildDashboard_DisabledPlatformsLeaveHistory(t *testing.T) {
	lc := decode[LeetCodePayload](t, leetCodeBody)
	cc := decode[CodeChefPayload](t, `{"all_rating": [{"end_date": "2024-01-01 20:00:00", "rating": "1500"}]}`)
	cf := decode[CodeforcesPayload](t, `{"user_rating": [{"ratingUpdateTimeSeconds": 1704067200, "newRating": 1400}]}`)

	got := BuildDashboard(lc, cc, cf, EnabledPlatforms{CodeChef: true}, nil)

	assert.Len(t, got.Ratings, 1)
	assert.Empty(t, got.Difficulty)
	if assert.Len(t, got.History, 1) {
		assert.Equal(t, 1500, *got.History[0].CodeChef)
		assert.Nil(t, got.History[0].Codeforces)
	}
}
