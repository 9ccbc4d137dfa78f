package stats

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v int) *int { return &v }

func unix(y int, m time.Month, d, hh int) Int {
	return IntOf(int(time.Date(y, m, d, hh, 0, 0, 0, time.UTC).Unix()))
}

func TestMergeRatingHistory_CoalescesSameDay(t *testing.T) {
	cc := []CodeChefRating{{EndDate: "2024-01-01 22:00:00", Rating: IntOf(1500)}}
	cf := []CodeforcesRating{{RatingUpdateTimeSeconds: unix(2024, 1, 1, 0), NewRating: IntOf(1400)}}

	got := MergeRatingHistory(cc, cf)

	want := []RatingHistoryPoint{
		{Date: Date{2024, time.January, 1}, CodeChef: ptr(1500), Codeforces: ptr(1400)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeRatingHistory() mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeRatingHistory_SortedAndInterleaved(t *testing.T) {
	cc := []CodeChefRating{
		{EndDate: "2024-03-05 20:00:00", Rating: IntOf(1600)},
		{EndDate: "2024-01-10 20:00:00", Rating: IntOf(1500)},
	}
	cf := []CodeforcesRating{
		{RatingUpdateTimeSeconds: unix(2024, 2, 1, 18), NewRating: IntOf(1350)},
		{RatingUpdateTimeSeconds: unix(2024, 3, 5, 9), NewRating: IntOf(1420)},
	}

	got := MergeRatingHistory(cc, cf)

	want := []RatingHistoryPoint{
		{Date: Date{2024, time.January, 10}, CodeChef: ptr(1500)},
		{Date: Date{2024, time.February, 1}, Codeforces: ptr(1350)},
		{Date: Date{2024, time.March, 5}, CodeChef: ptr(1600), Codeforces: ptr(1420)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeRatingHistory() mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeRatingHistory_LastWriterWinsWithinPlatform(t *testing.T) {
	cf := []CodeforcesRating{
		{RatingUpdateTimeSeconds: unix(2024, 5, 1, 8), NewRating: IntOf(1200)},
		{RatingUpdateTimeSeconds: unix(2024, 5, 1, 20), NewRating: IntOf(1260)},
	}
	cc := []CodeChefRating{{EndDate: "2024-05-01", Rating: IntOf(1700)}}

	got := MergeRatingHistory(cc, cf)

	require.Len(t, got, 1)
	assert.Equal(t, 1260, *got[0].Codeforces)
	assert.Equal(t, 1700, *got[0].CodeChef)
}

func TestMergeRatingHistory_SkipsUnreadableEntries(t *testing.T) {
	cc := []CodeChefRating{
		{EndDate: "yesterday", Rating: IntOf(1500)},
		{EndDate: "2024-01-02 10:00:00"},
	}
	cf := []CodeforcesRating{{NewRating: IntOf(1400)}}

	got := MergeRatingHistory(cc, cf)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMergeRatingHistory_UsesLocationForDayBoundary(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*3600+1800)
	cf := []CodeforcesRating{{RatingUpdateTimeSeconds: unix(2024, 1, 1, 20), NewRating: IntOf(1400)}}

	utc := MergeRatingHistory(nil, cf)
	local := MergeRatingHistoryIn(kolkata, nil, cf)

	require.Len(t, utc, 1)
	require.Len(t, local, 1)
	assert.Equal(t, Date{2024, time.January, 1}, utc[0].Date)
	assert.Equal(t, Date{2024, time.January, 2}, local[0].Date)
}

func TestMergeRatingHistory_OrderOfPlatformsDoesNotMatter(t *testing.T) {
	cc := []CodeChefRating{
		{EndDate: "2024-01-01 10:00:00", Rating: IntOf(1500)},
		{EndDate: "2024-01-03 10:00:00", Rating: IntOf(1550)},
	}
	cf := []CodeforcesRating{
		{RatingUpdateTimeSeconds: unix(2024, 1, 1, 5), NewRating: IntOf(1400)},
		{RatingUpdateTimeSeconds: unix(2024, 1, 2, 5), NewRating: IntOf(1410)},
	}

	ab := newHistory(0)
	ab.addCodeChef(time.UTC, cc)
	ab.addCodeforces(time.UTC, cf)

	ba := newHistory(0)
	ba.addCodeforces(time.UTC, cf)
	ba.addCodeChef(time.UTC, cc)

	if diff := cmp.Diff(ab.points(), ba.points()); diff != "" {
		t.Errorf("merge depends on platform order (-ab +ba):\n%s", diff)
	}
}

func TestMergeRatingHistory_UniqueDates(t *testing.T) {
	var (
		cc []CodeChefRating
		cf []CodeforcesRating
	)
	start := time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 40; i++ {
		at := start.Add(time.Duration(i) * 7 * time.Hour)
		cc = append(cc, CodeChefRating{EndDate: Text(at.Format("2006-01-02 15:04:05")), Rating: IntOf(1000 + i)})
		cf = append(cf, CodeforcesRating{RatingUpdateTimeSeconds: IntOf(int(at.Add(3 * time.Hour).Unix())), NewRating: IntOf(900 + i)})
	}

	got := MergeRatingHistory(cc, cf)

	seen := make(map[Date]struct{}, len(got))
	for i, p := range got {
		_, dup := seen[p.Date]
		assert.False(t, dup, "duplicate date %s", p.Date)
		seen[p.Date] = struct{}{}
		if i > 0 {
			assert.Negative(t, got[i-1].Date.Compare(p.Date))
		}
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	out, err := Date{2024, time.February, 9}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-09"`, string(out))
}
