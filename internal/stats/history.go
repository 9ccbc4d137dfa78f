package stats

import (
	"cmp"
	"slices"
	"time"
)

// Date is a calendar day with no time-of-day or zone attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) Compare(other Date) int {
	if c := cmp.Compare(d.Year, other.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.Month, other.Month); c != 0 {
		return c
	}
	return cmp.Compare(d.Day, other.Day)
}

func (d Date) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// RatingHistoryPoint holds every platform rating recorded on one day. LeetCode
// reports no history and never appears here.
type RatingHistoryPoint struct {
	Date       Date `json:"date"`
	CodeChef   *int `json:"codechef,omitempty"`
	Codeforces *int `json:"codeforces,omitempty"`
}

// MergeRatingHistory merges both rating series on calendar days in UTC.
func MergeRatingHistory(cc []CodeChefRating, cf []CodeforcesRating) []RatingHistoryPoint {
	return MergeRatingHistoryIn(time.UTC, cc, cf)
}

// MergeRatingHistoryIn merges both rating series on calendar days in loc.
// Points falling on the same day are coalesced into one: a later entry of the
// same platform replaces an earlier one, while the other platform's rating on
// that day is kept. The result is sorted by date and has unique dates.
// Entries with an unreadable date or rating are skipped.
func MergeRatingHistoryIn(loc *time.Location, cc []CodeChefRating, cf []CodeforcesRating) []RatingHistoryPoint {
	if loc == nil {
		loc = time.UTC
	}

	h := newHistory(len(cc) + len(cf))
	h.addCodeChef(loc, cc)
	h.addCodeforces(loc, cf)
	return h.points()
}

type history struct {
	byDate map[Date]*RatingHistoryPoint
}

func newHistory(size int) *history {
	return &history{byDate: make(map[Date]*RatingHistoryPoint, size)}
}

func (h *history) at(d Date) *RatingHistoryPoint {
	p, ok := h.byDate[d]
	if !ok {
		p = &RatingHistoryPoint{Date: d}
		h.byDate[d] = p
	}
	return p
}

func (h *history) addCodeChef(loc *time.Location, entries []CodeChefRating) {
	for _, e := range entries {
		t, ok := e.timestamp(loc)
		if !ok || !e.Rating.Valid {
			continue
		}
		rating := e.Rating.Value
		h.at(DateOf(t.In(loc))).CodeChef = &rating
	}
}

func (h *history) addCodeforces(loc *time.Location, entries []CodeforcesRating) {
	for _, e := range entries {
		t, ok := e.timestamp(loc)
		if !ok || !e.NewRating.Valid {
			continue
		}
		rating := e.NewRating.Value
		h.at(DateOf(t)).Codeforces = &rating
	}
}

func (h *history) points() []RatingHistoryPoint {
	out := make([]RatingHistoryPoint, 0, len(h.byDate))
	for _, p := range h.byDate {
		out = append(out, *p)
	}
	slices.SortFunc(out, func(a, b RatingHistoryPoint) int {
		return a.Date.Compare(b.Date)
	})
	return out
}
