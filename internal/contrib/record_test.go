package contrib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivedStatus(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   Status
	}{
		{name: "open", record: Record{State: "open"}, want: StatusOpen},
		{name: "closed", record: Record{State: "closed"}, want: StatusClosed},
		{name: "closed_upper_case", record: Record{State: "CLOSED"}, want: StatusClosed},
		{name: "merged_wins_over_closed", record: Record{State: "closed", MergedBy: "octocat"}, want: StatusMerged},
		{name: "merged_wins_over_open", record: Record{State: "open", MergedBy: "octocat"}, want: StatusMerged},
		{name: "unknown_state_is_open", record: Record{State: "draft"}, want: StatusOpen},
		{name: "empty_state_is_open", record: Record{}, want: StatusOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DerivedStatus(tt.record))
			assert.Equal(t, tt.want, DerivedStatus(tt.record), "must be deterministic")
		})
	}
}

func TestParseStatus(t *testing.T) {
	st, ok := ParseStatus("merged")
	assert.True(t, ok)
	assert.Equal(t, StatusMerged, st)

	_, ok = ParseStatus("draft")
	assert.False(t, ok)
}
