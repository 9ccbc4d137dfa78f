package contrib

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	got := Summarize(fixtures())

	want := Summary{Total: 5, Open: 2, Closed: 1, Merged: 2, RepositoriesContributed: 3}
	assert.Equal(t, want, got)
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestByRepository(t *testing.T) {
	got := ByRepository(fixtures(), FilterSet{Repositories: []string{"chi"}})

	want := []RepositoryCount{
		{Repository: "go", PullRequests: 2},
		{Repository: "kubernetes", PullRequests: 2},
		{Repository: "chi", PullRequests: 1, Highlighted: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ByRepository() mismatch (-want +got):\n%s", diff)
	}
}

func TestByStatus(t *testing.T) {
	got := ByStatus(Summary{Open: 2, Closed: 1, Merged: 3}, FilterSet{States: []Status{StatusClosed}})

	want := []StatusCount{
		{Status: StatusOpen, Count: 2},
		{Status: StatusClosed, Count: 1, Highlighted: true},
		{Status: StatusMerged, Count: 3},
	}
	assert.Equal(t, want, got)
}

func TestRender_CountersIgnoreFilters(t *testing.T) {
	records := fixtures()

	unfiltered := Render(records, NewView(10))
	filtered := Render(records, NewView(10).ToggleRepository("go").ToggleState(StatusMerged))

	assert.Equal(t, unfiltered.Summary, filtered.Summary)
	assert.Equal(t, 5, unfiltered.TotalFiltered)
	assert.Equal(t, 1, filtered.TotalFiltered)
	require.Len(t, filtered.Items, 1)
	assert.Equal(t, "2", filtered.Items[0].Record.ID)
	assert.Equal(t, StatusMerged, filtered.Items[0].Status)
}

func TestRender_PaginationAndSelection(t *testing.T) {
	records := make([]Record, 25)
	for i := range records {
		records[i] = Record{ID: fmt.Sprint(i), Repository: "repo", State: "open"}
	}

	got := Render(records, NewView(10).SetPage(3).Select("22"))

	assert.Equal(t, 3, got.PageCount)
	require.Len(t, got.Items, 5)
	assert.Equal(t, "20", got.Items[0].Record.ID)
	for _, item := range got.Items {
		assert.Equal(t, item.Record.ID == "22", item.Selected)
	}
}

func TestRender_ClampsPagePastEnd(t *testing.T) {
	got := Render(fixtures(), View{Page: 9, PageSize: 2})

	assert.Equal(t, 3, got.View.Page)
	assert.Len(t, got.Items, 1)
}

func TestRender_Empty(t *testing.T) {
	got := Render(nil, View{})

	assert.Equal(t, View{Page: 1, PageSize: DefaultPageSize}, got.View)
	assert.Empty(t, got.Items)
	assert.Empty(t, got.ByRepository)
	assert.Len(t, got.ByStatus, 3)
}
