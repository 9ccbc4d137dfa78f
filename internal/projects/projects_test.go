package projects

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const body = `{
	"name": "Ada",
	"repos": 31,
	"stars": 120,
	"followers": 40,
	"following": 3,
	"pinned": [
		{"url": "https://github.com/ada/engine", "stars": 90, "forks": 4, "watchers": 7,
		 "langs": [{"name": "Go", "perc": "70.5%"}, {"name": "Shell", "perc": 29.5}]},
		{"url": "https://github.com/ada/site/", "stars": 5,
		 "langs": [{"name": "TypeScript", "perc": "80"}, {"name": "Go", "perc": "20"}, {"name": "CSS", "perc": "n/a"}]}
	]
}`

func TestSummarize(t *testing.T) {
	var p Payload
	require.NoError(t, json.Unmarshal([]byte(body), &p))

	got := Summarize(p)

	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, 120, got.Stars)
	assert.Equal(t, []LanguageShare{
		{Name: "Go", Value: 90.5},
		{Name: "Shell", Value: 29.5},
		{Name: "TypeScript", Value: 80},
		{Name: "CSS", Value: 0},
	}, got.Languages)

	require.Len(t, got.Repositories, 2)
	assert.Equal(t, "engine", got.Repositories[0].Name)
	assert.Equal(t, "site", got.Repositories[1].Name)
	assert.Equal(t, 90, got.Repositories[0].Stars)
}

func TestSummarize_WrongTypedFieldsKeepRest(t *testing.T) {
	var p Payload
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "Ada",
		"bio": {"text": "hi"},
		"repos": "31",
		"stars": "many",
		"pinned": [
			"https://github.com/ada/broken",
			{"url": "https://github.com/ada/engine", "stars": "90", "description": 42,
			 "langs": [{"name": "Go", "perc": 60}, {"name": ["x"], "perc": "40%"}]}
		]
	}`), &p))

	got := Summarize(p)

	assert.Equal(t, "Ada", got.Name)
	assert.Empty(t, got.Bio)
	assert.Equal(t, 31, got.Repos)
	assert.Equal(t, 0, got.Stars)
	assert.Equal(t, []RepoStat{
		{Name: "engine", URL: "https://github.com/ada/engine", Description: "42", Stars: 90},
	}, got.Repositories)
	assert.Equal(t, []LanguageShare{{Name: "Go", Value: 60}, {Name: "", Value: 40}}, got.Languages)
}

func TestSummarize_NoPinned(t *testing.T) {
	got := Summarize(Payload{Name: "empty"})

	assert.NotNil(t, got.Languages)
	assert.NotNil(t, got.Repositories)
	assert.Empty(t, got.Languages)
}

func TestRepoName(t *testing.T) {
	tests := map[string]string{
		"https://github.com/ada/engine":  "engine",
		"https://github.com/ada/engine/": "engine",
		"ada/engine":                     "engine",
		"engine":                         "engine",
		"":                               "",
	}
	for in, want := range tests {
		assert.Equal(t, want, repoName(in), in)
	}
}
