// Package projects summarizes a GitHub profile and its pinned repositories.
package projects

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"portfolio/internal/stats"
)

// Payload is the body of GET /githubProject/{handle}.
type Payload struct {
	Name      stats.Text             `json:"name"`
	Bio       stats.Text             `json:"bio"`
	Avatar    stats.Text             `json:"avatar"`
	Repos     stats.Int              `json:"repos"`
	Stars     stats.Int              `json:"stars"`
	Followers stats.Int              `json:"followers"`
	Following stats.Int              `json:"following"`
	Pinned    stats.List[PinnedRepo] `json:"pinned"`
}

type PinnedRepo struct {
	URL         stats.Text           `json:"url"`
	Description stats.Text           `json:"description"`
	Stars       stats.Int            `json:"stars"`
	Forks       stats.Int            `json:"forks"`
	Watchers    stats.Int            `json:"watchers"`
	Langs       stats.List[Language] `json:"langs"`
}

type Language struct {
	Name stats.Text `json:"name"`
	Perc Percent    `json:"perc"`
}

// Percent decodes "45.5", "45.5%" or 45.5. Anything else reads as 0.
type Percent float64

func (p *Percent) UnmarshalJSON(data []byte) error {
	*p = 0
	raw := strings.TrimSpace(string(data))
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		raw = s
	}
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "%")
	if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		*p = Percent(f)
	}
	return nil
}

type LanguageShare struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type RepoStat struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	Watchers    int    `json:"watchers"`
}

type Summary struct {
	Name         string          `json:"name"`
	Bio          string          `json:"bio,omitempty"`
	Avatar       string          `json:"avatar,omitempty"`
	Repos        int             `json:"repos"`
	Stars        int             `json:"stars"`
	Followers    int             `json:"followers"`
	Following    int             `json:"following"`
	Languages    []LanguageShare `json:"languages"`
	Repositories []RepoStat      `json:"repositories"`
}

// Languages adds up language percentages across pinned repositories, keeping
// the order in which languages first appear.
func Languages(pinned []PinnedRepo) []LanguageShare {
	index := make(map[string]int)
	out := make([]LanguageShare, 0)
	for _, repo := range pinned {
		for _, lang := range repo.Langs {
			name := lang.Name.String()
			i, ok := index[name]
			if !ok {
				i = len(out)
				index[name] = i
				out = append(out, LanguageShare{Name: name})
			}
			out[i].Value += float64(lang.Perc)
		}
	}
	return out
}

func Repositories(pinned []PinnedRepo) []RepoStat {
	out := make([]RepoStat, 0, len(pinned))
	for _, repo := range pinned {
		out = append(out, RepoStat{
			Name:        repoName(repo.URL.String()),
			URL:         repo.URL.String(),
			Description: repo.Description.String(),
			Stars:       repo.Stars.Or(0),
			Forks:       repo.Forks.Or(0),
			Watchers:    repo.Watchers.Or(0),
		})
	}
	return out
}

func Summarize(p Payload) Summary {
	return Summary{
		Name:         p.Name.String(),
		Bio:          p.Bio.String(),
		Avatar:       p.Avatar.String(),
		Repos:        p.Repos.Or(0),
		Stars:        p.Stars.Or(0),
		Followers:    p.Followers.Or(0),
		Following:    p.Following.Or(0),
		Languages:    Languages(p.Pinned),
		Repositories: Repositories(p.Pinned),
	}
}

// repoName is the last path segment of a repository URL.
func repoName(raw string) string {
	path := raw
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		path = u.Path
	}
	path = strings.TrimRight(path, "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}
