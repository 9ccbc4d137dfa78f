package contrib

type Summary struct {
	Total                   int `json:"total_prs"`
	Open                    int `json:"open_prs"`
	Closed                  int `json:"closed_prs"`
	Merged                  int `json:"merged_prs"`
	RepositoriesContributed int `json:"repositories_contributed"`
}

// Summarize counts over the full collection; filters never apply here.
func Summarize(records []Record) Summary {
	var s Summary
	repos := make(map[string]struct{})
	for _, r := range records {
		s.Total++
		switch DerivedStatus(r) {
		case StatusMerged:
			s.Merged++
		case StatusClosed:
			s.Closed++
		default:
			s.Open++
		}
		repos[r.Repository] = struct{}{}
	}
	s.RepositoriesContributed = len(repos)
	return s
}

type RepositoryCount struct {
	Repository   string `json:"repository"`
	PullRequests int    `json:"pull_requests"`
	Highlighted  bool   `json:"highlighted"`
}

// ByRepository counts pull requests per repository in first-seen order and
// flags repositories that are part of the active filter.
func ByRepository(records []Record, f FilterSet) []RepositoryCount {
	index := make(map[string]int)
	out := make([]RepositoryCount, 0)
	for _, r := range records {
		i, ok := index[r.Repository]
		if !ok {
			i = len(out)
			index[r.Repository] = i
			out = append(out, RepositoryCount{
				Repository:  r.Repository,
				Highlighted: f.HasRepository(r.Repository),
			})
		}
		out[i].PullRequests++
	}
	return out
}

type StatusCount struct {
	Status      Status `json:"status"`
	Count       int    `json:"count"`
	Highlighted bool   `json:"highlighted"`
}

func ByStatus(s Summary, f FilterSet) []StatusCount {
	counts := map[Status]int{
		StatusOpen:   s.Open,
		StatusClosed: s.Closed,
		StatusMerged: s.Merged,
	}
	out := make([]StatusCount, 0, len(Statuses))
	for _, st := range Statuses {
		out = append(out, StatusCount{Status: st, Count: counts[st], Highlighted: f.HasState(st)})
	}
	return out
}
