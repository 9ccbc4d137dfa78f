package contrib

import "slices"

// FilterSet is the active chart selection. An empty dimension filters nothing.
// Methods never mutate the receiver's slices.
type FilterSet struct {
	Repositories []string `json:"repositories"`
	States       []Status `json:"states"`
}

func (f FilterSet) Empty() bool {
	return len(f.Repositories) == 0 && len(f.States) == 0
}

func (f FilterSet) ToggleRepository(repo string) FilterSet {
	f.Repositories = toggle(f.Repositories, repo)
	return f
}

func (f FilterSet) ToggleState(state Status) FilterSet {
	f.States = toggle(f.States, state)
	return f
}

func (f FilterSet) RemoveRepository(repo string) FilterSet {
	f.Repositories = remove(f.Repositories, repo)
	return f
}

func (f FilterSet) RemoveState(state Status) FilterSet {
	f.States = remove(f.States, state)
	return f
}

func (f FilterSet) HasRepository(repo string) bool {
	return slices.Contains(f.Repositories, repo)
}

func (f FilterSet) HasState(state Status) bool {
	return slices.Contains(f.States, state)
}

// Match reports whether r passes both dimensions.
func (f FilterSet) Match(r Record) bool {
	if len(f.Repositories) > 0 && !f.HasRepository(r.Repository) {
		return false
	}
	if len(f.States) > 0 && !f.HasState(DerivedStatus(r)) {
		return false
	}
	return true
}

// ApplyFilters keeps the records matching f, in their original order.
func ApplyFilters(records []Record, f FilterSet) []Record {
	if f.Empty() {
		return records
	}

	out := make([]Record, 0, len(records))
	for _, r := range records {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Page returns the 1-based page of records. Out of range pages are empty.
func Page(records []Record, page, size int) []Record {
	if size < 1 {
		return []Record{}
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * size
	if start >= len(records) {
		return []Record{}
	}
	end := min(start+size, len(records))
	return records[start:end]
}

// PageCount is the number of pages needed for n records, at least 1.
func PageCount(n, size int) int {
	if size < 1 || n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}

func toggle[T comparable](values []T, v T) []T {
	if slices.Contains(values, v) {
		return remove(values, v)
	}
	out := make([]T, 0, len(values)+1)
	out = append(out, values...)
	return append(out, v)
}

func remove[T comparable](values []T, v T) []T {
	out := make([]T, 0, len(values))
	for _, x := range values {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
