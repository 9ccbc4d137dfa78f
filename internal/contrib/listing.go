package contrib

type Item struct {
	Record   Record
	Status   Status
	Selected bool
}

// Listing is everything the contribution page renders for one View.
type Listing struct {
	View          View
	Summary       Summary
	ByRepository  []RepositoryCount
	ByStatus      []StatusCount
	TotalFiltered int
	PageCount     int
	Items         []Item
}

// Render applies v to records. A page beyond the last one is clamped to the
// last page, so the returned View may differ from v.
func Render(records []Record, v View) Listing {
	if v.PageSize < 1 {
		v.PageSize = DefaultPageSize
	}
	v.Page = max(v.Page, 1)

	summary := Summarize(records)
	filtered := ApplyFilters(records, v.Filters)

	pages := PageCount(len(filtered), v.PageSize)
	if v.Page > pages {
		v.Page = pages
	}

	page := Page(filtered, v.Page, v.PageSize)
	items := make([]Item, 0, len(page))
	for _, r := range page {
		items = append(items, Item{
			Record:   r,
			Status:   DerivedStatus(r),
			Selected: v.Selected != "" && r.ID == v.Selected,
		})
	}

	return Listing{
		View:          v,
		Summary:       summary,
		ByRepository:  ByRepository(records, v.Filters),
		ByStatus:      ByStatus(summary, v.Filters),
		TotalFiltered: len(filtered),
		PageCount:     pages,
		Items:         items,
	}
}
