package contrib

const DefaultPageSize = 10

// View is the interactive state of one contribution list: chart filters, the
// current page and the highlighted record. It is a value; every transition
// returns the next state.
type View struct {
	Filters  FilterSet `json:"filters"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
	Selected string    `json:"selected,omitempty"`
}

func NewView(pageSize int) View {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return View{Page: 1, PageSize: pageSize}
}

func (v View) ToggleRepository(repo string) View {
	v.Filters = v.Filters.ToggleRepository(repo)
	v.Page = 1
	return v
}

func (v View) ToggleState(state Status) View {
	v.Filters = v.Filters.ToggleState(state)
	v.Page = 1
	return v
}

func (v View) RemoveRepository(repo string) View {
	v.Filters = v.Filters.RemoveRepository(repo)
	v.Page = 1
	return v
}

func (v View) RemoveState(state Status) View {
	v.Filters = v.Filters.RemoveState(state)
	v.Page = 1
	return v
}

func (v View) SetPage(page int) View {
	v.Page = max(page, 1)
	return v
}

func (v View) SetPageSize(size int) View {
	if size < 1 {
		size = DefaultPageSize
	}
	if size != v.PageSize {
		v.PageSize = size
		v.Page = 1
	}
	return v
}

// Select highlights the record with the given id, or clears the highlight
// when that record is already selected.
func (v View) Select(id string) View {
	if v.Selected == id {
		v.Selected = ""
	} else {
		v.Selected = id
	}
	return v
}

// Reset clears filters and selection and returns to the first page.
func (v View) Reset() View {
	return NewView(v.PageSize)
}
