package domain

const (
	defaultRunLimit = 20
	maxRunLimit     = 100
)

// RunPage selects a window of the run history, newest first.
// Page starts at 1.
type RunPage struct {
	Page  int
	Limit int
}

// NewRunPage builds a RunPage from optional query values.
// Missing or non-positive values fall back to page 1, limit 20; limit is capped at 100.
func NewRunPage(page, limit *int) RunPage {
	p := RunPage{Page: 1, Limit: defaultRunLimit}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, maxRunLimit)
	}
	return p
}

// Offset is the number of runs to skip.
func (p RunPage) Offset() int {
	return (p.Page - 1) * p.Limit
}
