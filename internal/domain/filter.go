package domain

import "github.com/alexanderramin/folio/internal/locale"

// Filter selects projects for the gallery. The category is kept as a
// canonical identifier; labels only exist at the display edge.
type Filter struct {
	Category Category
	Status   Status
	Limit    *int
}

// FilterFromLabel builds a filter from a category label shown in l. Labels
// that do not belong to l fall back to the sentinel.
func FilterFromLabel(label string, l locale.Locale) Filter {
	c, ok := CategoryFromLabel(label, l)
	if !ok {
		c = CategoryAll
	}
	return Filter{Category: c}
}

// Normalized returns f with the zero category replaced by the sentinel.
func (f Filter) Normalized() Filter {
	if f.Category == "" {
		f.Category = CategoryAll
	}
	return f
}

// Equal reports whether two filters select the same projects.
func (f Filter) Equal(o Filter) bool {
	a, b := f.Normalized(), o.Normalized()
	if a.Category != b.Category || a.Status != b.Status {
		return false
	}
	switch {
	case a.Limit == nil && b.Limit == nil:
		return true
	case a.Limit == nil || b.Limit == nil:
		return false
	default:
		return *a.Limit == *b.Limit
	}
}
