package models

// FilterCriteria narrows the catalog to a visible subset. Category is
// always set; the optional constraints are pointers, nil meaning "any",
// so an explicit zero bound is never confused with no bound at all.
type FilterCriteria struct {
	Category Category
	Type     *PropertyType
	Location *string
	MinPrice *int64
	MaxPrice *int64
}

// DefaultFilters is the initial criteria: buy listings, no constraints.
func DefaultFilters() FilterCriteria {
	return FilterCriteria{Category: CategoryBuy}
}

// Cleared keeps the category and drops every optional constraint.
func (c FilterCriteria) Cleared() FilterCriteria {
	return FilterCriteria{Category: c.Category}
}

// WithCategory swaps the buy/rent partition without touching the
// optional constraints.
func (c FilterCriteria) WithCategory(cat Category) FilterCriteria {
	c.Category = cat
	return c
}

func FilterType(t PropertyType) *PropertyType { return &t }

func FilterLocation(s string) *string { return &s }

func FilterPrice(n int64) *int64 { return &n }
