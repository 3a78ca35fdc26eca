// Package filter narrows the property catalog to the subset matching the
// user's criteria. Apply is pure and order-preserving; all view surfaces
// derive their listings through it.
package filter

import (
	"strings"

	"dharti/models"
)

// Apply returns the properties matching every clause of the criteria, in
// catalog order. It never errors: an unrecognized type value simply
// matches nothing, and a nil constraint matches everything.
func Apply(props []models.Property, c models.FilterCriteria) []models.Property {
	var out []models.Property
	for _, p := range props {
		if Matches(p, c) {
			out = append(out, p)
		}
	}
	return out
}

// Matches evaluates a single property against the criteria.
func Matches(p models.Property, c models.FilterCriteria) bool {
	if p.Category != c.Category {
		return false
	}
	if c.Type != nil && p.Type != *c.Type {
		return false
	}
	if c.Location != nil {
		needle := strings.ToLower(*c.Location)
		if !strings.Contains(strings.ToLower(p.Location), needle) {
			return false
		}
	}
	if c.MinPrice != nil && p.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && p.Price > *c.MaxPrice {
		return false
	}
	return true
}

// Favorites projects the catalog onto the user's favorites set,
// preserving catalog order rather than insertion order.
func Favorites(props []models.Property, state models.UserState) []models.Property {
	var out []models.Property
	for _, p := range props {
		if state.IsFavorite(p.ID) {
			out = append(out, p)
		}
	}
	return out
}
