package filter

import (
	"testing"

	"dharti/models"
)

func fixture() []models.Property {
	return []models.Property{
		{ID: "1", Title: "Luxury Modern Villa with Pool", Price: 45000000, Location: "Bandra West, Mumbai", Type: models.TypeVilla, Category: models.CategoryBuy},
		{ID: "2", Title: "Premium Apartment with City Views", Price: 85000, Location: "Powai, Mumbai", Type: models.TypeApartment, Category: models.CategoryRent},
		{ID: "3", Title: "Commercial Office Building", Price: 120000000, Location: "BKC, Mumbai", Type: models.TypeCommercial, Category: models.CategoryBuy},
		{ID: "4", Title: "Penthouse with Terrace", Price: 180000, Location: "Worli, Mumbai", Type: models.TypeApartment, Category: models.CategoryRent},
		{ID: "5", Title: "Grand Villa with Driveway", Price: 65000000, Location: "Juhu, Mumbai", Type: models.TypeVilla, Category: models.CategoryBuy},
		{ID: "6", Title: "Modern Residential Complex", Price: 25000000, Location: "Thane, Mumbai", Type: models.TypeApartment, Category: models.CategoryBuy},
		{ID: "7", Title: "Serviced Executive Suite", Price: 120000, Location: "Andheri East, Mumbai", Type: models.TypeApartment, Category: models.CategoryRent},
		{ID: "8", Title: "Co-working Office Space", Price: 45000, Location: "Lower Parel, Mumbai", Type: models.TypeOffice, Category: models.CategoryRent},
	}
}

func ids(props []models.Property) []string {
	out := make([]string, len(props))
	for i, p := range props {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyDefaultShowsBuyOnly(t *testing.T) {
	got := Apply(fixture(), models.DefaultFilters())
	want := []string{"1", "3", "5", "6"}
	if !equalIDs(ids(got), want) {
		t.Fatalf("buy listing = %v, want %v", ids(got), want)
	}
}

func TestApplyPreservesCatalogOrder(t *testing.T) {
	c := models.FilterCriteria{Category: models.CategoryRent}
	got := ids(Apply(fixture(), c))
	want := []string{"2", "4", "7", "8"}
	if !equalIDs(got, want) {
		t.Fatalf("rent listing = %v, want %v", got, want)
	}
}

func TestCategoriesPartitionCatalog(t *testing.T) {
	props := fixture()
	buy := Apply(props, models.FilterCriteria{Category: models.CategoryBuy})
	rent := Apply(props, models.FilterCriteria{Category: models.CategoryRent})
	if len(buy)+len(rent) != len(props) {
		t.Fatalf("partition covers %d of %d properties", len(buy)+len(rent), len(props))
	}
	for _, p := range buy {
		for _, q := range rent {
			if p.ID == q.ID {
				t.Fatalf("property %s appears in both categories", p.ID)
			}
		}
	}
}

func TestMatchesAllClauses(t *testing.T) {
	props := fixture()
	c := models.FilterCriteria{
		Category: models.CategoryRent,
		Type:     models.FilterType(models.TypeApartment),
		Location: models.FilterLocation("powai"),
		MaxPrice: models.FilterPrice(100000),
	}
	got := ids(Apply(props, c))
	if !equalIDs(got, []string{"2"}) {
		t.Fatalf("filtered = %v, want [2]", got)
	}

	c.MaxPrice = models.FilterPrice(50000)
	if got := Apply(props, c); len(got) != 0 {
		t.Fatalf("max 50000 should exclude property 2, got %v", ids(got))
	}
}

func TestLocationMatchIsCaseInsensitiveSubstring(t *testing.T) {
	c := models.FilterCriteria{
		Category: models.CategoryBuy,
		Location: models.FilterLocation("BANDRA"),
	}
	got := ids(Apply(fixture(), c))
	if !equalIDs(got, []string{"1"}) {
		t.Fatalf("location filter = %v, want [1]", got)
	}
}

func TestNilBoundsAreUnbounded(t *testing.T) {
	props := fixture()
	c := models.FilterCriteria{Category: models.CategoryBuy}
	unbounded := len(Apply(props, c))

	c.MinPrice = models.FilterPrice(0)
	if got := len(Apply(props, c)); got != unbounded {
		t.Fatalf("zero min bound narrowed listing: %d != %d", got, unbounded)
	}

	c = models.FilterCriteria{
		Category: models.CategoryBuy,
		MinPrice: models.FilterPrice(50000000),
	}
	got := ids(Apply(props, c))
	if !equalIDs(got, []string{"3", "5"}) {
		t.Fatalf("min 50000000 = %v, want [3 5]", got)
	}
}

func TestClearedKeepsCategory(t *testing.T) {
	c := models.FilterCriteria{
		Category: models.CategoryRent,
		Type:     models.FilterType(models.TypeVilla),
		MinPrice: models.FilterPrice(1),
	}
	cleared := c.Cleared()
	if cleared.Category != models.CategoryRent {
		t.Fatalf("cleared criteria lost category: %v", cleared.Category)
	}
	if cleared.Type != nil || cleared.Location != nil || cleared.MinPrice != nil || cleared.MaxPrice != nil {
		t.Fatalf("cleared criteria kept constraints: %+v", cleared)
	}
}

func TestWithCategoryKeepsOtherFilters(t *testing.T) {
	c := models.FilterCriteria{
		Category: models.CategoryBuy,
		Type:     models.FilterType(models.TypeApartment),
		Location: models.FilterLocation("mumbai"),
		MaxPrice: models.FilterPrice(30000000),
	}
	swapped := c.WithCategory(models.CategoryRent)
	if swapped.Category != models.CategoryRent {
		t.Fatalf("category not swapped: %v", swapped.Category)
	}
	if swapped.Type == nil || *swapped.Type != models.TypeApartment {
		t.Fatalf("type constraint lost on category swap")
	}
	if swapped.Location == nil || *swapped.Location != "mumbai" {
		t.Fatalf("location constraint lost on category swap")
	}
	if swapped.MaxPrice == nil || *swapped.MaxPrice != 30000000 {
		t.Fatalf("price constraint lost on category swap")
	}
}

func TestFavoritesProjectsInCatalogOrder(t *testing.T) {
	props := fixture()
	state := models.UserState{Favorites: []string{"7", "1", "nope"}}
	got := ids(Favorites(props, state))
	if !equalIDs(got, []string{"1", "7"}) {
		t.Fatalf("favorites projection = %v, want [1 7]", got)
	}
}
