package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"dharti/models"
)

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestBlankFormBuildsUnconstrainedCriteria(t *testing.T) {
	f := NewFilterForm()
	c := f.Criteria(models.CategoryBuy)

	if c.Category != models.CategoryBuy {
		t.Fatalf("category = %v, want buy", c.Category)
	}
	if c.Type != nil || c.Location != nil || c.MinPrice != nil || c.MaxPrice != nil {
		t.Fatalf("blank form produced constraints: %+v", c)
	}
}

func TestCriteriaFromPopulatedForm(t *testing.T) {
	f := NewFilterForm()
	f.typeIndex = 1 // apartment
	f.location.SetValue("  Powai ")
	f.minPrice.SetValue("50000")
	f.maxPrice.SetValue("100000")

	c := f.Criteria(models.CategoryRent)
	if c.Type == nil || *c.Type != models.TypeApartment {
		t.Fatalf("type = %v, want apartment", c.Type)
	}
	if c.Location == nil || *c.Location != "Powai" {
		t.Fatalf("location = %v, want trimmed Powai", c.Location)
	}
	if c.MinPrice == nil || *c.MinPrice != 50000 {
		t.Fatalf("min price = %v", c.MinPrice)
	}
	if c.MaxPrice == nil || *c.MaxPrice != 100000 {
		t.Fatalf("max price = %v", c.MaxPrice)
	}
}

func TestNonNumericPriceIsIgnored(t *testing.T) {
	f := NewFilterForm()
	f.minPrice.SetValue("cheap")
	f.maxPrice.SetValue("1e9")

	c := f.Criteria(models.CategoryBuy)
	if c.MinPrice != nil || c.MaxPrice != nil {
		t.Fatalf("non-numeric price produced a constraint: %+v", c)
	}
}

func TestSetCriteriaRoundTrip(t *testing.T) {
	orig := models.FilterCriteria{
		Category: models.CategoryRent,
		Type:     models.FilterType(models.TypeVilla),
		Location: models.FilterLocation("Juhu"),
		MinPrice: models.FilterPrice(100),
		MaxPrice: models.FilterPrice(200),
	}

	f := NewFilterForm().SetCriteria(orig)
	got := f.Criteria(models.CategoryRent)

	if got.Type == nil || *got.Type != models.TypeVilla {
		t.Fatalf("type lost in round trip: %v", got.Type)
	}
	if got.Location == nil || *got.Location != "Juhu" {
		t.Fatalf("location lost in round trip: %v", got.Location)
	}
	if got.MinPrice == nil || *got.MinPrice != 100 || got.MaxPrice == nil || *got.MaxPrice != 200 {
		t.Fatalf("price bounds lost in round trip: %+v", got)
	}
}

func TestTypeSelectorCycles(t *testing.T) {
	f := NewFilterForm()
	for i := 0; i < len(models.PropertyTypes)+1; i++ {
		f, _ = f.Update(keyPress("right"), models.CategoryBuy)
	}
	if f.typeIndex != 0 {
		t.Fatalf("type selector did not wrap, index = %d", f.typeIndex)
	}
}

func TestEnterEmitsApplyFilters(t *testing.T) {
	f := NewFilterForm()
	f.location.SetValue("Mumbai")

	_, cmd := f.Update(keyPress("enter"), models.CategoryBuy)
	if cmd == nil {
		t.Fatalf("enter produced no command")
	}
	msg, ok := cmd().(ApplyFiltersMsg)
	if !ok {
		t.Fatalf("enter emitted %T, want ApplyFiltersMsg", cmd())
	}
	if msg.Criteria.Location == nil || *msg.Criteria.Location != "Mumbai" {
		t.Fatalf("criteria not carried in message: %+v", msg.Criteria)
	}
}

func TestClearResetsFormAndEmits(t *testing.T) {
	f := NewFilterForm()
	f.location.SetValue("Mumbai")
	f.typeIndex = 2

	f, cmd := f.Update(tea.KeyMsg{Type: tea.KeyCtrlX}, models.CategoryRent)
	if cmd == nil {
		t.Fatalf("ctrl+x produced no command")
	}
	if _, ok := cmd().(ClearFiltersMsg); !ok {
		t.Fatalf("ctrl+x emitted %T, want ClearFiltersMsg", cmd())
	}

	c := f.Criteria(models.CategoryRent)
	if c.Type != nil || c.Location != nil {
		t.Fatalf("form not reset by clear: %+v", c)
	}
}
