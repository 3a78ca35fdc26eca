package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dharti/models"
	"dharti/ui/styles"
)

const (
	fieldType = iota
	fieldLocation
	fieldMinPrice
	fieldMaxPrice
	fieldCount
)

// typeChoices is the type selector: index 0 is "All Types", the rest
// follow models.PropertyTypes.
var typeChoices = append([]models.PropertyType{""}, models.PropertyTypes...)

// FilterForm edits the optional filter constraints. The buy/rent
// category is not part of the form; the header toggle owns it.
type FilterForm struct {
	location  textinput.Model
	minPrice  textinput.Model
	maxPrice  textinput.Model
	typeIndex int
	focus     int
}

func NewFilterForm() FilterForm {
	location := textinput.New()
	location.Placeholder = "Any location"
	location.CharLimit = 64
	location.Width = 24

	minPrice := textinput.New()
	minPrice.Placeholder = "0"
	minPrice.CharLimit = 12
	minPrice.Width = 14

	maxPrice := textinput.New()
	maxPrice.Placeholder = "No limit"
	maxPrice.CharLimit = 12
	maxPrice.Width = 14

	return FilterForm{
		location: location,
		minPrice: minPrice,
		maxPrice: maxPrice,
	}
}

// SetCriteria loads the form from the active criteria so reopening the
// form shows what is currently applied.
func (f FilterForm) SetCriteria(c models.FilterCriteria) FilterForm {
	f.typeIndex = 0
	if c.Type != nil {
		for i, t := range typeChoices {
			if t == *c.Type {
				f.typeIndex = i
				break
			}
		}
	}

	f.location.SetValue("")
	if c.Location != nil {
		f.location.SetValue(*c.Location)
	}
	f.minPrice.SetValue("")
	if c.MinPrice != nil {
		f.minPrice.SetValue(strconv.FormatInt(*c.MinPrice, 10))
	}
	f.maxPrice.SetValue("")
	if c.MaxPrice != nil {
		f.maxPrice.SetValue(strconv.FormatInt(*c.MaxPrice, 10))
	}

	f.focus = fieldType
	f.location.Blur()
	f.minPrice.Blur()
	f.maxPrice.Blur()
	return f
}

// Criteria builds filter criteria from the form state. Blank inputs
// become nil constraints, never zero-valued ones.
func (f FilterForm) Criteria(category models.Category) models.FilterCriteria {
	c := models.FilterCriteria{Category: category}

	if f.typeIndex > 0 {
		c.Type = models.FilterType(typeChoices[f.typeIndex])
	}
	if loc := strings.TrimSpace(f.location.Value()); loc != "" {
		c.Location = models.FilterLocation(loc)
	}
	if n, err := strconv.ParseInt(strings.TrimSpace(f.minPrice.Value()), 10, 64); err == nil {
		c.MinPrice = models.FilterPrice(n)
	}
	if n, err := strconv.ParseInt(strings.TrimSpace(f.maxPrice.Value()), 10, 64); err == nil {
		c.MaxPrice = models.FilterPrice(n)
	}

	return c
}

func (f FilterForm) Update(msg tea.Msg, category models.Category) (FilterForm, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return f.setFocus((f.focus + 1) % fieldCount), nil
		case "shift+tab", "up":
			return f.setFocus((f.focus + fieldCount - 1) % fieldCount), nil
		case "enter":
			return f, intent(ApplyFiltersMsg{Criteria: f.Criteria(category)})
		case "ctrl+x":
			return f.SetCriteria(models.FilterCriteria{Category: category}),
				intent(ClearFiltersMsg{})
		case "left", "right":
			if f.focus == fieldType {
				if key.String() == "right" {
					f.typeIndex = (f.typeIndex + 1) % len(typeChoices)
				} else {
					f.typeIndex = (f.typeIndex + len(typeChoices) - 1) % len(typeChoices)
				}
				return f, nil
			}
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldLocation:
		f.location, cmd = f.location.Update(msg)
	case fieldMinPrice:
		f.minPrice, cmd = f.minPrice.Update(msg)
	case fieldMaxPrice:
		f.maxPrice, cmd = f.maxPrice.Update(msg)
	}
	return f, cmd
}

func (f FilterForm) setFocus(focus int) FilterForm {
	f.focus = focus
	f.location.Blur()
	f.minPrice.Blur()
	f.maxPrice.Blur()

	switch focus {
	case fieldLocation:
		f.location.Focus()
	case fieldMinPrice:
		f.minPrice.Focus()
	case fieldMaxPrice:
		f.maxPrice.Focus()
	}
	return f
}

func (f FilterForm) typeLabel() string {
	if f.typeIndex == 0 {
		return "All Types"
	}
	t := string(typeChoices[f.typeIndex])
	return strings.ToUpper(t[:1]) + t[1:]
}

func (f FilterForm) View() string {
	typeMarker := "  "
	if f.focus == fieldType {
		typeMarker = styles.StarFilled.Render("> ")
	}
	typeRow := typeMarker + styles.InputLabel.Render("Property Type ") +
		styles.StatValue.Render("< "+f.typeLabel()+" >")

	rows := []string{
		styles.Title.Render("Find Your Perfect Property"),
		typeRow,
		f.inputRow(fieldLocation, "Location      ", f.location.View()),
		f.inputRow(fieldMinPrice, "Min Price (₹) ", f.minPrice.View()),
		f.inputRow(fieldMaxPrice, "Max Price (₹) ", f.maxPrice.View()),
		styles.Muted.Render("enter apply  ctrl+x clear  esc close"),
	}

	return styles.CardBorder.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (f FilterForm) inputRow(field int, label, input string) string {
	marker := "  "
	if f.focus == field {
		marker = styles.StarFilled.Render("> ")
	}
	return marker + styles.InputLabel.Render(label) + input
}
