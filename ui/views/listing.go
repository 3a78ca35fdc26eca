package views

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dharti/models"
	"dharti/ui/styles"
)

// Listing is the home surface: the filtered property grid with the
// filter form and the inline rating widget.
type Listing struct {
	width, height int
	props         []models.Property
	state         models.UserState
	criteria      models.FilterCriteria
	selected      int
	ratingOpen    bool
	filterOpen    bool
	filter        FilterForm
}

func NewListing() Listing {
	return Listing{filter: NewFilterForm()}
}

// SetData pushes the current filtered subset and user state into the
// view. Called by the controller after every filter or state change.
func (l Listing) SetData(props []models.Property, state models.UserState, c models.FilterCriteria) Listing {
	l.props = props
	l.state = state
	l.criteria = c
	if l.selected >= len(props) {
		l.selected = 0
	}
	return l
}

func (l Listing) SetSize(w, h int) Listing {
	l.width = w
	l.height = h
	return l
}

// Selected returns the highlighted property, if any.
func (l Listing) Selected() (models.Property, bool) {
	if len(l.props) == 0 || l.selected >= len(l.props) {
		return models.Property{}, false
	}
	return l.props[l.selected], true
}

func (l Listing) FilterOpen() bool {
	return l.filterOpen
}

func (l Listing) Update(msg tea.Msg) (Listing, tea.Cmd) {
	if l.filterOpen {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
			l.filterOpen = false
			return l, nil
		}
		var cmd tea.Cmd
		l.filter, cmd = l.filter.Update(msg, l.criteria.Category)
		return l, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch key.String() {
	case "up", "k":
		if l.selected > 0 {
			l.selected--
			l.ratingOpen = false
		}
	case "down", "j":
		if l.selected < len(l.props)-1 {
			l.selected++
			l.ratingOpen = false
		}
	case "home", "g":
		l.selected = 0
		l.ratingOpen = false
	case "end", "G":
		if len(l.props) > 0 {
			l.selected = len(l.props) - 1
		}
		l.ratingOpen = false
	case "/":
		l.filterOpen = true
		l.filter = l.filter.SetCriteria(l.criteria)
	case "x":
		return l, intent(ClearFiltersMsg{})
	case " ":
		if p, ok := l.Selected(); ok {
			return l, intent(ToggleFavoriteMsg{ID: p.ID})
		}
	case "s":
		if _, ok := l.Selected(); ok {
			l.ratingOpen = !l.ratingOpen
		}
	case "1", "2", "3", "4", "5":
		if l.ratingOpen {
			if p, ok := l.Selected(); ok {
				l.ratingOpen = false
				return l, intent(SubmitRatingMsg{ID: p.ID, Rating: int(key.String()[0] - '0')})
			}
		}
	case "enter", "v":
		if p, ok := l.Selected(); ok {
			return l, intent(ViewDetailsMsg{ID: p.ID})
		}
	}

	return l, nil
}

func (l Listing) View() string {
	heading := "Properties for Sale"
	if l.criteria.Category == models.CategoryRent {
		heading = "Properties for Rent"
	}

	header := styles.Title.Render(heading) + "  " +
		styles.Muted.Render(pluralize(len(l.props), "property found", "properties found"))

	sections := []string{header}
	if l.filterOpen {
		sections = append(sections, l.filter.View())
	}

	if len(l.props) == 0 {
		empty := lipgloss.JoinVertical(lipgloss.Left,
			styles.StatValue.Render("No properties found"),
			styles.Muted.Render("Try adjusting your filters to see more results."),
			"",
			styles.Muted.Render("x clear filters  / edit filters"),
		)
		sections = append(sections, styles.PanelBorder.Render(empty))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	sections = append(sections, l.renderTable())
	if l.ratingOpen {
		sections = append(sections, l.renderRatingPrompt())
	}
	sections = append(sections, l.renderSelectedPanel())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (l Listing) visibleRows() int {
	rows := 12
	if l.height > 0 {
		rows = (l.height * 50) / 100
		if rows < 6 {
			rows = 6
		}
	}
	return rows
}

func (l Listing) renderTable() string {
	header := fmt.Sprintf("%-2s %-34s %-22s %-10s %10s %4s %4s %7s %-7s",
		"", "Title", "Location", "Type", "Price", "Bed", "Bath", "SqFt", "Stars")
	rows := styles.TableHeader.Render(header) + "\n"

	visible := l.visibleRows()
	scroll := 0
	if l.selected >= visible {
		scroll = l.selected - visible + 1
	}
	end := scroll + visible
	if end > len(l.props) {
		end = len(l.props)
	}

	for i := scroll; i < end; i++ {
		p := l.props[i]

		heart := " "
		if l.state.IsFavorite(p.ID) {
			heart = styles.Heart.Render("♥")
		}

		beds, baths := "—", "—"
		if p.Bedrooms != nil {
			beds = fmt.Sprintf("%d", *p.Bedrooms)
		}
		if p.Bathrooms != nil {
			baths = fmt.Sprintf("%d", *p.Bathrooms)
		}

		row := fmt.Sprintf("%-34s %-22s %-10s %10s %4s %4s %7d %.1f",
			truncate(p.Title, 34),
			truncate(p.Location, 22),
			p.Type,
			models.FormatPrice(p.Price),
			beds,
			baths,
			p.Area,
			p.Rating,
		)

		if i == l.selected {
			rows += heart + " " + styles.TableSelected.Render(row) + "\n"
		} else {
			rows += heart + " " + row + "\n"
		}
	}

	if len(l.props) > visible {
		rows += styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]", scroll+1, end, len(l.props)))
	}

	return rows
}

func (l Listing) renderRatingPrompt() string {
	p, ok := l.Selected()
	if !ok {
		return ""
	}
	current := l.state.RatingFor(p.ID)
	prompt := styles.InputLabel.Render("Your Rating: ") + renderStars(current) +
		styles.Muted.Render("  press 1-5 to rate, s to close")
	return styles.CardBorder.Render(prompt)
}

func (l Listing) renderSelectedPanel() string {
	p, ok := l.Selected()
	if !ok {
		return ""
	}

	price := models.FormatPrice(p.Price)
	if p.Category == models.CategoryRent {
		price += "/month"
	}

	lines := []string{
		styles.StatValue.Render(p.Title) + "  " + styles.Badge.Render(string(p.Type)),
		styles.Price.Render(price) + "  " + styles.Muted.Render(p.Location),
		renderStars(int(p.Rating)) + styles.Muted.Render(fmt.Sprintf(" (%.1f)", p.Rating)) +
			l.userRatingNote(p.ID),
	}

	width := l.width - 6
	if width < 40 {
		width = 40
	}
	lines = append(lines, wrapText(p.Description, width)...)
	lines = append(lines, styles.Muted.Render("enter details  space favorite  s rate"))

	return styles.PanelBorder.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (l Listing) userRatingNote(id string) string {
	r := l.state.RatingFor(id)
	if r == 0 {
		return ""
	}
	return styles.Muted.Render(fmt.Sprintf("  yours: %d★", r))
}
