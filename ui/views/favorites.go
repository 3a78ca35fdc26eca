package views

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dharti/models"
	"dharti/ui/styles"
)

// Favorites lists every favorited property across both categories.
type Favorites struct {
	width, height int
	props         []models.Property
	state         models.UserState
	selected      int
	ratingOpen    bool
}

func NewFavorites() Favorites {
	return Favorites{}
}

func (f Favorites) SetData(props []models.Property, state models.UserState) Favorites {
	f.props = props
	f.state = state
	if f.selected >= len(props) {
		f.selected = 0
	}
	return f
}

func (f Favorites) SetSize(w, h int) Favorites {
	f.width = w
	f.height = h
	return f
}

func (f Favorites) Selected() (models.Property, bool) {
	if len(f.props) == 0 || f.selected >= len(f.props) {
		return models.Property{}, false
	}
	return f.props[f.selected], true
}

func (f Favorites) Update(msg tea.Msg) (Favorites, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch key.String() {
	case "up", "k":
		if f.selected > 0 {
			f.selected--
			f.ratingOpen = false
		}
	case "down", "j":
		if f.selected < len(f.props)-1 {
			f.selected++
			f.ratingOpen = false
		}
	case " ":
		if p, ok := f.Selected(); ok {
			return f, intent(ToggleFavoriteMsg{ID: p.ID})
		}
	case "s":
		if _, ok := f.Selected(); ok {
			f.ratingOpen = !f.ratingOpen
		}
	case "1", "2", "3", "4", "5":
		if f.ratingOpen {
			if p, ok := f.Selected(); ok {
				f.ratingOpen = false
				return f, intent(SubmitRatingMsg{ID: p.ID, Rating: int(key.String()[0] - '0')})
			}
		}
	case "enter", "v":
		if p, ok := f.Selected(); ok {
			return f, intent(ViewDetailsMsg{ID: p.ID})
		}
	}

	return f, nil
}

func (f Favorites) View() string {
	header := styles.Heart.Render("♥ ") + styles.Title.Render("My Favorites") + "  " +
		styles.Muted.Render(pluralize(len(f.props), "property saved", "properties saved"))

	if len(f.props) == 0 {
		empty := lipgloss.JoinVertical(lipgloss.Left,
			styles.StatValue.Render("No favorites yet"),
			styles.Muted.Render("Browse the listings and press space to save the properties you love."),
			"",
			styles.Muted.Render("esc back to listings"),
		)
		return lipgloss.JoinVertical(lipgloss.Left, header, styles.PanelBorder.Render(empty))
	}

	rows := ""
	for i, p := range f.props {
		price := models.FormatPrice(p.Price)
		if p.Category == models.CategoryRent {
			price += "/mo"
		}

		tag := "Buy"
		if p.Category == models.CategoryRent {
			tag = "Rent"
		}

		yourStars := "unrated"
		if r := f.state.RatingFor(p.ID); r > 0 {
			yourStars = fmt.Sprintf("%d★", r)
		}

		row := fmt.Sprintf("%-34s %-22s %-5s %12s  yours: %s",
			truncate(p.Title, 34),
			truncate(p.Location, 22),
			tag,
			price,
			yourStars,
		)

		if i == f.selected {
			rows += styles.TableSelected.Render(row) + "\n"
		} else {
			rows += row + "\n"
		}
	}

	sections := []string{header, rows}
	if f.ratingOpen {
		if p, ok := f.Selected(); ok {
			prompt := styles.InputLabel.Render("Your Rating: ") + renderStars(f.state.RatingFor(p.ID)) +
				styles.Muted.Render("  press 1-5 to rate, s to close")
			sections = append(sections, styles.CardBorder.Render(prompt))
		}
	}
	sections = append(sections, styles.Muted.Render("enter details  space unfavorite  s rate  esc back"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
