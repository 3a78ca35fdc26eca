package ui

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dharti/catalog"
	"dharti/config"
	"dharti/filter"
	"dharti/models"
	"dharti/services"
	"dharti/ui/styles"
	"dharti/ui/views"
	"dharti/whatsapp"
)

type viewMode int

const (
	modeHome viewMode = iota
	modeFavorites
	modeContact
)

type splashDoneMsg struct{}

type clearNotificationMsg struct{}

// App is the top level model. It owns the filter criteria and all user
// state mutations; the views only report intent back through messages.
type App struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	user    *services.UserStateService
	contact *services.ContactService

	width, height int
	loading       bool
	mode          viewMode
	modalOpen     bool
	filters       models.FilterCriteria

	listing   views.Listing
	favorites views.Favorites
	detail    views.Detail
	form      views.Contact

	notification string
	notifyUntil  time.Time
}

func New(cfg *config.Config, cat *catalog.Catalog, user *services.UserStateService, contact *services.ContactService) App {
	app := App{
		cfg:       cfg,
		catalog:   cat,
		user:      user,
		contact:   contact,
		loading:   true,
		filters:   models.DefaultFilters(),
		listing:   views.NewListing(),
		favorites: views.NewFavorites(),
		detail:    views.NewDetail(cfg.Agency.WhatsApp),
		form:      views.NewContact(contact, cfg.Agency),
	}
	app.refresh()
	return app
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.form.Init(),
		tea.Tick(a.cfg.SplashDelay, func(time.Time) tea.Msg { return splashDoneMsg{} }),
	)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		body := msg.Height - 6
		a.listing = a.listing.SetSize(msg.Width, body)
		a.favorites = a.favorites.SetSize(msg.Width, body)
		a.detail = a.detail.SetSize(msg.Width, body)
		a.form = a.form.SetSize(msg.Width, body)
		return a, nil

	case splashDoneMsg:
		a.loading = false
		return a, nil

	case clearNotificationMsg:
		if time.Now().After(a.notifyUntil) {
			a.notification = ""
		}
		return a, nil

	case views.ToggleFavoriteMsg:
		return a.toggleFavorite(msg.ID)

	case views.SubmitRatingMsg:
		return a.submitRating(msg.ID, msg.Rating)

	case views.ViewDetailsMsg:
		return a.openDetails(msg.ID)

	case views.ApplyFiltersMsg:
		a.filters = msg.Criteria
		a.refresh()
		return a, nil

	case views.ClearFiltersMsg:
		a.filters = a.filters.Cleared()
		a.refresh()
		return a.notify("Filters cleared")

	case views.OpenLinkMsg:
		if err := whatsapp.Open(msg.URL); err != nil {
			log.Printf("open link: %v", err)
			return a.notify("Could not open " + msg.Label)
		}
		return a.notify("Opening " + msg.Label + "...")

	case tea.KeyMsg:
		if a.loading {
			return a, nil
		}
		return a.handleKey(msg)
	}

	// Non-key messages fan out to every view so a timer fired for a
	// backgrounded view still lands.
	return a.broadcast(msg)
}

func (a App) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.listing, cmd = a.listing.Update(msg)
	cmds = append(cmds, cmd)
	a.favorites, cmd = a.favorites.Update(msg)
	cmds = append(cmds, cmd)
	a.form, cmd = a.form.Update(msg)
	cmds = append(cmds, cmd)
	a.detail, cmd = a.detail.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		// "q" still types into focused text inputs.
		if msg.String() == "q" && a.typing() {
			break
		}
		return a, tea.Quit
	case "esc":
		if a.modalOpen {
			a.modalOpen = false
			return a, nil
		}
		if a.mode == modeHome && a.listing.FilterOpen() {
			break // let the listing close its filter form
		}
		if a.mode != modeHome {
			a.mode = modeHome
			return a, nil
		}
	}

	if a.modalOpen {
		var cmd tea.Cmd
		a.detail, cmd = a.detail.Update(msg)
		return a, cmd
	}

	// Tab switches bypass the view only while no text input owns the
	// keyboard.
	if !a.typing() {
		switch msg.String() {
		case "b":
			return a.setCategory(models.CategoryBuy)
		case "r":
			return a.setCategory(models.CategoryRent)
		case "f":
			a.mode = modeFavorites
			return a, nil
		case "c":
			a.mode = modeContact
			return a, nil
		}
	}

	return a.route(msg)
}

// typing reports whether a text input currently owns the keyboard.
func (a App) typing() bool {
	if a.modalOpen {
		return false
	}
	return a.mode == modeContact || (a.mode == modeHome && a.listing.FilterOpen())
}

func (a App) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if a.modalOpen {
		a.detail, cmd = a.detail.Update(msg)
		return a, cmd
	}
	switch a.mode {
	case modeHome:
		a.listing, cmd = a.listing.Update(msg)
	case modeFavorites:
		a.favorites, cmd = a.favorites.Update(msg)
	case modeContact:
		a.form, cmd = a.form.Update(msg)
	}
	return a, cmd
}

func (a App) setCategory(cat models.Category) (tea.Model, tea.Cmd) {
	a.mode = modeHome
	if a.filters.Category == cat {
		return a, nil
	}
	a.filters = a.filters.WithCategory(cat)
	a.refresh()
	return a, nil
}

func (a App) toggleFavorite(id string) (tea.Model, tea.Cmd) {
	added, err := a.user.ToggleFavorite(id)
	if err != nil {
		log.Printf("toggle favorite %s: %v", id, err)
		return a.notify("Could not save favorite")
	}
	a.refresh()
	if added {
		return a.notify("Added to favorites")
	}
	return a.notify("Removed from favorites")
}

func (a App) submitRating(id string, rating int) (tea.Model, tea.Cmd) {
	if err := a.user.SetRating(id, rating); err != nil {
		log.Printf("set rating %s: %v", id, err)
		return a.notify("Could not save rating")
	}
	a.refresh()
	if a.modalOpen {
		a.detail = a.detail.SetUserRating(rating)
	}
	return a.notify("Rated " + pluralStars(rating))
}

func (a App) openDetails(id string) (tea.Model, tea.Cmd) {
	p, ok := a.catalog.ByID(id)
	if !ok {
		log.Printf("details for unknown property %s", id)
		return a, nil
	}
	a.detail = a.detail.SetProperty(p, a.user.RatingFor(id))
	a.modalOpen = true
	return a, nil
}

// refresh pushes the current catalog projection and user state into the
// views that render them.
func (a *App) refresh() {
	state := a.user.State()
	a.listing = a.listing.SetData(filter.Apply(a.catalog.Properties(), a.filters), state, a.filters)
	a.favorites = a.favorites.SetData(filter.Favorites(a.catalog.Properties(), state), state)
}

func (a App) notify(text string) (tea.Model, tea.Cmd) {
	a.notification = text
	a.notifyUntil = time.Now().Add(2 * time.Second)
	return a, tea.Tick(2*time.Second, func(time.Time) tea.Msg { return clearNotificationMsg{} })
}

func (a App) View() string {
	if a.loading {
		return a.renderSplash()
	}

	var body string
	switch {
	case a.modalOpen:
		body = a.detail.View()
	case a.mode == modeHome:
		body = a.listing.View()
	case a.mode == modeFavorites:
		body = a.favorites.View()
	case a.mode == modeContact:
		body = a.form.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		body,
		a.renderStatusBar(),
	)
}

func (a App) renderSplash() string {
	logo := styles.Logo.Render(a.cfg.Agency.Name)
	tag := styles.Tagline.Render(a.cfg.Agency.Tagline)
	block := lipgloss.JoinVertical(lipgloss.Center, logo, tag, "", styles.Muted.Render("Loading..."))
	if a.width == 0 {
		return block
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, block)
}

func (a App) renderHeader() string {
	tabs := []string{
		a.tab("Buy [b]", a.mode == modeHome && a.filters.Category == models.CategoryBuy && !a.modalOpen),
		a.tab("Rent [r]", a.mode == modeHome && a.filters.Category == models.CategoryRent && !a.modalOpen),
		a.tab("Favorites [f]", a.mode == modeFavorites && !a.modalOpen),
		a.tab("Contact [c]", a.mode == modeContact && !a.modalOpen),
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom,
		styles.Logo.Render(a.cfg.Agency.Name),
		"  ",
		lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...),
	)
}

func (a App) tab(label string, active bool) string {
	if active {
		return styles.TabActive.Render(label)
	}
	return styles.TabInactive.Render(label)
}

func (a App) renderStatusBar() string {
	left := "q quit  esc back"
	if a.notification != "" && time.Now().Before(a.notifyUntil) {
		left = styles.Notification.Render(a.notification)
	}
	right := styles.Heart.Render("♥") + " " + pluralize(a.user.FavoriteCount(), "favorite", "favorites")
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return styles.StatusBar.Render(left + lipgloss.NewStyle().Width(gap).Render("") + right)
}

func pluralStars(n int) string {
	return pluralize(n, "star", "stars")
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
