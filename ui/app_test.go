package ui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dharti/catalog"
	"dharti/config"
	"dharti/models"
	"dharti/services"
	"dharti/storage"
	"dharti/ui/views"
)

func newTestApp(t *testing.T) App {
	t.Helper()

	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cat, err := catalog.Load("")
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}

	user := services.NewUserStateService(store)
	user.Load()
	contact := services.NewContactService(store)

	cfg := &config.Config{
		SplashDelay: time.Millisecond,
		Agency: config.AgencyConfig{
			Name:     "DHARTI",
			Tagline:  "Luxury Real Estate",
			WhatsApp: "919999999999",
		},
	}

	app := New(cfg, cat, user, contact)
	app = update(app, splashDoneMsg{})
	app = update(app, tea.WindowSizeMsg{Width: 120, Height: 40})
	return app
}

func update(app App, msg tea.Msg) App {
	m, _ := app.Update(msg)
	return m.(App)
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTabSwitching(t *testing.T) {
	app := newTestApp(t)
	if app.mode != modeHome {
		t.Fatalf("initial mode = %v, want home", app.mode)
	}

	app = update(app, key('f'))
	if app.mode != modeFavorites {
		t.Fatalf("after f: mode = %v, want favorites", app.mode)
	}

	app = update(app, key('c'))
	if app.mode != modeContact {
		t.Fatalf("after c: mode = %v, want contact", app.mode)
	}

	app = update(app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.mode != modeHome {
		t.Fatalf("after esc: mode = %v, want home", app.mode)
	}
}

func TestCategorySwitchPreservesOtherFilters(t *testing.T) {
	app := newTestApp(t)

	app = update(app, views.ApplyFiltersMsg{Criteria: models.FilterCriteria{
		Category: models.CategoryBuy,
		Location: models.FilterLocation("mumbai"),
		MaxPrice: models.FilterPrice(100000000),
	}})

	app = update(app, key('r'))
	if app.filters.Category != models.CategoryRent {
		t.Fatalf("category = %v, want rent", app.filters.Category)
	}
	if app.filters.Location == nil || *app.filters.Location != "mumbai" {
		t.Fatalf("location filter lost on category switch")
	}
	if app.filters.MaxPrice == nil || *app.filters.MaxPrice != 100000000 {
		t.Fatalf("price filter lost on category switch")
	}
}

func TestClearFiltersKeepsCategory(t *testing.T) {
	app := newTestApp(t)

	app = update(app, key('r'))
	app = update(app, views.ApplyFiltersMsg{Criteria: models.FilterCriteria{
		Category: models.CategoryRent,
		Type:     models.FilterType(models.TypeApartment),
	}})
	app = update(app, views.ClearFiltersMsg{})

	if app.filters.Category != models.CategoryRent {
		t.Fatalf("clear reset the category to %v", app.filters.Category)
	}
	if app.filters.Type != nil {
		t.Fatalf("clear kept the type constraint")
	}
}

func TestToggleFavoriteUpdatesStateAndNotifies(t *testing.T) {
	app := newTestApp(t)

	app = update(app, views.ToggleFavoriteMsg{ID: "3"})
	if !app.user.IsFavorite("3") {
		t.Fatalf("property 3 not favorited")
	}
	if app.notification != "Added to favorites" {
		t.Fatalf("notification = %q", app.notification)
	}

	app = update(app, views.ToggleFavoriteMsg{ID: "3"})
	if app.user.IsFavorite("3") {
		t.Fatalf("second toggle should remove the favorite")
	}
	if app.notification != "Removed from favorites" {
		t.Fatalf("notification = %q", app.notification)
	}
}

func TestSubmitRatingPersists(t *testing.T) {
	app := newTestApp(t)

	app = update(app, views.SubmitRatingMsg{ID: "2", Rating: 4})
	if got := app.user.RatingFor("2"); got != 4 {
		t.Fatalf("rating = %d, want 4", got)
	}

	app = update(app, views.SubmitRatingMsg{ID: "2", Rating: 1})
	if got := app.user.RatingFor("2"); got != 1 {
		t.Fatalf("second rating = %d, want 1", got)
	}
}

func TestViewDetailsOpensAndClosesModal(t *testing.T) {
	app := newTestApp(t)

	app = update(app, views.ViewDetailsMsg{ID: "1"})
	if !app.modalOpen {
		t.Fatalf("modal not opened for property 1")
	}

	app = update(app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.modalOpen {
		t.Fatalf("esc did not close the modal")
	}
	if app.mode != modeHome {
		t.Fatalf("closing the modal changed the mode to %v", app.mode)
	}
}

func TestViewDetailsUnknownIDIsIgnored(t *testing.T) {
	app := newTestApp(t)

	app = update(app, views.ViewDetailsMsg{ID: "999"})
	if app.modalOpen {
		t.Fatalf("modal opened for unknown property")
	}
}

func TestKeysIgnoredDuringSplash(t *testing.T) {
	app := newTestApp(t)
	app.loading = true

	app = update(app, key('f'))
	if app.mode != modeHome {
		t.Fatalf("splash screen routed a key press")
	}
}

func TestQuitKeys(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(key('q'))
	if cmd == nil || cmd() != tea.Quit() {
		t.Fatalf("q should quit from the listing")
	}

	app = update(app, key('c'))
	_, cmd = app.Update(key('q'))
	if cmd != nil {
		if msg := cmd(); msg == tea.Quit() {
			t.Fatalf("q should type into the contact form, not quit")
		}
	}
}
