package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"dharti/models"
)

// User intents emitted by the presentational views. The top-level model
// owns the filter criteria and the user state store; views never mutate
// either directly.

type ToggleFavoriteMsg struct {
	ID string
}

type SubmitRatingMsg struct {
	ID     string
	Rating int
}

type ViewDetailsMsg struct {
	ID string
}

type ApplyFiltersMsg struct {
	Criteria models.FilterCriteria
}

type ClearFiltersMsg struct{}

type OpenLinkMsg struct {
	URL   string
	Label string
}

func intent(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
