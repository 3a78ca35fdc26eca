package styles

import "github.com/charmbracelet/lipgloss"

var (
	GoldColor    = lipgloss.Color("#D4AF37")
	AccentColor  = lipgloss.Color("#F5D576")
	SuccessColor = lipgloss.Color("#22C55E")
	ErrorColor   = lipgloss.Color("#EF4444")
	HeartColor   = lipgloss.Color("#EF4444")
	MutedColor   = lipgloss.Color("#6B7280")
	SurfaceColor = lipgloss.Color("#1F2937")
	TextColor    = lipgloss.Color("#F9FAFB")

	Muted = lipgloss.NewStyle().Foreground(MutedColor)

	Logo = lipgloss.NewStyle().
		Bold(true).
		Foreground(GoldColor).
		Padding(0, 1)

	Tagline = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)

	TabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(SurfaceColor).
			Background(GoldColor).
			Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(GoldColor).
		Padding(0, 1)

	StatusBar = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 1)

	CardBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(GoldColor).
			Padding(0, 1)

	PanelBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(MutedColor).
			Padding(0, 1)

	Badge = lipgloss.NewStyle().
		Bold(true).
		Foreground(SurfaceColor).
		Background(AccentColor).
		Padding(0, 1)

	Price = lipgloss.NewStyle().
		Bold(true).
		Foreground(GoldColor)

	StatValue = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	StatLabel = lipgloss.NewStyle().
			Foreground(MutedColor)

	TableHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(GoldColor).
			Padding(0, 1)

	TableSelected = lipgloss.NewStyle().
			Background(GoldColor).
			Foreground(SurfaceColor)

	Heart = lipgloss.NewStyle().Foreground(HeartColor)

	StarFilled = lipgloss.NewStyle().Foreground(GoldColor)
	StarEmpty  = lipgloss.NewStyle().Foreground(MutedColor)

	Notification = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Padding(0, 1)

	ErrorText   = lipgloss.NewStyle().Foreground(ErrorColor)
	SuccessText = lipgloss.NewStyle().Foreground(SuccessColor)

	InputLabel = lipgloss.NewStyle().
			Foreground(MutedColor).
			Bold(true)
)
