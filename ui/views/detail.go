package views

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dharti/models"
	"dharti/ui/styles"
	"dharti/whatsapp"
)

// Detail is the property modal: full record, rating input, and the two
// WhatsApp actions. The controller opens and closes it.
type Detail struct {
	width, height int
	prop          models.Property
	userRating    int
	agencyNumber  string
}

func NewDetail(agencyNumber string) Detail {
	return Detail{agencyNumber: agencyNumber}
}

func (d Detail) SetProperty(p models.Property, userRating int) Detail {
	d.prop = p
	d.userRating = userRating
	return d
}

func (d Detail) SetUserRating(r int) Detail {
	d.userRating = r
	return d
}

func (d Detail) SetSize(w, h int) Detail {
	d.width = w
	d.height = h
	return d
}

func (d Detail) Update(msg tea.Msg) (Detail, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch key.String() {
	case "1", "2", "3", "4", "5":
		return d, intent(SubmitRatingMsg{ID: d.prop.ID, Rating: int(key.String()[0] - '0')})
	case " ":
		return d, intent(ToggleFavoriteMsg{ID: d.prop.ID})
	case "w":
		return d, intent(OpenLinkMsg{
			URL:   whatsapp.InquiryLink(d.agencyNumber, d.prop),
			Label: "Contact on WhatsApp",
		})
	case "S":
		return d, intent(OpenLinkMsg{
			URL:   whatsapp.ShareLink(d.prop),
			Label: "Share Property",
		})
	}

	return d, nil
}

func (d Detail) View() string {
	p := d.prop

	price := models.FormatPriceLong(p.Price)
	if p.Category == models.CategoryRent {
		price += "/month"
	}

	width := d.width - 8
	if width < 48 {
		width = 48
	}

	lines := []string{
		styles.Title.Render(p.Title) + "  " + styles.Badge.Render(string(p.Type)),
		styles.Price.Render(price),
		styles.Muted.Render("⌂ " + p.Location),
		"",
		d.renderAttributes(),
		"",
		styles.InputLabel.Render("Description"),
	}
	lines = append(lines, wrapText(p.Description, width)...)

	if len(p.Features) > 0 {
		lines = append(lines, "", styles.InputLabel.Render("Features & Amenities"))
		lines = append(lines, d.renderFeatures(width)...)
	}

	lines = append(lines, "", styles.InputLabel.Render("Rating"))
	lines = append(lines,
		renderStars(int(p.Rating))+styles.StatValue.Render(fmt.Sprintf(" %.1f out of 5", p.Rating)))
	lines = append(lines, styles.Muted.Render("Rate this property: press 1-5"))
	if d.userRating > 0 {
		note := fmt.Sprintf("You rated this property %d star", d.userRating)
		if d.userRating > 1 {
			note += "s"
		}
		lines = append(lines, styles.SuccessText.Render(note))
	}

	lines = append(lines, "",
		styles.Muted.Render("w Contact on WhatsApp  S Share  space favorite  esc close"))

	return styles.CardBorder.Width(width + 4).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (d Detail) renderAttributes() string {
	p := d.prop
	parts := []string{}
	if p.Bedrooms != nil {
		parts = append(parts, fmt.Sprintf("%d Bedrooms", *p.Bedrooms))
	}
	if p.Bathrooms != nil {
		parts = append(parts, fmt.Sprintf("%d Bathrooms", *p.Bathrooms))
	}
	if p.HasParking() {
		parts = append(parts, "Parking Available")
	}
	parts = append(parts, fmt.Sprintf("%d sq ft", p.Area))

	out := ""
	for i, part := range parts {
		if i > 0 {
			out += styles.Muted.Render("  ·  ")
		}
		out += styles.StatValue.Render(part)
	}
	return out
}

func (d Detail) renderFeatures(width int) []string {
	cols := 3
	colWidth := width / cols
	if colWidth < 18 {
		cols = 2
		colWidth = width / cols
	}

	var lines []string
	row := ""
	for i, feature := range d.prop.Features {
		row += fmt.Sprintf("%-*s", colWidth, "• "+truncate(feature, colWidth-3))
		if (i+1)%cols == 0 {
			lines = append(lines, row)
			row = ""
		}
	}
	if row != "" {
		lines = append(lines, row)
	}
	return lines
}
