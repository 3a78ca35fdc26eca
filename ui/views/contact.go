package views

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dharti/config"
	"dharti/services"
	"dharti/ui/styles"
	"dharti/whatsapp"
)

const (
	submitDelay = 1500 * time.Millisecond
	resetDelay  = 5 * time.Second
)

type contactPhase int

const (
	phaseIdle contactPhase = iota
	phaseSubmitting
	phaseSubmitted
)

// contactPhaseMsg advances the simulated submission. The token ties a
// timer to the submission that scheduled it, so a timer outliving its
// form state is ignored instead of firing into a newer submission.
type contactPhaseMsg struct {
	token int
	phase contactPhase
}

const (
	contactName = iota
	contactPhone
	contactEmail
	contactMessage
	contactFieldCount
)

// Contact is the inquiry surface: the agency card plus the message
// form. Submission is simulated; the message itself is recorded locally
// by the contact service.
type Contact struct {
	svc    *services.ContactService
	agency config.AgencyConfig

	width, height int
	name          textinput.Model
	phone         textinput.Model
	email         textinput.Model
	message       textarea.Model
	focus         int

	phase   contactPhase
	token   int
	errText string
}

func NewContact(svc *services.ContactService, agency config.AgencyConfig) Contact {
	name := textinput.New()
	name.Placeholder = "Your full name"
	name.CharLimit = 64
	name.Width = 32
	name.Focus()

	phone := textinput.New()
	phone.Placeholder = "Your phone number"
	phone.CharLimit = 20
	phone.Width = 32

	email := textinput.New()
	email.Placeholder = "your@email.com"
	email.CharLimit = 64
	email.Width = 32

	message := textarea.New()
	message.Placeholder = "Tell us about your requirements..."
	message.CharLimit = 500
	message.SetWidth(40)
	message.SetHeight(4)

	return Contact{
		svc:     svc,
		agency:  agency,
		name:    name,
		phone:   phone,
		email:   email,
		message: message,
	}
}

func (c Contact) Init() tea.Cmd {
	return textinput.Blink
}

func (c Contact) SetSize(w, h int) Contact {
	c.width = w
	c.height = h
	return c
}

func (c Contact) Update(msg tea.Msg) (Contact, tea.Cmd) {
	switch msg := msg.(type) {
	case contactPhaseMsg:
		if msg.token != c.token {
			return c, nil
		}
		switch msg.phase {
		case phaseSubmitted:
			c.phase = phaseSubmitted
			c.clearFields()
			return c, c.schedule(phaseIdle, resetDelay)
		case phaseIdle:
			c.phase = phaseIdle
		}
		return c, nil

	case tea.KeyMsg:
		if c.phase != phaseIdle {
			return c, nil
		}
		switch msg.String() {
		case "tab", "down":
			return c.setFocus((c.focus + 1) % contactFieldCount), nil
		case "shift+tab", "up":
			if c.focus == contactMessage && msg.String() == "up" {
				break // let the textarea move its own cursor
			}
			return c.setFocus((c.focus + contactFieldCount - 1) % contactFieldCount), nil
		case "ctrl+s":
			return c.submit()
		case "ctrl+w":
			return c, intent(OpenLinkMsg{
				URL:   whatsapp.GeneralLink(c.agency.WhatsApp),
				Label: "WhatsApp Us",
			})
		}
	}

	var cmd tea.Cmd
	switch c.focus {
	case contactName:
		c.name, cmd = c.name.Update(msg)
	case contactPhone:
		c.phone, cmd = c.phone.Update(msg)
	case contactEmail:
		c.email, cmd = c.email.Update(msg)
	case contactMessage:
		c.message, cmd = c.message.Update(msg)
	}
	return c, cmd
}

func (c Contact) submit() (Contact, tea.Cmd) {
	_, err := c.svc.Submit(c.name.Value(), c.email.Value(), c.phone.Value(), c.message.Value())
	if err != nil {
		c.errText = err.Error()
		return c, nil
	}

	c.errText = ""
	c.phase = phaseSubmitting
	c.token++
	return c, c.schedule(phaseSubmitted, submitDelay)
}

func (c Contact) schedule(phase contactPhase, after time.Duration) tea.Cmd {
	token := c.token
	return tea.Tick(after, func(time.Time) tea.Msg {
		return contactPhaseMsg{token: token, phase: phase}
	})
}

func (c *Contact) clearFields() {
	c.name.SetValue("")
	c.phone.SetValue("")
	c.email.SetValue("")
	c.message.SetValue("")
}

func (c Contact) setFocus(focus int) Contact {
	c.focus = focus
	c.name.Blur()
	c.phone.Blur()
	c.email.Blur()
	c.message.Blur()

	switch focus {
	case contactName:
		c.name.Focus()
	case contactPhone:
		c.phone.Focus()
	case contactEmail:
		c.email.Focus()
	case contactMessage:
		c.message.Focus()
	}
	return c
}

func (c Contact) View() string {
	card := c.renderAgencyCard()
	form := c.renderForm()

	header := styles.Title.Render("Get in Touch") + "\n" +
		styles.Muted.Render("Ready to find your dream property? Contact our expert team for personalized assistance.")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, card, " ", form),
	)
}

func (c Contact) renderAgencyCard() string {
	lines := []string{
		styles.InputLabel.Render("Contact Information"),
		"",
		styles.StatLabel.Render("Phone   ") + c.agency.Phone,
		styles.StatLabel.Render("Email   ") + c.agency.Email,
	}
	lines = appendWrapped(lines, "Address ", c.agency.Address)
	lines = appendWrapped(lines, "Hours   ", c.agency.Hours)
	lines = append(lines, "", styles.Muted.Render("ctrl+w WhatsApp Us"))

	return styles.PanelBorder.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func appendWrapped(lines []string, label, value string) []string {
	wrapped := wrapText(value, 34)
	if len(wrapped) == 0 {
		return lines
	}
	lines = append(lines, styles.StatLabel.Render(label)+wrapped[0])
	for _, line := range wrapped[1:] {
		lines = append(lines, "        "+line)
	}
	return lines
}

func (c Contact) renderForm() string {
	if c.phase == phaseSubmitted {
		body := lipgloss.JoinVertical(lipgloss.Left,
			styles.SuccessText.Render("Message Sent!"),
			styles.Muted.Render("Thank you for contacting us. We'll get back to you soon."),
		)
		return styles.CardBorder.Render(body)
	}

	rows := []string{
		styles.InputLabel.Render("Send us a Message"),
		c.fieldRow(contactName, "Name *   ", c.name.View()),
		c.fieldRow(contactPhone, "Phone    ", c.phone.View()),
		c.fieldRow(contactEmail, "Email *  ", c.email.View()),
		c.fieldRow(contactMessage, "Message *", ""),
		c.message.View(),
	}

	if c.errText != "" {
		rows = append(rows, styles.ErrorText.Render(c.errText))
	}

	if c.phase == phaseSubmitting {
		rows = append(rows, styles.Muted.Render("Sending..."))
	} else {
		rows = append(rows, styles.Muted.Render("tab next field  ctrl+s send  esc back"))
	}

	return styles.CardBorder.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (c Contact) fieldRow(field int, label, input string) string {
	marker := "  "
	if c.focus == field {
		marker = styles.StarFilled.Render("> ")
	}
	return marker + styles.InputLabel.Render(label) + " " + input
}
