// Package whatsapp builds wa.me deep links with pre-filled messages.
// Nothing here performs a network call; the URL is handed to the
// platform opener and no response is awaited.
package whatsapp

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"dharti/models"
)

const baseURL = "https://wa.me/"

// ShareLink builds the "share this property" link with no recipient.
func ShareLink(p models.Property) string {
	msg := fmt.Sprintf("Check out this property: %s - %s at %s",
		p.Title, models.FormatPriceLong(p.Price), p.Location)
	return baseURL + "?text=" + encode(msg)
}

// InquiryLink targets the agency number with a property inquiry.
func InquiryLink(number string, p models.Property) string {
	msg := fmt.Sprintf("Hi! I'm interested in the property: %s located at %s. Could you please provide more details?",
		p.Title, p.Location)
	return baseURL + number + "?text=" + encode(msg)
}

// GeneralLink is the fixed services greeting from the contact section.
func GeneralLink(number string) string {
	msg := "Hi DHARTI Team! I'm interested in your real estate services. Could you please provide more information?"
	return baseURL + number + "?text=" + encode(msg)
}

// encode matches percent-encoding of spaces rather than form-style "+",
// which wa.me renders literally inside the message body.
func encode(msg string) string {
	return strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
}

// Open hands a URL to the desktop environment. Failure is returned to
// the caller for display; the application keeps running either way.
func Open(link string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", link)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", link)
	default:
		cmd = exec.Command("xdg-open", link)
	}
	return cmd.Start()
}
