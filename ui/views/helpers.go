package views

import (
	"fmt"
	"strings"

	"dharti/ui/styles"
)

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func wrapText(text string, width int) []string {
	if width <= 0 {
		width = 40
	}
	var lines []string
	words := strings.Fields(text)
	var line string
	for _, word := range words {
		if len(line)+len(word)+1 > width {
			lines = append(lines, line)
			line = word
		} else {
			if line != "" {
				line += " "
			}
			line += word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// renderStars paints n of 5 stars filled. Fractional ratings round
// down to whole stars.
func renderStars(n int) string {
	var b strings.Builder
	for i := 0; i < 5; i++ {
		if i < n {
			b.WriteString(styles.StarFilled.Render("★"))
		} else {
			b.WriteString(styles.StarEmpty.Render("☆"))
		}
	}
	return b.String()
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
