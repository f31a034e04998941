package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TruncID shortens a UUID to its first 8 characters for display.
func TruncID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// HumanDate formats a date like "Mar 20, 2024".
func HumanDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// HumanTime formats a timestamp like "Mar 20, 2024 9:00 AM".
func HumanTime(t time.Time) string {
	return t.Format("Jan 2, 2006 3:04 PM")
}

// Hours formats a duration in hours without trailing zeros, e.g. "2.5h".
func Hours(h float64) string {
	return fmt.Sprintf("%gh", h)
}

// Money formats a dollar amount.
func Money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
