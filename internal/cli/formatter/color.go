package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/izayahhudnut/detailerpro/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusColor returns the style for a job status.
func StatusColor(status domain.JobStatus) lipgloss.Style {
	switch status {
	case domain.JobDone:
		return StyleGreen
	case domain.JobQA:
		return StylePurple
	case domain.JobInProgress:
		return StyleYellow
	case domain.JobNotStarted:
		return StyleBlue
	default:
		return StyleDim
	}
}

// StatusBadge renders a colored status marker such as "● in-progress".
func StatusBadge(status domain.JobStatus) string {
	return StatusColor(status).Render("● " + string(status))
}

// StockIndicator renders the stock level for an inventory item, flagging
// low-stock items in red.
func StockIndicator(item *domain.InventoryItem) string {
	qty := fmt.Sprintf("%g %s", item.Quantity, item.Unit)
	if item.LowStock() {
		return StyleRed.Render(qty + " (low)")
	}
	return StyleGreen.Render(qty)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
