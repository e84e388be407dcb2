// Package style provides the colors and icons shared by terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)

// Accent renders s in the brand color, used for handles and section titles.
func Accent(s string) string {
	return lipgloss.NewStyle().Foreground(Iris).Bold(true).Render(s)
}

// Muted renders s in the secondary text color.
func Muted(s string) string {
	return lipgloss.NewStyle().Foreground(Slate).Render(s)
}
