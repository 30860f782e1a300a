package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Blue     = lipgloss.Color("#89b4fa")
	Mauve    = lipgloss.Color("#cba6f7")
	Red      = lipgloss.Color("#f38ba8")
	Yellow   = lipgloss.Color("#f9e2af")
	Peach    = lipgloss.Color("#fab387")

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Lavender)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Bad   = lipgloss.NewStyle().Foreground(Red).Bold(true)
	Good  = lipgloss.NewStyle().Foreground(Green).Bold(true)
)

// Accent maps the goal color names assigned by the goals module onto the
// palette above.
func Accent(name string) lipgloss.Color {
	switch name {
	case "green":
		return Green
	case "blue":
		return Blue
	case "purple":
		return Mauve
	case "red":
		return Red
	case "yellow":
		return Yellow
	}
	return Text
}
