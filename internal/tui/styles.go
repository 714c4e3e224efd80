package tui

import "github.com/charmbracelet/lipgloss"

var categoryColors = map[string]lipgloss.Color{
	"blue":   lipgloss.Color("#2563eb"),
	"green":  lipgloss.Color("#16a34a"),
	"yellow": lipgloss.Color("#ca8a04"),
	"red":    lipgloss.Color("#dc2626"),
}

// Styles holds the lipgloss styles of the form.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
	Score    lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Footer   lipgloss.Style
}

// DefaultStyles returns the MassioHealth palette.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1f2937")).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4b5563")),
		Label: lipgloss.NewStyle().
			Bold(true).
			Width(12),
		Focused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2563eb")).
			Bold(true).
			Width(12),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#2563eb")).
			Padding(0, 2),
		Disabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ca3af")).
			Padding(0, 2),
		Score: lipgloss.NewStyle().
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280")).
			Italic(true),
	}
}

// CategoryStyle colours a category block with its band colour.
func (s Styles) CategoryStyle(color string) lipgloss.Style {
	c, ok := categoryColors[color]
	if !ok {
		return s.Card
	}
	return s.Card.BorderForeground(c).Foreground(c)
}
