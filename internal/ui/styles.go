package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorGold    = "178" // headings, selection, primary actions
	ColorCream   = "230" // body text
	ColorBlue    = "75"  // sermon accents
	ColorAccent  = "86"  // key hints, borders of transient boxes
	ColorCorrect = "42"  // right answers
	ColorDanger  = "196" // wrong answers, destructive notices
	ColorMuted   = "245" // dimmed text, hints
	ColorDim     = "240" // disabled controls
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title    lipgloss.Style // app name in the header
	Tagline  lipgloss.Style // header tagline
	Heading  lipgloss.Style // section headings
	Subtitle lipgloss.Style // hero subtitle

	Box         lipgloss.Style // card with rounded border
	BoxSelected lipgloss.Style // focused or selected card
	BoxDanger   lipgloss.Style // destructive notice

	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Key      lipgloss.Style // key names in hints
	Selected lipgloss.Style
	Label    lipgloss.Style // form labels
	Button   lipgloss.Style // enabled action
	Disabled lipgloss.Style // disabled action
	Correct  lipgloss.Style
	Wrong    lipgloss.Style
	Back     lipgloss.Style // "Back to Home" line
	Footer   lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorGold)),
	Tagline: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorCream)),
	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorGold)).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(ColorCream)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(1, 2),
	BoxSelected: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorGold)).
		Padding(1, 2),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(0, 1),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorCream)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Key: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorGold)).
		Bold(true),
	Label: lipgloss.NewStyle().
		Bold(true),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorGold)).
		Bold(true),
	Disabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Correct: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorCorrect)),
	Wrong: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Back: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorGold)),
	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
