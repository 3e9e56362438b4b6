package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"divinescribe/internal/notice"
)

const (
	appName     = "Divine Scribe"
	appTagline  = "Your Bible Study Companion"
	footerText  = "© 2024 Divine Scribe. Built with love for God's Word."
	backToHome  = "← Back to Home (esc)"
	minRuleSize = 20
)

// KeyHinter is implemented by views that advertise their keys in the footer
// and the help overlay.
type KeyHinter interface {
	KeyBindings() []key.Binding
}

// renderHeader draws the title bar.
func renderHeader(width int) string {
	line := Styles.Title.Render("📖 "+appName) + Styles.Muted.Render(" — ") + Styles.Tagline.Render(appTagline)
	return line + "\n" + rule(width)
}

// renderFooter draws the key hints and the copyright line.
func renderFooter(width int, hints []key.Binding) string {
	var b strings.Builder
	b.WriteString(rule(width) + "\n")
	if len(hints) > 0 {
		h := newHelpModel()
		if width > 0 {
			h.Width = width
		}
		b.WriteString(h.ShortHelpView(hints) + "\n")
	}
	b.WriteString(Styles.Footer.Render(footerText))
	return b.String()
}

// renderBack draws the line shown above every section except home.
func renderBack() string {
	return Styles.Back.Render(backToHome)
}

// renderNotice draws n in a box styled by its variant.
func renderNotice(n notice.Notice) string {
	box := Styles.BoxSelected.Padding(0, 1)
	title := Styles.Title.Render(n.Title)
	if n.Variant == notice.VariantDestructive {
		box = Styles.BoxDanger
		title = Styles.Wrong.Bold(true).Render(n.Title)
	}
	body := title
	if n.Description != "" {
		body += "\n" + Styles.Normal.Render(n.Description)
	}
	body += "\n" + Styles.Muted.Render("x: dismiss")
	return box.Render(body)
}

func rule(width int) string {
	if width < minRuleSize {
		width = minRuleSize
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDim)).Render(strings.Repeat("─", width))
}
