package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// newHelpModel returns a help.Model with the shared key/description colors.
func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = Styles.Key
	h.Styles.ShortDesc = Styles.Muted
	h.Styles.ShortSeparator = Styles.Muted
	h.Styles.FullKey = Styles.Key
	h.Styles.FullDesc = Styles.Muted
	h.Styles.FullSeparator = Styles.Muted
	return h
}

// RenderKeybindHelp produces the transient help bar shown after SPC.
// When the handler has a pending sequence (e.g. "SPC g"), it shows the
// next-level hints.
func RenderKeybindHelp(keyHandler *KeyHandler, section Section) string {
	if keyHandler == nil {
		return ""
	}
	bindings := NewKeyMap(keyHandler.Registry, keyHandler, section).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	prefix := keyHandler.LeaderSeq
	if seq := keyHandler.CurrentSeq(); seq != "" {
		prefix = seq
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)

	content := Styles.Muted.Render(prefix) + " " + newHelpModel().ShortHelpView(bindings)
	return boxStyle.Render(content)
}
