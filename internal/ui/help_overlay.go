package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// helpDismissKeys close the help overlay.
var helpDismissKeys = []string{"esc", "?", "q"}

// HelpOverlay lists the active section's keys next to the global ones.
type HelpOverlay struct {
	section Section
	local   []key.Binding
	global  []key.Binding
}

var _ View = (*HelpOverlay)(nil)

// NewHelpOverlay builds the overlay for section.
func NewHelpOverlay(section Section, local, global []key.Binding) *HelpOverlay {
	return &HelpOverlay{section: section, local: local, global: global}
}

func (h *HelpOverlay) Init() tea.Cmd { return nil }

func (h *HelpOverlay) Update(tea.Msg) (View, tea.Cmd) { return h, nil }

func (h *HelpOverlay) View() string {
	hm := newHelpModel()
	var groups [][]key.Binding
	if len(h.local) > 0 {
		groups = append(groups, h.local)
	}
	groups = append(groups, append(h.global,
		key.NewBinding(key.WithKeys(" "), key.WithHelp("SPC", "leader menu"))))

	body := lipgloss.JoinVertical(lipgloss.Left,
		Styles.Heading.Render("Keys: "+h.section.Title()),
		hm.FullHelpView(groups),
		"",
		Styles.Muted.Render("esc or ?: close"),
	)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(1, 2).
		Render(body)
}
