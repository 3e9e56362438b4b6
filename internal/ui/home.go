package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"divinescribe/internal/typewriter"
)

const (
	heroTitle    = "Divine Scribe"
	heroSubtitle = "Your AI-Powered Bible Study Companion"
	heroBlurb    = "Explore God's Word with multiple translations, AI-generated sermons, " +
		"beautiful hymns, and interactive quizzes."
	featuresHeading = "Discover God's Word Like Never Before"
	defaultWidth    = 80
)

// Delays are the per-rune typewriter delays.
type Delays struct {
	Text     time.Duration // default, used by the reader and the hero title
	Hymn     time.Duration
	Subtitle time.Duration
}

// DefaultDelays returns the built-in typewriter timings.
func DefaultDelays() Delays {
	return Delays{
		Text:     typewriter.DefaultDelay,
		Hymn:     50 * time.Millisecond,
		Subtitle: 40 * time.Millisecond,
	}
}

var homeKeys = struct {
	Next, Prev, Open, Jump, Skip key.Binding
}{
	Next: key.NewBinding(key.WithKeys("j", "down", "l", "right"), key.WithHelp("j/k", "move")),
	Prev: key.NewBinding(key.WithKeys("k", "up", "h", "left")),
	Open: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Jump: key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "jump")),
	Skip: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip")),
}

// HomeView shows the hero text and the four feature cards.
type HomeView struct {
	selected int
	title    typewriter.Model
	subtitle typewriter.Model
	width    int
}

var _ View = (*HomeView)(nil)

// NewHomeView creates the home screen with the first card selected.
func NewHomeView(d Delays) *HomeView {
	return &HomeView{
		title:    typewriter.New(heroTitle, d.Text),
		subtitle: typewriter.New(heroSubtitle, d.Subtitle),
	}
}

// Selected returns the index of the highlighted card.
func (h *HomeView) Selected() int { return h.selected }

// Init implements View.
func (h *HomeView) Init() tea.Cmd {
	return tea.Batch(h.title.Init(), h.subtitle.Init())
}

// Update implements View.
func (h *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
		return h, nil
	case typewriter.TickMsg:
		var c1, c2 tea.Cmd
		h.title, c1 = h.title.Update(msg)
		h.subtitle, c2 = h.subtitle.Update(msg)
		return h, tea.Batch(c1, c2)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, homeKeys.Next):
			if h.selected < len(featureCards)-1 {
				h.selected++
			}
		case key.Matches(msg, homeKeys.Prev):
			if h.selected > 0 {
				h.selected--
			}
		case key.Matches(msg, homeKeys.Open):
			return h, selectSectionCmd(featureCards[h.selected].Target)
		case key.Matches(msg, homeKeys.Jump):
			idx := int(msg.String()[0] - '1')
			h.selected = idx
			return h, selectSectionCmd(featureCards[idx].Target)
		case key.Matches(msg, homeKeys.Skip):
			h.title.Skip()
			h.subtitle.Skip()
		}
	}
	return h, nil
}

// View implements View.
func (h *HomeView) View() string {
	width := h.width
	if width == 0 {
		width = defaultWidth
	}
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(center.Render(Styles.Title.Render(h.title.View())) + "\n")
	b.WriteString(center.Render(Styles.Subtitle.Render(h.subtitle.View())) + "\n\n")
	b.WriteString(center.Render(Styles.Muted.Render(heroBlurb)) + "\n\n")
	b.WriteString(center.Render(Styles.Heading.Render(featuresHeading)) + "\n")
	b.WriteString(h.renderCards(width))
	return b.String()
}

// renderCards lays the cards out in one row, a 2x2 grid or a column,
// whichever fits width.
func (h *HomeView) renderCards(width int) string {
	perRow := 1
	switch {
	case width >= 4*cardWidth:
		perRow = 4
	case width >= 2*cardWidth:
		perRow = 2
	}
	w := cardWidth
	if perRow == 1 {
		w = width
	}

	var rows []string
	for start := 0; start < len(featureCards); start += perRow {
		var cells []string
		for i := start; i < start+perRow && i < len(featureCards); i++ {
			cells = append(cells, RenderFeatureCard(featureCards[i], i+1, i == h.selected, w))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// KeyBindings implements KeyHinter.
func (h *HomeView) KeyBindings() []key.Binding {
	return []key.Binding{homeKeys.Next, homeKeys.Open, homeKeys.Jump, homeKeys.Skip}
}
