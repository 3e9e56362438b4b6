package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"divinescribe/internal/hymn"
	"divinescribe/internal/typewriter"
	"divinescribe/internal/ui/textutil"
)

var hymnKeys = struct {
	Down, Up, Open, Prev, Next, Play, Skip key.Binding
}{
	Down: key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/k", "move")),
	Up:   key.NewBinding(key.WithKeys("k", "up")),
	Open: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Prev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous verse")),
	Next: key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/n", "next verse")),
	Play: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "play/pause")),
	Skip: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip")),
}

const hymnTitleWidth = 24

// HymnsView lists the catalog and reads one hymn verse by verse.
type HymnsView struct {
	browser *hymn.Browser
	cursor  int
	verse   typewriter.Model
	delay   time.Duration
}

var _ View = (*HymnsView)(nil)

// NewHymnsView starts in list mode.
func NewHymnsView(b *hymn.Browser, delay time.Duration) *HymnsView {
	return &HymnsView{browser: b, delay: delay, verse: typewriter.New("", delay)}
}

// Init implements View.
func (v *HymnsView) Init() tea.Cmd { return nil }

// Back implements BackHandler: esc leaves a hymn for the list first.
func (v *HymnsView) Back() bool {
	if v.browser.Current() == nil {
		return false
	}
	v.browser.Back()
	v.verse = typewriter.New("", v.delay)
	return true
}

// Update implements View.
func (v *HymnsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case typewriter.TickMsg:
		var cmd tea.Cmd
		v.verse, cmd = v.verse.Update(msg)
		return v, cmd
	case tea.KeyMsg:
		if v.browser.Current() == nil {
			return v, v.updateList(msg)
		}
		return v, v.updateHymn(msg)
	}
	return v, nil
}

func (v *HymnsView) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, hymnKeys.Down):
		if v.cursor < len(v.browser.Hymns())-1 {
			v.cursor++
		}
	case key.Matches(msg, hymnKeys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, hymnKeys.Open):
		if err := v.browser.Select(v.cursor); err != nil {
			return nil
		}
		return v.verse.Restart(v.browser.VerseText())
	}
	return nil
}

func (v *HymnsView) updateHymn(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, hymnKeys.Prev):
		if v.browser.Prev() {
			return v.verse.Restart(v.browser.VerseText())
		}
	case key.Matches(msg, hymnKeys.Next):
		if v.browser.Next() {
			return v.verse.Restart(v.browser.VerseText())
		}
	case key.Matches(msg, hymnKeys.Play):
		v.browser.TogglePlay()
	case key.Matches(msg, hymnKeys.Skip):
		v.verse.Skip()
	}
	return nil
}

// View implements View.
func (v *HymnsView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Heading.Render("🎵 "+SectionHymns.Title()) + "\n")
	if h := v.browser.Current(); h != nil {
		b.WriteString(v.renderHymn(h))
	} else {
		b.WriteString(v.renderList())
	}
	return b.String()
}

func (v *HymnsView) renderList() string {
	var lines []string
	for i, h := range v.browser.Hymns() {
		title := textutil.PadRight(h.Title, hymnTitleWidth)
		line := "  " + title + Styles.Muted.Render("by "+h.Author)
		if i == v.cursor {
			line = Styles.Selected.Render("▸ "+title) + Styles.Muted.Render("by "+h.Author)
		}
		lines = append(lines, line)
	}
	return Styles.Box.Render(strings.Join(lines, "\n"))
}

func (v *HymnsView) renderHymn(h *hymn.Hymn) string {
	header := Styles.Title.Render(h.Title) + "\n" +
		Styles.Muted.Render("by "+h.Author) + "\n" +
		Styles.Normal.Render(fmt.Sprintf("Verse %d of %d", v.browser.Verse()+1, len(h.Verses)))

	play := "▶ Play"
	if v.browser.Playing() {
		play = "⏸ Pause"
	}
	controls := navButton("← Previous Verse", v.browser.HasPrev()) + "   " +
		Styles.Button.Render(play) + "   " +
		navButton("Next Verse →", v.browser.HasNext())

	body := header + "\n\n" + Styles.Normal.Render(v.verse.View())
	return Styles.Box.Render(body) + "\n" + controls + "\n\n" + Styles.Muted.Render("esc: Back to Hymn List")
}

// KeyBindings implements KeyHinter.
func (v *HymnsView) KeyBindings() []key.Binding {
	if v.browser.Current() == nil {
		return []key.Binding{hymnKeys.Down, hymnKeys.Open}
	}
	return []key.Binding{hymnKeys.Prev, hymnKeys.Next, hymnKeys.Play, hymnKeys.Skip}
}
