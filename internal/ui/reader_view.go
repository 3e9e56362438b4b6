package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"divinescribe/internal/scripture"
	"divinescribe/internal/typewriter"
)

var readerKeys = struct {
	Version, Language, Prev, Next, Skip key.Binding
}{
	Version:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "version")),
	Language: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "language")),
	Prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
	Next:     key.NewBinding(key.WithKeys("right", "n"), key.WithHelp("→/n", "next verse")),
	Skip:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip")),
}

// ReaderView shows one verse at a time with selectable version and language.
type ReaderView struct {
	reader *scripture.Reader
	text   typewriter.Model
}

var _ View = (*ReaderView)(nil)

// NewReaderView opens the reader at the start of the passage.
func NewReaderView(r *scripture.Reader, delay time.Duration) *ReaderView {
	return &ReaderView{reader: r, text: typewriter.New(r.DisplayText(), delay)}
}

// Init implements View.
func (v *ReaderView) Init() tea.Cmd {
	return v.text.Init()
}

// Update implements View.
func (v *ReaderView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case typewriter.TickMsg:
		var cmd tea.Cmd
		v.text, cmd = v.text.Update(msg)
		return v, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, readerKeys.Version):
			v.reader.CycleVersion()
			return v, v.restart()
		case key.Matches(msg, readerKeys.Language):
			v.reader.CycleLanguage()
			return v, v.restart()
		case key.Matches(msg, readerKeys.Prev):
			if v.reader.Prev() {
				return v, v.restart()
			}
		case key.Matches(msg, readerKeys.Next):
			if v.reader.Next() {
				return v, v.restart()
			}
		case key.Matches(msg, readerKeys.Skip):
			v.text.Skip()
		}
	}
	return v, nil
}

// restart replays the typewriter from empty. A version switch keeps the
// same words but still restarts.
func (v *ReaderView) restart() tea.Cmd {
	return v.text.Restart(v.reader.DisplayText())
}

// View implements View.
func (v *ReaderView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Heading.Render("📖 "+SectionReader.Title()) + "\n")
	b.WriteString(Styles.Label.Render("Version: ") + Styles.Normal.Render(v.reader.Version().Label) +
		Styles.Muted.Render("   (v)") + "\n")
	b.WriteString(Styles.Label.Render("Language: ") + Styles.Normal.Render(v.reader.Language().Label) +
		Styles.Muted.Render("   (l)") + "\n\n")

	body := Styles.Title.Render(v.reader.Verse().Reference()) + "\n\n" +
		Styles.Normal.Width(60).Render(v.text.View())
	b.WriteString(Styles.Box.Render(body) + "\n")

	b.WriteString(navButton("← Previous", v.reader.HasPrev()) + "   " + navButton("Next Verse →", v.reader.HasNext()))
	return b.String()
}

// KeyBindings implements KeyHinter.
func (v *ReaderView) KeyBindings() []key.Binding {
	return []key.Binding{readerKeys.Version, readerKeys.Language, readerKeys.Prev, readerKeys.Next, readerKeys.Skip}
}

// navButton renders a navigation label, dimmed when it would be a no-op.
func navButton(label string, enabled bool) string {
	if enabled {
		return Styles.Button.Render(label)
	}
	return Styles.Disabled.Render(label)
}
