package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"divinescribe/internal/hymn"
	"divinescribe/internal/notice"
	"divinescribe/internal/scripture"
)

// DefaultMarkdownStyle is the glamour style used for sermons.
const DefaultMarkdownStyle = "dark"

// Options configures the application model.
type Options struct {
	// Context bounds every generation request. Defaults to Background.
	Context context.Context
	Sermons SermonGenerator
	Quizzes QuizGenerator
	Logger  *zap.Logger
	// Delays are the typewriter timings. Zero delays show text at once.
	Delays        Delays
	NoticeTTL     time.Duration
	MarkdownStyle string
}

// AppModel is the root model. It mounts one section view at a time and draws
// the shared chrome (header, notice, back link, footer) around it.
type AppModel struct {
	Section    Section
	Current    View
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Notices    *notice.Board

	opts   Options
	logger *zap.Logger
	size   *tea.WindowSizeMsg
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model showing the home section.
func NewAppModel(opts Options) *AppModel {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.MarkdownStyle == "" {
		opts.MarkdownStyle = DefaultMarkdownStyle
	}

	a := &AppModel{
		Section:    SectionHome,
		KeyHandler: NewKeyHandler(newRegistry()),
		Notices:    notice.NewBoard(opts.NoticeTTL),
		opts:       opts,
		logger:     opts.Logger,
	}
	a.Current = a.newView(SectionHome)
	return a
}

func newRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")
	reg.BindWithDesc("?", func() tea.Msg { return ToggleHelpMsg{} }, "help")
	reg.BindWithDesc("x", func() tea.Msg { return DismissNoticeMsg{} }, "dismiss notice")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")

	nonHome := []Section{SectionReader, SectionSermon, SectionHymns, SectionQuiz}
	reg.BindWithDescForSections("SPC h", selectSectionCmd(SectionHome), "Home", nonHome)
	reg.BindWithDesc("SPC g r", selectSectionCmd(SectionReader), SectionReader.Title())
	reg.BindWithDesc("SPC g s", selectSectionCmd(SectionSermon), SectionSermon.Title())
	reg.BindWithDesc("SPC g y", selectSectionCmd(SectionHymns), SectionHymns.Title())
	reg.BindWithDesc("SPC g z", selectSectionCmd(SectionQuiz), SectionQuiz.Title())
	return reg
}

// AsTeaModel returns a tea.Model for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Close releases the mounted view, canceling any request it still owns.
func (a *AppModel) Close() {
	if c, ok := a.Current.(Closer); ok {
		c.Close()
	}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Current.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.size = &msg
	case SelectSectionMsg:
		return a, a.switchTo(msg.Section)
	case ShowNoticeMsg:
		return a, a.Notices.Show(msg.Notice)
	case notice.ExpiredMsg:
		a.Notices.Update(msg)
		return a, nil
	case DismissNoticeMsg:
		a.Notices.Dismiss()
		return a, nil
	case ToggleHelpMsg:
		a.toggleHelp()
		return a, nil
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}

	return a, a.updateCurrent(msg)
}

// handleKey routes a key press: ctrl+c always quits, an open overlay gets
// the key next, then global bindings (unless the view is taking free text),
// then esc navigation, then the view.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	if s == "ctrl+c" {
		return tea.Quit
	}

	if top, ok := a.Overlays.Peek(); ok {
		if top.IsDismissKey(s) {
			a.Overlays.Pop()
			return nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}

	if !a.capturingText() && a.KeyHandler != nil {
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return cmd
		}
	}

	if s == "esc" {
		if b, ok := a.Current.(BackHandler); ok && b.Back() {
			return nil
		}
		if a.Section != SectionHome {
			return a.switchTo(SectionHome)
		}
		return nil
	}

	return a.updateCurrent(msg)
}

func (a *AppModel) updateCurrent(msg tea.Msg) tea.Cmd {
	v, cmd := a.Current.Update(msg)
	a.Current = v
	return cmd
}

func (a *AppModel) capturingText() bool {
	tc, ok := a.Current.(TextCapturer)
	return ok && tc.CapturingText()
}

func (a *AppModel) toggleHelp() {
	if a.Overlays.Len() > 0 {
		a.Overlays.Pop()
		return
	}
	a.Overlays.Push(Overlay{
		View:    NewHelpOverlay(a.Section, a.viewBindings(), a.KeyHandler.Registry.GlobalBindings()),
		Dismiss: helpDismissKeys,
	})
}

// switchTo unmounts the current view and mounts a fresh one for s.
// Selecting the active section is a no-op.
func (a *AppModel) switchTo(s Section) tea.Cmd {
	if s == a.Section && a.Current != nil {
		return nil
	}
	a.Close()
	a.Overlays.Clear()
	a.logger.Debug("section selected", zap.Stringer("from", a.Section), zap.Stringer("to", s))

	a.Section = s
	a.Current = a.newView(s)
	cmds := []tea.Cmd{a.Current.Init()}
	if a.size != nil {
		cmds = append(cmds, a.updateCurrent(*a.size))
	}
	return tea.Batch(cmds...)
}

func (a *AppModel) newView(s Section) View {
	switch s {
	case SectionReader:
		return NewReaderView(scripture.NewReader(scripture.Passage), a.opts.Delays.Text)
	case SectionSermon:
		return NewSermonView(a.opts.Context, a.opts.Sermons, a.logger, a.opts.MarkdownStyle)
	case SectionHymns:
		return NewHymnsView(hymn.NewBrowser(hymn.Catalog()), a.opts.Delays.Hymn)
	case SectionQuiz:
		return NewQuizView(a.opts.Context, a.opts.Quizzes, a.logger)
	default:
		return NewHomeView(a.opts.Delays)
	}
}

func (a *AppModel) viewBindings() []key.Binding {
	if h, ok := a.Current.(KeyHinter); ok {
		return h.KeyBindings()
	}
	return nil
}

func (a *AppModel) width() int {
	if a.size != nil {
		return a.size.Width
	}
	return defaultWidth
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	w := a.width()
	var b strings.Builder
	b.WriteString(renderHeader(w) + "\n\n")

	if n, ok := a.Notices.Current(); ok {
		b.WriteString(renderNotice(n) + "\n\n")
	}
	if a.Section != SectionHome {
		b.WriteString(renderBack() + "\n\n")
	}

	if top, ok := a.Overlays.Peek(); ok {
		b.WriteString(top.View.View())
	} else {
		b.WriteString(a.Current.View())
	}

	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		b.WriteString("\n" + RenderKeybindHelp(a.KeyHandler, a.Section))
	}

	hints := append(a.viewBindings(),
		key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")))
	b.WriteString("\n\n" + renderFooter(w, hints))
	return b.String()
}
