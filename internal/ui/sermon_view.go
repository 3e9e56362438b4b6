package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"divinescribe/internal/completion"
	"divinescribe/internal/notice"
	"divinescribe/internal/sermon"
)

// SermonGenerator produces sermon text for a verse.
type SermonGenerator interface {
	Generate(ctx context.Context, credential, verse string) (string, error)
}

const (
	focusCredential = "credential"
	focusVerse      = "verse"
	focusSermon     = "sermon"

	apiKeyHint         = "Get your free API key from https://platform.deepseek.com"
	defaultOutputLines = 14
	formWidth          = 60
)

var sermonKeys = struct {
	Generate, Next, Prev key.Binding
}{
	Generate: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "generate")),
	Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	Prev:     key.NewBinding(key.WithKeys("shift+tab")),
}

// SermonView collects a credential and a verse and shows the generated
// sermon. It owns a context that Close cancels, so a request still running
// when the user leaves is abandoned and its result dropped.
type SermonView struct {
	ctx    context.Context
	cancel context.CancelFunc
	gen    SermonGenerator
	logger *zap.Logger

	credential textinput.Model
	verse      textarea.Model
	focus      *FocusManager
	spinner    spinner.Model
	output     viewport.Model
	style      string // glamour standard style name

	sermon  string
	loading bool
	pending string // request ID of the in-flight request
	closed  bool
	width   int
}

var (
	_ View         = (*SermonView)(nil)
	_ Closer       = (*SermonView)(nil)
	_ TextCapturer = (*SermonView)(nil)
)

// NewSermonView creates the sermon form. Requests run under a child of
// parent. markdownStyle names a glamour standard style ("dark", "light",
// "notty").
func NewSermonView(parent context.Context, gen SermonGenerator, logger *zap.Logger, markdownStyle string) *SermonView {
	ctx, cancel := context.WithCancel(parent)

	ti := textinput.New()
	ti.Placeholder = "Enter your DeepSeek API key"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.Width = formWidth
	ti.Focus()

	ta := textarea.New()
	ta.Placeholder = "Enter the Bible verse or passage for your sermon..."
	ta.ShowLineNumbers = false
	ta.SetWidth(formWidth)
	ta.SetHeight(3)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue))

	return &SermonView{
		ctx:        ctx,
		cancel:     cancel,
		gen:        gen,
		logger:     logger,
		credential: ti,
		verse:      ta,
		focus:      NewFocusManager(focusCredential, focusVerse),
		spinner:    sp,
		output:     viewport.New(formWidth+4, defaultOutputLines),
		style:      markdownStyle,
	}
}

// Init implements View.
func (v *SermonView) Init() tea.Cmd {
	return textinput.Blink
}

// Close implements Closer.
func (v *SermonView) Close() {
	v.closed = true
	v.cancel()
}

// CapturingText implements TextCapturer.
func (v *SermonView) CapturingText() bool {
	return !v.focus.Is(focusSermon)
}

// Loading reports whether a request is in flight.
func (v *SermonView) Loading() bool { return v.loading }

// Sermon returns the last generated sermon text.
func (v *SermonView) Sermon() string { return v.sermon }

// Update implements View.
func (v *SermonView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize(msg.Width)
		return v, nil
	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case sermonResultMsg:
		return v, v.handleResult(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, sermonKeys.Generate):
			return v, v.generate()
		case key.Matches(msg, sermonKeys.Next):
			v.focus.Next()
			return v, v.applyFocus()
		case key.Matches(msg, sermonKeys.Prev):
			v.focus.Prev()
			return v, v.applyFocus()
		case msg.String() == "enter" && v.focus.Is(focusCredential):
			v.focus.SetFocus(focusVerse)
			return v, v.applyFocus()
		}
	}

	var cmd tea.Cmd
	switch v.focus.Current {
	case focusCredential:
		v.credential, cmd = v.credential.Update(msg)
	case focusVerse:
		v.verse, cmd = v.verse.Update(msg)
	case focusSermon:
		v.output, cmd = v.output.Update(msg)
	}
	return v, cmd
}

// generate validates the form and starts one request. It is a no-op while
// a request is in flight.
func (v *SermonView) generate() tea.Cmd {
	if v.loading || v.closed {
		return nil
	}
	credential := v.credential.Value()
	verse := v.verse.Value()
	if err := sermon.Validate(credential, verse); err != nil {
		logGenerationFailure(v.logger, completion.FeatureSermon, "", err)
		return showNoticeCmd(notice.ForError(completion.FeatureSermon, err))
	}

	v.loading = true
	v.pending = uuid.NewString()
	return tea.Batch(
		v.spinner.Tick,
		generateSermonCmd(v.ctx, v.gen, v.pending, credential, verse),
	)
}

func (v *SermonView) handleResult(msg sermonResultMsg) tea.Cmd {
	if v.closed || msg.requestID != v.pending {
		v.logger.Debug("dropping stale sermon result", zap.String("request_id", msg.requestID))
		return nil
	}
	v.loading = false
	v.pending = ""

	if msg.err != nil {
		logGenerationFailure(v.logger, completion.FeatureSermon, msg.requestID, msg.err)
		return showNoticeCmd(notice.ForError(completion.FeatureSermon, msg.err))
	}

	v.sermon = msg.sermon
	v.renderSermon()
	v.focus.Order = []string{focusCredential, focusVerse, focusSermon}
	return showNoticeCmd(notice.Success(completion.FeatureSermon))
}

func (v *SermonView) applyFocus() tea.Cmd {
	v.credential.Blur()
	v.verse.Blur()
	switch v.focus.Current {
	case focusCredential:
		return v.credential.Focus()
	case focusVerse:
		return v.verse.Focus()
	}
	return nil
}

func (v *SermonView) resize(width int) {
	v.width = width
	w := width - 8
	if w > formWidth || w <= 0 {
		w = formWidth
	}
	v.credential.Width = w
	v.verse.SetWidth(w)
	v.output.Width = w + 4
	if v.sermon != "" {
		v.renderSermon()
	}
}

// renderSermon renders the sermon as markdown, falling back to plain wrapped
// text when the renderer cannot be built or fails.
func (v *SermonView) renderSermon() {
	wrap := v.output.Width - 2
	out, err := renderMarkdown(v.sermon, v.style, wrap)
	if err != nil {
		v.logger.Debug("markdown render failed", zap.Error(err))
		out = lipgloss.NewStyle().Width(wrap).Render(v.sermon)
	}
	v.output.SetContent(out)
	v.output.GotoTop()
}

func renderMarkdown(md, style string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

// View implements View.
func (v *SermonView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Heading.Render("💬 "+SectionSermon.Title()) + "\n")

	b.WriteString(fieldLabel("DeepSeek API Key", v.focus.Is(focusCredential)) + "\n")
	b.WriteString(v.credential.View() + "\n")
	b.WriteString(Styles.Muted.Render(apiKeyHint) + "\n\n")

	b.WriteString(fieldLabel("Bible Verse or Passage", v.focus.Is(focusVerse)) + "\n")
	b.WriteString(v.verse.View() + "\n\n")

	if v.loading {
		b.WriteString(v.spinner.View() + " " + Styles.Normal.Render("Generating Sermon..."))
	} else {
		b.WriteString(Styles.Button.Render("[ Generate AI Sermon ]") + Styles.Muted.Render("  ctrl+s"))
	}

	if v.sermon != "" {
		heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorBlue)).
			Render("Your AI-Generated Sermon")
		box := Styles.Box
		if v.focus.Is(focusSermon) {
			box = Styles.BoxSelected
		}
		b.WriteString("\n\n" + box.Padding(0, 1).Render(heading+"\n\n"+v.output.View()))
	}
	return b.String()
}

// KeyBindings implements KeyHinter.
func (v *SermonView) KeyBindings() []key.Binding {
	return []key.Binding{sermonKeys.Generate, sermonKeys.Next}
}

// fieldLabel renders a form label, highlighted when its input has focus.
func fieldLabel(label string, focused bool) string {
	if focused {
		return Styles.Selected.Render("▸ " + label)
	}
	return Styles.Label.Render("  " + label)
}
