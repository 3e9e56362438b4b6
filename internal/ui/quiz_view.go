package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"divinescribe/internal/completion"
	"divinescribe/internal/notice"
	"divinescribe/internal/quiz"
)

// QuizGenerator produces quiz questions.
type QuizGenerator interface {
	Generate(ctx context.Context, credential string) ([]quiz.Question, error)
}

var quizKeys = struct {
	Start, Answer, Letter, Next, Restart key.Binding
}{
	Start:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start quiz")),
	Answer:  key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "answer")),
	Letter:  key.NewBinding(key.WithKeys("a", "b", "c", "d")),
	Next:    key.NewBinding(key.WithKeys("enter", "n"), key.WithHelp("enter", "next")),
	Restart: key.NewBinding(key.WithKeys("r", "enter"), key.WithHelp("r", "take another quiz")),
}

var optionLetters = [quiz.OptionCount]string{"A", "B", "C", "D"}

// QuizView runs the quiz state machine: credential entry, answering, and
// the final score.
type QuizView struct {
	ctx    context.Context
	cancel context.CancelFunc
	gen    QuizGenerator
	logger *zap.Logger

	session    *quiz.Session
	credential textinput.Model
	spinner    spinner.Model
	bar        progress.Model

	loading bool
	pending string
	closed  bool
}

var (
	_ View         = (*QuizView)(nil)
	_ Closer       = (*QuizView)(nil)
	_ TextCapturer = (*QuizView)(nil)
)

// NewQuizView creates the quiz in its credential-entry state.
func NewQuizView(parent context.Context, gen QuizGenerator, logger *zap.Logger) *QuizView {
	ctx, cancel := context.WithCancel(parent)

	ti := textinput.New()
	ti.Placeholder = "Enter your DeepSeek API key"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.Width = formWidth
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = Styles.Selected

	return &QuizView{
		ctx:        ctx,
		cancel:     cancel,
		gen:        gen,
		logger:     logger,
		session:    quiz.NewSession(),
		credential: ti,
		spinner:    sp,
		bar:        progress.New(progress.WithDefaultGradient(), progress.WithWidth(formWidth)),
	}
}

// Init implements View.
func (v *QuizView) Init() tea.Cmd {
	return textinput.Blink
}

// Close implements Closer.
func (v *QuizView) Close() {
	v.closed = true
	v.cancel()
}

// CapturingText implements TextCapturer. Only the credential field takes
// free text.
func (v *QuizView) CapturingText() bool {
	return v.session.State() == quiz.StateCollectingKey
}

// Session exposes the play-through state.
func (v *QuizView) Session() *quiz.Session { return v.session }

// Loading reports whether a request is in flight.
func (v *QuizView) Loading() bool { return v.loading }

// Update implements View.
func (v *QuizView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := msg.Width - 8
		if w > formWidth || w <= 0 {
			w = formWidth
		}
		v.credential.Width = w
		v.bar.Width = w
		return v, nil
	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case quizResultMsg:
		return v, v.handleResult(msg)
	case tea.KeyMsg:
		switch v.session.State() {
		case quiz.StateCollectingKey:
			if key.Matches(msg, quizKeys.Start) {
				return v, v.generate()
			}
			var cmd tea.Cmd
			v.credential, cmd = v.credential.Update(msg)
			return v, cmd
		case quiz.StateAnswering:
			return v, v.updateAnswering(msg)
		case quiz.StateCompleted:
			if key.Matches(msg, quizKeys.Restart) {
				v.session.Reset()
				return v, v.credential.Focus()
			}
		}
	}
	return v, nil
}

func (v *QuizView) updateAnswering(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, quizKeys.Answer):
		v.selectOption(int(msg.String()[0] - '1'))
	case key.Matches(msg, quizKeys.Letter):
		v.selectOption(int(msg.String()[0] - 'a'))
	case key.Matches(msg, quizKeys.Next):
		if err := v.session.Advance(); err != nil {
			v.logger.Debug("quiz advance ignored", zap.Error(err))
		}
	}
	return nil
}

// selectOption records the first answer; later presses are ignored.
func (v *QuizView) selectOption(i int) {
	if _, err := v.session.Select(i); err != nil {
		v.logger.Debug("quiz selection ignored", zap.Int("option", i), zap.Error(err))
	}
}

// generate starts one quiz request. It is a no-op while a request is in
// flight.
func (v *QuizView) generate() tea.Cmd {
	if v.loading || v.closed {
		return nil
	}
	credential := v.credential.Value()
	if credential == "" {
		err := &completion.ValidationError{Field: completion.FieldCredential}
		logGenerationFailure(v.logger, completion.FeatureQuiz, "", err)
		return showNoticeCmd(notice.ForError(completion.FeatureQuiz, err))
	}

	v.loading = true
	v.pending = uuid.NewString()
	return tea.Batch(
		v.spinner.Tick,
		generateQuizCmd(v.ctx, v.gen, v.pending, credential),
	)
}

func (v *QuizView) handleResult(msg quizResultMsg) tea.Cmd {
	if v.closed || msg.requestID != v.pending {
		v.logger.Debug("dropping stale quiz result", zap.String("request_id", msg.requestID))
		return nil
	}
	v.loading = false
	v.pending = ""

	err := msg.err
	if err == nil {
		err = v.session.Load(msg.questions)
	}
	if err != nil {
		logGenerationFailure(v.logger, completion.FeatureQuiz, msg.requestID, err)
		return showNoticeCmd(notice.ForError(completion.FeatureQuiz, err))
	}
	v.credential.Blur()
	return showNoticeCmd(notice.Success(completion.FeatureQuiz))
}

// View implements View.
func (v *QuizView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Heading.Render("🧠 "+SectionQuiz.Title()) + "\n")

	switch v.session.State() {
	case quiz.StateCollectingKey:
		b.WriteString(v.viewCollecting())
	case quiz.StateAnswering:
		b.WriteString(v.viewAnswering())
	case quiz.StateCompleted:
		b.WriteString(v.viewCompleted())
	}
	return b.String()
}

func (v *QuizView) viewCollecting() string {
	var b strings.Builder
	b.WriteString(Styles.Normal.Render("Test your Bible knowledge with AI-generated questions.") + "\n\n")
	b.WriteString(fieldLabel("DeepSeek API Key", true) + "\n")
	b.WriteString(v.credential.View() + "\n")
	b.WriteString(Styles.Muted.Render(apiKeyHint) + "\n\n")
	if v.loading {
		b.WriteString(v.spinner.View() + " " + Styles.Normal.Render("Generating Quiz..."))
	} else {
		b.WriteString(Styles.Button.Render("[ Start Bible Quiz ]") + Styles.Muted.Render("  enter"))
	}
	return b.String()
}

func (v *QuizView) viewAnswering() string {
	s := v.session
	q, _ := s.Current()
	selected, revealed := s.Selected()

	var b strings.Builder
	header := fmt.Sprintf("Question %d of %d", s.Index()+1, s.Len())
	score := fmt.Sprintf("Score: %d/%d", s.Score(), s.Answered())
	b.WriteString(Styles.Label.Render(header) + "   " + Styles.Selected.Render(score) + "\n")
	b.WriteString(v.bar.ViewAs(s.Progress()) + "\n\n")
	b.WriteString(Styles.Normal.Bold(true).Render(q.Question) + "\n\n")

	for i, opt := range q.Options {
		line := fmt.Sprintf("%s. %s", optionLetters[i], opt)
		style := Styles.Box.Padding(0, 1)
		switch {
		case revealed && i == q.CorrectAnswer:
			style = style.BorderForeground(lipgloss.Color(ColorCorrect))
			line = Styles.Correct.Render(line + "  ✓")
		case revealed && i == selected:
			style = style.BorderForeground(lipgloss.Color(ColorDanger))
			line = Styles.Wrong.Render(line + "  ✗")
		default:
			line = Styles.Normal.Render(line)
		}
		b.WriteString(style.Render(line) + "\n")
	}

	if revealed {
		label := "Next Question →"
		if s.IsLast() {
			label = "Finish Quiz"
		}
		b.WriteString("\n" + Styles.Button.Render("[ "+label+" ]") + Styles.Muted.Render("  enter"))
	} else {
		b.WriteString("\n" + Styles.Muted.Render("Press 1-4 or a-d to answer"))
	}
	return b.String()
}

func (v *QuizView) viewCompleted() string {
	s := v.session
	band := s.Band()
	body := lipgloss.JoinVertical(lipgloss.Center,
		band.Icon(),
		"",
		Styles.Heading.Render("Quiz Complete!"),
		Styles.Selected.Render(fmt.Sprintf("You scored %d out of %d", s.Score(), s.Len())),
		"",
		Styles.Normal.Render(band.Message()),
		"",
		Styles.Button.Render("[ Take Another Quiz ]")+Styles.Muted.Render("  r"),
	)
	return Styles.BoxSelected.Render(body)
}

// KeyBindings implements KeyHinter.
func (v *QuizView) KeyBindings() []key.Binding {
	switch v.session.State() {
	case quiz.StateAnswering:
		return []key.Binding{quizKeys.Answer, quizKeys.Next}
	case quiz.StateCompleted:
		return []key.Binding{quizKeys.Restart}
	default:
		return []key.Binding{quizKeys.Start}
	}
}
