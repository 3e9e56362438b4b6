package ui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"divinescribe/internal/notice"
	"divinescribe/internal/quiz"
)

// cmdWait bounds how long collect waits on one command. Timer commands
// (cursor blink, notice expiry) are abandoned when it runs out.
const cmdWait = 300 * time.Millisecond

// collect runs cmd and returns the messages it produced, expanding batches.
func collect(cmd tea.Cmd) []tea.Msg {
	return collectWithin(cmd, cmdWait)
}

// collectAll is collect without a deadline, for commands known to finish.
func collectAll(cmd tea.Cmd) []tea.Msg {
	return collectWithin(cmd, 0)
}

func collectWithin(cmd tea.Cmd, wait time.Duration) []tea.Msg {
	if cmd == nil {
		return nil
	}
	var msg tea.Msg
	if wait <= 0 {
		msg = cmd()
	} else {
		ch := make(chan tea.Msg, 1)
		go func() { ch <- cmd() }()
		select {
		case msg = <-ch:
		case <-time.After(wait):
			return nil
		}
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectWithin(c, wait)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// feedable reports whether settle should deliver msg back to the model.
// Animation ticks are left out so tests do not depend on timing.
func feedable(msg tea.Msg) bool {
	switch msg.(type) {
	case sermonResultMsg, quizResultMsg, ShowNoticeMsg, SelectSectionMsg,
		DismissNoticeMsg, ToggleHelpMsg, tea.QuitMsg:
		return true
	}
	return false
}

// outcome records what a settled command chain produced.
type outcome struct {
	quit    bool
	notices []notice.Notice
}

// settle runs cmd and feeds the resulting app messages back into m until
// nothing is left. It reports whether a quit was requested.
func settle(t *testing.T, m tea.Model, cmd tea.Cmd) (tea.Model, bool) {
	t.Helper()
	var out outcome
	m = drain(t, m, cmd, &out)
	return m, out.quit
}

func drain(t *testing.T, m tea.Model, cmd tea.Cmd, out *outcome) tea.Model {
	t.Helper()
	queue := collect(cmd)
	for i := 0; len(queue) > 0; i++ {
		if i > 100 {
			t.Fatal("settle: message loop did not converge")
		}
		msg := queue[0]
		queue = queue[1:]
		if !feedable(msg) {
			continue
		}
		switch msg := msg.(type) {
		case tea.QuitMsg:
			out.quit = true
			continue
		case ShowNoticeMsg:
			out.notices = append(out.notices, msg.Notice)
		}
		var next tea.Cmd
		m, next = m.Update(msg)
		queue = append(queue, collect(next)...)
	}
	return m
}

// press sends each key to m and settles the commands it returns.
func press(t *testing.T, m tea.Model, keys ...string) (tea.Model, bool) {
	t.Helper()
	m, out := pressRecorded(t, m, keys...)
	return m, out.quit
}

// pressRecorded is press that also returns every notice shown.
func pressRecorded(t *testing.T, m tea.Model, keys ...string) (tea.Model, outcome) {
	t.Helper()
	var out outcome
	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = m.Update(keyMsg(k))
		m = drain(t, m, cmd, &out)
	}
	return m, out
}

// newTestApp returns an app with instant typewriters and plain markdown.
func newTestApp(opts Options) (*AppModel, tea.Model) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	opts.MarkdownStyle = "notty"
	opts.NoticeTTL = time.Hour
	a := NewAppModel(opts)
	return a, a.AsTeaModel()
}

type fakeSermons struct {
	mu     sync.Mutex
	calls  int
	sermon string
	err    error
}

func (f *fakeSermons) Generate(ctx context.Context, credential, verse string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.sermon, f.err
}

func (f *fakeSermons) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeQuizzes struct {
	mu        sync.Mutex
	calls     int
	questions []quiz.Question
	err       error
}

func (f *fakeQuizzes) Generate(ctx context.Context, credential string) ([]quiz.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.questions, f.err
}

func (f *fakeQuizzes) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// blockingSermons waits for ctx to end and reports the cause.
type blockingSermons struct {
	started chan struct{}
}

func (b *blockingSermons) Generate(ctx context.Context, credential, verse string) (string, error) {
	close(b.started)
	<-ctx.Done()
	return "", ctx.Err()
}

// fiveQuestions returns questions whose correct answer is option i%4.
func fiveQuestions() []quiz.Question {
	qs := make([]quiz.Question, 5)
	for i := range qs {
		qs[i] = quiz.Question{
			Question:      "Question?",
			Options:       []string{"Moses", "Noah", "David", "Paul"},
			CorrectAnswer: i % 4,
		}
	}
	return qs
}

// gatedQuizzes blocks each call until release is closed.
type gatedQuizzes struct {
	fakeQuizzes
	release chan struct{}
}

func (g *gatedQuizzes) Generate(ctx context.Context, credential string) ([]quiz.Question, error) {
	select {
	case <-g.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return g.fakeQuizzes.Generate(ctx, credential)
}
