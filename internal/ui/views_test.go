package ui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"divinescribe/internal/completion"
	"divinescribe/internal/hymn"
	"divinescribe/internal/quiz"
	"divinescribe/internal/scripture"
	"divinescribe/internal/sermon"
)

// completionServer answers every request with content in a chat envelope.
func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{map[string]any{"message": map[string]any{"role": "assistant", "content": content}}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHomeView_Navigation(t *testing.T) {
	h := NewHomeView(Delays{})
	assert.Zero(t, h.Selected())

	h.Update(keyMsg("k"))
	assert.Zero(t, h.Selected(), "selection clamps at the first card")

	for i := 0; i < 10; i++ {
		h.Update(keyMsg("right"))
	}
	assert.Equal(t, len(featureCards)-1, h.Selected())

	_, cmd := h.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, SelectSectionMsg{Section: SectionQuiz}, cmd())
}

func TestHomeView_RendersHeroAndCards(t *testing.T) {
	h := NewHomeView(Delays{})
	for _, width := range []int{120, 60} {
		h.Update(tea.WindowSizeMsg{Width: width, Height: 40})
		out := h.View()
		assert.Contains(t, out, heroTitle)
		assert.Contains(t, out, heroSubtitle)
		for _, c := range featureCards {
			assert.Contains(t, out, c.Title, "width %d", width)
		}
	}
}

func TestHomeView_SkipCompletesTypewriters(t *testing.T) {
	h := NewHomeView(DefaultDelays())
	assert.False(t, h.title.Done())
	h.Update(keyMsg("s"))
	assert.True(t, h.title.Done())
	assert.True(t, h.subtitle.Done())
}

func TestReaderView_VersionAndLanguage(t *testing.T) {
	v := NewReaderView(scripture.NewReader(scripture.Passage), 0)
	out := v.View()
	assert.Contains(t, out, "King James Version")
	assert.Contains(t, out, "John 3:16")
	assert.Contains(t, out, "For God so loved")

	v.Update(keyMsg("v"))
	assert.Contains(t, v.View(), "New International Version")

	v.Update(keyMsg("l"))
	out = v.View()
	assert.Contains(t, out, "Greek (Koine)")
	assert.Contains(t, out, "οὕτως")

	// Verse 17 has no Greek text and falls back to English.
	v.Update(keyMsg("right"))
	out = v.View()
	assert.Contains(t, out, "John 3:17")
	assert.Contains(t, out, "For God sent not")
}

func TestReaderView_RestartsTypewriterOnChange(t *testing.T) {
	v := NewReaderView(scripture.NewReader(scripture.Passage), DefaultDelays().Text)
	v.Update(keyMsg("s"))
	require.True(t, v.text.Done())

	_, cmd := v.Update(keyMsg("n"))
	assert.NotNil(t, cmd, "next verse starts a new typewriter run")
	assert.False(t, v.text.Done())

	v.Update(keyMsg("right"))
	v.Update(keyMsg("right"))
	_, cmd = v.Update(keyMsg("right"))
	assert.Nil(t, cmd, "next on the last verse is a no-op")
}

func TestHymnsView_ListAndVerses(t *testing.T) {
	v := NewHymnsView(hymn.NewBrowser(hymn.Catalog()), 0)
	assert.False(t, v.Back(), "back from the list leaves the section")

	v.Update(keyMsg("down"))
	v.Update(keyMsg("enter"))
	out := v.View()
	assert.Contains(t, out, "How Great Thou Art")
	assert.Contains(t, out, "Verse 1 of 3")
	assert.Contains(t, out, "O Lord my God")

	v.Update(keyMsg("n"))
	assert.Contains(t, v.View(), "Verse 2 of 3")

	v.Update(keyMsg("p"))
	assert.Contains(t, v.View(), "Pause")

	assert.True(t, v.Back())
	assert.Nil(t, v.browser.Current())
	assert.Contains(t, v.View(), "Amazing Grace")
}

func TestSermonView_FocusCycle(t *testing.T) {
	v := NewSermonView(context.Background(), &fakeSermons{}, zap.NewNop(), "notty")
	assert.True(t, v.focus.Is(focusCredential))
	assert.True(t, v.CapturingText())

	v.Update(keyMsg("enter"))
	assert.True(t, v.focus.Is(focusVerse))

	v.Update(keyMsg("tab"))
	assert.True(t, v.focus.Is(focusCredential), "the sermon pane joins the order only once a sermon exists")
}

func TestSermonView_LoadingGuard(t *testing.T) {
	v := NewSermonView(context.Background(), &fakeSermons{sermon: "x"}, zap.NewNop(), "notty")
	t.Cleanup(v.Close)
	v.credential.SetValue("k1")
	v.verse.SetValue("John 3:16")

	first := v.generate()
	require.NotNil(t, first)
	pending := v.pending
	assert.True(t, v.Loading())

	assert.Nil(t, v.generate(), "a second request while loading is ignored")
	assert.Equal(t, pending, v.pending)

	// A result for another request is dropped.
	_, cmd := v.Update(sermonResultMsg{requestID: "other", sermon: "late"})
	assert.Nil(t, cmd)
	assert.True(t, v.Loading())
	assert.Empty(t, v.Sermon())
}

func TestSermonView_RendersMarkdownFromServer(t *testing.T) {
	srv := completionServer(t, "# Grace Abounds\n\nSermon body with **emphasis**.")
	gen := sermon.NewGenerator(completion.New(srv.URL, ""), sermon.DefaultTemperature, 0)

	v := NewSermonView(context.Background(), gen, zap.NewNop(), "notty")
	t.Cleanup(v.Close)
	v.credential.SetValue("k1")
	v.verse.SetValue("John 3:16")

	var view View = v
	for _, msg := range collectAll(v.generate()) {
		view, _ = view.Update(msg)
	}

	assert.False(t, v.Loading())
	out := v.View()
	assert.Contains(t, out, "Grace Abounds")
	assert.Contains(t, out, "Sermon body with")
	assert.True(t, v.focus.SetFocus(focusSermon))
	assert.False(t, v.CapturingText())
}

func TestSermonView_UnknownStyleFallsBackToPlainText(t *testing.T) {
	v := NewSermonView(context.Background(), &fakeSermons{}, zap.NewNop(), "no-such-style")
	t.Cleanup(v.Close)
	v.Update(sermonResultMsg{requestID: v.pending, sermon: "Plain **body**"})
	assert.Contains(t, v.View(), "Plain **body**")
}

func TestQuizView_MalformedContentFromServer(t *testing.T) {
	srv := completionServer(t, "Sorry, here are some questions in prose.")
	gen := quiz.NewGenerator(completion.New(srv.URL, ""), quiz.DefaultTemperature, 0)
	core, logs := observer.New(zapcore.DebugLevel)

	a, m := newTestApp(Options{Quizzes: gen, Logger: zap.New(core)})
	m, _ = press(t, m, "4")
	qv := a.Current.(*QuizView)
	qv.credential.SetValue("k1")

	_, out := pressRecorded(t, m, "enter")
	require.Len(t, out.notices, 1, "one failed attempt shows exactly one notice")
	assert.Equal(t, "Generation Failed", out.notices[0].Title)

	assert.False(t, qv.Loading())
	assert.Equal(t, quiz.StateCollectingKey, qv.Session().State())
	assert.Zero(t, qv.Session().Len())

	n, ok := a.Notices.Current()
	require.True(t, ok)
	assert.Equal(t, "Generation Failed", n.Title)

	failures := logs.FilterMessage("generation failed").All()
	require.Len(t, failures, 1)
	assert.Equal(t, string(completion.StageContent), failures[0].ContextMap()["stage"])
	assert.Equal(t, string(completion.FeatureQuiz), failures[0].ContextMap()["feature"])
}

func TestQuizView_EmptyCredential(t *testing.T) {
	gen := &fakeQuizzes{questions: fiveQuestions()}
	v := NewQuizView(context.Background(), gen, zap.NewNop())
	t.Cleanup(v.Close)

	cmd := v.generate()
	require.NotNil(t, cmd)
	msg, ok := cmd().(ShowNoticeMsg)
	require.True(t, ok)
	assert.Equal(t, "API Key Required", msg.Notice.Title)
	assert.Zero(t, gen.Calls())
	assert.False(t, v.Loading())
}

func TestQuizView_AdvanceNeedsAnswer(t *testing.T) {
	v := NewQuizView(context.Background(), &fakeQuizzes{}, zap.NewNop())
	t.Cleanup(v.Close)
	require.NoError(t, v.Session().Load(fiveQuestions()))

	v.Update(keyMsg("enter"))
	assert.Zero(t, v.Session().Index())
	assert.Contains(t, v.View(), "Press 1-4 or a-d")

	v.Update(keyMsg("a"))
	out := v.View()
	assert.Contains(t, out, "Next Question")
	assert.Contains(t, out, "Score: 1/1")

	v.Update(keyMsg("n"))
	assert.Equal(t, 1, v.Session().Index())
	assert.Contains(t, v.View(), "Question 2 of 5")
}

func TestQuizView_LoadingGuard(t *testing.T) {
	gen := &gatedQuizzes{
		fakeQuizzes: fakeQuizzes{questions: fiveQuestions()},
		release:     make(chan struct{}),
	}
	v := NewQuizView(context.Background(), gen, zap.NewNop())
	t.Cleanup(v.Close)
	v.credential.SetValue("k1")

	_, first := v.Update(keyMsg("enter"))
	require.NotNil(t, first)
	require.True(t, v.Loading())
	pending := v.pending

	_, second := v.Update(keyMsg("enter"))
	assert.Nil(t, second, "enter while loading starts no second request")
	assert.Equal(t, pending, v.pending)

	close(gen.release)
	var view View = v
	for _, msg := range collectAll(first) {
		view, _ = view.Update(msg)
	}

	assert.Equal(t, 1, gen.Calls())
	assert.False(t, v.Loading())
	assert.Equal(t, quiz.StateAnswering, v.Session().State())
}
