package typewriter

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes tick commands until the model stops scheduling them and
// returns the number of ticks delivered.
func run(t *testing.T, m Model, cmd tea.Cmd) (Model, int) {
	t.Helper()
	ticks := 0
	for cmd != nil {
		msg := cmd()
		ticks++
		m, cmd = m.Update(msg)
		require.Less(t, ticks, 1000, "typewriter never finished")
	}
	return m, ticks
}

func TestTypewriter_RevealsAllAfterLTicks(t *testing.T) {
	const delay = 5 * time.Millisecond
	text := "Amen"
	m := New(text, delay)
	assert.Equal(t, "", m.View())
	assert.False(t, m.Done())

	start := time.Now()
	m, ticks := run(t, m, m.Init())
	elapsed := time.Since(start)

	assert.Equal(t, len([]rune(text)), ticks)
	assert.Equal(t, text, m.View())
	assert.True(t, m.Done())
	assert.GreaterOrEqual(t, elapsed, time.Duration(len(text))*delay)
}

func TestTypewriter_CountsRunesNotBytes(t *testing.T) {
	text := "θεὸς"
	m := New(text, time.Millisecond)
	m, ticks := run(t, m, m.Init())
	assert.Equal(t, 4, ticks)
	assert.Equal(t, text, m.View())
}

func TestTypewriter_EmptyTextCompletesWithoutTicks(t *testing.T) {
	m := New("", DefaultDelay)
	assert.True(t, m.Done())
	assert.Nil(t, m.Init())
	assert.Equal(t, "", m.View())
}

func TestTypewriter_NonPositiveDelayShowsAll(t *testing.T) {
	m := New("Selah", 0)
	assert.True(t, m.Done())
	assert.Equal(t, "Selah", m.View())
	assert.Nil(t, m.Init())
}

func TestTypewriter_SetTextRestarts(t *testing.T) {
	m := New("first", time.Millisecond)
	cmd := m.Init()
	m, _ = m.Update(cmd())
	m, _ = m.Update(TickMsg{ID: m.ID(), tag: m.tag})
	require.Equal(t, "fi", m.View())

	oldTag := m.tag
	next := m.SetText("second")
	require.NotNil(t, next)
	assert.Equal(t, "", m.View(), "restart begins from empty")

	// A tick from the previous text is ignored.
	m, stale := m.Update(TickMsg{ID: m.ID(), tag: oldTag})
	assert.Nil(t, stale)
	assert.Equal(t, "", m.View())

	m, _ = run(t, m, next)
	assert.Equal(t, "second", m.View())
}

func TestTypewriter_SetSameTextKeepsProgress(t *testing.T) {
	m := New("grace", time.Millisecond)
	m, _ = m.Update(TickMsg{ID: m.ID(), tag: m.tag})
	require.Equal(t, "g", m.View())

	assert.Nil(t, m.SetText("grace"))
	assert.Equal(t, "g", m.View())
}

func TestTypewriter_IgnoresOtherModels(t *testing.T) {
	a := New("alpha", time.Millisecond)
	b := New("beta", time.Millisecond)
	require.NotEqual(t, a.ID(), b.ID())

	a, cmd := a.Update(TickMsg{ID: b.ID()})
	assert.Nil(t, cmd)
	assert.Equal(t, "", a.View())
}

func TestTypewriter_Skip(t *testing.T) {
	m := New("hallelujah", time.Hour)
	oldTag := m.tag
	m.Skip()
	assert.True(t, m.Done())
	assert.Equal(t, "hallelujah", m.View())

	m, cmd := m.Update(TickMsg{ID: m.ID(), tag: oldTag})
	assert.Nil(t, cmd)
	assert.Equal(t, "hallelujah", m.View())
}

func TestTypewriter_RestartSameText(t *testing.T) {
	m := New("Selah", time.Millisecond)
	m.Skip()
	require.True(t, m.Done())

	cmd := m.Restart("Selah")
	require.NotNil(t, cmd)
	assert.Equal(t, "", m.View())

	m, _ = run(t, m, cmd)
	assert.Equal(t, "Selah", m.View())
}
