// Package typewriter provides a Bubble Tea component that reveals text one
// rune at a time.
package typewriter

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is the per-rune delay used when none is configured.
const DefaultDelay = 100 * time.Millisecond

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg reveals the next rune of the model with the matching ID. A tick
// that carries an old tag belongs to a previous text and is ignored.
type TickMsg struct {
	ID  int
	tag int
}

// Model is a typewriter. Use New to create one.
type Model struct {
	id    int
	tag   int
	text  []rune
	shown int
	delay time.Duration
}

// New creates a typewriter for text. Empty text, or a non-positive delay,
// is complete immediately.
func New(text string, delay time.Duration) Model {
	m := Model{id: nextID(), delay: delay}
	m.reset(text)
	return m
}

func (m *Model) reset(text string) {
	m.text = []rune(text)
	m.shown = 0
	if m.delay <= 0 {
		m.shown = len(m.text)
	}
}

// ID returns the identifier carried by this model's ticks.
func (m Model) ID() int { return m.id }

// Init schedules the first tick.
func (m Model) Init() tea.Cmd {
	if m.Done() {
		return nil
	}
	return m.tick()
}

// Update handles ticks addressed to this model and schedules the next one
// until the text is fully revealed.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	t, ok := msg.(TickMsg)
	if !ok || t.ID != m.id || t.tag != m.tag {
		return m, nil
	}
	if m.Done() {
		return m, nil
	}
	m.shown++
	if m.Done() {
		return m, nil
	}
	return m, m.tick()
}

// View returns the revealed prefix.
func (m Model) View() string {
	return string(m.text[:m.shown])
}

// Text returns the full target text.
func (m Model) Text() string { return string(m.text) }

// Done reports whether the whole text is visible.
func (m Model) Done() bool { return m.shown >= len(m.text) }

// SetText replaces the target and restarts from empty. Setting the same text
// again keeps the current progress and returns nil.
func (m *Model) SetText(text string) tea.Cmd {
	if text == string(m.text) {
		return nil
	}
	return m.Restart(text)
}

// Restart replays text from empty whether or not it changed.
func (m *Model) Restart(text string) tea.Cmd {
	m.tag++
	m.reset(text)
	if m.Done() {
		return nil
	}
	return m.tick()
}

// Skip reveals the whole text at once.
func (m *Model) Skip() {
	m.tag++
	m.shown = len(m.text)
}

func (m Model) tick() tea.Cmd {
	id, tag := m.id, m.tag
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return TickMsg{ID: id, tag: tag}
	})
}
