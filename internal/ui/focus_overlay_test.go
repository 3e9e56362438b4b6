package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocusManager_Wraps(t *testing.T) {
	var changes []string
	f := NewFocusManager("a", "b", "c")
	f.OnChange = func(from, to string) { changes = append(changes, from+">"+to) }

	assert.Equal(t, "b", f.Next())
	assert.Equal(t, "c", f.Next())
	assert.Equal(t, "a", f.Next())
	assert.Equal(t, "c", f.Prev())
	assert.Equal(t, []string{"a>b", "b>c", "c>a", "a>c"}, changes)

	assert.False(t, f.SetFocus("missing"))
	assert.True(t, f.Is("c"))
	assert.True(t, f.SetFocus("c"))
	assert.Len(t, changes, 4, "refocusing the current input is not a change")
}

func TestFocusManager_Empty(t *testing.T) {
	f := NewFocusManager()
	assert.Empty(t, f.Next())
	assert.Empty(t, f.Prev())
}

func TestOverlayStack(t *testing.T) {
	var s OverlayStack
	_, ok := s.Peek()
	assert.False(t, ok)
	_, handled := s.UpdateTop(keyMsg("j"))
	assert.False(t, handled)

	s.Push(Overlay{View: NewHelpOverlay(SectionHome, nil, nil), Dismiss: helpDismissKeys})
	s.Push(Overlay{View: NewHelpOverlay(SectionQuiz, nil, nil), Dismiss: []string{"esc"}})
	assert.Equal(t, 2, s.Len())

	top, ok := s.Peek()
	assert.True(t, ok)
	assert.True(t, top.IsDismissKey("esc"))
	assert.False(t, top.IsDismissKey("?"))

	_, handled = s.UpdateTop(keyMsg("j"))
	assert.True(t, handled)

	s.Pop()
	top, _ = s.Peek()
	assert.True(t, top.IsDismissKey("?"))

	s.Clear()
	assert.Zero(t, s.Len())
}
