package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View represents one section screen.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Closer is implemented by views that own in-flight work. AppModel calls
// Close before unmounting the view.
type Closer interface {
	Close()
}

// TextCapturer is implemented by views with free-text inputs. While
// CapturingText is true, single-key and leader bindings are not applied, so
// every key reaches the input.
type TextCapturer interface {
	CapturingText() bool
}

// BackHandler is implemented by views with their own nested navigation. Back
// returns false when the view is at its top level and esc should go home.
type BackHandler interface {
	Back() bool
}
