// Package notice defines the short-lived messages shown after a user action
// and maps generation errors to user-facing text.
package notice

import (
	"errors"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"divinescribe/internal/completion"
)

// DefaultTTL is how long a notice stays visible.
const DefaultTTL = 4 * time.Second

// Variant selects how a notice is styled.
type Variant string

const (
	VariantInfo        Variant = "info"
	VariantDestructive Variant = "destructive"
)

// Notice is one message. The zero Timestamp is filled by New.
type Notice struct {
	ID          int
	Title       string
	Description string
	Variant     Variant
	Timestamp   time.Time
}

var lastID int64

// New creates a notice stamped with the current time.
func New(title, description string, variant Variant) Notice {
	return Notice{
		ID:          int(atomic.AddInt64(&lastID, 1)),
		Title:       title,
		Description: description,
		Variant:     variant,
		Timestamp:   time.Now(),
	}
}

// Success is the notice shown when feature finished generating.
func Success(feature completion.Feature) Notice {
	switch feature {
	case completion.FeatureQuiz:
		return New("Quiz Generated", "Your Bible quiz is ready! Good luck!", VariantInfo)
	default:
		return New("Sermon Generated", "Your AI-powered sermon is ready!", VariantInfo)
	}
}

// ForError maps err from feature to the notice the user sees. Request and
// decode failures share one generic message; the cause belongs in the log.
func ForError(feature completion.Feature, err error) Notice {
	var verr *completion.ValidationError
	if errors.As(err, &verr) {
		switch verr.Field {
		case completion.FieldVerse:
			return New("Verse Required", "Please enter a Bible verse to create a sermon about.", VariantDestructive)
		default:
			return New("API Key Required", "Please enter your DeepSeek API key to generate "+noun(feature)+".", VariantDestructive)
		}
	}
	switch feature {
	case completion.FeatureQuiz:
		return New("Generation Failed", "Unable to generate quiz. Please check your API key and try again.", VariantDestructive)
	default:
		return New("Generation Failed", "Unable to generate sermon. Please check your API key and try again.", VariantDestructive)
	}
}

func noun(feature completion.Feature) string {
	if feature == completion.FeatureQuiz {
		return "quiz questions"
	}
	return "sermons"
}

// ExpiredMsg tells a Board that the notice with ID has outlived its TTL.
type ExpiredMsg struct {
	ID int
}

// Board holds at most one visible notice. Showing a new one replaces the
// previous; an expiry for a replaced notice is ignored.
type Board struct {
	current *Notice
	ttl     time.Duration
}

// NewBoard creates a board. Non-positive ttl selects DefaultTTL.
func NewBoard(ttl time.Duration) *Board {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Board{ttl: ttl}
}

// Show displays n and returns the command that expires it.
func (b *Board) Show(n Notice) tea.Cmd {
	b.current = &n
	id := n.ID
	return tea.Tick(b.ttl, func(time.Time) tea.Msg {
		return ExpiredMsg{ID: id}
	})
}

// Update clears the notice when its expiry arrives.
func (b *Board) Update(msg tea.Msg) {
	if m, ok := msg.(ExpiredMsg); ok && b.current != nil && b.current.ID == m.ID {
		b.current = nil
	}
}

// Dismiss clears the visible notice.
func (b *Board) Dismiss() { b.current = nil }

// Current returns the visible notice.
func (b *Board) Current() (Notice, bool) {
	if b.current == nil {
		return Notice{}, false
	}
	return *b.current, true
}
