package hymn

import "errors"

// ErrNoSuchHymn is returned by Select for an index outside the catalog.
var ErrNoSuchHymn = errors.New("hymn: index out of range")

// Browser is either in list mode (no hymn selected) or reading one hymn.
type Browser struct {
	hymns    []Hymn
	selected *Hymn
	verse    int
	playing  bool
}

// NewBrowser creates a browser over hymns, starting in list mode.
func NewBrowser(hymns []Hymn) *Browser {
	return &Browser{hymns: hymns}
}

// Hymns returns the catalog being browsed.
func (b *Browser) Hymns() []Hymn { return b.hymns }

// Select opens hymn i at its first verse, paused.
func (b *Browser) Select(i int) error {
	if i < 0 || i >= len(b.hymns) {
		return ErrNoSuchHymn
	}
	b.selected = &b.hymns[i]
	b.verse = 0
	b.playing = false
	return nil
}

// Current returns the open hymn, or nil in list mode.
func (b *Browser) Current() *Hymn { return b.selected }

// Verse returns the index of the verse being shown.
func (b *Browser) Verse() int { return b.verse }

// VerseText returns the text of the verse being shown, or "" in list mode.
func (b *Browser) VerseText() string {
	if b.selected == nil {
		return ""
	}
	return b.selected.Verses[b.verse]
}

func (b *Browser) HasPrev() bool { return b.selected != nil && b.verse > 0 }

func (b *Browser) HasNext() bool {
	return b.selected != nil && b.verse < len(b.selected.Verses)-1
}

// Next moves to the following verse. It is a no-op on the last verse.
func (b *Browser) Next() bool {
	if !b.HasNext() {
		return false
	}
	b.verse++
	return true
}

// Prev moves to the preceding verse. It is a no-op on the first verse.
func (b *Browser) Prev() bool {
	if !b.HasPrev() {
		return false
	}
	b.verse--
	return true
}

// TogglePlay flips the play indicator. Nothing is played.
func (b *Browser) TogglePlay() {
	if b.selected != nil {
		b.playing = !b.playing
	}
}

func (b *Browser) Playing() bool { return b.playing }

// Back returns to list mode.
func (b *Browser) Back() {
	b.selected = nil
	b.verse = 0
	b.playing = false
}
