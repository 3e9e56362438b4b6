package scripture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerse_Reference(t *testing.T) {
	assert.Equal(t, "John 3:16", Passage[0].Reference())
}

func TestReader_Initial(t *testing.T) {
	r := NewReader(Passage)
	assert.Equal(t, "John 3:16", r.Verse().Reference())
	assert.Equal(t, "KJV", r.Version().Value)
	assert.Equal(t, "English", r.Language().Value)
	assert.Contains(t, r.DisplayText(), "For God so loved the world")
}

func TestReader_GreekText(t *testing.T) {
	r := NewReader(Passage)
	r.CycleLanguage()
	require.Equal(t, "Greek (Koine)", r.Language().Label)
	assert.Equal(t, "οὕτως γὰρ ἠγάπησεν ὁ θεὸς τὸν κόσμον, ὥστε τὸν υἱὸν τὸν μονογενῆ ἔδωκεν", r.DisplayText())

	// Without Koine text for 3:17 the English is shown.
	r.Next()
	assert.Equal(t, Passage[1].Text, r.DisplayText())

	r.CycleLanguage()
	assert.Equal(t, "Hebrew", r.Language().Value)
	r.Prev()
	assert.Equal(t, Passage[0].Text, r.DisplayText())
}

func TestReader_CyclesWrap(t *testing.T) {
	r := NewReader(Passage)
	for range Versions {
		r.CycleVersion()
	}
	assert.Equal(t, "KJV", r.Version().Value)

	for range Languages {
		r.CycleLanguage()
	}
	assert.Equal(t, "English", r.Language().Value)
}

func TestReader_NavigationClamped(t *testing.T) {
	r := NewReader(Passage)
	assert.False(t, r.Prev())
	assert.True(t, r.Next())
	assert.True(t, r.Next())
	assert.Equal(t, "John 3:18", r.Verse().Reference())
	assert.False(t, r.HasNext())
	assert.False(t, r.Next())
	assert.Equal(t, "John 3:18", r.Verse().Reference())
}

func TestReader_EmptyPassage(t *testing.T) {
	r := NewReader(nil)
	assert.Equal(t, Verse{}, r.Verse())
	assert.False(t, r.Next())
	assert.False(t, r.Prev())
}
