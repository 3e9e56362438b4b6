// Package scripture holds the reader's static passage, the selectable
// versions and languages, and the reader state.
package scripture

import "fmt"

// Verse is one displayable verse. It is replaced wholesale on navigation.
type Verse struct {
	Book    string
	Chapter string
	Verse   string
	Text    string
}

// Reference formats the verse as "Book Chapter:Verse".
func (v Verse) Reference() string {
	return fmt.Sprintf("%s %s:%s", v.Book, v.Chapter, v.Verse)
}

// Option is a selectable value with its display label.
type Option struct {
	Value string
	Label string
}

// Versions lists the selectable translations. Selection only changes the
// label; every version shows the same text.
var Versions = []Option{
	{Value: "KJV", Label: "King James Version"},
	{Value: "NIV", Label: "New International Version"},
	{Value: "ESV", Label: "English Standard Version"},
	{Value: "NASB", Label: "New American Standard Bible"},
}

// Languages lists the selectable languages.
var Languages = []Option{
	{Value: "English", Label: "English"},
	{Value: "Greek", Label: "Greek (Koine)"},
	{Value: "Hebrew", Label: "Hebrew"},
	{Value: "Spanish", Label: "Español"},
	{Value: "French", Label: "Français"},
}

// LanguageGreek is the language value that switches to the Koine text.
const LanguageGreek = "Greek"

// Passage is John 3:16-18 in the King James Version.
var Passage = []Verse{
	{
		Book: "John", Chapter: "3", Verse: "16",
		Text: "For God so loved the world, that he gave his only begotten Son, that whosoever believeth in him should not perish, but have everlasting life.",
	},
	{
		Book: "John", Chapter: "3", Verse: "17",
		Text: "For God sent not his Son into the world to condemn the world; but that the world through him might be saved.",
	},
	{
		Book: "John", Chapter: "3", Verse: "18",
		Text: "He that believeth on him is not condemned: but he that believeth not is condemned already, because he hath not believed in the name of the only begotten Son of God.",
	},
}

// koine maps a reference to its Greek text. Verses without an entry show
// their English text.
var koine = map[string]string{
	"John 3:16": "οὕτως γὰρ ἠγάπησεν ὁ θεὸς τὸν κόσμον, ὥστε τὸν υἱὸν τὸν μονογενῆ ἔδωκεν",
}
