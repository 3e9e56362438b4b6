package scripture

// Reader is the state behind the Bible reader section.
type Reader struct {
	passage  []Verse
	index    int
	version  int
	language int
}

// NewReader starts at the first verse of passage in KJV English.
func NewReader(passage []Verse) *Reader {
	return &Reader{passage: passage}
}

// Verse returns the verse being shown.
func (r *Reader) Verse() Verse {
	if len(r.passage) == 0 {
		return Verse{}
	}
	return r.passage[r.index]
}

func (r *Reader) Version() Option  { return Versions[r.version] }
func (r *Reader) Language() Option { return Languages[r.language] }

// DisplayText is the text shown for the current verse and language.
func (r *Reader) DisplayText() string {
	v := r.Verse()
	if r.Language().Value == LanguageGreek {
		if g, ok := koine[v.Reference()]; ok {
			return g
		}
	}
	return v.Text
}

// CycleVersion selects the next version, wrapping around.
func (r *Reader) CycleVersion() {
	r.version = (r.version + 1) % len(Versions)
}

// CycleLanguage selects the next language, wrapping around.
func (r *Reader) CycleLanguage() {
	r.language = (r.language + 1) % len(Languages)
}

func (r *Reader) HasPrev() bool { return r.index > 0 }
func (r *Reader) HasNext() bool { return r.index < len(r.passage)-1 }

// Next moves to the following verse; a no-op at the end of the passage.
func (r *Reader) Next() bool {
	if !r.HasNext() {
		return false
	}
	r.index++
	return true
}

// Prev moves to the preceding verse; a no-op at the start of the passage.
func (r *Reader) Prev() bool {
	if !r.HasPrev() {
		return false
	}
	r.index--
	return true
}
