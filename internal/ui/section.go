package ui

// Section is the top-level screen being shown.
type Section int

const (
	SectionHome Section = iota
	SectionReader
	SectionSermon
	SectionHymns
	SectionQuiz
)

func (s Section) String() string {
	switch s {
	case SectionHome:
		return "Home"
	case SectionReader:
		return "Reader"
	case SectionSermon:
		return "Sermon"
	case SectionHymns:
		return "Hymns"
	case SectionQuiz:
		return "Quiz"
	default:
		return "Unknown"
	}
}

// Title is the heading shown at the top of the section.
func (s Section) Title() string {
	switch s {
	case SectionReader:
		return "Bible Reader"
	case SectionSermon:
		return "AI Sermon Generator"
	case SectionHymns:
		return "Classic Hymns"
	case SectionQuiz:
		return "Bible Quiz"
	default:
		return "Divine Scribe"
	}
}
