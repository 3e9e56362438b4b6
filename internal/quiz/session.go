package quiz

import "errors"

// State is the quiz lifecycle stage.
type State int

const (
	StateCollectingKey State = iota // no questions loaded
	StateAnswering                  // questions loaded, index < len
	StateCompleted                  // every question advanced past
)

func (s State) String() string {
	switch s {
	case StateCollectingKey:
		return "CollectingKey"
	case StateAnswering:
		return "Answering"
	case StateCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

var (
	ErrNoQuestions     = errors.New("quiz: no questions")
	ErrNotAnswering    = errors.New("quiz: not answering")
	ErrAlreadyAnswered = errors.New("quiz: question already answered")
	ErrInvalidOption   = errors.New("quiz: option out of range")
	ErrNotRevealed     = errors.New("quiz: answer not revealed")
)

// Session tracks one play-through. The zero value is ready to use and in
// StateCollectingKey.
type Session struct {
	questions []Question
	index     int
	score     int
	answered  int
	selected  int // valid only when revealed
	revealed  bool
	completed bool
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// State returns the current lifecycle stage.
func (s *Session) State() State {
	switch {
	case len(s.questions) == 0:
		return StateCollectingKey
	case s.completed:
		return StateCompleted
	default:
		return StateAnswering
	}
}

// Load starts a fresh play-through of questions at index 0 with score 0.
func (s *Session) Load(questions []Question) error {
	if len(questions) == 0 {
		return ErrNoQuestions
	}
	*s = Session{questions: questions}
	return nil
}

// Select records the answer to the current question. Only the first
// selection counts; it locks and reveals the question.
func (s *Session) Select(option int) (correct bool, err error) {
	if s.State() != StateAnswering {
		return false, ErrNotAnswering
	}
	if s.revealed {
		return false, ErrAlreadyAnswered
	}
	q := s.questions[s.index]
	if option < 0 || option >= len(q.Options) {
		return false, ErrInvalidOption
	}
	s.selected = option
	s.revealed = true
	s.answered++
	correct = option == q.CorrectAnswer
	if correct {
		s.score++
	}
	return correct, nil
}

// Advance moves past a revealed question: to the next index, or to
// StateCompleted from the last one.
func (s *Session) Advance() error {
	if s.State() != StateAnswering {
		return ErrNotAnswering
	}
	if !s.revealed {
		return ErrNotRevealed
	}
	if s.index < len(s.questions)-1 {
		s.index++
		s.selected = 0
		s.revealed = false
		return nil
	}
	s.completed = true
	return nil
}

// Reset discards the questions and score from any state.
func (s *Session) Reset() {
	*s = Session{}
}

// Current returns the question at the current index.
func (s *Session) Current() (Question, bool) {
	if s.State() != StateAnswering {
		return Question{}, false
	}
	return s.questions[s.index], true
}

// Selected returns the chosen option once the current question is revealed.
func (s *Session) Selected() (int, bool) {
	return s.selected, s.revealed
}

func (s *Session) Revealed() bool { return s.revealed }
func (s *Session) Index() int     { return s.index }
func (s *Session) Len() int       { return len(s.questions) }
func (s *Session) Score() int     { return s.score }
func (s *Session) Answered() int  { return s.answered }

// IsLast reports whether the current question is the final one.
func (s *Session) IsLast() bool {
	return len(s.questions) > 0 && s.index == len(s.questions)-1
}

// Progress is the fraction of questions reached, counting the current one.
func (s *Session) Progress() float64 {
	if len(s.questions) == 0 {
		return 0
	}
	return float64(s.index+1) / float64(len(s.questions))
}

// Band classifies the final score.
func (s *Session) Band() Band {
	return BandFor(s.score, len(s.questions))
}
