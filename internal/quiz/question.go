// Package quiz generates multiple-choice Bible quizzes and tracks a player's
// progress through one.
package quiz

import (
	"errors"
	"fmt"
	"strings"

	"divinescribe/internal/completion"
	"divinescribe/internal/jsonutil"
)

// OptionCount is the number of options every question must carry.
const OptionCount = 4

// Question is one multiple-choice question as produced by the model.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// Validate rejects questions the quiz view cannot render safely.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return errors.New("empty question text")
	}
	if len(q.Options) != OptionCount {
		return fmt.Errorf("want %d options, got %d", OptionCount, len(q.Options))
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("correctAnswer %d out of range", q.CorrectAnswer)
	}
	return nil
}

// DecodeQuestions is the second decode step: content is the first choice's
// message text, expected to be a JSON array of questions. Any failure is a
// *completion.DecodeError with Stage StageContent.
func DecodeQuestions(content string) ([]Question, error) {
	questions, err := jsonutil.UnmarshalArray[Question]([]byte(jsonutil.StripCodeFence(content)), "quiz questions")
	if err != nil {
		return nil, &completion.DecodeError{Stage: completion.StageContent, Err: err}
	}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, &completion.DecodeError{
				Stage: completion.StageContent,
				Err:   fmt.Errorf("question %d: %w", i+1, err),
			}
		}
	}
	return questions, nil
}
