package quiz

import (
	"context"
	"fmt"

	"divinescribe/internal/completion"
)

const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 800
	// QuestionCount is how many questions the prompt asks for.
	QuestionCount = 5
)

// SystemPrompt is sent unchanged with every quiz request.
const SystemPrompt = "You are a Bible quiz generator. Create multiple choice questions about the Bible " +
	"with 4 options each. Return ONLY valid JSON format with an array of questions."

// UserPrompt is fixed; quizzes take no user text.
const UserPrompt = `Generate 5 Bible quiz questions in this exact JSON format: ` +
	`[{"question": "Question text?", "options": ["A", "B", "C", "D"], "correctAnswer": 0}]. ` +
	`Make questions about various Bible topics, characters, and stories.`

// Generator produces quiz questions.
type Generator struct {
	client      completion.Completer
	temperature float64
	maxTokens   int
}

// NewGenerator creates a Generator. Non-positive maxTokens selects the default.
func NewGenerator(client completion.Completer, temperature float64, maxTokens int) *Generator {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &Generator{client: client, temperature: temperature, maxTokens: maxTokens}
}

// Generate requests a quiz and decodes it in two separate steps: the
// response envelope (inside the client), then the question array embedded
// in the content.
func (g *Generator) Generate(ctx context.Context, credential string) ([]Question, error) {
	if credential == "" {
		return nil, &completion.ValidationError{Field: completion.FieldCredential}
	}
	content, err := g.client.Complete(ctx, credential, completion.Request{
		Feature:      completion.FeatureQuiz,
		SystemPrompt: SystemPrompt,
		UserPrompt:   UserPrompt,
		Temperature:  g.temperature,
		MaxTokens:    g.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}
	questions, err := DecodeQuestions(content)
	if err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}
	return questions, nil
}
