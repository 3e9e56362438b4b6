// Package sermon generates a short sermon from a Bible verse using the
// completion endpoint.
package sermon

import (
	"context"
	"fmt"
	"strings"

	"divinescribe/internal/completion"
)

const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 500
)

// SystemPrompt is sent unchanged with every sermon request.
const SystemPrompt = "You are a thoughtful pastor creating inspiring sermons. " +
	"Create meaningful, uplifting sermons that help people understand and apply " +
	"biblical teachings to their daily lives."

// Fallback is shown when the endpoint answers with no content.
const Fallback = "Unable to generate sermon at this time."

// UserPrompt embeds verse in the sermon request template.
func UserPrompt(verse string) string {
	return fmt.Sprintf("Create a short sermon (300-400 words) based on this Bible verse: \"%s\". "+
		"Include practical applications and encouragement for daily life.", verse)
}

// Validate checks the inputs a sermon request needs. It returns a
// *completion.ValidationError naming the first missing field.
func Validate(credential, verse string) error {
	if credential == "" {
		return &completion.ValidationError{Field: completion.FieldCredential}
	}
	if strings.TrimSpace(verse) == "" {
		return &completion.ValidationError{Field: completion.FieldVerse}
	}
	return nil
}

// Generator produces sermons.
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

// Generate validates the inputs, then asks for a sermon on verse. The
// result is display text; it is not parsed.
func (g *Generator) Generate(ctx context.Context, credential, verse string) (string, error) {
	if err := Validate(credential, verse); err != nil {
		return "", err
	}
	content, err := g.client.Complete(ctx, credential, completion.Request{
		Feature:      completion.FeatureSermon,
		SystemPrompt: SystemPrompt,
		UserPrompt:   UserPrompt(verse),
		Temperature:  g.temperature,
		MaxTokens:    g.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("generate sermon: %w", err)
	}
	if content == "" {
		return Fallback, nil
	}
	return content, nil
}
