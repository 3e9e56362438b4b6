package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"divinescribe/internal/completion"
	"divinescribe/internal/notice"
)

// generateSermonCmd returns a command that runs one sermon request under ctx.
// The result is tagged with requestID so a superseded view can drop it.
func generateSermonCmd(ctx context.Context, g SermonGenerator, requestID, credential, verse string) tea.Cmd {
	ctx = completion.WithRequestID(ctx, requestID)
	return func() tea.Msg {
		sermon, err := g.Generate(ctx, credential, verse)
		return sermonResultMsg{requestID: requestID, sermon: sermon, err: err}
	}
}

// generateQuizCmd returns a command that runs one quiz request under ctx.
func generateQuizCmd(ctx context.Context, g QuizGenerator, requestID, credential string) tea.Cmd {
	ctx = completion.WithRequestID(ctx, requestID)
	return func() tea.Msg {
		questions, err := g.Generate(ctx, credential)
		return quizResultMsg{requestID: requestID, questions: questions, err: err}
	}
}

func showNoticeCmd(n notice.Notice) tea.Cmd {
	return func() tea.Msg { return ShowNoticeMsg{Notice: n} }
}

func selectSectionCmd(s Section) tea.Cmd {
	return func() tea.Msg { return SelectSectionMsg{Section: s} }
}

// logGenerationFailure records the cause the user-facing notice leaves out.
func logGenerationFailure(logger *zap.Logger, feature completion.Feature, requestID string, err error) {
	fields := []zap.Field{
		zap.String("feature", string(feature)),
		zap.String("request_id", requestID),
		zap.Error(err),
	}
	var reqErr *completion.RequestError
	if errors.As(err, &reqErr) && reqErr.StatusCode != 0 {
		fields = append(fields, zap.Int("status", reqErr.StatusCode))
	}
	var decErr *completion.DecodeError
	if errors.As(err, &decErr) {
		fields = append(fields, zap.String("stage", string(decErr.Stage)))
	}
	if completion.IsValidation(err) {
		logger.Debug("generation rejected", fields...)
		return
	}
	logger.Error("generation failed", fields...)
}
