package ui

import (
	"divinescribe/internal/notice"
	"divinescribe/internal/quiz"
)

// SelectSectionMsg replaces the mounted view with the one for Section.
type SelectSectionMsg struct {
	Section Section
}

// ShowNoticeMsg displays a notice in the chrome until it expires.
type ShowNoticeMsg struct {
	Notice notice.Notice
}

// DismissNoticeMsg clears the visible notice (x).
type DismissNoticeMsg struct{}

// ToggleHelpMsg opens or closes the key help overlay (?).
type ToggleHelpMsg struct{}

// sermonResultMsg carries the outcome of one sermon request.
type sermonResultMsg struct {
	requestID string
	sermon    string
	err       error
}

// quizResultMsg carries the outcome of one quiz request.
type quizResultMsg struct {
	requestID string
	questions []quiz.Question
	err       error
}
