package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"divinescribe/internal/ui/textutil"
)

// FeatureCard is one entry on the home screen.
type FeatureCard struct {
	Icon        string
	Title       string
	Description string
	Target      Section
}

// featureCards lists the home screen entries in display order; digit keys
// 1-4 follow the same order.
var featureCards = []FeatureCard{
	{
		Icon:        "📖",
		Title:       "Bible Reader",
		Description: "Read multiple Bible versions in various languages including original Greek and Hebrew texts.",
		Target:      SectionReader,
	},
	{
		Icon:        "💬",
		Title:       "AI Sermons",
		Description: "Generate inspiring sermons from any Bible verse using AI to deepen your understanding.",
		Target:      SectionSermon,
	},
	{
		Icon:        "🎵",
		Title:       "Classic Hymns",
		Description: "Immerse yourself in timeless hymns with beautiful typography and verse-by-verse reading.",
		Target:      SectionHymns,
	},
	{
		Icon:        "📝",
		Title:       "Bible Quiz",
		Description: "Test your biblical knowledge with AI-generated quizzes covering various topics and difficulty levels.",
		Target:      SectionQuiz,
	},
}

const (
	cardWidth      = 28
	cardDescLines  = 4
	cardFrameWidth = 6 // border plus horizontal padding
)

// RenderFeatureCard draws card at the given outer width.
func RenderFeatureCard(card FeatureCard, number int, selected bool, width int) string {
	inner := width - cardFrameWidth
	if inner < 8 {
		inner = 8
	}
	box, title := Styles.Box, Styles.Label
	if selected {
		box, title = Styles.BoxSelected, Styles.Selected
	}

	heading := textutil.Truncate(card.Icon+" "+card.Title, inner)
	desc := lipgloss.NewStyle().Width(inner).MaxHeight(cardDescLines).Render(card.Description)
	content := lipgloss.JoinVertical(lipgloss.Center,
		title.Render(heading),
		"",
		Styles.Muted.Render(desc),
		"",
		Styles.Key.Render(strconv.Itoa(number)),
	)
	return box.Width(width - 2).Render(content)
}
